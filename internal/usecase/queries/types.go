package queries

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityView is the public availability answer. Unknown resources and bad
// kinds come back as Available=false with a Reason, never as an error.
type AvailabilityView struct {
	ResourceID      uuid.UUID `json:"resource_id"`
	Kind            string    `json:"kind"`
	Available       bool      `json:"available"`
	AvailablePlaces int       `json:"available_places"`
	TotalPlaces     int       `json:"total_places"`
	ConfirmedCount  int       `json:"confirmed_count"`
	HeldCount       int       `json:"held_count"`
	Reason          string    `json:"reason,omitempty"`
}

// ResourceCapacityRow is what a read store returns for capacity evaluation.
type ResourceCapacityRow struct {
	ID        uuid.UUID
	Kind      string
	Title     string
	Total     int
	Confirmed int
	Held      int
}

type ParticipantView struct {
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	WeightKg  int        `json:"weight_kg"`
	HeightCm  int        `json:"height_cm"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

type CartItemView struct {
	ID             uuid.UUID        `json:"id"`
	Type           string           `json:"type"`
	ResourceID     *uuid.UUID       `json:"resource_id,omitempty"`
	Participant    *ParticipantView `json:"participant,omitempty"`
	VoucherAmount  *int64           `json:"voucher_amount_cents,omitempty"`
	RecipientName  *string          `json:"recipient_name,omitempty"`
	RecipientEmail *string          `json:"recipient_email,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

type HoldView struct {
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceKind string    `json:"resource_kind"`
	Quantity     int       `json:"quantity"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type CartView struct {
	SessionID string          `json:"session_id"`
	Items     []*CartItemView `json:"items"`
	Holds     []*HoldView     `json:"holds"`
}

type OrderItemView struct {
	ID             uuid.UUID        `json:"id"`
	Type           string           `json:"type"`
	Quantity       int              `json:"quantity"`
	UnitPrice      int64            `json:"unit_price_cents"`
	TotalPrice     int64            `json:"total_price_cents"`
	Deposit        int64            `json:"deposit_cents"`
	ResourceID     *uuid.UUID       `json:"resource_id,omitempty"`
	Participant    *ParticipantView `json:"participant,omitempty"`
	RecipientName  *string          `json:"recipient_name,omitempty"`
	RecipientEmail *string          `json:"recipient_email,omitempty"`
	BookingID      *uuid.UUID       `json:"booking_id,omitempty"`
	VoucherID      *uuid.UUID       `json:"voucher_id,omitempty"`
}

type AppliedVoucherView struct {
	VoucherID uuid.UUID `json:"voucher_id"`
	Code      string    `json:"code"`
	Used      int64     `json:"used_cents"`
	Restored  bool      `json:"restored"`
}

type PaymentView struct {
	IntentID     *string   `json:"intent_id,omitempty"`
	ClientSecret string    `json:"client_secret,omitempty"`
	Status       string    `json:"status"`
	Method       string    `json:"method"`
	Amount       int64     `json:"amount_cents"`
	Currency     string    `json:"currency"`
	Note         *string   `json:"note,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type OrderView struct {
	ID                uuid.UUID             `json:"id"`
	OrderNumber       string                `json:"order_number"`
	Status            string                `json:"status"`
	CheckoutSessionID string                `json:"checkout_session_id"`
	Subtotal          int64                 `json:"subtotal_cents"`
	Discount          int64                 `json:"discount_cents"`
	Total             int64                 `json:"total_cents"`
	Deposit           int64                 `json:"deposit_cents"`
	ContactEmail      string                `json:"contact_email"`
	ContactFirstName  string                `json:"contact_first_name"`
	ContactLastName   string                `json:"contact_last_name"`
	ContactPhone      string                `json:"contact_phone"`
	CustomerID        *uuid.UUID            `json:"customer_id,omitempty"`
	Items             []*OrderItemView      `json:"items"`
	Vouchers          []*AppliedVoucherView `json:"vouchers"`
	Payment           *PaymentView          `json:"payment,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

type VoucherView struct {
	ID        uuid.UUID
	Code      string
	Original  int64
	Remaining int64
	IssuedAt  time.Time
}

type VoucherValidationView struct {
	Code      string     `json:"code"`
	Valid     bool       `json:"valid"`
	Reason    string     `json:"reason,omitempty"`
	Remaining int64      `json:"remaining_amount_cents"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
