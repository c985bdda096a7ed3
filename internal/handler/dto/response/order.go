package response

import (
	"time"

	"activity-booking/internal/usecase/commands"
	"activity-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderItemResponse struct {
	ID             uuid.UUID            `json:"id"`
	Type           string               `json:"type"`
	Quantity       int                  `json:"quantity"`
	UnitPrice      int64                `json:"unit_price_cents"`
	TotalPrice     int64                `json:"total_price_cents"`
	Deposit        int64                `json:"deposit_cents"`
	ResourceID     *uuid.UUID           `json:"resource_id,omitempty"`
	Participant    *ParticipantResponse `json:"participant,omitempty"`
	RecipientName  *string              `json:"recipient_name,omitempty"`
	RecipientEmail *string              `json:"recipient_email,omitempty"`
	BookingID      *uuid.UUID           `json:"booking_id,omitempty"`
	VoucherID      *uuid.UUID           `json:"voucher_id,omitempty"`
}

type AppliedVoucherResponse struct {
	VoucherID uuid.UUID `json:"voucher_id"`
	Code      string    `json:"code"`
	Used      int64     `json:"used_cents"`
	Restored  bool      `json:"restored"`
}

// PaymentResponse omits the client secret; only the creating call returns it.
type PaymentResponse struct {
	IntentID  *string   `json:"intent_id,omitempty"`
	Status    string    `json:"status"`
	Method    string    `json:"method"`
	Amount    int64     `json:"amount_cents"`
	Currency  string    `json:"currency"`
	Note      *string   `json:"note,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderResponse struct {
	ID                uuid.UUID                 `json:"id"`
	OrderNumber       string                    `json:"order_number"`
	Status            string                    `json:"status"`
	CheckoutSessionID string                    `json:"checkout_session_id"`
	Subtotal          int64                     `json:"subtotal_cents"`
	Discount          int64                     `json:"discount_cents"`
	Total             int64                     `json:"total_cents"`
	Deposit           int64                     `json:"deposit_cents"`
	ContactEmail      string                    `json:"contact_email"`
	ContactFirstName  string                    `json:"contact_first_name"`
	ContactLastName   string                    `json:"contact_last_name"`
	ContactPhone      string                    `json:"contact_phone"`
	CustomerID        *uuid.UUID                `json:"customer_id,omitempty"`
	Items             []*OrderItemResponse      `json:"items"`
	Vouchers          []*AppliedVoucherResponse `json:"vouchers"`
	Payment           *PaymentResponse          `json:"payment,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	_ = copier.CopyWithOption(&resp, v, copier.Option{DeepCopy: true})
	if resp.Items == nil {
		resp.Items = []*OrderItemResponse{}
	}
	if resp.Vouchers == nil {
		resp.Vouchers = []*AppliedVoucherResponse{}
	}
	return &resp
}

type PaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount_cents"`
	Currency     string `json:"currency"`
}

type CreateOrderResponse struct {
	Order         *OrderResponse         `json:"order"`
	PaymentIntent *PaymentIntentResponse `json:"payment_intent,omitempty"`
	Replayed      bool                   `json:"replayed"`
}

func FromCreateOrderResult(r *commands.CreateOrderResult) *CreateOrderResponse {
	resp := &CreateOrderResponse{Order: FromOrderView(r.Order), Replayed: r.IsReplayed}
	if in := r.Intent; in != nil {
		resp.PaymentIntent = &PaymentIntentResponse{
			ID:           in.IntentID,
			ClientSecret: in.ClientSecret,
			Amount:       in.Amount.Amount(),
			Currency:     in.Currency,
		}
	}
	return resp
}

type MaterializeResponse struct {
	BookingsCreated     int `json:"bookings_created"`
	VouchersMinted      int `json:"vouchers_minted"`
	AlreadyMaterialized int `json:"already_materialized"`
}

func FromMaterializeResult(r *commands.MaterializeResult) *MaterializeResponse {
	var resp MaterializeResponse
	_ = copier.Copy(&resp, r)
	return &resp
}

type PaymentOutcomeResponse struct {
	Status       string               `json:"status"`
	OrderID      *uuid.UUID           `json:"order_id,omitempty"`
	OrderStatus  string               `json:"order_status,omitempty"`
	Replayed     bool                 `json:"replayed"`
	Materialized *MaterializeResponse `json:"materialized,omitempty"`
}

const (
	CallbackProcessed = "processed"
	CallbackIgnored   = "ignored"
)

func FromPaymentOutcome(r *commands.PaymentOutcomeResult) *PaymentOutcomeResponse {
	resp := &PaymentOutcomeResponse{Status: CallbackProcessed, Replayed: r.Replayed}
	if r.OrderID != uuid.Nil {
		id := r.OrderID
		resp.OrderID = &id
		resp.OrderStatus = string(r.Status)
		resp.Materialized = FromMaterializeResult(&r.Materialized)
	}
	return resp
}
