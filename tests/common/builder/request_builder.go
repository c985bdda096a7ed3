//go:build unit || e2e

package builder

import (
	"time"

	"activity-booking/internal/domain/hold"
	"activity-booking/internal/domain/resource"
	reqdto "activity-booking/internal/handler/dto/request"
	"activity-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const TestSessionID = "sess-0123456789"

func (b *ResourceBuilder) BuildCreateRequestDTO() reqdto.CreateResourceRequest {
	req := reqdto.CreateResourceRequest{
		Kind:           b.Kind.String(),
		Title:          b.Title,
		StartsAt:       b.StartsAt,
		Capacity:       b.Capacity,
		FullPriceCents: b.FullPriceCents,
	}
	if b.Kind == resource.KindMultiDaySession {
		deposit := b.DepositCents
		req.DepositCents = &deposit
	}
	return req
}

func (b *ResourceBuilder) BuildHoldRequestDTO(quantity int) reqdto.CreateHoldRequest {
	return reqdto.CreateHoldRequest{
		SessionID:    TestSessionID,
		ResourceKind: b.Kind.String(),
		ResourceID:   b.ID,
		Quantity:     quantity,
	}
}

func (b *ResourceBuilder) BuildHold(quantity int, now time.Time) *hold.Hold {
	h, err := hold.NewHold(TestSessionID, b.ID, b.Kind, quantity, 15*time.Minute, now)
	if err != nil {
		panic(err)
	}
	return h
}

func (b *ResourceBuilder) BuildAddBookingRequestDTO() reqdto.AddCartItemRequest {
	p := Participant()
	id := b.ID
	return reqdto.AddCartItemRequest{
		SessionID:    TestSessionID,
		ResourceKind: b.Kind.String(),
		ResourceID:   &id,
		Participant: &reqdto.ParticipantRequest{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			Phone:     p.Phone,
			WeightKg:  p.WeightKg,
			HeightCm:  p.HeightCm,
		},
	}
}

func (b *ResourceBuilder) BuildAvailabilityView() *queries.AvailabilityView {
	return &queries.AvailabilityView{
		ResourceID:      b.ID,
		Kind:            b.Kind.String(),
		Available:       true,
		AvailablePlaces: b.Capacity,
		TotalPlaces:     b.Capacity,
	}
}

func (b *OrderBuilder) BuildCreateRequestDTO(voucherCodes ...string) reqdto.CreateOrderRequest {
	c := Contact()
	return reqdto.CreateOrderRequest{
		SessionID:    b.SessionID,
		VoucherCodes: voucherCodes,
		Contact: reqdto.ContactRequest{
			Email:     c.Email,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Phone:     c.Phone,
		},
	}
}

// BuildViewQuery is the read model of a fresh PENDING order for the builder's seats.
func (b *OrderBuilder) BuildViewQuery() *queries.OrderView {
	c := Contact()
	resourceID := b.Resource.ID()
	deposit := b.Resource.DepositPrice().Amount() * int64(b.Seats)
	total := b.Resource.FullPrice().Amount() * int64(b.Seats)
	intent := "pi_" + b.ID.String()
	return &queries.OrderView{
		ID:                b.ID,
		OrderNumber:       "ORD-2026-000001ABC",
		Status:            "PENDING",
		CheckoutSessionID: b.SessionID,
		Subtotal:          total,
		Total:             total,
		Deposit:           deposit,
		ContactEmail:      c.Email,
		ContactFirstName:  c.FirstName,
		ContactLastName:   c.LastName,
		ContactPhone:      c.Phone,
		Items: []*queries.OrderItemView{{
			ID:         uuid.New(),
			Type:       "MULTI_DAY_SESSION_BOOKING",
			Quantity:   b.Seats,
			UnitPrice:  b.Resource.FullPrice().Amount(),
			TotalPrice: total,
			Deposit:    deposit,
			ResourceID: &resourceID,
		}},
		Vouchers: []*queries.AppliedVoucherView{},
		Payment: &queries.PaymentView{
			IntentID:     &intent,
			ClientSecret: intent + "_secret",
			Status:       "PENDING",
			Method:       "ONLINE",
			Amount:       deposit,
			Currency:     "eur",
		},
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}
