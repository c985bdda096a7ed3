//go:build unit || e2e

package builder

import (
	"time"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/order"
	"activity-booking/internal/domain/resource"
	"activity-booking/internal/domain/voucher"

	"github.com/google/uuid"
)

func Participant() order.Participant {
	return order.Participant{
		FirstName: "Lucie",
		LastName:  "Bernard",
		Email:     "lucie@example.com",
		Phone:     "+33600000000",
		WeightKg:  65,
		HeightCm:  170,
	}
}

func Contact() order.Contact {
	c, err := order.NewContact("buyer@example.com", "Marc", "Durand", "+33611111111")
	if err != nil {
		panic(err)
	}
	return c
}

type OrderBuilder struct {
	ID            uuid.UUID
	SessionID     string
	Resource      *resource.Resource
	Seats         int
	VoucherAmount int64
	Allocation    voucher.Allocation
	Now           time.Time
}

// NewOrderBuilder defaults to one seat on a fresh multi-day session.
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:        uuid.New(),
		SessionID: "sess-" + uuid.NewString(),
		Resource:  NewResourceBuilder().BuildDomain(),
		Seats:     1,
		Now:       time.Now().UTC().Truncate(time.Second),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) Items() ([]*order.Item, error) {
	items := make([]*order.Item, 0, b.Seats+1)
	for i := 0; i < b.Seats; i++ {
		it, err := order.NewBookingItem(b.Resource, Participant())
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if b.VoucherAmount > 0 {
		it, err := order.NewVoucherPurchaseItem(order.VoucherPurchase{
			Amount:         money.Cents(b.VoucherAmount),
			RecipientName:  "Camille Martin",
			RecipientEmail: "camille@example.com",
		})
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (b *OrderBuilder) BuildDomain() (*order.Order, error) {
	items, err := b.Items()
	if err != nil {
		return nil, err
	}
	return order.NewOrder(b.ID, order.GenerateNumber(b.Now), b.SessionID, Contact(), items, b.Allocation, b.Now)
}
