package booking

import (
	"errors"
	"time"

	"activity-booking/internal/domain/order"

	"github.com/google/uuid"
)

var ErrNotBookable = errors.New("order item is not a booking")

// Booking is a confirmed seat on a resource. It exists only for paid order items and
// is unique per order item.
type Booking struct {
	id          uuid.UUID
	resourceID  uuid.UUID
	customerID  uuid.UUID
	orderID     uuid.UUID
	orderItemID uuid.UUID
	participant order.Participant
	createdAt   time.Time
}

func FromOrderItem(item *order.Item, orderID, customerID uuid.UUID, now time.Time) (*Booking, error) {
	if !item.Type().IsBooking() || item.ResourceID() == nil {
		return nil, ErrNotBookable
	}
	var p order.Participant
	if item.Participant() != nil {
		p = *item.Participant()
	}
	return &Booking{
		id:          uuid.New(),
		resourceID:  *item.ResourceID(),
		customerID:  customerID,
		orderID:     orderID,
		orderItemID: item.ID(),
		participant: p,
		createdAt:   now,
	}, nil
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) ResourceID() uuid.UUID          { return b.resourceID }
func (b *Booking) CustomerID() uuid.UUID          { return b.customerID }
func (b *Booking) OrderID() uuid.UUID             { return b.orderID }
func (b *Booking) OrderItemID() uuid.UUID         { return b.orderItemID }
func (b *Booking) Participant() order.Participant { return b.participant }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
