package cart

import (
	"errors"
	"time"

	"activity-booking/internal/domain/hold"
	"activity-booking/internal/domain/order"
	"activity-booking/internal/domain/resource"

	"github.com/google/uuid"
)

var ErrMissingResource = errors.New("booking cart item requires a resource")

// Item is one pending line in a checkout session's cart.
type Item struct {
	id              uuid.UUID
	sessionID       string
	itemType        order.ItemType
	resourceID      *uuid.UUID
	participant     *order.Participant
	voucherPurchase *order.VoucherPurchase
	createdAt       time.Time
}

func NewBookingItem(sessionID string, r *resource.Resource, p order.Participant, now time.Time) (*Item, error) {
	sessionID, err := hold.NormalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrMissingResource
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	id := r.ID()
	return &Item{
		id:          uuid.New(),
		sessionID:   sessionID,
		itemType:    order.BookingItemType(r.Variant()),
		resourceID:  &id,
		participant: &p,
		createdAt:   now,
	}, nil
}

func NewVoucherItem(sessionID string, v order.VoucherPurchase, now time.Time) (*Item, error) {
	sessionID, err := hold.NormalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &Item{
		id:              uuid.New(),
		sessionID:       sessionID,
		itemType:        order.ItemVoucherPurchase,
		voucherPurchase: &v,
		createdAt:       now,
	}, nil
}

func ReconstructItem(
	id uuid.UUID,
	sessionID string,
	itemType order.ItemType,
	resourceID *uuid.UUID,
	participant *order.Participant,
	voucherPurchase *order.VoucherPurchase,
	createdAt time.Time,
) *Item {
	return &Item{
		id:              id,
		sessionID:       sessionID,
		itemType:        itemType,
		resourceID:      resourceID,
		participant:     participant,
		voucherPurchase: voucherPurchase,
		createdAt:       createdAt,
	}
}

// CountFor returns how many seats the cart requests on a resource.
func CountFor(items []*Item, resourceID uuid.UUID) int {
	n := 0
	for _, it := range items {
		if it.itemType.IsBooking() && it.resourceID != nil && *it.resourceID == resourceID {
			n++
		}
	}
	return n
}

func (i *Item) ID() uuid.UUID                           { return i.id }
func (i *Item) SessionID() string                       { return i.sessionID }
func (i *Item) Type() order.ItemType                    { return i.itemType }
func (i *Item) ResourceID() *uuid.UUID                  { return i.resourceID }
func (i *Item) Participant() *order.Participant         { return i.participant }
func (i *Item) VoucherPurchase() *order.VoucherPurchase { return i.voucherPurchase }
func (i *Item) CreatedAt() time.Time                    { return i.createdAt }
