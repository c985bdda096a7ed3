package order

import (
	"errors"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/resource"

	"github.com/google/uuid"
)

var (
	ErrMissingResource = errors.New("booking item requires a resource")
	ErrNotBookingItem  = errors.New("item is not a booking")
	ErrNotVoucherItem  = errors.New("item is not a voucher purchase")
)

// Item is one order line: a single participant booking or a single voucher purchase.
type Item struct {
	id              uuid.UUID
	itemType        ItemType
	unitPrice       money.Money
	deposit         money.Money
	resourceID      *uuid.UUID
	participant     *Participant
	voucherPurchase *VoucherPurchase
	bookingID       *uuid.UUID
	voucherID       *uuid.UUID
}

func NewBookingItem(r *resource.Resource, p Participant) (*Item, error) {
	if r == nil {
		return nil, ErrMissingResource
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	resourceID := r.ID()
	return &Item{
		id:          uuid.New(),
		itemType:    BookingItemType(r.Variant()),
		unitPrice:   r.FullPrice(),
		deposit:     r.Variant().Deposit(r.FullPrice()),
		resourceID:  &resourceID,
		participant: &p,
	}, nil
}

func NewVoucherPurchaseItem(v VoucherPurchase) (*Item, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &Item{
		id:              uuid.New(),
		itemType:        ItemVoucherPurchase,
		unitPrice:       v.Amount,
		deposit:         v.Amount,
		voucherPurchase: &v,
	}, nil
}

func ReconstructItem(
	id uuid.UUID,
	itemType ItemType,
	unitPrice, deposit money.Money,
	resourceID *uuid.UUID,
	participant *Participant,
	voucherPurchase *VoucherPurchase,
	bookingID, voucherID *uuid.UUID,
) *Item {
	return &Item{
		id:              id,
		itemType:        itemType,
		unitPrice:       unitPrice,
		deposit:         deposit,
		resourceID:      resourceID,
		participant:     participant,
		voucherPurchase: voucherPurchase,
		bookingID:       bookingID,
		voucherID:       voucherID,
	}
}

func (i *Item) LinkBooking(bookingID uuid.UUID) error {
	if !i.itemType.IsBooking() {
		return ErrNotBookingItem
	}
	i.bookingID = &bookingID
	return nil
}

func (i *Item) LinkVoucher(voucherID uuid.UUID) error {
	if i.itemType != ItemVoucherPurchase {
		return ErrNotVoucherItem
	}
	i.voucherID = &voucherID
	return nil
}

func (i *Item) ID() uuid.UUID                     { return i.id }
func (i *Item) Type() ItemType                    { return i.itemType }
func (i *Item) Quantity() int                     { return 1 }
func (i *Item) UnitPrice() money.Money            { return i.unitPrice }
func (i *Item) TotalPrice() money.Money           { return i.unitPrice }
func (i *Item) Deposit() money.Money              { return i.deposit }
func (i *Item) ResourceID() *uuid.UUID            { return i.resourceID }
func (i *Item) Participant() *Participant         { return i.participant }
func (i *Item) VoucherPurchase() *VoucherPurchase { return i.voucherPurchase }
func (i *Item) BookingID() *uuid.UUID             { return i.bookingID }
func (i *Item) VoucherID() *uuid.UUID             { return i.voucherID }
