package order

import "activity-booking/internal/domain/resource"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusRefunded  Status = "REFUNDED"
)

var transitions = map[Status][]Status{
	StatusPending: {StatusPaid, StatusCancelled},
	StatusPaid:    {StatusConfirmed, StatusCancelled, StatusRefunded},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusConfirmed, StatusCancelled, StatusRefunded:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsSettled reports whether payment for the order has been received.
func (s Status) IsSettled() bool {
	return s == StatusPaid || s == StatusConfirmed
}

type ItemType string

const (
	ItemMultiDaySessionBooking ItemType = "MULTI_DAY_SESSION_BOOKING"
	ItemSingleSlotBooking      ItemType = "SINGLE_SLOT_BOOKING"
	ItemVoucherPurchase        ItemType = "VOUCHER_PURCHASE"
)

func (t ItemType) String() string {
	return string(t)
}

func (t ItemType) IsValid() bool {
	switch t {
	case ItemMultiDaySessionBooking, ItemSingleSlotBooking, ItemVoucherPurchase:
		return true
	default:
		return false
	}
}

func (t ItemType) IsBooking() bool {
	return t == ItemMultiDaySessionBooking || t == ItemSingleSlotBooking
}

// ResourceKind is empty for voucher purchases.
func (t ItemType) ResourceKind() resource.Kind {
	switch t {
	case ItemMultiDaySessionBooking:
		return resource.KindMultiDaySession
	case ItemSingleSlotBooking:
		return resource.KindSingleSlot
	default:
		return ""
	}
}

func BookingItemType(v resource.Variant) ItemType {
	switch v.(type) {
	case resource.MultiDaySession:
		return ItemMultiDaySessionBooking
	default:
		return ItemSingleSlotBooking
	}
}
