package resource

import (
	"errors"
	"strings"

	"activity-booking/internal/domain/money"
)

var ErrInvalidKind = errors.New("invalid resource type")

type Kind string

const (
	KindMultiDaySession Kind = "multi_day_session"
	KindSingleSlot      Kind = "single_slot"
)

// legacy route tags used by the public site
var kindAliases = map[string]Kind{
	"multi_day_session": KindMultiDaySession,
	"multi-day-session": KindMultiDaySession,
	"stage":             KindMultiDaySession,
	"single_slot":       KindSingleSlot,
	"single-slot":       KindSingleSlot,
	"bapteme":           KindSingleSlot,
}

func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrInvalidKind
	}
	return k, nil
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindMultiDaySession, KindSingleSlot:
		return true
	default:
		return false
	}
}

func (k Kind) NotFoundReason() string {
	if k == KindMultiDaySession {
		return "multi-day session not found"
	}
	return "single slot not found"
}

// Variant is closed over MultiDaySession and SingleSlot.
type Variant interface {
	Kind() Kind
	// Deposit is the amount collected at booking time for one participant.
	Deposit(fullPrice money.Money) money.Money
	sealed()
}

type MultiDaySession struct {
	depositPrice money.Money
}

func NewMultiDaySession(depositPrice money.Money) MultiDaySession {
	return MultiDaySession{depositPrice: depositPrice}
}

func (MultiDaySession) Kind() Kind { return KindMultiDaySession }

func (m MultiDaySession) Deposit(fullPrice money.Money) money.Money {
	return money.Min(m.depositPrice, fullPrice)
}

func (m MultiDaySession) DepositPrice() money.Money { return m.depositPrice }

func (MultiDaySession) sealed() {}

type SingleSlot struct{}

func (SingleSlot) Kind() Kind { return KindSingleSlot }

func (SingleSlot) Deposit(fullPrice money.Money) money.Money { return fullPrice }

func (SingleSlot) sealed() {}

// NewVariant builds the variant for kind. depositCents is required for multi-day sessions
// and ignored for single slots.
func NewVariant(kind Kind, depositCents *int64) (Variant, error) {
	switch kind {
	case KindMultiDaySession:
		if depositCents == nil {
			return nil, ErrDepositRequired
		}
		deposit, err := money.FromCents(*depositCents)
		if err != nil {
			return nil, err
		}
		return NewMultiDaySession(deposit), nil
	case KindSingleSlot:
		return SingleSlot{}, nil
	default:
		return nil, ErrInvalidKind
	}
}
