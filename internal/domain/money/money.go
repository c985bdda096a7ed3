package money

import (
	"errors"
	"fmt"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is an amount of euro cents. Values are never negative.
type Money struct {
	cents int64
}

func Zero() Money {
	return Money{}
}

func FromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// Cents is for call sites that already validated the input, such as database rows.
func Cents(cents int64) Money {
	if cents < 0 {
		return Money{}
	}
	return Money{cents: cents}
}

func Euros(euros int64) Money {
	return Cents(euros * 100)
}

func (m Money) Amount() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub saturates at zero.
func (m Money) Sub(other Money) Money {
	if other.cents >= m.cents {
		return Money{}
	}
	return Money{cents: m.cents - other.cents}
}

func (m Money) Times(n int) Money {
	if n <= 0 {
		return Money{}
	}
	return Money{cents: m.cents * int64(n)}
}

// MulDiv returns floor(m * num / den). A zero den yields zero.
func (m Money) MulDiv(num, den Money) Money {
	if den.cents == 0 {
		return Money{}
	}
	return Money{cents: m.cents * num.cents / den.cents}
}

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

func Min(a, b Money) Money {
	if a.cents < b.cents {
		return a
	}
	return b
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d EUR", m.cents/100, m.cents%100)
}
