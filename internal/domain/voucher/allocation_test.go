//go:build unit

package voucher_test

import (
	"testing"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/voucher"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate_SplitAcrossOrders(t *testing.T) {
	v := newVoucher(t, "GIFT-200", money.Euros(200), money.Euros(200))
	now := issuedAt.AddDate(0, 1, 0)

	first, err := voucher.Allocate([]*voucher.Voucher{v}, money.Euros(80), uuid.New(), now)
	require.NoError(t, err)
	assert.Equal(t, money.Euros(80), first.TotalDiscount)
	assert.True(t, first.RemainingUncovered.IsZero())
	assert.Equal(t, money.Euros(120), v.Remaining())

	second, err := voucher.Allocate([]*voucher.Voucher{v}, money.Euros(110), uuid.New(), now)
	require.NoError(t, err)
	assert.Equal(t, money.Euros(110), second.TotalDiscount)
	assert.Equal(t, money.Euros(10), v.Remaining())
	assert.False(t, v.IsUsed())

	used := first.Applications[0].UsedAmount.Add(second.Applications[0].UsedAmount)
	assert.Equal(t, v.OriginalAmount(), v.Remaining().Add(used), "original equals remaining plus used")
}

func TestAllocate_GreedyInGivenOrder(t *testing.T) {
	a := newVoucher(t, "A", money.Euros(50), money.Euros(50))
	b := newVoucher(t, "B", money.Euros(100), money.Euros(100))
	c := newVoucher(t, "C", money.Euros(30), money.Euros(30))

	got, err := voucher.Allocate([]*voucher.Voucher{a, b, c}, money.Euros(120), uuid.New(), issuedAt)
	require.NoError(t, err)

	require.Len(t, got.Applications, 2)
	assert.Equal(t, money.Euros(50), got.Applications[0].UsedAmount)
	assert.Equal(t, money.Euros(70), got.Applications[1].UsedAmount)
	assert.Equal(t, money.Euros(120), got.TotalDiscount)
	assert.True(t, got.RemainingUncovered.IsZero())

	assert.True(t, a.IsUsed())
	assert.Equal(t, money.Euros(30), b.Remaining())
	assert.Equal(t, money.Euros(30), c.Remaining(), "unneeded voucher is untouched")
}

func TestAllocate_PartialCoverage(t *testing.T) {
	a := newVoucher(t, "A", money.Euros(50), money.Euros(20))

	got, err := voucher.Allocate([]*voucher.Voucher{a}, money.Euros(120), uuid.New(), issuedAt)
	require.NoError(t, err)
	assert.Equal(t, money.Euros(20), got.TotalDiscount)
	assert.Equal(t, money.Euros(100), got.RemainingUncovered)
}

func TestAllocate_InvalidVoucherAbortsWithoutDebit(t *testing.T) {
	a := newVoucher(t, "A", money.Euros(50), money.Euros(50))
	spent := newVoucher(t, "SPENT", money.Euros(50), money.Zero())

	_, err := voucher.Allocate([]*voucher.Voucher{a, spent}, money.Euros(120), uuid.New(), issuedAt)
	require.Error(t, err)
	assert.ErrorIs(t, err, voucher.ErrExhausted)

	var invalid *voucher.InvalidError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, voucher.Code("SPENT"), invalid.Code)
	assert.Equal(t, money.Euros(50), a.Remaining(), "earlier vouchers are not debited")
}

func TestAllocate_LaterCodesNotValidatedOnceCovered(t *testing.T) {
	a := newVoucher(t, "A", money.Euros(200), money.Euros(200))
	spent := newVoucher(t, "ZERO", money.Euros(10), money.Zero())

	got, err := voucher.Allocate([]*voucher.Voucher{a, spent}, money.Euros(100), uuid.New(), issuedAt)
	require.NoError(t, err)
	assert.Len(t, got.Applications, 1)
	assert.Equal(t, money.Euros(100), a.Remaining())
}
