//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"activity-booking/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	cause := errors.New("no rows in result set")
	marked := errs.Mark(cause, errs.ErrNotFound)

	assert.ErrorIs(t, marked, errs.ErrNotFound)
	assert.ErrorIs(t, marked, cause)
	assert.True(t, cr.Is(marked, errs.ErrNotFound))
	assert.Equal(t, cause.Error(), marked.Error())
	assert.NotErrorIs(t, marked, errs.ErrValidation)
}

func TestMark_NilYieldsMark(t *testing.T) {
	assert.Equal(t, errs.ErrStateConflict, errs.Mark(nil, errs.ErrStateConflict))
}

func TestMark_ClassThroughDefinedSentinel(t *testing.T) {
	holdNotFound := errs.Define(errs.ErrNotFound, "hold not found")
	err := errs.Mark(errors.New("expired"), holdNotFound)

	assert.ErrorIs(t, err, holdNotFound)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDefine(t *testing.T) {
	emptyCart := errs.Define(errs.ErrValidation, "cart is empty")

	assert.Equal(t, "cart is empty", emptyCart.Error())
	assert.ErrorIs(t, emptyCart, errs.ErrValidation)
	assert.ErrorIs(t, errs.Wrap(emptyCart, "create order"), errs.ErrValidation)
	assert.NotErrorIs(t, emptyCart, errs.ErrNotFound)
}

func TestClassOf(t *testing.T) {
	err := errs.Wrap(errs.Define(errs.ErrVoucherInvalid, "expired"), "apply")

	assert.Equal(t, errs.ErrVoucherInvalid, errs.ClassOf(err, errs.ErrNotFound, errs.ErrVoucherInvalid))
	assert.Nil(t, errs.ClassOf(err, errs.ErrNotFound))
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "noop"))
	assert.NoError(t, errs.Wrapf(nil, "noop %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	lines := errs.ExtractStackLines(errs.New("boom"), 3)

	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}

func TestMessage(t *testing.T) {
	orderNotFound := errs.Define(errs.ErrNotFound, "order not found")

	assert.Equal(t, "order not found", errs.Message(errs.Mark(errors.New("NOT_FOUND: no rows"), orderNotFound)))
	assert.Equal(t, "participant email is invalid", errs.Message(errs.Mark(errors.New("participant email is invalid"), errs.ErrValidation)))
	assert.Equal(t, "order not found", errs.Message(orderNotFound))
	assert.Equal(t, "plain", errs.Message(errors.New("plain")))
}
