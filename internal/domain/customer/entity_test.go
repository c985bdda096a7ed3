//go:build unit

package customer_test

import (
	"testing"
	"time"

	"activity-booking/internal/domain/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	c, err := customer.NewCustomer(" Jane.Doe@Example.COM ", "Jane", "Doe", "0600", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", c.Email())

	_, err = customer.NewCustomer("nope", "Jane", "Doe", "", time.Now())
	assert.ErrorIs(t, err, customer.ErrInvalidEmail)
}
