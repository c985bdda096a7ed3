//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"activity-booking/internal/handler/httperr"
	"activity-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type detailed struct{}

func (detailed) Error() string        { return "Not enough places available" }
func (detailed) Is(target error) bool { return target == errs.ErrCapacityExceeded }
func (detailed) Detail() any          { return map[string]int{"available_places": 1} }

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.Define(errs.ErrNotFound, "order not found"), http.StatusNotFound},
		{"capacity", errs.Mark(errors.New("full"), errs.ErrCapacityExceeded), http.StatusConflict},
		{"voucher", errs.Mark(errors.New("expired"), errs.ErrVoucherInvalid), http.StatusUnprocessableEntity},
		{"state conflict", errs.Mark(errors.New("paid"), errs.ErrStateConflict), http.StatusConflict},
		{"validation", errs.Mark(errors.New("bad"), errs.ErrValidation), http.StatusBadRequest},
		{"idempotency in progress", errs.ErrIdempotencyInProgress, http.StatusConflict},
		{"idempotency mismatch", errs.ErrIdempotencyMismatch, http.StatusUnprocessableEntity},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}

func TestAbortWithDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) (*httptest.ResponseRecorder, map[string]any) {
		r := gin.New()
		r.GET("/", func(c *gin.Context) { httperr.AbortWithDomainError(c, err) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w, body
	}

	t.Run("detail is attached", func(t *testing.T) {
		w, body := run(detailed{})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Not enough places available", body["error"].(map[string]any)["message"])
		assert.Equal(t, float64(1), body["detail"].(map[string]any)["available_places"])
	})

	t.Run("internal errors are masked", func(t *testing.T) {
		w, body := run(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", body["error"].(map[string]any)["message"])
	})
}
