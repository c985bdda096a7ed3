package httperr

import (
	"errors"
	"net/http"

	"activity-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// DetailedError lets an error carry a structured detail for the response body.
type DetailedError interface {
	error
	Detail() any
}

var classes = []struct {
	class  error
	status int
}{
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrCapacityExceeded, http.StatusConflict},
	{errs.ErrVoucherInvalid, http.StatusUnprocessableEntity},
	{errs.ErrStateConflict, http.StatusConflict},
	{errs.ErrIdempotencyInProgress, http.StatusConflict},
	{errs.ErrIdempotencyMismatch, http.StatusUnprocessableEntity},
	{errs.ErrValidation, http.StatusBadRequest},
}

// StatusOf maps an error class to its HTTP status. Unclassified errors are 500.
func StatusOf(err error) int {
	for _, c := range classes {
		if errors.Is(err, c.class) {
			return c.status
		}
	}
	return http.StatusInternalServerError
}

// AbortWithDomainError answers with the status of err's class. Internal failures
// never expose their message.
func AbortWithDomainError(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}

	var detail any
	var detailed DetailedError
	if errors.As(err, &detailed) {
		detail = detailed.Detail()
	}
	AbortWithError(c, status, err, errs.Message(err), detail)
}
