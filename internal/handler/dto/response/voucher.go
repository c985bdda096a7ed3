package response

import (
	"time"

	"activity-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type VoucherValidationResponse struct {
	Code      string     `json:"code"`
	Valid     bool       `json:"valid"`
	Reason    string     `json:"reason,omitempty"`
	Remaining int64      `json:"remaining_amount_cents"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func FromVoucherValidation(v *queries.VoucherValidationView) *VoucherValidationResponse {
	var resp VoucherValidationResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
