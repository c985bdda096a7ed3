package api

import (
	"net/http"

	reqdto "activity-booking/internal/handler/dto/request"
	resdto "activity-booking/internal/handler/dto/response"
	"activity-booking/internal/handler/httperr"
	"activity-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	q queries.VoucherQueries
}

func NewVoucherHandler(q queries.VoucherQueries) *VoucherHandler {
	return &VoucherHandler{q: q}
}

// @Summary Validate voucher
// @Description Report whether a code can be redeemed. Never changes the balance.
// @Tags vouchers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body reqdto.ValidateVoucherRequest true "Voucher code"
// @Success 200 {object} resdto.VoucherValidationResponse
// @Failure 400 {object} httperr.Response
// @Router /vouchers/validate [post]
func (h *VoucherHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.q.Validate(c.Request.Context(), req.Code)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoucherValidation(view))
}
