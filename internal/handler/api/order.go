package api

import (
	"context"
	"errors"
	"net/http"

	"activity-booking/internal/domain/voucher"
	reqdto "activity-booking/internal/handler/dto/request"
	resdto "activity-booking/internal/handler/dto/response"
	"activity-booking/internal/handler/httperr"
	"activity-booking/internal/pkg/errs"
	"activity-booking/internal/usecase/commands"
	"activity-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "Idempotent-Replayed"

	maxIdempotencyKeyLen = 255
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Turn the session's cart into a PENDING order, apply vouchers and open the deposit intent
// @Tags orders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param Idempotency-Key header string false "Replays return the stored order"
// @Param request body reqdto.CreateOrderRequest true "Create order request"
// @Success 201 {object} resdto.CreateOrderResponse
// @Success 200 {object} resdto.CreateOrderResponse "Idempotent replay"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	key := c.GetHeader(HeaderIdempotencyKey)
	if len(key) > maxIdempotencyKeyLen {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidQuery, "Idempotency-Key is too long", nil)
		return
	}
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand(), key)
	if err != nil {
		var invalid *voucher.InvalidError
		if errors.As(err, &invalid) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, errs.Message(err), gin.H{
				"code":   invalid.Code.String(),
				"reason": invalid.Reason.Error(),
			})
			return
		}
		httperr.AbortWithDomainError(c, err)
		return
	}

	resp := resdto.FromCreateOrderResult(result)
	if result.IsReplayed {
		c.Header(HeaderReplayed, "true")
		c.JSON(http.StatusOK, resp)
		return
	}
	c.Header("Location", "/api/orders/"+resp.Order.ID.String())
	c.JSON(http.StatusCreated, resp)
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Cancel order
// @Description Cancel a PENDING or PAID order, restoring vouchers and releasing seats
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.Cancel)
}

// @Summary Refund order
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/orders/{id}/refund [post]
func (h *OrderHandler) Refund(c *gin.Context) {
	h.transition(c, h.cmds.Refund)
}

// @Summary Confirm order
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/orders/{id}/confirm [post]
func (h *OrderHandler) Confirm(c *gin.Context) {
	h.transition(c, h.cmds.Confirm)
}

// @Summary Record manual payment
// @Description Settle a PENDING order paid outside the processor and materialize it
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.ManualPaymentRequest true "Manual payment"
// @Success 200 {object} resdto.MaterializeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/orders/{id}/payments/manual [post]
func (h *OrderHandler) RecordManualPayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.ManualPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.RecordManualPayment(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMaterializeResult(result))
}

func (h *OrderHandler) transition(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) error) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := apply(c.Request.Context(), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidPathID), "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
