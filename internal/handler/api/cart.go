package api

import (
	"net/http"

	reqdto "activity-booking/internal/handler/dto/request"
	resdto "activity-booking/internal/handler/dto/response"
	"activity-booking/internal/handler/httperr"
	"activity-booking/internal/usecase/commands"
	"activity-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Cart items and active holds of a checkout session
// @Tags cart
// @Produce json
// @Security ApiKeyAuth
// @Param sessionId path string true "Checkout session ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /cart/{sessionId} [get]
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add cart item
// @Description Add a booking or a voucher purchase. Bookings refresh the session's hold.
// @Tags cart
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body reqdto.AddCartItemRequest true "Cart item"
// @Success 201 {object} resdto.CartMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.AddItem(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCartItemResult(result))
}

// @Summary Remove cart item
// @Tags cart
// @Produce json
// @Security ApiKeyAuth
// @Param sessionId path string true "Checkout session ID"
// @Param itemId path string true "Cart item ID"
// @Success 200 {object} resdto.CartMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/{sessionId}/items/{itemId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return
	}
	result, err := h.cmds.RemoveItem(c.Request.Context(), c.Param("sessionId"), itemID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartItemResult(result))
}
