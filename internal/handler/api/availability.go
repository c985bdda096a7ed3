package api

import (
	"net/http"
	"strconv"

	reqdto "activity-booking/internal/handler/dto/request"
	resdto "activity-booking/internal/handler/dto/response"
	"activity-booking/internal/handler/httperr"
	"activity-booking/internal/usecase/commands"
	"activity-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	holds commands.HoldCommands
	q     queries.AvailabilityQueries
}

func NewAvailabilityHandler(holds commands.HoldCommands, q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{holds: holds, q: q}
}

// @Summary Check availability
// @Description Free places of a resource. Unknown resources answer available=false with a reason.
// @Tags availability
// @Produce json
// @Security ApiKeyAuth
// @Param kind path string true "Resource kind (stage, bapteme, multi_day_session, single_slot)"
// @Param id path string true "Resource ID"
// @Param quantity query int false "Requested places (default 1)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability/{kind}/{id} [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource id", nil)
		return
	}
	quantity := 1
	if v := c.Query("quantity"); v != "" {
		q, convErr := strconv.Atoi(v)
		if convErr != nil || q < 1 {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidQuery, "Invalid quantity", nil)
			return
		}
		quantity = q
	}

	view, err := h.q.Check(c.Request.Context(), c.Param("kind"), id, quantity)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Reserve places
// @Description Create or replace the session's hold on a resource
// @Tags availability
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body reqdto.CreateHoldRequest true "Hold request"
// @Success 201 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /availability/reserve [post]
func (h *AvailabilityHandler) Reserve(c *gin.Context) {
	var req reqdto.CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	held, err := h.holds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromHold(held))
}

// @Summary Release holds
// @Description Release one hold, or every hold of the session when resource_id is omitted
// @Tags availability
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body reqdto.ReleaseHoldRequest true "Release request"
// @Success 200 {object} resdto.ReleaseHoldResponse
// @Failure 400 {object} httperr.Response
// @Router /availability/release [delete]
func (h *AvailabilityHandler) Release(c *gin.Context) {
	var req reqdto.ReleaseHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	n, err := h.holds.Release(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReleaseHoldResponse{Released: n})
}

// @Summary Extend a hold
// @Tags availability
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body reqdto.ExtendHoldRequest true "Extend request"
// @Success 200 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability/extend [post]
func (h *AvailabilityHandler) Extend(c *gin.Context) {
	var req reqdto.ExtendHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	held, err := h.holds.Extend(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHold(held))
}

// @Summary Sweep expired holds
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Router /admin/holds/sweep [post]
func (h *AvailabilityHandler) Sweep(c *gin.Context) {
	result, err := h.holds.SweepExpired(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSweepResult(result))
}
