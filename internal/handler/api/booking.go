package api

import (
	"net/http"

	reqdto "ezrent/internal/handler/dto/request"
	resdto "ezrent/internal/handler/dto/response"
	"ezrent/internal/usecase/commands"
	"ezrent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Reserves one unit of the item. The booking starts as pending and the owner is notified.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		abortWithErr(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, result.BookingID)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	respond(c, http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Update booking status
// @Description Moves the booking along the lifecycle. The counterparty is notified.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Target status"
// @Success 200 {object} resdto.StatusChangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	result, err := h.cmds.UpdateStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.StatusChangeResponse{
		ID:   result.BookingID,
		From: result.From.String(),
		To:   result.To.String(),
	})
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description The caller's bookings from one side. as defaults to the caller's role.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param as query string false "customer or owner"
// @Param status query string false "Filter by status"
// @Param limit query int false "Max items (default 20, max 200)"
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} resdto.Page[resdto.BookingResponse]
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)

	items, next, err := h.q.List(c.Request.Context(), actor, c.Query("as"), c.Query("status"), cursor, limit)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.Page[*resdto.BookingResponse]{
		Items:      resdto.FromBookingViews(items),
		NextCursor: nextCursor(next),
	})
}
