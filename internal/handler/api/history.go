package api

import (
	"net/http"

	resdto "ezrent/internal/handler/dto/response"
	"ezrent/internal/handler/httperr"
	"ezrent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const msgNoHistory = "No history found"

type HistoryHandler struct {
	q queries.HistoryQueries
}

func NewHistoryHandler(q queries.HistoryQueries) *HistoryHandler {
	return &HistoryHandler{q: q}
}

// @Summary Customer rental history
// @Description Completed rentals of the customer, newest first
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param customerId path string true "Customer ID"
// @Success 200 {array} resdto.HistoryResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /history/{customerId} [get]
func (h *HistoryHandler) ByCustomer(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "customerId")
	if !ok {
		return
	}
	views, err := h.q.ListByCustomer(c.Request.Context(), actor, id)
	h.write(c, views, err)
}

// @Summary Owner rental history
// @Description Completed rentals of the owner's items, newest first
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param ownerId path string true "Owner ID"
// @Success 200 {array} resdto.HistoryResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /history/owner/{ownerId} [get]
func (h *HistoryHandler) ByOwner(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "ownerId")
	if !ok {
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), actor, id)
	h.write(c, views, err)
}

func (h *HistoryHandler) write(c *gin.Context, views []*queries.HistoryView, err error) {
	if err != nil {
		abortWithErr(c, err)
		return
	}
	if len(views) == 0 {
		httperr.AbortWithError(c, http.StatusNotFound, nil, msgNoHistory, nil)
		return
	}
	out, err := resdto.FromHistoryViews(views)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	respond(c, http.StatusOK, out)
}
