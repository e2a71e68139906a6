package api

import (
	"net/http"
	"strconv"

	resdto "ezrent/internal/handler/dto/response"
	"ezrent/internal/handler/httperr"
	"ezrent/internal/usecase/commands"
	"ezrent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary List notifications
// @Description The caller's notifications. With unreadFirst=true unread ones come first and only the first page is returned.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unreadFirst query bool false "Unread before read"
// @Param limit query int false "Max items (default 20, max 200)"
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} resdto.Page[resdto.NotificationResponse]
// @Failure 400 {object} httperr.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	opts := queries.NotificationListOptions{}
	if v := c.Query("unreadFirst"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid unreadFirst", nil)
			return
		}
		opts.UnreadFirst = b
	}
	opts.Cursor, opts.Limit = pageParams(c)

	items, next, err := h.q.List(c.Request.Context(), actor, opts)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.Page[*resdto.NotificationResponse]{
		Items:      resdto.FromNotificationViews(items),
		NextCursor: nextCursor(next),
	})
}

// @Summary Unread notification count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UnreadCountResponse
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	n, err := h.q.UnreadCount(c.Request.Context(), actor)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.UnreadCountResponse{Count: n})
}

// @Summary Mark notification read
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.MarkRead(c.Request.Context(), actor, id); err != nil {
		abortWithErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
