package api

import (
	"net/http"

	reqdto "ezrent/internal/handler/dto/request"
	resdto "ezrent/internal/handler/dto/response"
	"ezrent/internal/usecase/commands"
	"ezrent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	cmds commands.MessageCommands
	q    queries.MessageQueries
}

func NewMessageHandler(cmds commands.MessageCommands, q queries.MessageQueries) *MessageHandler {
	return &MessageHandler{cmds: cmds, q: q}
}

// @Summary Send message
// @Description Sends a direct message, optionally about a booking. The receiver gets a notification.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	result, err := h.cmds.Send(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		abortWithErr(c, err)
		return
	}
	respond(c, http.StatusCreated, resdto.CreatedResponse{ID: result.MessageID.String()})
}

// @Summary Conversation
// @Description Messages between the caller and a peer, newest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param peerId path string true "Peer user ID"
// @Param limit query int false "Max items (default 20, max 200)"
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} resdto.Page[resdto.MessageResponse]
// @Failure 400 {object} httperr.Response
// @Router /messages/{peerId} [get]
func (h *MessageHandler) Conversation(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	peerID, ok := uuidParam(c, "peerId")
	if !ok {
		return
	}
	cursor, limit := pageParams(c)

	items, next, err := h.q.Conversation(c.Request.Context(), actor, peerID, cursor, limit)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.Page[*resdto.MessageResponse]{
		Items:      resdto.FromMessageViews(items),
		NextCursor: nextCursor(next),
	})
}
