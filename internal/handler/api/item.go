package api

import (
	"net/http"
	"strings"

	reqdto "ezrent/internal/handler/dto/request"
	resdto "ezrent/internal/handler/dto/response"
	"ezrent/internal/handler/httperr"
	"ezrent/internal/usecase/commands"
	"ezrent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemHandler struct {
	cmds commands.ItemCommands
	q    queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, q: q}
}

// @Summary Create item
// @Description Owners list a rentable item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequest true "Item"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	result, err := h.cmds.CreateItem(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		abortWithErr(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.ItemID)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	respond(c, http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Get item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromItemView(view))
}

// @Summary List items
// @Description Newest first with keyset pagination
// @Tags items
// @Produce json
// @Param category query string false "Category"
// @Param owner_id query string false "Owner ID"
// @Param limit query int false "Max items (default 20, max 200)"
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} resdto.Page[resdto.ItemResponse]
// @Failure 400 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	filter := queries.ItemFilter{Category: c.Query("category")}
	if v := strings.TrimSpace(c.Query("owner_id")); v != "" {
		ownerID, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid owner_id", nil)
			return
		}
		filter.OwnerID = &ownerID
	}
	cursor, limit := pageParams(c)

	items, next, err := h.q.List(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.Page[*resdto.ItemResponse]{
		Items:      resdto.FromItemViews(items),
		NextCursor: nextCursor(next),
	})
}
