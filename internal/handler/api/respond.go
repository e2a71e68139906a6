package api

import (
	"net/http"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"ezrent/internal/domain/upload"
	"ezrent/internal/handler/httperr"
	"ezrent/internal/handler/middleware"
	"ezrent/internal/handler/validation"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/usecase/commands"
	"ezrent/internal/usecase/queries"
	"ezrent/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

type errorMapping struct {
	target  error
	status  int
	message string // empty: use the root cause's message
}

// Order matters: the first matching sentinel wins.
var errorTable = []errorMapping{
	{commands.ErrItemUnavailable, http.StatusConflict, "Item unavailable"},
	{commands.ErrInvalidTransition, http.StatusConflict, "Invalid status transition"},
	{commands.ErrEmailTaken, http.StatusConflict, "Email already registered"},
	{commands.ErrNotAuthorized, http.StatusForbidden, "Not authorized"},
	{queries.ErrAccessDenied, http.StatusForbidden, "Not authorized"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrItemNotFound, http.StatusNotFound, "Item not found"},
	{queries.ErrItemNotFound, http.StatusNotFound, "Item not found"},
	{commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{queries.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{commands.ErrNotificationNotFound, http.StatusNotFound, "Notification not found"},
	{commands.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{commands.ErrUploadRejected, http.StatusBadRequest, ""},
	{errs.ErrDomainValidation, http.StatusBadRequest, ""},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{queries.ErrInvalidFilter, http.StatusBadRequest, ""},
	{errs.ErrExternalDependency, http.StatusBadGateway, "Upstream service unavailable"},
}

// abortWithErr maps usecase errors onto the response envelope. Unknown errors are a 500
// with a generic message; the original error is kept on the context for logging.
func abortWithErr(c *gin.Context, err error) {
	for _, m := range errorTable {
		if errs.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = describe(m.target, err)
			}
			httperr.AbortWithError(c, m.status, err, msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortBind(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.FieldErrors(err))
}

func describe(target, err error) string {
	if target == commands.ErrUploadRejected {
		return upload.Message(err)
	}
	return causeMessage(err)
}

// causeMessage capitalizes the root cause, e.g. "too many files" -> "Too many files".
func causeMessage(err error) string {
	msg := errs.Cause(err).Error()
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}

func actorOrAbort(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
	}
	return actor, ok
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads ?limit and ?cursor. Limits are clamped by the query layer.
func pageParams(c *gin.Context) (*queries.Cursor, int) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	var cursor *queries.Cursor
	if after := strings.TrimSpace(c.Query("cursor")); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}

func nextCursor(cur *queries.Cursor) string {
	if cur == nil {
		return ""
	}
	return cur.After
}
