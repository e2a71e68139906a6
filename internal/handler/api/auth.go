package api

import (
	"net/http"

	reqdto "ezrent/internal/handler/dto/request"
	resdto "ezrent/internal/handler/dto/response"
	"ezrent/internal/pkg/config"
	"ezrent/internal/pkg/cookie"
	"ezrent/internal/usecase/commands"
	"ezrent/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	users     queries.UserQueries
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		users:     users,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Sign up
// @Description Register a customer or owner account and log it in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	result, err := h.cmds.Signup(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithErr(c, err)
		return
	}
	h.writeSession(c, http.StatusCreated, result)
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithErr(c, err)
		return
	}
	h.writeSession(c, http.StatusOK, result)
}

func (h *AuthHandler) writeSession(c *gin.Context, status int, result *commands.AuthResult) {
	user, err := h.users.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		abortWithErr(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, result.ExpiresIn)
	respond(c, status, resdto.AuthResponse{
		AccessToken: result.AccessToken,
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
		User:        resdto.FromUserView(user),
	})
}

// @Summary User logout
// @Description Clears the access token cookie. Bearer tokens expire on their own.
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	user, err := h.users.GetCurrentUser(c.Request.Context(), actor.UserID)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromUserView(user))
}

// @Summary Change password
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Param request body reqdto.ChangePasswordRequest true "Current and new password"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	if err := h.cmds.ChangePassword(c.Request.Context(), actor, req.ToCommand()); err != nil {
		abortWithErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
