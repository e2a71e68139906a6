//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"ezrent/internal/handler/api"
	reqdto "ezrent/internal/handler/dto/request"
	resdto "ezrent/internal/handler/dto/response"
	"ezrent/internal/handler/validation"
	"ezrent/internal/pkg/config"
	"ezrent/internal/usecase/commands"
	"ezrent/internal/usecase/shared"
	"ezrent/tests/common/builder"
	"ezrent/tests/common/httptest"
	"ezrent/tests/common/testutil"
	commandsmock "ezrent/tests/mock/commands"
	queriesmock "ezrent/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	actor        *shared.Actor
}

func (s *AuthHandlerTestSuite) SetupSuite() {
	s.Require().NoError(validation.Register())
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	h := api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	s.actor = customerActor()
	s.router = newRouter()
	s.router.POST("/auth/signup", h.Signup)
	s.router.POST("/auth/login", h.Login)
	authed := s.router.Group("", fakeAuth(s.actor))
	authed.POST("/auth/logout", h.Logout)
	authed.GET("/auth/me", h.Me)
	authed.PUT("/auth/password", h.ChangePassword)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) TestSignup() {
	url := "/auth/signup"
	reqBody := reqdto.SignupRequest{Name: "Ama Mensah", Email: "ama@example.com", Password: "password123", Role: "customer"}
	view := builder.NewUserBuilder().BuildReadModel()
	result := &commands.AuthResult{UserID: view.ID, Role: "customer", AccessToken: "jwt-token", ExpiresIn: time.Hour}

	s.Run("success: 201 with token, user and cookie", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), reqBody.ToCommand()).Return(result, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("jwt-token", body.AccessToken)
		s.Equal(int64(3600), body.ExpiresIn)
		s.Equal(view.Email, body.User.Email)
		cookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(cookie)
		s.Equal("jwt-token", cookie.Value)
		s.True(cookie.HttpOnly)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []testCaseAuth{
			{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "bad email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "short password", mutate: testutil.Field("password", "short"), expectCode: http.StatusBadRequest},
			{name: "unknown role", mutate: testutil.Field("role", "admin"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				m := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 409 when email already registered", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(nil, commands.ErrEmailTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := reqdto.LoginRequest{Email: "ama@example.com", Password: "password123"}
	view := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: 200 sets cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.ToCommand()).
			Return(&commands.AuthResult{UserID: view.ID, AccessToken: "jwt-token", ExpiresIn: time.Hour}, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.User.ID)
		s.NotNil(httptest.ExtractCookie(rec, "access_token"))
	})

	s.Run("error: 401 on invalid credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, commands.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
		s.Nil(httptest.ExtractCookie(rec, "access_token"))
	})

	s.Run("error: 400 when password missing", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("password", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 500 hides internal errors", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "connection reset")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: 204 clears cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, bearer)

		s.Equal(http.StatusNoContent, rec.Code)
		cookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(cookie)
		s.Empty(cookie.Value)
		s.Less(cookie.MaxAge, 0)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	view := builder.NewUserBuilder().BuildReadModel()
	view.ID = s.actor.UserID

	s.Run("success: returns the caller", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.actor.UserID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, bearer)

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Name, body.Name)
	})

	s.Run("error: 404 when the account is gone", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.actor.UserID).Return(nil, commands.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

func (s *AuthHandlerTestSuite) TestChangePassword() {
	reqBody := reqdto.ChangePasswordRequest{CurrentPassword: "password123", NewPassword: "new-password-1"}

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().ChangePassword(gomock.Any(), *s.actor, reqBody.ToCommand()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/auth/password", reqBody, bearer)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 when the current password is wrong", func() {
		s.mockCommands.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(commands.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/auth/password", reqBody, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 when the new password is too short", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("newPassword", "short"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/auth/password", m, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
