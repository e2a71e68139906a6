//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"ezrent/internal/domain/booking"
	"ezrent/internal/handler/api"
	resdto "ezrent/internal/handler/dto/response"
	"ezrent/internal/handler/validation"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/usecase/commands"
	"ezrent/internal/usecase/queries"
	"ezrent/internal/usecase/shared"
	"ezrent/tests/common/builder"
	"ezrent/tests/common/httptest"
	"ezrent/tests/common/testutil"
	commandsmock "ezrent/tests/mock/commands"
	queriesmock "ezrent/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	actor        *shared.Actor
}

func (s *BookingHandlerTestSuite) SetupSuite() {
	s.Require().NoError(validation.Register())
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.actor = customerActor()
	s.router = newRouter(fakeAuth(s.actor))
	s.router.POST("/bookings", h.Create)
	s.router.GET("/bookings", h.List)
	s.router.GET("/bookings/:id", h.Get)
	s.router.PATCH("/bookings/:id/status", h.UpdateStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder().WithParties(s.actor.UserID, uuid.New())
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: 201 with the created booking", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), *s.actor, reqBody.ToCommand()).
			Return(&commands.CreateBookingResult{BookingID: b.ID, Status: booking.StatusPending}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), *s.actor, b.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID.String(), body["id"])
		s.Equal("pending", body["status"])
		s.Equal("2026-04-10", body["startDate"])
		s.Equal(float64(3), body["days"])
		s.Equal(float64(7500), body["totalAmount"])
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing itemId", mutate: testutil.Field("itemId", nil), expectCode: http.StatusBadRequest},
			{name: "startDate not a date", mutate: testutil.Field("startDate", "10/04/2026"), expectCode: http.StatusBadRequest},
			{name: "endDate missing", mutate: testutil.Field("endDate", nil), expectCode: http.StatusBadRequest},
			{name: "unknown payment method", mutate: testutil.Field("paymentMethod", "bitcoin"), expectCode: http.StatusBadRequest},
			{name: "pickupDate not a date", mutate: testutil.Field("pickupDate", "tomorrow"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				m := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m, bearer)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"item unavailable", commands.ErrItemUnavailable, http.StatusConflict, "Item unavailable"},
			{"own item", errs.Mark(errs.New("cannot book own item"), commands.ErrNotAuthorized), http.StatusForbidden, "Not authorized"},
			{"item missing", commands.ErrItemNotFound, http.StatusNotFound, "Item not found"},
			{"bad period", errs.Mark(errs.New("rental end is before start"), errs.ErrDomainValidation), http.StatusBadRequest, "Rental end is before start"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/status"

	s.Run("success: 200 with from and to", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), *s.actor, id, "cancelled").
			Return(&commands.UpdateStatusResult{BookingID: id, From: booking.StatusPending, To: booking.StatusCancelled}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "cancelled"}, bearer)

		var body resdto.StatusChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.StatusChangeResponse{ID: id, From: "pending", To: "cancelled"}, body)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "shipped"}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/nope/status", map[string]string{"status": "paid"}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps lifecycle errors", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"edge not in table", commands.ErrInvalidTransition, http.StatusConflict, "Invalid status transition"},
			{"wrong role", commands.ErrNotAuthorized, http.StatusForbidden, "Not authorized"},
			{"missing booking", commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), id, "paid").Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "paid"}, bearer)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	b := builder.NewBookingBuilder().WithParties(s.actor.UserID, uuid.New())

	s.Run("success: 200", func() {
		view := b.BuildView()
		view.NextStatuses = []string{"cancelled"}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), *s.actor, b.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+b.ID.String(), nil, bearer)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{"cancelled"}, body.NextStatuses)
	})

	s.Run("error: 404 for bookings the caller is not party to", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), *s.actor, b.ID).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+b.ID.String(), nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	b := builder.NewBookingBuilder().WithParties(s.actor.UserID, uuid.New())

	s.Run("success: passes filters and returns the next cursor", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), *s.actor, "customer", "paid", &queries.Cursor{After: "abc"}, 10).
			Return([]*queries.BookingView{b.BuildView()}, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?as=customer&status=paid&cursor=abc&limit=10", nil, bearer)

		var body resdto.Page[resdto.BookingResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Equal("next", body.NextCursor)
	})

	s.Run("success: empty page has an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), *s.actor, "", "", nil, 0).
			Return([]*queries.BookingView{}, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, bearer)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"success":true,"data":{"items":[]}}`, rec.Body.String())
	})

	s.Run("error: 400 on bad filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), "landlord", "", nil, 0).
			Return(nil, nil, errs.Mark(errs.New("invalid role"), queries.ErrInvalidFilter))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?as=landlord", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid role")
	})

	s.Run("error: 400 on bad cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), "", "", &queries.Cursor{After: "garbage"}, 0).
			Return(nil, nil, errs.Mark(errs.New("illegal base64"), queries.ErrInvalidCursor))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?cursor=garbage", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}
