//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"ezrent/internal/handler/api"
	resdto "ezrent/internal/handler/dto/response"
	"ezrent/internal/usecase/queries"
	"ezrent/internal/usecase/shared"
	"ezrent/tests/common/httptest"
	queriesmock "ezrent/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HistoryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockHistoryQueries
	actor       *shared.Actor
}

func (s *HistoryHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockHistoryQueries(s.mockCtrl)
	h := api.NewHistoryHandler(s.mockQueries)

	s.actor = customerActor()
	s.router = newRouter(fakeAuth(s.actor))
	s.router.GET("/history/:customerId", h.ByCustomer)
	s.router.GET("/history/owner/:ownerId", h.ByOwner)
}

func (s *HistoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHistoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(HistoryHandlerTestSuite))
}

func (s *HistoryHandlerTestSuite) history() *queries.HistoryView {
	start := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)
	return &queries.HistoryView{
		ID:           uuid.New(),
		BookingID:    uuid.New(),
		CustomerID:   s.actor.UserID,
		OwnerID:      uuid.New(),
		ItemID:       uuid.New(),
		ProductTitle: "Camping tent",
		Status:       "completed",
		RentalStart:  start,
		RentalEnd:    end,
		PickupDate:   start,
		ReturnDate:   end,
		PricePerDay:  2500,
		TotalAmount:  7500,
		CreatedAt:    end,
	}
}

func (s *HistoryHandlerTestSuite) TestByCustomer() {
	url := "/history/" + s.actor.UserID.String()

	s.Run("success: 200 with rows", func() {
		h := s.history()
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), *s.actor, s.actor.UserID).Return([]*queries.HistoryView{h}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, bearer)

		var body []resdto.HistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(h.BookingID, body[0].BookingID)
		s.Equal(int64(7500), body[0].TotalAmount)
	})

	s.Run("error: 404 when there is no history", func() {
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), *s.actor, s.actor.UserID).Return([]*queries.HistoryView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, bearer)

		s.Equal(http.StatusNotFound, rec.Code)
		s.JSONEq(`{"success":false,"error":"No history found"}`, rec.Body.String())
	})

	s.Run("error: 403 for someone else's history", func() {
		other := uuid.New()
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), *s.actor, other).Return(nil, queries.ErrAccessDenied)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history/"+other.String(), nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not authorized")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history/abc", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid customerId")
	})
}

func (s *HistoryHandlerTestSuite) TestByOwner() {
	ownerID := uuid.New()

	s.Run("success: routes to the owner listing", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), *s.actor, ownerID).Return([]*queries.HistoryView{s.history()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history/owner/"+ownerID.String(), nil, bearer)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &[]resdto.HistoryResponse{})
	})

	s.Run("error: 404 when empty", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), *s.actor, ownerID).Return([]*queries.HistoryView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history/owner/"+ownerID.String(), nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No history found")
	})
}
