//go:build e2e

package booking_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"ezrent/internal/handler/dto/request"
	"ezrent/internal/handler/dto/response"
	"ezrent/tests/common/authtest"
	"ezrent/tests/common/dbtest"
	"ezrent/tests/common/httptest"
	"ezrent/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	itemsURL         = "/api/items"
	bookingsURL      = "/api/bookings"
	historyURL       = "/api/history/"
	notificationsURL = "/api/notifications"
	messagesURL      = "/api/messages"
)

type bookingSuite struct {
	e2e.SharedSuite

	ownerID       uuid.UUID
	ownerToken    string
	customerID    uuid.UUID
	customerToken string
	itemID        uuid.UUID
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.ownerID, s.ownerToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", "owner")
	s.customerID, s.customerToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "customer@example.com", "customer")
	s.itemID = s.createItem(1)
}

func (s *bookingSuite) createItem(quantity int) uuid.UUID {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, itemsURL, request.CreateItemRequest{
		Title:       "Camping tent",
		Description: "Four person tent",
		PricePerDay: 2500,
		Category:    "outdoor",
		Location:    "Accra",
		Quantity:    quantity,
	}, s.ownerToken)

	var item response.ItemResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &item)
	s.Require().NotEqual(uuid.Nil, item.ID)
	return item.ID
}

func bookingRequest(itemID uuid.UUID) request.CreateBookingRequest {
	start := time.Now().UTC().AddDate(0, 0, 7)
	return request.CreateBookingRequest{
		ItemID:        itemID,
		StartDate:     start.Format(request.DateLayout),
		EndDate:       start.AddDate(0, 0, 2).Format(request.DateLayout),
		PaymentMethod: "card",
	}
}

func (s *bookingSuite) book(token string) uuid.UUID {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, bookingRequest(s.itemID), token)

	var b response.BookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &b)
	s.Require().Equal("pending", b.Status)
	return b.ID
}

func (s *bookingSuite) transition(id uuid.UUID, status, token string, expected int) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, bookingsURL+"/"+id.String()+"/status",
		request.UpdateBookingStatusRequest{Status: status}, token)
	s.Require().Equal(expected, w.Code, w.Body.String())
}

func (s *bookingSuite) itemQuantityViaAPI() int {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, itemsURL+"/"+s.itemID.String(), nil, "")
	var item response.ItemResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &item)
	return item.Quantity
}

func (s *bookingSuite) TestHappyPath() {
	s.Run("pending to completed writes history and notifies both parties", func() {
		// warm the item cache so the reservation has to invalidate it
		s.Equal(1, s.itemQuantityViaAPI())

		id := s.book(s.customerToken)
		s.Equal(0, dbtest.ItemQuantity(s.T(), s.DB, s.itemID))
		s.Equal(0, s.itemQuantityViaAPI())

		s.transition(id, "approved", s.ownerToken, http.StatusOK)
		s.transition(id, "paid", s.customerToken, http.StatusOK)
		s.transition(id, "completed", s.ownerToken, http.StatusOK)

		s.Equal(0, dbtest.ItemQuantity(s.T(), s.DB, s.itemID), "completion does not restock")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, historyURL+s.customerID.String(), nil, s.customerToken)
		var rows []response.HistoryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &rows)
		s.Require().Len(rows, 1)
		s.Equal(id, rows[0].BookingID)
		s.Equal("Camping tent", rows[0].ProductTitle)
		s.Equal(int64(7500), rows[0].TotalAmount)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, historyURL+"owner/"+s.ownerID.String(), nil, s.ownerToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &rows)
		s.Len(rows, 1)

		// owner: created, paid. customer: approved, completed.
		s.Equal(2, dbtest.CountRows(s.T(), s.DB, "notifications", "recipient_id = $1", s.ownerID))
		s.Equal(2, dbtest.CountRows(s.T(), s.DB, "notifications", "recipient_id = $1", s.customerID))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, notificationsURL+"/unread-count", nil, s.ownerToken)
		var count response.UnreadCountResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &count)
		s.Equal(int64(2), count.Count)
	})
}

func (s *bookingSuite) TestInventory() {
	s.Run("last unit cannot be booked twice", func() {
		s.book(s.customerToken)

		_, other := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "second@example.com", "customer")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, bookingRequest(s.itemID), other)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Item unavailable")
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "bookings", "item_id = $1", s.itemID))
	})

	s.Run("declined restores the unit", func() {
		id := s.book(s.customerToken)
		s.transition(id, "declined", s.ownerToken, http.StatusOK)
		s.Equal(1, dbtest.ItemQuantity(s.T(), s.DB, s.itemID))
		s.Equal(1, s.itemQuantityViaAPI())
	})

	s.Run("another customer can book after the owner declines", func() {
		id := s.book(s.customerToken)

		secondID, second := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "second@example.com", "customer")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, bookingRequest(s.itemID), second)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Item unavailable")

		s.transition(id, "declined", s.ownerToken, http.StatusOK)

		rebooked := s.book(second)
		s.NotEqual(id, rebooked)
		s.Equal(0, dbtest.ItemQuantity(s.T(), s.DB, s.itemID))
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "bookings", "customer_id = $1 AND status = 'pending'", secondID))
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "bookings", "id = $1 AND status = 'declined'", id))
	})

	s.Run("cancelled restores the unit", func() {
		id := s.book(s.customerToken)
		s.transition(id, "approved", s.ownerToken, http.StatusOK)
		s.transition(id, "cancelled", s.customerToken, http.StatusOK)
		s.Equal(1, dbtest.ItemQuantity(s.T(), s.DB, s.itemID))
	})
}

func (s *bookingSuite) TestTransitionRules() {
	s.Run("wrong role is forbidden", func() {
		id := s.book(s.customerToken)
		s.transition(id, "approved", s.customerToken, http.StatusForbidden)
	})

	s.Run("missing edge is a conflict", func() {
		id := s.book(s.customerToken)
		s.transition(id, "completed", s.ownerToken, http.StatusConflict)
	})

	s.Run("terminal bookings stay terminal", func() {
		id := s.book(s.customerToken)
		s.transition(id, "declined", s.ownerToken, http.StatusOK)
		s.transition(id, "approved", s.ownerToken, http.StatusConflict)
		s.Equal(1, dbtest.ItemQuantity(s.T(), s.DB, s.itemID), "inventory restored exactly once")
	})

	s.Run("racing transitions from pending settle exactly one", func() {
		id := s.book(s.customerToken)
		targets := []string{"approved", "declined"}

		codes := make([]int, len(targets))
		bodies := make([]string, len(targets))
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i, to := range targets {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, bookingsURL+"/"+id.String()+"/status",
					request.UpdateBookingStatusRequest{Status: to}, s.ownerToken)
				codes[i] = w.Code
				bodies[i] = w.Body.String()
			}()
		}
		close(start)
		wg.Wait()

		winner := -1
		for i, code := range codes {
			if code == http.StatusOK {
				s.Require().Equal(-1, winner, "both transitions succeeded")
				winner = i
				continue
			}
			s.Equal(http.StatusConflict, code, bodies[i])
			s.Contains(bodies[i], "Invalid status transition")
		}
		s.Require().NotEqual(-1, winner, "no transition succeeded: %v", bodies)

		want := targets[winner]
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "bookings", "id = $1 AND status = $2", id, want))
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "notifications", "recipient_id = $1", s.customerID))
		if want == "declined" {
			s.Equal(1, dbtest.ItemQuantity(s.T(), s.DB, s.itemID))
		} else {
			s.Equal(0, dbtest.ItemQuantity(s.T(), s.DB, s.itemID))
		}
	})

	s.Run("outsiders cannot see or move the booking", func() {
		id := s.book(s.customerToken)
		_, stranger := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "stranger@example.com", "owner")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/"+id.String(), nil, stranger)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")

		s.transition(id, "approved", stranger, http.StatusForbidden)
	})

	s.Run("owners cannot book", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, bookingRequest(s.itemID), s.ownerToken)
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *bookingSuite) TestListing() {
	s.Run("each side sees the booking with its own next statuses", func() {
		id := s.book(s.customerToken)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"?as=owner&status=pending", nil, s.ownerToken)
		var page response.Page[response.BookingResponse]
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &page)
		s.Require().Len(page.Items, 1)
		s.Equal(id, page.Items[0].ID)
		s.ElementsMatch([]string{"approved", "declined"}, page.Items[0].NextStatuses)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/"+id.String(), nil, s.customerToken)
		var b response.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &b)
		s.Equal([]string{"cancelled"}, b.NextStatuses)
		s.Equal(3, b.Days)
	})
}

func (s *bookingSuite) TestNotifications() {
	s.Run("mark read drops the unread count", func() {
		s.book(s.customerToken)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, notificationsURL, nil, s.ownerToken)
		var page response.Page[response.NotificationResponse]
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &page)
		s.Require().Len(page.Items, 1)
		n := page.Items[0]
		s.Equal("pending", n.Payload.Status)
		s.Equal("Camping tent", n.Payload.Product)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, notificationsURL+"/"+n.ID.String()+"/read", nil, s.ownerToken)
		s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, notificationsURL+"/unread-count", nil, s.ownerToken)
		var count response.UnreadCountResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &count)
		s.Zero(count.Count)

		// another user's notification is invisible
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, notificationsURL+"/"+n.ID.String()+"/read", nil, s.customerToken)
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *bookingSuite) TestMessages() {
	s.Run("conversation is visible to both sides", func() {
		id := s.book(s.customerToken)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, messagesURL, request.SendMessageRequest{
			RecipientID: s.ownerID,
			BookingID:   &id,
			Body:        "Can I pick it up early?",
		}, s.customerToken)
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, messagesURL+"/"+s.customerID.String(), nil, s.ownerToken)
		var page response.Page[response.MessageResponse]
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &page)
		s.Require().Len(page.Items, 1)
		s.Equal("Can I pick it up early?", page.Items[0].Body)
		s.Equal(s.customerID, page.Items[0].SenderID)
	})

	s.Run("unknown booking", func() {
		missing := uuid.New()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, messagesURL, request.SendMessageRequest{
			RecipientID: s.ownerID,
			BookingID:   &missing,
			Body:        "hello",
		}, s.customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})
}
