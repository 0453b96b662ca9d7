//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/tests/common/authtest"
	"hotel-backoffice/tests/common/builder"
	"hotel-backoffice/tests/common/dbtest"
	"hotel-backoffice/tests/common/httptest"
	"hotel-backoffice/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reservationsURL = "/api/reservations"

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type fixtures struct {
	token    string
	roomID   uuid.UUID
	clientID uuid.UUID
	checkIn  time.Time
	checkOut time.Time
}

func (s *BookingSuite) seed() fixtures {
	t := s.T()

	dbtest.CreateTestUser(t, s.DB, "staff@example.com", "password123", "staff")
	roomID := dbtest.CreateTestRoom(t, s.DB, "101", 15000)
	clientID := dbtest.CreateTestClient(t, s.DB, "guest@example.com")
	token := authtest.LoginUser(t, s.Router, "staff@example.com", "password123")

	checkIn := time.Now().UTC().AddDate(0, 0, 7)
	return fixtures{
		token:    token,
		roomID:   roomID,
		clientID: clientID,
		checkIn:  checkIn,
		checkOut: checkIn.AddDate(0, 0, 3),
	}
}

func (s *BookingSuite) book(f fixtures, checkIn, checkOut time.Time) *resdto.ReservationResponse {
	t := s.T()

	reqBody := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.RoomID = f.roomID
		b.ClientID = f.clientID
		b.CheckIn = checkIn
		b.CheckOut = checkOut
	}).BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, f.token)
	require.Equal(t, http.StatusCreated, w.Code, "booking failed: %s", w.Body.String())

	var resp resdto.ReservationResponse
	httptest.DecodeResponseBody(t, w.Body, &resp)
	return &resp
}

func (s *BookingSuite) TestCreateReservation() {
	s.Run("books a room and prices it from the nightly rate", func() {
		f := s.seed()

		resp := s.book(f, f.checkIn, f.checkOut)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", reservationsURL, resp.ID), nil, f.token)
		var fetched resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &fetched)

		expected := resdto.ReservationResponse{
			RoomID:          f.roomID,
			ClientID:        f.clientID,
			CheckIn:         f.checkIn.Format("2006-01-02"),
			CheckOut:        f.checkOut.Format("2006-01-02"),
			Nights:          3,
			Adults:          2,
			SpecialRequests: "late arrival",
			TotalPriceCents: 45000,
			Status:          "pending",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.ReservationResponse{}, "ID"),
		}
		if diff := cmp.Diff(expected, fetched, opts...); diff != "" {
			s.T().Errorf("reservation mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("rejects an overlapping booking", func() {
		f := s.seed()
		s.book(f, f.checkIn, f.checkOut)

		reqBody := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.RoomID = f.roomID
			b.ClientID = f.clientID
			b.CheckIn = f.checkIn.AddDate(0, 0, 1)
			b.CheckOut = f.checkOut.AddDate(0, 0, 1)
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, reqBody, f.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not available")
	})

	s.Run("allows back-to-back stays", func() {
		f := s.seed()
		s.book(f, f.checkIn, f.checkOut)

		// Check-out day equals the next check-in day: half-open ranges do
		// not collide.
		resp := s.book(f, f.checkOut, f.checkOut.AddDate(0, 0, 2))
		s.Equal("pending", resp.Status)
	})

	s.Run("cancelled reservation releases its dates", func() {
		f := s.seed()
		first := s.book(f, f.checkIn, f.checkOut)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/cancel", reservationsURL, first.ID), nil, f.token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		rebooked := s.book(f, f.checkIn, f.checkOut)
		s.NotEqual(first.ID, rebooked.ID)
	})

	s.Run("requires authentication", func() {
		f := s.seed()

		reqBody := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.RoomID = f.roomID
			b.ClientID = f.clientID
			b.CheckIn = f.checkIn
			b.CheckOut = f.checkOut
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, reqBody, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *BookingSuite) TestAvailability() {
	s.Run("reflects existing bookings", func() {
		f := s.seed()

		url := fmt.Sprintf("/api/availability?roomId=%s&checkIn=%s&checkOut=%s",
			f.roomID, f.checkIn.Format("2006-01-02"), f.checkOut.Format("2006-01-02"))

		var before resdto.AvailabilityResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &before)
		s.True(before.Available)

		s.book(f, f.checkIn, f.checkOut)

		var after resdto.AvailabilityResponse
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &after)
		s.False(after.Available)
	})
}

func (s *BookingSuite) TestReservationLifecycle() {
	s.Run("confirm, then delete is refused until cancelled", func() {
		f := s.seed()
		created := s.book(f, f.checkIn, f.checkOut)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/confirm", reservationsURL, created.ID), nil, f.token)
		var confirmed resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &confirmed)
		s.Equal("confirmed", confirmed.Status)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			fmt.Sprintf("%s/%s", reservationsURL, created.ID), nil, f.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "must be cancelled")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/cancel", reservationsURL, created.ID), nil, f.token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			fmt.Sprintf("%s/%s", reservationsURL, created.ID), nil, f.token)
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("confirmed reservation cannot be confirmed again", func() {
		f := s.seed()
		created := s.book(f, f.checkIn, f.checkOut)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/confirm", reservationsURL, created.ID), nil, f.token)
		require.Equal(s.T(), http.StatusOK, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/confirm", reservationsURL, created.ID), nil, f.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Invalid status transition")
	})
}
