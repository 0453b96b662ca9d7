//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/handler/api"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/usecase"
	"hotel-backoffice/tests/common/builder"
	"hotel-backoffice/tests/common/httptest"
	usecasemock "hotel-backoffice/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockReservationUseCase
	handler     *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockReservationUseCase(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockUseCase)

	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/reservations/:id", s.handler.Get)
	s.router.PATCH("/reservations/:id", s.handler.Update)
	s.router.POST("/reservations/:id/confirm", s.handler.Confirm)
	s.router.POST("/reservations/:id/cancel", s.handler.Cancel)
	s.router.POST("/reservations/:id/export", s.handler.Export)
	s.router.DELETE("/reservations/:id", s.handler.Delete)
	s.router.GET("/availability", s.handler.CheckAvailability)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	created, err := b.BuildDomain()
	s.Require().NoError(err)

	s.Run("creates a reservation", func() {
		s.mockUseCase.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(created, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")

		var resp resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(created.ID(), resp.ID)
		s.Equal(b.RoomID, resp.RoomID)
		s.Equal("pending", resp.Status)
		s.Equal(3, resp.Nights)
		s.Equal(int64(45000), resp.TotalPriceCents)
	})

	s.Run("unknown room", func() {
		s.mockUseCase.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrRoomNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Room not found")
	})

	s.Run("dates already taken", func() {
		s.mockUseCase.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrRoomUnavailable)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not available")
	})

	s.Run("stay in the past", func() {
		s.mockUseCase.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, reservation.ErrStayInPast)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("malformed body", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations",
			map[string]any{"roomId": "not-a-uuid"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	res, err := builder.NewReservationBuilder().BuildDomain()
	s.Require().NoError(err)

	s.Run("returns the reservation", func() {
		s.mockUseCase.EXPECT().
			Get(gomock.Any(), res.ID()).
			Return(res, nil)

		var resp resdto.ReservationResponse
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+res.ID().String(), nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(res.ID(), resp.ID)
	})

	s.Run("invalid id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid reservation id")
	})

	s.Run("missing reservation", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().
			Get(gomock.Any(), id).
			Return(nil, usecase.ErrReservationNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestConfirm() {
	res, err := builder.NewReservationBuilder().BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(res.Confirm())

	s.Run("confirms a pending reservation", func() {
		s.mockUseCase.EXPECT().
			Confirm(gomock.Any(), res.ID()).
			Return(res, nil)

		var resp resdto.ReservationResponse
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+res.ID().String()+"/confirm", nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("confirmed", resp.Status)
	})

	s.Run("rejects an impossible transition", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().
			Confirm(gomock.Any(), id).
			Return(nil, reservation.ErrInvalidTransition)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+id.String()+"/confirm", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Invalid status transition")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	res, err := builder.NewReservationBuilder().BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(res.Cancel())

	s.mockUseCase.EXPECT().
		Cancel(gomock.Any(), res.ID()).
		Return(res, nil)

	var resp resdto.ReservationResponse
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
		"/reservations/"+res.ID().String()+"/cancel", nil, "")
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("cancelled", resp.Status)
}

func (s *ReservationHandlerTestSuite) TestExport() {
	res, err := builder.NewReservationBuilder().BuildDomain()
	s.Require().NoError(err)
	res.AttachExternal("PMS-RES-9001", nil)

	s.Run("pushes the booking and returns the pms id", func() {
		s.mockUseCase.EXPECT().
			Export(gomock.Any(), res.ID()).
			Return(res, nil)

		var resp resdto.ReservationResponse
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+res.ID().String()+"/export", nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().NotNil(resp.ExternalID)
		s.Equal("PMS-RES-9001", *resp.ExternalID)
	})

	s.Run("already exported", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().
			Export(gomock.Any(), id).
			Return(nil, usecase.ErrAlreadyExported)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+id.String()+"/export", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already exists in the PMS")
	})

	s.Run("room without a pms room type", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().
			Export(gomock.Any(), id).
			Return(nil, usecase.ErrRoomNotLinked)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+id.String()+"/export", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not linked to a PMS room type")
	})

	s.Run("pms integration disabled", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().
			Export(gomock.Any(), id).
			Return(nil, usecase.ErrExportDisabled)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+id.String()+"/export", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "disabled")
	})

	s.Run("pms rejects the booking", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().
			Export(gomock.Any(), id).
			Return(nil, usecase.ErrExportFailed)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+id.String()+"/export", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "rejected")
	})

	s.Run("unknown reservation", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().
			Export(gomock.Any(), id).
			Return(nil, usecase.ErrReservationNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+id.String()+"/export", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	s.Run("deletes a pending reservation", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().
			Delete(gomock.Any(), id).
			Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("refuses to delete a confirmed reservation", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().
			Delete(gomock.Any(), id).
			Return(reservation.ErrDeleteConfirmed)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "must be cancelled")
	})
}

func (s *ReservationHandlerTestSuite) TestCheckAvailability() {
	roomID := uuid.New()

	s.Run("room is free", func() {
		s.mockUseCase.EXPECT().
			CheckAvailability(gomock.Any(), roomID, gomock.Any(), gomock.Any()).
			Return(true, nil)

		var resp resdto.AvailabilityResponse
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability?roomId="+roomID.String()+"&checkIn=2026-04-01&checkOut=2026-04-03", nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.Available)
	})

	s.Run("room is taken", func() {
		s.mockUseCase.EXPECT().
			CheckAvailability(gomock.Any(), roomID, gomock.Any(), gomock.Any()).
			Return(false, nil)

		var resp resdto.AvailabilityResponse
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability?roomId="+roomID.String()+"&checkIn=2026-04-01&checkOut=2026-04-03", nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.False(resp.Available)
	})

	s.Run("missing query parameters", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "required")
	})

	s.Run("internal failure", func() {
		s.mockUseCase.EXPECT().
			CheckAvailability(gomock.Any(), roomID, gomock.Any(), gomock.Any()).
			Return(false, errors.New("db down"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability?roomId="+roomID.String()+"&checkIn=2026-04-01&checkOut=2026-04-03", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}
