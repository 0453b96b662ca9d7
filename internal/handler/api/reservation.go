package api

import (
	"context"
	"errors"
	"net/http"

	"hotel-backoffice/internal/domain/reservation"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{reservationUseCase: reservationUseCase}
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	res, err := h.reservationUseCase.Create(c.Request.Context(), usecase.CreateReservationInput{
		RoomID:          req.RoomID,
		ClientID:        req.ClientID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Adults:          req.Adults,
		Children:        req.Children,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		case errors.Is(err, usecase.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Room is not available for the requested dates"})
		case errors.Is(err, reservation.ErrInvalidStayRange),
			errors.Is(err, reservation.ErrStayInPast),
			errors.Is(err, reservation.ErrNoAdults),
			errors.Is(err, reservation.ErrNegativeChildren):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}

	res, err := h.reservationUseCase.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.reservationUseCase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *ReservationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}

	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	res, err := h.reservationUseCase.Reschedule(c.Request.Context(), id, usecase.UpdateReservationInput{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Adults:   req.Adults,
		Children: req.Children,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		case errors.Is(err, usecase.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Room is not available for the requested dates"})
		case errors.Is(err, reservation.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Reservation can no longer be modified"})
		case errors.Is(err, reservation.ErrInvalidStayRange),
			errors.Is(err, reservation.ErrStayInPast),
			errors.Is(err, reservation.ErrNoAdults),
			errors.Is(err, reservation.ErrNegativeChildren):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.transition(c, h.reservationUseCase.Confirm)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.transition(c, h.reservationUseCase.Cancel)
}

func (h *ReservationHandler) transition(
	c *gin.Context,
	fn func(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error),
) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}

	res, err := fn(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		case errors.Is(err, reservation.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}

	if err := h.reservationUseCase.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		case errors.Is(err, reservation.ErrDeleteConfirmed):
			c.JSON(http.StatusConflict, gin.H{"error": "Confirmed reservation must be cancelled before deletion"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomId, checkIn and checkOut are required"})
		return
	}

	available, err := h.reservationUseCase.CheckAvailability(c.Request.Context(), req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		case errors.Is(err, reservation.ErrInvalidStayRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{Available: available})
}

func (h *ReservationHandler) Export(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}

	res, err := h.reservationUseCase.Export(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		case errors.Is(err, usecase.ErrAlreadyExported):
			c.JSON(http.StatusConflict, gin.H{"error": "Reservation already exists in the PMS"})
		case errors.Is(err, usecase.ErrRoomNotLinked):
			c.JSON(http.StatusConflict, gin.H{"error": "Room is not linked to a PMS room type"})
		case errors.Is(err, usecase.ErrExportDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "PMS integration is disabled"})
		case errors.Is(err, usecase.ErrExportFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "PMS rejected the booking"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}
