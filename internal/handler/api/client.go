package api

import (
	"errors"
	"net/http"

	"hotel-backoffice/internal/domain/client"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientHandler struct {
	clientUseCase usecase.ClientUseCase
}

func NewClientHandler(clientUseCase usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{clientUseCase: clientUseCase}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req reqdto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rec, err := h.clientUseCase.FindOrCreate(c.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, client.ErrInvalidEmail) || errors.Is(err, client.ErrEmptyFullName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromClient(rec))
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client id"})
		return
	}

	var req reqdto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rec, err := h.clientUseCase.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		if errors.Is(err, usecase.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resdto.FromClient(rec))
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client id"})
		return
	}

	rec, err := h.clientUseCase.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromClient(rec))
}

func (h *ClientHandler) List(c *gin.Context) {
	recs, err := h.clientUseCase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromClients(recs))
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client id"})
		return
	}

	if err := h.clientUseCase.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		case errors.Is(err, usecase.ErrClientHasReservations):
			c.JSON(http.StatusConflict, gin.H{"error": "Client has active reservations"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
