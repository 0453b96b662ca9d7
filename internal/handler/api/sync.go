package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/usecase"
	syncuc "hotel-backoffice/internal/usecase/sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SyncHandler struct {
	syncUseCase usecase.SyncUseCase
}

func NewSyncHandler(syncUseCase usecase.SyncUseCase) *SyncHandler {
	return &SyncHandler{syncUseCase: syncUseCase}
}

// Trigger runs a full synchronization and blocks until it completes.
func (h *SyncHandler) Trigger(c *gin.Context) {
	report, err := h.syncUseCase.Trigger(c.Request.Context())
	if err != nil {
		if errors.Is(err, syncuc.ErrAlreadyRunning) {
			c.JSON(http.StatusConflict, gin.H{"error": "Synchronization is already in progress"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSyncReport(report))
}

func (h *SyncHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromSyncState(h.syncUseCase.Status(c.Request.Context())))
}

func (h *SyncHandler) ListLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, err := h.syncUseCase.ListLogs(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSyncLogs(logs))
}

func (h *SyncHandler) GetLog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sync log id"})
		return
	}

	l, err := h.syncUseCase.GetLog(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrSyncLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sync log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSyncLog(l))
}
