//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-backoffice/internal/domain/synclog"
	"hotel-backoffice/internal/handler/api"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/usecase"
	syncuc "hotel-backoffice/internal/usecase/sync"
	"hotel-backoffice/tests/common/httptest"
	usecasemock "hotel-backoffice/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SyncHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockSyncUseCase
	handler     *api.SyncHandler
}

func (s *SyncHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockSyncUseCase(s.mockCtrl)
	s.handler = api.NewSyncHandler(s.mockUseCase)

	s.router.POST("/sync", s.handler.Trigger)
	s.router.GET("/sync/status", s.handler.Status)
	s.router.GET("/sync/logs", s.handler.ListLogs)
	s.router.GET("/sync/logs/:id", s.handler.GetLog)
}

func (s *SyncHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSyncHandlerSuite(t *testing.T) {
	suite.Run(t, new(SyncHandlerTestSuite))
}

func (s *SyncHandlerTestSuite) TestTrigger() {
	startedAt := time.Date(2026, 3, 12, 6, 0, 0, 0, time.UTC)

	s.Run("runs and returns the report", func() {
		report := &syncuc.Report{
			LogID:       uuid.NewString(),
			Status:      synclog.StatusSuccess,
			StartedAt:   startedAt,
			CompletedAt: startedAt.Add(3 * time.Second),
			Rooms:       syncuc.Result{Processed: 4, Created: 1, Updated: 2, Skipped: 1},
		}
		s.mockUseCase.EXPECT().
			Trigger(gomock.Any()).
			Return(report, nil)

		var resp resdto.SyncReportResponse
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sync", nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("success", resp.Status)
		s.Equal(int64(3000), resp.DurationMS)
		s.Equal(1, resp.Rooms.Created)
	})

	s.Run("rejects a concurrent trigger", func() {
		s.mockUseCase.EXPECT().
			Trigger(gomock.Any()).
			Return(nil, syncuc.ErrAlreadyRunning)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sync", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already in progress")
	})
}

func (s *SyncHandlerTestSuite) TestStatus() {
	startedAt := time.Date(2026, 3, 12, 6, 0, 0, 0, time.UTC)
	s.mockUseCase.EXPECT().
		Status(gomock.Any()).
		Return(syncuc.State{Running: true, StartedAt: startedAt})

	var resp resdto.SyncStatusResponse
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sync/status", nil, "")
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.True(resp.Running)
	s.Require().NotNil(resp.StartedAt)
	s.True(resp.StartedAt.Equal(startedAt))
}

func (s *SyncHandlerTestSuite) TestListLogs() {
	logs := []*synclog.SyncLog{
		synclog.NewSyncLog(synclog.TypeAll, time.Date(2026, 3, 12, 6, 0, 0, 0, time.UTC)),
	}
	s.mockUseCase.EXPECT().
		ListLogs(gomock.Any(), 10, 20).
		Return(logs, nil)

	var resp []*resdto.SyncLogResponse
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sync/logs?limit=10&offset=20", nil, "")
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Require().Len(resp, 1)
	s.Equal("in_progress", resp[0].Status)
}

func (s *SyncHandlerTestSuite) TestGetLog() {
	s.Run("returns the log", func() {
		l := synclog.NewSyncLog(synclog.TypeAll, time.Date(2026, 3, 12, 6, 0, 0, 0, time.UTC))
		s.mockUseCase.EXPECT().
			GetLog(gomock.Any(), l.ID).
			Return(l, nil)

		var resp resdto.SyncLogResponse
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sync/logs/"+l.ID.String(), nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(l.ID, resp.ID)
		s.Equal("all", resp.Type)
	})

	s.Run("invalid id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sync/logs/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid sync log id")
	})

	s.Run("missing log", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().
			GetLog(gomock.Any(), id).
			Return(nil, usecase.ErrSyncLogNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sync/logs/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Sync log not found")
	})
}
