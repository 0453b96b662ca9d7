//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser authenticates through the real login endpoint and returns the
// issued token.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	body := reqdto.LoginRequest{Email: email, Password: password}
	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", body, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp resdto.LoginResponse
	httptest.DecodeResponseBody(t, w.Body, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
