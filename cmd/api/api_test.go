package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/drowsalert/admin-api/framework/connection"
	"github.com/drowsalert/admin-api/logger"
	notificationService "github.com/drowsalert/admin-api/notification/service"
)

func buildTestHandler(t *testing.T) http.Handler {
	t.Helper()

	gin.SetMode(gin.TestMode)

	conn := &connection.Connection{
		FirestoreClient: &connection.FirestoreClient{},
		AuthClient:      &connection.AuthClient{},
	}

	dispatcher := notificationService.NewDispatcher(logger.FromContext)

	return NewAPI(make(chan os.Signal, 1), &logger.Logging{}, conn, dispatcher).Build()
}

func TestBuildEnableAccountTakesNoBearer(t *testing.T) {
	handler := buildTestHandler(t)

	// The malformed body stops the request at the handler's own binding,
	// so reaching a 400 means no auth gate rejected it first.
	request := httptest.NewRequest(http.MethodPut, "/api/admin/accounts/enable", strings.NewReader("{"))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestBuildAdminRoutesRequireBearer(t *testing.T) {
	handler := buildTestHandler(t)

	request := httptest.NewRequest(http.MethodGet, "/api/admin/accounts", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
