package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	alarmDomain "github.com/drowsalert/admin-api/alarm/domain"
	"github.com/drowsalert/admin-api/logger"
	"github.com/drowsalert/admin-api/notification/domain"
	"github.com/drowsalert/admin-api/notification/service"
)

func TestNotifications_ListNotifications(t *testing.T) {
	dispatcher := service.NewDispatcher(logger.FromContext)

	request := httptest.NewRequest(http.MethodGet, "http://example.com/api/admin/notifications", nil)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = request

	h := NewNotifications(logger.FromContext, dispatcher)

	assert.NoError(t, h.ListNotifications(ctx))
	assert.Equal(t, "[]", recorder.Body.String())

	dispatcher.Dispatch(ctx, alarmDomain.Occurrence{Email: "bob@x.com"})

	recorder = httptest.NewRecorder()
	ctx, _ = gin.CreateTestContext(recorder)
	ctx.Request = request

	assert.NoError(t, h.ListNotifications(ctx))

	var entries []domain.Entry
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
	assert.Equal(t, "Drowsiness alarm reported by bob@x.com", entries[0].Message)
}
