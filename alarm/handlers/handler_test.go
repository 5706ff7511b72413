package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/drowsalert/admin-api/alarm/dal/mocks"
	"github.com/drowsalert/admin-api/alarm/domain"
	"github.com/drowsalert/admin-api/framework/web"
	"github.com/drowsalert/admin-api/logger"
)

func getContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	request := httptest.NewRequest(http.MethodGet, target, nil)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = request

	return ctx, recorder
}

func TestAlarms_ListAlarms(t *testing.T) {
	docs := []domain.AlarmDocument{
		{
			Email: "bob@x.com",
			AlarmHistory: []domain.HistoryEntry{
				{Time: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
			},
		},
	}

	t.Run("returns the alarm documents for the email", func(t *testing.T) {
		ctx, recorder := getContext("http://example.com/api/admin/alarms?email=bob@x.com")

		alarms := mocks.Alarms{}
		alarms.On("GetAlarmsByEmail", ctx, "bob@x.com").Return(docs, nil).Once()

		h := &Alarms{loggerProvider: logger.FromContext, alarms: &alarms}

		assert.NoError(t, h.ListAlarms(ctx))

		var actual []domain.AlarmDocument
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &actual))
		assert.Equal(t, docs, actual)
	})

	t.Run("missing email is a bad request", func(t *testing.T) {
		ctx, _ := getContext("http://example.com/api/admin/alarms")

		h := &Alarms{loggerProvider: logger.FromContext, alarms: &mocks.Alarms{}}

		err := h.ListAlarms(ctx)

		var webErr *web.Error
		assert.ErrorAs(t, err, &webErr)
		assert.Equal(t, http.StatusBadRequest, webErr.Status)
	})

	t.Run("store failure is an internal error", func(t *testing.T) {
		ctx, _ := getContext("http://example.com/api/admin/alarms?email=bob@x.com")

		alarms := mocks.Alarms{}
		alarms.On("GetAlarmsByEmail", ctx, "bob@x.com").
			Return(nil, errors.New("document store unavailable")).
			Once()

		h := &Alarms{loggerProvider: logger.FromContext, alarms: &alarms}

		err := h.ListAlarms(ctx)

		var webErr *web.Error
		assert.ErrorAs(t, err, &webErr)
		assert.Equal(t, http.StatusInternalServerError, webErr.Status)
	})
}
