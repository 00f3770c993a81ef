package notifications

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vasu1712/spring-playground/internal/api/apitest"
)

func TestListNotifications(t *testing.T) {
	b := apitest.NewBackend(t)
	b.Reply(http.StatusOK, `[{"id":"n1","message":"Bia seguiu você","read":false,"createdAt":"2024-05-01T10:00:00"}]`)
	r := apitest.Router()
	RegisterNotificationRoutes(r, b.Client)

	w := apitest.Do(r, http.MethodGet, "/api/spring/notifications/get-notification?userId=u1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, b.Calls(), 1)
	assert.Equal(t, "/api/users/u1/notifications", b.Calls()[0].Path)
}

func TestMarkReadSendsSingleIDList(t *testing.T) {
	b := apitest.NewBackend(t)
	b.Reply(http.StatusOK, ``)
	r := apitest.Router()
	RegisterNotificationRoutes(r, b.Client)

	w := apitest.Do(r, http.MethodPost, "/api/spring/notifications/post-notification", `{"userId":"u1","notificationId":"n7"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	require.Len(t, b.Calls(), 1)
	assert.Equal(t, "/api/users/u1/notifications/mark-read", b.Calls()[0].Path)
	assert.JSONEq(t, `["n7"]`, b.Calls()[0].Body)
}

func TestMarkReadValidation(t *testing.T) {
	b := apitest.NewBackend(t)
	r := apitest.Router()
	RegisterNotificationRoutes(r, b.Client)

	w := apitest.Do(r, http.MethodPost, "/api/spring/notifications/post-notification", `{"userId":"u1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"userId e notificationId são obrigatórios no corpo da requisição"}`, w.Body.String())
	assert.Empty(t, b.Calls())
}
