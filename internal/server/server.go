// Package server wires the proxy routes into one HTTP handler.
package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Vasu1712/spring-playground/internal/api/follows"
	"github.com/Vasu1712/spring-playground/internal/api/messages"
	"github.com/Vasu1712/spring-playground/internal/api/notifications"
	"github.com/Vasu1712/spring-playground/internal/api/posts"
	"github.com/Vasu1712/spring-playground/internal/api/users"
	"github.com/Vasu1712/spring-playground/internal/middleware"
	"github.com/Vasu1712/spring-playground/internal/proxy"
	"github.com/Vasu1712/spring-playground/internal/ws"
)

// NewRouter registers every endpoint family against b. The hub receives sent
// messages for live delivery and must be running.
func NewRouter(b proxy.Backend, hub *ws.Hub) *mux.Router {
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = proxy.MethodNotAllowed()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		proxy.WriteError(w, http.StatusNotFound, "Rota não encontrada")
	})

	r.HandleFunc("/api/health", func(w http.ResponseWriter, req *http.Request) {
		proxy.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	users.RegisterUserRoutes(r, b)
	follows.RegisterFollowRoutes(r, b)
	posts.RegisterPostRoutes(r, b)
	messages.RegisterMessageRoutes(r, b, hub)
	notifications.RegisterNotificationRoutes(r, b)
	return r
}

// New returns the full handler: routes wrapped in request logging and CORS.
func New(b proxy.Backend, hub *ws.Hub, allowedOrigin string) http.Handler {
	return middleware.RequestID(middleware.CORS(allowedOrigin)(NewRouter(b, hub)))
}
