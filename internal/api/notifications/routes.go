package notifications

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Vasu1712/spring-playground/internal/proxy"
)

// RegisterNotificationRoutes registers the notification routes.
func RegisterNotificationRoutes(r *mux.Router, b proxy.Backend) {
	r.Handle("/api/spring/notifications/get-notification", proxy.New(b, List)).Methods(http.MethodGet)
	r.Handle("/api/spring/notifications/post-notification", proxy.New(b, MarkRead)).Methods(http.MethodPost)
}
