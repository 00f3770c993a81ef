package users

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Vasu1712/spring-playground/internal/proxy"
)

// RegisterUserRoutes registers the user listing and creation routes.
func RegisterUserRoutes(r *mux.Router, b proxy.Backend) {
	r.Handle("/api/spring/users", proxy.New(b, ListUsers)).Methods(http.MethodGet)
	r.Handle("/api/spring/users", proxy.New(b, CreateUser)).Methods(http.MethodPost)
}
