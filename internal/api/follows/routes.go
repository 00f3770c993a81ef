package follows

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Vasu1712/spring-playground/internal/proxy"
)

// RegisterFollowRoutes registers the follow-graph routes.
func RegisterFollowRoutes(r *mux.Router, b proxy.Backend) {
	r.Handle("/api/spring/follow/get-followers", proxy.New(b, Followers)).Methods(http.MethodGet)
	r.Handle("/api/spring/follow/get-following", proxy.New(b, Following)).Methods(http.MethodGet)
	r.Handle("/api/spring/follow/post-follow", proxy.New(b, Follow)).Methods(http.MethodPost)
	r.Handle("/api/spring/follow/remove-follow", proxy.NewSwitch(b, RemoveFollow)).Methods(http.MethodDelete)
}
