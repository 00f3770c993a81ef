package posts

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Vasu1712/spring-playground/internal/proxy"
)

// RegisterPostRoutes registers the feed and post routes.
func RegisterPostRoutes(r *mux.Router, b proxy.Backend) {
	r.Handle("/api/spring/posts/get-all-posts", proxy.New(b, AllPosts)).Methods(http.MethodGet)
	r.Handle("/api/spring/posts/get-user-post", proxy.New(b, UserPosts)).Methods(http.MethodGet)
	r.Handle("/api/spring/posts/create-post", proxy.New(b, CreatePost)).Methods(http.MethodPost)
	r.Handle("/api/spring/posts/delete-post", proxy.New(b, DeletePost)).Methods(http.MethodDelete)
}
