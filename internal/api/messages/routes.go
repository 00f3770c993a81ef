package messages

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Vasu1712/spring-playground/internal/proxy"
	"github.com/Vasu1712/spring-playground/internal/ws"
)

// RegisterMessageRoutes registers the conversation routes and the live message socket.
func RegisterMessageRoutes(r *mux.Router, b proxy.Backend, hub *ws.Hub) {
	r.Handle("/api/spring/message/get-message", proxy.New(b, Conversation)).Methods(http.MethodGet)
	r.Handle("/api/spring/message/post-message", proxy.New(b, Send(hub))).Methods(http.MethodPost)
	r.HandleFunc("/ws/messages", ServeWS(hub)).Methods(http.MethodGet)
}
