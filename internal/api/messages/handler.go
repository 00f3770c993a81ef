package messages

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/Vasu1712/spring-playground/internal/proxy"
	"github.com/Vasu1712/spring-playground/internal/ws"
)

// Conversation returns the messages exchanged between userId and otherUserId.
var Conversation = proxy.Endpoint{
	Name:       "get conversation",
	Method:     http.MethodGet,
	Path:       proxy.PathOf("/api/users/%s/conversation/%s", "userId", "otherUserId"),
	Query:      proxy.Fields("userId", "otherUserId"),
	QueryError: "userId e otherUserId são obrigatórios como parâmetros de query",
	Failure:    "Falha ao carregar conversa da API externa",
	Internal:   "Erro interno ao processar a busca da conversa",
}

// Send forwards a new message and, when a hub is given, pushes the stored message
// to the receiver's open websocket connections.
func Send(hub *ws.Hub) proxy.Endpoint {
	e := proxy.Endpoint{
		Name:         "send message",
		Method:       http.MethodPost,
		Path:         proxy.PathOf("/api/messages"),
		Body:         proxy.Fields("senderId", "receiverId", "content"),
		BodyError:    "senderId, receiverId e content são obrigatórios no corpo da requisição",
		Failure:      "Falha ao enviar mensagem para a API externa",
		Internal:     "Erro interno ao processar o envio da mensagem",
		Payload:      func(p proxy.Params) any { return p.Pick("senderId", "receiverId", "content") },
		MirrorStatus: true,
	}
	if hub != nil {
		e.OnSuccess = func(p proxy.Params, body []byte) {
			hub.Deliver(p.String("receiverId"), body)
		}
	}
	return e
}

var upgrader = websocket.Upgrader{}

// ServeWS subscribes a connection to the messages sent to user_id.
func ServeWS(hub *ws.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			proxy.WriteError(w, http.StatusBadRequest, "user_id é obrigatório como parâmetro de query")
			log.Println("[Messages] Validation error: user_id missing for WS")
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("[Messages] Failed to upgrade WebSocket for user %s: %v", userID, err)
			return
		}

		client := &ws.Client{
			UserID: userID,
			Send:   make(chan []byte, 256),
			Conn:   conn,
		}
		hub.Register <- client

		// Read pump: the browser never sends anything, reading only detects disconnects.
		go func() {
			defer func() {
				hub.Unregister <- client
				conn.Close()
			}()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
						log.Printf("[Messages] WebSocket read error for user %s: %v", userID, err)
					}
					return
				}
			}
		}()

		// Write pump
		go func() {
			defer conn.Close()
			for message := range client.Send {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					log.Printf("[Messages] WebSocket write error for user %s: %v", userID, err)
					return
				}
			}
		}()
	}
}
