package proxy

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorBody is the envelope of every failed proxy call.
type ErrorBody struct {
	Error string `json:"error"`
}

// Ack is the envelope of operations whose backend response carries no payload.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

const invalidBody = "Corpo da requisição JSON inválido"

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Proxy] Error writing response: %v", err)
	}
}

// WriteError writes {"error": msg} with the given status.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorBody{Error: msg})
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Printf("[Proxy] Error writing response: %v", err)
	}
}

// backendMessage extracts a readable message from a backend error body,
// preferring "message" over "error".
func backendMessage(body []byte, fallback string) string {
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return fallback
	}
	for _, k := range []string{"message", "error"} {
		if s, ok := data[k].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// MethodNotAllowed answers requests whose path exists but whose method does not.
func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[Proxy] Method Not Allowed: %s %s", r.Method, r.URL.Path)
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
}
