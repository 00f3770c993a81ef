package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/Vasu1712/spring-playground/internal/backend"
)

// Backend issues the one outbound call of an invocation.
type Backend interface {
	Do(ctx context.Context, method, path string, payload any) (*backend.Response, error)
}

// Handler serves a single Endpoint.
type Handler struct {
	backend  Backend
	endpoint Endpoint
}

// New returns the handler for e.
func New(b Backend, e Endpoint) *Handler {
	return &Handler{backend: b, endpoint: e}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e := h.endpoint
	params := Params{}

	q := r.URL.Query()
	for _, f := range e.Query {
		v := q.Get(f.Name)
		if v == "" {
			log.Printf("[Proxy] %s: missing query parameter %q", e.Name, f.Name)
			WriteError(w, http.StatusBadRequest, e.QueryError)
			return
		}
		params[f.Name] = v
	}

	if len(e.Body) > 0 {
		body, err := decodeBody(r)
		if err != nil {
			log.Printf("[Proxy] %s: error decoding request body: %v", e.Name, err)
			WriteError(w, http.StatusBadRequest, invalidBody)
			return
		}
		if !collect(body, e.Body, params) {
			log.Printf("[Proxy] %s: missing body fields", e.Name)
			WriteError(w, http.StatusBadRequest, e.BodyError)
			return
		}
	}

	call(r.Context(), w, h.backend, e, params)
}

// Switch serves operations that share one route and are told apart by a
// discriminator field in the JSON body. Each variant keeps its own required
// fields and backend path.
type Switch struct {
	Field    string
	Missing  string // Discriminator absent
	Invalid  string // Discriminator not one of Variants
	Variants map[string]Endpoint
}

type switchHandler struct {
	backend Backend
	sw      Switch
}

// NewSwitch returns the handler for s.
func NewSwitch(b Backend, s Switch) http.Handler {
	return &switchHandler{backend: b, sw: s}
}

func (h *switchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		log.Printf("[Proxy] %s switch: error decoding request body: %v", h.sw.Field, err)
		WriteError(w, http.StatusBadRequest, invalidBody)
		return
	}

	kind, _ := body[h.sw.Field].(string)
	if !present(body[h.sw.Field], false) {
		WriteError(w, http.StatusBadRequest, h.sw.Missing)
		return
	}
	e, ok := h.sw.Variants[kind]
	if !ok {
		log.Printf("[Proxy] %s switch: unknown value %v", h.sw.Field, body[h.sw.Field])
		WriteError(w, http.StatusBadRequest, h.sw.Invalid)
		return
	}

	params := Params{h.sw.Field: kind}
	if !collect(body, e.Body, params) {
		log.Printf("[Proxy] %s: missing body fields", e.Name)
		WriteError(w, http.StatusBadRequest, e.BodyError)
		return
	}

	call(r.Context(), w, h.backend, e, params)
}

func decodeBody(r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

func collect(body map[string]any, fields []Field, params Params) bool {
	for _, f := range fields {
		v := body[f.Name]
		if !present(v, f.String) {
			return false
		}
		params[f.Name] = v
	}
	return true
}

// call performs the backend request and translates whatever comes back.
func call(ctx context.Context, w http.ResponseWriter, b Backend, e Endpoint, params Params) {
	path := e.Path(params)

	var payload any
	if e.Payload != nil {
		payload = e.Payload(params)
	}

	resp, err := b.Do(ctx, e.Method, path, payload)
	if err != nil {
		log.Printf("[Proxy] %s: backend call failed: %v", e.Name, err)
		WriteError(w, http.StatusInternalServerError, e.Internal)
		return
	}

	if !resp.OK() {
		msg := backendMessage(resp.Body, e.Failure)
		log.Printf("[Proxy] %s: backend (%s %s) responded with status %d: %s", e.Name, e.Method, path, resp.StatusCode, msg)
		WriteError(w, resp.StatusCode, msg)
		return
	}

	status := http.StatusOK
	if e.MirrorStatus {
		status = resp.StatusCode
	}

	switch e.Reply {
	case Acknowledge:
		WriteJSON(w, http.StatusOK, Ack{Success: true})
	case ForwardOrAcknowledge:
		switch {
		case resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(resp.Body)) == 0:
			WriteJSON(w, status, Ack{Success: true, Message: e.Created})
		case !json.Valid(resp.Body):
			log.Printf("[Proxy] %s: warning: backend (%s %s) answered %d with a non-JSON body", e.Name, e.Method, path, resp.StatusCode)
			WriteJSON(w, status, Ack{Success: true, Message: e.CreatedNoJSON})
		default:
			writeRaw(w, status, resp.Body)
		}
	default:
		if !json.Valid(resp.Body) {
			log.Printf("[Proxy] %s: backend (%s %s) answered %d with invalid JSON", e.Name, e.Method, path, resp.StatusCode)
			WriteError(w, http.StatusInternalServerError, e.Internal)
			return
		}
		writeRaw(w, status, resp.Body)
	}

	if e.OnSuccess != nil {
		e.OnSuccess(params, resp.Body)
	}
}
