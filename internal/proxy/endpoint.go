package proxy

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Reply selects how a successful backend response is turned into the proxy response.
type Reply int

const (
	// Forward relays the backend's JSON body unchanged.
	Forward Reply = iota
	// Acknowledge ignores the backend body and answers {"success":true}.
	Acknowledge
	// ForwardOrAcknowledge relays a JSON body when there is one and acknowledges otherwise.
	ForwardOrAcknowledge
)

// Field is a required input. String fields must hold a JSON string, not just a truthy value.
type Field struct {
	Name   string
	String bool
}

// Fields builds plain required fields from their names.
func Fields(names ...string) []Field {
	fs := make([]Field, len(names))
	for i, n := range names {
		fs[i] = Field{Name: n}
	}
	return fs
}

// Endpoint describes one browser-facing operation and the single backend call behind it.
// Error texts are user-facing and localized.
type Endpoint struct {
	Name   string
	Method string // Backend method
	Path   func(Params) string

	Query      []Field // Required query-string parameters
	Body       []Field // Required JSON body fields; a body is only read when non-empty
	QueryError string
	BodyError  string

	Failure  string // Fallback when the backend error body has no message
	Internal string // Transport and parse failures

	Payload func(Params) any // Outbound JSON body, nil sends none

	Reply        Reply
	MirrorStatus bool // Answer with the backend's success status instead of 200

	// Acknowledgement texts for ForwardOrAcknowledge.
	Created       string // Empty body or 204
	CreatedNoJSON string // Non-JSON body on success

	// OnSuccess runs after a 2xx backend response has been written out.
	OnSuccess func(p Params, body []byte)
}

// Params are the validated inputs of one invocation, query and body merged.
type Params map[string]any

// String returns the named value as text, for use in backend paths.
func (p Params) String(name string) string {
	switch v := p[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Pick copies the named values into a payload map, keeping their JSON types.
func (p Params) Pick(names ...string) map[string]any {
	out := make(map[string]any, len(names))
	for _, n := range names {
		out[n] = p[n]
	}
	return out
}

// PathOf returns a path builder that fills each %s of format with the escaped value
// of the matching parameter.
func PathOf(format string, names ...string) func(Params) string {
	return func(p Params) string {
		args := make([]any, len(names))
		for i, n := range names {
			args[i] = url.PathEscape(p.String(n))
		}
		return fmt.Sprintf(format, args...)
	}
}

// present mirrors the truthiness check the browser client relies on:
// missing, null, "", false and 0 all count as absent.
func present(v any, wantString bool) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return !wantString && x
	case json.Number:
		f, err := x.Float64()
		return !wantString && (err != nil || f != 0)
	default:
		return !wantString
	}
}
