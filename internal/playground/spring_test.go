package playground

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/Vasu1712/spring-playground/internal/backend"
	"github.com/Vasu1712/spring-playground/internal/models"
	"github.com/Vasu1712/spring-playground/internal/server"
	"github.com/Vasu1712/spring-playground/internal/ws"
)

// spring is an in-memory stand-in for the backend service, reachable only
// through the real proxy router.
type spring struct {
	mu            sync.Mutex
	seq           int
	users         []models.User
	follows       map[[2]string]bool
	posts         []models.Post
	messages      []models.Message
	notifications map[string][]models.Notification
	failMarkRead  map[string]bool
	calls         map[string]int
}

// newPlayground starts the fake backend and the proxy in front of it and
// returns a client pointed at the proxy.
func newPlayground(t *testing.T) (*spring, *Client) {
	t.Helper()
	s := &spring{
		follows:       map[[2]string]bool{},
		notifications: map[string][]models.Notification{},
		failMarkRead:  map[string]bool{},
		calls:         map[string]int{},
	}
	be := httptest.NewServer(s.router())
	t.Cleanup(be.Close)

	hub := ws.NewHub()
	go hub.Run()
	proxySrv := httptest.NewServer(server.NewRouter(backend.NewClient(be.URL, 0), hub))
	t.Cleanup(proxySrv.Close)

	return s, NewClient(proxySrv.URL, 0)
}

func (s *spring) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func (s *spring) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s%d", prefix, s.seq)
}

func (s *spring) user(id string) (models.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *spring) notify(userID, msg string) {
	s.notifications[userID] = append(s.notifications[userID], models.Notification{
		ID:        s.nextID("n"),
		Message:   msg,
		CreatedAt: fmt.Sprintf("2024-01-01T10:00:%02dZ", s.seq),
	})
}

func (s *spring) router() http.Handler {
	r := mux.NewRouter()
	h := func(name string, fn func(w http.ResponseWriter, r *http.Request, vars map[string]string)) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.calls[name]++
			fn(w, req, mux.Vars(req))
		}
	}

	r.HandleFunc("/api/users", h("listUsers", func(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
		writeJSON(w, http.StatusOK, map[string]any{"content": s.users})
	})).Methods(http.MethodGet)

	r.HandleFunc("/api/users", h("createUser", func(w http.ResponseWriter, req *http.Request, _ map[string]string) {
		var in struct{ Name string }
		_ = json.NewDecoder(req.Body).Decode(&in)
		u := models.User{ID: s.nextID("u"), Name: in.Name}
		s.users = append(s.users, u)
		writeJSON(w, http.StatusCreated, u)
	})).Methods(http.MethodPost)

	r.HandleFunc("/api/users/{id}/followers", h("followers", func(w http.ResponseWriter, _ *http.Request, v map[string]string) {
		out := []models.User{}
		for _, u := range s.users {
			if s.follows[[2]string{u.ID, v["id"]}] {
				out = append(out, u)
			}
		}
		writeJSON(w, http.StatusOK, out)
	})).Methods(http.MethodGet)

	r.HandleFunc("/api/users/{id}/following", h("following", func(w http.ResponseWriter, _ *http.Request, v map[string]string) {
		out := []models.User{}
		for _, u := range s.users {
			if s.follows[[2]string{v["id"], u.ID}] {
				out = append(out, u)
			}
		}
		writeJSON(w, http.StatusOK, out)
	})).Methods(http.MethodGet)

	r.HandleFunc("/api/follows/{a}/follow/{b}", h("follow", func(w http.ResponseWriter, _ *http.Request, v map[string]string) {
		if v["a"] == v["b"] {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Não é possível seguir a si mesmo"})
			return
		}
		s.follows[[2]string{v["a"], v["b"]}] = true
		s.notify(v["b"], "novo seguidor")
		w.WriteHeader(http.StatusOK)
	})).Methods(http.MethodPost)

	r.HandleFunc("/api/follows/{a}/unfollow/{b}", h("unfollow", func(w http.ResponseWriter, _ *http.Request, v map[string]string) {
		delete(s.follows, [2]string{v["a"], v["b"]})
		w.WriteHeader(http.StatusNoContent)
	})).Methods(http.MethodDelete)

	r.HandleFunc("/api/posts", h("allPosts", func(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
		writeJSON(w, http.StatusOK, s.posts)
	})).Methods(http.MethodGet)

	r.HandleFunc("/api/posts", h("createPost", func(w http.ResponseWriter, req *http.Request, _ map[string]string) {
		var in struct{ UserID, Content string }
		_ = json.NewDecoder(req.Body).Decode(&in)
		p := models.Post{
			ID:        s.nextID("p"),
			UserID:    in.UserID,
			Content:   in.Content,
			CreatedAt: fmt.Sprintf("2024-01-01T10:00:%02dZ", s.seq),
		}
		s.posts = append(s.posts, p)
		writeJSON(w, http.StatusCreated, p)
	})).Methods(http.MethodPost)

	r.HandleFunc("/api/posts/user/{id}", h("userPosts", func(w http.ResponseWriter, _ *http.Request, v map[string]string) {
		out := []models.Post{}
		for _, p := range s.posts {
			if p.UserID == v["id"] {
				out = append(out, p)
			}
		}
		writeJSON(w, http.StatusOK, out)
	})).Methods(http.MethodGet)

	r.HandleFunc("/api/posts/{id}", h("deletePost", func(w http.ResponseWriter, _ *http.Request, v map[string]string) {
		for i, p := range s.posts {
			if p.ID == v["id"] {
				s.posts = append(s.posts[:i], s.posts[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Post não encontrado"})
	})).Methods(http.MethodDelete)

	r.HandleFunc("/api/users/{a}/conversation/{b}", h("conversation", func(w http.ResponseWriter, _ *http.Request, v map[string]string) {
		out := []models.Message{}
		for _, m := range s.messages {
			if (m.SenderID == v["a"] && m.ReceiverID == v["b"]) || (m.SenderID == v["b"] && m.ReceiverID == v["a"]) {
				out = append(out, m)
			}
		}
		writeJSON(w, http.StatusOK, out)
	})).Methods(http.MethodGet)

	r.HandleFunc("/api/messages", h("sendMessage", func(w http.ResponseWriter, req *http.Request, _ map[string]string) {
		var in models.Message
		_ = json.NewDecoder(req.Body).Decode(&in)
		if _, ok := s.user(in.ReceiverID); !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Destinatário não encontrado"})
			return
		}
		in.ID = s.nextID("m")
		in.SentAt = fmt.Sprintf("2024-01-01T10:00:%02dZ", s.seq)
		s.messages = append(s.messages, in)
		s.notify(in.ReceiverID, "nova mensagem")
		writeJSON(w, http.StatusCreated, in)
	})).Methods(http.MethodPost)

	r.HandleFunc("/api/users/{id}/notifications", h("notifications", func(w http.ResponseWriter, _ *http.Request, v map[string]string) {
		out := append([]models.Notification{}, s.notifications[v["id"]]...)
		writeJSON(w, http.StatusOK, out)
	})).Methods(http.MethodGet)

	r.HandleFunc("/api/users/{id}/notifications/mark-read", h("markRead", func(w http.ResponseWriter, req *http.Request, v map[string]string) {
		var ids []string
		_ = json.NewDecoder(req.Body).Decode(&ids)
		for _, id := range ids {
			if s.failMarkRead[id] {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "falhou " + id})
				return
			}
		}
		ns := s.notifications[v["id"]]
		for i := range ns {
			for _, id := range ids {
				if ns[i].ID == id {
					ns[i].Read = true
				}
			}
		}
		w.WriteHeader(http.StatusOK)
	})).Methods(http.MethodPost)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
