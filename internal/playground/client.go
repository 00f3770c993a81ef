// Package playground drives the proxy the way the browser front-end does: a typed
// client for the proxy routes, the per-screen view state and the bulk
// mark-as-read fan-out.
package playground

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Vasu1712/spring-playground/internal/models"
)

// APIError is a non-2xx answer from the proxy, carrying its {"error"} text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
	}
	return e.Message
}

// ErrNotAcknowledged is returned when a write succeeded at the HTTP level but the
// proxy did not answer {"success":true}.
var ErrNotAcknowledged = errors.New("proxy did not acknowledge the operation")

// Client calls the proxy routes. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/spring/users", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.User](data)
}

func (c *Client) CreateUser(ctx context.Context, name string) (models.User, error) {
	var u models.User
	data, err := c.do(ctx, http.MethodPost, "/api/spring/users", nil, map[string]string{"name": name})
	if err != nil {
		return u, err
	}
	if err := json.Unmarshal(data, &u); err != nil {
		return u, fmt.Errorf("decode created user: %w", err)
	}
	return u, nil
}

func (c *Client) Followers(ctx context.Context, userID string) ([]models.User, error) {
	return c.userList(ctx, "/api/spring/follow/get-followers", userID)
}

func (c *Client) Following(ctx context.Context, userID string) ([]models.User, error) {
	return c.userList(ctx, "/api/spring/follow/get-following", userID)
}

func (c *Client) userList(ctx context.Context, path, userID string) ([]models.User, error) {
	data, err := c.do(ctx, http.MethodGet, path, url.Values{"userId": {userID}}, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.User](data)
}

// Follow makes currentUserID follow targetUserID.
func (c *Client) Follow(ctx context.Context, currentUserID, targetUserID string) error {
	return c.ack(ctx, http.MethodPost, "/api/spring/follow/post-follow", nil, map[string]string{
		"currentUserId": currentUserID,
		"targetUserId":  targetUserID,
	})
}

// Unfollow removes the edge currentUserID -> targetUserID.
func (c *Client) Unfollow(ctx context.Context, currentUserID, targetUserID string) error {
	return c.ack(ctx, http.MethodDelete, "/api/spring/follow/remove-follow", nil, map[string]string{
		"actionType":    "unfollow",
		"currentUserId": currentUserID,
		"targetUserId":  targetUserID,
	})
}

// RemoveFollower removes the edge followerID -> currentUserID.
func (c *Client) RemoveFollower(ctx context.Context, currentUserID, followerID string) error {
	return c.ack(ctx, http.MethodDelete, "/api/spring/follow/remove-follow", nil, map[string]string{
		"actionType":    "removeFollower",
		"followerId":    followerID,
		"currentUserId": currentUserID,
	})
}

func (c *Client) Conversation(ctx context.Context, userID, otherUserID string) ([]models.Message, error) {
	q := url.Values{"userId": {userID}, "otherUserId": {otherUserID}}
	data, err := c.do(ctx, http.MethodGet, "/api/spring/message/get-message", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Message](data)
}

func (c *Client) SendMessage(ctx context.Context, senderID, receiverID, content string) (models.Message, error) {
	var m models.Message
	data, err := c.do(ctx, http.MethodPost, "/api/spring/message/post-message", nil, map[string]string{
		"senderId":   senderID,
		"receiverId": receiverID,
		"content":    content,
	})
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("decode sent message: %w", err)
	}
	return m, nil
}

func (c *Client) Notifications(ctx context.Context, userID string) ([]models.Notification, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/spring/notifications/get-notification", url.Values{"userId": {userID}}, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Notification](data)
}

// MarkNotificationRead marks a single notification of userID as read.
func (c *Client) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	err := c.ack(ctx, http.MethodPost, "/api/spring/notifications/post-notification", nil, map[string]string{
		"userId":         userID,
		"notificationId": notificationID,
	})
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("Falha ao marcar notificação %s como lida", notificationID)
	}
	if errors.Is(err, ErrNotAcknowledged) {
		return fmt.Errorf("notificação %s: %w", notificationID, err)
	}
	return err
}

// CreatePost returns the stored post when the backend sent one back, nil otherwise.
func (c *Client) CreatePost(ctx context.Context, userID, content string) (*models.Post, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/spring/posts/create-post", nil, map[string]string{
		"userId":  userID,
		"content": content,
	})
	if err != nil {
		return nil, err
	}
	var p models.Post
	if len(bytes.TrimSpace(data)) == 0 || json.Unmarshal(data, &p) != nil || p.ID == "" {
		return nil, nil
	}
	return &p, nil
}

func (c *Client) DeletePost(ctx context.Context, userID, postID string) error {
	return c.ack(ctx, http.MethodDelete, "/api/spring/posts/delete-post", url.Values{"postId": {postID}}, map[string]string{
		"userId": userID,
	})
}

func (c *Client) AllPosts(ctx context.Context) ([]models.Post, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/spring/posts/get-all-posts", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Post](data)
}

func (c *Client) UserPosts(ctx context.Context, userID string) ([]models.Post, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/spring/posts/get-user-post", url.Values{"userId": {userID}}, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Post](data)
}

func (c *Client) ack(ctx context.Context, method, path string, query url.Values, body any) error {
	data, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	var a struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(data, &a); err != nil || !a.Success {
		return ErrNotAcknowledged
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &e)
		return nil, &APIError{Status: resp.StatusCode, Message: e.Error}
	}
	return data, nil
}

// decodeList accepts a bare JSON array or a paged {"content": [...]} object.
func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}
	if trimmed[0] == '{' {
		var page struct {
			Content []T `json:"content"`
		}
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, fmt.Errorf("decode page: %w", err)
		}
		if page.Content == nil {
			return []T{}, nil
		}
		return page.Content, nil
	}
	var list []T
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return list, nil
}
