package playground

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Vasu1712/spring-playground/internal/models"
)

// The views below hold the state of one screen for the active user. After every
// mutation they re-fetch from the proxy; the backend stays the only source of
// truth. A view is meant to be driven from one goroutine.

// ErrNoUser is returned by view actions that need an active user.
var ErrNoUser = errors.New("nenhum usuário selecionado")

// FollowView shows who the active user follows and is followed by.
type FollowView struct {
	client *Client

	UserID    string
	Users     []models.User
	Followers []models.User
	Following []models.User
	Loading   bool
	Err       error
}

func NewFollowView(c *Client) *FollowView {
	return &FollowView{client: c}
}

// SetUser switches the active user and reloads everything. An empty id clears the view.
func (v *FollowView) SetUser(ctx context.Context, userID string) error {
	v.UserID = userID
	v.Users, v.Followers, v.Following, v.Err = nil, nil, nil, nil
	if userID == "" {
		return nil
	}

	users, err := v.client.ListUsers(ctx)
	if err != nil {
		v.Err = err
		return err
	}
	v.Users = users
	return v.Refresh(ctx)
}

// Refresh loads followers and following concurrently and applies both once both are back.
func (v *FollowView) Refresh(ctx context.Context) error {
	if v.UserID == "" {
		return ErrNoUser
	}
	v.Loading = true
	defer func() { v.Loading = false }()

	var (
		wg                      sync.WaitGroup
		followers, following    []models.User
		followersErr, followErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		followers, followersErr = v.client.Followers(ctx, v.UserID)
	}()
	go func() {
		defer wg.Done()
		following, followErr = v.client.Following(ctx, v.UserID)
	}()
	wg.Wait()

	if err := errors.Join(followersErr, followErr); err != nil {
		v.Err = err
		v.Followers, v.Following = nil, nil
		return err
	}
	v.Err = nil
	v.Followers, v.Following = followers, following
	return nil
}

// Suggestions lists users the active user could follow.
func (v *FollowView) Suggestions() []models.User {
	followed := make(map[string]bool, len(v.Following))
	for _, u := range v.Following {
		followed[u.ID] = true
	}
	var out []models.User
	for _, u := range v.Users {
		if u.ID != v.UserID && !followed[u.ID] {
			out = append(out, u)
		}
	}
	return out
}

func (v *FollowView) Follow(ctx context.Context, targetUserID string) error {
	return v.mutate(ctx, func() error { return v.client.Follow(ctx, v.UserID, targetUserID) })
}

func (v *FollowView) Unfollow(ctx context.Context, targetUserID string) error {
	return v.mutate(ctx, func() error { return v.client.Unfollow(ctx, v.UserID, targetUserID) })
}

func (v *FollowView) RemoveFollower(ctx context.Context, followerID string) error {
	return v.mutate(ctx, func() error { return v.client.RemoveFollower(ctx, v.UserID, followerID) })
}

func (v *FollowView) mutate(ctx context.Context, write func() error) error {
	if v.UserID == "" {
		return ErrNoUser
	}
	if err := write(); err != nil {
		_ = v.Refresh(ctx)
		v.Err = err
		return err
	}
	return v.Refresh(ctx)
}

// PostView holds the global feed and the active user's own posts, newest first.
type PostView struct {
	client *Client

	UserID  string
	Feed    []models.Post
	Mine    []models.Post
	Loading bool
	Err     error
}

func NewPostView(c *Client) *PostView {
	return &PostView{client: c}
}

func (v *PostView) SetUser(ctx context.Context, userID string) error {
	v.UserID = userID
	v.Mine, v.Err = nil, nil
	if err := v.RefreshFeed(ctx); err != nil {
		return err
	}
	if userID == "" {
		return nil
	}
	return v.RefreshMine(ctx)
}

func (v *PostView) RefreshFeed(ctx context.Context) error {
	v.Loading = true
	defer func() { v.Loading = false }()

	posts, err := v.client.AllPosts(ctx)
	if err != nil {
		v.Err, v.Feed = err, nil
		return err
	}
	models.SortPostsNewestFirst(posts)
	v.Feed = posts
	return nil
}

func (v *PostView) RefreshMine(ctx context.Context) error {
	if v.UserID == "" {
		return ErrNoUser
	}
	v.Loading = true
	defer func() { v.Loading = false }()

	posts, err := v.client.UserPosts(ctx, v.UserID)
	if err != nil {
		v.Err, v.Mine = err, nil
		return err
	}
	models.SortPostsNewestFirst(posts)
	v.Mine = posts
	return nil
}

// Create publishes content as the active user and reloads the user's posts.
func (v *PostView) Create(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if v.UserID == "" {
		return ErrNoUser
	}
	if content == "" {
		return nil
	}
	if _, err := v.client.CreatePost(ctx, v.UserID, content); err != nil {
		v.Err = err
		return err
	}
	return v.RefreshMine(ctx)
}

func (v *PostView) Delete(ctx context.Context, postID string) error {
	if v.UserID == "" {
		return ErrNoUser
	}
	if err := v.client.DeletePost(ctx, v.UserID, postID); err != nil {
		v.Err = err
		return err
	}
	return v.RefreshMine(ctx)
}

// MessageView is a one-to-one conversation between the active user and a partner.
type MessageView struct {
	client *Client

	UserID   string
	Partners []models.User
	Partner  *models.User
	Messages []models.Message
	Loading  bool
	Err      error
}

func NewMessageView(c *Client) *MessageView {
	return &MessageView{client: c}
}

// SetUser switches the active user, forgets the open conversation and reloads
// the possible partners (everyone but the active user).
func (v *MessageView) SetUser(ctx context.Context, userID string) error {
	v.UserID = userID
	v.Partner, v.Messages, v.Partners, v.Err = nil, nil, nil, nil
	if userID == "" {
		return nil
	}

	users, err := v.client.ListUsers(ctx)
	if err != nil {
		v.Err = err
		return err
	}
	for _, u := range users {
		if u.ID != userID {
			v.Partners = append(v.Partners, u)
		}
	}
	return nil
}

// Open loads the conversation with partner, oldest message first.
func (v *MessageView) Open(ctx context.Context, partner models.User) error {
	if v.UserID == "" {
		return ErrNoUser
	}
	v.Partner = &partner
	v.Loading = true
	defer func() { v.Loading = false }()

	msgs, err := v.client.Conversation(ctx, v.UserID, partner.ID)
	if err != nil {
		v.Err, v.Messages = err, nil
		return err
	}
	models.SortMessagesOldestFirst(msgs)
	v.Err, v.Messages = nil, msgs
	return nil
}

// Send posts text to the open conversation and appends the stored message. On
// failure it returns the text so the caller can put it back in the input.
func (v *MessageView) Send(ctx context.Context, text string) (unsent string, err error) {
	content := strings.TrimSpace(text)
	if content == "" || v.Partner == nil {
		return text, nil
	}
	if v.UserID == "" {
		return text, ErrNoUser
	}

	msg, err := v.client.SendMessage(ctx, v.UserID, v.Partner.ID, content)
	if err != nil {
		v.Err = err
		return content, err
	}
	v.Messages = append(v.Messages, msg)
	return "", nil
}

// NotificationView lists the active user's notifications, newest first.
type NotificationView struct {
	client *Client

	UserID        string
	Notifications []models.Notification
	Loading       bool
	MarkingRead   bool
	Err           error
}

func NewNotificationView(c *Client) *NotificationView {
	return &NotificationView{client: c}
}

func (v *NotificationView) SetUser(ctx context.Context, userID string) error {
	v.UserID = userID
	v.Notifications, v.Err = nil, nil
	if userID == "" {
		return nil
	}
	return v.Refresh(ctx)
}

func (v *NotificationView) Refresh(ctx context.Context) error {
	if v.UserID == "" {
		return ErrNoUser
	}
	v.Loading = true
	defer func() { v.Loading = false }()

	ns, err := v.client.Notifications(ctx, v.UserID)
	if err != nil {
		v.Err, v.Notifications = err, nil
		return err
	}
	models.SortNotificationsNewestFirst(ns)
	v.Err, v.Notifications = nil, ns
	return nil
}

// Unread counts notifications not yet marked read.
func (v *NotificationView) Unread() int {
	n := 0
	for _, x := range v.Notifications {
		if !x.Read {
			n++
		}
	}
	return n
}

// MarkAllRead marks every unread notification and keeps whatever partially succeeded.
func (v *NotificationView) MarkAllRead(ctx context.Context) (MarkReadResult, error) {
	if v.UserID == "" {
		return MarkReadResult{}, ErrNoUser
	}
	if v.MarkingRead || v.Unread() == 0 {
		return MarkReadResult{Notifications: v.Notifications}, nil
	}

	v.MarkingRead = true
	res := MarkAllRead(ctx, v.client, v.UserID, v.Notifications)
	v.MarkingRead = false

	v.Notifications = res.Notifications
	if res.Failed > 0 {
		v.Err = errors.New(res.Summary())
		return res, v.Err
	}
	v.Err = nil
	return res, nil
}
