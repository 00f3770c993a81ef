package playground

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vasu1712/spring-playground/internal/models"
)

func seedUsers(t *testing.T, c *Client, names ...string) []models.User {
	t.Helper()
	out := make([]models.User, len(names))
	for i, n := range names {
		u, err := c.CreateUser(context.Background(), n)
		require.NoError(t, err)
		out[i] = u
	}
	return out
}

func TestFollowViewRefetchesAfterEveryMutation(t *testing.T) {
	s, c := newPlayground(t)
	ctx := context.Background()
	us := seedUsers(t, c, "Ana", "Bia", "Caio")
	ana, bia, caio := us[0], us[1], us[2]

	v := NewFollowView(c)
	require.NoError(t, v.SetUser(ctx, ana.ID))
	assert.Len(t, v.Suggestions(), 2)

	require.NoError(t, v.Follow(ctx, bia.ID))
	require.Len(t, v.Following, 1)
	assert.Equal(t, bia.ID, v.Following[0].ID)
	assert.Equal(t, []models.User{caio}, v.Suggestions())

	// Backend rejects self-follow; the lists are re-fetched anyway.
	before := s.count("following")
	err := v.Follow(ctx, ana.ID)
	require.Error(t, err)
	assert.Equal(t, before+1, s.count("following"))
	assert.Equal(t, err, v.Err)

	require.NoError(t, v.Unfollow(ctx, bia.ID))
	assert.Empty(t, v.Following)
	assert.NoError(t, v.Err)
	assert.False(t, v.Loading)
}

func TestFollowViewRemoveFollower(t *testing.T) {
	_, c := newPlayground(t)
	ctx := context.Background()
	us := seedUsers(t, c, "Ana", "Bia")
	require.NoError(t, c.Follow(ctx, us[1].ID, us[0].ID))

	v := NewFollowView(c)
	require.NoError(t, v.SetUser(ctx, us[0].ID))
	require.Len(t, v.Followers, 1)

	require.NoError(t, v.RemoveFollower(ctx, us[1].ID))
	assert.Empty(t, v.Followers)
}

func TestViewsRequireUser(t *testing.T) {
	_, c := newPlayground(t)
	ctx := context.Background()

	assert.ErrorIs(t, NewFollowView(c).Follow(ctx, "x"), ErrNoUser)
	assert.ErrorIs(t, NewPostView(c).Create(ctx, "oi"), ErrNoUser)
	assert.ErrorIs(t, NewMessageView(c).Open(ctx, models.User{ID: "x"}), ErrNoUser)
	_, err := NewNotificationView(c).MarkAllRead(ctx)
	assert.ErrorIs(t, err, ErrNoUser)

	v := NewFollowView(c)
	require.NoError(t, v.SetUser(ctx, ""))
	assert.Empty(t, v.Users)
}

func TestPostViewCreateAndDelete(t *testing.T) {
	s, c := newPlayground(t)
	ctx := context.Background()
	ana := seedUsers(t, c, "Ana")[0]

	v := NewPostView(c)
	require.NoError(t, v.SetUser(ctx, ana.ID))
	assert.Empty(t, v.Mine)

	require.NoError(t, v.Create(ctx, "  primeiro  "))
	require.NoError(t, v.Create(ctx, "segundo"))
	require.NoError(t, v.Create(ctx, "   "))
	assert.Equal(t, 2, s.count("createPost"))
	require.Len(t, v.Mine, 2)
	assert.Equal(t, "segundo", v.Mine[0].Content, "newest first")
	assert.Equal(t, "primeiro", v.Mine[1].Content)

	require.NoError(t, v.Delete(ctx, v.Mine[0].ID))
	require.Len(t, v.Mine, 1)

	require.Error(t, v.Delete(ctx, "missing"))
	assert.Len(t, v.Mine, 1)

	require.NoError(t, v.RefreshFeed(ctx))
	assert.Len(t, v.Feed, 1)
}

func TestMessageViewSend(t *testing.T) {
	s, c := newPlayground(t)
	ctx := context.Background()
	us := seedUsers(t, c, "Ana", "Bia")
	ana, bia := us[0], us[1]

	v := NewMessageView(c)
	require.NoError(t, v.SetUser(ctx, ana.ID))
	assert.Equal(t, []models.User{bia}, v.Partners)

	unsent, err := v.Send(ctx, "oi")
	require.NoError(t, err)
	assert.Equal(t, "oi", unsent, "no open conversation")

	require.NoError(t, v.Open(ctx, bia))
	unsent, err = v.Send(ctx, " oi, Bia ")
	require.NoError(t, err)
	assert.Empty(t, unsent)
	require.Len(t, v.Messages, 1)
	assert.Equal(t, "oi, Bia", v.Messages[0].Content)
	assert.Equal(t, 1, s.count("sendMessage"))

	_, err = c.SendMessage(ctx, bia.ID, ana.ID, "olá")
	require.NoError(t, err)
	require.NoError(t, v.Open(ctx, bia))
	require.Len(t, v.Messages, 2)
	assert.Equal(t, "oi, Bia", v.Messages[0].Content, "oldest first")

	v.Partner = &models.User{ID: "ghost"}
	unsent, err = v.Send(ctx, "alguém?")
	require.Error(t, err)
	assert.Equal(t, "alguém?", unsent)
	assert.Len(t, v.Messages, 2)
}

func TestNotificationViewMarkAllRead(t *testing.T) {
	s, c := newPlayground(t)
	ctx := context.Background()
	us := seedUsers(t, c, "Ana", "Bia", "Caio")
	for _, u := range us[1:] {
		require.NoError(t, c.Follow(ctx, u.ID, us[0].ID))
	}
	_, err := c.SendMessage(ctx, us[1].ID, us[0].ID, "oi")
	require.NoError(t, err)

	v := NewNotificationView(c)
	require.NoError(t, v.SetUser(ctx, us[0].ID))
	require.Len(t, v.Notifications, 3)
	assert.Equal(t, "nova mensagem", v.Notifications[0].Message, "newest first")
	assert.Equal(t, 3, v.Unread())

	failing := v.Notifications[1].ID
	s.mu.Lock()
	s.failMarkRead[failing] = true
	s.mu.Unlock()

	res, err := v.MarkAllRead(ctx)
	require.Error(t, err)
	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, []string{failing}, res.FailedIDs)
	assert.Equal(t, "Falha ao marcar 1 de 3 notificações. (Erro: falhou "+failing+")", err.Error())
	assert.Equal(t, 1, v.Unread())

	s.mu.Lock()
	delete(s.failMarkRead, failing)
	s.mu.Unlock()

	res, err = v.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "1 notificação marcada como lida.", res.Summary())
	assert.Zero(t, v.Unread())

	require.NoError(t, v.Refresh(ctx))
	assert.Zero(t, v.Unread())
}
