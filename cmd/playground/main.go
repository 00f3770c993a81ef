// Command playground runs a scripted session against a running proxy: it
// creates two users, selects one, and exercises follows, posts, messages and
// notifications through the same views the front-end uses.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"github.com/Vasu1712/spring-playground/internal/config"
	"github.com/Vasu1712/spring-playground/internal/playground"
	"github.com/Vasu1712/spring-playground/internal/session"
	"github.com/Vasu1712/spring-playground/internal/storage/memory"
	"github.com/Vasu1712/spring-playground/internal/storage/postgres"
	"github.com/Vasu1712/spring-playground/internal/storage/valkey"
)

type preferenceStore interface {
	session.PreferenceStore
	Close() error
}

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[Playground] Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("[Playground] %v", err)
	}
	defer store.Close()

	sess, err := session.Load(ctx, store)
	if err != nil {
		log.Fatalf("[Playground] %v", err)
	}
	if u := sess.Current(); u != nil {
		log.Printf("[Playground] Previously selected user: %s (%s)", u.Name, u.ID)
	}

	client := playground.NewClient(cfg.PlaygroundURL, cfg.PlaygroundTimeout)
	if err := run(ctx, client, sess); err != nil {
		log.Fatalf("[Playground] %v", err)
	}
}

func openStore(ctx context.Context, cfg config.Config) (preferenceStore, error) {
	switch cfg.PreferenceStore {
	case config.StoreValkey:
		return valkey.NewPreferenceStore(cfg.ValkeyAddr, cfg.ValkeyPassword)
	case config.StorePostgres:
		return postgres.NewPostgresPreferenceStore(ctx, cfg.DatabaseURL)
	default:
		return memory.NewPreferenceStore(), nil
	}
}

func run(ctx context.Context, c *playground.Client, sess *session.Session) error {
	suffix := uuid.NewString()[:8]
	alice, err := c.CreateUser(ctx, "alice-"+suffix)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	bob, err := c.CreateUser(ctx, "bob-"+suffix)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	log.Printf("[Playground] Created %s (%s) and %s (%s)", alice.Name, alice.ID, bob.Name, bob.ID)

	if err := sess.Select(ctx, alice); err != nil {
		return err
	}
	me := sess.UserID()

	follows := playground.NewFollowView(c)
	if err := follows.SetUser(ctx, me); err != nil {
		return fmt.Errorf("load follows: %w", err)
	}
	if err := follows.Follow(ctx, bob.ID); err != nil {
		return fmt.Errorf("follow: %w", err)
	}
	log.Printf("[Playground] %s follows %d user(s), %d suggestion(s) left",
		alice.Name, len(follows.Following), len(follows.Suggestions()))

	posts := playground.NewPostView(c)
	if err := posts.SetUser(ctx, me); err != nil {
		return fmt.Errorf("load posts: %w", err)
	}
	if err := posts.Create(ctx, "Olá do playground "+suffix); err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	log.Printf("[Playground] %s has %d post(s), feed has %d", alice.Name, len(posts.Mine), len(posts.Feed))

	msgs := playground.NewMessageView(c)
	if err := msgs.SetUser(ctx, me); err != nil {
		return fmt.Errorf("load partners: %w", err)
	}
	if err := msgs.Open(ctx, bob); err != nil {
		return fmt.Errorf("open conversation: %w", err)
	}
	if unsent, err := msgs.Send(ctx, "Oi, "+bob.Name+"!"); err != nil {
		return fmt.Errorf("send message %q: %w", unsent, err)
	}
	log.Printf("[Playground] Conversation with %s has %d message(s)", bob.Name, len(msgs.Messages))

	// Bob's side: he was followed and messaged, so he should have notifications.
	notes := playground.NewNotificationView(c)
	if err := notes.SetUser(ctx, bob.ID); err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}
	log.Printf("[Playground] %s has %d unread notification(s)", bob.Name, notes.Unread())
	res, err := notes.MarkAllRead(ctx)
	if msg := res.Summary(); msg != "" {
		log.Printf("[Playground] %s", msg)
	}
	if err != nil {
		return err
	}

	if err := follows.Unfollow(ctx, bob.ID); err != nil {
		return fmt.Errorf("unfollow: %w", err)
	}
	log.Printf("[Playground] Done; %s follows %d user(s)", alice.Name, len(follows.Following))
	return nil
}
