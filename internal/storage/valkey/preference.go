package valkey

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"
)

// PreferenceStore keeps playground preferences as plain valkey string keys.
type PreferenceStore struct {
	client valkey.Client
	prefix string
}

// NewPreferenceStore connects to the valkey server at addr.
func NewPreferenceStore(addr, password string) (*PreferenceStore, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{addr},
		Password:    password,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to valkey at %s: %w", addr, err)
	}
	return &PreferenceStore{client: client, prefix: "playground:"}, nil
}

func (s *PreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Do(ctx, s.client.B().Get().Key(s.prefix+key).Build()).ToString()
	if valkey.IsValkeyNil(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %s: %w", key, err)
	}
	return v, true, nil
}

func (s *PreferenceStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Do(ctx, s.client.B().Set().Key(s.prefix+key).Value(value).Build()).Error(); err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}

func (s *PreferenceStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Do(ctx, s.client.B().Del().Key(s.prefix+key).Build()).Error(); err != nil {
		return fmt.Errorf("delete preference %s: %w", key, err)
	}
	return nil
}

func (s *PreferenceStore) Close() error {
	s.client.Close()
	return nil
}
