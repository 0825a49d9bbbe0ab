package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/tbourn/go-news-backend/internal/domain"
)

func TestUserList(t *testing.T) {
	svc := &UserService{DB: newTestDB(t)}

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 4 {
		t.Fatalf("len = %d; want 4", len(users))
	}
}

func TestUserGet(t *testing.T) {
	svc := &UserService{DB: newTestDB(t)}

	u, err := svc.Get(context.Background(), "rogersop")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if u.Name != "paul" {
		t.Fatalf("name = %q; want paul", u.Name)
	}

	if _, err := svc.Get(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("missing user: err = %v; want ErrUserNotFound", err)
	}
	if _, err := svc.Get(context.Background(), ""); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("empty username: err = %v; want ErrBadRequest", err)
	}
}

func TestUserCreate_WithAvatar(t *testing.T) {
	svc := &UserService{DB: newTestDB(t)}

	body := map[string]any{
		"username":   "new_user",
		"name":       "Newton",
		"avatar_url": "https://example.com/pic.png",
	}
	u, err := svc.Create(context.Background(), body)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.Username != "new_user" || u.AvatarURL == nil || *u.AvatarURL != "https://example.com/pic.png" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUserCreate_DefaultAvatarPersisted(t *testing.T) {
	svc := &UserService{DB: newTestDB(t)}

	u, err := svc.Create(context.Background(), map[string]any{"username": "plain", "name": "Pat"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.AvatarURL == nil || *u.AvatarURL != domain.DefaultAvatarURL {
		t.Fatalf("avatar = %v; want the persisted placeholder", u.AvatarURL)
	}

	// The placeholder is stored, not just echoed.
	stored, err := svc.Get(context.Background(), "plain")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.AvatarURL == nil || *stored.AvatarURL != domain.DefaultAvatarURL {
		t.Fatalf("stored avatar = %v; want the placeholder", stored.AvatarURL)
	}
}

func TestUserCreate_Rejections(t *testing.T) {
	svc := &UserService{DB: newTestDB(t)}

	cases := []map[string]any{
		{},                        // empty
		{"username": "only_name"}, // too few fields
		{"username": "u1", "name": "Al", "avatar_url": "https://x.com/a.png", "extra": "x"}, // too many
		{"username": "u1", "name": "Al", "role": "admin"},                                   // unknown key
		{"username": "1starts_with_digit", "name": "Al"},
		{"username": "trailing_", "name": "Al"},
		{"username": "ok_user", "name": "Al Smith"},  // space in name
		{"username": "ok_user", "name": "ann3"},      // digit in name
		{"username": "ok_user", "name": ""},          // empty name
		{"username": json.Number("3"), "name": "Al"}, // wrong type
		{"username": "ok_user", "name": "Al", "avatar_url": "not-a-uri"},
		{"username": "ok_user", "name": "Al", "avatar_url": ""},
	}
	for i, body := range cases {
		if _, err := svc.Create(context.Background(), body); !errors.Is(err, ErrBadRequest) {
			t.Fatalf("case %d (%v): err = %v; want ErrBadRequest", i, body, err)
		}
	}
}

func TestUserUpdateAvatar(t *testing.T) {
	svc := &UserService{DB: newTestDB(t)}

	body := map[string]any{"avatar_url": "https://example.com/fresh.png"}
	u, err := svc.UpdateAvatar(context.Background(), "lurker", body)
	if err != nil {
		t.Fatalf("UpdateAvatar: %v", err)
	}
	if u.AvatarURL == nil || *u.AvatarURL != "https://example.com/fresh.png" {
		t.Fatalf("avatar = %v; want updated value", u.AvatarURL)
	}

	if _, err := svc.UpdateAvatar(context.Background(), "ghost", body); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("missing user: err = %v; want ErrUserNotFound", err)
	}

	rejects := []map[string]any{
		{},                                  // empty
		{"avatar_url": "nope"},              // not a URI
		{"avatar_url": "https://x.com/a.png", "name": "Al"}, // extra field
		{"name": "Al"},                      // wrong field
	}
	for i, b := range rejects {
		if _, err := svc.UpdateAvatar(context.Background(), "lurker", b); !errors.Is(err, ErrBadRequest) {
			t.Fatalf("case %d: err = %v; want ErrBadRequest", i, err)
		}
	}
}

func TestTopicList(t *testing.T) {
	svc := &TopicService{DB: newTestDB(t)}

	topics, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(topics) != 3 {
		t.Fatalf("len = %d; want 3", len(topics))
	}
}
