// Package services – UserService and TopicService
//
// User payloads are validated strictly against the recognized field set:
// any unrecognized field anywhere in a payload is rejected, mandatory
// fields must be present and well-shaped, and avatar URLs must be absolute
// URIs. Validation fails fast, before any store call.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
	"github.com/tbourn/go-news-backend/internal/utils"
)

// UserService provides user-level operations over the repo layer.
type UserService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return repo.ListUsers(ctx, s.DB)
}

// Get returns the user identified by username, or ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, ErrBadRequest
	}
	u, err := repo.GetUserByUsername(ctx, s.DB, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Create validates and inserts a new user. Username and name are mandatory
// and pattern-checked; avatar_url is optional and, when absent, the fixed
// placeholder is persisted. A NULL avatar is never written by this path.
func (s *UserService) Create(ctx context.Context, body map[string]any) (*domain.User, error) {
	if len(body) < 2 || len(body) > 3 {
		return nil, ErrBadRequest
	}
	for k := range body {
		switch k {
		case "username", "name", "avatar_url":
		default:
			return nil, ErrBadRequest
		}
	}

	username, ok := stringField(body, "username")
	if !ok || !utils.IsValidUsername(username) {
		return nil, ErrBadRequest
	}
	name, ok := stringField(body, "name")
	if !ok || !utils.IsValidName(name) {
		return nil, ErrBadRequest
	}

	avatar := domain.DefaultAvatarURL
	if _, present := body["avatar_url"]; present {
		v, ok := stringField(body, "avatar_url")
		if !ok || !utils.IsValidURI(v) {
			return nil, ErrBadRequest
		}
		avatar = v
	}

	u := &domain.User{Username: username, Name: name, AvatarURL: &avatar}
	if err := repo.CreateUser(ctx, s.DB, u); err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateAvatar validates a patch payload (exactly avatar_url, a well-formed
// URI) and applies it, returning the updated user.
func (s *UserService) UpdateAvatar(ctx context.Context, username string, body map[string]any) (*domain.User, error) {
	if len(body) != 1 {
		return nil, ErrBadRequest
	}
	avatar, ok := stringField(body, "avatar_url")
	if !ok || !utils.IsValidURI(avatar) {
		return nil, ErrBadRequest
	}

	u, err := repo.UpdateUserAvatar(ctx, s.DB, username, avatar)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// TopicService provides read access to topics; creation is seed/admin only.
type TopicService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// List returns all topics.
func (s *TopicService) List(ctx context.Context) ([]domain.Topic, error) {
	return repo.ListTopics(ctx, s.DB)
}
