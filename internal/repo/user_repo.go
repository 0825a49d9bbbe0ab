// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User and
// Topic models.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ListUsers returns all users ordered by username.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	var out []domain.User
	err := db.WithContext(ctx).Order("username ASC").Find(&out).Error
	return out, err
}

// GetUserByUsername fetches a single user, or ErrNotFound.
func GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UserExists reports whether a user row with the given username exists.
func UserExists(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("username = ?", username).
		Count(&n).Error
	return n > 0, err
}

// CreateUser inserts a new user row. A duplicate username surfaces as the
// store's primary-key constraint error.
func CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	return db.WithContext(ctx).Create(u).Error
}

// UpdateUserAvatar sets a user's avatar_url and returns the updated row.
// A zero-row update means the user does not exist and yields ErrNotFound.
func UpdateUserAvatar(ctx context.Context, db *gorm.DB, username, avatarURL string) (*domain.User, error) {
	res := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("username = ?", username).
		Update("avatar_url", avatarURL)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetUserByUsername(ctx, db, username)
}

// ListTopics returns all topics ordered by slug.
func ListTopics(ctx context.Context, db *gorm.DB) ([]domain.Topic, error) {
	var out []domain.Topic
	err := db.WithContext(ctx).Order("slug ASC").Find(&out).Error
	return out, err
}

// TopicExists reports whether a topic row with the given slug exists.
func TopicExists(ctx context.Context, db *gorm.DB, slug string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Topic{}).
		Where("slug = ?", slug).
		Count(&n).Error
	return n > 0, err
}
