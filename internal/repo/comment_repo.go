// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Comment
// model.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ListCommentsForArticle returns the comments under an article ordered
// deterministically by comment id. An empty slice is not an error; the
// caller decides whether the article itself is missing.
func ListCommentsForArticle(ctx context.Context, db *gorm.DB, articleID int64) ([]domain.Comment, error) {
	var out []domain.Comment
	err := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("comment_id ASC").
		Find(&out).Error
	return out, err
}

// CreateComment inserts a comment under an article. The author is not
// pre-checked: a nonexistent username is rejected by the foreign-key
// constraint, and that raw error is propagated for classification
// (IsConstraintViolation).
func CreateComment(ctx context.Context, db *gorm.DB, articleID int64, author, body string) (*domain.Comment, error) {
	cm := &domain.Comment{
		Author:    author,
		ArticleID: articleID,
		Body:      body,
	}
	if err := db.WithContext(ctx).Create(cm).Error; err != nil {
		return nil, err
	}
	return cm, nil
}

// GetCommentByID fetches a single comment row, or ErrNotFound.
func GetCommentByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Comment, error) {
	var cm domain.Comment
	if err := db.WithContext(ctx).First(&cm, "comment_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cm, nil
}

// IncrementCommentVotes applies a vote delta in a single UPDATE and returns
// the updated row, or ErrNotFound when no row matched.
func IncrementCommentVotes(ctx context.Context, db *gorm.DB, id int64, delta int) (*domain.Comment, error) {
	res := db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("comment_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetCommentByID(ctx, db, id)
}

// DeleteComment removes a comment and returns the deleted row's
// representation, or ErrNotFound.
func DeleteComment(ctx context.Context, db *gorm.DB, id int64) (*domain.Comment, error) {
	cm, err := GetCommentByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Delete(&domain.Comment{}, "comment_id = ?", id).Error; err != nil {
		return nil, err
	}
	return cm, nil
}
