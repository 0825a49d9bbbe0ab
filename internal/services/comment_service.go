// Package services – CommentService
//
// Comments live under articles: listing and creation are addressed by
// article id, votes and deletion by comment id. Creation deliberately does
// not pre-check the author: a nonexistent username is rejected by the
// store's foreign-key constraint, which the handler-level chain maps to
// the distinguished "Invalid Inputs" failure.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// CommentService provides comment-level operations over the repo layer.
type CommentService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// ListForArticle returns the comments under an article. An article with no
// comments yields an empty slice; a missing article yields
// ErrArticleNotFound (the existence check runs only on the zero-row path).
func (s *CommentService) ListForArticle(ctx context.Context, articleIDParam string) ([]domain.Comment, error) {
	id, err := parseID(articleIDParam)
	if err != nil {
		return nil, err
	}
	rows, err := repo.ListCommentsForArticle(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		exists, err := repo.ArticleExists(ctx, s.DB, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrArticleNotFound
		}
		return []domain.Comment{}, nil
	}
	return rows, nil
}

// CreateForArticle validates the payload (exactly username and body, both
// non-empty strings), confirms the article exists, and inserts the comment.
// The id is validated before the existence check, so a malformed id is a
// Bad Request even when the payload is also wrong.
func (s *CommentService) CreateForArticle(ctx context.Context, articleIDParam string, body map[string]any) (*domain.Comment, error) {
	id, err := parseID(articleIDParam)
	if err != nil {
		return nil, err
	}

	if len(body) > 2 {
		return nil, ErrBadRequest
	}
	username, ok := stringField(body, "username")
	if !ok {
		return nil, ErrBadRequest
	}
	text, ok := stringField(body, "body")
	if !ok {
		return nil, ErrBadRequest
	}

	exists, err := repo.ArticleExists(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrArticleNotFound
	}

	return repo.CreateComment(ctx, s.DB, id, username, text)
}

// IncrementVotes applies a vote delta from a patch payload and returns the
// updated comment.
func (s *CommentService) IncrementVotes(ctx context.Context, idParam string, body map[string]any) (*domain.Comment, error) {
	delta, err := voteDelta(body)
	if err != nil {
		return nil, err
	}
	id, err := parseID(idParam)
	if err != nil {
		return nil, err
	}
	cm, err := repo.IncrementCommentVotes(ctx, s.DB, id, delta)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return cm, nil
}

// Delete removes a comment and returns the deleted row.
func (s *CommentService) Delete(ctx context.Context, idParam string) (*domain.Comment, error) {
	id, err := parseID(idParam)
	if err != nil {
		return nil, err
	}
	cm, err := repo.DeleteComment(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return cm, nil
}
