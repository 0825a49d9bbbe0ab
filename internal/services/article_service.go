// Package services – ArticleService
//
// This file implements the article operations: the filtered/sorted listing
// (the closest thing this API has to a core), single-article reads with a
// live comment count, vote patches, and deletes.
//
// The listing selects exactly one of three mutually exclusive query
// strategies by inspecting which parameters are present: title search, a
// single equality filter (topic taking precedence over author), or the
// unfiltered listing. Sort and order parameters are validated against the
// repo whitelists before any SQL is composed.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// ArticleListQuery carries the raw, unvalidated listing parameters as they
// came off the query string.
type ArticleListQuery struct {
	SortBy   string
	OrderBy  string
	Topic    string
	Author   string
	QueryFor string
}

// ArticleDetail is a single article together with its live comment count.
type ArticleDetail struct {
	domain.Article
	CommentCount int64 `json:"comment_count"`
}

// ArticleService provides article-level operations over the repo layer.
type ArticleService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// List executes the article listing for q.
//
// Failure modes: ErrInvalidOrder / ErrInvalidSort for whitelist violations,
// ErrSearchNotFound for an empty title search, ErrTopicNotFound /
// ErrAuthorNotFound when a filter value names nothing. An existing filter
// value with zero matching rows is a success with an empty slice.
func (s *ArticleService) List(ctx context.Context, q ArticleListQuery) ([]domain.ArticleSummary, error) {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = "DESC"
	}

	dir, ok := repo.NormalizeOrder(orderBy)
	if !ok {
		return nil, ErrInvalidOrder
	}
	col, ok := repo.SortColumn(sortBy)
	if !ok {
		return nil, ErrInvalidSort
	}

	// Title search is its own strategy: different output shape (no comment
	// count), and an empty result is an error rather than an empty success.
	if q.QueryFor != "" {
		rows, err := repo.SearchArticlesByTitle(ctx, s.DB, q.QueryFor)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, ErrSearchNotFound
		}
		return rows, nil
	}

	f := repo.ArticleFilter{SortColumn: col, Direction: dir}
	switch {
	case q.Topic != "":
		// Topic wins when both filters are supplied.
		f.Topic = q.Topic
	case q.Author != "":
		f.Author = q.Author
	}

	rows, err := repo.ListArticles(ctx, s.DB, f)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return s.classifyEmptyListing(ctx, f)
	}
	return rows, nil
}

// classifyEmptyListing runs the existence-check step of the two-step
// listing protocol: a zero-row result under an active filter is only a
// success when the filter value itself exists.
func (s *ArticleService) classifyEmptyListing(ctx context.Context, f repo.ArticleFilter) ([]domain.ArticleSummary, error) {
	if f.Topic != "" {
		exists, err := repo.TopicExists(ctx, s.DB, f.Topic)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrTopicNotFound
		}
	}
	if f.Author != "" {
		exists, err := repo.UserExists(ctx, s.DB, f.Author)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrAuthorNotFound
		}
	}
	return []domain.ArticleSummary{}, nil
}

// Get returns the article identified by idParam together with its live
// comment count.
func (s *ArticleService) Get(ctx context.Context, idParam string) (*ArticleDetail, error) {
	id, err := parseID(idParam)
	if err != nil {
		return nil, err
	}
	a, err := repo.GetArticleByID(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	count, err := repo.CountArticleComments(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	return &ArticleDetail{Article: *a, CommentCount: count}, nil
}

// IncrementVotes applies a vote delta from a patch payload and returns the
// updated article.
func (s *ArticleService) IncrementVotes(ctx context.Context, idParam string, body map[string]any) (*domain.Article, error) {
	delta, err := voteDelta(body)
	if err != nil {
		return nil, err
	}
	id, err := parseID(idParam)
	if err != nil {
		return nil, err
	}
	a, err := repo.IncrementArticleVotes(ctx, s.DB, id, delta)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return a, nil
}

// Delete removes an article and returns the deleted row. The store's
// referential rules cascade the delete to the article's comments.
func (s *ArticleService) Delete(ctx context.Context, idParam string) (*domain.Article, error) {
	id, err := parseID(idParam)
	if err != nil {
		return nil, err
	}
	a, err := repo.DeleteArticle(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return a, nil
}
