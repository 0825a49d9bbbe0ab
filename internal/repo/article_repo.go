// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Article
// model, including the whitelist-driven listing query builder.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When an article is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated; callers classify it with
//     IsConstraintViolation.
package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// sortColumns maps the permitted sort_by keys to the column references the
// listing query may order by. User input never reaches the SQL text except
// through this map; values travel only as bind parameters.
var sortColumns = map[string]string{
	"created_at":    "articles.created_at",
	"topic":         "articles.topic",
	"article_id":    "articles.article_id",
	"title":         "articles.title",
	"votes":         "articles.votes",
	"author":        "articles.author",
	"body":          "articles.body",
	"comment_count": "comment_count",
}

// SortColumn resolves a sort_by key against the whitelist. The second
// return value is false when the key is not permitted.
func SortColumn(key string) (string, bool) {
	col, ok := sortColumns[key]
	return col, ok
}

// NormalizeOrder resolves an order_by value (case-insensitive ASC/DESC)
// into the canonical SQL direction keyword.
func NormalizeOrder(dir string) (string, bool) {
	switch strings.ToUpper(dir) {
	case "ASC":
		return "ASC", true
	case "DESC":
		return "DESC", true
	default:
		return "", false
	}
}

// ArticleFilter describes one fully validated listing query. SortColumn and
// Direction must come from SortColumn/NormalizeOrder; Topic and Author are
// mutually exclusive equality filters (at most one set).
type ArticleFilter struct {
	SortColumn string
	Direction  string
	Topic      string
	Author     string
}

const summarySelect = "articles.author, articles.title, articles.article_id, articles.topic, articles.created_at, articles.votes"

// ListArticles runs the filtered/sorted listing with a live comment count
// per article. It returns an empty slice (not an error) when nothing
// matches; distinguishing "filter value missing" from "no rows" is the
// caller's job via TopicExists/UserExists.
func ListArticles(ctx context.Context, db *gorm.DB, f ArticleFilter) ([]domain.ArticleSummary, error) {
	q := db.WithContext(ctx).
		Model(&domain.Article{}).
		Select(summarySelect + ", COUNT(comments.comment_id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id")

	switch {
	case f.Topic != "":
		q = q.Where("articles.topic = ?", f.Topic)
	case f.Author != "":
		q = q.Where("articles.author = ?", f.Author)
	}

	var out []domain.ArticleSummary
	err := q.Group("articles.article_id").
		Order(f.SortColumn + " " + f.Direction).
		Scan(&out).Error
	return out, err
}

// SearchArticlesByTitle returns summaries whose title contains the given
// substring. Rows deliberately carry no comment count; the search output
// shape differs from the listing output shape.
func SearchArticlesByTitle(ctx context.Context, db *gorm.DB, q string) ([]domain.ArticleSummary, error) {
	var out []domain.ArticleSummary
	err := db.WithContext(ctx).
		Model(&domain.Article{}).
		Select(summarySelect).
		Where("articles.title LIKE ?", "%"+q+"%").
		Scan(&out).Error
	return out, err
}

// GetArticleByID fetches a single article row, or ErrNotFound.
func GetArticleByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Article, error) {
	var a domain.Article
	if err := db.WithContext(ctx).First(&a, "article_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// CountArticleComments returns the live number of comments referencing the
// article. A missing comments table surfaces as an error.
func CountArticleComments(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM comments WHERE article_id = ?", id,
	).Scan(&total).Error
	return total, err
}

// ArticleExists reports whether an article row with the given id exists.
func ArticleExists(ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("article_id = ?", id).
		Count(&n).Error
	return n > 0, err
}

// IncrementArticleVotes applies a vote delta in a single UPDATE
// (votes = votes + delta) and returns the updated row. A zero-row update
// means the article does not exist and yields ErrNotFound.
func IncrementArticleVotes(ctx context.Context, db *gorm.DB, id int64, delta int) (*domain.Article, error) {
	res := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetArticleByID(ctx, db, id)
}

// DeleteArticle removes an article and returns the deleted row's
// representation. Comment cleanup is left to the store's ON DELETE CASCADE.
func DeleteArticle(ctx context.Context, db *gorm.DB, id int64) (*domain.Article, error) {
	a, err := GetArticleByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Delete(&domain.Article{}, "article_id = ?", id).Error; err != nil {
		return nil, err
	}
	return a, nil
}
