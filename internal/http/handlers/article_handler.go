// Article HTTP handlers.
//
// This file exposes REST endpoints for article resources:
//   - GET    /articles                (filtered/sorted listing)
//   - GET    /articles/{article_id}   (single article + comment count)
//   - PATCH  /articles/{article_id}   (vote delta)
//   - DELETE /articles/{article_id}   (delete, returns deleted row)
//
// Handlers are transport-thin: they validate nothing themselves beyond
// JSON decoding, call application services, and translate results into
// HTTP responses through the shared error-mapping chain.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// ArticleService defines article operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ArticleService interface {
	// List executes the filtered/sorted listing or title search.
	List(ctx context.Context, q services.ArticleListQuery) ([]domain.ArticleSummary, error)
	// Get returns one article with its live comment count.
	Get(ctx context.Context, idParam string) (*services.ArticleDetail, error)
	// IncrementVotes applies a vote delta from a patch payload.
	IncrementVotes(ctx context.Context, idParam string, body map[string]any) (*domain.Article, error)
	// Delete removes an article and returns the deleted row.
	Delete(ctx context.Context, idParam string) (*domain.Article, error)
}

// CommentService defines comment operations consumed by HTTP handlers.
type CommentService interface {
	// ListForArticle returns the comments under an article.
	ListForArticle(ctx context.Context, articleIDParam string) ([]domain.Comment, error)
	// CreateForArticle validates and inserts a comment under an article.
	CreateForArticle(ctx context.Context, articleIDParam string, body map[string]any) (*domain.Comment, error)
	// IncrementVotes applies a vote delta from a patch payload.
	IncrementVotes(ctx context.Context, idParam string, body map[string]any) (*domain.Comment, error)
	// Delete removes a comment and returns the deleted row.
	Delete(ctx context.Context, idParam string) (*domain.Comment, error)
}

// UserService defines user operations consumed by HTTP handlers.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, body map[string]any) (*domain.User, error)
	UpdateAvatar(ctx context.Context, username string, body map[string]any) (*domain.User, error)
}

// TopicService defines topic operations consumed by HTTP handlers.
type TopicService interface {
	List(ctx context.Context) ([]domain.Topic, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for all entities. It depends on
// abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	articles ArticleService
	comments CommentService
	users    UserService
	topics   TopicService
}

// New constructs a Handlers instance bound to the given services.
func New(articles ArticleService, comments CommentService, users UserService, topics TopicService) *Handlers {
	return &Handlers{articles: articles, comments: comments, users: users, topics: topics}
}

//
// Handlers
//

// GetArticles godoc
// @ID          getArticles
// @Summary     List articles
// @Description Returns articles filtered and sorted by the query parameters. query_for performs a title substring search and takes precedence over topic/author.
// @Tags        Articles
// @Produce     json
//
// @Param       sort_by    query  string  false "Sort column"         Enums(created_at, topic, article_id, title, votes, author, body, comment_count)
// @Param       order_by   query  string  false "Sort direction"      Enums(asc, desc)
// @Param       topic      query  string  false "Filter by topic slug"
// @Param       author     query  string  false "Filter by author username"
// @Param       query_for  query  string  false "Title substring search"
//
// @Success     200  {object} map[string][]domain.ArticleSummary
// @Failure     400  {object} handlers.ErrorResponse "Invalid sort_by/order_by"
// @Failure     404  {object} handlers.ErrorResponse "Topic/Author/search not found"
// @Router      /articles [get]
func (h *Handlers) GetArticles(c *gin.Context) {
	q := services.ArticleListQuery{
		SortBy:   c.Query("sort_by"),
		OrderBy:  c.Query("order_by"),
		Topic:    c.Query("topic"),
		Author:   c.Query("author"),
		QueryFor: c.Query("query_for"),
	}
	articles, err := h.articles.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"articles": articles})
}

// GetArticleByID godoc
// @ID          getArticleByID
// @Summary     Get one article
// @Description Returns the article with the given id, including its live comment count.
// @Tags        Articles
// @Produce     json
// @Param       article_id  path  int  true  "Article id"
// @Success     200  {object} map[string]services.ArticleDetail
// @Failure     400  {object} handlers.ErrorResponse "Malformed or negative id"
// @Failure     404  {object} handlers.ErrorResponse "Article Id not found"
// @Router      /articles/{article_id} [get]
func (h *Handlers) GetArticleByID(c *gin.Context) {
	article, err := h.articles.Get(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"article": article})
}

// PatchArticleByID godoc
// @ID          patchArticleByID
// @Summary     Apply a vote delta to an article
// @Description Accepts exactly {"inc_votes": n} and returns the updated article.
// @Tags        Articles
// @Accept      json
// @Produce     json
// @Param       article_id  path  int  true  "Article id"
// @Success     200  {object} map[string]domain.Article
// @Failure     400  {object} handlers.ErrorResponse "Malformed id or payload"
// @Failure     404  {object} handlers.ErrorResponse "Article Id not found"
// @Router      /articles/{article_id} [patch]
func (h *Handlers) PatchArticleByID(c *gin.Context) {
	body, okBody := bindBody(c)
	if !okBody {
		return
	}
	article, err := h.articles.IncrementVotes(c.Request.Context(), c.Param("article_id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"article": article})
}

// DeleteArticleByID godoc
// @ID          deleteArticleByID
// @Summary     Delete an article
// @Description Deletes the article (comments cascade) and returns the deleted row.
// @Tags        Articles
// @Produce     json
// @Param       article_id  path  int  true  "Article id"
// @Success     202  {object} map[string]domain.Article
// @Failure     400  {object} handlers.ErrorResponse "Malformed or negative id"
// @Failure     404  {object} handlers.ErrorResponse "Article Id not found"
// @Router      /articles/{article_id} [delete]
func (h *Handlers) DeleteArticleByID(c *gin.Context) {
	article, err := h.articles.Delete(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusAccepted, gin.H{"article": article})
}
