// Comment HTTP handlers.
//
// Endpoints:
//   - GET    /articles/{article_id}/comments
//   - POST   /articles/{article_id}/comments
//   - PATCH  /comments/{comment_id}
//   - DELETE /comments/{comment_id}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// GetComments godoc
// @ID          getComments
// @Summary     List comments under an article
// @Tags        Comments
// @Produce     json
// @Param       article_id  path  int  true  "Article id"
// @Success     200  {object} map[string][]domain.Comment
// @Failure     400  {object} handlers.ErrorResponse "Malformed or negative id"
// @Failure     404  {object} handlers.ErrorResponse "Article Id not found"
// @Router      /articles/{article_id}/comments [get]
func (h *Handlers) GetComments(c *gin.Context) {
	comments, err := h.comments.ListForArticle(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"comments": comments})
}

// PostComment godoc
// @ID          postComment
// @Summary     Create a comment under an article
// @Description Accepts exactly {"username", "body"}. A nonexistent username is rejected by the store's referential constraint as "Invalid Inputs". The created row is returned wrapped in a single-element list.
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       article_id  path  int  true  "Article id"
// @Success     201  {object} map[string][]domain.Comment
// @Failure     400  {object} handlers.ErrorResponse "Malformed id/payload or invalid inputs"
// @Failure     404  {object} handlers.ErrorResponse "Article Id not found"
// @Router      /articles/{article_id}/comments [post]
func (h *Handlers) PostComment(c *gin.Context) {
	body, okBody := bindBody(c)
	if !okBody {
		return
	}
	cm, err := h.comments.CreateForArticle(c.Request.Context(), c.Param("article_id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"comment": []domain.Comment{*cm}})
}

// PatchCommentByID godoc
// @ID          patchCommentByID
// @Summary     Apply a vote delta to a comment
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       comment_id  path  int  true  "Comment id"
// @Success     200  {object} map[string]domain.Comment
// @Failure     400  {object} handlers.ErrorResponse "Malformed id or payload"
// @Failure     404  {object} handlers.ErrorResponse "Comment Id not found"
// @Router      /comments/{comment_id} [patch]
func (h *Handlers) PatchCommentByID(c *gin.Context) {
	body, okBody := bindBody(c)
	if !okBody {
		return
	}
	cm, err := h.comments.IncrementVotes(c.Request.Context(), c.Param("comment_id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"comment": cm})
}

// DeleteCommentByID godoc
// @ID          deleteCommentByID
// @Summary     Delete a comment
// @Description Deletes the comment and returns the deleted row.
// @Tags        Comments
// @Produce     json
// @Param       comment_id  path  int  true  "Comment id"
// @Success     202  {object} map[string]domain.Comment
// @Failure     400  {object} handlers.ErrorResponse "Malformed or negative id"
// @Failure     404  {object} handlers.ErrorResponse "Comment Id not found"
// @Router      /comments/{comment_id} [delete]
func (h *Handlers) DeleteCommentByID(c *gin.Context) {
	cm, err := h.comments.Delete(c.Request.Context(), c.Param("comment_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusAccepted, gin.H{"comment": cm})
}
