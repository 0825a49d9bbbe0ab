// API directory handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// endpoints describes the public surface, keyed by "METHOD path".
var endpoints = map[string]string{
	"GET /api":                                "this directory",
	"GET /api/topics":                         "list topics",
	"GET /api/articles":                       "list articles; supports sort_by, order_by, topic, author, query_for",
	"GET /api/articles/:article_id":           "one article with comment_count",
	"PATCH /api/articles/:article_id":         "apply {inc_votes} delta",
	"DELETE /api/articles/:article_id":        "delete article, returns deleted row",
	"GET /api/articles/:article_id/comments":  "list comments under an article",
	"POST /api/articles/:article_id/comments": "create comment from {username, body}",
	"GET /api/users":                          "list users",
	"POST /api/users":                         "create user from {username, name, avatar_url?}",
	"GET /api/users/:username":                "one user",
	"PATCH /api/users/:username":              "update {avatar_url}",
	"PATCH /api/comments/:comment_id":         "apply {inc_votes} delta",
	"DELETE /api/comments/:comment_id":        "delete comment, returns deleted row",
}

// GetAPI godoc
// @ID          getAPI
// @Summary     List available endpoints
// @Tags        Meta
// @Produce     json
// @Success     200  {object} map[string]map[string]string
// @Router      / [get]
func (h *Handlers) GetAPI(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"endpoints": endpoints})
}
