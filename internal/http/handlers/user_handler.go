// User and topic HTTP handlers.
//
// Endpoints:
//   - GET   /users
//   - POST  /users
//   - GET   /users/{username}
//   - PATCH /users/{username}
//   - GET   /topics
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetUsers godoc
// @ID          getUsers
// @Summary     List users
// @Tags        Users
// @Produce     json
// @Success     200  {object} map[string][]domain.User
// @Router      /users [get]
func (h *Handlers) GetUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"users": users})
}

// PostUser godoc
// @ID          postUser
// @Summary     Create a user
// @Description Requires username and name; avatar_url is optional and defaults to a fixed placeholder. Unrecognized fields are rejected.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Success     201  {object} map[string]domain.User
// @Failure     400  {object} handlers.ErrorResponse "Malformed payload"
// @Router      /users [post]
func (h *Handlers) PostUser(c *gin.Context) {
	body, okBody := bindBody(c)
	if !okBody {
		return
	}
	user, err := h.users.Create(c.Request.Context(), body)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"user": user})
}

// GetUserByUsername godoc
// @ID          getUserByUsername
// @Summary     Get one user
// @Tags        Users
// @Produce     json
// @Param       username  path  string  true  "Username"
// @Success     200  {object} map[string]domain.User
// @Failure     404  {object} handlers.ErrorResponse "Username not found"
// @Router      /users/{username} [get]
func (h *Handlers) GetUserByUsername(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"user": user})
}

// PatchUserByUsername godoc
// @ID          patchUserByUsername
// @Summary     Update a user's avatar
// @Description Accepts exactly {"avatar_url": uri} and returns the updated user.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       username  path  string  true  "Username"
// @Success     200  {object} map[string]domain.User
// @Failure     400  {object} handlers.ErrorResponse "Malformed payload or URI"
// @Failure     404  {object} handlers.ErrorResponse "Username not found"
// @Router      /users/{username} [patch]
func (h *Handlers) PatchUserByUsername(c *gin.Context) {
	body, okBody := bindBody(c)
	if !okBody {
		return
	}
	user, err := h.users.UpdateAvatar(c.Request.Context(), c.Param("username"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"user": user})
}

// GetTopics godoc
// @ID          getTopics
// @Summary     List topics
// @Tags        Topics
// @Produce     json
// @Success     200  {object} map[string][]domain.Topic
// @Router      /topics [get]
func (h *Handlers) GetTopics(c *gin.Context) {
	topics, err := h.topics.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"topics": topics})
}
