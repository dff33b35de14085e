package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yyoonchul/murmur-blog/internal/http/response"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
	"github.com/yyoonchul/murmur-blog/internal/services"
)

type PostHandler struct {
	log   *logger.Logger
	posts services.PostService
}

func NewPostHandler(log *logger.Logger, posts services.PostService) *PostHandler {
	return &PostHandler{log: log.With("handler", "PostHandler"), posts: posts}
}

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err, "list_posts_failed")
		return
	}
	response.RespondOK(c, posts)
}

// GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondNotFoundAs(c, err, "post_not_found", errPostNotFound, "load_post_failed")
		return
	}
	response.RespondOK(c, post)
}

// POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errInvalidBody)
		return
	}
	post, err := h.posts.Create(c.Request.Context(), services.PostInput{Title: req.Title, Content: req.Content})
	if err != nil {
		response.RespondServiceError(c, err, "create_post_failed")
		return
	}
	response.RespondCreated(c, post)
}

// PUT /api/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errInvalidBody)
		return
	}
	post, err := h.posts.Update(c.Request.Context(), c.Param("id"), services.PostInput{Title: req.Title, Content: req.Content})
	if err != nil {
		respondNotFoundAs(c, err, "post_not_found", errPostNotFound, "update_post_failed")
		return
	}
	response.RespondOK(c, post)
}

// DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.posts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondNotFoundAs(c, err, "post_not_found", errPostNotFound, "delete_post_failed")
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

// POST /api/posts/:id/generate?wait=true
func (h *PostHandler) Generate(c *gin.Context) {
	wait := queryBool(c, "wait")
	created, err := h.posts.Regenerate(c.Request.Context(), c.Param("id"), wait)
	if err != nil {
		respondNotFoundAs(c, err, "post_not_found", errPostNotFound, "generate_failed")
		return
	}
	if !wait {
		c.JSON(http.StatusAccepted, gin.H{"queued": true})
		return
	}
	response.RespondOK(c, gin.H{"comments": created})
}
