package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yyoonchul/murmur-blog/internal/http/response"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
	"github.com/yyoonchul/murmur-blog/internal/services"
)

type CommentHandler struct {
	log      *logger.Logger
	comments services.CommentService
}

func NewCommentHandler(log *logger.Logger, comments services.CommentService) *CommentHandler {
	return &CommentHandler{log: log.With("handler", "CommentHandler"), comments: comments}
}

// GET /api/posts/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	out, err := h.comments.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondNotFoundAs(c, err, "post_not_found", errPostNotFound, "list_comments_failed")
		return
	}
	response.RespondOK(c, gin.H{"comments": out})
}

// POST /api/posts/:id/comments?wait=true
// body: { "content": "...", "parentId": "..." }
func (h *CommentHandler) Create(c *gin.Context) {
	var req struct {
		Content  string `json:"content"`
		ParentID string `json:"parentId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errInvalidBody)
		return
	}
	out, err := h.comments.AddUserComment(c.Request.Context(), services.AddCommentInput{
		PostID:   c.Param("id"),
		Content:  req.Content,
		ParentID: req.ParentID,
		Wait:     queryBool(c, "wait"),
	})
	if err != nil {
		response.RespondServiceError(c, err, "add_comment_failed")
		return
	}
	response.RespondCreated(c, gin.H{"comment": out.Comment, "replies": out.Replies})
}

// DELETE /api/posts/:id/comments/:commentId
func (h *CommentHandler) Delete(c *gin.Context) {
	removed, err := h.comments.Delete(c.Request.Context(), c.Param("id"), c.Param("commentId"))
	if err != nil {
		respondNotFoundAs(c, err, "comment_not_found", errCommentNotFound, "delete_comment_failed")
		return
	}
	response.RespondOK(c, gin.H{"success": true, "deleted": removed})
}
