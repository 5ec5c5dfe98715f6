package handlers

import (
	"net/http"

	"animal-rescue-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CommentHandler handles animal comment threads
type CommentHandler struct {
	commentService *service.CommentService
	userService    *service.UserService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService *service.CommentService, userService *service.UserService) *CommentHandler {
	return &CommentHandler{commentService: commentService, userService: userService}
}

// List handles GET /animals/:id/comments
// @Summary List comments on an animal
// @Description Comments with nested replies, oldest first
// @Tags comments
// @Produce json
// @Param id path string true "Animal ID (UUID)"
// @Success 200 {object} map[string][]service.CommentResponse "Comments"
// @Failure 404 {object} ErrorResponse "Animal not found or not published"
// @Router /animals/{id}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	animalID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	comments, err := h.commentService.ListForAnimal(animalID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Create handles POST /animals/:id/comments
// @Summary Comment on an animal
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Animal ID (UUID)"
// @Param comment body service.CommentBodyRequest true "Comment body"
// @Success 201 {object} service.CommentResponse "Comment created"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /animals/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	animalID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.CommentBodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), currentUser(c, h.userService), animalID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// Update handles PUT /comments/:id
// @Summary Edit a comment
// @Description Only the author or staff may edit
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID (UUID)"
// @Param comment body service.CommentBodyRequest true "New body"
// @Success 200 {object} service.CommentResponse "Updated comment"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Security BearerAuth
// @Router /comments/{id} [put]
func (h *CommentHandler) Update(c *gin.Context) {
	commentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.CommentBodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Update(currentUser(c, h.userService), commentID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Delete handles DELETE /comments/:id
// @Summary Delete a comment and its replies
// @Tags comments
// @Param id path string true "Comment ID (UUID)"
// @Success 204 "Comment deleted"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.commentService.Delete(currentUser(c, h.userService), commentID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reply handles POST /comments/:id/replies
// @Summary Reply to a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Parent comment ID (UUID)"
// @Param reply body service.CommentBodyRequest true "Reply body"
// @Success 201 {object} service.SubCommentResponse "Reply created"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /comments/{id}/replies [post]
func (h *CommentHandler) Reply(c *gin.Context) {
	commentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.CommentBodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.commentService.Reply(c.Request.Context(), currentUser(c, h.userService), commentID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reply)
}

// UpdateReply handles PUT /replies/:id
// @Summary Edit a reply
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Reply ID (UUID)"
// @Param reply body service.CommentBodyRequest true "New body"
// @Success 200 {object} service.SubCommentResponse "Updated reply"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Security BearerAuth
// @Router /replies/{id} [put]
func (h *CommentHandler) UpdateReply(c *gin.Context) {
	subID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.CommentBodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.commentService.UpdateReply(currentUser(c, h.userService), subID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// DeleteReply handles DELETE /replies/:id
// @Summary Delete a reply
// @Tags comments
// @Param id path string true "Reply ID (UUID)"
// @Success 204 "Reply deleted"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Security BearerAuth
// @Router /replies/{id} [delete]
func (h *CommentHandler) DeleteReply(c *gin.Context) {
	subID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.commentService.DeleteReply(currentUser(c, h.userService), subID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
