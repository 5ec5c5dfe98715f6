package handlers

import (
	"net/http"

	"animal-rescue-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for organization memberships
type MemberHandler struct {
	memberService *service.MemberService
	userService   *service.UserService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *service.MemberService, userService *service.UserService) *MemberHandler {
	return &MemberHandler{memberService: memberService, userService: userService}
}

// List handles GET /management/awgs/:id/members
// @Summary List an organization's members
// @Tags members
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.MemberResponse "Members"
// @Failure 403 {object} ErrorResponse "No permissions on this organization"
// @Security BearerAuth
// @Router /management/awgs/{id}/members [get]
func (h *MemberHandler) List(c *gin.Context) {
	awgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	members, err := h.memberService.List(currentUser(c, h.userService), awgID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// Add handles POST /management/awgs/:id/members
// @Summary Add a member to an organization
// @Description Grant an existing account membership with a set of permissions
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param member body service.AddMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Member added"
// @Failure 403 {object} ErrorResponse "Missing manage-members permission"
// @Failure 404 {object} ErrorResponse "No account with that email"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Security BearerAuth
// @Router /management/awgs/{id}/members [post]
func (h *MemberHandler) Add(c *gin.Context) {
	awgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.Add(currentUser(c, h.userService), awgID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// Update handles PUT /management/awgs/:id/members/:memberId
// @Summary Replace a member's permissions
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param memberId path string true "Membership ID (UUID)"
// @Param member body service.UpdateMemberRequest true "Permission flags"
// @Success 200 {object} service.MemberResponse "Updated member"
// @Failure 403 {object} ErrorResponse "Missing manage-members permission"
// @Security BearerAuth
// @Router /management/awgs/{id}/members/{memberId} [put]
func (h *MemberHandler) Update(c *gin.Context) {
	awgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseUUIDParam(c, "memberId")
	if !ok {
		return
	}
	var req service.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.Update(currentUser(c, h.userService), awgID, memberID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// Remove handles DELETE /management/awgs/:id/members/:memberId
// @Summary Remove a member from an organization
// @Tags members
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param memberId path string true "Membership ID (UUID)"
// @Success 204 "Member removed"
// @Failure 403 {object} ErrorResponse "Missing manage-members permission"
// @Security BearerAuth
// @Router /management/awgs/{id}/members/{memberId} [delete]
func (h *MemberHandler) Remove(c *gin.Context) {
	awgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseUUIDParam(c, "memberId")
	if !ok {
		return
	}

	if err := h.memberService.Remove(currentUser(c, h.userService), awgID, memberID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
