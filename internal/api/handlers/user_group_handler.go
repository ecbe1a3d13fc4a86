package handlers

import (
	"net/http"

	"github.com/davideoddi/usergroups-api/internal/application"
	"github.com/davideoddi/usergroups-api/internal/domain/group"
	"github.com/davideoddi/usergroups-api/pkg/response"
	"github.com/davideoddi/usergroups-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

var membershipFieldLabels = map[string]string{
	"UserID":  "user_id",
	"GroupID": "group_id",
}

type UserGroupHandler struct {
	svc *application.UserGroupService
}

func NewUserGroupHandler(svc *application.UserGroupService) *UserGroupHandler {
	return &UserGroupHandler{svc: svc}
}

// AddUserToGroup godoc
// @Summary Associate a user with a group
// @Tags memberships
// @Accept json
// @Param input body group.MembershipInput true "Membership"
// @Success 201 "Created"
// @Failure 400 {object} response.ValidationErrorResponse "Invalid membership data"
// @Failure 500 {object} response.InternalErrorResponse "Internal server error"
// @Router /users/group [post]
func (h *UserGroupHandler) AddUserToGroup(c *gin.Context) {
	var input group.MembershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
			Error:   "Invalid membership data",
			Details: bindingDetails(err, membershipFieldLabels),
		})
		return
	}

	if err := h.svc.AddUserToGroup(input.UserID, input.GroupID); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusCreated)
}

// RemoveUserFromGroup godoc
// @Summary Disassociate a user from a group
// @Description Succeeds with 204 whether or not the association existed.
// @Tags memberships
// @Param id path int true "User ID"
// @Param group_id path int true "Group ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid id"
// @Failure 500 {object} response.InternalErrorResponse "Internal server error"
// @Router /users/{id}/groups/{group_id} [delete]
func (h *UserGroupHandler) RemoveUserFromGroup(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: invalidIDMessage})
		return
	}
	groupID, err := utils.ParseIDParam(c, "group_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: invalidIDMessage})
		return
	}

	if err := h.svc.RemoveUserFromGroup(userID, groupID); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
