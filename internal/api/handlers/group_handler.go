package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/davideoddi/usergroups-api/internal/application"
	"github.com/davideoddi/usergroups-api/internal/domain/group"
	"github.com/davideoddi/usergroups-api/pkg/response"
	"github.com/davideoddi/usergroups-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

var groupFieldLabels = map[string]string{
	"Name": "name",
}

type GroupHandler struct {
	svc *application.GroupService
}

func NewGroupHandler(svc *application.GroupService) *GroupHandler {
	return &GroupHandler{svc: svc}
}

// GetGroups godoc
// @Summary List all groups
// @Tags groups
// @Produce json
// @Success 200 {array} group.GroupDTO
// @Failure 500 {object} response.InternalErrorResponse "Internal server error"
// @Router /groups [get]
func (h *GroupHandler) GetGroups(c *gin.Context) {
	groups, err := h.svc.ListGroups()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, group.ToDTOs(groups))
}

// CreateGroup godoc
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Param input body group.GroupInput true "Group data"
// @Success 201 {object} group.GroupDTO
// @Failure 400 {object} response.ValidationErrorResponse "Invalid group data"
// @Failure 500 {object} response.InternalErrorResponse "Internal server error"
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var input group.GroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
			Error:   "Invalid group data",
			Details: bindingDetails(err, groupFieldLabels),
		})
		return
	}

	created, err := h.svc.CreateGroup(input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, group.ToDTO(created))
}

// GetGroupByID godoc
// @Summary Get group by ID
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} group.GroupDTO
// @Failure 400 {object} response.ErrorResponse "Invalid group id"
// @Failure 404 {object} response.MessageResponse "Group not found"
// @Failure 500 {object} response.InternalErrorResponse "Internal server error"
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroupByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: invalidIDMessage})
		return
	}

	g, err := h.svc.FindGroupByID(id)
	if err != nil {
		if errors.Is(err, application.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, response.MessageResponse{
				Message: fmt.Sprintf("Group with ID %d not found.", id),
			})
			return
		}
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, group.ToDTO(g))
}

// UpdateGroup godoc
// @Summary Replace every field of a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param input body group.GroupInput true "Group data"
// @Success 200 {object} group.GroupDTO
// @Failure 400 {object} response.ValidationErrorResponse "Invalid group data"
// @Failure 404 {object} response.MessageResponse "Group not found"
// @Failure 500 {object} response.InternalErrorResponse "Internal server error"
// @Router /groups/{id} [put]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: invalidIDMessage})
		return
	}

	var input group.GroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
			Error:   "Invalid group data",
			Details: bindingDetails(err, groupFieldLabels),
		})
		return
	}

	updated, err := h.svc.UpdateGroup(id, input)
	if err != nil {
		if errors.Is(err, application.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, response.MessageResponse{
				Message: fmt.Sprintf("Group with ID %d not found.", id),
			})
			return
		}
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, group.ToDTO(updated))
}

// DeleteGroup godoc
// @Summary Delete a group and its memberships
// @Description Responds with the record as it was before deletion.
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} group.GroupDTO
// @Failure 400 {object} response.ErrorResponse "Invalid group id"
// @Failure 404 {object} response.MessageResponse "Group not found"
// @Failure 500 {object} response.InternalErrorResponse "Internal server error"
// @Router /groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: invalidIDMessage})
		return
	}

	deleted, err := h.svc.DeleteGroup(id)
	if err != nil {
		if errors.Is(err, application.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, response.MessageResponse{
				Message: fmt.Sprintf("Group with ID %d not found.", id),
			})
			return
		}
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, group.ToDTO(deleted))
}

// GetGroupsByUser godoc
// @Summary List the groups a user belongs to
// @Tags groups
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} group.GroupDTO
// @Failure 400 {object} response.ErrorResponse "Invalid user id"
// @Failure 500 {object} response.InternalErrorResponse "Internal server error"
// @Router /groups/user/{id} [get]
func (h *GroupHandler) GetGroupsByUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: invalidIDMessage})
		return
	}

	groups, err := h.svc.ListGroupsByUser(userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, group.ToDTOs(groups))
}
