package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/davideoddi/usergroups-api/internal/application"
	"github.com/davideoddi/usergroups-api/internal/domain/user"
	"github.com/davideoddi/usergroups-api/pkg/response"
	"github.com/davideoddi/usergroups-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

const invalidIDMessage = "Invalid ID format. ID must be a positive number."

var userFieldLabels = map[string]string{
	"Name":      "name",
	"Surname":   "surname",
	"BirthDate": "birth_date",
	"Sex":       "sex",
}

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetUsers godoc
// @Summary List users with pagination
// @Tags users
// @Produce json
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Param page query int false "Page number (default: 1)"
// @Success 200 {array} user.UserDTO
// @Failure 500 {object} response.InternalErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	users, err := h.svc.ListUsers(limit, page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTOs(users))
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param input body user.UserInput true "User data"
// @Success 201 {object} user.UserDTO
// @Failure 400 {object} response.ValidationErrorResponse "Invalid user data"
// @Failure 500 {object} response.InternalErrorResponse "Internal server error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input user.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
			Error:   "Invalid user data",
			Details: bindingDetails(err, userFieldLabels),
		})
		return
	}

	created, err := h.svc.CreateUser(input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, user.ToDTO(created))
}

// GetUserByID godoc
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} user.UserDTO
// @Failure 400 {object} response.ErrorResponse "Invalid user id"
// @Failure 404 {object} response.MessageResponse "User not found"
// @Failure 500 {object} response.InternalErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: invalidIDMessage})
		return
	}

	u, err := h.svc.FindUserByID(id)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.MessageResponse{
				Message: fmt.Sprintf("User with ID %d not found.", id),
			})
			return
		}
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTO(u))
}

// UpdateUser godoc
// @Summary Replace every field of a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.UserInput true "User data"
// @Success 200 {object} user.UserDTO
// @Failure 400 {object} response.ValidationErrorResponse "Invalid user data"
// @Failure 404 {object} response.MessageResponse "User not found"
// @Failure 500 {object} response.InternalErrorResponse "Internal server error"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: invalidIDMessage})
		return
	}

	var input user.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
			Error:   "Invalid user data",
			Details: bindingDetails(err, userFieldLabels),
		})
		return
	}

	updated, err := h.svc.UpdateUser(id, input)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.MessageResponse{
				Message: fmt.Sprintf("User with ID %d not found.", id),
			})
			return
		}
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTO(updated))
}

// DeleteUser godoc
// @Summary Delete a user and its group memberships
// @Description Responds with the record as it was before deletion.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} user.UserDTO
// @Failure 400 {object} response.ErrorResponse "Invalid user id"
// @Failure 404 {object} response.MessageResponse "User not found"
// @Failure 500 {object} response.InternalErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: invalidIDMessage})
		return
	}

	deleted, err := h.svc.DeleteUser(id)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.MessageResponse{
				Message: fmt.Sprintf("User with ID %d not found.", id),
			})
			return
		}
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTO(deleted))
}

// GetUsersByGroup godoc
// @Summary List the users belonging to a group
// @Tags users
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {array} user.UserDTO
// @Failure 400 {object} response.ErrorResponse "Invalid group id"
// @Failure 500 {object} response.InternalErrorResponse "Internal server error"
// @Router /users/group/{id} [get]
func (h *UserHandler) GetUsersByGroup(c *gin.Context) {
	groupID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: invalidIDMessage})
		return
	}

	users, err := h.svc.ListUsersByGroup(groupID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user.ToDTOs(users))
}
