package application

import (
	"github.com/davideoddi/usergroups-api/internal/domain/group"
	"github.com/davideoddi/usergroups-api/internal/repository"
)

type UserGroupService struct {
	Repos *repository.Repos
}

func NewUserGroupService(repos *repository.Repos) *UserGroupService {
	return &UserGroupService{
		Repos: repos,
	}
}

func (s *UserGroupService) AddUserToGroup(userID, groupID uint) error {
	return s.Repos.UserGroup.CreateUserGroup(&group.UserGroup{
		UserID:  userID,
		GroupID: groupID,
	})
}

// RemoveUserFromGroup succeeds whether or not the association existed.
func (s *UserGroupService) RemoveUserFromGroup(userID, groupID uint) error {
	return s.Repos.UserGroup.DeleteUserGroup(userID, groupID)
}
