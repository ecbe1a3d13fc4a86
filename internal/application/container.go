package application

import (
	"github.com/davideoddi/usergroups-api/internal/repository"
)

type Services struct {
	Group     *GroupService
	User      *UserService
	UserGroup *UserGroupService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		Group:     NewGroupService(repos),
		User:      NewUserService(repos),
		UserGroup: NewUserGroupService(repos),
	}
}
