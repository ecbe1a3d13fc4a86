package application

import (
	"errors"
	"testing"

	"github.com/davideoddi/usergroups-api/internal/domain/group"
	"github.com/davideoddi/usergroups-api/internal/repository"
	"github.com/davideoddi/usergroups-api/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func setupUserGroupServiceMocks(t *testing.T) (*UserGroupService, *mock.MockUserGroupRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUserGroup := mock.NewMockUserGroupRepo(ctrl)
	svc := NewUserGroupService(&repository.Repos{UserGroup: mockUserGroup})
	return svc, mockUserGroup
}

func TestAddUserToGroup(t *testing.T) {
	svc, mockUserGroup := setupUserGroupServiceMocks(t)

	mockUserGroup.EXPECT().CreateUserGroup(&group.UserGroup{UserID: 1, GroupID: 2}).Return(nil)

	assert.NoError(t, svc.AddUserToGroup(1, 2))
}

func TestAddUserToGroup_StorageError(t *testing.T) {
	svc, mockUserGroup := setupUserGroupServiceMocks(t)

	mockUserGroup.EXPECT().CreateUserGroup(gomock.Any()).Return(errors.New("duplicate key"))

	assert.Error(t, svc.AddUserToGroup(1, 2))
}

func TestRemoveUserFromGroup(t *testing.T) {
	svc, mockUserGroup := setupUserGroupServiceMocks(t)

	mockUserGroup.EXPECT().DeleteUserGroup(uint(1), uint(2)).Return(nil)

	assert.NoError(t, svc.RemoveUserFromGroup(1, 2))
}
