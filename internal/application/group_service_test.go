package application

import (
	"errors"
	"testing"

	"github.com/davideoddi/usergroups-api/internal/domain/group"
	"github.com/davideoddi/usergroups-api/internal/repository"
	"github.com/davideoddi/usergroups-api/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupGroupServiceMocks(t *testing.T) (*GroupService, *mock.MockGroupRepo, *mock.MockUserGroupRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockGroup := mock.NewMockGroupRepo(ctrl)
	mockUserGroup := mock.NewMockUserGroupRepo(ctrl)
	repos := &repository.Repos{
		Group:     mockGroup,
		UserGroup: mockUserGroup,
	}
	svc := NewGroupService(repos)
	return svc, mockGroup, mockUserGroup
}

// --------------------- CreateGroup ---------------------
func TestCreateGroup_ReturnsStoredRow(t *testing.T) {
	svc, mockGroup, _ := setupGroupServiceMocks(t)

	stored := group.Group{ID: 2, Name: "admins"}

	mockGroup.EXPECT().CreateGroup(gomock.Any()).DoAndReturn(func(g *group.Group) error {
		g.ID = 2
		return nil
	})
	mockGroup.EXPECT().GetGroupByID(uint(2)).Return(stored, nil)

	created, err := svc.CreateGroup(group.GroupInput{Name: "admins"})
	assert.NoError(t, err)
	assert.Equal(t, stored, created)
}

func TestCreateGroup_InsertError(t *testing.T) {
	svc, mockGroup, _ := setupGroupServiceMocks(t)

	mockGroup.EXPECT().CreateGroup(gomock.Any()).Return(errors.New("connection reset"))

	_, err := svc.CreateGroup(group.GroupInput{Name: "admins"})
	assert.Error(t, err)
}

// --------------------- FindGroupByID ---------------------
func TestFindGroupByID_TranslatesRecordNotFound(t *testing.T) {
	svc, mockGroup, _ := setupGroupServiceMocks(t)

	mockGroup.EXPECT().GetGroupByID(uint(999)).Return(group.Group{}, gorm.ErrRecordNotFound)

	_, err := svc.FindGroupByID(999)
	assert.Equal(t, ErrGroupNotFound, err)
}

// --------------------- UpdateGroup ---------------------
func TestUpdateGroup_Success(t *testing.T) {
	svc, mockGroup, _ := setupGroupServiceMocks(t)

	updated := group.Group{ID: 3, Name: "staff"}

	mockGroup.EXPECT().UpdateGroup(uint(3), gomock.Any()).Return(int64(1), nil)
	mockGroup.EXPECT().GetGroupByID(uint(3)).Return(updated, nil)

	result, err := svc.UpdateGroup(3, group.GroupInput{Name: "staff"})
	assert.NoError(t, err)
	assert.Equal(t, updated, result)
}

func TestUpdateGroup_MissingID(t *testing.T) {
	svc, mockGroup, _ := setupGroupServiceMocks(t)

	mockGroup.EXPECT().UpdateGroup(uint(404), gomock.Any()).Return(int64(0), nil)

	_, err := svc.UpdateGroup(404, group.GroupInput{Name: "staff"})
	assert.Equal(t, ErrGroupNotFound, err)
}

// --------------------- DeleteGroup ---------------------
func TestDeleteGroup_ReturnsPreImageAndCascades(t *testing.T) {
	svc, mockGroup, mockUserGroup := setupGroupServiceMocks(t)

	preImage := group.Group{ID: 5, Name: "admins"}

	mockGroup.EXPECT().GetGroupByID(uint(5)).Return(preImage, nil)
	mockUserGroup.EXPECT().DeleteByGroupID(uint(5)).Return(nil)
	mockGroup.EXPECT().DeleteGroup(uint(5)).Return(int64(1), nil)

	deleted, err := svc.DeleteGroup(5)
	assert.NoError(t, err)
	assert.Equal(t, preImage, deleted)
}

func TestDeleteGroup_NotFound(t *testing.T) {
	svc, mockGroup, _ := setupGroupServiceMocks(t)

	mockGroup.EXPECT().GetGroupByID(uint(999)).Return(group.Group{}, gorm.ErrRecordNotFound)

	_, err := svc.DeleteGroup(999)
	assert.Equal(t, ErrGroupNotFound, err)
}

// --------------------- Listing ---------------------
func TestListGroups_NilBecomesEmptySlice(t *testing.T) {
	svc, mockGroup, _ := setupGroupServiceMocks(t)

	mockGroup.EXPECT().ListGroups().Return(nil, nil)

	groups, err := svc.ListGroups()
	assert.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestListGroupsByUser_NoAssociations(t *testing.T) {
	svc, mockGroup, _ := setupGroupServiceMocks(t)

	mockGroup.EXPECT().ListGroupsByUser(uint(42)).Return(nil, nil)

	groups, err := svc.ListGroupsByUser(42)
	assert.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
