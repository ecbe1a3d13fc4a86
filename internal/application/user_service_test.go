package application

import (
	"errors"
	"testing"
	"time"

	"github.com/davideoddi/usergroups-api/internal/domain/user"
	"github.com/davideoddi/usergroups-api/internal/repository"
	"github.com/davideoddi/usergroups-api/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo, *mock.MockUserGroupRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	mockUserGroup := mock.NewMockUserGroupRepo(ctrl)
	repos := &repository.Repos{
		User:      mockUser,
		UserGroup: mockUserGroup,
	}
	svc := NewUserService(repos)
	return svc, mockUser, mockUserGroup
}

func birthDate(value string) datatypes.Date {
	parsed, _ := time.Parse("2006-01-02", value)
	return datatypes.Date(parsed)
}

func davideInput() user.UserInput {
	return user.UserInput{
		Name:      "Davide",
		Surname:   "Oddi",
		BirthDate: "1990-01-01",
		Sex:       "male",
	}
}

// --------------------- CreateUser ---------------------
func TestCreateUser_ReturnsStoredRow(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	stored := user.User{
		ID:        7,
		Name:      "Davide",
		Surname:   "Oddi",
		BirthDate: birthDate("1990-01-01"),
		Sex:       user.SexMale,
	}

	mockUser.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.ID = 7
		return nil
	})
	mockUser.EXPECT().GetUserByID(uint(7)).Return(stored, nil)

	created, err := svc.CreateUser(davideInput())
	assert.NoError(t, err)
	assert.Equal(t, stored, created)
}

func TestCreateUser_RowVanishedBetweenInsertAndReread(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.ID = 7
		return nil
	})
	mockUser.EXPECT().GetUserByID(uint(7)).Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.CreateUser(davideInput())
	assert.Equal(t, ErrUserNotFound, err)
}

func TestCreateUser_InsertError(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().CreateUser(gomock.Any()).Return(errors.New("connection reset"))

	_, err := svc.CreateUser(davideInput())
	assert.Error(t, err)
	assert.NotEqual(t, ErrUserNotFound, err)
}

// --------------------- FindUserByID ---------------------
func TestFindUserByID_TranslatesRecordNotFound(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(999)).Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.FindUserByID(999)
	assert.Equal(t, ErrUserNotFound, err)
}

// --------------------- UpdateUser ---------------------
func TestUpdateUser_Success(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	updated := user.User{
		ID:        3,
		Name:      "Davide",
		Surname:   "Oddi",
		BirthDate: birthDate("1990-01-01"),
		Sex:       user.SexMale,
	}

	mockUser.EXPECT().UpdateUser(uint(3), gomock.Any()).Return(int64(1), nil)
	mockUser.EXPECT().GetUserByID(uint(3)).Return(updated, nil)

	result, err := svc.UpdateUser(3, davideInput())
	assert.NoError(t, err)
	assert.Equal(t, updated, result)
}

func TestUpdateUser_MissingIDLeavesStorageUntouched(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	// Zero affected rows means the id did not exist; no re-read happens.
	mockUser.EXPECT().UpdateUser(uint(404), gomock.Any()).Return(int64(0), nil)

	_, err := svc.UpdateUser(404, davideInput())
	assert.Equal(t, ErrUserNotFound, err)
}

// --------------------- DeleteUser ---------------------
func TestDeleteUser_ReturnsPreImageAndCascades(t *testing.T) {
	svc, mockUser, mockUserGroup := setupUserServiceMocks(t)

	preImage := user.User{
		ID:        5,
		Name:      "Davide",
		Surname:   "Oddi",
		BirthDate: birthDate("1990-01-01"),
		Sex:       user.SexMale,
	}

	mockUser.EXPECT().GetUserByID(uint(5)).Return(preImage, nil)
	mockUserGroup.EXPECT().DeleteByUserID(uint(5)).Return(nil)
	mockUser.EXPECT().DeleteUser(uint(5)).Return(int64(1), nil)

	deleted, err := svc.DeleteUser(5)
	assert.NoError(t, err)
	assert.Equal(t, preImage, deleted)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(999)).Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.DeleteUser(999)
	assert.Equal(t, ErrUserNotFound, err)
}

// --------------------- Listing ---------------------
func TestListUsers_NilBecomesEmptySlice(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().ListUsers(10, 1).Return(nil, nil)

	users, err := svc.ListUsers(10, 1)
	assert.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsersByGroup_NoAssociations(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().ListUsersByGroup(uint(42)).Return(nil, nil)

	users, err := svc.ListUsersByGroup(42)
	assert.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}
