package application

import (
	"errors"

	"github.com/davideoddi/usergroups-api/internal/domain/user"
	"github.com/davideoddi/usergroups-api/internal/repository"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) ListUsers(limit, page int) ([]user.User, error) {
	users, err := s.Repos.User.ListUsers(limit, page)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []user.User{}
	}
	return users, nil
}

func (s *UserService) FindUserByID(id uint) (user.User, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, ErrUserNotFound
	}
	return u, err
}

// CreateUser inserts the user and reads the stored row back, so the result
// reflects any storage-side coercion of the inserted values. The two
// statements are not atomic: a concurrent delete between them makes the
// re-read miss, and creation is then reported as ErrUserNotFound.
func (s *UserService) CreateUser(input user.UserInput) (user.User, error) {
	u := input.ToModel()
	if err := s.Repos.User.CreateUser(&u); err != nil {
		return user.User{}, err
	}
	return s.FindUserByID(u.ID)
}

func (s *UserService) UpdateUser(id uint, input user.UserInput) (user.User, error) {
	affected, err := s.Repos.User.UpdateUser(id, input.ToModel())
	if err != nil {
		return user.User{}, err
	}
	if affected == 0 {
		return user.User{}, ErrUserNotFound
	}
	return s.FindUserByID(id)
}

// DeleteUser removes the user together with every membership row that
// references it and returns the record as it was read before deletion.
func (s *UserService) DeleteUser(id uint) (user.User, error) {
	u, err := s.FindUserByID(id)
	if err != nil {
		return user.User{}, err
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		// Membership rows go first so foreign keys hold mid-transaction.
		if err := r.UserGroup.DeleteByUserID(id); err != nil {
			return err
		}
		_, err := r.User.DeleteUser(id)
		return err
	})
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (s *UserService) ListUsersByGroup(groupID uint) ([]user.User, error) {
	users, err := s.Repos.User.ListUsersByGroup(groupID)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []user.User{}
	}
	return users, nil
}
