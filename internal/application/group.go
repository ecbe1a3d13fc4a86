package application

import (
	"errors"

	"github.com/davideoddi/usergroups-api/internal/domain/group"
	"github.com/davideoddi/usergroups-api/internal/repository"
	"gorm.io/gorm"
)

var ErrGroupNotFound = errors.New("group not found")

type GroupService struct {
	Repos *repository.Repos
}

func NewGroupService(repos *repository.Repos) *GroupService {
	return &GroupService{
		Repos: repos,
	}
}

func (s *GroupService) ListGroups() ([]group.Group, error) {
	groups, err := s.Repos.Group.ListGroups()
	if err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []group.Group{}
	}
	return groups, nil
}

func (s *GroupService) FindGroupByID(id uint) (group.Group, error) {
	g, err := s.Repos.Group.GetGroupByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return group.Group{}, ErrGroupNotFound
	}
	return g, err
}

// CreateGroup mirrors CreateUser: insert, then re-read the stored row.
func (s *GroupService) CreateGroup(input group.GroupInput) (group.Group, error) {
	g := input.ToModel()
	if err := s.Repos.Group.CreateGroup(&g); err != nil {
		return group.Group{}, err
	}
	return s.FindGroupByID(g.ID)
}

func (s *GroupService) UpdateGroup(id uint, input group.GroupInput) (group.Group, error) {
	affected, err := s.Repos.Group.UpdateGroup(id, input.ToModel())
	if err != nil {
		return group.Group{}, err
	}
	if affected == 0 {
		return group.Group{}, ErrGroupNotFound
	}
	return s.FindGroupByID(id)
}

// DeleteGroup removes the group and its membership rows, returning the
// pre-deletion record.
func (s *GroupService) DeleteGroup(id uint) (group.Group, error) {
	g, err := s.FindGroupByID(id)
	if err != nil {
		return group.Group{}, err
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.UserGroup.DeleteByGroupID(id); err != nil {
			return err
		}
		_, err := r.Group.DeleteGroup(id)
		return err
	})
	if err != nil {
		return group.Group{}, err
	}
	return g, nil
}

func (s *GroupService) ListGroupsByUser(userID uint) ([]group.Group, error) {
	groups, err := s.Repos.Group.ListGroupsByUser(userID)
	if err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []group.Group{}
	}
	return groups, nil
}
