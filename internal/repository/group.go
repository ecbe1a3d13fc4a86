package repository

import (
	"github.com/davideoddi/usergroups-api/internal/domain/group"
	"gorm.io/gorm"
)

type GroupRepo interface {
	ListGroups() ([]group.Group, error)
	GetGroupByID(id uint) (group.Group, error)
	CreateGroup(g *group.Group) error
	UpdateGroup(id uint, g group.Group) (int64, error)
	DeleteGroup(id uint) (int64, error)
	ListGroupsByUser(userID uint) ([]group.Group, error)
	WithTx(tx *gorm.DB) GroupRepo
}

type DBGroupRepo struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) *DBGroupRepo {
	return &DBGroupRepo{
		db: db,
	}
}

func (r *DBGroupRepo) ListGroups() ([]group.Group, error) {
	var groups []group.Group
	err := r.db.Find(&groups).Error
	return groups, err
}

func (r *DBGroupRepo) GetGroupByID(id uint) (group.Group, error) {
	var g group.Group
	if err := r.db.First(&g, id).Error; err != nil {
		return g, err
	}
	return g, nil
}

func (r *DBGroupRepo) CreateGroup(g *group.Group) error {
	return r.db.Create(g).Error
}

func (r *DBGroupRepo) UpdateGroup(id uint, g group.Group) (int64, error) {
	res := r.db.Model(&group.Group{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name": g.Name,
	})
	return res.RowsAffected, res.Error
}

func (r *DBGroupRepo) DeleteGroup(id uint) (int64, error) {
	res := r.db.Delete(&group.Group{}, id)
	return res.RowsAffected, res.Error
}

func (r *DBGroupRepo) ListGroupsByUser(userID uint) ([]group.Group, error) {
	var groups []group.Group

	err := r.db.Table("groups g").
		Select("g.*").
		Joins("INNER JOIN user_group ug ON ug.group_id = g.id").
		Where("ug.user_id = ?", userID).
		Scan(&groups).Error

	return groups, err
}

func (r *DBGroupRepo) WithTx(tx *gorm.DB) GroupRepo {
	if tx == nil {
		return r
	}
	return &DBGroupRepo{
		db: tx,
	}
}
