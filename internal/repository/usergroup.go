package repository

import (
	"github.com/davideoddi/usergroups-api/internal/domain/group"
	"gorm.io/gorm"
)

type UserGroupRepo interface {
	CreateUserGroup(ug *group.UserGroup) error
	DeleteUserGroup(userID, groupID uint) error
	GetUserGroup(userID, groupID uint) (group.UserGroup, error)
	DeleteByUserID(userID uint) error
	DeleteByGroupID(groupID uint) error
	WithTx(tx *gorm.DB) UserGroupRepo
}

type DBUserGroupRepo struct {
	db *gorm.DB
}

func NewUserGroupRepo(db *gorm.DB) *DBUserGroupRepo {
	return &DBUserGroupRepo{
		db: db,
	}
}

func (r *DBUserGroupRepo) CreateUserGroup(ug *group.UserGroup) error {
	return r.db.Create(ug).Error
}

// DeleteUserGroup removes a single association; deleting a pair that was
// never associated is not an error.
func (r *DBUserGroupRepo) DeleteUserGroup(userID, groupID uint) error {
	return r.db.Where("user_id = ? AND group_id = ?", userID, groupID).
		Delete(&group.UserGroup{}).Error
}

func (r *DBUserGroupRepo) GetUserGroup(userID, groupID uint) (group.UserGroup, error) {
	var ug group.UserGroup
	err := r.db.First(&ug, "user_id = ? AND group_id = ?", userID, groupID).Error
	return ug, err
}

func (r *DBUserGroupRepo) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&group.UserGroup{}).Error
}

func (r *DBUserGroupRepo) DeleteByGroupID(groupID uint) error {
	return r.db.Where("group_id = ?", groupID).Delete(&group.UserGroup{}).Error
}

func (r *DBUserGroupRepo) WithTx(tx *gorm.DB) UserGroupRepo {
	if tx == nil {
		return r
	}
	return &DBUserGroupRepo{
		db: tx,
	}
}
