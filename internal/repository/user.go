package repository

import (
	"github.com/davideoddi/usergroups-api/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	ListUsers(limit, page int) ([]user.User, error)
	GetUserByID(id uint) (user.User, error)
	CreateUser(u *user.User) error
	UpdateUser(id uint, u user.User) (int64, error)
	DeleteUser(id uint) (int64, error)
	ListUsersByGroup(groupID uint) ([]user.User, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

// ListUsers pages through users; page is 1-indexed.
func (r *DBUserRepo) ListUsers(limit, page int) ([]user.User, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	offset := (page - 1) * limit

	var users []user.User
	if err := r.db.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

// UpdateUser rewrites every scalar field of the row and reports how many
// rows matched; 0 means the id does not exist and nothing was changed.
func (r *DBUserRepo) UpdateUser(id uint, u user.User) (int64, error) {
	res := r.db.Model(&user.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       u.Name,
		"surname":    u.Surname,
		"birth_date": u.BirthDate,
		"sex":        u.Sex,
	})
	return res.RowsAffected, res.Error
}

func (r *DBUserRepo) DeleteUser(id uint) (int64, error) {
	res := r.db.Delete(&user.User{}, id)
	return res.RowsAffected, res.Error
}

func (r *DBUserRepo) ListUsersByGroup(groupID uint) ([]user.User, error) {
	var users []user.User

	err := r.db.Table("users u").
		Select("u.*").
		Joins("INNER JOIN user_group ug ON ug.user_id = u.id").
		Where("ug.group_id = ?", groupID).
		Scan(&users).Error

	return users, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
