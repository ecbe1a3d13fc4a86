package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Group     GroupRepo
	User      UserRepo
	UserGroup UserGroupRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Group:     NewGroupRepo(db),
		User:      NewUserRepo(db),
		UserGroup: NewUserGroupRepo(db),
		db:        db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Group:     r.Group.WithTx(tx),
		User:      r.User.WithTx(tx),
		UserGroup: r.UserGroup.WithTx(tx),
		db:        tx,
	}
}

// ExecTx runs fn inside a single transaction. A container built without a
// database handle (unit tests with mocked repos) runs fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
