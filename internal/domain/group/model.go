package group

import (
	"time"

	"github.com/davideoddi/usergroups-api/internal/domain/user"
)

type Group struct {
	ID        uint      `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"size:100;not null"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime"`
}

// UserGroup encodes the many-to-many relation between users and groups.
// Rows carry no meaning beyond the association itself.
type UserGroup struct {
	UserID    uint      `gorm:"primaryKey;column:user_id"`
	GroupID   uint      `gorm:"primaryKey;column:group_id"`
	User      user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Group     Group     `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime"`
}

func (UserGroup) TableName() string {
	return "user_group"
}
