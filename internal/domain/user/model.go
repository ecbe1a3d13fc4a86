package user

import (
	"time"

	"gorm.io/datatypes"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

type User struct {
	ID        uint           `gorm:"primaryKey;column:id"`
	Name      string         `gorm:"size:100;not null"`
	Surname   string         `gorm:"size:100;not null"`
	BirthDate datatypes.Date `gorm:"column:birth_date;not null"`
	Sex       Sex            `gorm:"size:10;not null"`
	CreatedAt time.Time      `gorm:"column:create_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:update_at;autoUpdateTime"`
}
