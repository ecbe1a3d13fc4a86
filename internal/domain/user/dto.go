package user

import (
	"time"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

type UserInput struct {
	Name      string `json:"name" binding:"required" example:"Davide"`
	Surname   string `json:"surname" binding:"required" example:"Oddi"`
	BirthDate string `json:"birth_date" binding:"required,datetime=2006-01-02" example:"1990-01-01"`
	Sex       string `json:"sex" binding:"required,oneof=male female other" example:"male"`
}

type UserDTO struct {
	ID        uint   `json:"id" example:"1"`
	Name      string `json:"name" example:"Davide"`
	Surname   string `json:"surname" example:"Oddi"`
	BirthDate string `json:"birth_date" example:"1990-01-01"`
	Sex       string `json:"sex" example:"male"`
	CreatedAt string `json:"create_at" example:"2025-07-17 15:20:41"`
	UpdatedAt string `json:"update_at" example:"2025-07-17 15:20:41"`
}

// ToModel assumes the input already passed binding validation, so the
// birth date is guaranteed to parse.
func (in UserInput) ToModel() User {
	bd, _ := time.Parse(dateLayout, in.BirthDate)
	return User{
		Name:      in.Name,
		Surname:   in.Surname,
		BirthDate: datatypes.Date(bd),
		Sex:       Sex(in.Sex),
	}
}

func ToDTO(u User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Surname:   u.Surname,
		BirthDate: time.Time(u.BirthDate).Format(dateLayout),
		Sex:       string(u.Sex),
		CreatedAt: u.CreatedAt.Format(time.DateTime),
		UpdatedAt: u.UpdatedAt.Format(time.DateTime),
	}
}

func ToDTOs(users []User) []UserDTO {
	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, ToDTO(u))
	}
	return dtos
}
