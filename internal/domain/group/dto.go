package group

import (
	"encoding/json"
	"time"
)

type GroupInput struct {
	Name string `json:"name" binding:"required" example:"engineering"`
}

type GroupDTO struct {
	ID        uint   `json:"id" example:"1"`
	Name      string `json:"name" example:"engineering"`
	CreatedAt string `json:"create_at" example:"2025-07-17 15:20:41"`
	UpdatedAt string `json:"update_at" example:"2025-07-17 15:20:41"`
}

// MembershipInput accepts both spellings of the pair keys, so
// {"userId":1,"groupId":2} and {"user_id":1,"group_id":2} bind alike.
type MembershipInput struct {
	UserID  uint `json:"user_id" binding:"required" example:"1"`
	GroupID uint `json:"group_id" binding:"required" example:"2"`
}

func (in *MembershipInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		UserID       uint `json:"user_id"`
		GroupID      uint `json:"group_id"`
		UserIDCamel  uint `json:"userId"`
		GroupIDCamel uint `json:"groupId"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	in.UserID = raw.UserID
	if in.UserID == 0 {
		in.UserID = raw.UserIDCamel
	}
	in.GroupID = raw.GroupID
	if in.GroupID == 0 {
		in.GroupID = raw.GroupIDCamel
	}
	return nil
}

func (in GroupInput) ToModel() Group {
	return Group{Name: in.Name}
}

func ToDTO(g Group) GroupDTO {
	return GroupDTO{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt.Format(time.DateTime),
		UpdatedAt: g.UpdatedAt.Format(time.DateTime),
	}
}

func ToDTOs(groups []Group) []GroupDTO {
	dtos := make([]GroupDTO, 0, len(groups))
	for _, g := range groups {
		dtos = append(dtos, ToDTO(g))
	}
	return dtos
}
