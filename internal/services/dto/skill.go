package dto

import "time"

type AddSkillRequest struct {
	Name string `json:"name" validate:"required,min=1,max=60"`
	Type string `json:"type" validate:"required,skilltype"`
}

type SkillResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type SkillListResponse struct {
	Offered []SkillResponse `json:"offered"`
	Wanted  []SkillResponse `json:"wanted"`
}
