package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Profile is the public-facing record of a user: identity, skills and
// availability. Created at registration, mutated by its owner only,
// never hard-deleted.
type Profile struct {
	BaseModel
	UserID       string         `gorm:"uniqueIndex;not null"`
	Name         string         `gorm:"not null"`
	Location     string
	Bio          string
	AvatarURL    string
	Availability datatypes.JSON `gorm:"type:jsonb"` // ["weekends", "evenings"]
	IsPublic     bool           `gorm:"default:true"`

	// Relations
	Skills []Skill `gorm:"foreignKey:UserID;references:UserID"`
}

func (p *Profile) GetAvailability() []string {
	var slots []string
	if len(p.Availability) > 0 {
		_ = json.Unmarshal(p.Availability, &slots)
	}
	return slots
}

func (p *Profile) SetAvailability(slots []string) {
	data, _ := json.Marshal(slots)
	p.Availability = datatypes.JSON(data)
}

// OfferedSkills returns the names of skills tagged as offered.
func (p *Profile) OfferedSkills() []string {
	return p.skillNames(SkillTypeOffered)
}

// WantedSkills returns the names of skills tagged as wanted.
func (p *Profile) WantedSkills() []string {
	return p.skillNames(SkillTypeWanted)
}

func (p *Profile) skillNames(t SkillType) []string {
	var names []string
	for _, s := range p.Skills {
		if s.Type == t {
			names = append(names, s.Name)
		}
	}
	return names
}
