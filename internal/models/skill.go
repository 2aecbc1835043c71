package models

// Skill belongs to exactly one user and carries a direction tag:
// offered (can teach) or wanted (wants to learn).
type Skill struct {
	BaseModel
	UserID string    `gorm:"not null;index;uniqueIndex:idx_user_skill"`
	Name   string    `gorm:"not null;uniqueIndex:idx_user_skill"`
	Type   SkillType `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_skill"`
}
