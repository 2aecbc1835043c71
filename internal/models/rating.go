package models

// Rating is left by one participant of a swap about the other.
// One rating per rater per swap. Deletable by admins.
type Rating struct {
	BaseModel
	RaterID       string `gorm:"not null;index;uniqueIndex:idx_rater_swap"`
	RatedID       string `gorm:"not null;index"`
	SwapRequestID string `gorm:"not null;index;uniqueIndex:idx_rater_swap"`
	Score         int    `gorm:"not null;check:score >= 1 AND score <= 5"`
	Comment       string

	// Relations
	Rater *User        `gorm:"foreignKey:RaterID"`
	Rated *User        `gorm:"foreignKey:RatedID"`
	Swap  *SwapRequest `gorm:"foreignKey:SwapRequestID"`
}
