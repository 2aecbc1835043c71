package models

// SwapRequest is a proposed exchange of one offered skill for one wanted
// skill between two profiles. Status moves one way only:
// pending -> {accepted, rejected} -> completed.
type SwapRequest struct {
	BaseModel
	RequesterID  string     `gorm:"not null;index"`
	ProviderID   string     `gorm:"not null;index"`
	SkillOffered string     `gorm:"not null"`
	SkillWanted  string     `gorm:"not null"`
	Status       SwapStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Message      string

	// Post-completion feedback, attached once by one participant.
	Feedback       string
	FeedbackRating *int   `gorm:"check:feedback_rating IS NULL OR (feedback_rating >= 1 AND feedback_rating <= 5)"`
	FeedbackBy     string // user ID of the party that left the feedback

	// Relations
	Requester *User `gorm:"foreignKey:RequesterID"`
	Provider  *User `gorm:"foreignKey:ProviderID"`
}

// Involves reports whether userID is a participant of the swap.
func (s *SwapRequest) Involves(userID string) bool {
	return s.RequesterID == userID || s.ProviderID == userID
}

// Counterparty returns the other participant's user ID, or "" when
// userID is not a participant.
func (s *SwapRequest) Counterparty(userID string) string {
	switch userID {
	case s.RequesterID:
		return s.ProviderID
	case s.ProviderID:
		return s.RequesterID
	}
	return ""
}

// HasFeedback reports whether feedback was already attached.
func (s *SwapRequest) HasFeedback() bool {
	return s.FeedbackRating != nil
}
