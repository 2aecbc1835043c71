package models

type UserStatus string
type UserRole string
type SwapStatus string
type SkillType string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCompleted SwapStatus = "completed"

	SkillTypeOffered SkillType = "offered"
	SkillTypeWanted  SkillType = "wanted"
)

// allowedSwapTransitions encodes the one-way status path:
// pending -> {accepted, rejected}, accepted -> completed.
// rejected and completed are terminal.
var allowedSwapTransitions = map[SwapStatus][]SwapStatus{
	SwapStatusPending:  {SwapStatusAccepted, SwapStatusRejected},
	SwapStatusAccepted: {SwapStatusCompleted},
}

// CanTransition reports whether a swap request may move from one status
// to another.
func CanTransition(from, to SwapStatus) bool {
	for _, next := range allowedSwapTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status ends the workflow.
func (s SwapStatus) IsTerminal() bool {
	return s == SwapStatusRejected || s == SwapStatusCompleted
}

func (s SwapStatus) Valid() bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCompleted:
		return true
	}
	return false
}

func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusSuspended, UserStatusBanned:
		return true
	}
	return false
}

func (t SkillType) Valid() bool {
	return t == SkillTypeOffered || t == SkillTypeWanted
}
