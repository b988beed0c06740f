package model

// DefaultLearnerID 快照中对所有学习者生效的默认键
const DefaultLearnerID = "default"

// swagger:model Achievement
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	EarnedBy    string `json:"earnedBy"`
	EarnedAt    string `json:"earnedAt,omitempty"`
	XP          int    `json:"xp,omitempty"`
}

func (a Achievement) VisibleTo(learnerID string) bool {
	return a.EarnedBy == learnerID || a.EarnedBy == DefaultLearnerID
}
