package model

// swagger:model LearningPath
type LearningPath struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CourseIDs   []string `json:"courseIds"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Duration    string   `json:"duration,omitempty"`
}
