package model

import "time"

const (
	FeedbackStatusSubmitted = "submitted"

	MinRating = 1
	MaxRating = 5
)

// swagger:model Feedback
type Feedback struct {
	FeedbackID  string    `json:"feedbackId"`
	LearnerID   string    `json:"learnerId"`
	CourseID    string    `json:"courseId"`
	Rating      int       `json:"rating"`
	Comments    string    `json:"comments"`
	SubmittedAt time.Time `json:"submittedAt"`
	Status      string    `json:"status"`
}
