package model

import "time"

const EnrollmentStatusActive = "active"

// swagger:model EnrollmentReceipt
type EnrollmentReceipt struct {
	EnrollmentID string    `json:"enrollmentId"`
	CourseID     string    `json:"courseId"`
	LearnerID    string    `json:"learnerId"`
	EnrolledAt   time.Time `json:"enrolledAt"`
	Status       string    `json:"status"`
}
