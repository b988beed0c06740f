package model

import "time"

// DefaultPassingScore 默认及格线（百分比，含边界）
const DefaultPassingScore = 70

// swagger:model Assessment
type Assessment struct {
	ID           string               `json:"id"`
	CourseID     string               `json:"courseId"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	TimeLimit    int                  `json:"timeLimit"` // Minutes
	PassingScore int                  `json:"passingScore"`
	Questions    []AssessmentQuestion `json:"questions"`
}

type AssessmentQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// AssessmentScore 评分结果
type AssessmentScore struct {
	Correct    int  `json:"correct"`
	Total      int  `json:"total"`
	Percentage int  `json:"percentage"`
	Passed     bool `json:"passed"`
}

// swagger:model AssessmentResult
type AssessmentResult struct {
	AssessmentScore
	SubmissionID string    `json:"submissionId"`
	CourseID     string    `json:"courseId"`
	LearnerID    string    `json:"learnerId"`
	PassingScore int       `json:"passingScore"`
	SubmittedAt  time.Time `json:"submittedAt"`
}
