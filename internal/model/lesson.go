package model

type LessonType string

const (
	LessonTypeVideo       LessonType = "video"
	LessonTypeInteractive LessonType = "interactive"
	LessonTypeCoding      LessonType = "coding"
)

// swagger:model Lesson
type Lesson struct {
	ID          string     `json:"id"`
	CourseID    string     `json:"courseId"`
	ModuleID    string     `json:"moduleId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Type        LessonType `json:"type"`
	Duration    string     `json:"duration"`
}
