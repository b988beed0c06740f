package util

import "errors"

var (
	ErrCourseNotFound       = errors.New("course not found")
	ErrLearningPathNotFound = errors.New("learning path not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrLearnerIDRequired    = errors.New("learnerId is required")
	ErrInvalidRating        = errors.New("rating must be an integer between 1 and 5")
	ErrCourseIDRequired     = errors.New("courseId is required")
	ErrLessonIDRequired     = errors.New("lessonId is required")
	ErrLessonNotInCourse    = errors.New("lesson does not belong to course")
	ErrNoAnswers            = errors.New("answers are required")
)
