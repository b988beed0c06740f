package service

import (
	"course_builder_backend/internal/model"
	"course_builder_backend/internal/progress"
	"course_builder_backend/internal/repository"
	"time"
)

func threeLessonStructure() model.CourseStructure {
	return model.CourseStructure{Topics: []model.Topic{{
		ID: "t1",
		Modules: []model.CourseModule{{
			ID:      "m1",
			TopicID: "t1",
			Lessons: []model.LessonStub{{ID: "l1"}, {ID: "l2"}, {ID: "l3"}},
		}},
	}}}
}

func newTestCatalog() *repository.CatalogRepository {
	enrolledAt := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	return repository.NewCatalogRepositoryFromSnapshot(&repository.Snapshot{
		Courses: []model.Course{
			{ID: "course_1", Title: "Go Basics", CourseType: model.CourseTypeGeneral, Skills: []string{"goroutines", "channels"}, Structure: threeLessonStructure()},
			{ID: "course_2", Title: "Adaptive SQL", CourseType: model.CourseTypePersonalized},
		},
		Lessons: []model.Lesson{
			{ID: "l1", CourseID: "course_1", Type: model.LessonTypeVideo},
			{ID: "l2", CourseID: "course_1", Type: model.LessonTypeCoding},
			{ID: "s1", CourseID: "course_2", Type: model.LessonTypeInteractive},
		},
		Users: []model.User{{ID: "learner_001", Name: "Ada", Role: model.Learner}},
		Achievements: []model.Achievement{
			{ID: "a1", EarnedBy: "learner_001"},
			{ID: "a2", EarnedBy: model.DefaultLearnerID},
			{ID: "a3", EarnedBy: "learner_002"},
		},
		LearningPaths: []model.LearningPath{{ID: "path_1", CourseIDs: []string{"course_1"}}},
		UserProgress: map[string]progress.State{
			"learner_001": {
				Enrollments: []progress.Enrollment{{CourseID: "course_1", EnrolledAt: enrolledAt}},
				Progress:    []progress.Progress{{CourseID: "course_1", ProgressPercentage: 33, CompletedLessonIDs: []string{"l1"}}},
			},
		},
	})
}
