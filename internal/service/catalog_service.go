package service

import (
	"course_builder_backend/internal/model"
	"course_builder_backend/internal/repository"
	"course_builder_backend/internal/util"
	"course_builder_backend/pkg/monitoring"
)

// CatalogService 只读目录查询，所有数据来自当前快照
type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

// ListCourses courseType 为空时返回全部课程
func (s *CatalogService) ListCourses(courseType model.CourseType) []model.Course {
	courses := s.Repo.Snapshot().Courses
	if courseType == "" {
		return courses
	}

	filtered := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if c.CourseType == courseType {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (s *CatalogService) GetCourse(id string) (*model.Course, error) {
	course, ok := s.Repo.Snapshot().FindCourse(id)
	if !ok {
		return nil, util.ErrCourseNotFound
	}
	return course, nil
}

func (s *CatalogService) GetCourseLessons(id string) ([]model.Lesson, error) {
	snap := s.Repo.Snapshot()
	if _, ok := snap.FindCourse(id); !ok {
		return nil, util.ErrCourseNotFound
	}
	return snap.LessonsForCourse(id), nil
}

func (s *CatalogService) ListUsers() []model.User {
	return s.Repo.Snapshot().Users
}

func (s *CatalogService) GetUser(id string) (*model.User, error) {
	user, ok := s.Repo.Snapshot().FindUser(id)
	if !ok {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

// GetUserAchievements 返回该学习者获得的成就以及 default 成就
func (s *CatalogService) GetUserAchievements(learnerID string) []model.Achievement {
	all := s.Repo.Snapshot().Achievements
	out := make([]model.Achievement, 0, len(all))
	for _, a := range all {
		if a.VisibleTo(learnerID) {
			out = append(out, a)
		}
	}
	return out
}

func (s *CatalogService) ListLearningPaths() []model.LearningPath {
	return s.Repo.Snapshot().LearningPaths
}

func (s *CatalogService) GetLearningPath(id string) (*model.LearningPath, error) {
	path, ok := s.Repo.Snapshot().FindLearningPath(id)
	if !ok {
		return nil, util.ErrLearningPathNotFound
	}
	return path, nil
}

// Reload 供文件监视器调用
func (s *CatalogService) Reload() error {
	if err := s.Repo.Reload(); err != nil {
		monitoring.CatalogReloads.WithLabelValues("error").Inc()
		return err
	}
	monitoring.CatalogReloads.WithLabelValues("ok").Inc()
	return nil
}
