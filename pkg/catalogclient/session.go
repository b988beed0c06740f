package catalogclient

import (
	"context"
	"course_builder_backend/internal/model"
	"course_builder_backend/internal/progress"
	"course_builder_backend/internal/service"
	"course_builder_backend/internal/util"
	"sync"
)

// Session 学习者侧的状态持有者。
// Enroll 和 CompleteLesson 先修改本地 Store 再调用服务端；
// 服务端失败时返回错误，但本地修改保留，不做回滚或对账。
type Session struct {
	Client    *Client
	LearnerID string
	Store     *progress.Store

	mu        sync.RWMutex
	courses   map[string]model.Course
	lessonIDs map[string][]string
}

func NewSession(client *Client, learnerID string, opts ...progress.Option) *Session {
	return &Session{
		Client:       client,
		LearnerID:    learnerID,
		Store:     progress.NewStore(opts...),
		courses:   make(map[string]model.Course),
		lessonIDs: make(map[string][]string),
	}
}

// LoadCourses 拉取课程目录填充本地缓存；失败时缓存保持原样
func (s *Session) LoadCourses(ctx context.Context) error {
	courses, err := s.Client.ListCourses(ctx, "")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = make(map[string]model.Course, len(courses))
	for _, c := range courses {
		s.courses[c.ID] = c
	}
	return nil
}

// LoadLessons 课程没有 structure 时，用课时列表作为课程的课时集合
func (s *Session) LoadLessons(ctx context.Context, courseID string) error {
	lessons, err := s.Client.GetCourseLessons(ctx, courseID)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(lessons))
	for _, l := range lessons {
		ids = append(ids, l.ID)
	}

	s.mu.Lock()
	s.lessonIDs[courseID] = ids
	s.mu.Unlock()
	return nil
}

// Loaded 目录缓存是否已经加载
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.courses) > 0
}

func (s *Session) Course(courseID string) (model.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.courses[courseID]
	return c, ok
}

// courseLessons 未知时返回 nil，MarkLessonComplete 会保持百分比不变
func (s *Session) courseLessons(courseID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.courses[courseID]; ok {
		if ids := c.LessonIDs(); len(ids) > 0 {
			return ids
		}
	}
	return s.lessonIDs[courseID]
}

func (s *Session) IsEnrolled(courseID string) bool {
	c, _ := s.Course(courseID)
	return s.Store.IsEnrolled(courseID, c.CourseType)
}

func (s *Session) Progress(courseID string) progress.Progress {
	return s.Store.GetProgress(courseID)
}

// Enroll 个性化课程默认已选，不写本地记录也不调用服务端
func (s *Session) Enroll(ctx context.Context, courseID string) (progress.Enrollment, error) {
	if c, ok := s.Course(courseID); ok && c.IsPersonalized() {
		return progress.Enrollment{CourseID: courseID}, nil
	}

	e := s.Store.Enroll(courseID)
	_, err := s.Client.Enroll(ctx, courseID, s.LearnerID)
	return e, err
}

// CompleteLesson 课时集合已知时，不属于该课程的课时直接返回 util.ErrLessonNotInCourse
func (s *Session) CompleteLesson(ctx context.Context, courseID, lessonID string) (progress.Progress, error) {
	lessons := s.courseLessons(courseID)
	if len(lessons) > 0 && !containsLesson(lessons, lessonID) {
		return s.Store.GetProgress(courseID), util.ErrLessonNotInCourse
	}

	p := s.Store.MarkLessonComplete(courseID, lessonID, len(lessons))
	_, err := s.Client.UpdateProgress(ctx, s.LearnerID, service.LessonProgressRequest{
		CourseID:  courseID,
		LessonID:  lessonID,
		Completed: true,
	})
	return p, err
}

func containsLesson(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
