// Package progress 维护单个学习者的选课记录与学习进度。
//
// Store 只保存内存状态，不访问课程目录也不做任何 I/O；
// 课程类型、课时总数等上下文由调用方传入。
package progress

import (
	"math"
	"sort"
	"sync"
	"time"

	"course_builder_backend/internal/model"
)

// Enrollment 学习者对某门课程的选课记录
type Enrollment struct {
	CourseID   string    `json:"courseId"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

// Progress 学习者在某门课程上的完成情况
type Progress struct {
	CourseID           string     `json:"courseId"`
	ProgressPercentage float64    `json:"progressPercentage"`
	CompletedLessonIDs []string   `json:"completedLessonIds"`
	LastAccessed       *time.Time `json:"lastAccessed"`
}

// State 可序列化的完整快照，用于初始化、持久化和接口返回
type State struct {
	Enrollments []Enrollment `json:"enrollments"`
	Progress    []Progress   `json:"progress"`
}

type record struct {
	percentage   float64
	completed    map[string]struct{}
	lastAccessed *time.Time
}

type Store struct {
	mu          sync.Mutex
	now         func() time.Time
	enrollments map[string]Enrollment
	progress    map[string]*record
}

type Option func(*Store)

// WithClock 替换时间来源，测试中使用固定时钟
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithState 使用已有快照作为初始状态
func WithState(state State) Option {
	return func(s *Store) {
		s.restore(state)
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		now:         time.Now,
		enrollments: make(map[string]Enrollment),
		progress:    make(map[string]*record),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enroll 幂等选课。首次调用记录当前时间并创建空进度，重复调用返回原记录。
// 不校验课程是否存在于目录中。
func (s *Store) Enroll(courseID string) Enrollment {
	e, _ := s.EnrollIfAbsent(courseID)
	return e
}

// EnrollIfAbsent 与 Enroll 相同，额外返回本次是否新建了记录
func (s *Store) EnrollIfAbsent(courseID string) (Enrollment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.enrollments[courseID]; ok {
		return e, false
	}

	e := Enrollment{CourseID: courseID, EnrolledAt: s.now()}
	s.enrollments[courseID] = e
	s.recordFor(courseID)
	return e, true
}

// IsEnrolled 显式选课或个性化课程都视为已选
func (s *Store) IsEnrolled(courseID string, courseType model.CourseType) bool {
	if courseType == model.CourseTypePersonalized {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.enrollments[courseID]
	return ok
}

// Enrollment 返回显式选课记录
func (s *Store) Enrollment(courseID string) (Enrollment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.enrollments[courseID]
	return e, ok
}

// GetProgress 只读查询，未访问过的课程返回零值且不会创建记录
func (s *Store) GetProgress(courseID string) Progress {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.progress[courseID]
	if !ok {
		return Progress{CourseID: courseID, CompletedLessonIDs: []string{}}
	}
	return rec.snapshot(courseID)
}

// UpdateProgress 单调更新进度百分比：取当前值与新值的较大者并限制在 [0,100]。
// 试图回退的值被静默忽略，但 lastAccessed 总会更新。
func (s *Store) UpdateProgress(courseID string, percentage float64, ts time.Time) Progress {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ts.IsZero() {
		ts = s.now()
	}

	rec := s.recordFor(courseID)
	rec.raise(percentage)
	rec.touch(ts)
	return rec.snapshot(courseID)
}

// MarkLessonComplete 将课时加入已完成集合。
// totalLessons > 0 时按 completed/total*100 重新计算并经单调规则写入；
// 否则只扩充集合，不改变百分比。
func (s *Store) MarkLessonComplete(courseID, lessonID string, totalLessons int) Progress {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.recordFor(courseID)
	rec.completed[lessonID] = struct{}{}
	if totalLessons > 0 {
		done := len(rec.completed)
		if done > totalLessons {
			done = totalLessons
		}
		rec.raise(float64(done) / float64(totalLessons) * 100)
	}
	rec.touch(s.now())
	return rec.snapshot(courseID)
}

// Enrollments 按选课时间排序返回全部选课记录
func (s *Store) Enrollments() []Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedEnrollments()
}

// Len 返回选课记录数量
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.enrollments)
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	courseIDs := make([]string, 0, len(s.progress))
	for id := range s.progress {
		courseIDs = append(courseIDs, id)
	}
	sort.Strings(courseIDs)

	progress := make([]Progress, 0, len(courseIDs))
	for _, id := range courseIDs {
		progress = append(progress, s.progress[id].snapshot(id))
	}

	return State{
		Enrollments: s.sortedEnrollments(),
		Progress:    progress,
	}
}

// Restore 用快照整体替换当前状态
func (s *Store) Restore(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restore(state)
}

// Reset 清空全部状态
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enrollments = make(map[string]Enrollment)
	s.progress = make(map[string]*record)
}

func (s *Store) restore(state State) {
	s.enrollments = make(map[string]Enrollment, len(state.Enrollments))
	s.progress = make(map[string]*record, len(state.Progress))

	for _, e := range state.Enrollments {
		existing, ok := s.enrollments[e.CourseID]
		if ok && !e.EnrolledAt.Before(existing.EnrolledAt) {
			continue
		}
		s.enrollments[e.CourseID] = e
	}

	for _, p := range state.Progress {
		rec := s.recordFor(p.CourseID)
		for _, id := range p.CompletedLessonIDs {
			rec.completed[id] = struct{}{}
		}
		rec.raise(p.ProgressPercentage)
		if p.LastAccessed != nil {
			rec.touch(*p.LastAccessed)
		}
	}

	for courseID := range s.enrollments {
		s.recordFor(courseID)
	}
}

func (s *Store) recordFor(courseID string) *record {
	rec, ok := s.progress[courseID]
	if !ok {
		rec = &record{completed: make(map[string]struct{})}
		s.progress[courseID] = rec
	}
	return rec
}

func (s *Store) sortedEnrollments() []Enrollment {
	out := make([]Enrollment, 0, len(s.enrollments))
	for _, e := range s.enrollments {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EnrolledAt.Equal(out[j].EnrolledAt) {
			return out[i].CourseID < out[j].CourseID
		}
		return out[i].EnrolledAt.Before(out[j].EnrolledAt)
	})
	return out
}

func (r *record) raise(percentage float64) {
	if p := ClampPercentage(percentage); p > r.percentage {
		r.percentage = p
	}
}

func (r *record) touch(ts time.Time) {
	t := ts
	r.lastAccessed = &t
}

func (r *record) snapshot(courseID string) Progress {
	ids := make([]string, 0, len(r.completed))
	for id := range r.completed {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var last *time.Time
	if r.lastAccessed != nil {
		t := *r.lastAccessed
		last = &t
	}

	return Progress{
		CourseID:           courseID,
		ProgressPercentage: r.percentage,
		CompletedLessonIDs: ids,
		LastAccessed:       last,
	}
}

// ClampPercentage 将任意数值限制在 [0,100]，NaN 视为 0
func ClampPercentage(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
