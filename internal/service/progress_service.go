package service

import (
	"context"
	"course_builder_backend/internal/progress"
	"course_builder_backend/internal/repository"
	"course_builder_backend/internal/util"
	"course_builder_backend/pkg/logger"
	"course_builder_backend/pkg/monitoring"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ProgressSink 进度快照的外部持久化。Load 在没有记录时返回 nil, nil。
type ProgressSink interface {
	Name() string
	Load(ctx context.Context, learnerID string) (*progress.State, error)
	Save(ctx context.Context, learnerID string, state progress.State) error
}

// learnerProgress saveMu 保证同一学习者的 State()+Save 按顺序执行，
// 后写入 Sink 的总是更新的快照
type learnerProgress struct {
	store  *progress.Store
	saveMu sync.Mutex
}

// ProgressService 为每个学习者维护一个 progress.Store。
// 写入先作用于内存，再尽力同步到 Sink；同步失败只记录日志，不回滚。
// 只读请求不会创建 Store。
type ProgressService struct {
	Catalog *repository.CatalogRepository
	Sink    ProgressSink

	mu       sync.RWMutex
	learners map[string]*learnerProgress
	loads    singleflight.Group
	now      func() time.Time
}

func NewProgressService(catalog *repository.CatalogRepository, sink ProgressSink) *ProgressService {
	return &ProgressService{
		Catalog:  catalog,
		Sink:     sink,
		learners: make(map[string]*learnerProgress),
		now:      time.Now,
	}
}

type LessonProgressRequest struct {
	CourseID  string `json:"courseId"`
	LessonID  string `json:"lessonId"`
	Completed bool   `json:"completed"`
}

func (s *ProgressService) GetProgress(ctx context.Context, learnerID string) progress.State {
	if lp, ok := s.lookup(learnerID); ok {
		return lp.store.State()
	}
	return s.load(ctx, learnerID)
}

// Enroll 幂等，created 表示本次调用是否新建了选课记录
func (s *ProgressService) Enroll(ctx context.Context, learnerID, courseID string) (progress.Enrollment, bool) {
	lp := s.learnerFor(ctx, learnerID)

	e, created := lp.store.EnrollIfAbsent(courseID)
	if created {
		s.persist(ctx, learnerID, lp)
	}
	return e, created
}

// UpdateLessonProgress completed=true 时标记课时完成并按课程课时总数重算；
// completed=false 不会撤销完成状态（进度单调），只刷新 lastAccessed。
// 已知课程只接受属于该课程的课时。
func (s *ProgressService) UpdateLessonProgress(ctx context.Context, learnerID string, req LessonProgressRequest) (progress.Progress, error) {
	courseID := util.NormalizeID(req.CourseID)
	lessonID := util.NormalizeID(req.LessonID)
	if courseID == "" {
		return progress.Progress{}, util.ErrCourseIDRequired
	}
	if lessonID == "" {
		return progress.Progress{}, util.ErrLessonIDRequired
	}

	lessonIDs, known := s.Catalog.Snapshot().CourseLessonIDs(courseID)
	if known && len(lessonIDs) > 0 && !containsID(lessonIDs, lessonID) {
		return progress.Progress{}, util.ErrLessonNotInCourse
	}

	lp := s.learnerFor(ctx, learnerID)

	var p progress.Progress
	if req.Completed {
		p = lp.store.MarkLessonComplete(courseID, lessonID, len(lessonIDs))
	} else {
		p = lp.store.UpdateProgress(courseID, 0, s.now())
	}

	s.persist(ctx, learnerID, lp)
	return p, nil
}

func (s *ProgressService) lookup(learnerID string) (*learnerProgress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lp, ok := s.learners[learnerID]
	return lp, ok
}

// learnerFor Sink 读取在全局锁之外进行，同一学习者的并发读取合并为一次
func (s *ProgressService) learnerFor(ctx context.Context, learnerID string) *learnerProgress {
	if lp, ok := s.lookup(learnerID); ok {
		return lp
	}

	seed := s.load(ctx, learnerID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if lp, ok := s.learners[learnerID]; ok {
		return lp
	}
	lp := &learnerProgress{
		store: progress.NewStore(progress.WithClock(s.now), progress.WithState(seed)),
	}
	s.learners[learnerID] = lp
	return lp
}

// load 优先读取 Sink，没有记录或读取失败时使用目录快照中的种子
func (s *ProgressService) load(ctx context.Context, learnerID string) progress.State {
	seed := s.Catalog.Snapshot().ProgressSeed(learnerID)
	if s.Sink == nil {
		return seed
	}

	v, err, _ := s.loads.Do(learnerID, func() (interface{}, error) {
		return s.Sink.Load(ctx, learnerID)
	})
	if err != nil {
		monitoring.ProgressSinkErrors.WithLabelValues(s.Sink.Name(), "load").Inc()
		logger.Log.Warn("Failed to load learner progress, using catalog seed",
			zap.String("sink", s.Sink.Name()),
			zap.String("learnerId", learnerID),
			zap.Error(err),
		)
		return seed
	}
	if state, _ := v.(*progress.State); state != nil {
		return *state
	}
	return seed
}

func (s *ProgressService) persist(ctx context.Context, learnerID string, lp *learnerProgress) {
	if s.Sink == nil {
		return
	}

	lp.saveMu.Lock()
	defer lp.saveMu.Unlock()

	if err := s.Sink.Save(ctx, learnerID, lp.store.State()); err != nil {
		monitoring.ProgressSinkErrors.WithLabelValues(s.Sink.Name(), "save").Inc()
		logger.Log.Error("Failed to persist learner progress",
			zap.String("sink", s.Sink.Name()),
			zap.String("learnerId", learnerID),
			zap.Error(err),
		)
	}
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
