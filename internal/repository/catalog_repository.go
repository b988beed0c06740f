package repository

import (
	"course_builder_backend/internal/model"
	"course_builder_backend/internal/progress"
	"course_builder_backend/internal/util"
	"course_builder_backend/pkg/logger"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Snapshot 启动时从 JSON 文件加载的只读目录数据，加载后不再修改
type Snapshot struct {
	Courses       []model.Course
	Lessons       []model.Lesson
	Users         []model.User
	Achievements  []model.Achievement
	UserProgress  map[string]progress.State
	LearningPaths []model.LearningPath
	LoadedAt      time.Time

	courseIndex map[string]int
}

func newSnapshot() *Snapshot {
	return &Snapshot{
		Courses:       []model.Course{},
		Lessons:       []model.Lesson{},
		Users:         []model.User{},
		Achievements:  []model.Achievement{},
		UserProgress:  map[string]progress.State{},
		LearningPaths: []model.LearningPath{},
		courseIndex:   map[string]int{},
	}
}

func (s *Snapshot) index() {
	s.courseIndex = make(map[string]int, len(s.Courses))
	for i, c := range s.Courses {
		if _, dup := s.courseIndex[c.ID]; !dup {
			s.courseIndex[c.ID] = i
		}
	}
}

func (s *Snapshot) FindCourse(id string) (*model.Course, bool) {
	i, ok := s.courseIndex[id]
	if !ok {
		return nil, false
	}
	c := s.Courses[i]
	return &c, true
}

func (s *Snapshot) LessonsForCourse(courseID string) []model.Lesson {
	lessons := make([]model.Lesson, 0)
	for _, l := range s.Lessons {
		if l.CourseID == courseID {
			lessons = append(lessons, l)
		}
	}
	return lessons
}

// CourseLessonIDs 优先使用课程结构中的课时，结构为空时回退到 lessons.json；未知课程返回 false
func (s *Snapshot) CourseLessonIDs(courseID string) ([]string, bool) {
	c, ok := s.FindCourse(courseID)
	if !ok {
		return nil, false
	}
	if ids := c.LessonIDs(); len(ids) > 0 {
		return ids, true
	}
	lessons := s.LessonsForCourse(courseID)
	ids := make([]string, 0, len(lessons))
	for _, l := range lessons {
		ids = append(ids, l.ID)
	}
	return ids, true
}

// LessonCount 未知课程返回 0
func (s *Snapshot) LessonCount(courseID string) int {
	ids, _ := s.CourseLessonIDs(courseID)
	return len(ids)
}

func (s *Snapshot) FindUser(id string) (*model.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			u := u
			return &u, true
		}
	}
	return nil, false
}

func (s *Snapshot) FindLearningPath(id string) (*model.LearningPath, bool) {
	for _, p := range s.LearningPaths {
		if p.ID == id {
			p := p
			return &p, true
		}
	}
	return nil, false
}

// ProgressSeed 返回学习者的初始进度，没有单独记录时使用 default 条目
func (s *Snapshot) ProgressSeed(learnerID string) progress.State {
	if st, ok := s.UserProgress[learnerID]; ok {
		return st
	}
	return s.UserProgress[model.DefaultLearnerID]
}

type CatalogRepository struct {
	Dir      string
	snapshot atomic.Pointer[Snapshot]
}

// NewCatalogRepository 加载数据目录。任何文件读取或解析失败时记录错误并使用空快照。
func NewCatalogRepository(dir string) *CatalogRepository {
	r := &CatalogRepository{Dir: dir}

	snap, err := LoadSnapshot(dir)
	if err != nil {
		logger.Log.Error("Error loading catalog data, serving empty catalog", zap.String("dir", dir), zap.Error(err))
		snap = newSnapshot()
		snap.LoadedAt = time.Now()
	}
	r.snapshot.Store(snap)
	return r
}

// NewCatalogRepositoryFromSnapshot 用于测试和工具命令
func NewCatalogRepositoryFromSnapshot(snap *Snapshot) *CatalogRepository {
	if snap.courseIndex == nil {
		snap.index()
	}
	r := &CatalogRepository{}
	r.snapshot.Store(snap)
	return r
}

func (r *CatalogRepository) Snapshot() *Snapshot {
	return r.snapshot.Load()
}

// Reload 重新加载数据目录，失败时保留旧快照
func (r *CatalogRepository) Reload() error {
	snap, err := LoadSnapshot(r.Dir)
	if err != nil {
		return err
	}
	r.snapshot.Store(snap)
	logger.Log.Info("Catalog snapshot reloaded",
		zap.Int("courses", len(snap.Courses)),
		zap.Int("lessons", len(snap.Lessons)),
	)
	return nil
}

func LoadSnapshot(dir string) (*Snapshot, error) {
	snap := newSnapshot()

	var courses struct {
		Courses []model.Course `json:"courses"`
	}
	var lessons struct {
		Lessons []model.Lesson `json:"lessons"`
	}
	var users struct {
		Users []model.User `json:"users"`
	}
	var achievements struct {
		Achievements []model.Achievement `json:"achievements"`
	}
	var paths struct {
		LearningPaths []model.LearningPath `json:"learningPaths"`
	}
	userProgress := map[string]progress.State{}

	files := []struct {
		name string
		dst  interface{}
	}{
		{util.CoursesFile, &courses},
		{util.LessonsFile, &lessons},
		{util.UsersFile, &users},
		{util.AchievementsFile, &achievements},
		{util.UserProgressFile, &userProgress},
		{util.LearningPathsFile, &paths},
	}

	for _, f := range files {
		if err := readJSON(filepath.Join(dir, f.name), f.dst); err != nil {
			return nil, err
		}
	}

	if courses.Courses != nil {
		snap.Courses = courses.Courses
	}
	if lessons.Lessons != nil {
		snap.Lessons = lessons.Lessons
	}
	if users.Users != nil {
		snap.Users = users.Users
	}
	if achievements.Achievements != nil {
		snap.Achievements = achievements.Achievements
	}
	if paths.LearningPaths != nil {
		snap.LearningPaths = paths.LearningPaths
	}
	snap.UserProgress = userProgress
	snap.LoadedAt = time.Now()
	snap.index()

	return snap, nil
}

func readJSON(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
