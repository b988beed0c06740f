package repository

import (
	"os"
	"path/filepath"
	"testing"

	"course_builder_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureFiles = map[string]string{
	"courses.json": `{"courses":[
		{"id":"course_1","title":"Go Basics","courseType":"general",
		 "structure":{"topics":[{"id":"t1","modules":[{"id":"m1","topicId":"t1","lessons":[{"id":"l1"},{"id":"l2"},{"id":"l3"}]}]}]}},
		{"id":"course_2","title":"Adaptive SQL","courseType":"personalized","structure":{"topics":[]}}
	]}`,
	"lessons.json": `{"lessons":[
		{"id":"l1","courseId":"course_1","type":"video","duration":"10m"},
		{"id":"l2","courseId":"course_1","type":"coding","duration":"20m"},
		{"id":"s1","courseId":"course_2","type":"interactive","duration":"5m"},
		{"id":"s2","courseId":"course_2","type":"video","duration":"5m"}
	]}`,
	"users.json":          `{"users":[{"id":"learner_001","name":"Ada","role":"learner"}]}`,
	"achievements.json":   `{"achievements":[{"id":"a1","earnedBy":"learner_001"},{"id":"a2","earnedBy":"default"},{"id":"a3","earnedBy":"learner_002"}]}`,
	"learning-paths.json": `{"learningPaths":[{"id":"path_1","title":"Backend","courseIds":["course_1"]}]}`,
	"user-progress.json": `{
		"learner_001":{"enrollments":[{"courseId":"course_1","enrolledAt":"2024-01-02T00:00:00Z"}],
		               "progress":[{"courseId":"course_1","progressPercentage":33,"completedLessonIds":["l1"]}]},
		"default":{"enrollments":[],"progress":[]}
	}`,
}

func writeFixtures(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestLoadSnapshot(t *testing.T) {
	snap, err := LoadSnapshot(writeFixtures(t, fixtureFiles))
	require.NoError(t, err)

	assert.Len(t, snap.Courses, 2)
	assert.Len(t, snap.Lessons, 4)
	assert.Len(t, snap.Users, 1)
	assert.Len(t, snap.LearningPaths, 1)

	c, ok := snap.FindCourse("course_2")
	require.True(t, ok)
	assert.Equal(t, model.CourseTypePersonalized, c.CourseType)

	_, ok = snap.FindCourse("missing")
	assert.False(t, ok)
}

func TestSnapshotLessonCount(t *testing.T) {
	snap, err := LoadSnapshot(writeFixtures(t, fixtureFiles))
	require.NoError(t, err)

	assert.Equal(t, 3, snap.LessonCount("course_1"), "structure wins over lessons.json")
	assert.Equal(t, 2, snap.LessonCount("course_2"), "falls back to lessons.json")
	assert.Equal(t, 0, snap.LessonCount("missing"))
	assert.Len(t, snap.LessonsForCourse("course_1"), 2)
	assert.NotNil(t, snap.LessonsForCourse("missing"))
}

func TestSnapshotCourseLessonIDs(t *testing.T) {
	snap, err := LoadSnapshot(writeFixtures(t, fixtureFiles))
	require.NoError(t, err)

	ids, ok := snap.CourseLessonIDs("course_1")
	require.True(t, ok)
	assert.Equal(t, []string{"l1", "l2", "l3"}, ids)

	ids, ok = snap.CourseLessonIDs("course_2")
	require.True(t, ok)
	assert.Equal(t, []string{"s1", "s2"}, ids)

	_, ok = snap.CourseLessonIDs("missing")
	assert.False(t, ok)
}

func TestSnapshotProgressSeedFallsBackToDefault(t *testing.T) {
	snap, err := LoadSnapshot(writeFixtures(t, fixtureFiles))
	require.NoError(t, err)

	seed := snap.ProgressSeed("learner_001")
	require.Len(t, seed.Progress, 1)
	assert.Equal(t, 33.0, seed.Progress[0].ProgressPercentage)

	assert.Empty(t, snap.ProgressSeed("someone_else").Enrollments)
}

func TestNewCatalogRepositoryMissingFilesServesEmptyCatalog(t *testing.T) {
	repo := NewCatalogRepository(t.TempDir())

	snap := repo.Snapshot()
	require.NotNil(t, snap)
	assert.Empty(t, snap.Courses)
	assert.NotNil(t, snap.Courses)
}

func TestReloadKeepsPreviousSnapshotOnError(t *testing.T) {
	dir := writeFixtures(t, fixtureFiles)
	repo := NewCatalogRepository(dir)
	require.Len(t, repo.Snapshot().Courses, 2)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "courses.json"), []byte(`{"courses":[`), 0o644))
	assert.Error(t, repo.Reload())
	assert.Len(t, repo.Snapshot().Courses, 2)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "courses.json"), []byte(`{"courses":[{"id":"only"}]}`), 0o644))
	require.NoError(t, repo.Reload())
	assert.Len(t, repo.Snapshot().Courses, 1)
}
