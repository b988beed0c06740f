package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"course_builder_backend/internal/config"
	"course_builder_backend/internal/model"
	"course_builder_backend/internal/progress"
	"course_builder_backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func testConfig() *config.Config {
	return &config.Config{
		Server:     config.ServerConfig{Port: "3000", Mode: config.ModeRelease},
		Assessment: config.AssessmentConfig{PassingScore: 70},
		Progress:   config.ProgressConfig{Sink: config.SinkMemory},
		CORS:       config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		RateLimit:  config.RateLimitConfig{MaxRequests: 1000, WindowMinutes: 1},
	}
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()

	structure := model.CourseStructure{Topics: []model.Topic{{
		ID: "t1",
		Modules: []model.CourseModule{{
			ID:      "m1",
			TopicID: "t1",
			Lessons: []model.LessonStub{{ID: "l1"}, {ID: "l2"}},
		}},
	}}}

	catalog := repository.NewCatalogRepositoryFromSnapshot(&repository.Snapshot{
		Courses: []model.Course{
			{ID: "course_1", Title: "Go Basics", CourseType: model.CourseTypeGeneral, Structure: structure},
			{ID: "course_2", Title: "Adaptive SQL", CourseType: model.CourseTypePersonalized},
			{ID: "course_3", Title: "Web APIs", CourseType: model.CourseTypeGeneral},
		},
		Lessons: []model.Lesson{
			{ID: "l1", CourseID: "course_1"},
			{ID: "l2", CourseID: "course_1"},
		},
		Users:         []model.User{{ID: "learner_001", Name: "Ada"}},
		Achievements:  []model.Achievement{{ID: "a1", EarnedBy: "learner_001"}, {ID: "a2", EarnedBy: "default"}, {ID: "a3", EarnedBy: "other"}},
		LearningPaths: []model.LearningPath{{ID: "path_1", CourseIDs: []string{"course_1"}}},
		UserProgress: map[string]progress.State{
			"default": {
				Enrollments: []progress.Enrollment{{CourseID: "course_3", EnrolledAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}},
			},
		},
	})

	return newApp(testConfig(), catalog, nil).Router
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

func TestHealth(t *testing.T) {
	rec, _ := do(t, testRouter(t), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Course Builder API", body["service"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestCourseRoutes(t *testing.T) {
	r := testRouter(t)

	rec, env := do(t, r, http.MethodGet, "/api/courses", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	var courses []model.Course
	require.NoError(t, json.Unmarshal(env.Data, &courses))
	assert.Len(t, courses, 3)

	_, env = do(t, r, http.MethodGet, "/api/courses?type=personalized", nil)
	require.NoError(t, json.Unmarshal(env.Data, &courses))
	require.Len(t, courses, 1)
	assert.Equal(t, "course_2", courses[0].ID)

	rec, env = do(t, r, http.MethodGet, "/api/courses/course_1/lessons", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var lessons []model.Lesson
	require.NoError(t, json.Unmarshal(env.Data, &lessons))
	assert.Len(t, lessons, 2)
}

func TestUnknownCourseIs404(t *testing.T) {
	r := testRouter(t)

	for _, path := range []string{"/api/courses/nope", "/api/courses/nope/lessons", "/api/courses/nope/assessment"} {
		rec, env := do(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.False(t, env.Success)
		assert.Equal(t, "Course not found", env.Error)
		assert.Equal(t, "Course with ID nope does not exist", env.Message)
	}
}

func TestUnknownRouteIs404Envelope(t *testing.T) {
	rec, env := do(t, testRouter(t), http.MethodGet, "/api/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Not Found", env.Error)
	assert.Equal(t, "The requested resource was not found", env.Message)
}

func TestEnrollIsIdempotentOverHTTP(t *testing.T) {
	r := testRouter(t)
	body := map[string]string{"learnerId": "learner_001"}

	rec, first := do(t, r, http.MethodPost, "/api/courses/course_1/enroll", body)
	require.Equal(t, http.StatusOK, rec.Code)
	_, second := do(t, r, http.MethodPost, "/api/courses/course_1/enroll", body)

	var a, b model.EnrollmentReceipt
	require.NoError(t, json.Unmarshal(first.Data, &a))
	require.NoError(t, json.Unmarshal(second.Data, &b))
	assert.Equal(t, a.EnrollmentID, b.EnrollmentID)
	assert.True(t, a.EnrolledAt.Equal(b.EnrolledAt))
	assert.Equal(t, "active", a.Status)

	_, env := do(t, r, http.MethodGet, "/api/user/learner_001/progress", nil)
	var state progress.State
	require.NoError(t, json.Unmarshal(env.Data, &state))
	// default 种子中的 course_3 加上新选的 course_1
	assert.Len(t, state.Enrollments, 2)
}

func TestEnrollPersonalizedCourseKeepsProgressUnchanged(t *testing.T) {
	r := testRouter(t)

	rec, env := do(t, r, http.MethodPost, "/api/courses/course_2/enroll", map[string]string{"learnerId": "learner_001"})
	require.Equal(t, http.StatusOK, rec.Code)
	var receipt model.EnrollmentReceipt
	require.NoError(t, json.Unmarshal(env.Data, &receipt))
	assert.Equal(t, "active", receipt.Status)

	_, env = do(t, r, http.MethodGet, "/api/user/learner_001/progress", nil)
	var state progress.State
	require.NoError(t, json.Unmarshal(env.Data, &state))
	require.Len(t, state.Enrollments, 1)
	assert.Equal(t, "course_3", state.Enrollments[0].CourseID)
}

func TestEnrollRequiresLearnerID(t *testing.T) {
	r := testRouter(t)

	rec, env := do(t, r, http.MethodPost, "/api/courses/course_1/enroll", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "learnerId is required", env.Message)
}

func TestFeedbackValidation(t *testing.T) {
	r := testRouter(t)

	cases := []struct {
		body interface{}
		code int
	}{
		{map[string]interface{}{"learnerId": "learner_001", "rating": 0}, http.StatusBadRequest},
		{map[string]interface{}{"learnerId": "learner_001", "rating": 6}, http.StatusBadRequest},
		{map[string]interface{}{"learnerId": "learner_001", "rating": 4.5}, http.StatusBadRequest},
		{map[string]interface{}{"rating": 3}, http.StatusBadRequest},
		{map[string]interface{}{"learnerId": "learner_001", "rating": 3}, http.StatusOK},
	}

	for _, tc := range cases {
		rec, env := do(t, r, http.MethodPost, "/api/courses/course_1/feedback", tc.body)
		assert.Equal(t, tc.code, rec.Code, "%v", tc.body)
		assert.Equal(t, tc.code == http.StatusOK, env.Success)
	}
}

func TestProgressPutIsMonotonic(t *testing.T) {
	r := testRouter(t)
	path := "/api/user/learner_002/progress"

	rec, env := do(t, r, http.MethodPut, path, map[string]interface{}{"courseId": "course_1", "lessonId": "l1", "completed": true})
	require.Equal(t, http.StatusOK, rec.Code)
	var p progress.Progress
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, 50.0, p.ProgressPercentage)

	_, env = do(t, r, http.MethodPut, path, map[string]interface{}{"courseId": "course_1", "lessonId": "l1", "completed": false})
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, 50.0, p.ProgressPercentage)

	_, env = do(t, r, http.MethodPut, path, map[string]interface{}{"courseId": "course_1", "lessonId": "l2", "completed": true})
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, 100.0, p.ProgressPercentage)

	rec, _ = do(t, r, http.MethodPut, path, map[string]interface{}{"courseId": "course_1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProgressPutRejectsLessonOutsideCourse(t *testing.T) {
	r := testRouter(t)
	path := "/api/user/learner_002/progress"

	for _, id := range []string{"bogus_a", "bogus_b"} {
		rec, env := do(t, r, http.MethodPut, path, map[string]interface{}{"courseId": "course_1", "lessonId": id, "completed": true})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "lesson does not belong to course", env.Message)
	}

	_, env := do(t, r, http.MethodGet, path, nil)
	var state progress.State
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Empty(t, state.Progress)
}

func TestAssessmentRoundTrip(t *testing.T) {
	r := testRouter(t)

	rec, env := do(t, r, http.MethodGet, "/api/courses/course_1/assessment", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, string(env.Data), "correctAnswer")

	answers := map[string]int{"q1": 0, "q2": 0, "q3": 0, "q4": 0, "q5": 1}
	rec, env = do(t, r, http.MethodPost, "/api/courses/course_1/assessment", map[string]interface{}{"learnerId": "learner_001", "answers": answers})
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.AssessmentResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 4, result.Correct)
	assert.Equal(t, 80, result.Percentage)
	assert.True(t, result.Passed)
}

func TestUserAndPathRoutes(t *testing.T) {
	r := testRouter(t)

	_, env := do(t, r, http.MethodGet, "/api/user/learner_001/achievements", nil)
	var achievements []model.Achievement
	require.NoError(t, json.Unmarshal(env.Data, &achievements))
	assert.Len(t, achievements, 2)

	rec, _ := do(t, r, http.MethodGet, "/api/users/learner_001", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, env = do(t, r, http.MethodGet, "/api/users/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", env.Error)

	rec, _ = do(t, r, http.MethodGet, "/api/learning-paths/path_1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, r, http.MethodGet, "/api/learning-paths/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/courses", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
