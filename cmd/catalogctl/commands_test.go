package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"course_builder_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCoursesGetPrintsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/courses/course_001", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    model.Course{ID: "course_001", Title: "React Fundamentals"},
		})
	}))
	defer srv.Close()

	out, err := runCommand(t, "--server", srv.URL, "courses", "get", "course_001")
	require.NoError(t, err)

	var course model.Course
	require.NoError(t, json.Unmarshal([]byte(out), &course))
	assert.Equal(t, "React Fundamentals", course.Title)
}

func TestEnrollRequiresLearner(t *testing.T) {
	_, err := runCommand(t, "--server", "http://127.0.0.1:0", "enroll", "course_001")
	assert.EqualError(t, err, "--learner is required")
}

func TestFeedbackValidatesRatingBeforeRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := runCommand(t, "--server", srv.URL, "--learner", "learner_001", "feedback", "course_001", "--rating", "9")
	assert.Error(t, err)
	assert.False(t, called)
}
