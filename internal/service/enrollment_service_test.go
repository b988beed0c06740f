package service

import (
	"context"
	"testing"

	"course_builder_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFeedback(t *testing.T) {
	cases := []struct {
		name string
		req  FeedbackRequest
		want error
	}{
		{"rating zero", FeedbackRequest{LearnerID: "learner_001", Rating: 0}, util.ErrInvalidRating},
		{"rating six", FeedbackRequest{LearnerID: "learner_001", Rating: 6}, util.ErrInvalidRating},
		{"negative rating", FeedbackRequest{LearnerID: "learner_001", Rating: -1}, util.ErrInvalidRating},
		{"missing learner", FeedbackRequest{Rating: 3}, util.ErrLearnerIDRequired},
		{"blank learner", FeedbackRequest{LearnerID: "  ", Rating: 3}, util.ErrLearnerIDRequired},
		{"rating three without comments", FeedbackRequest{LearnerID: "learner_001", Rating: 3}, nil},
		{"bounds", FeedbackRequest{LearnerID: "learner_001", Rating: 5, Comments: "great"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateFeedback(tc.req)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSubmitFeedback(t *testing.T) {
	svc := NewEnrollmentService(NewProgressService(newTestCatalog(), nil))

	fb, err := svc.SubmitFeedback("course_1", FeedbackRequest{LearnerID: "learner_001", Rating: 4, Comments: "clear"})
	require.NoError(t, err)

	assert.Equal(t, "course_1", fb.CourseID)
	assert.Equal(t, 4, fb.Rating)
	assert.Equal(t, "submitted", fb.Status)
	assert.Contains(t, fb.FeedbackID, "feedback_")
}

func TestEnrollIsIdempotentPerLearner(t *testing.T) {
	progressSvc := NewProgressService(newTestCatalog(), nil)
	svc := NewEnrollmentService(progressSvc)
	ctx := context.Background()

	first, err := svc.Enroll(ctx, "course_1", EnrollRequest{LearnerID: "learner_009"})
	require.NoError(t, err)
	second, err := svc.Enroll(ctx, "course_1", EnrollRequest{LearnerID: "learner_009"})
	require.NoError(t, err)

	assert.Equal(t, first.EnrollmentID, second.EnrollmentID)
	assert.True(t, first.EnrolledAt.Equal(second.EnrolledAt))
	assert.Equal(t, "active", first.Status)
	assert.Len(t, progressSvc.GetProgress(ctx, "learner_009").Enrollments, 1)

	other, err := svc.Enroll(ctx, "course_1", EnrollRequest{LearnerID: "learner_010"})
	require.NoError(t, err)
	assert.NotEqual(t, first.EnrollmentID, other.EnrollmentID)
}

func TestEnrollPersonalizedCourseCreatesNoRecord(t *testing.T) {
	sink := newFakeSink()
	progressSvc := NewProgressService(newTestCatalog(), sink)
	svc := NewEnrollmentService(progressSvc)
	ctx := context.Background()

	receipt, err := svc.Enroll(ctx, "course_2", EnrollRequest{LearnerID: "learner_011"})
	require.NoError(t, err)
	assert.Equal(t, "course_2", receipt.CourseID)
	assert.Equal(t, "active", receipt.Status)
	assert.False(t, receipt.EnrolledAt.IsZero())

	again, err := svc.Enroll(ctx, "course_2", EnrollRequest{LearnerID: "learner_011"})
	require.NoError(t, err)
	assert.Equal(t, receipt.EnrollmentID, again.EnrollmentID)

	assert.Empty(t, progressSvc.GetProgress(ctx, "learner_011").Enrollments)
	assert.Equal(t, 0, sink.saves)
}

func TestEnrollAcceptsUnknownCourse(t *testing.T) {
	svc := NewEnrollmentService(NewProgressService(newTestCatalog(), nil))

	receipt, err := svc.Enroll(context.Background(), "not_in_catalog", EnrollRequest{LearnerID: "learner_001"})
	require.NoError(t, err)
	assert.Equal(t, "not_in_catalog", receipt.CourseID)
}

func TestEnrollRequiresLearner(t *testing.T) {
	svc := NewEnrollmentService(NewProgressService(newTestCatalog(), nil))

	_, err := svc.Enroll(context.Background(), "course_1", EnrollRequest{})
	assert.ErrorIs(t, err, util.ErrLearnerIDRequired)
}
