package service

import (
	"context"
	"course_builder_backend/internal/model"
	"course_builder_backend/internal/util"
	"course_builder_backend/pkg/monitoring"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// EnrollmentService 处理选课与课程反馈两个写接口
type EnrollmentService struct {
	Progress *ProgressService
	now      func() time.Time
}

func NewEnrollmentService(progressService *ProgressService) *EnrollmentService {
	return &EnrollmentService{Progress: progressService, now: time.Now}
}

type EnrollRequest struct {
	LearnerID string `json:"learnerId"`
}

type FeedbackRequest struct {
	LearnerID string `json:"learnerId"`
	Rating    int    `json:"rating"`
	Comments  string `json:"comments"`
}

// Enroll 不校验课程是否存在；同一学习者重复选课返回相同的 enrollmentId 和 enrolledAt。
// 个性化课程默认已选，只返回回执，不产生选课记录。
func (s *EnrollmentService) Enroll(ctx context.Context, courseID string, req EnrollRequest) (*model.EnrollmentReceipt, error) {
	learnerID := util.NormalizeID(req.LearnerID)
	if learnerID == "" {
		return nil, util.ErrLearnerIDRequired
	}

	receipt := &model.EnrollmentReceipt{
		EnrollmentID: enrollmentID(learnerID, courseID),
		CourseID:     courseID,
		LearnerID:    learnerID,
		Status:       model.EnrollmentStatusActive,
	}

	if c, ok := s.Progress.Catalog.Snapshot().FindCourse(courseID); ok && c.IsPersonalized() {
		monitoring.EnrollmentCounter.WithLabelValues("implicit").Inc()
		receipt.EnrolledAt = s.now().UTC()
		return receipt, nil
	}

	e, created := s.Progress.Enroll(ctx, learnerID, courseID)
	outcome := "existing"
	if created {
		outcome = "created"
	}
	monitoring.EnrollmentCounter.WithLabelValues(outcome).Inc()

	receipt.EnrolledAt = e.EnrolledAt.UTC()
	return receipt, nil
}

// ValidateFeedback learnerId 必填，rating 在 1-5 之间，comments 可为空
func ValidateFeedback(req FeedbackRequest) error {
	if util.NormalizeID(req.LearnerID) == "" {
		return util.ErrLearnerIDRequired
	}
	if req.Rating < model.MinRating || req.Rating > model.MaxRating {
		return util.ErrInvalidRating
	}
	return nil
}

// SubmitFeedback 只生成回执，不保存反馈内容
func (s *EnrollmentService) SubmitFeedback(courseID string, req FeedbackRequest) (*model.Feedback, error) {
	if err := ValidateFeedback(req); err != nil {
		return nil, err
	}

	monitoring.FeedbackCounter.WithLabelValues(strconv.Itoa(req.Rating)).Inc()

	return &model.Feedback{
		FeedbackID:  model.GenerateID("feedback"),
		LearnerID:   util.NormalizeID(req.LearnerID),
		CourseID:    courseID,
		Rating:      req.Rating,
		Comments:    req.Comments,
		SubmittedAt: s.now().UTC(),
		Status:      model.FeedbackStatusSubmitted,
	}, nil
}

var enrollmentNamespace = uuid.MustParse("6f1c1f0e-3f0a-4d7e-9a55-0c5b8f2d7a11")

func enrollmentID(learnerID, courseID string) string {
	return "enrollment_" + uuid.NewSHA1(enrollmentNamespace, []byte(learnerID+"/"+courseID)).String()
}
