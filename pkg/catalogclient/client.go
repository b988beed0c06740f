// Package catalogclient 是 Course Builder API 的 Go 客户端。
//
// Client 只负责请求和解码统一响应信封；Session 在本地维护学习者的
// progress.Store，写操作先在本地生效再同步到服务端。
package catalogclient

import (
	"context"
	"course_builder_backend/internal/model"
	"course_builder_backend/internal/progress"
	"course_builder_backend/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultTimeout = 30 * time.Second

// APIError 非 2xx 响应或 success=false 的响应
type APIError struct {
	Status  int
	Success bool
	Err     string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s: %s", e.Status, e.Err, e.Message)
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Err)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

type Client struct {
	BaseURL string
	http    *resty.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(DefaultTimeout).
			SetHeader("Accept", "application/json"),
	}
}

func (c *Client) do(ctx context.Context, method, path string, pathParams map[string]string, query map[string]string, body, out interface{}) error {
	req := c.http.R().SetContext(ctx)
	if pathParams != nil {
		req.SetPathParams(pathParams)
	}
	if query != nil {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		if resp.IsError() {
			return &APIError{Status: resp.StatusCode(), Err: http.StatusText(resp.StatusCode()), Message: resp.String()}
		}
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}

	if resp.IsError() || !env.Success {
		return &APIError{Status: resp.StatusCode(), Success: env.Success, Err: env.Error, Message: env.Message}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s %s data: %w", method, path, err)
	}
	return nil
}

func idParam(id string) map[string]string {
	return map[string]string{"id": id}
}

// ListCourses courseType 为空时返回全部课程
func (c *Client) ListCourses(ctx context.Context, courseType model.CourseType) ([]model.Course, error) {
	var query map[string]string
	if courseType != "" {
		query = map[string]string{"type": string(courseType)}
	}

	var courses []model.Course
	if err := c.do(ctx, http.MethodGet, "/api/courses", nil, query, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) GetCourse(ctx context.Context, courseID string) (*model.Course, error) {
	var course model.Course
	if err := c.do(ctx, http.MethodGet, "/api/courses/{id}", idParam(courseID), nil, nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) GetCourseLessons(ctx context.Context, courseID string) ([]model.Lesson, error) {
	var lessons []model.Lesson
	if err := c.do(ctx, http.MethodGet, "/api/courses/{id}/lessons", idParam(courseID), nil, nil, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (c *Client) Enroll(ctx context.Context, courseID, learnerID string) (*model.EnrollmentReceipt, error) {
	var receipt model.EnrollmentReceipt
	body := service.EnrollRequest{LearnerID: learnerID}
	if err := c.do(ctx, http.MethodPost, "/api/courses/{id}/enroll", idParam(courseID), nil, body, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (c *Client) SubmitFeedback(ctx context.Context, courseID string, req service.FeedbackRequest) (*model.Feedback, error) {
	var feedback model.Feedback
	if err := c.do(ctx, http.MethodPost, "/api/courses/{id}/feedback", idParam(courseID), nil, req, &feedback); err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (c *Client) GetAssessment(ctx context.Context, courseID string) (*service.StudentAssessment, error) {
	var assessment service.StudentAssessment
	if err := c.do(ctx, http.MethodGet, "/api/courses/{id}/assessment", idParam(courseID), nil, nil, &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (c *Client) SubmitAssessment(ctx context.Context, courseID string, req service.AssessmentSubmissionRequest) (*model.AssessmentResult, error) {
	var result model.AssessmentResult
	if err := c.do(ctx, http.MethodPost, "/api/courses/{id}/assessment", idParam(courseID), nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetProgress(ctx context.Context, learnerID string) (*progress.State, error) {
	var state progress.State
	if err := c.do(ctx, http.MethodGet, "/api/user/{id}/progress", idParam(learnerID), nil, nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *Client) UpdateProgress(ctx context.Context, learnerID string, req service.LessonProgressRequest) (*progress.Progress, error) {
	var p progress.Progress
	if err := c.do(ctx, http.MethodPut, "/api/user/{id}/progress", idParam(learnerID), nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) GetUserAchievements(ctx context.Context, learnerID string) ([]model.Achievement, error) {
	var achievements []model.Achievement
	if err := c.do(ctx, http.MethodGet, "/api/user/{id}/achievements", idParam(learnerID), nil, nil, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

func (c *Client) ListLearningPaths(ctx context.Context) ([]model.LearningPath, error) {
	var paths []model.LearningPath
	if err := c.do(ctx, http.MethodGet, "/api/learning-paths", nil, nil, nil, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}
