package service

import (
	"course_builder_backend/internal/model"
	"course_builder_backend/internal/repository"
	"course_builder_backend/internal/util"
	"course_builder_backend/pkg/monitoring"
	"fmt"
	"math"
	"strconv"
	"time"
)

const assessmentTimeLimitMinutes = 60

// ScoreAssessment 纯函数评分：未作答视为错误，百分比四舍五入，及格线含边界。
// passingScore <= 0 时使用默认值 70。
func ScoreAssessment(questions []model.AssessmentQuestion, answers map[string]int, passingScore int) model.AssessmentScore {
	if passingScore <= 0 {
		passingScore = model.DefaultPassingScore
	}

	correct := 0
	for _, q := range questions {
		if selected, ok := answers[q.ID]; ok && selected == q.CorrectAnswer {
			correct++
		}
	}

	total := len(questions)
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(correct) / float64(total) * 100))
	}

	return model.AssessmentScore{
		Correct:    correct,
		Total:      total,
		Percentage: percentage,
		Passed:     total > 0 && percentage >= passingScore,
	}
}

type AssessmentService struct {
	Catalog      *repository.CatalogRepository
	PassingScore int
	now          func() time.Time
}

func NewAssessmentService(catalog *repository.CatalogRepository, passingScore int) *AssessmentService {
	if passingScore <= 0 {
		passingScore = model.DefaultPassingScore
	}
	return &AssessmentService{
		Catalog:      catalog,
		PassingScore: passingScore,
		now:          time.Now,
	}
}

// StudentAssessmentQuestion 学生视图，不包含正确答案
type StudentAssessmentQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type StudentAssessment struct {
	ID           string                      `json:"id"`
	CourseID     string                      `json:"courseId"`
	Title        string                      `json:"title"`
	TimeLimit    int                         `json:"timeLimit"`
	PassingScore int                         `json:"passingScore"`
	Questions    []StudentAssessmentQuestion `json:"questions"`
}

type AssessmentSubmissionRequest struct {
	LearnerID string         `json:"learnerId"`
	Answers   map[string]int `json:"answers"`
}

type questionTemplate struct {
	prompt      string
	fallback    string
	options     []string
	explanation string
}

// 固定模板题库，正确选项总在第一个
var questionTemplates = []questionTemplate{
	{
		prompt:      "What is the main purpose of %s?",
		fallback:    "this technology",
		options:     []string{"To simplify development", "To increase complexity", "To reduce performance", "To limit functionality"},
		explanation: "It exists to make development simpler.",
	},
	{
		prompt:      "Which of the following is a key feature of %s?",
		fallback:    "this framework",
		options:     []string{"Component-based architecture", "Server-side rendering only", "No state management", "Limited scalability"},
		explanation: "Component-based architecture is the fundamental feature.",
	},
	{
		prompt:      "What is the recommended approach for %s?",
		fallback:    "state management",
		options:     []string{"Use the built-in mechanisms", "Avoid it entirely", "Use external libraries only", "Manual DOM manipulation"},
		explanation: "Built-in mechanisms are the recommended approach.",
	},
	{
		prompt:      "How should you handle %s?",
		fallback:    "asynchronous operations",
		options:     []string{"Use async/await or promises", "Use only callbacks", "Avoid async operations", "Use synchronous methods only"},
		explanation: "Async/await and promises are the modern approaches.",
	},
	{
		prompt:      "What is the best practice for %s?",
		fallback:    "component design",
		options:     []string{"Keep units small and focused", "Make units as large as possible", "Avoid composition", "Use only class components"},
		explanation: "Small, focused units are easier to maintain and test.",
	},
}

// BuildAssessment 根据课程技能标签生成模板测验
func (s *AssessmentService) BuildAssessment(courseID string) (*model.Assessment, error) {
	course, ok := s.Catalog.Snapshot().FindCourse(courseID)
	if !ok {
		return nil, util.ErrCourseNotFound
	}

	questions := make([]model.AssessmentQuestion, len(questionTemplates))
	for i, tpl := range questionTemplates {
		topic := tpl.fallback
		if i < len(course.Skills) && course.Skills[i] != "" {
			topic = course.Skills[i]
		}
		options := make([]string, len(tpl.options))
		copy(options, tpl.options)

		questions[i] = model.AssessmentQuestion{
			ID:            "q" + strconv.Itoa(i+1),
			Question:      fmt.Sprintf(tpl.prompt, topic),
			Options:       options,
			CorrectAnswer: 0,
			Explanation:   tpl.explanation,
		}
	}

	return &model.Assessment{
		ID:           "assessment_" + course.ID,
		CourseID:     course.ID,
		Title:        course.Title + " Assessment",
		Description:  "Check your understanding of " + course.Title,
		TimeLimit:    assessmentTimeLimitMinutes,
		PassingScore: s.PassingScore,
		Questions:    questions,
	}, nil
}

func (s *AssessmentService) StudentView(courseID string) (*StudentAssessment, error) {
	a, err := s.BuildAssessment(courseID)
	if err != nil {
		return nil, err
	}

	qs := make([]StudentAssessmentQuestion, len(a.Questions))
	for i, q := range a.Questions {
		qs[i] = StudentAssessmentQuestion{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
		}
	}

	return &StudentAssessment{
		ID:           a.ID,
		CourseID:     a.CourseID,
		Title:        a.Title,
		TimeLimit:    a.TimeLimit,
		PassingScore: a.PassingScore,
		Questions:    qs,
	}, nil
}

func (s *AssessmentService) Submit(courseID string, req AssessmentSubmissionRequest) (*model.AssessmentResult, error) {
	learnerID := util.NormalizeID(req.LearnerID)
	if learnerID == "" {
		return nil, util.ErrLearnerIDRequired
	}
	if len(req.Answers) == 0 {
		return nil, util.ErrNoAnswers
	}

	a, err := s.BuildAssessment(courseID)
	if err != nil {
		return nil, err
	}

	score := ScoreAssessment(a.Questions, req.Answers, a.PassingScore)
	monitoring.AssessmentCounter.WithLabelValues(strconv.FormatBool(score.Passed)).Inc()

	return &model.AssessmentResult{
		AssessmentScore: score,
		SubmissionID:    model.GenerateID("submission"),
		CourseID:        a.CourseID,
		LearnerID:       learnerID,
		PassingScore:    a.PassingScore,
		SubmittedAt:     s.now().UTC(),
	}, nil
}
