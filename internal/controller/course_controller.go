package controller

import (
	"course_builder_backend/internal/model"
	"course_builder_backend/internal/service"
	"course_builder_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CatalogService    *service.CatalogService
	EnrollmentService *service.EnrollmentService
}

func NewCourseController(catalogService *service.CatalogService, enrollmentService *service.EnrollmentService) *CourseController {
	return &CourseController{
		CatalogService:    catalogService,
		EnrollmentService: enrollmentService,
	}
}

// @Summary 获取课程列表
// @Description 返回目录中的全部课程，可按课程类型过滤
// @Tags 课程
// @Produce json
// @Param type query string false "课程类型 (general, personalized)"
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courseType := model.CourseType(strings.TrimSpace(ctx.Query(util.QueryCourseType)))
	util.Success(ctx, c.CatalogService.ListCourses(courseType))
}

// @Summary 获取课程详情
// @Tags 课程
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id := ctx.Param("id")

	course, err := c.CatalogService.GetCourse(id)
	if err != nil {
		respondError(ctx, err, id)
		return
	}

	util.Success(ctx, course)
}

// @Summary 获取课程课时
// @Tags 课程
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response{data=[]model.Lesson}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/lessons [get]
func (c *CourseController) GetCourseLessons(ctx *gin.Context) {
	id := ctx.Param("id")

	lessons, err := c.CatalogService.GetCourseLessons(id)
	if err != nil {
		respondError(ctx, err, id)
		return
	}

	util.Success(ctx, lessons)
}

// @Summary 选课
// @Description 同一学习者重复选课返回相同的选课记录
// @Tags 课程
// @Accept json
// @Produce json
// @Param id path string true "课程ID"
// @Param body body service.EnrollRequest true "学习者"
// @Success 200 {object} util.Response{data=model.EnrollmentReceipt}
// @Failure 400 {object} util.Response
// @Router /api/courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	var req service.EnrollRequest
	if err := bindJSON(ctx, &req); err != nil {
		util.BadRequest(ctx, invalidBody)
		return
	}

	id := ctx.Param("id")
	receipt, err := c.EnrollmentService.Enroll(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err, id)
		return
	}

	util.Success(ctx, receipt)
}

// @Summary 提交课程反馈
// @Description rating 为 1-5 的整数，反馈不会被保存
// @Tags 课程
// @Accept json
// @Produce json
// @Param id path string true "课程ID"
// @Param body body service.FeedbackRequest true "反馈内容"
// @Success 200 {object} util.Response{data=model.Feedback}
// @Failure 400 {object} util.Response
// @Router /api/courses/{id}/feedback [post]
func (c *CourseController) SubmitFeedback(ctx *gin.Context) {
	var req service.FeedbackRequest
	if err := bindJSON(ctx, &req); err != nil {
		// 非整数评分在解码阶段就会失败
		util.BadRequest(ctx, util.ErrInvalidRating.Error())
		return
	}

	id := ctx.Param("id")
	feedback, err := c.EnrollmentService.SubmitFeedback(id, req)
	if err != nil {
		respondError(ctx, err, id)
		return
	}

	util.Success(ctx, feedback)
}
