package controller

import (
	"course_builder_backend/internal/service"
	"course_builder_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// @Summary 获取课程测验
// @Description 返回题目与选项，不包含正确答案
// @Tags 测验
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response{data=service.StudentAssessment}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/assessment [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	id := ctx.Param("id")

	assessment, err := c.Service.StudentView(id)
	if err != nil {
		respondError(ctx, err, id)
		return
	}

	util.Success(ctx, assessment)
}

// @Summary 提交课程测验
// @Tags 测验
// @Accept json
// @Produce json
// @Param id path string true "课程ID"
// @Param body body service.AssessmentSubmissionRequest true "答案，题目ID到选项下标"
// @Success 200 {object} util.Response{data=model.AssessmentResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/assessment [post]
func (c *AssessmentController) SubmitAssessment(ctx *gin.Context) {
	var req service.AssessmentSubmissionRequest
	if err := bindJSON(ctx, &req); err != nil {
		util.BadRequest(ctx, invalidBody)
		return
	}

	id := ctx.Param("id")
	result, err := c.Service.Submit(id, req)
	if err != nil {
		respondError(ctx, err, id)
		return
	}

	util.Success(ctx, result)
}
