package controller

import (
	"course_builder_backend/internal/service"
	"course_builder_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningPathController struct {
	Service *service.CatalogService
}

func NewLearningPathController(svc *service.CatalogService) *LearningPathController {
	return &LearningPathController{Service: svc}
}

// @Summary 获取学习路径列表
// @Tags 学习路径
// @Produce json
// @Success 200 {object} util.Response{data=[]model.LearningPath}
// @Router /api/learning-paths [get]
func (c *LearningPathController) ListLearningPaths(ctx *gin.Context) {
	util.Success(ctx, c.Service.ListLearningPaths())
}

// @Summary 获取学习路径详情
// @Tags 学习路径
// @Produce json
// @Param id path string true "学习路径ID"
// @Success 200 {object} util.Response{data=model.LearningPath}
// @Failure 404 {object} util.Response
// @Router /api/learning-paths/{id} [get]
func (c *LearningPathController) GetLearningPath(ctx *gin.Context) {
	id := ctx.Param("id")

	path, err := c.Service.GetLearningPath(id)
	if err != nil {
		respondError(ctx, err, id)
		return
	}

	util.Success(ctx, path)
}
