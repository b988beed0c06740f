package controller

import (
	"course_builder_backend/internal/service"
	"course_builder_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	CatalogService  *service.CatalogService
	ProgressService *service.ProgressService
}

func NewUserController(catalogService *service.CatalogService, progressService *service.ProgressService) *UserController {
	return &UserController{
		CatalogService:  catalogService,
		ProgressService: progressService,
	}
}

// @Summary 获取用户列表
// @Tags 用户
// @Produce json
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	util.Success(ctx, c.CatalogService.ListUsers())
}

// @Summary 获取用户详情
// @Tags 用户
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id := ctx.Param("id")

	user, err := c.CatalogService.GetUser(id)
	if err != nil {
		respondError(ctx, err, id)
		return
	}

	util.Success(ctx, user)
}

// @Summary 获取学习进度
// @Description 未知学习者返回 default 种子进度
// @Tags 学习进度
// @Produce json
// @Param id path string true "学习者ID"
// @Success 200 {object} util.Response{data=progress.State}
// @Router /api/user/{id}/progress [get]
func (c *UserController) GetProgress(ctx *gin.Context) {
	id := util.NormalizeID(ctx.Param("id"))
	util.Success(ctx, c.ProgressService.GetProgress(ctx.Request.Context(), id))
}

// @Summary 更新课时进度
// @Description completed=true 标记课时完成并重算百分比；进度只增不减
// @Tags 学习进度
// @Accept json
// @Produce json
// @Param id path string true "学习者ID"
// @Param body body service.LessonProgressRequest true "课时进度"
// @Success 200 {object} util.Response{data=progress.Progress}
// @Failure 400 {object} util.Response
// @Router /api/user/{id}/progress [put]
func (c *UserController) UpdateProgress(ctx *gin.Context) {
	var req service.LessonProgressRequest
	if err := bindJSON(ctx, &req); err != nil {
		util.BadRequest(ctx, invalidBody)
		return
	}

	id := util.NormalizeID(ctx.Param("id"))
	p, err := c.ProgressService.UpdateLessonProgress(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err, req.CourseID)
		return
	}

	util.Success(ctx, p)
}

// @Summary 获取用户成就
// @Description 包含该用户获得的成就和默认成就
// @Tags 成就
// @Produce json
// @Param id path string true "学习者ID"
// @Success 200 {object} util.Response{data=[]model.Achievement}
// @Router /api/user/{id}/achievements [get]
func (c *UserController) GetAchievements(ctx *gin.Context) {
	util.Success(ctx, c.CatalogService.GetUserAchievements(ctx.Param("id")))
}
