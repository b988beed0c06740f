package controller

import (
	"course_builder_backend/internal/util"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	now func() time.Time
}

func NewHealthController() *HealthController {
	return &HealthController{now: time.Now}
}

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} controller.HealthStatus
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthStatus{
		Status:    "OK",
		Timestamp: c.now().UTC(),
		Service:   util.ServiceName,
		Version:   util.ServiceVersion,
	})
}
