package middleware

import (
	"course_builder_backend/internal/util"
	"course_builder_backend/pkg/logger"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery 捕获 panic 并返回统一的 500 响应，错误详情只在 debug 模式下返回
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("Panic recovered",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
			zap.Stack("stack"),
		)

		message := "Something went wrong!"
		if gin.IsDebugging() {
			message = fmt.Sprint(recovered)
		}
		util.InternalServerError(c, message)
		c.Abort()
	})
}
