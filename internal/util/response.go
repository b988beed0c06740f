package util

import (
	"course_builder_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构，与前端约定的 success/data 信封
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

func Error(c *gin.Context, code int, errText, message string) {
	c.JSON(code, Response{
		Success: false,
		Error:   errText,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, "Bad Request", message)
}

// NotFound 例如 NotFound(c, "Course", id) -> "Course not found"
func NotFound(c *gin.Context, resource, id string) {
	Error(c, http.StatusNotFound, resource+" not found", resource+" with ID "+id+" does not exist")
}

func RouteNotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Not Found", "The requested resource was not found")
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, "Internal Server Error", message)
}

// LogInternalError 记录错误，仅在 debug 模式下把错误信息返回给调用方
func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)

	message := "Something went wrong!"
	if gin.IsDebugging() {
		message = err.Error()
	}
	InternalServerError(c, message)
}
