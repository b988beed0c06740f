package controller

import (
	"course_builder_backend/internal/util"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// respondError 把服务层的哨兵错误映射为统一响应
func respondError(ctx *gin.Context, err error, id string) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx, "Course", id)
	case errors.Is(err, util.ErrLearningPathNotFound):
		util.NotFound(ctx, "Learning path", id)
	case errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx, "User", id)
	case errors.Is(err, util.ErrLearnerIDRequired),
		errors.Is(err, util.ErrInvalidRating),
		errors.Is(err, util.ErrCourseIDRequired),
		errors.Is(err, util.ErrLessonIDRequired),
		errors.Is(err, util.ErrLessonNotInCourse),
		errors.Is(err, util.ErrNoAnswers):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

const invalidBody = "Invalid request body"

// bindJSON 空请求体按零值处理，交给服务层给出具体的校验错误
func bindJSON(ctx *gin.Context, req interface{}) error {
	if err := ctx.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
