package handler

import (
	"errors"
	"net/http"

	"Founder_Circle/internal/middleware"
	"Founder_Circle/internal/service"

	"github.com/gin-gonic/gin"
)

// userIDFromCtx 取出 auth 中间件注入的 user_id
func userIDFromCtx(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
		return "", false
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
		return "", false
	}
	return userID, true
}

// abortWithServiceError 业务错误到状态码的映射
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrMessageLimit):
		c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	case errors.Is(err, service.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
	}
}
