package handler

import (
	"net/http"

	"Founder_Circle/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	svc *service.FeedService
}

func NewFeedHandler(svc *service.FeedService) *FeedHandler {
	return &FeedHandler{svc: svc}
}

// List 按标签相关度排序的信息流
func (h *FeedHandler) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	posts, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}
