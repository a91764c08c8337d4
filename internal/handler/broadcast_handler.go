package handler

import (
	"net/http"

	"Founder_Circle/internal/service"

	"github.com/gin-gonic/gin"
)

type BroadcastHandler struct {
	svc *service.BroadcastService
}

func NewBroadcastHandler(svc *service.BroadcastService) *BroadcastHandler {
	return &BroadcastHandler{svc: svc}
}

type SendBroadcastReq struct {
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags" binding:"required,min=1"`
	City    string   `json:"city"`
}

// Send 按标签 + 城市定向群发私信
func (h *BroadcastHandler) Send(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	var req SendBroadcastReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	result, err := h.svc.Send(c.Request.Context(), userID, req.Content, req.Tags, req.City)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// History 我发过的广播
func (h *BroadcastHandler) History(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	broadcasts, err := h.svc.ListBySender(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, broadcasts)
}
