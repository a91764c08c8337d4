package handler

import (
	"net/http"

	"Founder_Circle/internal/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	svc *service.MessageService
}

func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

type OpenConversationReq struct {
	UserID string `json:"userId" binding:"required"`
}

type SendMessageReq struct {
	Content string `json:"content" binding:"required"`
}

// Open 与目标用户的会话，没有就建
func (h *MessageHandler) Open(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	var req OpenConversationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	conv, err := h.svc.GetOrCreateConversation(c.Request.Context(), userID, req.UserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (h *MessageHandler) ListConversations(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	convs, err := h.svc.ListConversations(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, convs)
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	messages, err := h.svc.ListMessages(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Send 发消息，follow 未通过时最多 1 条
func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	var req SendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	msg, err := h.svc.Send(c.Request.Context(), userID, c.Param("id"), req.Content)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}
