package handler

import (
	"net/http"

	"Founder_Circle/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	svc *service.FollowService
}

func NewFollowHandler(svc *service.FollowService) *FollowHandler {
	return &FollowHandler{svc: svc}
}

type FollowReq struct {
	UserID string `json:"userId" binding:"required"`
}

// Request 发起关注
func (h *FollowHandler) Request(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	var req FollowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	follow, err := h.svc.Request(c.Request.Context(), userID, req.UserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, follow)
}

func (h *FollowHandler) Accept(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	if err := h.svc.Accept(c.Request.Context(), userID, c.Param("id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *FollowHandler) Decline(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	if err := h.svc.Decline(c.Request.Context(), userID, c.Param("id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// Status 与目标用户的关注状态
func (h *FollowHandler) Status(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	status, err := h.svc.Status(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

func (h *FollowHandler) Followers(c *gin.Context) {
	users, err := h.svc.Followers(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *FollowHandler) Following(c *gin.Context) {
	users, err := h.svc.Following(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// Requests 待处理的关注请求
func (h *FollowHandler) Requests(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	requests, err := h.svc.Requests(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, requests)
}
