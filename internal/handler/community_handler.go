package handler

import (
	"net/http"

	"Founder_Circle/internal/service"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	svc *service.CommunityService
}

func NewCommunityHandler(svc *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

type CreateCommunityReq struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	AvatarURL   string   `json:"avatarUrl"`
	Tags        []string `json:"tags"`
}

func (h *CommunityHandler) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	var req CreateCommunityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	community, err := h.svc.Create(c.Request.Context(), userID, service.CreateCommunityInput{
		Name:        req.Name,
		Description: req.Description,
		AvatarURL:   req.AvatarURL,
		Tags:        req.Tags,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, community)
}

func (h *CommunityHandler) Get(c *gin.Context) {
	community, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, community)
}

func (h *CommunityHandler) List(c *gin.Context) {
	communities, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, communities)
}

// Mine 我加入的社区
func (h *CommunityHandler) Mine(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	communities, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, communities)
}

func (h *CommunityHandler) Join(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	if err := h.svc.Join(c.Request.Context(), c.Param("id"), userID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *CommunityHandler) Leave(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	if err := h.svc.Leave(c.Request.Context(), c.Param("id"), userID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *CommunityHandler) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
