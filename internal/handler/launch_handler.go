package handler

import (
	"net/http"

	"Founder_Circle/internal/service"

	"github.com/gin-gonic/gin"
)

type LaunchHandler struct {
	svc *service.LaunchService
}

func NewLaunchHandler(svc *service.LaunchService) *LaunchHandler {
	return &LaunchHandler{svc: svc}
}

type CreateLaunchReq struct {
	Name            string   `json:"name" binding:"required"`
	Tagline         string   `json:"tagline" binding:"required"`
	Description     string   `json:"description"`
	LogoURL         string   `json:"logoUrl"`
	ProductImageURL string   `json:"productImageUrl"`
	WebsiteURL      string   `json:"websiteUrl" binding:"required"`
	Tags            []string `json:"tags" binding:"required,min=1"`
}

func (h *LaunchHandler) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	var req CreateLaunchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	launch, err := h.svc.Create(c.Request.Context(), userID, service.CreateLaunchInput{
		Name:            req.Name,
		Tagline:         req.Tagline,
		Description:     req.Description,
		LogoURL:         req.LogoURL,
		ProductImageURL: req.ProductImageURL,
		WebsiteURL:      req.WebsiteURL,
		Tags:            req.Tags,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, launch)
}

// List 存活期内的全部发布
func (h *LaunchHandler) List(c *gin.Context) {
	launches, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, launches)
}

// Today 最近 24h 的发布
func (h *LaunchHandler) Today(c *gin.Context) {
	launches, err := h.svc.Today(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, launches)
}

// Yesterday 前一天票数最高的 7 个
func (h *LaunchHandler) Yesterday(c *gin.Context) {
	launches, err := h.svc.Yesterday(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, launches)
}

// Recommended 按观者标签推荐
func (h *LaunchHandler) Recommended(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	launches, err := h.svc.Recommended(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, launches)
}

func (h *LaunchHandler) Get(c *gin.Context) {
	launch, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, launch)
}

func (h *LaunchHandler) AddComment(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	var req CommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	comment, err := h.svc.AddComment(c.Request.Context(), userID, c.Param("id"), req.Content)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *LaunchHandler) ListComments(c *gin.Context) {
	comments, err := h.svc.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Upvote 投票，返回 success / alreadyUpvoted
func (h *LaunchHandler) Upvote(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	result, err := h.svc.Upvote(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpvoteStatus 当前用户是否已投过票
func (h *LaunchHandler) UpvoteStatus(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	voted, err := h.svc.HasUpvoted(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hasUpvoted": voted})
}

func (h *LaunchHandler) Delete(c *gin.Context) {
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
