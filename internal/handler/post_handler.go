package handler

import (
	"net/http"
	"strconv"

	"Founder_Circle/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

type CreatePostReq struct {
	Content     string   `json:"content" binding:"required"`
	ImageURL    string   `json:"imageUrl"`
	CommunityID string   `json:"communityId"`
	Tags        []string `json:"tags"`
}

type CommentReq struct {
	Content string `json:"content" binding:"required"`
}

func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	post, err := h.svc.Create(c.Request.Context(), userID, service.CreatePostInput{
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		CommunityID: req.CommunityID,
		Tags:        req.Tags,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListRecent 全局最新帖子，?limit= 上限
func (h *PostHandler) ListRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	posts, err := h.svc.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ListByUser 某用户的帖子
func (h *PostHandler) ListByUser(c *gin.Context) {
	posts, err := h.svc.ListByAuthor(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Delete(c *gin.Context) {
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

// Like 点赞，重复点返回 liked=false
func (h *PostHandler) Like(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	first, err := h.svc.Like(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": first})
}

func (h *PostHandler) Unlike(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	removed, err := h.svc.Unlike(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unliked": removed})
}

func (h *PostHandler) AddComment(c *gin.Context) {
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

func (h *PostHandler) ListComments(c *gin.Context) {
	comments, err := h.svc.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *PostHandler) Repost(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	post, err := h.svc.Repost(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}
