package handler

import (
	"net/http"

	"Ming_Social/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

// CreatePostReq 请求体里没有作者字段，客户端传了也会在绑定时被丢掉
type CreatePostReq struct {
	Content string `json:"content"`
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// Create 发帖接口，作者注入认证身份
func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid params"})
		return
	}

	post, err := h.svc.Create(c.Request.Context(), userIDFromCtx(c), req.Content)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// List 帖子列表，?author= 为等值过滤
func (h *PostHandler) List(c *gin.Context) {
	authorID, ok := filterIDFromQuery(c, "author")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid author filter"})
		return
	}

	list, err := h.svc.List(c.Request.Context(), authorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}
