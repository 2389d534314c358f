package handler

import (
	"errors"
	"net/http"

	"Ming_Social/internal/model"
	"Ming_Social/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc *service.CommentService
}

type CreateCommentReq struct {
	Post    uint64 `json:"post"`
	Content string `json:"content"`
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Create 评论接口，帖子引用按字段校验处理
func (h *CommentHandler) Create(c *gin.Context) {
	var req CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid params"})
		return
	}

	comment, err := h.svc.Create(c.Request.Context(), userIDFromCtx(c), req.Post, req.Content)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) || errors.Is(err, model.ErrContentRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "create failed"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// List 评论列表，?author= 为等值过滤
func (h *CommentHandler) List(c *gin.Context) {
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
