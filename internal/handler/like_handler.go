package handler

import (
	"errors"
	"net/http"

	"Ming_Social/internal/model"
	"Ming_Social/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	svc *service.LikeService
}

type CreateLikeReq struct {
	Post uint64 `json:"post"`
}

func NewLikeHandler(svc *service.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

// Create 点赞接口，user 注入认证身份
func (h *LikeHandler) Create(c *gin.Context) {
	var req CreateLikeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid params"})
		return
	}

	like, err := h.svc.Create(c.Request.Context(), userIDFromCtx(c), req.Post)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "create failed"})
		return
	}

	c.JSON(http.StatusCreated, like)
}

// List 点赞列表，?user= 为等值过滤
func (h *LikeHandler) List(c *gin.Context) {
	userID, ok := filterIDFromQuery(c, "user")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user filter"})
		return
	}

	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}
