package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Ming_Social/internal/model"
	"Ming_Social/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	svc *service.FollowService
}

type CreateFollowReq struct {
	Followed uint64 `json:"followed" binding:"required"`
}

func NewFollowHandler(svc *service.FollowService) *FollowHandler {
	return &FollowHandler{svc: svc}
}

// Create 关注接口。follower 永远取认证身份；
// 重复关注固定返回 400 {"detail": "Already following"}
func (h *FollowHandler) Create(c *gin.Context) {
	var req CreateFollowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid params"})
		return
	}

	follow, err := h.svc.Follow(c.Request.Context(), userIDFromCtx(c), req.Followed)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrAlreadyFollowing):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Already following"})
		case errors.Is(err, model.ErrSelfFollow):
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		case errors.Is(err, model.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "create failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, follow)
}

// Delete 取消关注，仅限边的 follower 本人
func (h *FollowHandler) Delete(c *gin.Context) {
	followID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || followID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid follow id"})
		return
	}

	if err := h.svc.Unfollow(c.Request.Context(), userIDFromCtx(c), followID); err != nil {
		switch {
		case errors.Is(err, model.ErrFollowNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		case errors.Is(err, model.ErrNoPermission):
			c.JSON(http.StatusForbidden, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "delete failed"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// List 关注边列表，?follower= 为等值过滤
func (h *FollowHandler) List(c *gin.Context) {
	followerID, ok := filterIDFromQuery(c, "follower")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid follower filter"})
		return
	}

	list, err := h.svc.List(c.Request.Context(), followerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}
