package handler

import (
	"net/http"
	"path/filepath"

	"Ming_Social/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	svc       *service.ProfileService
	uploadDir string
}

type ProfileUpdateReq struct {
	Bio string `json:"bio"`
}

func NewProfileHandler(svc *service.ProfileService, uploadDir string) *ProfileHandler {
	return &ProfileHandler{svc: svc, uploadDir: uploadDir}
}

// Get 返回调用者自己的档案
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.svc.Get(c.Request.Context(), userIDFromCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "profile load failed"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Update 只允许改bio，user字段服务端固定
func (h *ProfileHandler) Update(c *gin.Context) {
	var req ProfileUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid params"})
		return
	}

	profile, err := h.svc.UpdateBio(c.Request.Context(), userIDFromCtx(c), req.Bio)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "profile update failed"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadPicture 头像上传，落盘文件名用 uuid 防止覆盖
func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	file, err := c.FormFile("profile_picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "profile_picture file required"})
		return
	}

	ext := filepath.Ext(file.Filename)
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"detail": "unsupported image type"})
		return
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(h.uploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "upload failed"})
		return
	}

	profile, err := h.svc.SetPicture(c.Request.Context(), userIDFromCtx(c), dst)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "profile update failed"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
