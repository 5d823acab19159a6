package controller

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"railcollect_backend/internal/service"
	"railcollect_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedPhotoExt = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".webp": true,
}

type UploadController struct {
	StorageService *service.StorageService
}

func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{StorageService: storageService}
}

// @Summary Upload photo
// @Description Upload a project or item photo; returns the URL to store in photoUrl
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Photo file"
// @Success 201 {object} util.Response
// @Router /api/upload/photo [post]
func (c *UploadController) UploadPhoto(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("photo")
	if err != nil {
		util.BadRequest(ctx, "photo file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExt[ext] {
		util.BadRequest(ctx, "unsupported file type")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	filename := fmt.Sprintf("photos/%s/%d_%s%s", user.UserID, time.Now().Unix(), uuid.New().String()[:8], ext)
	contentType := file.Header.Get("Content-Type")

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, file.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"url": url})
}
