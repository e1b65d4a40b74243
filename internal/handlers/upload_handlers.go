package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"restaurant_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps image uploads at 5 MB.
const maxUploadSize = 5 << 20

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadHandler stores uploaded images on local disk.
type UploadHandler struct {
	uploadDir string
}

// NewUploadHandler creates a new UploadHandler writing into uploadDir.
func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

// UploadImage accepts a multipart image under the "image" field and returns
// the public path of the stored file.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondValidationFailed(c, "An image file is required under the 'image' field.")
		return
	}

	if file.Size > maxUploadSize {
		utils.RespondValidationFailed(c, "Image exceeds the 5MB size limit.")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		utils.RespondValidationFailed(c, "Only jpg, jpeg, png, gif and webp images are allowed.")
		return
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	dst := filepath.Join(h.uploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.LogError(err, "UploadImage: failed to save uploaded file")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to store image."))
		return
	}

	utils.RespondSuccessMessage(c, http.StatusCreated, "Image uploaded successfully", gin.H{
		"path": "/uploads/" + filename,
	})
}
