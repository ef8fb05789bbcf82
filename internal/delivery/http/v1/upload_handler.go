package v1

import (
	"io"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadUC domain.UploadUsecase
	maxBytes int64
}

func NewUploadHandler(admin *gin.RouterGroup, uploadUC domain.UploadUsecase, maxBytes int64) {
	handler := &UploadHandler{uploadUC: uploadUC, maxBytes: maxBytes}

	admin.POST("/uploads", handler.Upload)
}

// Upload godoc
// @Summary      Upload an image
// @Description  Stores a compressed copy under folder and returns its public URL. old_url, when given, is deleted afterwards.
// @Tags         admin-uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file     formData  file    true   "Image (jpg, png, gif, webp)"
// @Param        folder   formData  string  false  "Target folder"
// @Param        old_url  formData  string  false  "URL of the image being replaced"
// @Success      201      {object}  response.Response{data=domain.UploadResult}
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Router       /admin/uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Failed to read uploaded file"))
		return
	}
	defer f.Close()

	// One byte past the limit is enough for the size check.
	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		c.Error(apperror.BadRequest("Failed to read uploaded file"))
		return
	}

	result, err := h.uploadUC.UploadImage(c.Request.Context(), &domain.UploadRequest{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
		Folder:      c.PostForm("folder"),
		OldURL:      c.PostForm("old_url"),
		ClientIP:    c.ClientIP(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "File uploaded", result)
}
