package api

import (
	"mime/multipart"
	"net/http"

	resdto "ezrent/internal/handler/dto/response"
	"ezrent/internal/handler/httperr"
	"ezrent/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// UploadField is the multipart field carrying the images.
const UploadField = "images"

type UploadHandler struct {
	cmds commands.UploadCommands
}

func NewUploadHandler(cmds commands.UploadCommands) *UploadHandler {
	return &UploadHandler{cmds: cmds}
}

// @Summary Upload images
// @Description Stores up to the configured number of images. The batch is all or nothing.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param images formData file true "Image files"
// @Success 201 {array} resdto.UploadedFileResponse
// @Failure 400 {object} httperr.Response
// @Router /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid multipart form", nil)
		return
	}

	headers := form.File[UploadField]
	files := make([]commands.UploadFile, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid multipart form", nil)
			return
		}
		opened = append(opened, f)
		files = append(files, commands.UploadFile{Filename: fh.Filename, Size: fh.Size, Content: f})
	}

	stored, err := h.cmds.Upload(c.Request.Context(), files)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	respond(c, http.StatusCreated, resdto.FromUploadedFiles(stored))
}

// @Summary Delete uploaded image
// @Tags uploads
// @Security BearerAuth
// @Param filename path string true "Stored filename"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /uploads/{filename} [delete]
func (h *UploadHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("filename")); err != nil {
		abortWithErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
