package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdhnkumar/faculty-econtent/internal/service"
	"github.com/mdhnkumar/faculty-econtent/pkg/response"
	"github.com/mdhnkumar/faculty-econtent/pkg/validator"
)

type MaterialHandler struct {
	materialService service.MaterialService
}

func NewMaterialHandler(materialService service.MaterialService) *MaterialHandler {
	return &MaterialHandler{
		materialService: materialService,
	}
}

func (h *MaterialHandler) List(c *gin.Context) {
	materials, err := h.materialService.List(c.Request.Context(), c.Query("category"), c.Query("type"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKList(c, materials, len(materials))
}

func (h *MaterialHandler) Upload(c *gin.Context) {
	input := service.UploadMaterialInput{
		Title:    c.PostForm("title"),
		Category: c.PostForm("category"),
	}

	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			response.ErrorMessage(c, http.StatusBadRequest, "failed to read uploaded file")
			return
		}
		defer file.Close()

		input.File = &service.UploadFile{
			Reader:   file,
			FileName: fileHeader.Filename,
			Size:     fileHeader.Size,
		}
	}

	material, err := h.materialService.Upload(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, material)
}

// Download streams local files as attachments and redirects to the hosted
// object otherwise.
func (h *MaterialHandler) Download(c *gin.Context) {
	material, blob, err := h.materialService.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if blob.Path != "" {
		c.FileAttachment(blob.Path, material.OriginalName)
		return
	}
	c.Redirect(http.StatusFound, blob.URL)
}

func (h *MaterialHandler) Update(c *gin.Context) {
	var input service.UpdateMaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, validator.FormatValidationError(err))
		return
	}

	material, err := h.materialService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, material)
}

func (h *MaterialHandler) Delete(c *gin.Context) {
	if err := h.materialService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "material deleted")
}
