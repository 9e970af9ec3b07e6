package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdhnkumar/faculty-econtent/internal/service"
	"github.com/mdhnkumar/faculty-econtent/pkg/response"
	"github.com/mdhnkumar/faculty-econtent/pkg/validator"
)

type VideoHandler struct {
	videoService service.VideoService
}

func NewVideoHandler(videoService service.VideoService) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
	}
}

func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.videoService.List(c.Request.Context(), c.Query("subject"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKList(c, videos, len(videos))
}

func (h *VideoHandler) GetByID(c *gin.Context) {
	video, err := h.videoService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, video)
}

func (h *VideoHandler) Create(c *gin.Context) {
	var input service.CreateVideoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, validator.FormatValidationError(err))
		return
	}

	video, err := h.videoService.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, video)
}

func (h *VideoHandler) Update(c *gin.Context) {
	var input service.UpdateVideoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, validator.FormatValidationError(err))
		return
	}

	video, err := h.videoService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, video)
}

func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videoService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "video deleted")
}
