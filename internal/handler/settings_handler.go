package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdhnkumar/faculty-econtent/internal/service"
	"github.com/mdhnkumar/faculty-econtent/internal/store"
	"github.com/mdhnkumar/faculty-econtent/pkg/response"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

func (h *SettingsHandler) GetProfile(c *gin.Context) {
	profile, err := h.settingsService.GetProfile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, profile)
}

func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	var partial store.Document
	if err := c.ShouldBindJSON(&partial); err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.settingsService.UpdateProfile(c.Request.Context(), partial)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, profile)
}

func (h *SettingsHandler) GetContent(c *gin.Context) {
	content, err := h.settingsService.GetContent(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, content)
}

func (h *SettingsHandler) UpdateContent(c *gin.Context) {
	var partial store.Document
	if err := c.ShouldBindJSON(&partial); err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}

	content, err := h.settingsService.UpdateContent(c.Request.Context(), partial)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, content)
}
