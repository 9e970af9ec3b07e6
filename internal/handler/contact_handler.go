package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdhnkumar/faculty-econtent/internal/service"
	"github.com/mdhnkumar/faculty-econtent/pkg/response"
	"github.com/mdhnkumar/faculty-econtent/pkg/validator"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var input service.SubmitContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, validator.FormatValidationError(err))
		return
	}

	if _, err := h.contactService.Submit(c.Request.Context(), input); err != nil {
		response.Error(c, err)
		return
	}

	response.CreatedMessage(c, "message sent successfully")
}

func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.contactService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKList(c, messages, len(messages))
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	msg, err := h.contactService.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, msg)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contactService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "message deleted")
}
