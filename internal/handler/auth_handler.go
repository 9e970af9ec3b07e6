package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdhnkumar/faculty-econtent/internal/service"
	"github.com/mdhnkumar/faculty-econtent/pkg/response"
	"github.com/mdhnkumar/faculty-econtent/pkg/validator"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, validator.FormatValidationError(err))
		return
	}

	res, err := h.authService.Login(c.Request.Context(), input, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, res)
}
