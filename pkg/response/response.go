package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdhnkumar/faculty-econtent/pkg/apperror"
)

// Envelope is the JSON body shape shared by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// OKList adds the count field used by collection endpoints.
func OKList(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Count: &count})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

func CreatedMessage(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

// Error maps err to a status code via apperror and writes the failure envelope.
// Internal errors are logged and replaced by a generic message so backend
// diagnostics never reach the client.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	msg := err.Error()
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
		msg = apperror.ErrInternal.Error()
	}

	c.JSON(code, Envelope{Success: false, Message: msg})
}

// ErrorMessage writes a failure envelope with an explicit status and message.
func ErrorMessage(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{Success: false, Message: message})
}
