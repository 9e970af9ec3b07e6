package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mdhnkumar/faculty-econtent/internal/service"
	"github.com/mdhnkumar/faculty-econtent/pkg/response"
)

type SearchHandler struct {
	searchService service.SearchService
}

func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.ErrorMessage(c, http.StatusBadRequest, "query parameter q is required")
		return
	}

	results, err := h.searchService.Search(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKList(c, results, len(results))
}
