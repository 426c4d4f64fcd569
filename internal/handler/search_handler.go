package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/travelhub/booking-backend-go/internal/models"
	"github.com/travelhub/booking-backend-go/internal/service"
	"github.com/travelhub/booking-backend-go/pkg/response"
)

// SearchHandler handles HTTP requests for package search
type SearchHandler struct {
	search *service.PackageSearchEngine
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(search *service.PackageSearchEngine) *SearchHandler {
	return &SearchHandler{search: search}
}

// SearchPackages handles GET /api/v1/search/packages
func (h *SearchHandler) SearchPackages(c *gin.Context) {
	var q models.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.search.SearchPackages(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}
