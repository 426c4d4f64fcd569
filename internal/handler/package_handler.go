package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/travelhub/booking-backend-go/internal/models"
	"github.com/travelhub/booking-backend-go/internal/service"
	"github.com/travelhub/booking-backend-go/pkg/response"
)

// PackageHandler handles HTTP requests for package options and pricing
type PackageHandler struct {
	pricing *service.PricingEngine
}

// NewPackageHandler creates a new package handler
func NewPackageHandler(pricing *service.PricingEngine) *PackageHandler {
	return &PackageHandler{pricing: pricing}
}

// GetOptions handles GET /api/v1/packages/:id/options
func (h *PackageHandler) GetOptions(c *gin.Context) {
	id, ok := packageID(c)
	if !ok {
		return
	}

	opts, err := h.pricing.GetPackageOptions(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, opts)
}

// CalculatePrice handles POST /api/v1/packages/:id/price
func (h *PackageHandler) CalculatePrice(c *gin.Context) {
	id, ok := packageID(c)
	if !ok {
		return
	}

	var req models.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	travel, err := service.ParseTravelDetails(req.StartDate, req.EndDate, req.Travelers)
	if err != nil {
		respondError(c, err)
		return
	}

	breakdown, err := h.pricing.CalculatePackagePrice(c.Request.Context(), id, req.Preferences, travel)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, breakdown)
}

func packageID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid package ID")
		return 0, false
	}
	return id, true
}
