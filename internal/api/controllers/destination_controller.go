package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"travelexplorer/internal/models/request_models"
	"travelexplorer/internal/services"
	"travelexplorer/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// ListDestinations godoc
// @Summary List destinations
// @Description Active destinations, best rated first, narrowed by the given filters
// @Tags Destinations
// @Produce json
// @Param query query string false "Text to find in name, location, country or description"
// @Param continent query string false "Continent"
// @Param difficulty query string false "Easy, Moderate or Challenging"
// @Param location query string false "Location or country"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param duration query int false "Maximum duration in days"
// @Param rating query number false "Minimum rating"
// @Success 200 {object} utils.APIResponse
// @Router /destinations [get]
func (d *DestinationController) ListDestinations(c *gin.Context) {
	var filters request_models.SearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid filters")
		return
	}

	list, err := d.destinationService.ListDestinations(c.Request.Context(), filters)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, list, "Destinations fetched successfully")
}

// GetFacets godoc
// @Summary Filter values
// @Description Distinct continents and difficulties of the directory
// @Tags Destinations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /destinations/facets [get]
func (d *DestinationController) GetFacets(c *gin.Context) {
	facets, err := d.destinationService.GetFacets(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, facets, "Facets fetched successfully")
}

// GetDestination godoc
// @Summary Destination detail
// @Tags Destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/{id} [get]
func (d *DestinationController) GetDestination(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	destination, err := d.destinationService.GetDestination(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination fetched successfully")
}
