package v1

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/waste_sorting_system/internal/models"
)

var errInvalidCoordinate = errors.New("invalid coordinate")

// @Summary Get a list of bins
// @Description Get all campus bins with fill level and status
// @Tags Bins
// @Produce json
// @Success 200 {array} BinResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /bins [get]
func (h *Handler) listBins(c *gin.Context) {
	log := h.logger.WithField("method", "listBins")

	bins, err := h.binService.ListBins(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToBinResponses(bins))
}

// @Summary Get bin by ID
// @Description Get a single bin by its ID
// @Tags Bins
// @Produce json
// @Param id path string true "Bin ID"
// @Success 200 {object} BinResponse
// @Failure 404 {object} map[string]string "Bin not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /bins/{id} [get]
func (h *Handler) getBin(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getBin").WithField("id", id)

	bin, err := h.binService.GetBin(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToBinResponse(bin))
}

// @Summary Get ranked bin suggestions
// @Description Rank bins by fill level, then distance from the given point. With a category only non-full bins of that type are listed.
// @Tags Bins
// @Produce json
// @Param lat query number false "User latitude"
// @Param lon query number false "User longitude"
// @Param category query string false "Bin category" Enums(Recycling, Compost, General)
// @Success 200 {object} SuggestionsResponse
// @Failure 400 {object} map[string]string "Invalid coordinates or category"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /bins/suggestions [get]
func (h *Handler) suggestBins(c *gin.Context) {
	log := h.logger.WithField("method", "suggestBins")

	from, err := parseCoordinate(c.Query("lat"), c.Query("lon"))
	if err != nil {
		log.WithError(err).Warn("Invalid coordinates")
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon must be valid coordinates given together"})
		return
	}

	var category *models.BinCategory
	if raw := c.Query("category"); raw != "" {
		parsed, ok := models.ParseBinCategory(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bin category"})
			return
		}
		category = &parsed
	}

	list, err := h.binService.Suggest(c.Request.Context(), from, category)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SuggestionsToResponse(list))
}

// @Summary Empty a bin
// @Description Reset a bin to 0% after collection. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Bin ID"
// @Success 200 {object} BinResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bin not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /bins/{id}/empty [post]
func (h *Handler) emptyBin(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "emptyBin").WithField("id", id)

	bin, err := h.binService.EmptyBin(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToBinResponse(bin))
}

// parseCoordinate разбирает пару lat/lon из query. Пустая пара означает отсутствие координат.
func parseCoordinate(rawLat, rawLon string) (*models.Coordinate, error) {
	if rawLat == "" && rawLon == "" {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil || !inRange(lat, 90) {
		return nil, errInvalidCoordinate
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil || !inRange(lon, 180) {
		return nil, errInvalidCoordinate
	}
	return &models.Coordinate{Latitude: lat, Longitude: lon}, nil
}

// inRange отсекает NaN и бесконечности, которые ParseFloat принимает
func inRange(v, limit float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= -limit && v <= limit
}
