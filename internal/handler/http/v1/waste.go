package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Preview a classification
// @Description Map a classifier label to a waste category and bin type and report whether the confidence clears the threshold
// @Tags Waste
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Classifier prediction"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /waste/classify [post]
func (h *Handler) classifyWaste(c *gin.Context) {
	var input ClassifyRequest
	log := h.logger.WithField("method", "classifyWaste")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	c.JSON(http.StatusOK, ClassificationToResponse(h.wasteService.Classify(input.Label, input.Confidence)))
}

// @Summary Throw waste
// @Description Deposit waste into the best bin of the matching type and credit points. A confident prediction wins, otherwise manual_category is required.
// @Tags Waste
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ThrowRequest true "Throw request"
// @Success 200 {object} ThrowResponse
// @Failure 400 {object} map[string]string "Invalid request body or waste category"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Waste type required or no suitable bin"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /waste/throw [post]
func (h *Handler) throwWaste(c *gin.Context) {
	var input ThrowRequest
	session := currentSession(c)
	log := h.logger.WithField("method", "throwWaste").WithField("username", session.Username)

	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude must be given together"})
		return
	}

	result, err := h.wasteService.Throw(c.Request.Context(), session, DTOToThrowRequest(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ThrowResultToResponse(result))
}
