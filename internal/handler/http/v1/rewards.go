package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get the reward catalog
// @Description Get all vouchers that can be redeemed for points
// @Tags Rewards
// @Produce json
// @Success 200 {array} RewardResponse
// @Router /rewards [get]
func (h *Handler) listRewards(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToRewardResponses(h.rewardService.ListRewards(c.Request.Context())))
}

// @Summary Redeem a reward
// @Description Spend points on a voucher. The balance never goes negative.
// @Tags Rewards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reward ID"
// @Success 200 {object} RedeemResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Reward not found"
// @Failure 422 {object} map[string]string "Not enough points"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /rewards/{id}/redeem [post]
func (h *Handler) redeemReward(c *gin.Context) {
	id := c.Param("id")
	session := currentSession(c)
	log := h.logger.WithField("method", "redeemReward").WithField("id", id).WithField("username", session.Username)

	result, err := h.rewardService.Redeem(c.Request.Context(), session, id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RedeemResultToResponse(result))
}
