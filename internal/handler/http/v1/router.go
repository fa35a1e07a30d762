package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	requireSession := SessionAuthMiddleware(h.accountService, h.logger)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/logout", requireSession, h.logout)
	}

	account := api.Group("/account", requireSession)
	{
		account.GET("", h.getAccount)
		account.GET("/history", h.getHistory)
	}

	bins := api.Group("/bins")
	{
		bins.GET("", h.listBins)
		bins.GET("/suggestions", h.suggestBins)
		bins.GET("/:id", h.getBin)
		bins.POST("/:id/empty", APIKeyAuthMiddleware(h.cfg, h.logger), h.emptyBin)
	}

	waste := api.Group("/waste")
	{
		waste.POST("/classify", h.classifyWaste)
		waste.POST("/throw", requireSession, h.throwWaste)
	}

	rewards := api.Group("/rewards")
	{
		rewards.GET("", h.listRewards)
		rewards.POST("/:id/redeem", requireSession, h.redeemReward)
	}

	// Живые обновления карты контейнеров
	if h.live != nil {
		api.GET("/ws/bins", h.streamBins)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
