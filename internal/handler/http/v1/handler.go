package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/waste_sorting_system/internal/config"
	"github.com/shenikar/waste_sorting_system/internal/models"
	"github.com/shenikar/waste_sorting_system/internal/recommender"
	"github.com/shenikar/waste_sorting_system/internal/service"
	"github.com/sirupsen/logrus"
)

// LiveStream подписывает websocket-клиентов на обновления контейнеров
type LiveStream interface {
	ServeWS(c *gin.Context)
}

type Handler struct {
	accountService service.AccountService
	binService     service.BinService
	wasteService   service.WasteService
	rewardService  service.RewardService
	live           LiveStream
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(
	accountService service.AccountService,
	binService service.BinService,
	wasteService service.WasteService,
	rewardService service.RewardService,
	live LiveStream,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		accountService: accountService,
		binService:     binService,
		wasteService:   wasteService,
		rewardService:  rewardService,
		live:           live,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// errorResponse сопоставляет доменную ошибку с HTTP статусом
type errorResponse struct {
	target  error
	status  int
	message string
}

var errorResponses = []errorResponse{
	{target: service.ErrEmptyCredentials, status: http.StatusBadRequest},
	{target: service.ErrWeakPassword, status: http.StatusBadRequest},
	{target: service.ErrPasswordMismatch, status: http.StatusBadRequest},
	{target: service.ErrInvalidWasteCategory, status: http.StatusBadRequest},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized},
	{target: service.ErrInvalidToken, status: http.StatusUnauthorized},
	{target: models.ErrBinNotFound, status: http.StatusNotFound},
	{target: models.ErrUserNotFound, status: http.StatusNotFound},
	{target: models.ErrRewardNotFound, status: http.StatusNotFound},
	{target: service.ErrUserExists, status: http.StatusConflict},
	{target: recommender.ErrNoSuitableBin, status: http.StatusUnprocessableEntity, message: "no available bins of this type or all are full"},
	{target: models.ErrInsufficientPoints, status: http.StatusUnprocessableEntity, message: "not enough points to redeem this reward"},
	{target: service.ErrWasteTypeRequired, status: http.StatusUnprocessableEntity},
}

// respondError отвечает статусом, соответствующим ошибке сервиса
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			message := r.message
			if message == "" {
				message = r.target.Error()
			}
			log.WithError(err).Warn("Request rejected")
			c.JSON(r.status, gin.H{"error": message})
			return
		}
	}
	log.WithError(err).Error("Service call failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// bindAndValidate разбирает тело запроса и проверяет теги validate
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Live bin updates
// @Description Upgrades the connection to a websocket and streams bin_updated messages after every deposit or collection.
// @Tags Bins
// @Success 101 "Switching Protocols"
// @Router /ws/bins [get]
func (h *Handler) streamBins(c *gin.Context) {
	h.live.ServeWS(c)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
