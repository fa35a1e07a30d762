package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/waste_sorting_system/internal/models"
	"github.com/shenikar/waste_sorting_system/internal/webhook"
	"github.com/shenikar/waste_sorting_system/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// RedeemResult - итог погашения награды
type RedeemResult struct {
	Reward  models.Reward
	Account *models.UserAccount
}

type rewardService struct {
	catalog   []models.Reward
	accounts  AccountRepository
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	metrics   *metrics.Metrics
}

func NewRewardService(catalog []models.Reward, accounts AccountRepository, publisher webhook.WebhookPublisher, logger *logrus.Logger, m *metrics.Metrics) RewardService {
	return &rewardService{
		catalog:   catalog,
		accounts:  accounts,
		publisher: publisher,
		logger:    logger,
		metrics:   m,
	}
}

// ListRewards возвращает каталог наград
func (s *rewardService) ListRewards(_ context.Context) []models.Reward {
	out := make([]models.Reward, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Redeem списывает стоимость награды с баланса пользователя
func (s *rewardService) Redeem(ctx context.Context, session Session, rewardID string) (*RedeemResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "reward",
		"method":    "Redeem",
		"username":  session.Username,
		"reward_id": rewardID,
	})
	log.Info("Attempting to redeem reward")

	reward, ok := s.find(rewardID)
	if !ok {
		log.Warn("Reward not found in catalog")
		return nil, models.ErrRewardNotFound
	}

	entry := models.NewHistoryEntry("Redeemed reward", reward.Name, models.RewardBinCategory, -reward.Cost, 0)
	account, err := s.accounts.ApplyEntry(ctx, session.Username, entry)
	if err != nil {
		log.WithError(err).Warn("Failed to redeem reward")
		return nil, fmt.Errorf("service: could not redeem reward: %w", err)
	}
	s.metrics.RecordRedemption(reward.ID)

	event := webhook.WebhookEvent{
		Type:      webhook.EventRewardRedeemed,
		Username:  session.Username,
		RewardID:  reward.ID,
		Points:    -reward.Cost,
		Timestamp: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish webhook event")
	}

	log.WithField("points", account.Points).Info("Reward redeemed successfully")
	return &RedeemResult{Reward: reward, Account: account}, nil
}

func (s *rewardService) find(id string) (models.Reward, bool) {
	for _, r := range s.catalog {
		if r.ID == id {
			return r, true
		}
	}
	return models.Reward{}, false
}
