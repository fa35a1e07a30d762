package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

const (
	webhookQueueKey = "webhook_events"

	EventWasteDeposited = "waste_deposited"
	EventRewardRedeemed = "reward_redeemed"
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	Type           string    `json:"type"`
	Username       string    `json:"username"`
	BinID          string    `json:"bin_id,omitempty"`
	BinLocation    string    `json:"bin_location,omitempty"`
	BinCategory    string    `json:"bin_category,omitempty"`
	WasteCategory  string    `json:"waste_category,omitempty"`
	FillPercentage int       `json:"fill_percentage,omitempty"`
	RewardID       string    `json:"reward_id,omitempty"`
	Points         int       `json:"points"`
	CarbonImpact   float64   `json:"carbon_impact"`
	Timestamp      time.Time `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
