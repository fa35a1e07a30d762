package service

import (
	"context"
	"time"

	"github.com/shenikar/waste_sorting_system/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

// BinRepository определяет контракт для работы с хранилищем контейнеров
type BinRepository interface {
	List(ctx context.Context) ([]*models.Bin, error)
	GetByID(ctx context.Context, id string) (*models.Bin, error)
	UpdateFill(ctx context.Context, bin *models.Bin) error
	GetBinsFromCache(ctx context.Context) ([]*models.Bin, error)
	SetBinsCache(ctx context.Context, bins []*models.Bin) error
	InvalidateBinsCache(ctx context.Context) error
}

// AccountRepository определяет контракт для хранения учетных записей
type AccountRepository interface {
	Create(ctx context.Context, account *models.UserAccount) error
	GetByUsername(ctx context.Context, username string) (*models.UserAccount, error)
	// ApplyEntry атомарно применяет запись истории к аккаунту и возвращает его новое состояние
	ApplyEntry(ctx context.Context, username string, entry models.HistoryEntry) (*models.UserAccount, error)
}

// SessionStore хранит отозванные токены
type SessionStore interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

// BinNotifier получает уведомления об изменении контейнеров
type BinNotifier interface {
	NotifyBinUpdated(bin *models.Bin)
}
