package service

import (
	"context"
	"errors"
	"time"

	"github.com/shenikar/waste_sorting_system/internal/models"
)

//go:generate mockgen -source=service.go -destination=../handler/http/v1/mocks/service_mock.go -package=mocks

var (
	ErrUserExists           = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrEmptyCredentials     = errors.New("username and password are required")
	ErrWeakPassword         = errors.New("password must be at least 6 characters long")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrWasteTypeRequired    = errors.New("waste type required: prediction is not confident enough")
	ErrInvalidWasteCategory = errors.New("invalid waste category")
)

// Session - явное состояние сеанса пользователя, передаваемое в операции
type Session struct {
	Username  string
	TokenID   string
	ExpiresAt time.Time
}

// AccountService определяет контракт регистрации, входа и работы с аккаунтом
type AccountService interface {
	Register(ctx context.Context, username, password, confirmPassword string) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Logout(ctx context.Context, session Session) error
	Authenticate(ctx context.Context, token string) (Session, error)
	GetAccount(ctx context.Context, session Session) (*models.UserAccount, error)
}

// BinService определяет контракт для работы с контейнерами
type BinService interface {
	ListBins(ctx context.Context) ([]*models.Bin, error)
	GetBin(ctx context.Context, id string) (*models.Bin, error)
	Suggest(ctx context.Context, from *models.Coordinate, category *models.BinCategory) (*SuggestionList, error)
	Deposit(ctx context.Context, category models.BinCategory, from *models.Coordinate) (*DepositResult, error)
	RevertDeposit(ctx context.Context, deposit *DepositResult) error
	EmptyBin(ctx context.Context, id string) (*models.Bin, error)
}

// WasteService определяет контракт классификации и выброса отходов
type WasteService interface {
	Classify(label string, confidence float64) Classification
	Throw(ctx context.Context, session Session, req ThrowRequest) (*ThrowResult, error)
}

// RewardService определяет контракт для каталога наград
type RewardService interface {
	ListRewards(ctx context.Context) []models.Reward
	Redeem(ctx context.Context, session Session, rewardID string) (*RedeemResult, error)
}
