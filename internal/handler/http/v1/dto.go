package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,max=64"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse DTO для ответа с токеном сеанса
// @Description DTO для ответа с токеном сеанса
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Account   AccountResponse `json:"account"`
}

// AccountResponse DTO для ответа с балансом пользователя
// @Description DTO для ответа с балансом пользователя
type AccountResponse struct {
	Username        string    `json:"username"`
	Points          int       `json:"points"`
	CarbonSavedKg   float64   `json:"carbon_saved_kg"`
	CarbonSavedTons float64   `json:"carbon_saved_tons"`
	CreatedAt       time.Time `json:"created_at"`
}

// HistoryEntryResponse DTO для записи истории
// @Description DTO для записи истории
type HistoryEntryResponse struct {
	ID           uuid.UUID `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Action       string    `json:"action"`
	BinLocation  string    `json:"bin_location"`
	BinCategory  string    `json:"bin_category"`
	Points       int       `json:"points"`
	CarbonImpact float64   `json:"carbon_impact"`
}

// BinResponse DTO для ответа с информацией о контейнере
// @Description DTO для ответа с информацией о контейнере
type BinResponse struct {
	ID             string    `json:"id"`
	Location       string    `json:"location"`
	Category       string    `json:"category"`
	FillPercentage int       `json:"fill_percentage"`
	Status         string    `json:"status"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	LastUpdated    time.Time `json:"last_updated"`
}

// SuggestionResponse DTO для контейнера в ранжированном списке
// @Description DTO для контейнера в ранжированном списке
type SuggestionResponse struct {
	Bin            BinResponse `json:"bin"`
	DistanceMeters *int        `json:"distance_meters,omitempty"`
}

// SuggestionsResponse DTO для списка рекомендаций
// @Description DTO для списка рекомендаций
type SuggestionsResponse struct {
	OverflowWarning bool                 `json:"overflow_warning"`
	Suggestions     []SuggestionResponse `json:"suggestions"`
}

// ClassifyRequest DTO для предпросмотра классификации
// @Description DTO для предпросмотра классификации
type ClassifyRequest struct {
	Label      string  `json:"label" validate:"required"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
}

// ClassifyResponse DTO для результата классификации
// @Description DTO для результата классификации
type ClassifyResponse struct {
	Label         string   `json:"label"`
	Confidence    float64  `json:"confidence"`
	WasteCategory string   `json:"waste_category"`
	BinCategory   string   `json:"bin_category"`
	Confident     bool     `json:"confident"`
	Categories    []string `json:"categories"`
}

// ThrowRequest DTO для выброса отходов
// @Description DTO для выброса отходов
type ThrowRequest struct {
	Label          string   `json:"label,omitempty"`
	Confidence     float64  `json:"confidence" validate:"gte=0,lte=1"`
	ManualCategory string   `json:"manual_category,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// ThrowResponse DTO для результата выброса
// @Description DTO для результата выброса
type ThrowResponse struct {
	Message        string      `json:"message"`
	WasteCategory  string      `json:"waste_category"`
	BinCategory    string      `json:"bin_category"`
	Source         string      `json:"source"`
	Bin            BinResponse `json:"bin"`
	DistanceMeters *int        `json:"distance_meters,omitempty"`
	PointsEarned   int         `json:"points_earned"`
	CarbonImpact   float64     `json:"carbon_impact"`
	TotalPoints    int         `json:"total_points"`
}

// RewardResponse DTO для награды
// @Description DTO для награды
type RewardResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Cost    int    `json:"cost"`
	LogoURL string `json:"logo_url"`
}

// RedeemResponse DTO для результата погашения награды
// @Description DTO для результата погашения награды
type RedeemResponse struct {
	Message         string         `json:"message"`
	Reward          RewardResponse `json:"reward"`
	RemainingPoints int            `json:"remaining_points"`
}
