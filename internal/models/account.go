package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// HistoryLimit - максимальное количество записей в истории пользователя
const HistoryLimit = 50

// RewardBinCategory - значение поля BinCategory для записей о погашении наград
const RewardBinCategory = "Reward"

var (
	// ErrInsufficientPoints возвращается, если операция сделала бы баланс отрицательным
	ErrInsufficientPoints = errors.New("not enough points")
	// ErrUserNotFound возвращается, если пользователь не зарегистрирован
	ErrUserNotFound = errors.New("user not found")
)

// HistoryEntry - запись в журнале действий пользователя
type HistoryEntry struct {
	ID           uuid.UUID `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Action       string    `json:"action"`
	BinLocation  string    `json:"bin_location"`
	BinCategory  string    `json:"bin_category"`
	Points       int       `json:"points"`
	CarbonImpact float64   `json:"carbon_impact"`
}

// NewHistoryEntry создает запись с новым ID и текущим временем
func NewHistoryEntry(action, location, category string, points int, carbon float64) HistoryEntry {
	return HistoryEntry{
		ID:           uuid.New(),
		Timestamp:    time.Now().UTC(),
		Action:       action,
		BinLocation:  location,
		BinCategory:  category,
		Points:       points,
		CarbonImpact: carbon,
	}
}

// UserAccount - учетная запись пользователя
type UserAccount struct {
	Username     string         `json:"username"`
	PasswordHash string         `json:"-"`
	Points       int            `json:"points"`
	CarbonSaved  float64        `json:"carbon_saved_kg"`
	History      []HistoryEntry `json:"history"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Apply применяет изменение баланса и углеродного следа и добавляет запись в начало истории.
// При нехватке баллов аккаунт не изменяется.
func (a *UserAccount) Apply(entry HistoryEntry) error {
	if a.Points+entry.Points < 0 {
		return ErrInsufficientPoints
	}
	a.Points += entry.Points
	a.CarbonSaved += entry.CarbonImpact

	history := make([]HistoryEntry, 0, min(len(a.History)+1, HistoryLimit))
	history = append(history, entry)
	history = append(history, a.History...)
	if len(history) > HistoryLimit {
		history = history[:HistoryLimit]
	}
	a.History = history
	return nil
}

// CarbonSavedTons возвращает накопленную экономию CO2e в тоннах
func (a *UserAccount) CarbonSavedTons() float64 {
	return a.CarbonSaved / 1000
}
