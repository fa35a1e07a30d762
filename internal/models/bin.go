package models

import (
	"errors"
	"strings"
	"time"
)

// BinCategory - тип контейнера
type BinCategory string

const (
	BinRecycling BinCategory = "Recycling"
	BinCompost   BinCategory = "Compost"
	BinGeneral   BinCategory = "General"
)

// ParseBinCategory разбирает тип контейнера без учета регистра
func ParseBinCategory(s string) (BinCategory, bool) {
	for _, c := range []BinCategory{BinRecycling, BinCompost, BinGeneral} {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, true
		}
	}
	return "", false
}

// BinStatus - состояние контейнера, производное от заполненности
type BinStatus string

const (
	StatusNormal          BinStatus = "Normal"
	StatusServiceRequired BinStatus = "Service Required"
	StatusFull            BinStatus = "Full"
)

const (
	serviceRequiredThreshold = 50
	fullThreshold            = 80

	// OverflowThreshold - заполненность, начиная с которой показывается предупреждение
	OverflowThreshold = fullThreshold
	// MaxFill - контейнер с такой заполненностью не принимает отходы
	MaxFill = 100
)

// ErrBinNotFound возвращается, если контейнер с указанным ID отсутствует
var ErrBinNotFound = errors.New("bin not found")

// StatusForFill вычисляет статус по проценту заполненности
func StatusForFill(fill int) BinStatus {
	switch {
	case fill >= fullThreshold:
		return StatusFull
	case fill >= serviceRequiredThreshold:
		return StatusServiceRequired
	default:
		return StatusNormal
	}
}

// Coordinate - географическая точка (WGS 84)
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Bin struct {
	ID             string      `json:"id"`
	Location       string      `json:"location"`
	Category       BinCategory `json:"category"`
	FillPercentage int         `json:"fill_percentage"`
	Status         BinStatus   `json:"status"`
	Coordinate     Coordinate  `json:"coordinate"`
	LastUpdated    time.Time   `json:"last_updated"`
}

// Fill увеличивает заполненность на increment, ограничивая диапазоном [0,100], и пересчитывает статус
func (b *Bin) Fill(increment int, now time.Time) {
	b.setFill(b.FillPercentage+increment, now)
}

// Empty обнуляет заполненность после вывоза
func (b *Bin) Empty(now time.Time) {
	b.setFill(0, now)
}

// Accepts сообщает, можно ли выбросить в контейнер отходы заданного типа
func (b *Bin) Accepts(category BinCategory) bool {
	return b.Category == category && b.FillPercentage < MaxFill
}

func (b *Bin) setFill(fill int, now time.Time) {
	if fill > MaxFill {
		fill = MaxFill
	}
	if fill < 0 {
		fill = 0
	}
	b.FillPercentage = fill
	b.Status = StatusForFill(fill)
	b.LastUpdated = now
}
