// Package recommender выбирает контейнер для выброса отходов и ранжирует подсказки для карты.
package recommender

import (
	"errors"
	"math/rand/v2"
	"sort"

	"github.com/shenikar/waste_sorting_system/internal/models"
	"github.com/shenikar/waste_sorting_system/pkg/geo"
)

// ErrNoSuitableBin возвращается, если нет контейнера нужного типа со свободным местом.
// Ошибка окончательная для текущего действия, повтор не выполняется.
var ErrNoSuitableBin = errors.New("no suitable bin")

const (
	minIncrement = 1
	maxIncrement = 5
)

// Suggestion - контейнер в ранжированном списке
type Suggestion struct {
	Bin           *models.Bin
	DistanceKm    float64
	DistanceKnown bool
}

// DistanceMeters возвращает расстояние в метрах, округленное до целого
func (s Suggestion) DistanceMeters() int {
	return int(s.DistanceKm*1000 + 0.5)
}

// IncrementFunc возвращает прирост заполненности при одном выбросе
type IncrementFunc func() int

// RandomIncrement - равномерно распределенный прирост в диапазоне [1,5]
func RandomIncrement() int {
	return minIncrement + rand.IntN(maxIncrement-minIncrement+1)
}

// Candidates отбирает контейнеры заданного типа, заполненные меньше чем на 100%
func Candidates(bins []*models.Bin, category models.BinCategory) []*models.Bin {
	out := make([]*models.Bin, 0, len(bins))
	for _, b := range bins {
		if b.Accepts(category) {
			out = append(out, b)
		}
	}
	return out
}

// Rank сортирует контейнеры по возрастанию заполненности, при равенстве - по расстоянию до from.
// Без координат пользователя порядок определяется только заполненностью.
func Rank(bins []*models.Bin, from *models.Coordinate) []Suggestion {
	suggestions := make([]Suggestion, len(bins))
	for i, b := range bins {
		suggestions[i] = Suggestion{Bin: b}
		if from != nil {
			suggestions[i].DistanceKm = geo.Haversine(from.Latitude, from.Longitude, b.Coordinate.Latitude, b.Coordinate.Longitude)
			suggestions[i].DistanceKnown = true
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Bin.FillPercentage != b.Bin.FillPercentage {
			return a.Bin.FillPercentage < b.Bin.FillPercentage
		}
		if from != nil {
			return a.DistanceKm < b.DistanceKm
		}
		return false
	})
	return suggestions
}

// Recommend возвращает лучший контейнер для заданного типа
func Recommend(bins []*models.Bin, category models.BinCategory, from *models.Coordinate) (Suggestion, error) {
	candidates := Candidates(bins, category)
	if len(candidates) == 0 {
		return Suggestion{}, ErrNoSuitableBin
	}
	return Rank(candidates, from)[0], nil
}
