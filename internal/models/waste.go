package models

import "strings"

// WasteCategory - тип отходов, определенный классификатором или выбранный вручную
type WasteCategory string

const (
	WastePaper         WasteCategory = "Paper"
	WastePlastic       WasteCategory = "Plastic"
	WasteGlass         WasteCategory = "Glass"
	WasteAluminium     WasteCategory = "Aluminium"
	WasteFood          WasteCategory = "Food Waste"
	WasteNonRecyclable WasteCategory = "Non-recyclable"
)

// WasteCategories - все категории в порядке отображения в меню ручного выбора
var WasteCategories = []WasteCategory{
	WastePaper,
	WastePlastic,
	WasteGlass,
	WasteAluminium,
	WasteFood,
	WasteNonRecyclable,
}

// carbonImpactKg - экономия CO2e (кг) за один выброс; отрицательное значение - выброс
var carbonImpactKg = map[WasteCategory]float64{
	WastePaper:         0.9,
	WastePlastic:       1.1,
	WasteGlass:         0.8,
	WasteAluminium:     1.2,
	WasteFood:          0.7,
	WasteNonRecyclable: -0.5,
}

// MapClassifierLabel преобразует метку классификатора в категорию отходов.
// Нераспознанные метки относятся к Non-recyclable.
func MapClassifierLabel(label string) WasteCategory {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "plastic":
		return WastePlastic
	case "paper":
		return WastePaper
	case "glass":
		return WasteGlass
	case "metal", "aluminum", "aluminium":
		return WasteAluminium
	case "organic", "food waste", "compost":
		return WasteFood
	default:
		return WasteNonRecyclable
	}
}

// ParseWasteCategory разбирает название категории при ручном выборе
func ParseWasteCategory(s string) (WasteCategory, bool) {
	s = strings.TrimSpace(s)
	for _, c := range WasteCategories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// BinCategory возвращает тип контейнера, в который выбрасываются отходы данной категории
func (c WasteCategory) BinCategory() BinCategory {
	switch c {
	case WastePaper, WastePlastic, WasteGlass, WasteAluminium:
		return BinRecycling
	case WasteFood:
		return BinCompost
	default:
		return BinGeneral
	}
}

// CarbonImpact возвращает влияние одного выброса на углеродный след в кг CO2e
func (c WasteCategory) CarbonImpact() float64 {
	return carbonImpactKg[c]
}
