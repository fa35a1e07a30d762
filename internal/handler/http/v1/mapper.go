package v1

import (
	"fmt"

	"github.com/shenikar/waste_sorting_system/internal/models"
	"github.com/shenikar/waste_sorting_system/internal/recommender"
	"github.com/shenikar/waste_sorting_system/internal/service"
)

// ModelToBinResponse преобразует доменную модель контейнера в DTO для ответа
func ModelToBinResponse(bin *models.Bin) BinResponse {
	return BinResponse{
		ID:             bin.ID,
		Location:       bin.Location,
		Category:       string(bin.Category),
		FillPercentage: bin.FillPercentage,
		Status:         string(bin.Status),
		Latitude:       bin.Coordinate.Latitude,
		Longitude:      bin.Coordinate.Longitude,
		LastUpdated:    bin.LastUpdated,
	}
}

// ModelsToBinResponses преобразует слайс моделей в слайс DTO
func ModelsToBinResponses(bins []*models.Bin) []BinResponse {
	responses := make([]BinResponse, len(bins))
	for i, bin := range bins {
		responses[i] = ModelToBinResponse(bin)
	}
	return responses
}

// SuggestionsToResponse преобразует ранжированный список в DTO
func SuggestionsToResponse(list *service.SuggestionList) SuggestionsResponse {
	resp := SuggestionsResponse{
		OverflowWarning: list.OverflowWarning,
		Suggestions:     make([]SuggestionResponse, len(list.Suggestions)),
	}
	for i, s := range list.Suggestions {
		resp.Suggestions[i] = SuggestionResponse{
			Bin:            ModelToBinResponse(s.Bin),
			DistanceMeters: distanceMeters(s),
		}
	}
	return resp
}

func distanceMeters(s recommender.Suggestion) *int {
	if !s.DistanceKnown {
		return nil
	}
	m := s.DistanceMeters()
	return &m
}

// ModelToAccountResponse преобразует аккаунт в DTO для ответа
func ModelToAccountResponse(account *models.UserAccount) AccountResponse {
	return AccountResponse{
		Username:        account.Username,
		Points:          account.Points,
		CarbonSavedKg:   account.CarbonSaved,
		CarbonSavedTons: account.CarbonSavedTons(),
		CreatedAt:       account.CreatedAt,
	}
}

// ModelsToHistoryResponses преобразует историю в слайс DTO
func ModelsToHistoryResponses(history []models.HistoryEntry) []HistoryEntryResponse {
	responses := make([]HistoryEntryResponse, len(history))
	for i, e := range history {
		responses[i] = HistoryEntryResponse{
			ID:           e.ID,
			Timestamp:    e.Timestamp,
			Action:       e.Action,
			BinLocation:  e.BinLocation,
			BinCategory:  e.BinCategory,
			Points:       e.Points,
			CarbonImpact: e.CarbonImpact,
		}
	}
	return responses
}

// AuthResultToResponse преобразует результат входа в DTO
func AuthResultToResponse(result *service.AuthResult) AuthResponse {
	return AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.Session.ExpiresAt,
		Account:   ModelToAccountResponse(result.Account),
	}
}

// ClassificationToResponse преобразует результат классификации в DTO.
// Categories - варианты ручного выбора на случай неуверенного предсказания.
func ClassificationToResponse(c service.Classification) ClassifyResponse {
	categories := make([]string, len(models.WasteCategories))
	for i, wc := range models.WasteCategories {
		categories[i] = string(wc)
	}
	return ClassifyResponse{
		Label:         c.Label,
		Confidence:    c.Confidence,
		WasteCategory: string(c.WasteCategory),
		BinCategory:   string(c.BinCategory),
		Confident:     c.Confident,
		Categories:    categories,
	}
}

// DTOToThrowRequest преобразует DTO выброса в запрос сервиса
func DTOToThrowRequest(dto ThrowRequest) service.ThrowRequest {
	req := service.ThrowRequest{
		Label:          dto.Label,
		Confidence:     dto.Confidence,
		ManualCategory: dto.ManualCategory,
	}
	if dto.Latitude != nil && dto.Longitude != nil {
		req.Location = &models.Coordinate{Latitude: *dto.Latitude, Longitude: *dto.Longitude}
	}
	return req
}

// ThrowResultToResponse преобразует результат выброса в DTO
func ThrowResultToResponse(result *service.ThrowResult) ThrowResponse {
	deposit := result.Deposit
	distance := distanceMeters(recommender.Suggestion{
		Bin:           deposit.Bin,
		DistanceKm:    deposit.DistanceKm,
		DistanceKnown: deposit.DistanceKnown,
	})
	return ThrowResponse{
		Message:        fmt.Sprintf("Thank you for recycling! Your %s waste went into %s.", result.WasteCategory, deposit.Bin.Location),
		WasteCategory:  string(result.WasteCategory),
		BinCategory:    string(result.BinCategory),
		Source:         result.Source,
		Bin:            ModelToBinResponse(deposit.Bin),
		DistanceMeters: distance,
		PointsEarned:   result.PointsEarned,
		CarbonImpact:   result.CarbonImpact,
		TotalPoints:    result.Account.Points,
	}
}

// ModelToRewardResponse преобразует награду в DTO
func ModelToRewardResponse(r models.Reward) RewardResponse {
	return RewardResponse{
		ID:      r.ID,
		Name:    r.Name,
		Cost:    r.Cost,
		LogoURL: r.LogoURL,
	}
}

// ModelsToRewardResponses преобразует каталог в слайс DTO
func ModelsToRewardResponses(rewards []models.Reward) []RewardResponse {
	responses := make([]RewardResponse, len(rewards))
	for i, r := range rewards {
		responses[i] = ModelToRewardResponse(r)
	}
	return responses
}

// RedeemResultToResponse преобразует результат погашения в DTO
func RedeemResultToResponse(result *service.RedeemResult) RedeemResponse {
	return RedeemResponse{
		Message:         fmt.Sprintf("You redeemed %s!", result.Reward.Name),
		Reward:          ModelToRewardResponse(result.Reward),
		RemainingPoints: result.Account.Points,
	}
}
