package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/waste_sorting_system/internal/config"
	"github.com/shenikar/waste_sorting_system/internal/models"
	"github.com/shenikar/waste_sorting_system/internal/webhook"
	"github.com/shenikar/waste_sorting_system/pkg/metrics"
	"github.com/sirupsen/logrus"
)

const (
	SourceClassifier = "classifier"
	SourceManual     = "manual"
)

// Classification - результат сопоставления метки классификатора с категориями
type Classification struct {
	Label         string
	Confidence    float64
	WasteCategory models.WasteCategory
	BinCategory   models.BinCategory
	// Confident - уверенность выше порога, предсказание можно использовать без ручного выбора
	Confident bool
}

// ThrowRequest - запрос на выброс отходов.
// ManualCategory используется, только если предсказание классификатора недостаточно уверенное.
type ThrowRequest struct {
	Label          string
	Confidence     float64
	ManualCategory string
	Location       *models.Coordinate
}

// ThrowResult - итог выброса отходов
type ThrowResult struct {
	WasteCategory models.WasteCategory
	BinCategory   models.BinCategory
	Source        string
	Deposit       *DepositResult
	PointsEarned  int
	CarbonImpact  float64
	Account       *models.UserAccount
}

type wasteService struct {
	bins      BinService
	accounts  AccountRepository
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	metrics   *metrics.Metrics
}

func NewWasteService(bins BinService, accounts AccountRepository, publisher webhook.WebhookPublisher, logger *logrus.Logger, cfg *config.Config, m *metrics.Metrics) WasteService {
	return &wasteService{
		bins:      bins,
		accounts:  accounts,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		metrics:   m,
	}
}

// Classify сопоставляет метку классификатора с категорией отходов и типом контейнера
func (s *wasteService) Classify(label string, confidence float64) Classification {
	category := models.MapClassifierLabel(label)
	return Classification{
		Label:         label,
		Confidence:    confidence,
		WasteCategory: category,
		BinCategory:   category.BinCategory(),
		Confident:     label != "" && confidence > s.cfg.ConfidenceThreshold,
	}
}

// Throw выбрасывает отходы в подходящий контейнер и начисляет баллы
func (s *wasteService) Throw(ctx context.Context, session Session, req ThrowRequest) (*ThrowResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "waste",
		"method":   "Throw",
		"username": session.Username,
	})

	category, source, err := s.resolveCategory(req)
	if err != nil {
		log.WithError(err).Warn("Waste category could not be determined")
		return nil, err
	}
	binCategory := category.BinCategory()
	log = log.WithFields(logrus.Fields{
		"waste_category": category,
		"source":         source,
	})

	deposit, err := s.bins.Deposit(ctx, binCategory, req.Location)
	if err != nil {
		log.WithError(err).Warn("Failed to deposit waste")
		return nil, err
	}

	points := s.cfg.PointsPerThrow
	carbon := category.CarbonImpact()
	entry := models.NewHistoryEntry(
		fmt.Sprintf("Threw %s waste", category),
		deposit.Bin.Location,
		string(deposit.Bin.Category),
		points,
		carbon,
	)

	account, err := s.accounts.ApplyEntry(ctx, session.Username, entry)
	if err != nil {
		log.WithError(err).WithField("bin_id", deposit.Bin.ID).Error("Account could not be credited, reverting deposit")
		if revertErr := s.bins.RevertDeposit(ctx, deposit); revertErr != nil {
			log.WithError(revertErr).WithField("bin_id", deposit.Bin.ID).Error("Bin fill stays raised for an uncredited deposit")
		}
		return nil, fmt.Errorf("service: could not credit account: %w", err)
	}
	s.metrics.RecordDeposit(string(binCategory), points, carbon)

	event := webhook.WebhookEvent{
		Type:           webhook.EventWasteDeposited,
		Username:       session.Username,
		BinID:          deposit.Bin.ID,
		BinLocation:    deposit.Bin.Location,
		BinCategory:    string(deposit.Bin.Category),
		WasteCategory:  string(category),
		FillPercentage: deposit.Bin.FillPercentage,
		Points:         points,
		CarbonImpact:   carbon,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish webhook event")
	}

	log.WithFields(logrus.Fields{
		"bin_id": deposit.Bin.ID,
		"points": account.Points,
	}).Info("Waste thrown successfully")

	return &ThrowResult{
		WasteCategory: category,
		BinCategory:   binCategory,
		Source:        source,
		Deposit:       deposit,
		PointsEarned:  points,
		CarbonImpact:  carbon,
		Account:       account,
	}, nil
}

func (s *wasteService) resolveCategory(req ThrowRequest) (models.WasteCategory, string, error) {
	if c := s.Classify(req.Label, req.Confidence); c.Confident {
		return c.WasteCategory, SourceClassifier, nil
	}
	if req.ManualCategory == "" {
		return "", "", ErrWasteTypeRequired
	}
	category, ok := models.ParseWasteCategory(req.ManualCategory)
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidWasteCategory, req.ManualCategory)
	}
	return category, SourceManual, nil
}
