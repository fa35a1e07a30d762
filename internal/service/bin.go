package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/waste_sorting_system/internal/models"
	"github.com/shenikar/waste_sorting_system/internal/recommender"
	"github.com/shenikar/waste_sorting_system/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// SuggestionList - ранжированный список контейнеров для карты
type SuggestionList struct {
	Suggestions []recommender.Suggestion
	// OverflowWarning выставляется, если хотя бы один контейнер заполнен на 80% и более
	OverflowWarning bool
}

// DepositResult - контейнер, выбранный для выброса, после обновления заполненности
type DepositResult struct {
	Bin           *models.Bin
	Increment     int
	DistanceKm    float64
	DistanceKnown bool
}

type binService struct {
	repo      BinRepository
	notifier  BinNotifier
	logger    *logrus.Logger
	metrics   *metrics.Metrics
	increment recommender.IncrementFunc
	now       func() time.Time

	// mu сериализует изменения заполненности, чтобы два выброса не выбрали один контейнер по устаревшим данным
	mu sync.Mutex
}

func NewBinService(repo BinRepository, notifier BinNotifier, logger *logrus.Logger, m *metrics.Metrics) BinService {
	return &binService{
		repo:      repo,
		notifier:  notifier,
		logger:    logger,
		metrics:   m,
		increment: recommender.RandomIncrement,
		now:       time.Now,
	}
}

// ListBins возвращает все контейнеры, сначала пытаясь прочитать кеш
func (s *binService) ListBins(ctx context.Context) ([]*models.Bin, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "bin",
		"method":  "ListBins",
	})

	cached, err := s.repo.GetBinsFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read bins from cache")
	}
	if cached != nil {
		return cached, nil
	}

	bins, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list bins from repository")
		return nil, fmt.Errorf("service: could not list bins: %w", err)
	}

	if err := s.repo.SetBinsCache(ctx, bins); err != nil {
		log.WithError(err).Warn("Failed to cache bins")
	}
	return bins, nil
}

// GetBin возвращает контейнер по ID
func (s *binService) GetBin(ctx context.Context, id string) (*models.Bin, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "bin",
		"method":  "GetBin",
		"bin_id":  id,
	})

	bin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get bin in repository")
		return nil, fmt.Errorf("service: could not get bin: %w", err)
	}
	return bin, nil
}

// Suggest ранжирует контейнеры для карты: все или только доступные контейнеры заданного типа
func (s *binService) Suggest(ctx context.Context, from *models.Coordinate, category *models.BinCategory) (*SuggestionList, error) {
	bins, err := s.ListBins(ctx)
	if err != nil {
		return nil, err
	}

	list := &SuggestionList{}
	for _, b := range bins {
		if b.FillPercentage >= models.OverflowThreshold {
			list.OverflowWarning = true
			break
		}
	}

	candidates := bins
	if category != nil {
		candidates = recommender.Candidates(bins, *category)
	}
	list.Suggestions = recommender.Rank(candidates, from)
	return list, nil
}

// Deposit выбирает контейнер для выброса и увеличивает его заполненность
func (s *binService) Deposit(ctx context.Context, category models.BinCategory, from *models.Coordinate) (*DepositResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "bin",
		"method":       "Deposit",
		"bin_category": category,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	// Кеш не используется: выбор должен опираться на актуальную заполненность
	bins, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list bins from repository")
		return nil, fmt.Errorf("service: could not list bins: %w", err)
	}

	suggestion, err := recommender.Recommend(bins, category, from)
	if err != nil {
		if errors.Is(err, recommender.ErrNoSuitableBin) {
			log.Warn("No bin of the category has spare capacity")
			s.metrics.RecordNoSuitableBin(string(category))
		}
		return nil, fmt.Errorf("service: no available %s bins found or all are full: %w", category, err)
	}

	bin := suggestion.Bin
	increment := s.increment()
	bin.Fill(increment, s.now().UTC())

	if err := s.repo.UpdateFill(ctx, bin); err != nil {
		log.WithError(err).Error("Failed to update bin fill level")
		return nil, fmt.Errorf("service: could not update bin: %w", err)
	}
	s.afterUpdate(ctx, log, bin)

	log.WithFields(logrus.Fields{
		"bin_id":          bin.ID,
		"fill_percentage": bin.FillPercentage,
	}).Info("Waste deposited")

	return &DepositResult{
		Bin:           bin,
		Increment:     increment,
		DistanceKm:    suggestion.DistanceKm,
		DistanceKnown: suggestion.DistanceKnown,
	}, nil
}

// RevertDeposit снимает прирост заполненности, если выброс не удалось засчитать
func (s *binService) RevertDeposit(ctx context.Context, deposit *DepositResult) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "bin",
		"method":  "RevertDeposit",
		"bin_id":  deposit.Bin.ID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	bin, err := s.repo.GetByID(ctx, deposit.Bin.ID)
	if err != nil {
		log.WithError(err).Error("Failed to get bin for revert")
		return fmt.Errorf("service: could not get bin: %w", err)
	}

	bin.Fill(-deposit.Increment, s.now().UTC())
	if err := s.repo.UpdateFill(ctx, bin); err != nil {
		log.WithError(err).Error("Failed to revert bin fill level")
		return fmt.Errorf("service: could not update bin: %w", err)
	}
	s.afterUpdate(ctx, log, bin)

	log.WithField("fill_percentage", bin.FillPercentage).Info("Deposit reverted")
	return nil
}

// EmptyBin обнуляет заполненность контейнера после вывоза
func (s *binService) EmptyBin(ctx context.Context, id string) (*models.Bin, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "bin",
		"method":  "EmptyBin",
		"bin_id":  id,
	})
	log.Info("Emptying bin")

	s.mu.Lock()
	defer s.mu.Unlock()

	bin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to empty a non-existent bin")
		return nil, fmt.Errorf("service: could not get bin: %w", err)
	}

	bin.Empty(s.now().UTC())
	if err := s.repo.UpdateFill(ctx, bin); err != nil {
		log.WithError(err).Error("Failed to update bin fill level")
		return nil, fmt.Errorf("service: could not update bin: %w", err)
	}
	s.afterUpdate(ctx, log, bin)

	log.Info("Bin emptied successfully")
	return bin, nil
}

func (s *binService) afterUpdate(ctx context.Context, log *logrus.Entry, bin *models.Bin) {
	if err := s.repo.InvalidateBinsCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate bins cache")
	}
	s.metrics.SetBinFill(bin.ID, string(bin.Category), bin.FillPercentage)
	if s.notifier != nil {
		s.notifier.NotifyBinUpdated(bin)
	}
}
