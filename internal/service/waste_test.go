package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/waste_sorting_system/internal/config"
	"github.com/shenikar/waste_sorting_system/internal/models"
	"github.com/shenikar/waste_sorting_system/internal/recommender"
	"github.com/shenikar/waste_sorting_system/internal/service/mocks"
	"github.com/shenikar/waste_sorting_system/internal/webhook"
	webhook_mocks "github.com/shenikar/waste_sorting_system/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type wasteTestDeps struct {
	binRepo   *mocks.MockBinRepository
	notifier  *mocks.MockBinNotifier
	accounts  *mocks.MockAccountRepository
	publisher *webhook_mocks.MockWebhookPublisher
}

func newTestWasteService(t *testing.T) (*wasteService, wasteTestDeps) {
	bins, binRepo, notifier := newTestBinService(t)

	ctrl := gomock.NewController(t)
	deps := wasteTestDeps{
		binRepo:   binRepo,
		notifier:  notifier,
		accounts:  mocks.NewMockAccountRepository(ctrl),
		publisher: webhook_mocks.NewMockWebhookPublisher(ctrl),
	}

	cfg := &config.Config{
		ConfidenceThreshold: 0.7,
		PointsPerThrow:      1,
	}

	service := NewWasteService(bins, deps.accounts, deps.publisher, newTestLogger(), cfg, nil).(*wasteService)
	return service, deps
}

// expectDeposit настраивает успешный выброс в единственный контейнер
func (d wasteTestDeps) expectDeposit(ctx context.Context, bin *models.Bin) {
	d.binRepo.EXPECT().List(ctx).Return([]*models.Bin{bin}, nil).Times(1)
	d.binRepo.EXPECT().UpdateFill(ctx, bin).Return(nil).Times(1)
	d.binRepo.EXPECT().InvalidateBinsCache(ctx).Return(nil).Times(1)
	d.notifier.EXPECT().NotifyBinUpdated(bin).Times(1)
}

func TestClassify(t *testing.T) {
	service, _ := newTestWasteService(t)

	testCases := []struct {
		label         string
		confidence    float64
		wantWaste     models.WasteCategory
		wantBin       models.BinCategory
		wantConfident bool
	}{
		{label: "plastic", confidence: 0.92, wantWaste: models.WastePlastic, wantBin: models.BinRecycling, wantConfident: true},
		{label: "Organic", confidence: 0.71, wantWaste: models.WasteFood, wantBin: models.BinCompost, wantConfident: true},
		{label: "metal", confidence: 0.7, wantWaste: models.WasteAluminium, wantBin: models.BinRecycling, wantConfident: false},
		{label: "styrofoam", confidence: 0.99, wantWaste: models.WasteNonRecyclable, wantBin: models.BinGeneral, wantConfident: true},
		{label: "", confidence: 0.99, wantWaste: models.WasteNonRecyclable, wantBin: models.BinGeneral, wantConfident: false},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			c := service.Classify(tc.label, tc.confidence)
			assert.Equal(t, tc.wantWaste, c.WasteCategory)
			assert.Equal(t, tc.wantBin, c.BinCategory)
			assert.Equal(t, tc.wantConfident, c.Confident)
		})
	}
}

func TestThrow_ConfidentPrediction(t *testing.T) {
	// Подготовка
	service, deps := newTestWasteService(t)
	ctx := context.Background()
	session := Session{Username: "alice"}
	bin := testBin("bin-1", models.BinRecycling, 20, 3.12, 101.65)

	// Ожидания
	deps.expectDeposit(ctx, bin)
	deps.accounts.EXPECT().
		ApplyEntry(ctx, "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, entry models.HistoryEntry) (*models.UserAccount, error) {
			assert.Equal(t, "Threw Plastic waste", entry.Action)
			assert.Equal(t, bin.Location, entry.BinLocation)
			assert.Equal(t, "Recycling", entry.BinCategory)
			assert.Equal(t, 1, entry.Points)
			assert.InDelta(t, 1.1, entry.CarbonImpact, 1e-9)
			return &models.UserAccount{Username: "alice", Points: 1, CarbonSaved: 1.1, History: []models.HistoryEntry{entry}}, nil
		}).Times(1)
	deps.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.WebhookEvent) error {
			assert.Equal(t, webhook.EventWasteDeposited, event.Type)
			assert.Equal(t, "bin-1", event.BinID)
			assert.Equal(t, 23, event.FillPercentage)
			return nil
		}).Times(1)

	// Действие
	result, err := service.Throw(ctx, session, ThrowRequest{
		Label:          "plastic",
		Confidence:     0.9,
		ManualCategory: "Glass",
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.WastePlastic, result.WasteCategory)
	assert.Equal(t, SourceClassifier, result.Source)
	assert.Equal(t, 1, result.PointsEarned)
	assert.Equal(t, 23, result.Deposit.Bin.FillPercentage)
	assert.Equal(t, 1, result.Account.Points)
}

func TestThrow_ManualFallback(t *testing.T) {
	service, deps := newTestWasteService(t)
	ctx := context.Background()
	bin := testBin("bin-2", models.BinGeneral, 0, 3.12, 101.65)

	deps.expectDeposit(ctx, bin)
	deps.accounts.EXPECT().
		ApplyEntry(ctx, "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, entry models.HistoryEntry) (*models.UserAccount, error) {
			assert.InDelta(t, -0.5, entry.CarbonImpact, 1e-9)
			return &models.UserAccount{Username: "alice", Points: 1, CarbonSaved: -0.5}, nil
		}).Times(1)
	// Ошибка публикации не влияет на результат
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	result, err := service.Throw(ctx, Session{Username: "alice"}, ThrowRequest{
		Label:          "paper",
		Confidence:     0.4,
		ManualCategory: "non-recyclable",
	})

	require.NoError(t, err)
	assert.Equal(t, models.WasteNonRecyclable, result.WasteCategory)
	assert.Equal(t, models.BinGeneral, result.BinCategory)
	assert.Equal(t, SourceManual, result.Source)
}

func TestThrow_CategoryErrors(t *testing.T) {
	service, deps := newTestWasteService(t)
	ctx := context.Background()

	deps.binRepo.EXPECT().List(gomock.Any()).Times(0)

	_, err := service.Throw(ctx, Session{Username: "alice"}, ThrowRequest{Label: "paper", Confidence: 0.5})
	assert.ErrorIs(t, err, ErrWasteTypeRequired)

	_, err = service.Throw(ctx, Session{Username: "alice"}, ThrowRequest{Label: "paper", Confidence: 0.5, ManualCategory: "Batteries"})
	assert.ErrorIs(t, err, ErrInvalidWasteCategory)
}

func TestThrow_NoSuitableBinLeavesAccountUntouched(t *testing.T) {
	service, deps := newTestWasteService(t)
	ctx := context.Background()
	full := testBin("bin-3", models.BinCompost, 100, 3.12, 101.65)

	deps.binRepo.EXPECT().List(ctx).Return([]*models.Bin{full}, nil).Times(1)
	deps.accounts.EXPECT().ApplyEntry(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	result, err := service.Throw(ctx, Session{Username: "alice"}, ThrowRequest{Label: "organic", Confidence: 0.95})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, recommender.ErrNoSuitableBin)
}

func TestThrow_AccountErrorRevertsDeposit(t *testing.T) {
	// Подготовка
	service, deps := newTestWasteService(t)
	ctx := context.Background()
	bin := testBin("bin-4", models.BinRecycling, 10, 3.12, 101.65)
	stored := testBin("bin-4", models.BinRecycling, 13, 3.12, 101.65)

	// Ожидания
	deps.binRepo.EXPECT().List(ctx).Return([]*models.Bin{bin}, nil).Times(1)
	deps.binRepo.EXPECT().UpdateFill(ctx, bin).Return(nil).Times(1)
	deps.accounts.EXPECT().ApplyEntry(ctx, "ghost", gomock.Any()).Return(nil, models.ErrUserNotFound).Times(1)
	deps.binRepo.EXPECT().GetByID(ctx, "bin-4").Return(stored, nil).Times(1)
	deps.binRepo.EXPECT().UpdateFill(ctx, stored).Return(nil).Times(1)
	deps.binRepo.EXPECT().InvalidateBinsCache(ctx).Return(nil).Times(2)
	deps.notifier.EXPECT().NotifyBinUpdated(gomock.Any()).Times(2)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.Throw(ctx, Session{Username: "ghost"}, ThrowRequest{Label: "glass", Confidence: 0.8})

	// Проверки
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.Equal(t, 10, stored.FillPercentage)
	assert.Equal(t, models.StatusNormal, stored.Status)
}

func TestThrow_AccountErrorWhenRevertFails(t *testing.T) {
	service, deps := newTestWasteService(t)
	ctx := context.Background()
	bin := testBin("bin-5", models.BinRecycling, 0, 3.12, 101.65)

	deps.expectDeposit(ctx, bin)
	deps.accounts.EXPECT().ApplyEntry(ctx, "ghost", gomock.Any()).Return(nil, models.ErrUserNotFound).Times(1)
	deps.binRepo.EXPECT().GetByID(ctx, "bin-5").Return(nil, errors.New("db down")).Times(1)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.Throw(ctx, Session{Username: "ghost"}, ThrowRequest{Label: "glass", Confidence: 0.8})

	// Клиент получает исходную ошибку начисления
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}
