package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/waste_sorting_system/internal/models"
	"github.com/shenikar/waste_sorting_system/internal/recommender"
	"github.com/shenikar/waste_sorting_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newTestBinService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestBinService(t *testing.T) (*binService, *mocks.MockBinRepository, *mocks.MockBinNotifier) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockBinRepository(ctrl)
	notifierMock := mocks.NewMockBinNotifier(ctrl)

	service := NewBinService(repoMock, notifierMock, newTestLogger(), nil).(*binService)
	service.increment = func() int { return 3 }
	service.now = func() time.Time { return fixedNow }
	return service, repoMock, notifierMock
}

func testBin(id string, category models.BinCategory, fill int, lat, lon float64) *models.Bin {
	return &models.Bin{
		ID:             id,
		Location:       "Location " + id,
		Category:       category,
		FillPercentage: fill,
		Status:         models.StatusForFill(fill),
		Coordinate:     models.Coordinate{Latitude: lat, Longitude: lon},
	}
}

func TestListBins_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestBinService(t)
	ctx := context.Background()
	cached := []*models.Bin{testBin("a", models.BinRecycling, 10, 3.12, 101.65)}

	// Ожидания
	repoMock.EXPECT().GetBinsFromCache(ctx).Return(cached, nil).Times(1)

	// Действие
	bins, err := service.ListBins(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cached, bins)
}

func TestListBins_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestBinService(t)
	ctx := context.Background()
	stored := []*models.Bin{testBin("a", models.BinRecycling, 10, 3.12, 101.65)}

	// Ожидания
	// 1. Ошибка кеша не прерывает запрос
	repoMock.EXPECT().GetBinsFromCache(ctx).Return(nil, errors.New("redis down")).Times(1)
	// 2. Чтение из БД
	repoMock.EXPECT().List(ctx).Return(stored, nil).Times(1)
	// 3. Запись в кеш
	repoMock.EXPECT().SetBinsCache(ctx, stored).Return(nil).Times(1)

	// Действие
	bins, err := service.ListBins(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, stored, bins)
}

func TestListBins_RepositoryError(t *testing.T) {
	service, repoMock, _ := newTestBinService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetBinsFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().List(ctx).Return(nil, errors.New("db down")).Times(1)

	bins, err := service.ListBins(ctx)

	require.Error(t, err)
	assert.Nil(t, bins)
	assert.ErrorContains(t, err, "could not list bins")
}

func TestGetBin_NotFound(t *testing.T) {
	service, repoMock, _ := newTestBinService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, "missing").Return(nil, models.ErrBinNotFound).Times(1)

	bin, err := service.GetBin(ctx, "missing")

	require.Error(t, err)
	assert.Nil(t, bin)
	assert.ErrorIs(t, err, models.ErrBinNotFound)
}

func TestSuggest_FiltersByCategoryAndWarnsOnOverflow(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestBinService(t)
	ctx := context.Background()
	bins := []*models.Bin{
		testBin("recycling-near", models.BinRecycling, 40, 3.1200, 101.6500),
		testBin("general-full", models.BinGeneral, 85, 3.1200, 101.6500),
		testBin("recycling-far", models.BinRecycling, 40, 3.1300, 101.6600),
		testBin("recycling-empty", models.BinRecycling, 5, 3.1400, 101.6700),
		testBin("recycling-full", models.BinRecycling, 100, 3.1200, 101.6500),
	}
	category := models.BinRecycling
	from := &models.Coordinate{Latitude: 3.1200, Longitude: 101.6500}

	// Ожидания
	repoMock.EXPECT().GetBinsFromCache(ctx).Return(bins, nil).Times(1)

	// Действие
	list, err := service.Suggest(ctx, from, &category)

	// Проверки
	require.NoError(t, err)
	assert.True(t, list.OverflowWarning)
	require.Len(t, list.Suggestions, 3)
	assert.Equal(t, "recycling-empty", list.Suggestions[0].Bin.ID)
	assert.Equal(t, "recycling-near", list.Suggestions[1].Bin.ID)
	assert.Equal(t, "recycling-far", list.Suggestions[2].Bin.ID)
}

func TestSuggest_AllBinsWithoutLocation(t *testing.T) {
	service, repoMock, _ := newTestBinService(t)
	ctx := context.Background()
	bins := []*models.Bin{
		testBin("b", models.BinGeneral, 30, 3.12, 101.65),
		testBin("a", models.BinCompost, 30, 3.13, 101.66),
		testBin("c", models.BinRecycling, 10, 3.14, 101.67),
	}

	repoMock.EXPECT().GetBinsFromCache(ctx).Return(bins, nil).Times(1)

	list, err := service.Suggest(ctx, nil, nil)

	require.NoError(t, err)
	assert.False(t, list.OverflowWarning)
	require.Len(t, list.Suggestions, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{
		list.Suggestions[0].Bin.ID,
		list.Suggestions[1].Bin.ID,
		list.Suggestions[2].Bin.ID,
	})
	assert.False(t, list.Suggestions[0].DistanceKnown)
}

func TestDeposit_Success(t *testing.T) {
	// Подготовка
	service, repoMock, notifierMock := newTestBinService(t)
	ctx := context.Background()
	bins := []*models.Bin{
		testBin("far", models.BinCompost, 48, 3.1300, 101.6600),
		testBin("near", models.BinCompost, 48, 3.1200, 101.6500),
		testBin("other", models.BinRecycling, 0, 3.1200, 101.6500),
	}
	from := &models.Coordinate{Latitude: 3.1200, Longitude: 101.6500}

	// Ожидания
	repoMock.EXPECT().List(ctx).Return(bins, nil).Times(1)
	repoMock.EXPECT().
		UpdateFill(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Bin) error {
			assert.Equal(t, "near", b.ID)
			assert.Equal(t, 51, b.FillPercentage)
			return nil
		}).Times(1)
	repoMock.EXPECT().InvalidateBinsCache(ctx).Return(nil).Times(1)
	notifierMock.EXPECT().NotifyBinUpdated(gomock.Any()).Times(1)

	// Действие
	result, err := service.Deposit(ctx, models.BinCompost, from)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "near", result.Bin.ID)
	assert.Equal(t, 3, result.Increment)
	assert.Equal(t, 51, result.Bin.FillPercentage)
	assert.Equal(t, models.StatusServiceRequired, result.Bin.Status)
	assert.Equal(t, fixedNow, result.Bin.LastUpdated)
	assert.True(t, result.DistanceKnown)
	assert.InDelta(t, 0, result.DistanceKm, 1e-9)
}

func TestDeposit_ClampsAtMaxFill(t *testing.T) {
	service, repoMock, notifierMock := newTestBinService(t)
	ctx := context.Background()
	bins := []*models.Bin{testBin("almost", models.BinGeneral, 99, 3.12, 101.65)}

	repoMock.EXPECT().List(ctx).Return(bins, nil).Times(1)
	repoMock.EXPECT().UpdateFill(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateBinsCache(ctx).Return(nil).Times(1)
	notifierMock.EXPECT().NotifyBinUpdated(gomock.Any()).Times(1)

	result, err := service.Deposit(ctx, models.BinGeneral, nil)

	require.NoError(t, err)
	assert.Equal(t, models.MaxFill, result.Bin.FillPercentage)
	assert.Equal(t, models.StatusFull, result.Bin.Status)
	assert.False(t, result.DistanceKnown)
}

func TestDeposit_NoSuitableBin(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestBinService(t)
	ctx := context.Background()
	bins := []*models.Bin{
		testBin("full", models.BinCompost, 100, 3.12, 101.65),
		testBin("other", models.BinRecycling, 0, 3.12, 101.65),
	}

	// Ожидания
	repoMock.EXPECT().List(ctx).Return(bins, nil).Times(1)
	repoMock.EXPECT().UpdateFill(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.Deposit(ctx, models.BinCompost, nil)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, recommender.ErrNoSuitableBin)
	assert.Equal(t, 100, bins[0].FillPercentage)
}

func TestDeposit_UpdateError(t *testing.T) {
	service, repoMock, _ := newTestBinService(t)
	ctx := context.Background()
	bins := []*models.Bin{testBin("a", models.BinGeneral, 10, 3.12, 101.65)}

	repoMock.EXPECT().List(ctx).Return(bins, nil).Times(1)
	repoMock.EXPECT().UpdateFill(ctx, gomock.Any()).Return(errors.New("db down")).Times(1)

	result, err := service.Deposit(ctx, models.BinGeneral, nil)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "could not update bin")
}

func TestEmptyBin_Success(t *testing.T) {
	service, repoMock, notifierMock := newTestBinService(t)
	ctx := context.Background()
	bin := testBin("a", models.BinRecycling, 92, 3.12, 101.65)

	repoMock.EXPECT().GetByID(ctx, "a").Return(bin, nil).Times(1)
	repoMock.EXPECT().UpdateFill(ctx, bin).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateBinsCache(ctx).Return(nil).Times(1)
	notifierMock.EXPECT().NotifyBinUpdated(bin).Times(1)

	emptied, err := service.EmptyBin(ctx, "a")

	require.NoError(t, err)
	assert.Equal(t, 0, emptied.FillPercentage)
	assert.Equal(t, models.StatusNormal, emptied.Status)
}

func TestEmptyBin_NotFound(t *testing.T) {
	service, repoMock, _ := newTestBinService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, "missing").Return(nil, models.ErrBinNotFound).Times(1)

	bin, err := service.EmptyBin(ctx, "missing")

	require.Error(t, err)
	assert.Nil(t, bin)
	assert.ErrorIs(t, err, models.ErrBinNotFound)
}

func TestRevertDeposit_Success(t *testing.T) {
	// Подготовка
	service, repoMock, notifierMock := newTestBinService(t)
	ctx := context.Background()
	stored := testBin("a", models.BinCompost, 52, 3.12, 101.65)
	deposit := &DepositResult{Bin: testBin("a", models.BinCompost, 52, 3.12, 101.65), Increment: 3}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, "a").Return(stored, nil).Times(1)
	repoMock.EXPECT().UpdateFill(ctx, stored).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateBinsCache(ctx).Return(nil).Times(1)
	notifierMock.EXPECT().NotifyBinUpdated(stored).Times(1)

	// Действие
	err := service.RevertDeposit(ctx, deposit)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 49, stored.FillPercentage)
	assert.Equal(t, models.StatusNormal, stored.Status)
}

func TestRevertDeposit_UpdateError(t *testing.T) {
	service, repoMock, _ := newTestBinService(t)
	ctx := context.Background()
	stored := testBin("a", models.BinCompost, 2, 3.12, 101.65)

	repoMock.EXPECT().GetByID(ctx, "a").Return(stored, nil).Times(1)
	repoMock.EXPECT().UpdateFill(ctx, stored).Return(errors.New("db down")).Times(1)
	repoMock.EXPECT().InvalidateBinsCache(gomock.Any()).Times(0)

	err := service.RevertDeposit(ctx, &DepositResult{Bin: stored, Increment: 3})

	require.Error(t, err)
	assert.Equal(t, 0, stored.FillPercentage)
}
