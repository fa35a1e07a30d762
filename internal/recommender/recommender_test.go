package recommender

import (
	"testing"
	"time"

	"github.com/shenikar/waste_sorting_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBin(id string, category models.BinCategory, fill int, lat, lon float64) *models.Bin {
	b := &models.Bin{
		ID:         id,
		Category:   category,
		Coordinate: models.Coordinate{Latitude: lat, Longitude: lon},
	}
	b.Fill(fill, time.Now())
	return b
}

func TestRecommend_TieBrokenByDistance(t *testing.T) {
	user := &models.Coordinate{Latitude: 3.1170, Longitude: 101.6520}
	a := newBin("A", models.BinRecycling, 20, 3.1270, 101.6520)
	b := newBin("B", models.BinRecycling, 20, 3.1180, 101.6520)

	got, err := Recommend([]*models.Bin{a, b}, models.BinRecycling, user)

	require.NoError(t, err)
	assert.Equal(t, "B", got.Bin.ID)
	assert.True(t, got.DistanceKnown)
	assert.InDelta(t, 111, got.DistanceMeters(), 1)
}

func TestRecommend_LeastFullWins(t *testing.T) {
	user := &models.Coordinate{Latitude: 3.1170, Longitude: 101.6520}
	near := newBin("near", models.BinGeneral, 70, 3.1171, 101.6520)
	far := newBin("far", models.BinGeneral, 30, 3.2000, 101.7000)

	got, err := Recommend([]*models.Bin{near, far}, models.BinGeneral, user)

	require.NoError(t, err)
	assert.Equal(t, "far", got.Bin.ID)
}

func TestRecommend_NeverSelectsFullBin(t *testing.T) {
	full := newBin("full", models.BinCompost, 100, 0, 0)
	other := newBin("other", models.BinRecycling, 0, 0, 0)

	_, err := Recommend([]*models.Bin{full, other}, models.BinCompost, nil)

	assert.ErrorIs(t, err, ErrNoSuitableBin)
}

func TestRecommend_NoLocationKeepsOrderOnTies(t *testing.T) {
	first := newBin("first", models.BinGeneral, 40, 10, 10)
	second := newBin("second", models.BinGeneral, 40, 0, 0)

	got, err := Recommend([]*models.Bin{first, second}, models.BinGeneral, nil)

	require.NoError(t, err)
	assert.Equal(t, "first", got.Bin.ID)
	assert.False(t, got.DistanceKnown)
}

func TestRank_OrdersByFillThenDistance(t *testing.T) {
	user := &models.Coordinate{Latitude: 0, Longitude: 0}
	bins := []*models.Bin{
		newBin("c", models.BinGeneral, 60, 0, 0.01),
		newBin("a-far", models.BinGeneral, 10, 0, 0.05),
		newBin("a-near", models.BinGeneral, 10, 0, 0.02),
		newBin("b", models.BinRecycling, 30, 0, 0),
	}

	ranked := Rank(bins, user)

	ids := make([]string, len(ranked))
	for i, s := range ranked {
		ids[i] = s.Bin.ID
	}
	assert.Equal(t, []string{"a-near", "a-far", "b", "c"}, ids)
}

func TestRandomIncrement_InRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		inc := RandomIncrement()
		assert.GreaterOrEqual(t, inc, 1)
		assert.LessOrEqual(t, inc, 5)
	}
}
