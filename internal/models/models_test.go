package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForFill(t *testing.T) {
	cases := []struct {
		fill int
		want BinStatus
	}{
		{0, StatusNormal},
		{49, StatusNormal},
		{50, StatusServiceRequired},
		{79, StatusServiceRequired},
		{80, StatusFull},
		{100, StatusFull},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusForFill(tc.fill), "fill=%d", tc.fill)
	}

	// Статус детерминирован для всего диапазона
	for f := 0; f <= 100; f++ {
		assert.Equal(t, StatusForFill(f), StatusForFill(f))
	}
}

func TestMapClassifierLabel(t *testing.T) {
	assert.Equal(t, WasteAluminium, MapClassifierLabel("aluminum"))
	assert.Equal(t, WasteAluminium, MapClassifierLabel("Aluminium"))
	assert.Equal(t, WasteAluminium, MapClassifierLabel("METAL"))
	assert.Equal(t, WasteFood, MapClassifierLabel(" Food Waste "))
	assert.Equal(t, WasteFood, MapClassifierLabel("organic"))
	assert.Equal(t, WastePlastic, MapClassifierLabel("Plastic"))
	assert.Equal(t, WasteNonRecyclable, MapClassifierLabel("foo"))
	assert.Equal(t, WasteNonRecyclable, MapClassifierLabel(""))
}

func TestWasteCategory_BinCategory(t *testing.T) {
	assert.Equal(t, BinRecycling, WastePaper.BinCategory())
	assert.Equal(t, BinRecycling, WasteGlass.BinCategory())
	assert.Equal(t, BinCompost, WasteFood.BinCategory())
	assert.Equal(t, BinGeneral, WasteNonRecyclable.BinCategory())
	assert.Equal(t, BinGeneral, WasteCategory("unknown").BinCategory())
}

func TestParseWasteCategory(t *testing.T) {
	c, ok := ParseWasteCategory("food waste")
	require.True(t, ok)
	assert.Equal(t, WasteFood, c)

	_, ok = ParseWasteCategory("metal")
	assert.False(t, ok)
}

func TestBinFill_ClampsAndRecomputesStatus(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	bin := &Bin{FillPercentage: 98, Status: StatusFull}

	bin.Fill(5, now)

	assert.Equal(t, 100, bin.FillPercentage)
	assert.Equal(t, StatusFull, bin.Status)
	assert.Equal(t, now, bin.LastUpdated)
	assert.False(t, bin.Accepts(bin.Category))

	bin.Empty(now)
	assert.Equal(t, 0, bin.FillPercentage)
	assert.Equal(t, StatusNormal, bin.Status)
}

func TestUserAccountApply_HistoryCapped(t *testing.T) {
	account := &UserAccount{Username: "alice"}

	for i := 0; i < 120; i++ {
		require.NoError(t, account.Apply(NewHistoryEntry(fmt.Sprintf("action-%d", i), "", "", 1, 0.5)))
		assert.LessOrEqual(t, len(account.History), HistoryLimit)
	}

	assert.Len(t, account.History, HistoryLimit)
	assert.Equal(t, "action-119", account.History[0].Action)
	assert.Equal(t, "action-70", account.History[HistoryLimit-1].Action)
	assert.Equal(t, 120, account.Points)
	assert.InDelta(t, 60.0, account.CarbonSaved, 1e-9)
}

func TestUserAccountApply_InsufficientPoints(t *testing.T) {
	account := &UserAccount{Username: "bob", Points: 50}

	err := account.Apply(NewHistoryEntry("Redeemed reward", "Tealive Voucher", RewardBinCategory, -75, 0))

	require.ErrorIs(t, err, ErrInsufficientPoints)
	assert.Equal(t, 50, account.Points)
	assert.Empty(t, account.History)

	require.NoError(t, account.Apply(NewHistoryEntry("Redeemed reward", "Voucher", RewardBinCategory, -50, 0)))
	assert.Equal(t, 0, account.Points)
}

func TestDefaultBins_StatusDerivedFromFill(t *testing.T) {
	bins := DefaultBins(time.Now())
	require.Len(t, bins, 9)
	for _, b := range bins {
		assert.Equal(t, StatusForFill(b.FillPercentage), b.Status, b.ID)
	}
}
