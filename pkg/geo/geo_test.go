package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine_SamePoint(t *testing.T) {
	assert.InDelta(t, 0.0, Haversine(3.1190, 101.6534, 3.1190, 101.6534), 1e-12)
}

func TestHaversine_OneDegreeOfLatitude(t *testing.T) {
	// Один градус широты ~ 111.19 км при R = 6371
	assert.InDelta(t, 111.19, Haversine(0, 0, 1, 0), 0.01)
}

func TestHaversine_Symmetric(t *testing.T) {
	d1 := Haversine(3.1137182, 101.6529117, 3.1204, 101.6552)
	d2 := Haversine(3.1204, 101.6552, 3.1137182, 101.6529117)
	assert.InDelta(t, d1, d2, 1e-12)
	assert.Greater(t, d1, 0.7)
	assert.Less(t, d1, 0.8)
}
