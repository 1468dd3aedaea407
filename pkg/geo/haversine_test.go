package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePoint(t *testing.T) {
	d := Distance(50.7564, -1.8931, 50.7564, -1.8931)
	assert.InDelta(t, 0, d, 1e-9)
}

func TestDistance_KnownPoints(t *testing.T) {
	// Лондон -> Париж, около 344 км
	d := Distance(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, 344, d, 5)
}

func TestDistance_Symmetric(t *testing.T) {
	d1 := Distance(50.7564, -1.8931, 50.8918, -1.8931)
	d2 := Distance(50.8918, -1.8931, 50.7564, -1.8931)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistance_OneDegreeLatitude(t *testing.T) {
	// Один градус широты - около 111 км
	d := Distance(50, -1.8931, 51, -1.8931)
	assert.InDelta(t, 111.2, d, 1)
}
