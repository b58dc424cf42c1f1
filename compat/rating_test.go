package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingBands(t *testing.T) {
	assert.Equal(t, "Avoid", Rating(0, false))
	assert.Equal(t, "Avoid", Rating(90, false))
	assert.Equal(t, "Poor Match", Rating(25, true))
	assert.Equal(t, "Poor Match", Rating(49, true))
	assert.Equal(t, "Okay", Rating(50, true))
	assert.Equal(t, "Good", Rating(70, true))
	assert.Equal(t, "Excellent", Rating(85, true))
	assert.Equal(t, "Perfect Match", Rating(95, true))
	assert.Equal(t, "Perfect Match", Rating(100, true))
	assert.Equal(t, "Avoid", Rating(10, true))
}

func TestScoreColorBands(t *testing.T) {
	assert.Equal(t, "red", ScoreColor(90, false))
	assert.Equal(t, "green", ScoreColor(80, true))
	assert.Equal(t, "yellow", ScoreColor(60, true))
	assert.Equal(t, "yellow", ScoreColor(79, true))
	assert.Equal(t, "orange", ScoreColor(59, true))
	assert.Equal(t, "orange", ScoreColor(1, true))
}
