package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStats(t *testing.T) {
	stats := NewStats()

	_, err := uuid.Parse(stats.RunID)
	require.NoError(t, err)
	assert.NotEqual(t, stats.RunID, NewStats().RunID)
	assert.False(t, stats.StartTime.IsZero())
}

func TestStatsUpdate(t *testing.T) {
	stats := NewStats()

	stats.Update(1, 10, 15, 500*time.Millisecond)
	assert.Equal(t, 1, stats.TotalGenerations)
	assert.Equal(t, 10, stats.Population)
	assert.Equal(t, 15, stats.HeldCells)
	assert.InDelta(t, 2.0, stats.GenerationsPerSecond, 1e-9)
	assert.InDelta(t, 10.0, stats.AveragePopulation, 1e-9)

	stats.Update(2, 20, 25, 0)
	assert.InDelta(t, 11.0, stats.AveragePopulation, 1e-9)
	assert.InDelta(t, 2.0, stats.GenerationsPerSecond, 1e-9, "zero duration keeps the last rate")
}
