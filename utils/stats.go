package utils

import (
	"time"

	"github.com/google/uuid"
)

// Stats for performance monitoring
type Stats struct {
	RunID                string
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	Population           int
	HeldCells            int
}

func NewStats() *Stats {
	return &Stats{
		RunID:     uuid.NewString(),
		StartTime: time.Now(),
	}
}

func (s *Stats) Update(generation, population, held int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	s.HeldCells = held
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
