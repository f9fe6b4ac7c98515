package service

import (
	"ecosort/internal/domain/entity"
)

// LevelFor returns the highest tier whose MinScore does not exceed score.
// Negative or below-threshold scores fall back to the lowest tier.
func LevelFor(score int) entity.LevelInfo {
	for i := len(entity.Levels) - 1; i >= 0; i-- {
		if score >= entity.Levels[i].MinScore {
			return entity.Levels[i]
		}
	}
	return entity.Levels[0]
}

// ProgressToward computes the percentage progress within a tier, clamped to
// [0,100]. The unbounded top tier always reads 100.
func ProgressToward(score int, level entity.LevelInfo) float64 {
	if level.Unbounded {
		return 100
	}

	span := level.TargetScore - level.MinScore
	if span <= 0 {
		if score >= level.MinScore {
			return 100
		}
		return 0
	}

	progress := 100 * float64(score-level.MinScore) / float64(span)
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
