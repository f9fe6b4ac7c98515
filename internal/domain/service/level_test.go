package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ecosort/internal/domain/entity"
)

func TestLevelForThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{-100, "Bronze"},
		{0, "Bronze"},
		{80, "Bronze"},
		{499, "Bronze"},
		{500, "Silver"},
		{510, "Silver"},
		{1499, "Silver"},
		{1500, "Gold"},
		{2999, "Gold"},
		{3000, "Diamond"},
		{100000, "Diamond"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.score).Name, "score %d", tt.score)
	}
}

func TestLevelForIsMonotonic(t *testing.T) {
	rank := func(name string) int {
		for i, level := range entity.Levels {
			if level.Name == name {
				return i
			}
		}
		return -1
	}

	prev := -1
	for score := -50; score <= 4000; score += 25 {
		current := rank(LevelFor(score).Name)
		assert.GreaterOrEqual(t, current, prev, "tier dropped at score %d", score)
		prev = current
	}
}

func TestProgressTowardScenarios(t *testing.T) {
	bronze := LevelFor(80)
	assert.InDelta(t, 16.0, ProgressToward(80, bronze), 0.0001)

	silver := LevelFor(510)
	assert.InDelta(t, 1.0, ProgressToward(510, silver), 0.0001)

	diamond := LevelFor(5000)
	assert.Equal(t, 100.0, ProgressToward(5000, diamond))
}

func TestProgressTowardIsClamped(t *testing.T) {
	silver := entity.Levels[1]

	// Defensive: a score below the tier's floor reads 0, not negative.
	assert.Equal(t, 0.0, ProgressToward(100, silver))
	assert.Equal(t, 100.0, ProgressToward(99999, silver))

	for score := -100; score <= 5000; score += 50 {
		progress := ProgressToward(score, LevelFor(score))
		assert.GreaterOrEqual(t, progress, 0.0)
		assert.LessOrEqual(t, progress, 100.0)
	}
}

func TestProgressTowardDegenerateRange(t *testing.T) {
	degenerate := entity.LevelInfo{Name: "Flat", MinScore: 100, TargetScore: 100}

	assert.Equal(t, 100.0, ProgressToward(150, degenerate))
	assert.Equal(t, 0.0, ProgressToward(50, degenerate))
}
