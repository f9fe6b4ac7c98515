package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ecosort/internal/domain/entity"
)

func TestApplyClassificationAwardsPointsForCategory(t *testing.T) {
	profile := entity.GuestProfile()
	profile.ID = "user-1"

	updated := ApplyClassification(profile, entity.CategoryCardboard)

	assert.Equal(t, 80, updated.Score)
	assert.Equal(t, 1, updated.ItemsClassified)
	assert.Equal(t, 1, updated.Counters.Cardboard)
	assert.InDelta(t, 8.0, updated.CO2Managed, 0.001)
}

func TestApplyClassificationLeavesOtherCountersUnchanged(t *testing.T) {
	profile := entity.GuestProfile()
	profile.Counters.Glass = 3
	profile.Counters.Paper = 2

	updated := ApplyClassification(profile, entity.CategoryMetal)

	assert.Equal(t, 1, updated.Counters.Metal)
	assert.Equal(t, 3, updated.Counters.Glass)
	assert.Equal(t, 2, updated.Counters.Paper)
	for _, category := range entity.AllCategories {
		if category == entity.CategoryMetal || category == entity.CategoryGlass || category == entity.CategoryPaper {
			continue
		}
		assert.Equal(t, 0, updated.Counters.Get(category), "counter for %s should be untouched", category)
	}
}

func TestApplyClassificationDoesNotMutateInput(t *testing.T) {
	profile := entity.GuestProfile()
	profile.Score = 100
	profile.CO2Managed = 10.0
	profile.ItemsClassified = 2

	updated := ApplyClassification(profile, entity.CategoryGlass)

	assert.NotSame(t, profile, updated)
	assert.Equal(t, 100, profile.Score)
	assert.Equal(t, 2, profile.ItemsClassified)
	assert.Equal(t, 0, profile.Counters.Glass)
	assert.Equal(t, 130, updated.Score)
}

func TestApplyClassificationUnknownCategoryFallsBackToOtherPoints(t *testing.T) {
	profile := entity.GuestProfile()

	updated := ApplyClassification(profile, entity.WasteCategory("battery"))

	// Unknown categories score like "other" but move no counter;
	// ItemsClassified still increments.
	assert.Equal(t, entity.PointsFor(entity.CategoryOther), updated.Score)
	assert.Equal(t, 1, updated.ItemsClassified)
	for _, category := range entity.AllCategories {
		assert.Equal(t, 0, updated.Counters.Get(category))
	}
}

func TestApplyClassificationRoundsCO2ToOneDecimal(t *testing.T) {
	profile := entity.GuestProfile()
	profile.CO2Managed = 1.25

	updated := ApplyClassification(profile, entity.CategoryGlass)

	// 1.25 + 30*0.1 = 4.25 -> 4.3
	assert.InDelta(t, 4.3, updated.CO2Managed, 0.0001)
}

func TestApplyClassificationAwardsBadges(t *testing.T) {
	profile := entity.GuestProfile()

	updated := ApplyClassification(profile, entity.CategoryEwaste)
	assert.True(t, updated.HasBadge(entity.BadgeFirstClassification))
	assert.False(t, updated.HasBadge(entity.BadgeSilverTier))

	updated.Score = 480
	next := ApplyClassification(updated, entity.CategoryGlass)
	assert.Equal(t, 510, next.Score)
	assert.True(t, next.HasBadge(entity.BadgeSilverTier))
}

func TestApplyClassificationBadgesAreNotDuplicated(t *testing.T) {
	profile := entity.GuestProfile()

	updated := ApplyClassification(profile, entity.CategoryGlass)
	updated = ApplyClassification(updated, entity.CategoryGlass)

	seen := 0
	for _, badge := range updated.Badges {
		if badge == entity.BadgeFirstClassification {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}
