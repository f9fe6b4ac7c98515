package service

import (
	"math"
	"time"

	"ecosort/internal/domain/entity"
)

// CO2 estimate per awarded point, in kilograms.
const co2PerPoint = 0.1

// ApplyClassification produces the profile that results from one successful
// classification. The input profile is never mutated; callers rely on getting
// a distinct value back. Score and counters only ever increase.
func ApplyClassification(profile *entity.UserProfile, category entity.WasteCategory) *entity.UserProfile {
	updated := profile.Clone()

	points := entity.PointsFor(category)
	updated.Score += points
	updated.CO2Managed = round1(updated.CO2Managed + float64(points)*co2PerPoint)
	updated.ItemsClassified++

	// Exactly one counter moves, and only when the category has a slot.
	// ItemsClassified increments regardless, so the counters are not
	// guaranteed to sum to it.
	updated.Counters.Increment(category)

	awardBadges(updated)
	updated.UpdatedAt = time.Now()

	return updated
}

func awardBadges(profile *entity.UserProfile) {
	award := func(id string) {
		if !profile.HasBadge(id) {
			profile.Badges = append(profile.Badges, id)
		}
	}

	if profile.ItemsClassified >= 1 {
		award(entity.BadgeFirstClassification)
	}
	if profile.ItemsClassified >= 10 {
		award(entity.BadgeTenItems)
	}
	if profile.ItemsClassified >= 50 {
		award(entity.BadgeFiftyItems)
	}
	if profile.Score >= 500 {
		award(entity.BadgeSilverTier)
	}
	if profile.Score >= 1500 {
		award(entity.BadgeGoldTier)
	}
	if profile.Score >= 3000 {
		award(entity.BadgeDiamondTier)
	}
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
