package entity

import (
	"time"
)

const GuestUserID = "guest"

// Badge identifiers stored on the profile.
const (
	BadgeFirstClassification = "first_classification"
	BadgeTenItems            = "ten_items"
	BadgeFiftyItems          = "fifty_items"
	BadgeSilverTier          = "silver_tier"
	BadgeGoldTier            = "gold_tier"
	BadgeDiamondTier         = "diamond_tier"
)

// UserProfile is the authoritative local record of a user's gamification
// state. Score only ever increases within a session; counters never
// decrement. The per-category counters are not guaranteed to sum to
// ItemsClassified once categories change over the product's lifetime.
type UserProfile struct {
	ID                  string           `json:"id" firestore:"id"`
	DisplayName         string           `json:"displayName" firestore:"displayName"`
	Email               string           `json:"email" firestore:"email"`
	AvatarURL           string           `json:"avatarUrl,omitempty" firestore:"avatarURL,omitempty"`
	Score               int              `json:"score" firestore:"score"`
	CO2Managed          float64          `json:"co2Managed" firestore:"co2Managed"`
	ItemsClassified     int              `json:"itemsClassified" firestore:"itemsClassified"`
	ChallengesCompleted int              `json:"challengesCompleted" firestore:"challengesCompleted"`
	Counters            CategoryCounters `json:"counters" firestore:"counters"`
	Badges              []string         `json:"badges" firestore:"badges"`
	CreatedAt           time.Time        `json:"created_at" firestore:"createdAt"`
	UpdatedAt           time.Time        `json:"updated_at" firestore:"updatedAt"`
}

// IdentityHints are the external identity fields used to reconcile the local
// profile when the authentication state changes.
type IdentityHints struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

func GuestProfile() *UserProfile {
	now := time.Now()
	return &UserProfile{
		ID:          GuestUserID,
		DisplayName: "Guest",
		Badges:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (p *UserProfile) Clone() *UserProfile {
	clone := *p
	clone.Badges = make([]string, len(p.Badges))
	copy(clone.Badges, p.Badges)
	return &clone
}

func (p *UserProfile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// TopCategory returns the category with the highest counter, or "other" when
// nothing has been classified yet.
func (p *UserProfile) TopCategory() WasteCategory {
	top := CategoryOther
	best := 0
	for _, category := range AllCategories {
		if count := p.Counters.Get(category); count > best {
			best = count
			top = category
		}
	}
	return top
}
