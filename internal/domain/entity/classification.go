package entity

import (
	"strconv"
	"time"
)

const (
	// MaxHistory caps the stored classification history; the oldest entry is
	// evicted once the cap is reached.
	MaxHistory = 50
	// RecentHistory is the display slice mirrored into the UI.
	RecentHistory = 5
)

// ClassificationResult is what the external classifier resolves for an image.
type ClassificationResult struct {
	Category   WasteCategory `json:"category"`
	Confidence float64       `json:"confidence"`
}

// ClassificationRecord is one completed classification event. Records are
// immutable after creation; PointsAwarded is captured at classification time
// and never recomputed.
type ClassificationRecord struct {
	ID            string        `json:"id" firestore:"id"`
	ImageData     string        `json:"imageData" firestore:"imageData"`
	Category      WasteCategory `json:"category" firestore:"category"`
	Confidence    float64       `json:"confidence" firestore:"confidence"`
	Timestamp     int64         `json:"timestamp" firestore:"timestamp"`
	PointsAwarded int           `json:"pointsAwarded" firestore:"pointsAwarded"`
	ImageURL      string        `json:"imageUrl,omitempty" firestore:"imageURL,omitempty"`
}

func NewClassificationRecord(imageData string, result ClassificationResult) ClassificationRecord {
	now := time.Now()
	return ClassificationRecord{
		ID:            strconv.FormatInt(now.UnixNano(), 10),
		ImageData:     imageData,
		Category:      result.Category,
		Confidence:    result.Confidence,
		Timestamp:     now.UnixMilli(),
		PointsAwarded: PointsFor(result.Category),
	}
}

// PrependRecord puts the newest record first and evicts the oldest entries
// beyond MaxHistory.
func PrependRecord(history []ClassificationRecord, record ClassificationRecord) []ClassificationRecord {
	updated := make([]ClassificationRecord, 0, len(history)+1)
	updated = append(updated, record)
	updated = append(updated, history...)
	if len(updated) > MaxHistory {
		updated = updated[:MaxHistory]
	}
	return updated
}
