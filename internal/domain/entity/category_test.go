package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllCategoriesAreValid(t *testing.T) {
	for _, category := range AllCategories {
		assert.True(t, category.Valid(), "category %s", category)
	}
	assert.False(t, WasteCategory("battery").Valid())
	assert.False(t, WasteCategory("").Valid())
}

func TestPointsForKnownCategories(t *testing.T) {
	assert.Equal(t, 80, PointsFor(CategoryCardboard))
	assert.Equal(t, 30, PointsFor(CategoryGlass))

	for _, category := range AllCategories {
		assert.Greater(t, PointsFor(category), 0, "category %s", category)
	}
}

func TestPointsForUnknownFallsBackToOther(t *testing.T) {
	assert.Equal(t, PointsFor(CategoryOther), PointsFor(WasteCategory("battery")))
}

func TestCountersIncrementExactlyOneSlot(t *testing.T) {
	for _, category := range AllCategories {
		var counters CategoryCounters
		assert.True(t, counters.Increment(category), "category %s", category)

		total := 0
		for _, other := range AllCategories {
			total += counters.Get(other)
		}
		assert.Equal(t, 1, total, "category %s moved more than one counter", category)
		assert.Equal(t, 1, counters.Get(category))
	}
}

func TestCountersIgnoreUnknownCategory(t *testing.T) {
	var counters CategoryCounters
	assert.False(t, counters.Increment(WasteCategory("battery")))

	for _, category := range AllCategories {
		assert.Equal(t, 0, counters.Get(category))
	}
}

func TestTipsExistForEveryCategory(t *testing.T) {
	for _, category := range AllCategories {
		tips := TipsFor(category)
		assert.NotEmpty(t, tips.Definition, "category %s", category)
		assert.NotEmpty(t, tips.Reduce, "category %s", category)
		assert.NotEmpty(t, tips.Reuse, "category %s", category)
		assert.NotEmpty(t, tips.Recycle, "category %s", category)
		assert.NotEmpty(t, tips.Educate, "category %s", category)
		assert.NotEmpty(t, tips.Support, "category %s", category)
	}
}

func TestPrependRecordCapsHistory(t *testing.T) {
	var history []ClassificationRecord
	for i := 0; i < MaxHistory+1; i++ {
		record := NewClassificationRecord("img", ClassificationResult{Category: CategoryGlass, Confidence: 0.9})
		record.ID = recordID(i)
		history = PrependRecord(history, record)
	}

	assert.Len(t, history, MaxHistory)
	// Newest first; the very first record has been evicted.
	assert.Equal(t, recordID(MaxHistory), history[0].ID)
	for _, record := range history {
		assert.NotEqual(t, recordID(0), record.ID)
	}
}

func recordID(i int) string {
	return string(rune('A'+i%26)) + string(rune('0'+i/26))
}
