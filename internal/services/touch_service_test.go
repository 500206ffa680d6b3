package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTouchRecord_LegacyKeys(t *testing.T) {
	record := map[string]interface{}{
		"id":                    "t1",
		"ai_summery":            "старое написание",
		"motivation_score":      85,
		"meets_creteria_rating": 70,
	}

	normalized := normalizeTouchRecord(record)

	assert.Equal(t, "старое написание", normalized["ai_summary"])
	assert.Equal(t, 85, normalized["motivation_rating"])
	assert.Equal(t, 70, normalized["meets_criteria_rating"])

	// Унаследованные ключи остаются в записи
	assert.Equal(t, "старое написание", normalized["ai_summery"])
	assert.Equal(t, 85, normalized["motivation_score"])
}

func TestNormalizeTouchRecord_AlternateLegacyKeys(t *testing.T) {
	record := map[string]interface{}{
		"motivation":     "60",
		"meets_criteria": "55",
	}

	normalized := normalizeTouchRecord(record)

	assert.Equal(t, 60, normalized["motivation_rating"])
	assert.Equal(t, 55, normalized["meets_criteria_rating"])
}

func TestNormalizeTouchRecord_CanonicalWins(t *testing.T) {
	record := map[string]interface{}{
		"ai_summary":        "каноническое",
		"ai_summery":        "устаревшее",
		"motivation_rating": 90,
		"motivation_score":  10,
	}

	normalized := normalizeTouchRecord(record)

	assert.Equal(t, "каноническое", normalized["ai_summary"])
	assert.Equal(t, 90, normalized["motivation_rating"])
}

func TestNormalizeTouchRecord_RatingCoercion(t *testing.T) {
	record := map[string]interface{}{
		"motivation_rating":     "75",
		"meets_criteria_rating": float64(82),
	}

	normalized := normalizeTouchRecord(record)

	assert.Equal(t, 75, normalized["motivation_rating"])
	assert.Equal(t, 82, normalized["meets_criteria_rating"])
}

func TestNormalizeTouchRecord_UnparsableRatingKept(t *testing.T) {
	record := map[string]interface{}{
		"motivation_rating":     "высокая",
		"meets_criteria_rating": nil,
	}

	normalized := normalizeTouchRecord(record)

	// Неприводимое значение остается как было
	assert.Equal(t, "высокая", normalized["motivation_rating"])
	assert.Nil(t, normalized["meets_criteria_rating"])
}
