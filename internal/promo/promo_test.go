package promo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kazistore/internal/models"
)

func storePercent(code string, value float64) models.Promotion {
	return models.Promotion{
		Code:       code,
		Type:       models.PromotionPercent,
		Value:      value,
		TargetType: models.TargetStore,
	}
}

func TestFindIsCaseInsensitive(t *testing.T) {
	promos := []models.Promotion{storePercent("SALE20", 20)}

	p, err := Find("sale20", promos)
	require.NoError(t, err)
	assert.Equal(t, "SALE20", p.Code)
}

func TestFindTrimsInput(t *testing.T) {
	promos := []models.Promotion{storePercent("WELCOME24", 10)}

	_, err := Find("  welcome24 ", promos)
	assert.NoError(t, err)
}

func TestFindUnknownCode(t *testing.T) {
	promos := []models.Promotion{storePercent("WELCOME24", 10)}

	_, err := Find("NOPE", promos)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Find("", promos)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindActiveEnforcesDateWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	expired := storePercent("OLD10", 10)
	expired.StartDate = now.AddDate(-1, 0, 0)
	expired.EndDate = now.AddDate(0, -1, 0)

	upcoming := storePercent("SOON10", 10)
	upcoming.StartDate = now.AddDate(0, 1, 0)

	open := storePercent("OPEN10", 10) // zero dates: unbounded window

	_, err := FindActive("OLD10", []models.Promotion{expired}, now)
	assert.ErrorIs(t, err, ErrNotActive)

	_, err = FindActive("SOON10", []models.Promotion{upcoming}, now)
	assert.ErrorIs(t, err, ErrNotActive)

	_, err = FindActive("OPEN10", []models.Promotion{open}, now)
	assert.NoError(t, err)
}

func TestDiscountPercent(t *testing.T) {
	p := storePercent("WELCOME24", 10)
	assert.Equal(t, 20.0, Discount(p, 200))
}

func TestDiscountFixed(t *testing.T) {
	p := models.Promotion{Code: "FLAT50", Type: models.PromotionFixed, Value: 50}
	assert.Equal(t, 50.0, Discount(p, 200))
}

func TestFinalTotalNeverNegative(t *testing.T) {
	// FIXED discount larger than the subtotal clamps to zero, not -50.
	p := models.Promotion{Code: "BIG", Type: models.PromotionFixed, Value: 100}
	discount := Discount(p, 50)

	assert.Equal(t, 0.0, FinalTotal(50, discount))
	assert.Equal(t, 180.0, FinalTotal(200, 20))
}
