// Package promo resolves user-supplied promotion codes and computes
// discounts. A failed lookup is an expected negative outcome, not an error
// condition worth surfacing beyond an "invalid code" message.
package promo

import (
	"errors"
	"strings"
	"time"

	"kazistore/internal/models"
)

var (
	ErrNotFound  = errors.New("promotion not found")
	ErrNotActive = errors.New("promotion is not active")
)

// Find matches a code against the promotion set, case-insensitively. Codes
// are expected to be unique; first match wins.
func Find(code string, promotions []models.Promotion) (models.Promotion, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return models.Promotion{}, ErrNotFound
	}
	for _, p := range promotions {
		if strings.EqualFold(p.Code, trimmed) {
			return p, nil
		}
	}
	return models.Promotion{}, ErrNotFound
}

// FindActive resolves a code and additionally enforces the promotion's date
// window. A matched but expired (or not yet started) code yields
// ErrNotActive so callers can tell the two failures apart.
func FindActive(code string, promotions []models.Promotion, now time.Time) (models.Promotion, error) {
	p, err := Find(code, promotions)
	if err != nil {
		return models.Promotion{}, err
	}
	if !p.ActiveAt(now) {
		return models.Promotion{}, ErrNotActive
	}
	return p, nil
}

// Discount computes the raw discount amount for a subtotal. PERCENT applies
// value as a percentage; FIXED is the value itself. Clamping against the
// subtotal happens in FinalTotal, not here.
func Discount(p models.Promotion, subtotal float64) float64 {
	switch p.Type {
	case models.PromotionPercent:
		return subtotal * p.Value / 100
	case models.PromotionFixed:
		return p.Value
	default:
		return 0
	}
}

// FinalTotal applies a discount to a subtotal, never going below zero.
func FinalTotal(subtotal, discount float64) float64 {
	total := subtotal - discount
	if total < 0 {
		return 0
	}
	return total
}
