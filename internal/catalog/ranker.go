package catalog

import (
	"errors"
	"fmt"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// ErrMalformedProduct marks a stored record that cannot be scored
// because a required field is absent or unusable. Search fails the
// whole request on it rather than silently dropping the record.
var ErrMalformedProduct = errors.New("malformed product")

// Hand-tuned scoring weights. Not configurable.
const (
	titleWeight = 0.45
	descWeight  = 0.25

	ratingFactor = 6

	inStockBoost      = 15
	outOfStockPenalty = 40

	discountDivisor      = 800
	cheapDiscountDivisor = 400

	recencyBoost = 20
)

// cheapWords are the literal substrings that signal price sensitivity.
var cheapWords = []string{"sasta", "cheap", "budget", "low price"}

// Score rates how well p matches query. It is pure and deterministic.
// The value is only meaningful relative to other scores for the same
// query and may be negative.
func Score(query string, p Product) (float64, error) {
	if len(p.missing) > 0 {
		return 0, fmt.Errorf("%w: missing or unusable %s", ErrMalformedProduct, strings.Join(p.missing, ", "))
	}

	q := strings.ToLower(query)

	score := titleWeight * float64(fuzzy.PartialRatio(q, strings.ToLower(p.Title)))
	score += descWeight * float64(fuzzy.PartialRatio(q, strings.ToLower(p.Description)))

	score += p.Rating * ratingFactor

	if p.Stock > 0 {
		score += inStockBoost
	} else {
		score -= outOfStockPenalty
	}

	discount := p.MRP - p.Price
	score += discount / discountDivisor

	if containsAny(q, cheapWords) {
		score += discount / cheapDiscountDivisor
	}

	// The title is checked as stored, not lowercased. "16" and "17"
	// are digit substrings, so case never changes the outcome.
	if strings.Contains(q, "latest") || strings.Contains(q, "new") {
		if strings.Contains(p.Title, "16") || strings.Contains(p.Title, "17") {
			score += recencyBoost
		}
	}

	return score, nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
