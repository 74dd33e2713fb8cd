// Package giftfinder scores catalog products against a child's age, a
// budget and free-text interests. One bounded pass over the input, no
// network; candidates are whatever product page the caller already holds.
package giftfinder

import (
	"sort"
	"strings"

	"github.com/minhtranvn/toystore/internal/model"
)

// Criteria describes what the gift is for.
type Criteria struct {
	Age       int      // child's age in years; 0 means unknown
	Budget    float64  // max price in đồng; 0 means unlimited
	Interests []string // free-text interests matched against name/category/description
	Limit     int      // max suggestions; defaults to DefaultLimit
}

// DefaultLimit bounds the suggestion list when Criteria.Limit is unset.
const DefaultLimit = 5

// Suggestion is a product with its relevance score.
type Suggestion struct {
	Product model.Product
	Score   float64
}

// Scoring weights. Age fit dominates, then budget, then interests.
const (
	ageExactWeight   = 3.0
	ageNearWeight    = 1.0
	budgetFitWeight  = 2.0
	budgetNearWeight = 0.5
	interestWeight   = 2.0
	interestCap      = 4.0
	ratingWeight     = 0.5
	featuredBonus    = 0.5
)

// Suggest ranks products by score, highest first. Out-of-stock products
// and products over ~110% of the budget are excluded. Ties keep the
// input order (the server's sort order is never second-guessed).
func Suggest(products []model.Product, c Criteria) []Suggestion {
	limit := c.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	out := make([]Suggestion, 0, len(products))
	for _, p := range products {
		if !p.InStock() {
			continue
		}
		s, ok := score(p, c)
		if !ok {
			continue
		}
		out = append(out, Suggestion{Product: p, Score: s})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func score(p model.Product, c Criteria) (float64, bool) {
	var s float64

	if c.Age > 0 {
		switch {
		case ageInRange(p, c.Age):
			s += ageExactWeight
		case ageInRange(p, c.Age-1) || ageInRange(p, c.Age+1):
			s += ageNearWeight
		case p.AgeMin == nil && p.AgeMax == nil:
			s += ageNearWeight // no age data, neutral fit
		default:
			return 0, false // labeled for a different age band
		}
	}

	if c.Budget > 0 {
		switch {
		case p.Price <= c.Budget:
			s += budgetFitWeight
		case p.Price <= c.Budget*1.1:
			s += budgetNearWeight
		default:
			return 0, false
		}
	}

	if n := interestMatches(p, c.Interests); n > 0 {
		m := float64(n) * interestWeight
		if m > interestCap {
			m = interestCap
		}
		s += m
	}

	if p.Rating != nil {
		s += *p.Rating * ratingWeight
	}
	if p.Featured {
		s += featuredBonus
	}
	return s, true
}

func ageInRange(p model.Product, age int) bool {
	if age < 0 {
		return false
	}
	if p.AgeMin != nil && age < *p.AgeMin {
		return false
	}
	if p.AgeMax != nil && age > *p.AgeMax {
		return false
	}
	return p.AgeMin != nil || p.AgeMax != nil
}

func interestMatches(p model.Product, interests []string) int {
	if len(interests) == 0 {
		return 0
	}
	hay := strings.ToLower(p.Name)
	if p.Category != nil {
		hay += " " + strings.ToLower(*p.Category)
	}
	if p.Description != nil {
		hay += " " + strings.ToLower(*p.Description)
	}
	n := 0
	for _, it := range interests {
		it = strings.ToLower(strings.TrimSpace(it))
		if it != "" && strings.Contains(hay, it) {
			n++
		}
	}
	return n
}
