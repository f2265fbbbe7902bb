package gacha

import (
	"fmt"

	"gacha-backend/models"
)

// DrawResult is the outcome of one pull request. Results may be shorter than
// the requested count when a selected tier has no characters.
type DrawResult struct {
	Results []models.Character `json:"results"`
	Weights WeightTable        `json:"weights"`
}

// Partition groups the catalog by rarity, keeping catalog order within a tier.
func Partition(catalog []models.Character) map[int][]models.Character {
	groups := make(map[int][]models.Character)
	for _, c := range catalog {
		groups[c.Rarity] = append(groups[c.Rarity], c)
	}
	return groups
}

// Draw performs count independent draws with replacement. Each draw picks a
// tier with probability weight/total, then a character uniformly within it.
// A draw landing on a tier with no characters contributes nothing.
func Draw(weights WeightTable, catalog []models.Character, count int, src RandomSource) (DrawResult, error) {
	if count < 0 {
		return DrawResult{}, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if len(catalog) == 0 {
		return DrawResult{}, ErrEmptyCatalog
	}
	if src == nil {
		src = DefaultSource()
	}

	groups := Partition(catalog)
	tiers := weights.Tiers()
	total := weights.Total()

	results := make([]models.Character, 0, count)
	for i := 0; i < count; i++ {
		tier, ok := selectTier(weights, tiers, src.Float64()*total)
		if !ok {
			continue
		}
		members := groups[tier]
		if len(members) == 0 {
			continue
		}
		results = append(results, members[src.IntN(len(members))])
	}

	return DrawResult{Results: results, Weights: weights.Clone()}, nil
}

// selectTier returns the lowest tier whose cumulative weight reaches r.
func selectTier(weights WeightTable, tiers []int, r float64) (int, bool) {
	cumulative := 0.0
	for _, tier := range tiers {
		cumulative += weights[tier]
		if r <= cumulative {
			return tier, true
		}
	}
	return 0, false
}
