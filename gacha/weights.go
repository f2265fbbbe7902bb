package gacha

import (
	"fmt"
	"math"
	"sort"
)

// WeightTable maps a rarity tier to its relative draw weight. Weights do not
// have to sum to anything in particular; selection normalizes against the sum
// of every configured tier.
type WeightTable map[int]float64

// DefaultWeights is the 1-indexed six tier table served when no weight file
// is configured.
func DefaultWeights() WeightTable {
	return WeightTable{
		1: 40,
		2: 30,
		3: 15,
		4: 10,
		5: 4,
		6: 1,
	}
}

// Tiers returns the configured tiers in ascending order.
func (w WeightTable) Tiers() []int {
	tiers := make([]int, 0, len(w))
	for tier := range w {
		tiers = append(tiers, tier)
	}
	sort.Ints(tiers)
	return tiers
}

// Total sums the configured weights walking tiers in ascending order, the
// same order Draw accumulates them in.
func (w WeightTable) Total() float64 {
	total := 0.0
	for _, tier := range w.Tiers() {
		total += w[tier]
	}
	return total
}

// Probability is the chance a single draw selects tier.
func (w WeightTable) Probability(tier int) float64 {
	weight, ok := w[tier]
	if !ok {
		return 0
	}
	return weight / w.Total()
}

func (w WeightTable) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("%w: no tiers configured", ErrInvalidWeights)
	}
	for tier, weight := range w {
		if tier < 0 {
			return fmt.Errorf("%w: tier %d is negative", ErrInvalidWeights, tier)
		}
		if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
			return fmt.Errorf("%w: tier %d has weight %v", ErrInvalidWeights, tier, weight)
		}
	}
	return nil
}

// Clone returns a copy safe to hand to callers.
func (w WeightTable) Clone() WeightTable {
	out := make(WeightTable, len(w))
	for tier, weight := range w {
		out[tier] = weight
	}
	return out
}
