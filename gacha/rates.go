package gacha

import "gacha-backend/models"

// TierRate discloses the odds of one configured tier against a catalog.
type TierRate struct {
	Rarity       int     `json:"rarity"`
	Weight       float64 `json:"weight"`
	Probability  float64 `json:"probability"`
	Count        int     `json:"count"`
	PerCharacter float64 `json:"per_character"`
}

// Rates reports, for every configured tier in ascending order, the tier
// probability and the chance of pulling one specific character of that tier.
func Rates(weights WeightTable, catalog []models.Character) []TierRate {
	groups := Partition(catalog)
	rates := make([]TierRate, 0, len(weights))
	for _, tier := range weights.Tiers() {
		rate := TierRate{
			Rarity:      tier,
			Weight:      weights[tier],
			Probability: weights.Probability(tier),
			Count:       len(groups[tier]),
		}
		if rate.Count > 0 {
			rate.PerCharacter = rate.Probability / float64(rate.Count)
		}
		rates = append(rates, rate)
	}
	return rates
}

// Tally counts drawn characters per rarity.
func Tally(results []models.Character) map[int]int {
	counts := make(map[int]int)
	for _, c := range results {
		counts[c.Rarity]++
	}
	return counts
}
