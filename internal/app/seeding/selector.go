// Package seeding picks what to plant and makes sure enough seed is in stock
// before the planting action fires.
package seeding

import (
	"math"
	"sort"

	"github.com/nathanvsn/BotFarmManager/internal/domain/farm"
)

// Selection is the outcome of choosing a crop for one plot.
type Selection struct {
	CropID       int64   `json:"crop_id"`
	Name         string  `json:"name"`
	Score        float64 `json:"score"`
	MassPerHa    float64 `json:"mass_per_ha"`
	UnitCost     float64 `json:"unit_cost"`
	RequiredMass int     `json:"required_mass"`
	Stock        int     `json:"stock"`
	NeedToBuy    int     `json:"need_to_buy"`
}

// SelectBestSeed returns the highest-scoring crop that is both unlocked and
// affordable on the market right now. Scores are scanned in stable descending
// order, so the server's catalog order breaks ties. The boolean is false when
// no scored crop intersects the filtered catalog — a legitimate "skip this
// plot" outcome, not an error.
func SelectBestSeed(scores []farm.CropScore, catalog []farm.MarketSeed, areaHa float64, stock map[int64]int) (Selection, bool) {
	available := make(map[int64]farm.MarketSeed, len(catalog))
	for _, seed := range catalog {
		if seed.Unlocked && seed.Affordable {
			available[seed.CropID] = seed
		}
	}

	ranked := make([]farm.CropScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	for _, candidate := range ranked {
		seed, ok := available[candidate.CropID]
		if !ok {
			continue
		}
		required := int(math.Ceil(areaHa * seed.MassPerHa))
		inStock := stock[candidate.CropID]
		need := required - inStock
		if need < 0 {
			need = 0
		}
		name := candidate.Name
		if name == "" {
			name = seed.Name
		}
		return Selection{
			CropID:       candidate.CropID,
			Name:         name,
			Score:        candidate.Score,
			MassPerHa:    seed.MassPerHa,
			UnitCost:     seed.UnitCost,
			RequiredMass: required,
			Stock:        inStock,
			NeedToBuy:    need,
		}, true
	}
	return Selection{}, false
}
