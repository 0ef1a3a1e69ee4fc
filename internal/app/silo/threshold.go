// Package silo decides which stored products are overflowing and sells them.
package silo

import "github.com/nathanvsn/BotFarmManager/internal/domain/farm"

// AboveThreshold returns every product whose fill percent is at or above the
// threshold. The boundary is inclusive: a product sitting exactly on the
// threshold is a sale candidate.
func AboveThreshold(products []farm.SiloProduct, thresholdPercent float64) []farm.SiloProduct {
	out := make([]farm.SiloProduct, 0, len(products))
	for _, product := range products {
		if product.PercentFull >= thresholdPercent {
			out = append(out, product)
		}
	}
	return out
}
