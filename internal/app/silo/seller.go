package silo

import (
	"context"
	"log"
	"time"

	"github.com/nathanvsn/BotFarmManager/internal/app/ports"
	"github.com/nathanvsn/BotFarmManager/internal/domain/farm"
)

// SellOutcome is the per-product result of one full-stock sell call.
type SellOutcome struct {
	ProductID  int64   `json:"product_id"`
	Name       string  `json:"name"`
	OK         bool    `json:"ok"`
	AmountSold int     `json:"amount_sold"`
	Income     float64 `json:"income"`
	Remaining  int     `json:"remaining"`
	Err        error   `json:"-"`
}

// Summary folds a list of outcomes. Mass and income count successes only;
// the counters classify every outcome.
type Summary struct {
	TotalSold   int     `json:"total_sold"`
	TotalIncome float64 `json:"total_income"`
	Succeeded   int     `json:"succeeded"`
	Failed      int     `json:"failed"`
}

// Seller issues full-stock sells one product at a time. Delay separates
// successive calls so the game's rate limit is respected; Sleep is injectable
// so tests and simulated sessions do not wait.
type Seller struct {
	Market ports.MarketClient
	Delay  time.Duration
	Sleep  func(time.Duration)
}

// SellAll sells the full stock of each product sequentially, never in
// parallel. A rejected or failed sell is captured in its outcome and the
// remaining products still get their turn.
func (s Seller) SellAll(ctx context.Context, products []farm.SiloProduct) []SellOutcome {
	sleep := s.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	out := make([]SellOutcome, 0, len(products))
	for i, product := range products {
		if i > 0 && s.Delay > 0 {
			sleep(s.Delay)
		}
		outcome := SellOutcome{ProductID: product.ProductID, Name: product.Name}
		result, err := s.Market.SellProduct(ctx, product.ProductID, 0)
		if err != nil {
			outcome.Err = err
			log.Printf("[silo] sell failed: product=%d err=%v", product.ProductID, err)
		} else {
			outcome.OK = result.OK
			outcome.AmountSold = result.AmountSold
			outcome.Income = result.Income
			outcome.Remaining = result.Remaining
		}
		out = append(out, outcome)
	}
	return out
}

// Summarize totals the outcomes of one cycle's sales.
func Summarize(results []SellOutcome) Summary {
	var summary Summary
	for _, r := range results {
		if r.OK {
			summary.Succeeded++
			summary.TotalSold += r.AmountSold
			summary.TotalIncome += r.Income
			continue
		}
		summary.Failed++
	}
	return summary
}
