package seeding

import (
	"context"
	"log"

	"github.com/nathanvsn/BotFarmManager/internal/app/ports"
	"github.com/nathanvsn/BotFarmManager/internal/domain/farm"
)

// UseCase wraps seed selection with the purchase needed to cover a shortfall.
type UseCase struct {
	Market ports.MarketClient
}

// EnsureStock buys exactly the shortfall between required and stock. It
// succeeds immediately when there is no shortfall. A purchase the server
// rejects is reported through the boolean, not retried; the error is reserved
// for transport failures.
func (u UseCase) EnsureStock(ctx context.Context, cropID int64, required, stock int) (bool, error) {
	need := required - stock
	if need <= 0 {
		return true, nil
	}
	result, err := u.Market.BuySeed(ctx, cropID, need)
	if err != nil {
		return false, err
	}
	if !result.OK {
		log.Printf("[seed] purchase rejected: crop=%d amount=%d", cropID, need)
		return false, nil
	}
	return true, nil
}

// PrepareForSeeding composes selection and stock-ensure. The boolean is true
// only when a crop was selected and its seed is fully in stock, either
// already or after a successful purchase; otherwise the caller skips the plot
// this cycle and the next cycle starts over from fresh state.
func (u UseCase) PrepareForSeeding(ctx context.Context, scores []farm.CropScore, catalog []farm.MarketSeed, areaHa float64, stock map[int64]int) (Selection, bool, error) {
	selection, ok := SelectBestSeed(scores, catalog, areaHa, stock)
	if !ok {
		return Selection{}, false, nil
	}
	ready, err := u.EnsureStock(ctx, selection.CropID, selection.RequiredMass, selection.Stock)
	if err != nil {
		return Selection{}, false, err
	}
	if !ready {
		return Selection{}, false, nil
	}
	return selection, true, nil
}
