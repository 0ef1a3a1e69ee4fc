package ports

import (
	"context"

	"github.com/nathanvsn/BotFarmManager/internal/domain/farm"
)

// TabReader fetches the per-activity views the game exposes. Implementations
// own all transport concerns (timeouts, session headers, decoding).
type TabReader interface {
	Cultivating(ctx context.Context) (farm.CultivatingTab, error)
	Seeding(ctx context.Context) (farm.SeedingTab, error)
	Harvest(ctx context.Context) (farm.HarvestTab, error)
	Silo(ctx context.Context) (farm.SiloSnapshot, error)
}

// PlotReader fetches a single plot's suitability scores and equipment
// descriptor.
type PlotReader interface {
	PlotDetail(ctx context.Context, farmID, plotID int64) (farm.PlotDetail, error)
}

// MarketClient covers the seed catalog and the money-moving calls. A
// non-positive sell amount means "sell the full stock".
type MarketClient interface {
	SeedCatalog(ctx context.Context) ([]farm.MarketSeed, error)
	BuySeed(ctx context.Context, cropID int64, amount int) (farm.PurchaseResult, error)
	SellProduct(ctx context.Context, productID int64, amount int) (farm.SellResult, error)
}

// ActionDispatcher issues a clear/plow/seed/harvest call for a plot and the
// tractor (plus optional implement) resolved for it.
type ActionDispatcher interface {
	Dispatch(ctx context.Context, action farm.FieldAction) (farm.ActionResult, error)
}
