package cycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nathanvsn/BotFarmManager/internal/app/cooldown"
	"github.com/nathanvsn/BotFarmManager/internal/app/ports"
	"github.com/nathanvsn/BotFarmManager/internal/app/seeding"
	"github.com/nathanvsn/BotFarmManager/internal/app/silo"
	"github.com/nathanvsn/BotFarmManager/internal/domain/farm"
)

// fakeGame implements every port the cycle needs, backed by fixture values.
type fakeGame struct {
	cultivating    farm.CultivatingTab
	cultivatingErr error
	seeding        farm.SeedingTab
	harvest        farm.HarvestTab
	harvestErr     error
	siloSnap       farm.SiloSnapshot
	details        map[int64]farm.PlotDetail
	catalog        []farm.MarketSeed
	actionOK       bool

	dispatched []farm.FieldAction
	bought     []int64
	sold       []int64
}

func (g *fakeGame) Cultivating(_ context.Context) (farm.CultivatingTab, error) {
	return g.cultivating, g.cultivatingErr
}

func (g *fakeGame) Seeding(_ context.Context) (farm.SeedingTab, error) {
	return g.seeding, nil
}

func (g *fakeGame) Harvest(_ context.Context) (farm.HarvestTab, error) {
	return g.harvest, g.harvestErr
}

func (g *fakeGame) Silo(_ context.Context) (farm.SiloSnapshot, error) {
	return g.siloSnap, nil
}

func (g *fakeGame) PlotDetail(_ context.Context, _, plotID int64) (farm.PlotDetail, error) {
	detail, ok := g.details[plotID]
	if !ok {
		return farm.PlotDetail{}, errors.New("no such plot")
	}
	return detail, nil
}

func (g *fakeGame) SeedCatalog(_ context.Context) ([]farm.MarketSeed, error) {
	return g.catalog, nil
}

func (g *fakeGame) BuySeed(_ context.Context, cropID int64, _ int) (farm.PurchaseResult, error) {
	g.bought = append(g.bought, cropID)
	return farm.PurchaseResult{OK: true}, nil
}

func (g *fakeGame) SellProduct(_ context.Context, productID int64, _ int) (farm.SellResult, error) {
	g.sold = append(g.sold, productID)
	return farm.SellResult{OK: true, AmountSold: 100, Income: 250}, nil
}

func (g *fakeGame) Dispatch(_ context.Context, action farm.FieldAction) (farm.ActionResult, error) {
	g.dispatched = append(g.dispatched, action)
	return farm.ActionResult{OK: g.actionOK}, nil
}

func harvestReadyGame() *fakeGame {
	return &fakeGame{
		actionOK: true,
		harvest: farm.HarvestTab{
			Farms: []farm.FarmHarvest{{
				FarmID: 7,
				Groups: []farm.HarvestGroup{{
					CropTypeID: 3,
					CanHarvest: 1,
					Plots:      []farm.PlotEntry{{PlotTypeID: 11, PlotID: 101, AreaHa: 2.5, CanHarvest: 1}},
				}},
			}},
		},
		details: map[int64]farm.PlotDetail{
			101: {Equipment: farm.EquipmentOptions{
				farm.OpHarvesting: {Available: 1, Units: []farm.EquipmentUnit{{TractorID: 55}}},
			}},
		},
	}
}

func newUseCase(game *fakeGame, tracker *cooldown.Tracker) UseCase {
	return UseCase{
		Tabs:                 game,
		Plots:                game,
		Market:               game,
		Actions:              game,
		Cooldown:             tracker,
		Seeder:               seeding.UseCase{Market: game},
		Seller:               silo.Seller{Market: game, Sleep: func(time.Duration) {}},
		SiloThresholdPercent: 90,
	}
}

func TestExecute_HarvestSuccessStartsCooldown(t *testing.T) {
	game := harvestReadyGame()
	tracker := cooldown.NewTracker(6 * time.Hour)
	uc := newUseCase(game, tracker)

	report, err := uc.Execute(context.Background(), Request{CycleID: "c1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Tasks[farm.OpHarvesting] != 1 || report.ActionsDispatched != 1 {
		t.Fatalf("expected one dispatched harvest, got %+v", report)
	}
	if game.dispatched[0].Op != farm.OpHarvesting || game.dispatched[0].TractorID != 55 {
		t.Fatalf("unexpected action: %+v", game.dispatched[0])
	}
	if tracker.CanHarvest(101) {
		t.Fatal("expected plot 101 on cooldown after a successful harvest")
	}

	// Same payload next cycle: the plot must be gated out locally even though
	// the server still reports it harvestable.
	report2, _ := uc.Execute(context.Background(), Request{CycleID: "c2"})
	if report2.Tasks[farm.OpHarvesting] != 0 {
		t.Fatalf("expected no harvest tasks while on cooldown, got %+v", report2.Tasks)
	}
	if report2.Skipped[ports.SkipCooldown] != 1 {
		t.Fatalf("expected one cooldown skip, got %+v", report2.Skipped)
	}
	if len(game.dispatched) != 1 {
		t.Fatalf("expected no second dispatch, got %d", len(game.dispatched))
	}
}

func TestExecute_FailedHarvestDoesNotStartCooldown(t *testing.T) {
	game := harvestReadyGame()
	game.actionOK = false
	tracker := cooldown.NewTracker(6 * time.Hour)
	uc := newUseCase(game, tracker)

	report, _ := uc.Execute(context.Background(), Request{CycleID: "c1"})
	if report.ActionsFailed != 1 {
		t.Fatalf("expected one failed action, got %+v", report)
	}
	if !tracker.CanHarvest(101) {
		t.Fatal("a failed harvest must not stamp the cooldown")
	}
}

func TestExecute_SeedingBuysShortfallAndDispatchesCrop(t *testing.T) {
	game := &fakeGame{
		actionOK: true,
		seeding: farm.SeedingTab{
			Farms: []farm.FarmFields{{
				FarmID: 7,
				Groups: map[farm.PlotState]farm.PlotGroup{
					farm.PlotPlowed: {CanCultivate: 1, Plots: []farm.PlotEntry{{PlotTypeID: 13, PlotID: 103, AreaHa: 2.5}}},
				},
			}},
			SeedStock: map[int64]int{1: 30},
		},
		details: map[int64]farm.PlotDetail{
			103: {
				Scores: []farm.CropScore{{CropID: 1, Name: "Wheat", Score: 0.9}},
				Equipment: farm.EquipmentOptions{
					farm.OpSeeding: {Available: 1, Units: []farm.EquipmentUnit{{TractorID: 60, ImplementID: 300}}},
				},
			},
		},
		catalog: []farm.MarketSeed{{CropID: 1, Name: "Wheat", Unlocked: true, Affordable: true, MassPerHa: 40, UnitCost: 2}},
	}
	uc := newUseCase(game, cooldown.NewTracker(6*time.Hour))

	report, _ := uc.Execute(context.Background(), Request{CycleID: "c1"})
	if report.ActionsDispatched != 1 {
		t.Fatalf("expected one dispatch, got %+v", report)
	}
	if len(game.bought) != 1 || game.bought[0] != 1 {
		t.Fatalf("expected one wheat purchase, got %v", game.bought)
	}
	if game.dispatched[0].CropID != 1 || game.dispatched[0].Op != farm.OpSeeding {
		t.Fatalf("expected seeding dispatch with crop 1, got %+v", game.dispatched[0])
	}
}

func TestExecute_NoEquipmentSkipsTask(t *testing.T) {
	game := harvestReadyGame()
	game.details[101] = farm.PlotDetail{Equipment: farm.EquipmentOptions{}}
	uc := newUseCase(game, cooldown.NewTracker(6*time.Hour))

	report, _ := uc.Execute(context.Background(), Request{CycleID: "c1"})
	if report.Skipped[ports.SkipNoEquipment] != 1 || len(game.dispatched) != 0 {
		t.Fatalf("expected a no-equipment skip, got %+v dispatched=%d", report.Skipped, len(game.dispatched))
	}
}

func TestExecute_TabFetchErrorIsCountedNotFatal(t *testing.T) {
	game := harvestReadyGame()
	game.cultivatingErr = errors.New("502")
	uc := newUseCase(game, cooldown.NewTracker(6*time.Hour))

	report, err := uc.Execute(context.Background(), Request{CycleID: "c1"})
	if err != nil {
		t.Fatalf("a failed tab fetch must not fail the cycle: %v", err)
	}
	if report.FetchErrors != 1 {
		t.Fatalf("expected one fetch error, got %d", report.FetchErrors)
	}
	if report.ActionsDispatched != 1 {
		t.Fatalf("expected the harvest view to still run, got %+v", report)
	}
}

func TestExecute_SellsProductsOverThreshold(t *testing.T) {
	game := harvestReadyGame()
	game.harvest = farm.HarvestTab{}
	game.siloSnap = farm.SiloSnapshot{Products: []farm.SiloProduct{
		{ProductID: 1, Name: "Wheat", PercentFull: 92},
		{ProductID: 2, Name: "Corn", PercentFull: 88},
	}}
	uc := newUseCase(game, cooldown.NewTracker(6*time.Hour))

	report, _ := uc.Execute(context.Background(), Request{CycleID: "c1"})
	if len(game.sold) != 1 || game.sold[0] != 1 {
		t.Fatalf("expected only the 92%% product sold, got %v", game.sold)
	}
	if report.Sales.Succeeded != 1 || report.Sales.TotalSold != 100 {
		t.Fatalf("unexpected sales summary: %+v", report.Sales)
	}
}
