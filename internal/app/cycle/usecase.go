// Package cycle runs one full poll cycle: normalize the tabs into tasks,
// resolve seed and equipment per task, dispatch the actions, then manage the
// silo. All work inside a cycle is strictly sequential; the caller guarantees
// at most one cycle is in flight at a time.
package cycle

import (
	"context"
	"log"

	"github.com/nathanvsn/BotFarmManager/internal/app/cooldown"
	"github.com/nathanvsn/BotFarmManager/internal/app/equipment"
	"github.com/nathanvsn/BotFarmManager/internal/app/ports"
	"github.com/nathanvsn/BotFarmManager/internal/app/seeding"
	"github.com/nathanvsn/BotFarmManager/internal/app/silo"
	"github.com/nathanvsn/BotFarmManager/internal/app/tasks"
	"github.com/nathanvsn/BotFarmManager/internal/domain/farm"
)

type UseCase struct {
	Tabs     ports.TabReader
	Plots    ports.PlotReader
	Market   ports.MarketClient
	Actions  ports.ActionDispatcher
	Cooldown *cooldown.Tracker
	Seeder   seeding.UseCase
	Seller   silo.Seller
	Metrics  ports.CycleMetrics

	SiloThresholdPercent float64
}

// Execute never aborts mid-cycle on a failed fetch or action: the failed part
// contributes nothing, gets counted, and fresh state next cycle retries it.
func (u UseCase) Execute(ctx context.Context, req Request) (Report, error) {
	report := Report{
		CycleID: req.CycleID,
		Tasks:   map[farm.OperationKind]int{},
		Skipped: map[ports.SkipReason]int{},
	}
	if u.Metrics != nil {
		u.Metrics.RecordCycle()
	}

	cult, err := u.Tabs.Cultivating(ctx)
	if err != nil {
		report.FetchErrors++
		log.Printf("[cycle %s] cultivating fetch failed: %v", req.CycleID, err)
	}
	seed, err := u.Tabs.Seeding(ctx)
	if err != nil {
		report.FetchErrors++
		log.Printf("[cycle %s] seeding fetch failed: %v", req.CycleID, err)
	}
	harvest, err := u.Tabs.Harvest(ctx)
	if err != nil {
		report.FetchErrors++
		log.Printf("[cycle %s] harvest fetch failed: %v", req.CycleID, err)
	}

	taskList := tasks.FromCultivating(cult)
	taskList = append(taskList, tasks.FromSeeding(seed)...)
	taskList = append(taskList, tasks.FromHarvest(harvest, u.harvestEligible(&report))...)

	for _, task := range taskList {
		report.Tasks[task.Op]++
		if u.Metrics != nil {
			u.Metrics.RecordTask(task.Op)
		}
	}

	catalog := u.catalogOnce(req.CycleID)
	for _, task := range taskList {
		u.runTask(ctx, task, cult.IdleTractors, seed.SeedStock, catalog, &report)
	}

	u.manageSilo(ctx, &report)
	return report, nil
}

func (u UseCase) runTask(ctx context.Context, task farm.Task, idle []farm.AvailableTractor, stock map[int64]int, catalog func(context.Context) ([]farm.MarketSeed, bool), report *Report) {
	detail, err := u.Plots.PlotDetail(ctx, task.FarmID, task.PlotID)
	if err != nil {
		u.skip(report, ports.SkipPlotDetail)
		log.Printf("[cycle %s] plot %d detail fetch failed: %v", report.CycleID, task.PlotID, err)
		return
	}

	match, ok := equipment.Resolve(detail.Equipment, idle, task.FarmID, task.Op)
	if !ok {
		u.skip(report, ports.SkipNoEquipment)
		log.Printf("[cycle %s] plot %d (%s): no equipment for %s", report.CycleID, task.PlotID, task.PlotName, task.Op)
		return
	}
	if match.Op != task.Op {
		log.Printf("[cycle %s] plot %d: %s unavailable, doing %s instead", report.CycleID, task.PlotID, task.Op, match.Op)
	}

	action := farm.FieldAction{
		Op:          match.Op,
		FarmID:      task.FarmID,
		PlotID:      task.PlotID,
		TractorID:   match.TractorID,
		ImplementID: match.ImplementID,
	}

	if match.Op == farm.OpSeeding {
		seeds, ok := catalog(ctx)
		if !ok {
			u.skip(report, ports.SkipNoSeed)
			return
		}
		selection, ready, err := u.Seeder.PrepareForSeeding(ctx, detail.Scores, seeds, task.AreaHa, stock)
		if err != nil {
			u.skip(report, ports.SkipNoSeed)
			log.Printf("[cycle %s] plot %d seed purchase failed: %v", report.CycleID, task.PlotID, err)
			return
		}
		if !ready {
			u.skip(report, ports.SkipNoSeed)
			log.Printf("[cycle %s] plot %d: no suitable seed", report.CycleID, task.PlotID)
			return
		}
		action.CropID = selection.CropID
		log.Printf("[cycle %s] plot %d: planting %s (score %.2f, need %d, buy %d)",
			report.CycleID, task.PlotID, selection.Name, selection.Score, selection.RequiredMass, selection.NeedToBuy)
	}

	result, err := u.Actions.Dispatch(ctx, action)
	if err != nil || !result.OK {
		report.ActionsFailed++
		if u.Metrics != nil {
			u.Metrics.RecordActionFailure(match.Op)
		}
		log.Printf("[cycle %s] %s on plot %d failed: err=%v msg=%q", report.CycleID, match.Op, task.PlotID, err, result.Message)
		return
	}

	report.ActionsDispatched++
	if u.Metrics != nil {
		u.Metrics.RecordActionSuccess(match.Op)
	}
	if match.Op == farm.OpHarvesting {
		// The stamp must land before later steps of this same cycle read it.
		u.Cooldown.RecordHarvest(task.PlotID)
	}
}

func (u UseCase) manageSilo(ctx context.Context, report *Report) {
	snapshot, err := u.Tabs.Silo(ctx)
	if err != nil {
		report.FetchErrors++
		log.Printf("[cycle %s] silo fetch failed: %v", report.CycleID, err)
		return
	}
	over := silo.AboveThreshold(snapshot.Products, u.SiloThresholdPercent)
	if len(over) == 0 {
		return
	}
	outcomes := u.Seller.SellAll(ctx, over)
	report.Sales = silo.Summarize(outcomes)
	if u.Metrics != nil {
		u.Metrics.RecordSale(report.Sales.TotalSold, report.Sales.TotalIncome)
	}
	log.Printf("[cycle %s] sold %d units for %.2f (%d ok, %d failed)",
		report.CycleID, report.Sales.TotalSold, report.Sales.TotalIncome, report.Sales.Succeeded, report.Sales.Failed)
}

func (u UseCase) harvestEligible(report *Report) func(int64) bool {
	if u.Cooldown == nil {
		return nil
	}
	return func(plotID int64) bool {
		if u.Cooldown.CanHarvest(plotID) {
			return true
		}
		u.skip(report, ports.SkipCooldown)
		log.Printf("[cycle %s] plot %d on cooldown for %dm", report.CycleID, plotID, u.Cooldown.MinutesUntilEligible(plotID))
		return false
	}
}

// catalogOnce fetches the seed catalog at most once per cycle, and only when
// a seeding task actually needs it.
func (u UseCase) catalogOnce(cycleID string) func(context.Context) ([]farm.MarketSeed, bool) {
	var (
		fetched bool
		seeds   []farm.MarketSeed
		ok      bool
	)
	return func(ctx context.Context) ([]farm.MarketSeed, bool) {
		if fetched {
			return seeds, ok
		}
		fetched = true
		var err error
		seeds, err = u.Market.SeedCatalog(ctx)
		if err != nil {
			log.Printf("[cycle %s] seed catalog fetch failed: %v", cycleID, err)
			return nil, false
		}
		ok = true
		return seeds, true
	}
}

func (u UseCase) skip(report *Report, reason ports.SkipReason) {
	report.Skipped[reason]++
	u.skipMetric(reason)
}

func (u UseCase) skipMetric(reason ports.SkipReason) {
	if u.Metrics != nil {
		u.Metrics.RecordSkip(reason)
	}
}
