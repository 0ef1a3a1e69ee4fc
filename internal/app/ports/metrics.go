package ports

import "github.com/nathanvsn/BotFarmManager/internal/domain/farm"

// SkipReason classifies why a task was dropped for the current cycle.
type SkipReason string

const (
	SkipCooldown    SkipReason = "cooldown"
	SkipNoSeed      SkipReason = "no_seed"
	SkipNoEquipment SkipReason = "no_equipment"
	SkipPlotDetail  SkipReason = "plot_detail"
)

// CycleMetrics records per-cycle KPIs. Implementations must be safe for use
// from the cycle goroutine while an ops endpoint reads snapshots.
type CycleMetrics interface {
	RecordCycle()
	RecordTask(op farm.OperationKind)
	RecordActionSuccess(op farm.OperationKind)
	RecordActionFailure(op farm.OperationKind)
	RecordSkip(reason SkipReason)
	RecordSale(amountSold int, income float64)
}
