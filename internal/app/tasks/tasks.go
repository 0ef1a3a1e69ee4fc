// Package tasks turns the game's tab payloads into a flat, ordered list of
// actionable work. Each view has its own normalizer; all of them emit
// farm.Task so the cycle never cares which tab a task came from.
package tasks

import "github.com/nathanvsn/BotFarmManager/internal/domain/farm"

const defaultComplexity = 1

func fromGroup(farmID int64, group farm.PlotGroup, op farm.OperationKind) []farm.Task {
	if group.CanCultivate <= 0 {
		// The group counter is authoritative: a zero count means the server
		// will reject the action no matter what the per-plot rows claim.
		return nil
	}
	out := make([]farm.Task, 0, len(group.Plots))
	for _, plot := range group.Plots {
		out = append(out, taskFor(farmID, plot, op))
	}
	return out
}

func taskFor(farmID int64, plot farm.PlotEntry, op farm.OperationKind) farm.Task {
	complexity := plot.Complexity
	if complexity <= 0 {
		complexity = defaultComplexity
	}
	return farm.Task{
		Op:         op,
		FarmID:     farmID,
		PlotTypeID: plot.PlotTypeID,
		PlotID:     plot.PlotID,
		AreaHa:     plot.AreaHa,
		Complexity: complexity,
		PlotName:   plot.Name,
	}
}
