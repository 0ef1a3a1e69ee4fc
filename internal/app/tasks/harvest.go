package tasks

import "github.com/nathanvsn/BotFarmManager/internal/domain/farm"

// FromHarvest emits harvesting tasks from the crop-type-grouped harvest view.
// A group is scanned only when its canHarvest flag is 1, and a plot within a
// scanned group is emitted only when its own flag is also 1. Both checks stay:
// the server reports them separately and they have been observed to disagree.
//
// eligible overlays the local cooldown policy on top of the server's answer;
// a plot the server calls harvestable is still dropped while it reports false.
func FromHarvest(tab farm.HarvestTab, eligible func(plotID int64) bool) []farm.Task {
	var out []farm.Task
	for _, f := range tab.Farms {
		for _, group := range f.Groups {
			if group.CanHarvest != 1 {
				continue
			}
			for _, plot := range group.Plots {
				if plot.CanHarvest != 1 {
					continue
				}
				if eligible != nil && !eligible(plot.PlotID) {
					continue
				}
				out = append(out, taskFor(f.FarmID, plot, farm.OpHarvesting))
			}
		}
	}
	return out
}
