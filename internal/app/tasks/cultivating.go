package tasks

import "github.com/nathanvsn/BotFarmManager/internal/domain/farm"

// FromCultivating maps raw plots to clearing tasks and cleared plots to
// plowing tasks. A state bucket missing from the payload contributes nothing.
func FromCultivating(tab farm.CultivatingTab) []farm.Task {
	var out []farm.Task
	for _, f := range tab.Farms {
		out = append(out, fromGroup(f.FarmID, f.Groups[farm.PlotRaw], farm.OpClearing)...)
		out = append(out, fromGroup(f.FarmID, f.Groups[farm.PlotCleared], farm.OpPlowing)...)
	}
	return out
}
