package tasks

import "github.com/nathanvsn/BotFarmManager/internal/domain/farm"

// FromSeeding maps plowed plots to seeding tasks under the same group-count
// gate the cultivating view uses.
func FromSeeding(tab farm.SeedingTab) []farm.Task {
	var out []farm.Task
	for _, f := range tab.Farms {
		out = append(out, fromGroup(f.FarmID, f.Groups[farm.PlotPlowed], farm.OpSeeding)...)
	}
	return out
}
