package farmapi

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/nathanvsn/BotFarmManager/internal/domain/farm"
)

// The tab payloads are the messiest part of the game API: the cultivating and
// seeding views key plot groups by readiness state, the harvest view keys
// them by crop, counters arrive as numbers or numeric strings, and empty
// sections show up as [] instead of {}. gjson path lookups absorb all of
// that: a missing or wrongly-shaped section simply reads as zero values,
// which the normalizer treats as "nothing to do".

func (c *Client) Cultivating(ctx context.Context) (farm.CultivatingTab, error) {
	body, err := c.get(ctx, "/api/fields/cultivating")
	if err != nil {
		return farm.CultivatingTab{}, err
	}
	return parseCultivating(body), nil
}

func (c *Client) Seeding(ctx context.Context) (farm.SeedingTab, error) {
	body, err := c.get(ctx, "/api/fields/seeding")
	if err != nil {
		return farm.SeedingTab{}, err
	}
	return parseSeeding(body), nil
}

func (c *Client) Harvest(ctx context.Context) (farm.HarvestTab, error) {
	body, err := c.get(ctx, "/api/fields/harvest")
	if err != nil {
		return farm.HarvestTab{}, err
	}
	return parseHarvest(body), nil
}

func (c *Client) Silo(ctx context.Context) (farm.SiloSnapshot, error) {
	body, err := c.get(ctx, "/api/silo")
	if err != nil {
		return farm.SiloSnapshot{}, err
	}
	return parseSilo(body), nil
}

func parseCultivating(body []byte) farm.CultivatingTab {
	var tab farm.CultivatingTab
	root := gjson.ParseBytes(body)
	for _, farmNode := range root.Get("farms").Array() {
		fields := farm.FarmFields{
			FarmID: farmNode.Get("id").Int(),
			Groups: map[farm.PlotState]farm.PlotGroup{},
		}
		for _, state := range []farm.PlotState{farm.PlotRaw, farm.PlotCleared} {
			if group, ok := parseGroup(farmNode.Get("fields." + string(state))); ok {
				fields.Groups[state] = group
			}
		}
		tab.Farms = append(tab.Farms, fields)

		for _, tractorNode := range farmNode.Get("tractors.notInUse").Array() {
			tab.IdleTractors = append(tab.IdleTractors, farm.AvailableTractor{
				TractorID: tractorNode.Get("id").Int(),
				FarmID:    farmNode.Get("id").Int(),
				HaPerHour: tractorNode.Get("haPerHour").Float(),
				Op:        farm.OperationKind(tractorNode.Get("operation").String()),
			})
		}
	}
	return tab
}

func parseSeeding(body []byte) farm.SeedingTab {
	var tab farm.SeedingTab
	root := gjson.ParseBytes(body)
	for _, farmNode := range root.Get("farms").Array() {
		fields := farm.FarmFields{
			FarmID: farmNode.Get("id").Int(),
			Groups: map[farm.PlotState]farm.PlotGroup{},
		}
		if group, ok := parseGroup(farmNode.Get("fields.plowed")); ok {
			fields.Groups[farm.PlotPlowed] = group
		}
		tab.Farms = append(tab.Farms, fields)
	}
	if stock := root.Get("seeds.stock"); stock.IsArray() {
		tab.SeedStock = map[int64]int{}
		for _, entry := range stock.Array() {
			tab.SeedStock[entry.Get("cropId").Int()] = int(entry.Get("amount").Int())
		}
	}
	return tab
}

func parseHarvest(body []byte) farm.HarvestTab {
	var tab farm.HarvestTab
	root := gjson.ParseBytes(body)
	for _, farmNode := range root.Get("farms").Array() {
		harvest := farm.FarmHarvest{FarmID: farmNode.Get("id").Int()}
		for _, cropNode := range farmNode.Get("crops").Array() {
			group := farm.HarvestGroup{
				CropTypeID: cropNode.Get("cropId").Int(),
				CanHarvest: int(cropNode.Get("canHarvest").Int()),
			}
			for _, plotNode := range cropNode.Get("plots").Array() {
				group.Plots = append(group.Plots, parsePlot(plotNode))
			}
			harvest.Groups = append(harvest.Groups, group)
		}
		tab.Farms = append(tab.Farms, harvest)
	}
	return tab
}

func parseSilo(body []byte) farm.SiloSnapshot {
	root := gjson.ParseBytes(body)
	snap := farm.SiloSnapshot{
		Capacity:    int(root.Get("capacity").Int()),
		TotalStored: int(root.Get("stored").Int()),
	}
	for _, productNode := range root.Get("products").Array() {
		snap.Products = append(snap.Products, farm.SiloProduct{
			ProductID:   productNode.Get("id").Int(),
			Name:        productNode.Get("name").String(),
			Amount:      int(productNode.Get("amount").Int()),
			PercentFull: productNode.Get("percent").Float(),
		})
	}
	return snap
}

func parseGroup(node gjson.Result) (farm.PlotGroup, bool) {
	if !node.Exists() || !node.IsObject() {
		return farm.PlotGroup{}, false
	}
	group := farm.PlotGroup{CanCultivate: int(node.Get("canCultivate").Int())}
	for _, plotNode := range node.Get("plots").Array() {
		group.Plots = append(group.Plots, parsePlot(plotNode))
	}
	return group, true
}

func parsePlot(node gjson.Result) farm.PlotEntry {
	return farm.PlotEntry{
		PlotTypeID: node.Get("fieldId").Int(),
		PlotID:     node.Get("id").Int(),
		Name:       node.Get("name").String(),
		AreaHa:     node.Get("ha").Float(),
		Complexity: node.Get("complexity").Float(),
		CanHarvest: int(node.Get("canHarvest").Int()),
	}
}
