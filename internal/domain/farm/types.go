package farm

// OperationKind classifies what a task asks a tractor to do on a plot.
type OperationKind string

const (
	OpClearing   OperationKind = "clearing"
	OpPlowing    OperationKind = "plowing"
	OpSeeding    OperationKind = "seeding"
	OpHarvesting OperationKind = "harvesting"
)

// PlotState is the readiness bucket the cultivating/seeding tabs group plots by.
type PlotState string

const (
	PlotRaw     PlotState = "raw"
	PlotCleared PlotState = "cleared"
	PlotPlowed  PlotState = "plowed"
)

// Task is one actionable unit of work, recomputed from fresh API data every
// poll cycle and never persisted.
type Task struct {
	Op         OperationKind `json:"op"`
	FarmID     int64         `json:"farm_id"`
	PlotTypeID int64         `json:"plot_type_id"`
	PlotID     int64         `json:"plot_id"`
	AreaHa     float64       `json:"area_ha"`
	Complexity float64       `json:"complexity"`
	PlotName   string        `json:"plot_name"`
}

// PlotEntry is one plot as reported inside a tab group. Complexity 0 means
// the source omitted it. CanHarvest only carries meaning in the harvest view.
type PlotEntry struct {
	PlotTypeID int64   `json:"plot_type_id"`
	PlotID     int64   `json:"plot_id"`
	Name       string  `json:"name"`
	AreaHa     float64 `json:"area_ha"`
	Complexity float64 `json:"complexity"`
	CanHarvest int     `json:"can_harvest"`
}

// PlotGroup is a per-state bucket of plots. CanCultivate is the group-level
// count the server reports; it is authoritative over per-plot flags.
type PlotGroup struct {
	CanCultivate int         `json:"can_cultivate"`
	Plots        []PlotEntry `json:"plots"`
}

// FarmFields is one farm's plot groups keyed by readiness state.
type FarmFields struct {
	FarmID int64                   `json:"farm_id"`
	Groups map[PlotState]PlotGroup `json:"groups"`
}

// CultivatingTab is the deserialized cultivating view: clearing/plowing
// readiness per farm plus the tractors currently reporting "not in use".
type CultivatingTab struct {
	Farms        []FarmFields       `json:"farms"`
	IdleTractors []AvailableTractor `json:"idle_tractors"`
}

// SeedingTab is the deserialized seeding view: plowed plots per farm plus the
// current seed stock by crop id.
type SeedingTab struct {
	Farms     []FarmFields  `json:"farms"`
	SeedStock map[int64]int `json:"seed_stock"`
}

// HarvestGroup is a per-crop-type bucket of plots in the harvest view.
type HarvestGroup struct {
	CropTypeID int64       `json:"crop_type_id"`
	CanHarvest int         `json:"can_harvest"`
	Plots      []PlotEntry `json:"plots"`
}

// FarmHarvest is one farm's harvest groups.
type FarmHarvest struct {
	FarmID int64          `json:"farm_id"`
	Groups []HarvestGroup `json:"groups"`
}

// HarvestTab is the deserialized harvest view.
type HarvestTab struct {
	Farms []FarmHarvest `json:"farms"`
}

// AvailableTractor is a tractor the server reports as idle, derived fresh
// each poll.
type AvailableTractor struct {
	TractorID int64         `json:"tractor_id"`
	FarmID    int64         `json:"farm_id"`
	HaPerHour float64       `json:"ha_per_hour"`
	Op        OperationKind `json:"op"`
}

// CropScore is a per-plot, per-crop suitability rating. Higher is better;
// the server's catalog order breaks ties.
type CropScore struct {
	CropID int64   `json:"crop_id"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
}

// MarketSeed is one crop's current market availability.
type MarketSeed struct {
	CropID     int64   `json:"crop_id"`
	Name       string  `json:"name"`
	Unlocked   bool    `json:"unlocked"`
	Affordable bool    `json:"affordable"`
	MassPerHa  float64 `json:"mass_per_ha"`
	UnitCost   float64 `json:"unit_cost"`
}

// EquipmentUnit is one usable unit for an operation. A zero TractorID means
// the unit is an attachment and the tractor must be resolved from the idle
// pool.
type EquipmentUnit struct {
	TractorID   int64 `json:"tractor_id"`
	ImplementID int64 `json:"implement_id"`
}

// EquipmentGroup is the per-operation slice of a plot's equipment descriptor.
type EquipmentGroup struct {
	Available int             `json:"available"`
	Units     []EquipmentUnit `json:"units"`
}

// EquipmentOptions is a plot's available-equipment descriptor keyed by
// operation.
type EquipmentOptions map[OperationKind]EquipmentGroup

// PlotDetail is the single-plot lookup: suitability scores plus the
// equipment descriptor.
type PlotDetail struct {
	Scores    []CropScore      `json:"scores"`
	Equipment EquipmentOptions `json:"equipment"`
}

// SiloProduct is a read-only snapshot of one stored product.
type SiloProduct struct {
	ProductID   int64   `json:"product_id"`
	Name        string  `json:"name"`
	Amount      int     `json:"amount"`
	PercentFull float64 `json:"percent_full"`
}

// SiloSnapshot is the deserialized silo view.
type SiloSnapshot struct {
	Capacity    int           `json:"capacity"`
	TotalStored int           `json:"total_stored"`
	Products    []SiloProduct `json:"products"`
}

// FieldAction is the payload for a clear/plow/seed/harvest dispatch.
// CropID is only set for seeding; ImplementID only for attachment-based
// operations.
type FieldAction struct {
	Op          OperationKind `json:"op"`
	FarmID      int64         `json:"farm_id"`
	PlotID      int64         `json:"plot_id"`
	TractorID   int64         `json:"tractor_id"`
	ImplementID int64         `json:"implement_id,omitempty"`
	CropID      int64         `json:"crop_id,omitempty"`
}

// ActionResult is the server's verdict on a dispatched field action.
type ActionResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// PurchaseResult is the server's verdict on a seed purchase.
type PurchaseResult struct {
	OK   bool    `json:"ok"`
	Cost float64 `json:"cost"`
}

// SellResult is the server's verdict on a product sale.
type SellResult struct {
	OK         bool    `json:"ok"`
	AmountSold int     `json:"amount_sold"`
	Income     float64 `json:"income"`
	Remaining  int     `json:"remaining"`
}
