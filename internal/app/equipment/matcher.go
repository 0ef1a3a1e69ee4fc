// Package equipment resolves a concrete tractor (and optional implement) for
// a plot operation from the plot's equipment descriptor and the idle pool.
package equipment

import "github.com/nathanvsn/BotFarmManager/internal/domain/farm"

// fallbackOrder is the fixed priority scanned when the desired operation
// cannot be equipped.
var fallbackOrder = []farm.OperationKind{
	farm.OpHarvesting,
	farm.OpClearing,
	farm.OpPlowing,
	farm.OpSeeding,
}

// Match is a resolved dispatch target. Op is the operation that actually
// resolved, which may differ from the requested one after fallback.
type Match struct {
	TractorID   int64
	ImplementID int64
	Op          farm.OperationKind
}

// Resolve tries the desired operation first (when given), then the fixed
// fallback order, returning the first operation that yields a usable tractor.
// The boolean is false when nothing in the priority list resolves.
func Resolve(opts farm.EquipmentOptions, idle []farm.AvailableTractor, farmID int64, desired farm.OperationKind) (Match, bool) {
	if desired != "" {
		if m, ok := resolveOp(opts, idle, farmID, desired); ok {
			return m, true
		}
	}
	for _, op := range fallbackOrder {
		if op == desired {
			continue
		}
		if m, ok := resolveOp(opts, idle, farmID, op); ok {
			return m, true
		}
	}
	return Match{}, false
}

func resolveOp(opts farm.EquipmentOptions, idle []farm.AvailableTractor, farmID int64, op farm.OperationKind) (Match, bool) {
	group, ok := opts[op]
	if !ok || group.Available <= 0 || len(group.Units) == 0 {
		return Match{}, false
	}

	// First listed unit wins; the game already orders them.
	unit := group.Units[0]
	if unit.TractorID != 0 {
		return Match{TractorID: unit.TractorID, ImplementID: unit.ImplementID, Op: op}, true
	}
	if unit.ImplementID == 0 {
		return Match{}, false
	}

	// Attachment-based unit: find an idle tractor set up for this operation,
	// preferring the plot's own farm.
	if tractorID, ok := idleTractorFor(idle, op, farmID, true); ok {
		return Match{TractorID: tractorID, ImplementID: unit.ImplementID, Op: op}, true
	}
	if tractorID, ok := idleTractorFor(idle, op, farmID, false); ok {
		return Match{TractorID: tractorID, ImplementID: unit.ImplementID, Op: op}, true
	}
	return Match{}, false
}

func idleTractorFor(idle []farm.AvailableTractor, op farm.OperationKind, farmID int64, sameFarm bool) (int64, bool) {
	for _, tractor := range idle {
		if tractor.Op != op {
			continue
		}
		if sameFarm && tractor.FarmID != farmID {
			continue
		}
		return tractor.TractorID, true
	}
	return 0, false
}
