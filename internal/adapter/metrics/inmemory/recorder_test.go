package inmemory

import (
	"testing"

	"github.com/nathanvsn/BotFarmManager/internal/app/ports"
	"github.com/nathanvsn/BotFarmManager/internal/domain/farm"
)

func TestRecorder_SnapshotCopiesCounters(t *testing.T) {
	r := NewRecorder()
	r.RecordCycle()
	r.RecordTask(farm.OpHarvesting)
	r.RecordTask(farm.OpHarvesting)
	r.RecordActionSuccess(farm.OpHarvesting)
	r.RecordActionFailure(farm.OpSeeding)
	r.RecordSkip(ports.SkipCooldown)
	r.RecordSale(500, 1000)

	snap := r.Snapshot()
	if snap.Cycles != 1 {
		t.Fatalf("cycles=%d", snap.Cycles)
	}
	if snap.TasksByOp["harvesting"] != 2 {
		t.Fatalf("tasks=%v", snap.TasksByOp)
	}
	if snap.ActionSuccess["harvesting"] != 1 || snap.ActionFailure["seeding"] != 1 {
		t.Fatalf("actions=%v/%v", snap.ActionSuccess, snap.ActionFailure)
	}
	if snap.SkippedByReason["cooldown"] != 1 {
		t.Fatalf("skips=%v", snap.SkippedByReason)
	}
	if snap.UnitsSold != 500 || snap.Income != 1000 {
		t.Fatalf("sales=%d/%v", snap.UnitsSold, snap.Income)
	}

	// Mutating the snapshot must not reach the recorder.
	snap.TasksByOp["harvesting"] = 99
	if r.Snapshot().TasksByOp["harvesting"] != 2 {
		t.Fatal("snapshot is not a copy")
	}
}

func TestRecorder_NegativeSaleAmountIgnored(t *testing.T) {
	r := NewRecorder()
	r.RecordSale(-5, 0)
	if snap := r.Snapshot(); snap.UnitsSold != 0 {
		t.Fatalf("expected negative amounts ignored, got %d", snap.UnitsSold)
	}
}
