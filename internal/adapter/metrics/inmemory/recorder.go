package inmemory

import (
	"sync"

	"github.com/nathanvsn/BotFarmManager/internal/app/ports"
	"github.com/nathanvsn/BotFarmManager/internal/domain/farm"
)

type Snapshot struct {
	Cycles          uint64            `json:"cycles"`
	TasksByOp       map[string]uint64 `json:"tasks_by_op"`
	ActionSuccess   map[string]uint64 `json:"action_success"`
	ActionFailure   map[string]uint64 `json:"action_failure"`
	SkippedByReason map[string]uint64 `json:"skipped_by_reason"`
	UnitsSold       uint64            `json:"units_sold"`
	Income          float64           `json:"income"`
}

// Recorder accumulates cycle KPIs for the ops endpoint. The cycle goroutine
// writes while the ops server reads snapshots, hence the mutex.
type Recorder struct {
	mu      sync.Mutex
	cycles  uint64
	tasks   map[string]uint64
	success map[string]uint64
	failure map[string]uint64
	skipped map[string]uint64
	sold    uint64
	income  float64
}

func NewRecorder() *Recorder {
	return &Recorder{
		tasks:   map[string]uint64{},
		success: map[string]uint64{},
		failure: map[string]uint64{},
		skipped: map[string]uint64{},
	}
}

func (r *Recorder) RecordCycle() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cycles++
}

func (r *Recorder) RecordTask(op farm.OperationKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[string(op)]++
}

func (r *Recorder) RecordActionSuccess(op farm.OperationKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success[string(op)]++
}

func (r *Recorder) RecordActionFailure(op farm.OperationKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure[string(op)]++
}

func (r *Recorder) RecordSkip(reason ports.SkipReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped[string(reason)]++
}

func (r *Recorder) RecordSale(amountSold int, income float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if amountSold > 0 {
		r.sold += uint64(amountSold)
	}
	r.income += income
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		Cycles:          r.cycles,
		TasksByOp:       make(map[string]uint64, len(r.tasks)),
		ActionSuccess:   make(map[string]uint64, len(r.success)),
		ActionFailure:   make(map[string]uint64, len(r.failure)),
		SkippedByReason: make(map[string]uint64, len(r.skipped)),
		UnitsSold:       r.sold,
		Income:          r.income,
	}
	for k, v := range r.tasks {
		out.TasksByOp[k] = v
	}
	for k, v := range r.success {
		out.ActionSuccess[k] = v
	}
	for k, v := range r.failure {
		out.ActionFailure[k] = v
	}
	for k, v := range r.skipped {
		out.SkippedByReason[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
