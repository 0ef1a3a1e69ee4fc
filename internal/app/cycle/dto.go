package cycle

import (
	"github.com/nathanvsn/BotFarmManager/internal/app/ports"
	"github.com/nathanvsn/BotFarmManager/internal/app/silo"
	"github.com/nathanvsn/BotFarmManager/internal/domain/farm"
)

// Request identifies one poll cycle. CycleID is a short correlation id the
// caller mints for log lines.
type Request struct {
	CycleID string
}

// Report summarizes what one cycle saw and did.
type Report struct {
	CycleID           string                         `json:"cycle_id"`
	Tasks             map[farm.OperationKind]int     `json:"tasks"`
	ActionsDispatched int                            `json:"actions_dispatched"`
	ActionsFailed     int                            `json:"actions_failed"`
	Skipped           map[ports.SkipReason]int       `json:"skipped"`
	FetchErrors       int                            `json:"fetch_errors"`
	Sales             silo.Summary                   `json:"sales"`
}
