package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ledger provides an append-only record of what run_lazy_lookahead did
// during a single run. seek_plan writes no entries to it.
type Ledger struct {
	runID   string
	entries []Entry
	mu      sync.RWMutex
}

// New creates a new ledger for the given run.
func New(runID string) *Ledger {
	return &Ledger{
		runID:   runID,
		entries: make([]Entry, 0),
	}
}

// Append adds an entry to the ledger.
func (l *Ledger) Append(entry Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.RunID = l.runID
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.ID == "" {
		entry.ID = generateEntryID()
	}

	l.entries = append(l.entries, entry)
}

// Entries returns a copy of all entries.
func (l *Ledger) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// EntriesByType returns entries filtered by type.
func (l *Ledger) EntriesByType(entryType EntryType) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var filtered []Entry
	for _, e := range l.entries {
		if e.Type == entryType {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// LastEntry returns the most recent entry, or nil if empty.
func (l *Ledger) LastEntry() *Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.entries) == 0 {
		return nil
	}
	entry := l.entries[len(l.entries)-1]
	return &entry
}

// Count returns the number of entries.
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// RunID returns the associated run ID.
func (l *Ledger) RunID() string {
	return l.runID
}

func generateEntryID() string {
	return uuid.New().String()
}

// RecordRunStarted records the start of a run against the given top-level goal.
func (l *Ledger) RecordRunStarted(goalSummary string) {
	l.Append(NewEntry(EntryRunStarted, l.runID, StatePlanning, PlanDetails{Reason: goalSummary}))
}

// RecordRunSucceeded records that run_lazy_lookahead reached the goal.
func (l *Ledger) RecordRunSucceeded() {
	l.Append(NewEntry(EntryRunSucceeded, l.runID, StateSucceeded, nil))
}

// RecordRunGaveUp records that run_lazy_lookahead exhausted its tries.
func (l *Ledger) RecordRunGaveUp(triesSpent int) {
	l.Append(NewEntry(EntryRunGaveUp, l.runID, StateGaveUp, PlanDetails{
		Reason: fmt.Sprintf("exhausted %d tries", triesSpent),
	}))
}

// RecordRunFailed records that the run ended in an unrecoverable failure.
func (l *Ledger) RecordRunFailed(reason string) {
	l.Append(NewEntry(EntryRunFailed, l.runID, StateFailed, PlanDetails{Reason: reason}))
}

// RecordTransition records an actor lifecycle transition.
func (l *Ledger) RecordTransition(from, to ActorState, reason string) {
	l.Append(NewEntry(EntryStateTransition, l.runID, to, TransitionDetails{
		FromState: from,
		ToState:   to,
		Reason:    reason,
	}))
}

// RecordPlanFound records that seek_plan returned a plan.
func (l *Ledger) RecordPlanFound(state ActorState, stepCount int) {
	l.Append(NewEntry(EntryPlanFound, l.runID, state, PlanDetails{StepCount: stepCount}))
}

// RecordPlanNotFound records that seek_plan exhausted its refinements.
func (l *Ledger) RecordPlanNotFound(state ActorState, reason string) {
	l.Append(NewEntry(EntryPlanNotFound, l.runID, state, PlanDetails{Reason: reason}))
}

// RecordCommandExecuted records a successful command execution.
func (l *Ledger) RecordCommandExecuted(state ActorState, commandName, args string) {
	l.Append(NewEntry(EntryCommandExecuted, l.runID, state, CommandDetails{
		CommandName: commandName,
		Args:        args,
	}))
}

// RecordCommandFailed records a failed command execution.
func (l *Ledger) RecordCommandFailed(state ActorState, commandName, args, errMsg string) {
	l.Append(NewEntry(EntryCommandFailed, l.runID, state, CommandDetails{
		CommandName: commandName,
		Args:        args,
		Error:       errMsg,
	}))
}

// RecordVerifyFailed records that _verify_g or _verify_mg rejected a method's result.
func (l *Ledger) RecordVerifyFailed(methodName, target string) {
	l.Append(NewEntry(EntryVerifyFailed, l.runID, StatePlanning, VerifyDetails{
		MethodName: methodName,
		Target:     target,
	}))
}

// RecordBudgetConsumed records budget consumption.
func (l *Ledger) RecordBudgetConsumed(budgetName string, amount, remaining int) {
	l.Append(NewEntry(EntryBudgetConsumed, l.runID, "", BudgetDetails{
		BudgetName: budgetName,
		Amount:     amount,
		Remaining:  remaining,
	}))
}

// RecordBudgetExhausted records that a tracked budget reached zero.
func (l *Ledger) RecordBudgetExhausted(budgetName string) {
	l.Append(NewEntry(EntryBudgetExhausted, l.runID, "", BudgetDetails{
		BudgetName: budgetName,
		Remaining:  0,
	}))
}
