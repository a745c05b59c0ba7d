// Package rename is the rename-plan engine.
//
// It turns a snapshot and its user-edited counterpart into a validated
// mapping (mapping.go), orders the mapping into a conflict-free step
// sequence that breaks rename cycles with temporary names (plan.go),
// and executes the steps with per-step precondition checks plus a
// whole-snapshot staleness check (executor.go). A successful run can
// be recorded to a log file for the user (journal.go).
//
// The engine performs no filesystem I/O during validation, probes but
// never mutates during planning, and mutates only during execution.
// There is no rollback: a run that halts mid-way leaves earlier
// renames in place, which is why validation and planning are strict.
package rename
