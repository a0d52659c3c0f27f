package runner

import (
	"time"

	"github.com/cybertec-postgresql/pgscript/internal/parser"
)

// ScriptRun represents a single script execution
type ScriptRun struct {
	ID        string // Unique run identifier
	Script    string // Original script text
	StartTime time.Time
	EndTime   time.Time
	Status    RunStatus
	Error     error              // Non-nil if the run failed or was refused
	Results   []*StatementResult // One entry per executed statement, in order
}

// RunStatus represents the current state of a script execution
type RunStatus int

const (
	RunPending RunStatus = iota
	RunRunning
	RunSucceeded
	RunFailed
	RunRefused // Script contained an unsupported statement; nothing executed
)

// String returns a string representation of RunStatus
func (rs RunStatus) String() string {
	switch rs {
	case RunPending:
		return "pending"
	case RunRunning:
		return "running"
	case RunSucceeded:
		return "succeeded"
	case RunFailed:
		return "failed"
	case RunRefused:
		return "refused"
	default:
		return "unknown"
	}
}

// StatementResult holds the outcome of one statement
type StatementResult struct {
	Statement    parser.Statement
	Columns      []string      // Result columns (queries only)
	Rows         [][]any       // Materialized rows (queries only)
	RowsAffected int64         // Affected row count (data changes only)
	Duration     time.Duration // Server round-trip time for this statement
	Err          error         // Non-nil if this statement failed
}

// Duration returns the script execution duration
func (sr *ScriptRun) Duration() time.Duration {
	if sr.EndTime.IsZero() {
		return time.Since(sr.StartTime)
	}
	return sr.EndTime.Sub(sr.StartTime)
}

// ExitCode returns the appropriate exit code for the run result
func (sr *ScriptRun) ExitCode() int {
	if sr.Status == RunSucceeded {
		return 0
	}
	return 1
}

// RunSummary summarizes a script execution
type RunSummary struct {
	TotalStatements int
	Queries         int
	DataChanges     int
	SchemaChanges   int
	RowsReturned    int
	RowsAffected    int64
	TotalDuration   time.Duration
}

// Summarize aggregates per-statement results for display
func Summarize(run *ScriptRun) *RunSummary {
	summary := &RunSummary{
		TotalStatements: len(run.Results),
		TotalDuration:   run.Duration(),
	}

	for _, result := range run.Results {
		switch result.Statement.Kind {
		case parser.StmtQuery:
			summary.Queries++
			summary.RowsReturned += len(result.Rows)
		case parser.StmtDataChange:
			summary.DataChanges++
			summary.RowsAffected += result.RowsAffected
		case parser.StmtSchemaChange:
			summary.SchemaChanges++
		}
	}

	return summary
}
