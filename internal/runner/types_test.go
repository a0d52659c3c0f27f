package runner

import (
	"testing"
	"time"

	"github.com/cybertec-postgresql/pgscript/internal/parser"
)

func TestRunStatusString(t *testing.T) {
	cases := map[RunStatus]string{
		RunPending:    "pending",
		RunRunning:    "running",
		RunSucceeded:  "succeeded",
		RunFailed:     "failed",
		RunRefused:    "refused",
		RunStatus(42): "unknown",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("RunStatus(%d).String() = %q, want %q", status, got, want)
		}
	}
}

func TestExitCode(t *testing.T) {
	run := &ScriptRun{Status: RunSucceeded}
	if got := run.ExitCode(); got != 0 {
		t.Errorf("succeeded run: exit code %d, want 0", got)
	}
	for _, status := range []RunStatus{RunFailed, RunRefused, RunPending} {
		run := &ScriptRun{Status: status}
		if got := run.ExitCode(); got != 1 {
			t.Errorf("%v run: exit code %d, want 1", status, got)
		}
	}
}

func TestDurationUsesEndTime(t *testing.T) {
	start := time.Now()
	run := &ScriptRun{StartTime: start, EndTime: start.Add(2 * time.Second)}
	if got := run.Duration(); got != 2*time.Second {
		t.Errorf("Duration() = %v, want 2s", got)
	}
}

func TestSummarize(t *testing.T) {
	start := time.Now()
	run := &ScriptRun{
		StartTime: start,
		EndTime:   start.Add(time.Second),
		Results: []*StatementResult{
			{
				Statement: parser.Statement{Text: "SELECT 1", Kind: parser.StmtQuery},
				Rows:      [][]any{{int64(1)}, {int64(2)}},
			},
			{
				Statement:    parser.Statement{Text: "UPDATE t SET x = 1", Kind: parser.StmtDataChange},
				RowsAffected: 3,
			},
			{
				Statement: parser.Statement{Text: "DROP TABLE t", Kind: parser.StmtSchemaChange},
			},
		},
	}

	summary := Summarize(run)
	if summary.TotalStatements != 3 {
		t.Errorf("TotalStatements = %d, want 3", summary.TotalStatements)
	}
	if summary.Queries != 1 || summary.DataChanges != 1 || summary.SchemaChanges != 1 {
		t.Errorf("kind counts = %d/%d/%d, want 1/1/1",
			summary.Queries, summary.DataChanges, summary.SchemaChanges)
	}
	if summary.RowsReturned != 2 {
		t.Errorf("RowsReturned = %d, want 2", summary.RowsReturned)
	}
	if summary.RowsAffected != 3 {
		t.Errorf("RowsAffected = %d, want 3", summary.RowsAffected)
	}
	if summary.TotalDuration != time.Second {
		t.Errorf("TotalDuration = %v, want 1s", summary.TotalDuration)
	}
}
