package runner

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/cybertec-postgresql/pgscript/internal/database"
	"github.com/cybertec-postgresql/pgscript/internal/errors"
	"github.com/cybertec-postgresql/pgscript/internal/logger"
	"github.com/cybertec-postgresql/pgscript/internal/parser"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Executor routes each script statement to the transaction mode its kind
// requires: queries run in single-use read-only transactions behind a row
// cap, data changes each get their own read/write transaction, and schema
// changes are submitted directly and awaited.
type Executor struct {
	pool     *database.Pool
	timeout  time.Duration
	rowLimit int64
}

// NewExecutor creates a new script executor
func NewExecutor(pool *database.Pool, timeout time.Duration, rowLimit int64) *Executor {
	return &Executor{
		pool:     pool,
		timeout:  timeout,
		rowLimit: rowLimit,
	}
}

// ExecuteScript splits and classifies the script, refuses it when any
// statement is unrecognized, and otherwise executes the statements in
// order, stopping at the first failure. The returned ScriptRun is always
// non-nil and carries per-statement results for whatever did execute.
func (e *Executor) ExecuteScript(ctx context.Context, script string) (*ScriptRun, error) {
	run := &ScriptRun{
		ID:        uuid.NewString(),
		Script:    script,
		StartTime: time.Now(),
		Status:    RunPending,
	}

	statements := parser.Parse(script)
	logger.Debug("run %s: %d statement(s)", run.ID, len(statements))

	// A single unrecognized statement refuses the whole script before
	// anything executes.
	for _, stmt := range statements {
		if stmt.Kind == parser.StmtUnspecified {
			run.Status = RunRefused
			run.Error = errors.NewUnsupportedStatementError(stmt.Text)
			run.EndTime = time.Now()
			return run, run.Error
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	run.Status = RunRunning
	for _, stmt := range statements {
		result := e.executeStatement(runCtx, stmt)
		run.Results = append(run.Results, result)
		if result.Err != nil {
			run.Status = RunFailed
			run.Error = result.Err
			run.EndTime = time.Now()
			return run, result.Err
		}
	}

	run.Status = RunSucceeded
	run.EndTime = time.Now()
	return run, nil
}

// executeStatement dispatches one classified statement to its transaction
// strategy and records the outcome.
func (e *Executor) executeStatement(ctx context.Context, stmt parser.Statement) *StatementResult {
	result := &StatementResult{Statement: stmt}
	start := time.Now()

	var err error
	switch stmt.Kind {
	case parser.StmtQuery:
		err = e.runQuery(ctx, stmt.Text, result)
	case parser.StmtDataChange:
		err = e.runDataChange(ctx, stmt.Text, result)
	case parser.StmtSchemaChange:
		err = e.runSchemaChange(ctx, stmt.Text)
	default:
		// Unreachable after the preflight check; kept as a guard.
		err = errors.NewUnsupportedStatementError(stmt.Text)
	}

	result.Duration = time.Since(start)
	result.Err = wrapStatementError(stmt.Text, err)
	if result.Err != nil {
		logger.Debug("statement failed after %v: %v", result.Duration, result.Err)
	}
	return result
}

// runQuery executes a query inside a single-use read-only transaction.
// A guard count runs first; when it exceeds the row cap the query is
// refused with a RowLimitError instead of materializing rows.
func (e *Executor) runQuery(ctx context.Context, text string, result *StatementResult) error {
	tx, err := e.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return fmt.Errorf("failed to begin read-only transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// The newline keeps a trailing line comment in the statement from
	// swallowing the closing parenthesis.
	guard := fmt.Sprintf("SELECT count(*) FROM (\n%s\n) AS pgscript_guard", text)
	var count int64
	if err := tx.QueryRow(ctx, guard).Scan(&count); err != nil {
		return fmt.Errorf("guard count failed: %w", err)
	}
	if count > e.rowLimit {
		return errors.NewRowLimitError(text, count, e.rowLimit)
	}

	rows, err := tx.Query(ctx, text)
	if err != nil {
		return err
	}
	defer rows.Close()

	for _, field := range rows.FieldDescriptions() {
		result.Columns = append(result.Columns, field.Name)
	}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return fmt.Errorf("failed to read row: %w", err)
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// runDataChange executes a data mutation inside its own read/write
// transaction, one transaction per statement.
func (e *Executor) runDataChange(ctx context.Context, text string, result *StatementResult) error {
	tx, err := e.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, text)
	if err != nil {
		return err
	}
	result.RowsAffected = tag.RowsAffected()

	return tx.Commit(ctx)
}

// runSchemaChange submits a schema update directly and awaits completion.
func (e *Executor) runSchemaChange(ctx context.Context, text string) error {
	_, err := e.pool.Exec(ctx, text)
	return err
}

// wrapStatementError attaches the statement text to server-side failures
// so callers see which statement the server rejected.
func wrapStatementError(text string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return errors.NewStatementFailureError(text, pgErr)
	}
	return err
}
