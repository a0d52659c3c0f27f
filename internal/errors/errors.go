package errors

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// UnsupportedStatementError reports a script statement whose kind could not
// be determined. The whole script is refused before anything executes; the
// offending statement text is carried verbatim.
type UnsupportedStatementError struct {
	Statement string
}

func (e *UnsupportedStatementError) Error() string {
	return fmt.Sprintf("unsupported statement: %q", e.Statement)
}

// NewUnsupportedStatementError creates a new UnsupportedStatementError
func NewUnsupportedStatementError(statement string) *UnsupportedStatementError {
	return &UnsupportedStatementError{Statement: statement}
}

// RowLimitError reports a query whose guard count exceeded the configured
// row cap; no rows are materialized for it.
type RowLimitError struct {
	Statement string
	Count     int64
	Limit     int64
}

func (e *RowLimitError) Error() string {
	return fmt.Sprintf("query would return %d rows, which exceeds the limit of %d: %q",
		e.Count, e.Limit, e.Statement)
}

// NewRowLimitError creates a new RowLimitError
func NewRowLimitError(statement string, count, limit int64) *RowLimitError {
	return &RowLimitError{Statement: statement, Count: count, Limit: limit}
}

// ConnectionError represents PostgreSQL connection failure
type ConnectionError struct {
	Message    string
	Suggestion string
}

func (e *ConnectionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Suggestion)
	}
	return e.Message
}

// NewConnectionError creates a new ConnectionError
func NewConnectionError(message, suggestion string) *ConnectionError {
	return &ConnectionError{Message: message, Suggestion: suggestion}
}

// StatementFailureError represents a statement the server rejected
type StatementFailureError struct {
	Statement string
	SQLError  *pgconn.PgError // PostgreSQL error details
}

func (e *StatementFailureError) Error() string {
	if e.SQLError != nil {
		return fmt.Sprintf("statement %q failed: [%s] %s", e.Statement, e.SQLError.Code, e.SQLError.Message)
	}
	return fmt.Sprintf("statement %q failed", e.Statement)
}

// Unwrap exposes the underlying PostgreSQL error for errors.As chains.
func (e *StatementFailureError) Unwrap() error {
	if e.SQLError != nil {
		return e.SQLError
	}
	return nil
}

// NewStatementFailureError creates a new StatementFailureError
func NewStatementFailureError(statement string, sqlError *pgconn.PgError) *StatementFailureError {
	return &StatementFailureError{Statement: statement, SQLError: sqlError}
}
