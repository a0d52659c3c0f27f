package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cybertec-postgresql/pgscript/internal/database"
	"github.com/cybertec-postgresql/pgscript/internal/logger"
	"github.com/cybertec-postgresql/pgscript/internal/parser"
	"github.com/cybertec-postgresql/pgscript/internal/runner"
)

// timePrecision is the rounding applied to durations before display
const timePrecision = time.Millisecond

// Exec executes the script file workflow and returns the process exit code
func Exec(ctx context.Context, config *Config, scriptPath string) (int, error) {
	// Step 1: Read the script
	content, err := os.ReadFile(scriptPath)
	if err != nil {
		return 1, fmt.Errorf("failed to read script %s: %w", scriptPath, err)
	}

	logger.Debug("executing %s (%d bytes)", scriptPath, len(content))

	// Step 2: Connect to PostgreSQL
	pool, err := database.NewPool(ctx, config)
	if err != nil {
		return 1, fmt.Errorf("database connection failed: %w", err)
	}
	defer pool.Close()

	// Step 3: Execute the script statement by statement
	executor := runner.NewExecutor(pool, config.Timeout, config.RowLimit)
	run, _ := executor.ExecuteScript(ctx, string(content))

	// Step 4: Display per-statement results
	for i, result := range run.Results {
		fmt.Printf("[%d] %s (%v, %v)\n", i+1, firstLine(result.Statement.Text),
			result.Statement.Kind, result.Duration.Round(timePrecision))
		switch result.Statement.Kind {
		case parser.StmtQuery:
			printRows(result)
		case parser.StmtDataChange:
			fmt.Printf("    %d row(s) affected\n", result.RowsAffected)
		}
	}

	if run.Error != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", run.Error)
	}

	// Step 5: Display summary
	summary := runner.Summarize(run)
	fmt.Printf("\n")
	fmt.Printf("Statements: %d total (%d queries, %d data changes, %d schema changes)\n",
		summary.TotalStatements, summary.Queries, summary.DataChanges, summary.SchemaChanges)
	fmt.Printf("Rows:       %d returned, %d affected\n",
		summary.RowsReturned, summary.RowsAffected)
	fmt.Printf("Time:       %v\n", summary.TotalDuration.Round(timePrecision))

	return run.ExitCode(), nil
}

// printRows renders a query result as tab-separated lines
func printRows(result *runner.StatementResult) {
	if len(result.Columns) > 0 {
		fmt.Printf("    %s\n", strings.Join(result.Columns, "\t"))
	}
	for _, row := range result.Rows {
		cells := make([]string, len(row))
		for i, value := range row {
			cells[i] = fmt.Sprintf("%v", value)
		}
		fmt.Printf("    %s\n", strings.Join(cells, "\t"))
	}
}

// firstLine truncates a statement to its first line for display
func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i] + " ..."
	}
	return text
}
