package cli

import (
	"context"
	"fmt"

	"github.com/cybertec-postgresql/pgscript/internal/completion"
	"github.com/cybertec-postgresql/pgscript/internal/database"
)

// Objects lists the tables and views of the connected database together
// with their columns, the browsing view a script author works from.
func Objects(ctx context.Context, config *Config) (int, error) {
	pool, err := database.NewPool(ctx, config)
	if err != nil {
		return 1, fmt.Errorf("database connection failed: %w", err)
	}
	defer pool.Close()

	tables, err := pool.ListTables(ctx)
	if err != nil {
		return 1, err
	}
	if len(tables) == 0 {
		fmt.Println("No tables or views found")
		return 0, nil
	}

	for _, table := range tables {
		fmt.Printf("%s (%s)\n", table.QualifiedName(), table.Kind)
		columns, err := pool.ListColumns(ctx, table.Schema, table.Name)
		if err != nil {
			return 1, err
		}
		for _, column := range columns {
			nullable := ""
			if !column.Nullable {
				nullable = " not null"
			}
			fmt.Printf("    %s %s%s\n", column.Name, column.DataType, nullable)
		}
	}
	return 0, nil
}

// Complete prints the completion items for the connected database:
// keywords first, then schema objects.
func Complete(ctx context.Context, config *Config) (int, error) {
	pool, err := database.NewPool(ctx, config)
	if err != nil {
		return 1, fmt.Errorf("database connection failed: %w", err)
	}
	defer pool.Close()

	items := completion.Keywords()
	objects, err := completion.Objects(ctx, pool)
	if err != nil {
		return 1, err
	}
	items = append(items, objects...)

	for _, item := range items {
		fmt.Printf("%-10s %s\n", item.Kind, item.Text)
	}
	return 0, nil
}
