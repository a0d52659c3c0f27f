/*
 * Package completion produces the items an editing surface offers while a
 * script is being written: SQL keywords, plus tables and columns from the
 * connected database.
 *
 * The keyword items are derived data that never changes for the lifetime
 * of the process, so they are built once on first access and shared by all
 * callers; concurrent first callers converge on the same slice.
 */
package completion

import (
	"context"
	"sort"
	"sync"

	"github.com/cybertec-postgresql/pgscript/internal/database"
)

// ItemKind distinguishes what a completion item refers to
type ItemKind int

const (
	ItemKeyword ItemKind = iota
	ItemTable
	ItemColumn
)

// String returns a string representation of ItemKind
func (k ItemKind) String() string {
	switch k {
	case ItemKeyword:
		return "keyword"
	case ItemTable:
		return "table"
	case ItemColumn:
		return "column"
	default:
		return "unknown"
	}
}

// Item is a single completion entry
type Item struct {
	Text   string   // Text to insert
	Kind   ItemKind // What the item refers to
	Detail string   // Secondary display text (data type, object kind)
}

// statement-leading keywords plus the common clause keywords a script
// editor wants to offer; completeness beyond this is not a goal.
var keywordTexts = []string{
	"SELECT", "WITH", "INSERT", "UPDATE", "DELETE", "CREATE", "ALTER", "DROP",
	"FROM", "WHERE", "GROUP BY", "ORDER BY", "HAVING", "LIMIT", "OFFSET",
	"JOIN", "LEFT JOIN", "RIGHT JOIN", "INNER JOIN", "ON", "AS", "AND", "OR",
	"NOT", "NULL", "IN", "EXISTS", "BETWEEN", "LIKE", "DISTINCT", "INTO",
	"VALUES", "SET", "TABLE", "VIEW", "INDEX", "PRIMARY KEY", "REFERENCES",
}

var (
	keywordOnce  sync.Once
	keywordItems []Item
)

// Keywords returns the keyword completion items, sorted by text. The slice
// is built on first access and shared; callers must not modify it.
func Keywords() []Item {
	keywordOnce.Do(func() {
		items := make([]Item, 0, len(keywordTexts))
		for _, text := range keywordTexts {
			items = append(items, Item{Text: text, Kind: ItemKeyword, Detail: "keyword"})
		}
		sort.Slice(items, func(i, j int) bool { return items[i].Text < items[j].Text })
		keywordItems = items
	})
	return keywordItems
}

// Objects returns completion items for every table and view visible to the
// connected role, with one column item per table column.
func Objects(ctx context.Context, pool *database.Pool) ([]Item, error) {
	tables, err := pool.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	var items []Item
	for _, table := range tables {
		items = append(items, Item{
			Text:   table.QualifiedName(),
			Kind:   ItemTable,
			Detail: table.Kind,
		})
		columns, err := pool.ListColumns(ctx, table.Schema, table.Name)
		if err != nil {
			return nil, err
		}
		for _, column := range columns {
			items = append(items, Item{
				Text:   column.Name,
				Kind:   ItemColumn,
				Detail: column.DataType,
			})
		}
	}
	return items, nil
}
