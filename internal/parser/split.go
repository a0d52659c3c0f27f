package parser

import "strings"

// Statement is one executable unit of a script: its trimmed text (without
// the terminating semicolon) and the kind derived from its leading keyword.
type Statement struct {
	Text string
	Kind StatementKind
}

/*
 * Split cuts a script into individual statements on semicolons that are
 * statement-significant, i.e. not shielded by a string literal or comment.
 *
 * Each emitted statement is trimmed of surrounding whitespace and excludes
 * the semicolon that terminated it.  Empty pieces, such as the gap between
 * two consecutive semicolons, are dropped.  Text after the last semicolon
 * becomes the final statement, terminated or not.  Source order is
 * preserved, and splitting a previously emitted statement again returns it
 * unchanged.
 *
 * Split is total: scripts with unterminated strings or comments do not
 * fail, the open region simply runs to the end of the input and stays part
 * of the statement it started in.
 */
func Split(script string) []string {
	var stmts []string
	rest := script
	for {
		idx := nextDelimiter(rest)
		if idx < 0 {
			if stmt := strings.TrimSpace(rest); stmt != "" {
				stmts = append(stmts, stmt)
			}
			return stmts
		}
		if stmt := strings.TrimSpace(rest[:idx]); stmt != "" {
			stmts = append(stmts, stmt)
		}
		rest = rest[idx+1:]
	}
}

// nextDelimiter returns the offset of the first statement-significant ';'
// in buf, or -1 when buf holds none.  Each call scans with fresh state, so
// a region left open by a previous statement never leaks into the next.
func nextDelimiter(buf string) int {
	s := NewScanner(buf)
	for s.More() {
		if s.AtDelimiter() {
			return s.Pos()
		}
		s.Advance()
	}
	return -1
}

// Parse splits a script and classifies each statement, producing the
// ordered (text, kind) sequence the executor dispatches on.
func Parse(script string) []Statement {
	pieces := Split(script)
	stmts := make([]Statement, 0, len(pieces))
	for _, text := range pieces {
		stmts = append(stmts, Statement{Text: text, Kind: Classify(text)})
	}
	return stmts
}
