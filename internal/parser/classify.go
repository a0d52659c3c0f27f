package parser

import "strings"

// StatementKind is the coarse category of a statement, used to select the
// transaction strategy it executes under.
type StatementKind int

const (
	StmtUnspecified  StatementKind = iota // leading keyword not recognised
	StmtQuery                             // SELECT, WITH
	StmtDataChange                        // INSERT, UPDATE, DELETE
	StmtSchemaChange                      // CREATE, ALTER, DROP
)

// String returns a string representation of StatementKind.
func (k StatementKind) String() string {
	switch k {
	case StmtQuery:
		return "query"
	case StmtDataChange:
		return "data-change"
	case StmtSchemaChange:
		return "schema-change"
	default:
		return "unspecified"
	}
}

// Keyword tables mapping each statement kind to its leading keywords.
// Fixed process-wide configuration; never mutated at runtime.
var (
	queryKeywords = map[string]bool{
		"SELECT": true,
		"WITH":   true,
	}
	dataChangeKeywords = map[string]bool{
		"INSERT": true,
		"UPDATE": true,
		"DELETE": true,
	}
	schemaChangeKeywords = map[string]bool{
		"CREATE": true,
		"ALTER":  true,
		"DROP":   true,
	}
)

// classifyOrder fixes the probe order; the first matching set wins.
var classifyOrder = []struct {
	kind     StatementKind
	keywords map[string]bool
}{
	{StmtQuery, queryKeywords},
	{StmtDataChange, dataChangeKeywords},
	{StmtSchemaChange, schemaChangeKeywords},
}

/*
 * Classify determines the kind of a single statement from its leading
 * keyword: the first maximal run of non-whitespace bytes that lies outside
 * any comment.  The comparison is case-insensitive.  A statement that is
 * empty or consists only of comments classifies as StmtUnspecified.
 *
 * Classify is pure and total; it never fails and performs no validation
 * beyond locating the leading keyword.
 */
func Classify(stmt string) StatementKind {
	word := leadingWord(stmt)
	if word == "" {
		return StmtUnspecified
	}
	word = strings.ToUpper(word)
	for _, entry := range classifyOrder {
		if entry.keywords[word] {
			return entry.kind
		}
	}
	return StmtUnspecified
}

// leadingWord returns the first maximal run of non-whitespace bytes in
// stmt that lies outside any comment, or "" when there is none.
func leadingWord(stmt string) string {
	i := skipIgnored(stmt, 0)
	if i >= len(stmt) {
		return ""
	}
	j := i
	for j < len(stmt) && !isSpace(stmt[j]) {
		j++
	}
	return stmt[i:j]
}

// skipIgnored advances pos past whitespace and comments and returns the
// offset of the next significant byte, or len(stmt) when none remains.
// An unterminated block comment consumes the rest of the input.
func skipIgnored(stmt string, pos int) int {
	for pos < len(stmt) {
		ch := stmt[pos]
		switch {
		case isSpace(ch):
			pos++
		case ch == '#' && pos+1 < len(stmt) && stmt[pos+1] == ' ':
			pos = skipLineComment(stmt, pos+1)
		case ch == '-' && pos+1 < len(stmt) && stmt[pos+1] == '-':
			pos = skipLineComment(stmt, pos+2)
		case ch == '/' && pos+1 < len(stmt) && stmt[pos+1] == '*':
			pos = skipBlockComment(stmt, pos+2)
		default:
			return pos
		}
	}
	return pos
}

// skipLineComment returns the offset just past the newline ending a '#' or
// '--' comment whose body starts at pos.
func skipLineComment(stmt string, pos int) int {
	for pos < len(stmt) && stmt[pos] != '\n' {
		pos++
	}
	if pos < len(stmt) {
		pos++ // consume the newline
	}
	return pos
}

// skipBlockComment returns the offset just past the closing star-slash of a
// block comment whose body starts at pos.
func skipBlockComment(stmt string, pos int) int {
	for pos < len(stmt) {
		if stmt[pos] == '*' && pos+1 < len(stmt) && stmt[pos+1] == '/' {
			return pos + 2
		}
		pos++
	}
	return pos
}

// isSpace reports whether ch is an ASCII whitespace byte.
func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
