package parser

import (
	"strings"
	"testing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

// assertSplit fails the test when Split(script) does not produce want.
func assertSplit(t *testing.T, script string, want ...string) {
	t.Helper()
	got := Split(script)
	if len(got) != len(want) {
		t.Fatalf("Split(%q)\n  got  %q\n  want %q", script, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Split(%q) statement[%d]\n  got  %q\n  want %q", script, i, got[i], want[i])
		}
	}
}

// ── basic splitting ──────────────────────────────────────────────────────────

func TestSplitEmpty(t *testing.T) {
	assertSplit(t, "")
	assertSplit(t, "   \n\t  ")
}

func TestSplitSingleStatement(t *testing.T) {
	assertSplit(t, "SELECT 1", "SELECT 1")
	assertSplit(t, "  SELECT 1  \n", "SELECT 1")
}

func TestSplitDelimiterExcluded(t *testing.T) {
	assertSplit(t, "SELECT 1;", "SELECT 1")
}

func TestSplitOrdered(t *testing.T) {
	assertSplit(t, "SELECT 1; INSERT INTO t VALUES (1); DROP TABLE t",
		"SELECT 1", "INSERT INTO t VALUES (1)", "DROP TABLE t")
}

func TestSplitEmptyStatementsDropped(t *testing.T) {
	assertSplit(t, "SELECT 1;; SELECT 2", "SELECT 1", "SELECT 2")
	assertSplit(t, ";;;")
	assertSplit(t, " ; SELECT 1 ; ", "SELECT 1")
}

// ── shielded semicolons ──────────────────────────────────────────────────────

func TestSplitSemicolonInStrings(t *testing.T) {
	assertSplit(t, "SELECT ';' FROM t", "SELECT ';' FROM t")
	assertSplit(t, `SELECT ";" FROM t`, `SELECT ";" FROM t`)
	assertSplit(t, "SELECT `a;b` FROM t", "SELECT `a;b` FROM t")
	assertSplit(t, "SELECT '''a;b''' FROM t", "SELECT '''a;b''' FROM t")
}

func TestSplitEscapedQuoteInString(t *testing.T) {
	assertSplit(t, `SELECT 'it\'s; fine' FROM t`, `SELECT 'it\'s; fine' FROM t`)
}

func TestSplitSemicolonInComments(t *testing.T) {
	assertSplit(t, "SELECT 1 -- a;b\n; SELECT 2", "SELECT 1 -- a;b", "SELECT 2")
	assertSplit(t, "SELECT 1 # a;b\n; SELECT 2", "SELECT 1 # a;b", "SELECT 2")
	assertSplit(t, "SELECT /* a;b */ 1; SELECT 2", "SELECT /* a;b */ 1", "SELECT 2")
}

func TestSplitTrailingCommentBelongsToStatement(t *testing.T) {
	// The comment trails the statement it follows; no split inside it.
	assertSplit(t, "SELECT 1 -- trailing\n; SELECT 2",
		"SELECT 1 -- trailing", "SELECT 2")
}

func TestSplitUnterminatedString(t *testing.T) {
	// An open string runs to end of input; the rest is one statement.
	assertSplit(t, "SELECT 'abc; SELECT 2", "SELECT 'abc; SELECT 2")
}

func TestSplitUnterminatedBlockComment(t *testing.T) {
	assertSplit(t, "SELECT 1 /* open; SELECT 2", "SELECT 1 /* open; SELECT 2")
}

// ── properties ───────────────────────────────────────────────────────────────

func TestSplitIdempotent(t *testing.T) {
	script := "SELECT ';' FROM t; INSERT INTO t VALUES ('a;b'); -- c;d\nDROP TABLE t"
	for _, stmt := range Split(script) {
		again := Split(stmt)
		if len(again) != 1 || again[0] != stmt {
			t.Fatalf("re-splitting %q: got %q", stmt, again)
		}
	}
}

func TestSplitRoundTrip(t *testing.T) {
	script := "  SELECT 1 ;SELECT ';';\n\nUPDATE t SET x = 2;  "
	first := Split(script)
	second := Split(strings.Join(first, ";\n"))
	if len(first) != len(second) {
		t.Fatalf("round trip changed count: %q vs %q", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("round trip changed statement[%d]: %q vs %q", i, first[i], second[i])
		}
	}
}

// ── Parse ────────────────────────────────────────────────────────────────────

func TestParsePairs(t *testing.T) {
	stmts := Parse("SELECT 1; insert into t values (1); CREATE TABLE t (x int); VACUUM t")
	want := []Statement{
		{"SELECT 1", StmtQuery},
		{"insert into t values (1)", StmtDataChange},
		{"CREATE TABLE t (x int)", StmtSchemaChange},
		{"VACUUM t", StmtUnspecified},
	}
	if len(stmts) != len(want) {
		t.Fatalf("got %d statements, want %d: %v", len(stmts), len(want), stmts)
	}
	for i := range want {
		if stmts[i] != want[i] {
			t.Fatalf("statement[%d]: got %+v, want %+v", i, stmts[i], want[i])
		}
	}
}
