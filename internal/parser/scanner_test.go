package parser

import "testing"

// ── helpers ──────────────────────────────────────────────────────────────────

// finalMode runs the scanner over all of src and returns the mode it ends in.
func finalMode(src string) ScanMode {
	s := NewScanner(src)
	for s.More() {
		s.Advance()
	}
	return s.Mode()
}

// assertFinalMode fails the test when scanning src does not end in want.
func assertFinalMode(t *testing.T, src string, want ScanMode) {
	t.Helper()
	if got := finalMode(src); got != want {
		t.Fatalf("src=%q: final mode %v, want %v", src, got, want)
	}
}

// assertDelimiter fails the test when the first significant ';' in src is
// not at offset want (-1 for none).
func assertDelimiter(t *testing.T, src string, want int) {
	t.Helper()
	if got := nextDelimiter(src); got != want {
		t.Fatalf("src=%q: delimiter at %d, want %d", src, got, want)
	}
}

// ── string literals ──────────────────────────────────────────────────────────

func TestSingleQuotedString(t *testing.T) {
	assertFinalMode(t, "'abc", ModeString)
	assertFinalMode(t, "'abc'", ModeNormal)
	assertFinalMode(t, "''", ModeNormal)
}

func TestDoubleQuotedString(t *testing.T) {
	assertFinalMode(t, `"abc`, ModeString)
	assertFinalMode(t, `"abc"`, ModeNormal)
}

func TestBacktickString(t *testing.T) {
	assertFinalMode(t, "`abc", ModeString)
	assertFinalMode(t, "`abc`", ModeNormal)
}

func TestEscapedQuoteDoesNotOpen(t *testing.T) {
	// The quote is preceded by a backslash, so no string starts.
	assertFinalMode(t, `x \' y`, ModeNormal)
}

func TestEscapedQuoteDoesNotClose(t *testing.T) {
	assertFinalMode(t, `'it\'s`, ModeString)
	assertFinalMode(t, `'it\'s'`, ModeNormal)
}

func TestTripleQuotedString(t *testing.T) {
	assertFinalMode(t, `'''a'b'''`, ModeNormal)
	assertFinalMode(t, `"""a"b"""`, ModeNormal)
	assertFinalMode(t, "```a`b```", ModeNormal)
}

func TestTripleQuoteWithoutSuccessorsIsContent(t *testing.T) {
	// Two quotes at the end are content, not a terminator.
	assertFinalMode(t, "'''ab''", ModeString)
}

func TestUnterminatedTripleQuote(t *testing.T) {
	assertFinalMode(t, "'''ab", ModeString)
}

// ── comments ─────────────────────────────────────────────────────────────────

func TestDashComment(t *testing.T) {
	assertFinalMode(t, "-- note", ModeComment)
	assertFinalMode(t, "-- note\n", ModeNormal)
}

func TestHashCommentRequiresSpace(t *testing.T) {
	assertFinalMode(t, "# note", ModeComment)
	assertFinalMode(t, "#note", ModeNormal)
}

func TestBlockComment(t *testing.T) {
	assertFinalMode(t, "/* note", ModeComment)
	assertFinalMode(t, "/* note */", ModeNormal)
	assertFinalMode(t, "/* a\nb */ x", ModeNormal)
}

func TestCommentMarkersInsideString(t *testing.T) {
	// Comment markers inside a string literal are content.
	assertFinalMode(t, "'-- not a comment'", ModeNormal)
	assertFinalMode(t, "'/* not a comment'", ModeNormal)
}

func TestQuotesInsideComment(t *testing.T) {
	// Quotes inside a comment never open a string.
	assertFinalMode(t, "-- don't\nx", ModeNormal)
	assertFinalMode(t, "/* don't */", ModeNormal)
}

// ── delimiter recognition ────────────────────────────────────────────────────

func TestDelimiterInNormalMode(t *testing.T) {
	assertDelimiter(t, "SELECT 1; SELECT 2", 8)
	assertDelimiter(t, ";", 0)
	assertDelimiter(t, "SELECT 1", -1)
}

func TestDelimiterShieldedByStrings(t *testing.T) {
	assertDelimiter(t, "SELECT ';' FROM t", -1)
	assertDelimiter(t, `SELECT ";" FROM t`, -1)
	assertDelimiter(t, "SELECT `;` FROM t", -1)
	assertDelimiter(t, "SELECT '''a;b''' FROM t", -1)
}

func TestDelimiterShieldedByComments(t *testing.T) {
	assertDelimiter(t, "-- a;b", -1)
	assertDelimiter(t, "# a;b", -1)
	assertDelimiter(t, "/* a;b */", -1)
}

func TestDelimiterAfterCommentEnds(t *testing.T) {
	src := "-- a;b\n;"
	assertDelimiter(t, src, 7)
}

func TestDelimiterAfterHashWithoutSpace(t *testing.T) {
	// '#' without a following space is ordinary code.
	assertDelimiter(t, "#tag;", 4)
}

// ── mode names ───────────────────────────────────────────────────────────────

func TestScanModeString(t *testing.T) {
	cases := map[ScanMode]string{
		ModeNormal:   "normal",
		ModeString:   "string",
		ModeComment:  "comment",
		ScanMode(99): "unknown",
	}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Errorf("ScanMode(%d).String() = %q, want %q", mode, got, want)
		}
	}
}
