/*
 * scanner.go
 *
 * Lexical scanner for multi-statement SQL scripts.
 *
 * The scanner walks a script one byte at a time, left to right, and keeps
 * track of whether the cursor is inside a string literal, inside a comment,
 * or in normal code.  Statement splitting and classification are built on
 * top of this single question: "is the byte under the cursor significant,
 * or is it shielded by a string or comment?"
 *
 * Recognised shielding regions:
 *
 *   strings   '…'  "…"  `…`  and the triple-delimited forms '''…'''
 *             """…"""  ```…```.  A quote preceded by a backslash does not
 *             open or close a string.
 *   comments  "# " to end of line, "--" to end of line, and slash-star
 *             block comments.
 *
 * The scanner never fails.  An unterminated string or comment simply runs
 * to the end of the input; the cursor stops there still inside that region
 * and the remaining text belongs to whatever statement was in progress.
 */
package parser

// ScanMode identifies the lexical region the cursor is currently in.
type ScanMode int

const (
	ModeNormal  ScanMode = iota // ordinary code
	ModeString                  // inside a string literal
	ModeComment                 // inside a comment
)

// String returns a string representation of ScanMode.
func (m ScanMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeString:
		return "string"
	case ModeComment:
		return "comment"
	default:
		return "unknown"
	}
}

/*
 * Scanner is a cursor over a script with tagged mode state.
 *
 * The quote/triple fields are meaningful only while mode == ModeString and
 * the marker field only while mode == ModeComment, so the scanner can never
 * claim to be inside a string and a comment at the same time.
 */
type Scanner struct {
	src  string
	pos  int
	mode ScanMode

	quote  byte // opening quote character (ModeString)
	triple bool // delimiter is three consecutive quote characters (ModeString)
	marker byte // '#', '-' or '*' (ModeComment)
}

// NewScanner returns a Scanner positioned at the start of src, in normal mode.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Pos returns the byte offset of the cursor (0-based).
func (s *Scanner) Pos() int { return s.pos }

// Mode returns the lexical region the cursor is currently in.
func (s *Scanner) Mode() ScanMode { return s.mode }

// More reports whether input remains under the cursor.
func (s *Scanner) More() bool { return s.pos < len(s.src) }

// Byte returns the byte under the cursor, or 0 at end of input.
func (s *Scanner) Byte() byte {
	if s.pos < len(s.src) {
		return s.src[s.pos]
	}
	return 0
}

// InNormal reports whether the byte under the cursor is significant, i.e.
// not shielded by a string literal or a comment.
func (s *Scanner) InNormal() bool { return s.mode == ModeNormal }

// AtDelimiter reports whether the cursor is on a statement-terminating
// semicolon: a ';' in normal mode.  A ';' inside a string or comment is
// ordinary content.
func (s *Scanner) AtDelimiter() bool {
	return s.mode == ModeNormal && s.Byte() == ';'
}

// peek returns the byte at offset bytes past the cursor, or 0 out of bounds.
func (s *Scanner) peek(offset int) byte {
	if i := s.pos + offset; i < len(s.src) {
		return s.src[i]
	}
	return 0
}

// escaped reports whether the byte under the cursor is preceded by a
// backslash, which shields a quote character from opening or closing a
// string literal.
func (s *Scanner) escaped() bool {
	return s.pos > 0 && s.src[s.pos-1] == '\\'
}

/*
 * Advance consumes the byte under the cursor, applying the mode transition
 * it triggers, and moves the cursor to the next byte.
 *
 * Transitions, in precedence order:
 *
 *  1. Normal, unescaped ' " ` → enter string.  When the next two bytes
 *     repeat the opening quote the literal is triple-delimited and both
 *     extra quotes are consumed with the opener.
 *  2. Normal, "# " / "--" / slash-star → enter comment, remembering the
 *     marker.  A '#' not followed by a space stays ordinary code.
 *  3. Comment: a newline ends '#' and '-' comments; star-slash ends block
 *     comments (both bytes consumed).
 *  4. String: an unescaped byte matching the opening quote ends the
 *     string.  A triple-delimited string ends only on three consecutive
 *     quotes; a lone quote inside it is content.
 *
 * Advance is a no-op at end of input.
 */
func (s *Scanner) Advance() {
	if s.pos >= len(s.src) {
		return
	}
	ch := s.src[s.pos]

	switch s.mode {
	case ModeNormal:
		switch {
		case (ch == '\'' || ch == '"' || ch == '`') && !s.escaped():
			s.mode = ModeString
			s.quote = ch
			s.triple = false
			if s.peek(1) == ch && s.peek(2) == ch {
				s.triple = true
				s.pos += 2 // consume the two extra opening quotes
			}
		case ch == '#' && s.peek(1) == ' ':
			s.mode = ModeComment
			s.marker = '#'
		case ch == '-' && s.peek(1) == '-':
			s.mode = ModeComment
			s.marker = '-'
			s.pos++ // consume the second dash
		case ch == '/' && s.peek(1) == '*':
			s.mode = ModeComment
			s.marker = '*'
			s.pos++ // consume the asterisk
		}

	case ModeComment:
		switch s.marker {
		case '#', '-':
			if ch == '\n' {
				s.mode = ModeNormal
			}
		case '*':
			if ch == '*' && s.peek(1) == '/' {
				s.mode = ModeNormal
				s.pos++ // consume the closing slash
			}
		}

	case ModeString:
		if ch == s.quote && !s.escaped() {
			if !s.triple {
				s.mode = ModeNormal
			} else if s.peek(1) == s.quote && s.peek(2) == s.quote {
				s.mode = ModeNormal
				s.pos += 2 // consume the two extra closing quotes
			}
			// A lone quote inside a triple-delimited string is content.
		}
	}

	s.pos++
}
