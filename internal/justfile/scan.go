// Package justfile reads justfiles directly: it resolves imports into a
// task catalog without invoking just, and extracts required arguments from
// recipe headers. Header scanning is quote- and bracket-aware because
// default argument values may contain colons, spaces, or comment markers.
package justfile

// scanState tracks quoting and bracket nesting during a single
// left-to-right pass over a header line.
type scanState struct {
	quote   rune // 0 when no quote is open; otherwise ' " or `
	escaped bool
	paren   int
	bracket int
	brace   int
}

// topLevel reports whether the scanner is outside every quote and bracket,
// i.e. whether a colon, space, or '=' at this point splits the header.
func (s *scanState) topLevel() bool {
	return s.quote == 0 && s.paren == 0 && s.bracket == 0 && s.brace == 0
}

func (s *scanState) advance(ch rune) {
	if s.quote != 0 {
		if s.escaped {
			s.escaped = false
			return
		}
		if ch == '\\' {
			s.escaped = true
			return
		}
		if ch == s.quote {
			s.quote = 0
		}
		return
	}

	switch ch {
	case '\'', '"', '`':
		s.quote = ch
	case '(':
		s.paren++
	case ')':
		if s.paren > 0 {
			s.paren--
		}
	case '[':
		s.bracket++
	case ']':
		if s.bracket > 0 {
			s.bracket--
		}
	case '{':
		s.brace++
	case '}':
		if s.brace > 0 {
			s.brace--
		}
	}
}

// findTopLevelRune returns the byte index of the first occurrence of target
// outside quotes and brackets, or -1.
func findTopLevelRune(input string, target rune) int {
	var state scanState
	for i, ch := range input {
		if state.topLevel() && ch == target {
			return i
		}
		state.advance(ch)
	}
	return -1
}

// hasTopLevelRune reports whether target occurs outside quotes and brackets.
func hasTopLevelRune(input string, target rune) bool {
	return findTopLevelRune(input, target) >= 0
}

// splitTopLevelFields splits input on whitespace runs that are outside
// quotes and brackets, so `ENV='prod blue'` stays one field.
func splitTopLevelFields(input string) []string {
	var state scanState
	var fields []string
	start := -1

	for i, ch := range input {
		if state.topLevel() && (ch == ' ' || ch == '\t') {
			if start >= 0 {
				fields = append(fields, input[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
		state.advance(ch)
	}
	if start >= 0 {
		fields = append(fields, input[start:])
	}

	return fields
}

// isIdentifier reports whether value looks like a parameter name:
// a letter or underscore followed by letters, digits, '_' or '-'.
func isIdentifier(value string) bool {
	if value == "" {
		return false
	}
	for i, ch := range value {
		alpha := ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		digit := ch >= '0' && ch <= '9'
		if i == 0 {
			if !alpha {
				return false
			}
			continue
		}
		if !alpha && !digit && ch != '-' {
			return false
		}
	}
	return true
}
