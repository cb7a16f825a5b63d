package toml

// Scanner primitives: position-based helpers over the source string. None
// of these allocate; they take a cursor and return the advanced one.

func skipWhitespace(src string, p int) int {
	for p < len(src) && (src[p] == ' ' || src[p] == '\t') {
		p++
	}
	return p
}

// skipVoid advances past whitespace, full-line comments, and, when
// allowNewline is set, newlines (LF or CRLF; a bare CR is always an
// error).
func skipVoid(src string, p int, allowNewline bool) (int, error) {
	for p < len(src) {
		switch {
		case src[p] == ' ' || src[p] == '\t':
			p++
		case allowNewline && src[p] == '\n':
			p++
		case allowNewline && src[p] == '\r':
			if p+1 >= len(src) || src[p+1] != '\n' {
				return p, newParseError(src, p, "bare carriage return is not allowed")
			}
			p += 2
		case src[p] == '#':
			np, err := skipComment(src, p)
			if err != nil {
				return p, err
			}
			p = np
		default:
			return p, nil
		}
	}
	return p, nil
}

// skipComment consumes a '#' comment up to (but not including) the
// terminating newline or EOF. A comment may not contain any control
// character other than tab.
func skipComment(src string, p int) (int, error) {
	start := p
	p++ // '#'
	for p < len(src) && src[p] != '\n' {
		if src[p] == '\r' {
			if p+1 < len(src) && src[p+1] == '\n' {
				break
			}
			return p, newParseError(src, p, "bare carriage return is not allowed in comment")
		}
		if isForbiddenControl(src[p]) {
			return p, newParseError(src, start, "control character not allowed in comment")
		}
		p++
	}
	return p, nil
}

// expectNewlineOrEOF requires the cursor to sit on a newline (LF or CRLF)
// or at end of input, and advances past it.
func expectNewlineOrEOF(src string, p int) (int, error) {
	if p >= len(src) {
		return p, nil
	}
	if src[p] == '\n' {
		return p + 1, nil
	}
	if src[p] == '\r' && p+1 < len(src) && src[p+1] == '\n' {
		return p + 2, nil
	}
	return p, newParseError(src, p, "expected newline")
}

// isForbiddenControl reports whether b is a control character forbidden
// outside the narrow contexts that explicitly allow it (tab in basic
// strings and comments; newline inside multi-line strings).
func isForbiddenControl(b byte) bool {
	return b <= 0x08 || (b >= 0x0A && b <= 0x1F) || b == 0x7F
}

func isBareKeyByte(b byte) bool {
	return 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z' || '0' <= b && b <= '9' || b == '_' || b == '-'
}
