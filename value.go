package toml

// valueContext tells extractValue which enclosing structure it is being
// called from, which governs the delimiter set used for bare-token
// scanning.
type valueContext int

const (
	ctxTop valueContext = iota
	ctxArray
	ctxInlineTable
)

// extractValue inspects src[p] and returns a fully parsed Value plus the
// cursor just past it.
func extractValue(src string, p int, ctx valueContext) (Value, int, error) {
	if p >= len(src) {
		return Value{}, p, newParseError(src, p, "expected a value")
	}
	switch src[p] {
	case '"', '\'':
		s, np, err := parseString(src, p)
		if err != nil {
			return Value{}, np, err
		}
		return stringValue(s), np, nil
	case '[':
		return extractArray(src, p)
	case '{':
		return extractInlineTable(src, p)
	default:
		return extractBareValue(src, p, ctx)
	}
}

func extractArray(src string, p int) (Value, int, error) {
	p++ // '['
	var elems []Value
	for i := 0; ; i++ {
		np, err := skipVoid(src, p, true)
		if err != nil {
			return Value{}, p, err
		}
		p = np
		if p >= len(src) {
			return Value{}, p, newParseError(src, p, "unterminated array")
		}
		if src[p] == ']' {
			return arrayValue(elems, false), p + 1, nil
		}
		if i > 0 {
			if src[p] != ',' {
				return Value{}, p, newParseError(src, p, "expected ',' or ']' in array")
			}
			p++
			np, err := skipVoid(src, p, true)
			if err != nil {
				return Value{}, p, err
			}
			p = np
			if p < len(src) && src[p] == ']' { // trailing comma
				return arrayValue(elems, false), p + 1, nil
			}
		}
		v, np2, err := extractValue(src, p, ctxArray)
		if err != nil {
			return Value{}, np2, err
		}
		elems = append(elems, v)
		p = np2
	}
}

func extractInlineTable(src string, p int) (Value, int, error) {
	start := p
	p++ // '{'
	t := newTable(originInlineTable)
	p = skipWhitespace(src, p)
	if p < len(src) && src[p] == '}' {
		t.frozen = true
		return tableValue(t), p + 1, nil
	}
	for i := 0; ; i++ {
		if p < len(src) && (src[p] == '\n' || src[p] == '\r') {
			return Value{}, p, newParseError(src, p, "newline not allowed in inline table")
		}
		if i > 0 {
			if p >= len(src) {
				return Value{}, p, newParseError(src, start, "unterminated inline table")
			}
			if src[p] != ',' {
				return Value{}, p, newParseError(src, p, "expected ',' or '}' in inline table")
			}
			p++
			p = skipWhitespace(src, p)
			if p < len(src) && (src[p] == '\n' || src[p] == '\r') {
				return Value{}, p, newParseError(src, p, "newline not allowed in inline table")
			}
			if p < len(src) && src[p] == '}' {
				return Value{}, p, newParseError(src, p, "trailing comma not allowed in inline table")
			}
		}
		np, err := extractKV(t, src, p, true)
		if err != nil {
			return Value{}, np, err
		}
		p = skipWhitespace(src, np)
		if p < len(src) && src[p] == '}' {
			t.frozen = true
			return tableValue(t), p + 1, nil
		}
	}
}

// isBareTokenDelim reports whether b ends a bare token in the given
// enclosing context.
func isBareTokenDelim(b byte, ctx valueContext) bool {
	switch b {
	case ' ', '\t', '#':
		return true
	case '\n', '\r':
		return true
	case ',':
		return ctx == ctxArray || ctx == ctxInlineTable
	case ']':
		return ctx == ctxArray
	case '}':
		return ctx == ctxInlineTable
	}
	return false
}

func scanWord(src string, p int, ctx valueContext) (string, int) {
	start := p
	for p < len(src) && !isBareTokenDelim(src[p], ctx) {
		p++
	}
	return src[start:p], p
}

// extractBareValue scans the maximal bare token (with a single embedded
// space tolerated between a date and a following time, per RFC 3339's
// alternate separator) and classifies it as a boolean, number, or
// date/time.
func extractBareValue(src string, p int, ctx valueContext) (Value, int, error) {
	start := p
	word, np := scanWord(src, p, ctx)
	if word == "" {
		return Value{}, p, newParseError(src, p, "expected a value")
	}
	tok := word
	end := np
	if isFullDate(word) && np < len(src) && src[np] == ' ' {
		save := np
		np2 := np + 1
		if np2 < len(src) && isTimeLead(src[np2:]) {
			word2, np3 := scanWord(src, np2, ctx)
			tok = word + " " + word2
			end = np3
		} else {
			np = save
		}
	}

	switch tok {
	case "true":
		return boolValue(true), end, nil
	case "false":
		return boolValue(false), end, nil
	}

	if v, ok, err := classifyAndParseDateTime(src, start, tok); ok {
		return v, end, err
	}
	if v, ok, err := classifyAndParseNumber(src, start, tok); ok {
		return v, end, err
	}
	return Value{}, start, newParseError(src, start, "invalid value %q", tok)
}

func isFullDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i, c := range []byte(s) {
		if i == 4 || i == 7 {
			if c != '-' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isTimeLead(s string) bool {
	if len(s) < 5 {
		return false
	}
	return s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9' && s[2] == ':'
}

// parseKeyPart parses a single key part: a bare key or a single-line
// quoted key.
func parseKeyPart(src string, p int) (string, int, error) {
	if p >= len(src) {
		return "", p, newParseError(src, p, "expected a key")
	}
	if src[p] == '"' || src[p] == '\'' {
		if p+2 < len(src) && src[p+1] == src[p] && src[p+2] == src[p] {
			return "", p, newParseError(src, p, "multi-line strings are not allowed as keys")
		}
		return parseString(src, p)
	}
	start := p
	for p < len(src) && isBareKeyByte(src[p]) {
		p++
	}
	if p == start {
		return "", p, newParseError(src, p, "expected a key")
	}
	return src[start:p], p, nil
}

// parseDottedKey parses one or more key parts separated by '.', where the
// dot may be surrounded by spaces/tabs but not newlines.
func parseDottedKey(src string, p int) ([]string, int, error) {
	var parts []string
	for {
		part, np, err := parseKeyPart(src, p)
		if err != nil {
			return nil, np, err
		}
		parts = append(parts, part)
		p = skipWhitespace(src, np)
		if p >= len(src) || src[p] != '.' {
			return parts, p, nil
		}
		p = skipWhitespace(src, p+1)
	}
}
