package toml

// Parse turns UTF-8 TOML source text into a Document. It is the sole
// entry point into the parsing core; the facade and serializer that sit
// on top of it are external collaborators.
func Parse(src string) (*Document, error) {
	if len(src) >= 3 && src[0] == 0xEF && src[1] == 0xBB && src[2] == 0xBF {
		return nil, newParseError(src, 0, "byte order mark is not allowed")
	}

	root := newTable(originRoot)
	current := root
	p := 0
	for {
		np, err := skipVoid(src, p, true)
		if err != nil {
			return nil, err
		}
		p = np
		if p >= len(src) {
			return &Document{root}, nil
		}
		switch {
		case src[p] == '[' && p+1 < len(src) && src[p+1] == '[':
			tbl, np, err := openArrayTableHeader(src, p, root)
			if err != nil {
				return nil, err
			}
			current = tbl
			p = np
		case src[p] == '[':
			tbl, np, err := openStandardTableHeader(src, p, root)
			if err != nil {
				return nil, err
			}
			current = tbl
			p = np
		default:
			np, err := extractKV(current, src, p, false)
			if err != nil {
				return nil, err
			}
			p = np
		}
	}
}

// extractKV parses "dotted-key = value" at p, assigns it into target (or
// a table reached from target by walking the dotted key's intermediate
// parts). When inline is true it returns the cursor just past the value;
// inline callers (inline-table bodies) handle their own trailing
// delimiter. When inline is false, it additionally requires the statement
// to end at a newline, EOF, or a trailing comment, and returns the cursor
// just past that line ending.
func extractKV(target *Table, src string, p int, inline bool) (int, error) {
	keyStart := p
	parts, np, err := parseDottedKey(src, p)
	if err != nil {
		return np, err
	}
	p = skipWhitespace(src, np)
	if p >= len(src) || src[p] != '=' {
		return p, newParseError(src, p, "expected '=' after key")
	}
	p = skipWhitespace(src, p+1)

	ctx := ctxTop
	if inline {
		ctx = ctxInlineTable
	}
	val, np2, err := extractValue(src, p, ctx)
	if err != nil {
		return np2, err
	}
	p = np2

	leafTable := target
	if len(parts) > 1 {
		leafTable, err = extendDottedKey(src, keyStart, target, parts[:len(parts)-1])
		if err != nil {
			return p, err
		}
	}
	leafKey := parts[len(parts)-1]
	if leafTable.frozen {
		return p, newParseError(src, keyStart, "cannot assign into a frozen table")
	}
	if _, exists := leafTable.get(leafKey); exists {
		return p, newParseError(src, keyStart, "duplicate key %q", leafKey)
	}
	leafTable.set(leafKey, val)

	if inline {
		return p, nil
	}
	p = skipWhitespace(src, p)
	if p < len(src) && src[p] == '#' {
		p, err = skipComment(src, p)
		if err != nil {
			return p, err
		}
	}
	return expectNewlineOrEOF(src, p)
}

// walkIntermediate walks the non-leaf parts of a dotted key relative to
// cur, auto-vivifying empty tables as needed, and returns the table the
// last part resolves into. origin/freezeNew control the bookkeeping on
// any table created along the way: dotted-key extension (extendDottedKey)
// freezes new intermediates against later becoming the terminal
// component of an explicit [a.b] header, while header-intermediate
// walking (walkHeaderIntermediate) leaves them open to a header of their
// own.
func walkIntermediate(src string, offset int, cur *Table, parts []string, origin tableOrigin, freezeNew bool) (*Table, error) {
	for _, part := range parts {
		existing, ok := cur.get(part)
		if !ok {
			nt := newTable(origin)
			nt.frozenHeader = freezeNew
			cur.set(part, tableValue(nt))
			cur = nt
			continue
		}
		switch existing.kind {
		case KindTable:
			if existing.tbl.frozen {
				return nil, newParseError(src, offset, "key %q is a frozen inline table", part)
			}
			cur = existing.tbl
		case KindArray:
			if !existing.arrIsTables || len(existing.arr) == 0 {
				return nil, newParseError(src, offset, "key %q is not a table", part)
			}
			cur = existing.arr[len(existing.arr)-1].tbl
		default:
			return nil, newParseError(src, offset, "key %q is not a table", part)
		}
	}
	return cur, nil
}

// extendDottedKey walks intermediate (non-leaf) parts of a dotted key in
// a key-value statement relative to cur, freezing every table it creates
// against later becoming the terminal component of an explicit header.
func extendDottedKey(src string, offset int, cur *Table, parts []string) (*Table, error) {
	return walkIntermediate(src, offset, cur, parts, originDottedKeyImplicit, true)
}

// walkHeaderIntermediate walks all but the last component of a header's
// dotted key from root, auto-vivifying plain (non-frozen) tables that
// remain open to a later explicit header of their own.
func walkHeaderIntermediate(src string, offset int, root *Table, parts []string) (*Table, error) {
	return walkIntermediate(src, offset, root, parts, originHeaderIntermediate, false)
}

// openStandardTableHeader parses a "[a.b.c]" header at p and returns the
// table it opens.
func openStandardTableHeader(src string, p int, root *Table) (*Table, int, error) {
	headerStart := p
	p++ // '['
	p = skipWhitespace(src, p)
	parts, np, err := parseDottedKey(src, p)
	if err != nil {
		return nil, np, err
	}
	p = skipWhitespace(src, np)
	if p >= len(src) || src[p] != ']' {
		return nil, p, newParseError(src, p, "expected ']'")
	}
	p++
	p, err = finishHeaderLine(src, p)
	if err != nil {
		return nil, p, err
	}

	parent, err := walkHeaderIntermediate(src, headerStart, root, parts[:len(parts)-1])
	if err != nil {
		return nil, p, err
	}
	last := parts[len(parts)-1]
	existing, ok := parent.get(last)
	if !ok {
		nt := newTable(originHeaderExplicit)
		nt.declaredHeader = true
		parent.set(last, tableValue(nt))
		return nt, p, nil
	}
	if existing.kind != KindTable {
		return nil, p, newParseError(src, headerStart, "key %q is already defined as a %s", last, existing.kind)
	}
	t := existing.tbl
	if t.frozen || t.frozenHeader {
		return nil, p, newParseError(src, headerStart, "table %q cannot be redeclared as a header", last)
	}
	if t.declaredHeader {
		return nil, p, newParseError(src, headerStart, "table %q redeclared", last)
	}
	t.declaredHeader = true
	return t, p, nil
}

// openArrayTableHeader parses a "[[a.b]]" header at p, appends a new
// table to the array at a.b (creating it if absent), and returns the new
// table.
func openArrayTableHeader(src string, p int, root *Table) (*Table, int, error) {
	headerStart := p
	p += 2 // '[['
	p = skipWhitespace(src, p)
	parts, np, err := parseDottedKey(src, p)
	if err != nil {
		return nil, np, err
	}
	p = skipWhitespace(src, np)
	if p+1 >= len(src) || src[p] != ']' || src[p+1] != ']' {
		return nil, p, newParseError(src, p, "expected ']]'")
	}
	p += 2
	p, err = finishHeaderLine(src, p)
	if err != nil {
		return nil, p, err
	}

	parent, err := walkHeaderIntermediate(src, headerStart, root, parts[:len(parts)-1])
	if err != nil {
		return nil, p, err
	}
	last := parts[len(parts)-1]
	existing, ok := parent.get(last)
	nt := newTable(originArrayElement)
	if !ok {
		parent.set(last, arrayValue([]Value{tableValue(nt)}, true))
		return nt, p, nil
	}
	if existing.kind != KindArray || !existing.arrIsTables {
		return nil, p, newParseError(src, headerStart, "key %q is already defined as a %s", last, existing.kind)
	}
	existing.arr = append(existing.arr, tableValue(nt))
	parent.set(last, existing)
	return nt, p, nil
}

func finishHeaderLine(src string, p int) (int, error) {
	p = skipWhitespace(src, p)
	var err error
	if p < len(src) && src[p] == '#' {
		p, err = skipComment(src, p)
		if err != nil {
			return p, err
		}
	}
	return expectNewlineOrEOF(src, p)
}
