package mate

// NormalizeID returns the key under which a read is matched with its
// mate, given the read's ID line.
//
// The line is cut at the first whitespace, the leading '@' is dropped,
// and if the identifier ends in one of '/', '_', '.' followed by one of
// '1', '2', 'f', 'r', the final character is removed. For example,
// "@r7/1 extra" and "@r7/2" both yield "r7/", while "@r7" yields "r7".
// The comparison is byte-wise and case sensitive.
//
// Identifiers shorter than two bytes are returned as-is.
func NormalizeID(line []byte) string {
	id := line
	for i, c := range id {
		if isSpace(c) {
			id = id[:i]
			break
		}
	}
	if len(id) > 0 && id[0] == '@' {
		id = id[1:]
	}
	if n := len(id); n >= 2 && isMarkerSep(id[n-2]) && isMarker(id[n-1]) {
		id = id[:n-1]
	}
	return string(id)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isMarkerSep(c byte) bool {
	return c == '/' || c == '_' || c == '.'
}

func isMarker(c byte) bool {
	return c == '1' || c == '2' || c == 'f' || c == 'r'
}
