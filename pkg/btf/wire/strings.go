package wire

import (
	"bytes"
	"unicode/utf8"
)

// Strings is the raw NUL-terminated string table that entry names are
// resolved against. Offset 0 always means "no name".
type Strings []byte

// ReadStr resolves a name offset against the string table. Offset 0
// yields ("", false) — "absent", not an empty string. Any other
// offset must land inside the table and point at valid UTF-8 up to
// the next NUL byte.
func (s Strings) ReadStr(off uint32) (string, bool, error) {
	if off == 0 {
		return "", false, nil
	}
	if uint64(off) >= uint64(len(s)) {
		return "", false, outOfRange("string offset", uint64(off))
	}
	rest := s[off:]
	end := bytes.IndexByte(rest, 0)
	if end == -1 {
		return "", false, newErr(Incomplete, "string")
	}
	raw := rest[:end]
	if !utf8.Valid(raw) {
		return "", false, newErr(Utf8, "string")
	}
	return string(raw), true, nil
}
