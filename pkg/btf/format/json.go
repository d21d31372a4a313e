package format

import (
	"bytes"
	"encoding/json"

	"github.com/flier/go-btf/pkg/btf/types"
)

// JSON renders entries as the `{"types": [...]}` document, compactly.
func JSON(base, entries []types.Entry) ([]byte, error) {
	return marshalJSON(base, entries, false)
}

// JSONPretty renders the same document indented for readability.
func JSONPretty(base, entries []types.Entry) ([]byte, error) {
	return marshalJSON(base, entries, true)
}

func marshalJSON(base, entries []types.Entry, pretty bool) ([]byte, error) {
	doc := ToDocument(base, entries)
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
