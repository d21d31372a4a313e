package format

import (
	"github.com/flier/go-btf/pkg/btf/types"
	"gopkg.in/yaml.v3"
)

// YAML renders entries as the same `{types: [...]}` document the JSON
// projection produces, using the only YAML library present anywhere
// in the example pack this module was grounded on.
func YAML(base, entries []types.Entry) ([]byte, error) {
	return yaml.Marshal(ToDocument(base, entries))
}
