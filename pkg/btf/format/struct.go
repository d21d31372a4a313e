package format

import (
	"encoding/json"

	"github.com/flier/go-btf/pkg/btf/types"
)

// Document is the `{"types": [...]}` document shape spec.md §6.3
// describes for both the JSON and YAML projections.
type Document struct {
	Types []TypeDoc `json:"types" yaml:"types"`
}

// TypeDoc is one decoded entry, tagged with its 1-based id and its
// kind rendered in SCREAMING_SNAKE_CASE.
type TypeDoc struct {
	ID     int                    `json:"id" yaml:"id"`
	Kind   string                 `json:"kind" yaml:"kind"`
	Fields map[string]interface{} `json:"-" yaml:",inline"`
}

// MarshalJSON flattens Fields alongside id/kind, since encoding/json
// has no inline-struct-field support the way yaml.v3 does.
func (d TypeDoc) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(d.Fields)+2)
	for k, v := range d.Fields {
		flat[k] = v
	}
	flat["id"] = d.ID
	flat["kind"] = d.Kind
	return json.Marshal(flat)
}

// ToDocument builds the serializable projection of entries. base is
// only used to compute the right starting id for split-BTF local
// entries; base's own entries are not included in the document.
func ToDocument(base, entries []types.Entry) Document {
	doc := Document{Types: make([]TypeDoc, 0, len(entries))}
	for i, e := range entries {
		id := len(base) + i + 1
		doc.Types = append(doc.Types, TypeDoc{ID: id, Kind: kindTag(e), Fields: fieldsOf(e, entries)})
	}
	return doc
}

func nameOrOmit(e types.Entry) (string, bool) {
	return e.Name()
}

// kindTag renders the SCREAMING_SNAKE_CASE kind tag for e, distinguishing
// an ENUM64 entry from a plain ENUM the same way the text projection does.
func kindTag(e types.Entry) string {
	if enum, ok := e.(types.Enum); ok {
		return enum.EffectiveKind().String()
	}
	return e.Kind().String()
}

func memberDoc(m types.Member) map[string]interface{} {
	d := map[string]interface{}{
		"type_id":     m.TypeID,
		"bits_offset": m.BitsOffset,
	}
	if name, has := m.Name(); has {
		d["name"] = name
	}
	if m.BitfieldSize != 0 {
		d["bitfield_size"] = m.BitfieldSize
	}
	return d
}

func enumValueDoc(v types.EnumValue) map[string]interface{} {
	d := map[string]interface{}{"val": v.Val}
	if name, has := v.Name(); has {
		d["name"] = name
	}
	return d
}

func paramDoc(p types.Param) map[string]interface{} {
	d := map[string]interface{}{"type_id": p.TypeID}
	if name, has := p.Name(); has {
		d["name"] = name
	}
	return d
}

func sectionDoc(s types.SectionInfo) map[string]interface{} {
	return map[string]interface{}{
		"type_id": s.TypeID,
		"offset":  s.Offset,
		"size":    s.Size,
	}
}

func fieldsOf(e types.Entry, local []types.Entry) map[string]interface{} {
	f := map[string]interface{}{}
	if name, has := nameOrOmit(e); has {
		f["name"] = name
	}

	switch t := e.(type) {
	case types.Void:
	case types.Int:
		f["size"] = t.Size
		f["bits_offset"] = t.BitsOffset
		f["nr_bits"] = t.NrBits
		f["encoding"] = t.Encoding.String()
	case types.Pointer:
		f["type_id"] = t.TypeID
	case types.Array:
		f["type_id"] = t.TypeID
		f["index_type_id"] = t.IndexTypeID
		f["nr_elems"] = t.NrElems
	case types.Struct:
		f["size"] = t.Size
		members := make([]map[string]interface{}, len(t.Members))
		for i, m := range t.Members {
			members[i] = memberDoc(m)
		}
		f["members"] = members
	case types.Union:
		f["size"] = t.Size
		members := make([]map[string]interface{}, len(t.Members))
		for i, m := range t.Members {
			members[i] = memberDoc(m)
		}
		f["members"] = members
	case types.Enum:
		f["size"] = t.Size
		values := make([]map[string]interface{}, len(t.Values))
		for i, v := range t.Values {
			values[i] = enumValueDoc(v)
		}
		f["values"] = values
	case types.Forward:
		f["fwd_kind"] = t.FwdKind.String()
	case types.Typedef:
		f["type_id"] = t.TypeID
	case types.Volatile:
		f["type_id"] = t.TypeID
	case types.Const:
		f["type_id"] = t.TypeID
	case types.Restrict:
		f["type_id"] = t.TypeID
	case types.Func:
		f["type_id"] = t.TypeID
		f["linkage"] = t.Linkage.String()
	case types.FuncProto:
		f["ret_type_id"] = t.RetTypeID
		params := make([]map[string]interface{}, len(t.Params))
		for i, p := range t.Params {
			params[i] = paramDoc(p)
		}
		f["params"] = params
	case types.Variable:
		f["type_id"] = t.TypeID
		f["linkage"] = t.Linkage.String()
	case types.DataSec:
		f["size"] = t.Size
		sections := make([]map[string]interface{}, len(t.Sections))
		for i, s := range t.Sections {
			sections[i] = sectionDoc(s)
		}
		f["sections"] = sections
	case types.Float:
		f["size"] = t.Size
	case types.DeclTag:
		f["type_id"] = t.TypeID
		f["component_idx"] = t.ComponentIdx
	case types.TypeTag:
		f["type_id"] = t.TypeID
	}
	return f
}
