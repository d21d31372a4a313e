// Package format renders a decoded entry vector as the thin
// text/JSON/YAML projections spec.md §6.3 describes; none of it
// participates in decoding, only in presenting what C2 already
// produced.
package format

import (
	"fmt"
	"strings"

	"github.com/flier/go-btf/pkg/btf/types"
)

const anon = "(anon)"

// Text renders entries (1-based ids, offset by len(base) if this is
// split BTF) one line per entry, in the exact token layout the
// reference dump tool uses.
func Text(base, entries []types.Entry) string {
	var b strings.Builder
	for i, e := range entries {
		id := len(base) + i + 1
		writeTextEntry(&b, id, e, base, entries)
	}
	return b.String()
}

func writeTextEntry(b *strings.Builder, id int, e types.Entry, base, local []types.Entry) {
	fmt.Fprintf(b, "[%d] ", id)

	switch t := e.(type) {
	case types.Void:
		b.WriteString("VOID\n")

	case types.Int:
		name, _ := t.Name()
		fmt.Fprintf(b, "INT '%s' size=%d bits_offset=%d nr_bits=%d encoding=%s\n",
			name, t.Size, t.BitsOffset, t.NrBits, t.Encoding)

	case types.Pointer:
		fmt.Fprintf(b, "PTR '%s' type_id=%d\n", anon, t.TypeID)

	case types.Array:
		fmt.Fprintf(b, "ARRAY '%s' type_id=%d index_type_id=%d nr_elems=%d\n",
			anon, t.TypeID, t.IndexTypeID, t.NrElems)

	case types.Struct:
		writeComposite(b, "STRUCT", t.Name, t.Size, t.Members)

	case types.Union:
		writeComposite(b, "UNION", t.Name, t.Size, t.Members)

	case types.Enum:
		kind := "ENUM"
		if t.Is64 {
			kind = "ENUM64"
		}
		name, has := t.Name()
		if !has {
			name = anon
		}
		fmt.Fprintf(b, "%s '%s' size=%d vlen=%d\n", kind, name, t.Size, len(t.Values))
		for _, v := range t.Values {
			vn, vhas := v.Name()
			if !vhas {
				vn = anon
			}
			fmt.Fprintf(b, "\t'%s' val=%d\n", vn, v.Val)
		}

	case types.Forward:
		name, _ := t.Name()
		fmt.Fprintf(b, "FWD '%s' fwd_kind=%s\n", name, t.FwdKind)

	case types.Typedef:
		name, _ := t.Name()
		fmt.Fprintf(b, "TYPEDEF '%s' type_id=%d\n", name, t.TypeID)

	case types.Volatile:
		fmt.Fprintf(b, "VOLATILE '%s' type_id=%d\n", anon, t.TypeID)

	case types.Const:
		fmt.Fprintf(b, "CONST '%s' type_id=%d\n", anon, t.TypeID)

	case types.Restrict:
		fmt.Fprintf(b, "RESTRICT '%s' type_id=%d\n", anon, t.TypeID)

	case types.Func:
		name, _ := t.Name()
		fmt.Fprintf(b, "FUNC '%s' type_id=%d linkage=%s\n", name, t.TypeID, t.Linkage)

	case types.FuncProto:
		fmt.Fprintf(b, "FUNC_PROTO '%s' ret_type_id=%d vlen=%d\n", anon, t.RetTypeID, len(t.Params))
		for _, p := range t.Params {
			pn, phas := p.Name()
			if !phas {
				pn = anon
			}
			fmt.Fprintf(b, "\t'%s' type_id=%d\n", pn, p.TypeID)
		}

	case types.Variable:
		name, _ := t.Name()
		fmt.Fprintf(b, "VAR '%s' type_id=%d, linkage=%s\n", name, t.TypeID, t.Linkage)

	case types.DataSec:
		name, _ := t.Name()
		fmt.Fprintf(b, "DATASEC '%s' size=%d vlen=%d\n", name, t.Size, len(t.Sections))
		for _, s := range t.Sections {
			fmt.Fprintf(b, "\ttype_id=%d offset=%d size=%d (VAR '%s')\n",
				s.TypeID, s.Offset, s.Size, variableNameAt(base, local, s.TypeID))
		}

	case types.Float:
		name, _ := t.Name()
		fmt.Fprintf(b, "FLOAT '%s' size=%d\n", name, t.Size)

	case types.DeclTag:
		name, _ := t.Name()
		fmt.Fprintf(b, "DECL_TAG '%s' type_id=%d component_idx=%d\n", name, t.TypeID, t.ComponentIdx)

	case types.TypeTag:
		name, _ := t.Name()
		fmt.Fprintf(b, "TYPE_TAG '%s' type_id=%d\n", name, t.TypeID)
	}
}

func writeComposite(b *strings.Builder, kind string, nameFn func() (string, bool), size uint32, members []types.Member) {
	name, has := nameFn()
	if !has {
		name = anon
	}
	fmt.Fprintf(b, "%s '%s' size=%d vlen=%d\n", kind, name, size, len(members))
	for _, m := range members {
		mn, mhas := m.Name()
		if !mhas {
			mn = anon
		}
		fmt.Fprintf(b, "\t'%s' type_id=%d bits_offset=%d", mn, m.TypeID, m.BitsOffset)
		if m.BitfieldSize != 0 {
			fmt.Fprintf(b, " bitfield_size=%d", m.BitfieldSize)
		}
		b.WriteByte('\n')
	}
}

// variableNameAt resolves a DataSec section's type id against the
// (base, local) pair and, if it's a Variable, returns its name;
// otherwise "UNKNOWN", matching the reference dump tool's behavior
// when a DATASEC section doesn't point at a VAR entry.
func variableNameAt(base, local []types.Entry, typeID uint32) string {
	entry, ok := types.Resolve(base, local, typeID)
	if !ok {
		return "UNKNOWN"
	}
	if v, ok := entry.(types.Variable); ok {
		name, _ := v.Name()
		return name
	}
	return "UNKNOWN"
}
