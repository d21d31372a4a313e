package binding

import (
	"fmt"
	"strings"

	"github.com/flier/go-btf/pkg/btf/types"
)

// declFor dispatches one local entry to its top-level declaration,
// per spec.md §4.3's emission table. Most kinds emit nothing at the
// top level; their contribution is only as other declarations'
// field/param type references.
func (e *Emitter) declFor(id uint32, entry types.Entry) (string, error) {
	switch t := entry.(type) {
	case types.Int:
		if !t.Encoding.IsBool() {
			return "", nil
		}
		name, _ := t.Name()
		decl := e.ns.GetUniqueName(name, id)
		return fmt.Sprintf("pub type %s = bool;\n\n", EscapeKeyword(decl)), nil

	case types.Float:
		name, _ := t.Name()
		decl := e.ns.GetUniqueName(name, id)
		return fmt.Sprintf("pub type %s = f%d;\n\n", EscapeKeyword(decl), t.Size*8), nil

	case types.Struct:
		name, has := t.Name()
		decl := e.compositeName(id, name, has, "_anon_struct")
		return e.structDecl(decl, t.Members)

	case types.Union:
		name, has := t.Name()
		decl := e.compositeName(id, name, has, "_anon_union")
		return e.unionDecl(decl, t.Members)

	case types.Enum:
		name, has := t.Name()
		decl := e.compositeName(id, name, has, "_anon_enum")
		return e.enumDecl(decl, t.Size, t.Values), nil

	case types.Forward:
		return e.forwardDecl(id, t)

	case types.Typedef:
		return e.typedefDecl(id, t)

	case types.Func:
		return e.funcDecl(t)

	default:
		return "", nil
	}
}

func (e *Emitter) structDecl(name string, members []types.Member) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "#[repr(C)]\n#[derive(Clone, Copy)]\npub struct %s {\n", name)
	for i, m := range members {
		ty, err := e.TypeRef(m.TypeID)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "    pub %s: %s,\n", e.fieldName(m, i), ty)
	}
	b.WriteString("}\n\n")
	return b.String(), nil
}

func (e *Emitter) unionDecl(name string, members []types.Member) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "#[repr(C)]\n#[derive(Clone, Copy)]\npub union %s {\n", name)
	for i, m := range members {
		ty, err := e.TypeRef(m.TypeID)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "    pub %s: ManuallyDrop<%s>,\n", e.fieldName(m, i), ty)
	}
	b.WriteString("}\n\n")
	return b.String(), nil
}

func (e *Emitter) fieldName(m types.Member, index int) string {
	if name, has := m.Name(); has {
		return EscapeKeyword(name)
	}
	return fmt.Sprintf("_anon_field_%d", index)
}

// enumDecl renders the enum body plus, when any value repeats, an impl
// block declaring the repeats as associated constants rather than
// variants — a C-style enum cannot declare two variants with the same
// discriminant.
func (e *Emitter) enumDecl(name string, size uint32, values []types.EnumValue) string {
	var b strings.Builder
	if len(values) == 0 {
		fmt.Fprintf(&b, "pub enum %s {}\n\n", name)
		return b.String()
	}

	fmt.Fprintf(&b, "#[repr(u%d)]\npub enum %s {\n", size*8, name)

	var dupes strings.Builder
	firstByValue := make(map[int64]string)
	for i, v := range values {
		vname := valueName(v, i)
		if first, seen := firstByValue[v.Val]; seen {
			fmt.Fprintf(&dupes, "    pub const %s: Self = Self::%s;\n", vname, first)
			continue
		}
		firstByValue[v.Val] = vname
		fmt.Fprintf(&b, "    %s = %d,\n", vname, v.Val)
	}
	b.WriteString("}\n\n")

	if dupes.Len() > 0 {
		fmt.Fprintf(&b, "impl %s {\n%s}\n\n", name, dupes.String())
	}
	return b.String()
}

func valueName(v types.EnumValue, index int) string {
	if name, has := v.Name(); has {
		return EscapeKeyword(name)
	}
	return fmt.Sprintf("_anon_value_%d", index)
}

// forwardDecl resolves a Fwd entry: if no local Struct/Union of the
// same name exists, typedef it to c_void; otherwise emit nothing, the
// real declaration already covers it. Only local types are searched,
// never base.
func (e *Emitter) forwardDecl(id uint32, fwd types.Forward) (string, error) {
	name, _ := fwd.Name()
	if e.hasLocalComposite(name, fwd.FwdKind) {
		return "", nil
	}
	decl := e.ns.GetUniqueName(name, id)
	return fmt.Sprintf("pub type %s = c_void;\n\n", EscapeKeyword(decl)), nil
}

func (e *Emitter) hasLocalComposite(name string, kind types.ForwardKind) bool {
	for _, entry := range e.local {
		switch t := entry.(type) {
		case types.Struct:
			if kind == types.ForwardStruct {
				if n, has := t.Name(); has && n == name {
					return true
				}
			}
		case types.Union:
			if kind == types.ForwardUnion {
				if n, has := t.Name(); has && n == name {
					return true
				}
			}
		}
	}
	return false
}

// typedefDecl skips a Typedef whose name shadows a built-in FFI type
// name or whose target already carries that exact name; otherwise
// emits a typedef to the target's rendered type reference.
func (e *Emitter) typedefDecl(id uint32, td types.Typedef) (string, error) {
	name, _ := td.Name()
	if builtinTypeNames[name] {
		return "", nil
	}
	target, err := e.resolve(td.TypeID)
	if err != nil {
		return "", err
	}
	if tn, has := target.Name(); has && tn == name {
		return "", nil
	}
	ty, err := e.TypeRef(td.TypeID)
	if err != nil {
		return "", err
	}
	decl := e.ns.GetUniqueName(name, id)
	return fmt.Sprintf("pub type %s = %s;\n\n", EscapeKeyword(decl), ty), nil
}

func (e *Emitter) funcDecl(f types.Func) (string, error) {
	name, _ := f.Name()
	protoEntry, err := e.resolve(f.TypeID)
	if err != nil {
		return "", err
	}
	proto, ok := protoEntry.(types.FuncProto)
	if !ok {
		return "", logicErrorf("func %q: type id %d is not a function prototype", name, f.TypeID)
	}
	params, err := e.funcProtoParams(proto)
	if err != nil {
		return "", err
	}
	ret, err := e.funcProtoReturn(proto)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("extern \"C\" {\n    pub fn %s(%s)%s;\n}\n\n", EscapeKeyword(name), params, ret), nil
}
