package binding

import (
	"fmt"

	"github.com/flier/go-btf/pkg/btf/types"
)

// TypeRef renders the inline type expression a field, parameter, or
// return type reference resolves to, per spec.md §4.3's
// type-reference-expansion table.
func (e *Emitter) TypeRef(id uint32) (string, error) {
	entry, err := e.resolve(id)
	if err != nil {
		return "", err
	}
	return e.typeRefFor(id, entry)
}

func (e *Emitter) typeRefFor(id uint32, entry types.Entry) (string, error) {
	switch t := entry.(type) {
	case types.Void:
		return "c_void", nil

	case types.Int:
		if t.Encoding.IsBool() {
			return "bool", nil
		}
		if t.BitsOffset == 0 {
			sign := "u"
			if t.Encoding.IsSigned() {
				sign = "i"
			}
			return fmt.Sprintf("%s%d", sign, t.NrBits), nil
		}
		name, _ := t.Name()
		return EscapeKeyword(name), nil

	case types.Float:
		return fmt.Sprintf("f%d", t.Size*8), nil

	case types.Pointer:
		return e.pointerRef(t)

	case types.Array:
		inner, err := e.TypeRef(t.TypeID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%s; %d]", inner, t.NrElems), nil

	case types.Struct:
		name, has := t.Name()
		return e.compositeName(id, name, has, "_anon_struct"), nil

	case types.Union:
		name, has := t.Name()
		return e.compositeName(id, name, has, "_anon_union"), nil

	case types.Enum:
		name, has := t.Name()
		return e.compositeName(id, name, has, "_anon_enum"), nil

	case types.Typedef:
		name, _ := t.Name()
		return EscapeKeyword(e.ns.GetUniqueName(name, id)), nil

	case types.Forward:
		name, _ := t.Name()
		return EscapeKeyword(e.ns.GetUniqueName(name, id)), nil

	case types.Const:
		return e.TypeRef(t.TypeID)
	case types.Volatile:
		return e.TypeRef(t.TypeID)
	case types.Restrict:
		return e.TypeRef(t.TypeID)
	case types.TypeTag:
		return e.TypeRef(t.TypeID)

	case types.FuncProto:
		params, err := e.funcProtoParams(t)
		if err != nil {
			return "", err
		}
		ret, err := e.funcProtoReturn(t)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("fn(%s)%s", params, ret), nil

	default:
		return "", logicErrorf("type id %d (%s) cannot appear as a field/param type", id, entry.Kind())
	}
}

// pointerRef renders a PTR reference, special-casing a const or
// function-prototype pointee.
func (e *Emitter) pointerRef(p types.Pointer) (string, error) {
	if p.TypeID == 0 {
		return "*mut c_void", nil
	}
	pointee, err := e.resolve(p.TypeID)
	if err != nil {
		return "", err
	}
	switch pt := pointee.(type) {
	case types.Const:
		inner, err := e.TypeRef(pt.TypeID)
		if err != nil {
			return "", err
		}
		return "*const " + inner, nil
	case types.FuncProto:
		params, err := e.funcProtoParams(pt)
		if err != nil {
			return "", err
		}
		ret, err := e.funcProtoReturn(pt)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`Option<unsafe extern "C" fn(%s)%s>`, params, ret), nil
	default:
		inner, err := e.TypeRef(p.TypeID)
		if err != nil {
			return "", err
		}
		return "*mut " + inner, nil
	}
}

// compositeName resolves (and, the first time, allocates) the
// uniquified name for a struct/union/enum reference. Anonymous
// composites get a synthetic "<prefix>_<id>" proposal before
// uniquification, per spec.md §4.3. The result is keyword-escaped.
func (e *Emitter) compositeName(id uint32, name string, has bool, anonPrefix string) string {
	proposed := name
	if !has {
		proposed = fmt.Sprintf("%s_%d", anonPrefix, id)
	}
	return EscapeKeyword(e.ns.GetUniqueName(proposed, id))
}

// funcProtoParams renders a FuncProto's parameter list: the variadic
// sentinel as "...", named parameters as "name: Type", unnamed ones as
// a bare "Type".
func (e *Emitter) funcProtoParams(p types.FuncProto) (string, error) {
	parts := make([]string, 0, len(p.Params))
	for _, param := range p.Params {
		if param.IsVariableArgument() {
			parts = append(parts, "...")
			continue
		}
		ty, err := e.TypeRef(param.TypeID)
		if err != nil {
			return "", err
		}
		if name, has := param.Name(); has {
			parts = append(parts, fmt.Sprintf("%s: %s", EscapeKeyword(name), ty))
		} else {
			parts = append(parts, ty)
		}
	}
	return joinComma(parts), nil
}

// funcProtoReturn renders a FuncProto's return-type suffix, omitted
// entirely when the prototype declares no return type.
func (e *Emitter) funcProtoReturn(p types.FuncProto) (string, error) {
	if p.RetTypeID == 0 {
		return "", nil
	}
	ty, err := e.TypeRef(p.RetTypeID)
	if err != nil {
		return "", err
	}
	return " -> " + ty, nil
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
