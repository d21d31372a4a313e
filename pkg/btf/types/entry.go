package types

import "strings"

// Entry is the decoded, polymorphic BTF record every kind is returned
// as: a Kind discriminator plus a name accessor, with one concrete Go
// type per kind carrying that kind's own payload fields.
type Entry interface {
	Kind() Kind
	// Name returns the entry's declared name and whether it has one.
	// Kinds that carry no name offset on the wire always return ("", false).
	Name() (string, bool)
}

type named struct {
	name string
	has  bool
}

func (n named) Name() (string, bool) { return n.name, n.has }

// Void is the synthetic entry for type id 0 and for any on-wire entry
// whose kind byte falls outside 0..19.
type Void struct{}

func (Void) Kind() Kind             { return Unknown }
func (Void) Name() (string, bool)   { return "", false }

// IntEncoding is the set of flags packed into an INT entry's trailing
// word: signedness, character semantics, boolean semantics.
type IntEncoding uint8

const (
	Signed IntEncoding = 1 << iota
	Char
	Bool
)

func (e IntEncoding) IsSigned() bool { return e&Signed != 0 }
func (e IntEncoding) IsChar() bool   { return e&Char != 0 }
func (e IntEncoding) IsBool() bool   { return e&Bool != 0 }

// String renders the flag set the way the reference text format does:
// pipe-joined flag names in declaration order, or "(none)" when empty.
func (e IntEncoding) String() string {
	var parts []string
	if e.IsSigned() {
		parts = append(parts, "SIGNED")
	}
	if e.IsChar() {
		parts = append(parts, "CHAR")
	}
	if e.IsBool() {
		parts = append(parts, "BOOL")
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, " | ")
}

// Int is an integer type: a size in bytes plus a bit-level layout
// (bits_offset, nr_bits) and an encoding flag set.
type Int struct {
	named
	Size       uint32
	BitsOffset uint8
	NrBits     uint8
	Encoding   IntEncoding
}

func (Int) Kind() Kind { return KindInt }

// Pointer is a pointer to another type; it carries no name of its own.
type Pointer struct {
	TypeID uint32
}

func (Pointer) Kind() Kind           { return KindPtr }
func (Pointer) Name() (string, bool) { return "", false }

// Array is a fixed-length array of a referenced element type, indexed
// by a referenced (usually synthetic) index type.
type Array struct {
	TypeID      uint32
	IndexTypeID uint32
	NrElems     uint32
}

func (Array) Kind() Kind           { return KindArray }
func (Array) Name() (string, bool) { return "", false }

// Member is one field of a Struct or Union.
type Member struct {
	named
	TypeID       uint32
	BitsOffset   uint32
	BitfieldSize uint8
}

// Struct is a structure type: an optional name, a size in bytes, and
// an ordered member list.
type Struct struct {
	named
	Size    uint32
	Members []Member
}

func (Struct) Kind() Kind { return KindStruct }

// Union has the same shape as Struct; members occupy overlapping
// storage rather than sequential offsets, which only affects emission,
// not decoding.
type Union struct {
	named
	Size    uint32
	Members []Member
}

func (Union) Kind() Kind { return KindUnion }

// EnumValue is one named constant of an Enum or Enum64.
type EnumValue struct {
	named
	Val int64
}

// Enum is an enumeration type. Enum (32-bit) values zero-extend their
// raw wire bit pattern to int64; Is64 distinguishes an ENUM64 entry,
// whose values were assembled from a 64-bit hi/lo pair.
type Enum struct {
	named
	Size   uint32
	Is64   bool
	Values []EnumValue
}

func (Enum) Kind() Kind {
	return KindEnum
}

// EffectiveKind reports KindEnum64 when this entry decoded from an
// ENUM64 wire record, for callers (the JSON/YAML projection) that must
// distinguish the two on output.
func (e Enum) EffectiveKind() Kind {
	if e.Is64 {
		return KindEnum64
	}
	return KindEnum
}

// ForwardKind distinguishes the two composite kinds a Forward
// declaration can stand in for.
type ForwardKind uint8

const (
	ForwardStruct ForwardKind = iota
	ForwardUnion
)

func (k ForwardKind) String() string {
	if k == ForwardUnion {
		return "union"
	}
	return "struct"
}

// Forward is a named composite known to exist but not described here;
// the binding emitter resolves it to void unless a local complete
// declaration with the same name is found.
type Forward struct {
	named
	FwdKind ForwardKind
}

func (Forward) Kind() Kind { return KindFwd }

// Typedef, Volatile, Const, Restrict, and TypeTag all just wrap
// another referenced type; they differ only in whether they carry a
// name and in how the emitter treats them.

type Typedef struct {
	named
	TypeID uint32
}

func (Typedef) Kind() Kind { return KindTypedef }

type Volatile struct{ TypeID uint32 }

func (Volatile) Kind() Kind           { return KindVolatile }
func (Volatile) Name() (string, bool) { return "", false }

type Const struct{ TypeID uint32 }

func (Const) Kind() Kind           { return KindConst }
func (Const) Name() (string, bool) { return "", false }

type Restrict struct{ TypeID uint32 }

func (Restrict) Kind() Kind           { return KindRestrict }
func (Restrict) Name() (string, bool) { return "", false }

type TypeTag struct {
	named
	TypeID uint32
}

func (TypeTag) Kind() Kind { return KindTypeTag }

// Linkage is a FUNC or VARIABLE's storage linkage.
type Linkage uint32

const (
	LinkageStatic Linkage = iota
	LinkageGlobal
	LinkageExtern
)

func (l Linkage) String() string {
	switch l {
	case LinkageGlobal:
		return "global"
	case LinkageExtern:
		return "extern"
	default:
		return "static"
	}
}

// Func is a function declaration. Unlike every other kind with a
// trailing payload, its Linkage is read straight from the entry
// header's vlen field, not from any bytes after the header.
type Func struct {
	named
	TypeID  uint32
	Linkage Linkage
}

func (Func) Kind() Kind { return KindFunc }

// Param is one parameter of a FuncProto.
type Param struct {
	named
	TypeID uint32
}

// IsVariableArgument reports whether this parameter is the variadic
// sentinel: both its name offset and its type id are zero.
func (p Param) IsVariableArgument() bool {
	return !p.has && p.TypeID == 0
}

// FuncProto is a function's prototype: its return type and parameter
// list. HasVariableArgument is true when the last parameter is the
// variadic sentinel.
type FuncProto struct {
	RetTypeID uint32
	Params    []Param
}

func (FuncProto) Kind() Kind           { return KindFuncProto }
func (FuncProto) Name() (string, bool) { return "", false }

// HasVariableArgument reports whether the prototype ends in the
// variadic sentinel parameter.
func (f FuncProto) HasVariableArgument() bool {
	if len(f.Params) == 0 {
		return false
	}
	return f.Params[len(f.Params)-1].IsVariableArgument()
}

// Variable is a global variable declaration.
type Variable struct {
	named
	TypeID  uint32
	Linkage Linkage
}

func (Variable) Kind() Kind { return KindVar }

// SectionInfo is one variable slot inside a DataSec.
type SectionInfo struct {
	TypeID uint32
	Offset uint32
	Size   uint32
}

// DataSec describes an ELF section's worth of variables, each with an
// offset and size; it carries no ELF-resolution logic of its own (that
// is explicitly out of scope, see spec.md §1).
type DataSec struct {
	named
	Size     uint32
	Sections []SectionInfo
}

func (DataSec) Kind() Kind { return KindDataSec }

// Float is a floating-point type of the given size in bytes.
type Float struct {
	named
	Size uint32
}

func (Float) Kind() Kind { return KindFloat }

// DeclTag attaches a declaration-level tag to a referenced type,
// optionally pointing at one specific member/parameter by index.
type DeclTag struct {
	named
	TypeID       uint32
	ComponentIdx int32
}

func (DeclTag) Kind() Kind { return KindDeclTag }
