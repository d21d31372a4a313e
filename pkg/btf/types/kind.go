// Package types implements the decoded BTF entry stream: the pull
// iterator over a type section (C2) and the polymorphic Entry sum
// type every decoded record is returned as.
package types

// Kind is the BTF entry kind discriminant. Values 0-19 are meaningful;
// anything else collapses to Unknown, which decodes as a synthetic
// Void entry with no trailing payload.
type Kind uint8

const (
	Unknown Kind = iota
	KindInt
	KindPtr
	KindArray
	KindStruct
	KindUnion
	KindEnum
	KindFwd
	KindTypedef
	KindVolatile
	KindConst
	KindRestrict
	KindFunc
	KindFuncProto
	KindVar
	KindDataSec
	KindFloat
	KindDeclTag
	KindTypeTag
	KindEnum64
)

var kindNames = [...]string{
	"UNKNOWN", "INT", "PTR", "ARRAY", "STRUCT", "UNION", "ENUM", "FWD",
	"TYPEDEF", "VOLATILE", "CONST", "RESTRICT", "FUNC", "FUNC_PROTO",
	"VAR", "DATASEC", "FLOAT", "DECL_TAG", "TYPE_TAG", "ENUM64",
}

// String renders the kind in the SCREAMING_SNAKE_CASE tag used by the
// text and JSON/YAML projections.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// FromRaw maps the wire's 5-bit kind discriminant to a Kind, folding
// any value outside 0..19 to Unknown rather than treating it as
// undefined behavior. The 12-byte entry header is still consumed for
// an Unknown kind, keeping the stream aligned.
func FromRaw(raw uint8) Kind {
	if raw <= uint8(KindEnum64) {
		return Kind(raw)
	}
	return Unknown
}
