package types

// The constructors below build Entry values directly, for callers
// assembling a synthetic type graph (tests, or a future encoder) that
// don't want to round-trip through the wire decoder.

func NewMember(name string, typeID uint32, bitsOffset uint32, bitfieldSize uint8) Member {
	return Member{named: named{name, name != ""}, TypeID: typeID, BitsOffset: bitsOffset, BitfieldSize: bitfieldSize}
}

func NewEnumValue(name string, val int64) EnumValue {
	return EnumValue{named: named{name, name != ""}, Val: val}
}

func NewParam(name string, typeID uint32) Param {
	return Param{named: named{name, name != ""}, TypeID: typeID}
}

func NewInt(name string, size uint32, bitsOffset, nrBits uint8, encoding IntEncoding) Int {
	return Int{named: named{name, true}, Size: size, BitsOffset: bitsOffset, NrBits: nrBits, Encoding: encoding}
}

func NewFloat(name string, size uint32) Float {
	return Float{named: named{name, true}, Size: size}
}

func NewStruct(name string, size uint32, members []Member) Struct {
	return Struct{named: named{name, name != ""}, Size: size, Members: members}
}

func NewUnion(name string, size uint32, members []Member) Union {
	return Union{named: named{name, name != ""}, Size: size, Members: members}
}

func NewEnum(name string, size uint32, is64 bool, values []EnumValue) Enum {
	return Enum{named: named{name, name != ""}, Size: size, Is64: is64, Values: values}
}

func NewForward(name string, fwdKind ForwardKind) Forward {
	return Forward{named: named{name, true}, FwdKind: fwdKind}
}

func NewTypedef(name string, typeID uint32) Typedef {
	return Typedef{named: named{name, true}, TypeID: typeID}
}

func NewFunc(name string, typeID uint32, linkage Linkage) Func {
	return Func{named: named{name, true}, TypeID: typeID, Linkage: linkage}
}

func NewFuncProto(retTypeID uint32, params []Param) FuncProto {
	return FuncProto{RetTypeID: retTypeID, Params: params}
}

func NewVariable(name string, typeID uint32, linkage Linkage) Variable {
	return Variable{named: named{name, true}, TypeID: typeID, Linkage: linkage}
}

func NewDataSec(name string, size uint32, sections []SectionInfo) DataSec {
	return DataSec{named: named{name, true}, Size: size, Sections: sections}
}

func NewDeclTag(name string, typeID uint32, componentIdx int32) DeclTag {
	return DeclTag{named: named{name, true}, TypeID: typeID, ComponentIdx: componentIdx}
}

func NewTypeTag(name string, typeID uint32) TypeTag {
	return TypeTag{named: named{name, true}, TypeID: typeID}
}
