package types

import (
	"github.com/flier/go-btf/pkg/btf/wire"
)

// Types is the pull iterator over one BTF type section: each call to
// Next decodes exactly one entry, in order. After Next returns an
// error the iterator is spent; every subsequent call returns that same
// error, matching spec's "single-use-after-error" propagation policy.
type Types struct {
	cur  *wire.Cursor
	strs wire.Strings
	err  error
}

// NewTypes returns an iterator over f's type section.
func NewTypes(f *wire.File) *Types {
	return &Types{
		cur:  wire.NewCursor(f.TypeBytes, f.Order),
		strs: wire.Strings(f.StrBytes),
	}
}

// Next decodes the next entry. ok is false, with a nil error, once the
// section is exhausted.
func (t *Types) Next() (entry Entry, ok bool, err error) {
	if t.err != nil {
		return nil, false, t.err
	}
	if t.cur.Done() {
		return nil, false, nil
	}
	entry, err = t.next()
	if err != nil {
		t.err = err
		return nil, false, err
	}
	return entry, true, nil
}

func (t *Types) readStr(off uint32) (string, bool, error) {
	return t.strs.ReadStr(off)
}

func (t *Types) next() (Entry, error) {
	hdr, err := t.cur.ReadEntryHeader()
	if err != nil {
		return nil, err
	}
	kind := FromRaw(hdr.Info.RawKind())
	vlen := int(hdr.Info.VLen())
	kflag := hdr.Info.KindFlag()

	switch kind {
	case Unknown:
		return Void{}, nil

	case KindInt:
		name, has, err := t.readStr(hdr.NameOff)
		if err != nil {
			return nil, err
		}
		if !has {
			return nil, wire.NewError(wire.Expected, "int name")
		}
		wordRaw, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		word := wire.IntWord(wordRaw)
		return Int{
			named:      named{name, true},
			Size:       hdr.SizeOrType,
			BitsOffset: word.Offset(),
			NrBits:     word.Bits(),
			Encoding:   IntEncoding(word.Encoding()),
		}, nil

	case KindPtr:
		return Pointer{TypeID: hdr.SizeOrType}, nil

	case KindArray:
		elemTy, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		idxTy, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		nelems, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		return Array{TypeID: elemTy, IndexTypeID: idxTy, NrElems: nelems}, nil

	case KindStruct, KindUnion:
		name, has, err := t.readStr(hdr.NameOff)
		if err != nil {
			return nil, err
		}
		members, err := t.readMembers(vlen, kflag)
		if err != nil {
			return nil, err
		}
		if kind == KindStruct {
			return Struct{named: named{name, has}, Size: hdr.SizeOrType, Members: members}, nil
		}
		return Union{named: named{name, has}, Size: hdr.SizeOrType, Members: members}, nil

	case KindEnum:
		name, has, err := t.readStr(hdr.NameOff)
		if err != nil {
			return nil, err
		}
		values, err := t.readEnumValues(vlen)
		if err != nil {
			return nil, err
		}
		return Enum{named: named{name, has}, Size: hdr.SizeOrType, Values: values}, nil

	case KindEnum64:
		name, has, err := t.readStr(hdr.NameOff)
		if err != nil {
			return nil, err
		}
		values, err := t.readEnum64Values(vlen)
		if err != nil {
			return nil, err
		}
		return Enum{named: named{name, has}, Size: hdr.SizeOrType, Is64: true, Values: values}, nil

	case KindFwd:
		name, has, err := t.readStr(hdr.NameOff)
		if err != nil {
			return nil, err
		}
		if !has {
			return nil, wire.NewError(wire.Expected, "forward name")
		}
		fwdKind := ForwardStruct
		if kflag {
			fwdKind = ForwardUnion
		}
		return Forward{named: named{name, true}, FwdKind: fwdKind}, nil

	case KindTypedef:
		name, has, err := t.readStr(hdr.NameOff)
		if err != nil {
			return nil, err
		}
		if !has {
			return nil, wire.NewError(wire.Expected, "typedef name")
		}
		return Typedef{named: named{name, true}, TypeID: hdr.SizeOrType}, nil

	case KindVolatile:
		return Volatile{TypeID: hdr.SizeOrType}, nil

	case KindConst:
		return Const{TypeID: hdr.SizeOrType}, nil

	case KindRestrict:
		return Restrict{TypeID: hdr.SizeOrType}, nil

	case KindFunc:
		name, has, err := t.readStr(hdr.NameOff)
		if err != nil {
			return nil, err
		}
		if !has {
			return nil, wire.NewError(wire.Expected, "func name")
		}
		return Func{named: named{name, true}, TypeID: hdr.SizeOrType, Linkage: Linkage(vlen)}, nil

	case KindFuncProto:
		params, err := t.readParams(vlen)
		if err != nil {
			return nil, err
		}
		return FuncProto{RetTypeID: hdr.SizeOrType, Params: params}, nil

	case KindVar:
		name, has, err := t.readStr(hdr.NameOff)
		if err != nil {
			return nil, err
		}
		if !has {
			return nil, wire.NewError(wire.Expected, "variable name")
		}
		linkageRaw, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		return Variable{named: named{name, true}, TypeID: hdr.SizeOrType, Linkage: Linkage(linkageRaw)}, nil

	case KindDataSec:
		name, has, err := t.readStr(hdr.NameOff)
		if err != nil {
			return nil, err
		}
		if !has {
			return nil, wire.NewError(wire.Expected, "datasec name")
		}
		sections, err := t.readSections(vlen)
		if err != nil {
			return nil, err
		}
		return DataSec{named: named{name, true}, Size: hdr.SizeOrType, Sections: sections}, nil

	case KindFloat:
		name, has, err := t.readStr(hdr.NameOff)
		if err != nil {
			return nil, err
		}
		if !has {
			return nil, wire.NewError(wire.Expected, "float name")
		}
		return Float{named: named{name, true}, Size: hdr.SizeOrType}, nil

	case KindDeclTag:
		name, has, err := t.readStr(hdr.NameOff)
		if err != nil {
			return nil, err
		}
		if !has {
			return nil, wire.NewError(wire.Expected, "decl_tag name")
		}
		compIdx, err := t.cur.I32()
		if err != nil {
			return nil, err
		}
		return DeclTag{named: named{name, true}, TypeID: hdr.SizeOrType, ComponentIdx: compIdx}, nil

	case KindTypeTag:
		name, has, err := t.readStr(hdr.NameOff)
		if err != nil {
			return nil, err
		}
		if !has {
			return nil, wire.NewError(wire.Expected, "type_tag name")
		}
		return TypeTag{named: named{name, true}, TypeID: hdr.SizeOrType}, nil

	default:
		return Void{}, nil
	}
}

func (t *Types) readMembers(vlen int, kflag bool) ([]Member, error) {
	members := make([]Member, vlen)
	for i := 0; i < vlen; i++ {
		nameOff, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		typeID, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		offsetRaw, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		name, has, err := t.readStr(nameOff)
		if err != nil {
			return nil, err
		}

		var bitsOffset uint32
		var bitfieldSize uint8
		if kflag {
			mo := wire.MemberOffset(offsetRaw)
			bitfieldSize = mo.BitfieldSize()
			bitsOffset = mo.BitsOffset()
		} else {
			bitsOffset = offsetRaw
		}

		members[i] = Member{
			named:        named{name, has},
			TypeID:       typeID,
			BitsOffset:   bitsOffset,
			BitfieldSize: bitfieldSize,
		}
	}
	return members, nil
}

func (t *Types) readEnumValues(vlen int) ([]EnumValue, error) {
	values := make([]EnumValue, vlen)
	for i := 0; i < vlen; i++ {
		nameOff, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		raw, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		name, has, err := t.readStr(nameOff)
		if err != nil {
			return nil, err
		}
		// ENUM zero-extends the raw 32-bit pattern; it never sign-extends.
		values[i] = EnumValue{named: named{name, has}, Val: int64(uint64(raw))}
	}
	return values, nil
}

func (t *Types) readEnum64Values(vlen int) ([]EnumValue, error) {
	values := make([]EnumValue, vlen)
	for i := 0; i < vlen; i++ {
		nameOff, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		lo, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		hi, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		name, has, err := t.readStr(nameOff)
		if err != nil {
			return nil, err
		}
		values[i] = EnumValue{named: named{name, has}, Val: int64((uint64(hi) << 32) | uint64(lo))}
	}
	return values, nil
}

func (t *Types) readParams(vlen int) ([]Param, error) {
	params := make([]Param, vlen)
	for i := 0; i < vlen; i++ {
		nameOff, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		typeID, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		name, has, err := t.readStr(nameOff)
		if err != nil {
			return nil, err
		}
		params[i] = Param{named: named{name, has}, TypeID: typeID}
	}
	return params, nil
}

func (t *Types) readSections(vlen int) ([]SectionInfo, error) {
	sections := make([]SectionInfo, vlen)
	for i := 0; i < vlen; i++ {
		typeID, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		offset, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		size, err := t.cur.U32()
		if err != nil {
			return nil, err
		}
		sections[i] = SectionInfo{TypeID: typeID, Offset: offset, Size: size}
	}
	return sections, nil
}

// Collect drains the iterator into a slice. Leftover unread bytes
// after the section is otherwise exhausted, or an early EOF mid-entry,
// both surface as the error Next would have returned.
func Collect(f *wire.File) ([]Entry, error) {
	it := NewTypes(f)
	var out []Entry
	for {
		e, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		out = append(out, e)
	}
	return out, nil
}
