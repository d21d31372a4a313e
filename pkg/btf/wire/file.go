package wire

// File is a parsed BTF buffer split into its three logical pieces: the
// header, the raw type-section bytes, and the raw string-section
// bytes. Both slices alias the input buffer. Names decoded from
// StrBytes are copied into Go strings, so decoded entries do not
// alias it.
type File struct {
	Order     ByteOrder
	Header    Header
	TypeBytes []byte
	StrBytes  []byte
}

// ParseFile detects the byte order, validates the header, and carves
// out the type and string sections according to the header's
// self-reported offsets and lengths. Header bytes beyond HeaderSize
// are padding and are skipped rather than interpreted, per the
// tolerance the format requires for forward-compatible headers.
func ParseFile(data []byte) (*File, error) {
	order, err := DetectByteOrder(data)
	if err != nil {
		return nil, err
	}

	h, err := ReadHeader(data, order)
	if err != nil {
		return nil, err
	}
	if h.Version != 1 {
		return nil, newErr(Malformed, "unsupported version")
	}
	if h.HdrLen < HeaderSize {
		return nil, newErr(Malformed, "header length")
	}
	if uint64(h.HdrLen) > uint64(len(data)) {
		return nil, newErr(Incomplete, "header")
	}

	body := data[h.HdrLen:]
	bodyLen := uint64(len(body))

	typeEnd := uint64(h.TypeOff) + uint64(h.TypeLen)
	if typeEnd > bodyLen {
		return nil, outOfRange("type section", typeEnd)
	}

	// Inter-section padding (spec's open question): any negative
	// difference between the string offset and the end of the type
	// section is malformed input, never a wrapped/huge skip.
	if uint64(h.StrOff) < typeEnd {
		return nil, newErr(Malformed, "inter-section padding")
	}

	strEnd := uint64(h.StrOff) + uint64(h.StrLen)
	if strEnd > bodyLen {
		return nil, outOfRange("string section", strEnd)
	}

	return &File{
		Order:     order,
		Header:    h,
		TypeBytes: body[h.TypeOff : h.TypeOff+h.TypeLen],
		StrBytes:  body[h.StrOff : h.StrOff+h.StrLen],
	}, nil
}
