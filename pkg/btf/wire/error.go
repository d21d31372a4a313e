// Package wire implements the low-level BTF byte layout: the file
// header, the bit-packed per-entry info word, and string-table lookup.
// It knows nothing about decoded type semantics; that lives in
// pkg/btf/types one layer up.
package wire

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies one of the error taxonomy buckets a malformed or
// truncated BTF buffer can fall into.
type Kind string

const (
	EndOfInput Kind = "end_of_input"
	Incomplete Kind = "incomplete"
	Malformed  Kind = "malformed"
	OutOfRange Kind = "out_of_range"
	Unexpected Kind = "unexpected"
	Expected   Kind = "expected"
	Utf8       Kind = "utf8"
)

// Error is a tagged decode error: a Kind bucket plus the tag
// identifying what was being read and, for OutOfRange, the offending
// value.
type Error struct {
	Kind  Kind
	Tag   string
	Value uint64
}

func (e *Error) Error() string {
	switch e.Kind {
	case OutOfRange:
		return fmt.Sprintf("%s: %s (%d)", e.Kind, e.Tag, e.Value)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Tag)
	}
}

func newErr(kind Kind, tag string) error {
	return errors.WithStack(&Error{Kind: kind, Tag: tag})
}

func outOfRange(tag string, n uint64) error {
	return errors.WithStack(&Error{Kind: OutOfRange, Tag: tag, Value: n})
}

// NewError builds a tagged decode error of the given kind. Exported
// for use by pkg/btf/types, which raises Expected errors while
// decoding entry payloads.
func NewError(kind Kind, tag string) error {
	return newErr(kind, tag)
}

// As reports whether err (or something it wraps) is a *Error, and if
// so returns it.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
