package binding

import (
	"strings"

	"github.com/flier/go-btf/pkg/btf/types"
)

// Options controls the prelude the emitter writes ahead of the
// generated declarations.
type Options struct {
	// UseLibc selects an external libc-equivalent module for c_void
	// instead of the standard FFI module's own definition.
	UseLibc bool
}

// Emitter walks a decoded (base, local) entry pair and renders C-FFI
// source text. It is not safe for concurrent use: emission is a
// single-threaded traversal sharing one Namespace, per spec.md §5.
type Emitter struct {
	base, local []types.Entry
	opts        Options
	ns          *Namespace
}

// New returns an Emitter over base (may be nil, for non-split BTF) and
// local.
func New(base, local []types.Entry, opts Options) *Emitter {
	return &Emitter{base: base, local: local, opts: opts, ns: NewNamespace()}
}

// Emit renders the full C-FFI source text for local, resolving type
// references against base where split-BTF ids require it.
func Emit(base, local []types.Entry, opts Options) (string, error) {
	return New(base, local, opts).Emit()
}

func (e *Emitter) localID(index int) uint32 {
	return uint32(len(e.base) + index + 1)
}

func (e *Emitter) resolve(id uint32) (types.Entry, error) {
	entry, ok := types.Resolve(e.base, e.local, id)
	if !ok {
		return nil, logicErrorf("unresolved type id %d", id)
	}
	return entry, nil
}

func (e *Emitter) Emit() (string, error) {
	var b strings.Builder

	if e.opts.UseLibc {
		b.WriteString("use ::libc::c_void;\n")
	} else {
		b.WriteString("use core::ffi::c_void;\n")
	}
	// No half-precision float library appears anywhere in the example
	// pack this was grounded on; fall back to a plain signed 16-bit
	// alias, the same fallback the reference implementation uses for
	// older editions.
	b.WriteString("pub type f16 = i16;\n\n")

	for i, entry := range e.local {
		id := e.localID(i)
		decl, err := e.declFor(id, entry)
		if err != nil {
			return "", err
		}
		b.WriteString(decl)
	}

	return b.String(), nil
}
