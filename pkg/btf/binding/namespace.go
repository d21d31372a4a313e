// Package binding implements the C3 binding emitter: a one-pass walk
// over a decoded (base, local) entry pair that produces C-FFI source
// text, following the exact vocabulary spec.md's type-reference table
// prescribes (`*const`/`*mut`, `Option<unsafe extern "C" fn(...)>`,
// `#[repr(C)]`, `ManuallyDrop`).
package binding

import (
	"fmt"
	"sort"
)

// Namespace is the single shared mutable allocator the emitter's
// helpers thread through one traversal: a sorted set of every
// identifier produced so far, plus the identifier already assigned to
// each type id. Go has no borrow checker, so this is a plain struct
// passed by pointer rather than the owner-plus-mutable-borrow handle
// the reference implementation needs.
type Namespace struct {
	names    []string // kept sorted
	nameByID map[uint32]string
}

// NewNamespace returns an empty allocator.
func NewNamespace() *Namespace {
	return &Namespace{nameByID: make(map[uint32]string)}
}

// GetUniqueName returns the identifier for id, allocating one from
// proposed the first time id is seen. If proposed collides with an
// already-produced name, the result is renamed to "proposed_id",
// which is unique by construction since id is fresh.
func (n *Namespace) GetUniqueName(proposed string, id uint32) string {
	if name, ok := n.nameByID[id]; ok {
		return name
	}

	name := proposed
	if n.contains(proposed) {
		name = fmt.Sprintf("%s_%d", proposed, id)
	}
	n.insert(name)
	n.nameByID[id] = name
	return name
}

func (n *Namespace) contains(name string) bool {
	i := sort.SearchStrings(n.names, name)
	return i < len(n.names) && n.names[i] == name
}

func (n *Namespace) insert(name string) {
	i := sort.SearchStrings(n.names, name)
	n.names = append(n.names, "")
	copy(n.names[i+1:], n.names[i:])
	n.names[i] = name
}
