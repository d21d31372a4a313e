// Package btf decodes the BPF Type Format: given an already-materialized
// byte buffer, it produces an ordered, indexable collection of typed
// entries resolved against the buffer's own string table, optionally
// layered over a separately-loaded base BTF for split-BTF mode.
package btf

import (
	"github.com/flier/go-btf/pkg/btf/types"
	"github.com/flier/go-btf/pkg/btf/wire"
)

// Spec is a fully decoded BTF blob: an optional base entry vector (for
// split BTF) and the local entry vector decoded from the buffer this
// Spec was built from. Name strings are copied out of the buffers at
// decode time, so the Spec does not retain the buffers.
type Spec struct {
	Base  []types.Entry
	Local []types.Entry

	kindCounts map[types.Kind]int
}

// Parse decodes a single, non-split BTF buffer.
func Parse(data []byte) (*Spec, error) {
	return Load(nil, data)
}

// Load decodes local against an optional base buffer, producing a
// Spec whose type ids resolve across both (spec.md §4.3/§8.3 S6). Pass
// a nil base for non-split input.
func Load(base, local []byte) (*Spec, error) {
	var baseEntries []types.Entry
	if base != nil {
		f, err := wire.ParseFile(base)
		if err != nil {
			return nil, err
		}
		baseEntries, err = types.Collect(f)
		if err != nil {
			return nil, err
		}
	}

	f, err := wire.ParseFile(local)
	if err != nil {
		return nil, err
	}
	localEntries, err := types.Collect(f)
	if err != nil {
		return nil, err
	}

	return &Spec{Base: baseEntries, Local: localEntries}, nil
}

// TypeByID resolves a type id against this Spec's (Base, Local) pair.
func (s *Spec) TypeByID(id uint32) (types.Entry, bool) {
	return types.Resolve(s.Base, s.Local, id)
}

// TypesByName returns every entry, base entries first and then local
// ones, whose name equals name. BTF does not guarantee unique names, so this returns a
// slice rather than a single match.
func (s *Spec) TypesByName(name string) []types.Entry {
	var out []types.Entry
	for _, e := range s.Base {
		if n, ok := e.Name(); ok && n == name {
			out = append(out, e)
		}
	}
	for _, e := range s.Local {
		if n, ok := e.Name(); ok && n == name {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of local entries (not counting any base).
func (s *Spec) Len() int { return len(s.Local) }

// KindCounts returns a histogram of local entries by kind, computed
// once and cached.
func (s *Spec) KindCounts() map[types.Kind]int {
	if s.kindCounts != nil {
		return s.kindCounts
	}
	counts := make(map[types.Kind]int)
	for _, e := range s.Local {
		counts[e.Kind()]++
	}
	s.kindCounts = counts
	return counts
}
