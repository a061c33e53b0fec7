// This file declares Ref (index-or-name feature reference) and Lookup
// (bidirectional name↔index table) with its two constructors.
package core

import (
	"fmt"
	"strconv"
)

// Lookup is a bidirectional table between feature names and indices.
//
// Implementations must be consistent: NameOf(i) == s iff IndexOf(s) == i
// for every mapped pair.
type Lookup interface {
	// IndexOf returns the index mapped to name, if any.
	IndexOf(name string) (int, bool)

	// NameOf returns the name mapped to index, if any.
	NameOf(index int) (string, bool)
}

// NameList builds a Lookup from a positional name list: names[i] is the
// name of feature i. Duplicate names resolve to the first occurrence.
func NameList(names []string) Lookup {
	byName := make(map[string]int, len(names))
	for i, s := range names {
		if _, dup := byName[s]; !dup {
			byName[s] = i
		}
	}
	return &nameTable{byName: byName, byIndex: names}
}

// NameIndex builds a Lookup from an associative name→index map.
func NameIndex(byName map[string]int) Lookup {
	t := &nameTable{byName: make(map[string]int, len(byName)), reverse: make(map[int]string, len(byName))}
	for s, i := range byName {
		t.byName[s] = i
		t.reverse[i] = s
	}
	return t
}

// nameTable backs both Lookup constructors; exactly one of byIndex
// (positional) or reverse (associative) is populated.
type nameTable struct {
	byName  map[string]int
	byIndex []string
	reverse map[int]string
}

func (t *nameTable) IndexOf(name string) (int, bool) {
	i, ok := t.byName[name]
	return i, ok
}

func (t *nameTable) NameOf(index int) (string, bool) {
	if t.byIndex != nil {
		if index < 0 || index >= len(t.byIndex) {
			return "", false
		}
		return t.byIndex[index], true
	}
	s, ok := t.reverse[index]
	return s, ok
}

// Ref references a feature either by canonical index or by name.
// The zero value is ByIndex(0).
type Ref struct {
	name   string
	index  int
	byName bool
}

// ByIndex references the feature at index i.
func ByIndex(i int) Ref { return Ref{index: i} }

// ByName references the feature called name; resolving it requires a
// Lookup.
func ByName(name string) Ref { return Ref{name: name, byName: true} }

// Resolve returns the canonical index of the referenced feature.
// Index references resolve to themselves and never consult lk.
// Name references fail with ErrNoLookup when lk is nil and with
// ErrNameNotFound when the name is unmapped.
func (r Ref) Resolve(lk Lookup) (int, error) {
	if !r.byName {
		return r.index, nil
	}
	if lk == nil {
		return 0, fmt.Errorf("%w: cannot resolve name %q", ErrNoLookup, r.name)
	}
	i, ok := lk.IndexOf(r.name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNameNotFound, r.name)
	}
	return i, nil
}

// String renders the reference for error messages and debugging.
func (r Ref) String() string {
	if r.byName {
		return strconv.Quote(r.name)
	}
	return strconv.Itoa(r.index)
}
