/*
Package indexset implements ordered sets of tensor indices.

An index set describes the legs of a tensor in storage order. Storage engines
and contraction kernels consume index sets only through a few operations:
strides per leg, and labels telling which legs of two tensors are contracted.
Two legs are contracted if their indices are equal (see index.Index.Equal).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package indexset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tnet/index"
)

// tracer traces with key 'tnet.indexset'.
func tracer() tracing.Trace {
	return tracing.Select("tnet.indexset")
}

// ErrDuplicateIndex is returned when an index is inserted twice into a set.
var ErrDuplicateIndex = errors.New("duplicate index")

// IndexSet is an ordered set of indices. The zero value is not usable, use New.
type IndexSet struct {
	legs *arraylist.List
	keys *hashset.Set
}

// key identifies an index for equality, i.e. without its dimension.
type key struct {
	id   uint64
	plev int
	name string
}

func keyOf(i index.Index) key {
	return key{id: uint64(i.ID()), plev: i.PrimeLevel(), name: i.RawName()}
}

// comparator orders indices canonically. See index.Compare.
var comparator utils.Comparator = func(a, b interface{}) int {
	return index.Compare(a.(index.Index), b.(index.Index))
}

// New creates an index set from a list of indices. It is an error to include
// null indices or an index more than once.
func New(indices ...index.Index) (*IndexSet, error) {
	is := &IndexSet{
		legs: arraylist.New(),
		keys: hashset.New(),
	}
	for _, i := range indices {
		if err := is.Add(i); err != nil {
			return nil, err
		}
	}
	return is, nil
}

// Must is a helper which wraps a call to New and panics on errors.
func Must(is *IndexSet, err error) *IndexSet {
	if err != nil {
		panic(err)
	}
	return is
}

// Add appends an index as the last leg.
func (is *IndexSet) Add(i index.Index) error {
	if !i.IsValid() {
		return fmt.Errorf("%w: cannot add to index set", index.ErrUninitialized)
	}
	k := keyOf(i)
	if is.keys.Contains(k) {
		return fmt.Errorf("%w: %s", ErrDuplicateIndex, i)
	}
	is.keys.Add(k)
	is.legs.Add(i)
	return nil
}

// Rank returns the number of legs.
func (is *IndexSet) Rank() int {
	return is.legs.Size()
}

// At returns the index at leg position pos.
func (is *IndexSet) At(pos int) index.Index {
	v, ok := is.legs.Get(pos)
	if !ok {
		panic(fmt.Sprintf("index set has no leg at position %d", pos))
	}
	return v.(index.Index)
}

// Indices returns the legs as a slice of indices.
func (is *IndexSet) Indices() []index.Index {
	values := is.legs.Values()
	indices := make([]index.Index, len(values))
	for k, v := range values {
		indices[k] = v.(index.Index)
	}
	return indices
}

// Find returns the leg position of an index, or -1.
func (is *IndexSet) Find(i index.Index) int {
	if !is.keys.Contains(keyOf(i)) {
		return -1
	}
	for pos, j := range is.Indices() {
		if i.Equal(j) {
			return pos
		}
	}
	return -1
}

// Contains is a predicate: is i a leg of this set?
func (is *IndexSet) Contains(i index.Index) bool {
	return is.keys.Contains(keyOf(i))
}

// Size returns the number of elements of a tensor with these legs, i.e.
// the product of all dimensions.
func (is *IndexSet) Size() int64 {
	size := int64(1)
	for _, i := range is.Indices() {
		size *= i.Dim()
	}
	return size
}

// Strides returns the column-major strides of the legs: the first leg has
// stride 1, and every following leg has the stride of its predecessor
// times the predecessor's dimension.
func (is *IndexSet) Strides() []int64 {
	indices := is.Indices()
	strides := make([]int64, len(indices))
	stride := int64(1)
	for k, i := range indices {
		strides[k] = stride
		stride *= i.Dim()
	}
	return strides
}

// Sorted returns a copy of this set with legs in canonical order. Legs which
// compare equal, i.e. differ in name only, keep their relative order.
func (is *IndexSet) Sorted() *IndexSet {
	values := is.legs.Values()
	sort.SliceStable(values, func(a, b int) bool {
		return comparator(values[a], values[b]) < 0
	})
	sorted := &IndexSet{legs: arraylist.New(), keys: hashset.New()}
	for _, v := range values {
		sorted.legs.Add(v)
		sorted.keys.Add(keyOf(v.(index.Index)))
	}
	return sorted
}

func (is *IndexSet) String() string {
	var b strings.Builder
	for k, i := range is.Indices() {
		if k > 0 {
			b.WriteString(" ")
		}
		b.WriteString(i.String())
	}
	return b.String()
}

// --- Bulk operations -------------------------------------------------------

// Select returns all legs matching a name pattern.
func (is *IndexSet) Select(pattern string) ([]index.Index, error) {
	var selected []index.Index
	for _, i := range is.Indices() {
		ok, err := i.Matches(pattern)
		if err != nil {
			return nil, err
		}
		if ok {
			selected = append(selected, i)
		}
	}
	return selected, nil
}

// Prime increments the prime levels of all legs matching a name pattern.
// It returns the number of primed legs. If priming fails for any leg, the
// set is left unchanged.
func (is *IndexSet) Prime(pattern string, inc int) (int, error) {
	return is.update(func(i *index.Index) (bool, error) {
		return i.PrimeMatching(pattern, inc)
	})
}

// PrimeType increments the prime levels of all legs of type t.
func (is *IndexSet) PrimeType(t index.Type, inc int) (int, error) {
	return is.update(func(i *index.Index) (bool, error) {
		before := i.PrimeLevel()
		err := i.PrimeType(t, inc)
		return before != i.PrimeLevel(), err
	})
}

// MapPrime sets prime level 'from' to 'to' for all legs of type t.
func (is *IndexSet) MapPrime(from, to int, t index.Type) (int, error) {
	return is.update(func(i *index.Index) (bool, error) {
		before := i.PrimeLevel()
		err := i.MapPrimeType(from, to, t)
		return before != i.PrimeLevel(), err
	})
}

// Rename renames all legs matching pattern 'from' according to pattern 'to'.
// It returns the number of renamed legs.
func (is *IndexSet) Rename(from, to string) (int, error) {
	return is.update(func(i *index.Index) (bool, error) {
		return i.Rename(from, to)
	})
}

// update applies op to copies of all legs and commits the result only if op
// succeeded for every leg and the resulting legs are still distinct.
func (is *IndexSet) update(op func(*index.Index) (bool, error)) (int, error) {
	indices := is.Indices()
	count := 0
	for k := range indices {
		changed, err := op(&indices[k])
		if err != nil {
			return 0, err
		}
		if changed {
			count++
		}
	}
	updated, err := New(indices...)
	if err != nil {
		return 0, err
	}
	*is = *updated
	tracer().Debugf("updated %d legs of index set", count)
	return count, nil
}
