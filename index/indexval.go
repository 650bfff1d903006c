package index

import "fmt"

// IndexVal is a concrete value along an index, i.e. an (index, offset) pair.
// Offsets are not range checked: they may also serve as prime increments.
type IndexVal struct {
	Index Index
	Val   int64
}

// NewIndexVal creates an index value. With build tag 'tnetdebug' it panics
// for a default initialized index.
func NewIndexVal(i Index, val int64) IndexVal {
	if debugChecks && !i.IsValid() {
		panic("IndexVal initialized with default initialized Index")
	}
	return IndexVal{Index: i, Val: val}
}

// Val creates an index value for offset val along i.
func (i Index) Val(val int64) IndexVal {
	return NewIndexVal(i, val)
}

// Equal is a predicate: are the indices equal, and the offsets as well?
func (iv IndexVal) Equal(other IndexVal) bool {
	return iv.Index.Equal(other.Index) && iv.Val == other.Val
}

// Is is a predicate: is iv a value of index i?
func (iv IndexVal) Is(i Index) bool {
	return iv.Index.Equal(i)
}

func (iv IndexVal) String() string {
	return fmt.Sprintf("IndexVal: val = %d, ind = %s", iv.Val, iv.Index)
}
