package indexset

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tnet/index"
	"github.com/npillmayer/tnet/index/idgen"
)

// legs creates indices with dimensions dims, named l1, l2, … and with
// ascending IDs.
func legs(dims ...int64) []index.Index {
	gen := idgen.NewCounter(0)
	indices := make([]index.Index, len(dims))
	for k, m := range dims {
		name := "l" + string(rune('1'+k))
		indices[k] = index.Must(index.New(name, m, index.WithGenerator(gen)))
	}
	return indices
}

func TestNewIndexSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.indexset")
	defer teardown()
	//
	ls := legs(2, 3, 4)
	is := Must(New(ls...))
	if is.Rank() != 3 || is.Size() != 24 {
		t.Errorf("expected rank 3 and size 24, have %d and %d", is.Rank(), is.Size())
	}
	if is.Find(ls[1]) != 1 || !is.At(1).Equal(ls[1]) {
		t.Errorf("expected l2 at position 1")
	}
	primed, _ := ls[1].Primed(1)
	if is.Contains(primed) || is.Find(primed) != -1 {
		t.Error("expected primed index not to be contained")
	}
	if _, err := New(ls[0], ls[0]); !errors.Is(err, ErrDuplicateIndex) {
		t.Errorf("expected duplicate index to be rejected, error is %v", err)
	}
	if _, err := New(index.Index{}); !errors.Is(err, index.ErrUninitialized) {
		t.Errorf("expected null index to be rejected, error is %v", err)
	}
}

func TestStrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.indexset")
	defer teardown()
	//
	is := Must(New(legs(2, 3, 4)...))
	expected := []int64{1, 2, 6}
	for k, s := range is.Strides() {
		if s != expected[k] {
			t.Errorf("expected stride of leg %d to be %d, is %d", k, expected[k], s)
		}
	}
}

func TestSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.indexset")
	defer teardown()
	//
	ls := legs(4, 2, 2, 3)
	l3primed, _ := ls[2].Primed(1)
	is := Must(New(ls[0], l3primed, ls[1], ls[2], ls[3]))
	sorted := is.Sorted().Indices()
	expected := []index.Index{ls[1], ls[2], l3primed, ls[3], ls[0]}
	for k := range expected {
		if !sorted[k].Equal(expected[k]) {
			t.Errorf("expected %s at position %d, is %s", expected[k], k, sorted[k])
		}
	}
	for k := 1; k < len(sorted); k++ {
		if !sorted[k-1].Less(sorted[k]) {
			t.Errorf("expected %s < %s", sorted[k-1], sorted[k])
		}
	}
}

func TestSortedKeepsOrderOfEqualLegs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.indexset")
	defer teardown()
	//
	small := index.Must(index.New("small", 1, index.WithGenerator(idgen.NewCounter(0))))
	var twins []index.Index
	for _, name := range []string{"d", "b", "c", "a"} {
		// same ID, dimension and prime level, different names
		twin := index.Must(index.New(name, 2, index.WithGenerator(idgen.NewCounter(7))))
		twins = append(twins, twin)
	}
	is := Must(New(twins[0], twins[1], twins[2], twins[3], small))
	sorted := is.Sorted().Indices()
	for k, name := range []string{"small", "d", "b", "c", "a"} {
		if sorted[k].Name() != name {
			t.Errorf("expected %s at position %d, is %s", name, k, sorted[k].Name())
		}
	}
}

func TestSelectAndPrime(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.indexset")
	defer teardown()
	//
	gen := idgen.NewCounter(0)
	a := index.Must(index.New("a", 2, index.WithGenerator(gen), index.WithType(index.Site)))
	l1 := index.Must(index.New("l1", 2, index.WithGenerator(gen), index.WithType(index.Link)))
	l2 := index.Must(index.New("l2", 2, index.WithGenerator(gen), index.WithType(index.Link)))
	is := Must(New(a, l1, l2))
	sel, err := is.Select("l#")
	if err != nil || len(sel) != 2 {
		t.Errorf("expected 2 links to be selected, have %d (error %v)", len(sel), err)
	}
	n, err := is.Prime("l#", 1)
	if err != nil || n != 2 {
		t.Errorf("expected 2 legs to be primed, have %d (error %v)", n, err)
	}
	if is.At(1).Name() != "l1'" || is.At(0).Name() != "a" {
		t.Errorf("unexpected legs after priming: %s", is)
	}
	if n, _ = is.PrimeType(index.Site, 2); n != 1 || is.At(0).Name() != "a''" {
		t.Errorf("expected site to be primed twice: %s", is)
	}
	if n, _ = is.MapPrime(1, 0, index.Link); n != 2 || is.At(2).Name() != "l2" {
		t.Errorf("expected links to be unprimed: %s", is)
	}
}

func TestBulkUpdateIsAtomic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.indexset")
	defer teardown()
	//
	gen := idgen.NewCounter(0)
	a := index.Must(index.New("a'", 2, index.WithGenerator(gen)))
	b := index.Must(index.New("b", 2, index.WithGenerator(gen)))
	is := Must(New(a, b))
	if _, err := is.PrimeType(index.All, -1); !errors.Is(err, index.ErrInvalidPrimeLevel) {
		t.Errorf("expected priming b to a negative level to fail, error is %v", err)
	}
	if is.At(0).Name() != "a'" {
		t.Errorf("expected failed update to leave set unchanged: %s", is)
	}
}

func TestRename(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.indexset")
	defer teardown()
	//
	is := Must(New(legs(2, 2, 3)...))
	n, err := is.Rename("l#", "m#")
	if err != nil || n != 3 {
		t.Fatalf("expected 3 legs to be renamed, have %d (error %v)", n, err)
	}
	for k, name := range []string{"m1", "m2", "m3"} {
		if is.At(k).Name() != name {
			t.Errorf("expected leg %d to be named %s, is %s", k, name, is.At(k).Name())
		}
	}
}

func TestComputeLabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.indexset")
	defer teardown()
	//
	ls := legs(2, 3, 4, 5)
	l2primed, _ := ls[1].Primed(1)
	l := Must(New(ls[0], ls[1], ls[2]))
	r := Must(New(ls[2], l2primed, ls[3], ls[0]))
	llabels, rlabels := ComputeLabels(l, r)
	for k, x := range []struct {
		labels, expected []int
	}{
		{llabels, []int{-1, 1, -2}},
		{rlabels, []int{-2, 1, 2, -1}},
	} {
		for j := range x.expected {
			if x.labels[j] != x.expected[j] {
				t.Errorf("set %d: expected labels %v, have %v", k, x.expected, x.labels)
				break
			}
		}
	}
	result := Must(Contract(l, r, false))
	expected := []index.Index{ls[1], l2primed, ls[3]}
	if result.Rank() != len(expected) {
		t.Fatalf("expected result of rank %d, is %s", len(expected), result)
	}
	for k := range expected {
		if !result.At(k).Equal(expected[k]) {
			t.Errorf("expected %s at position %d, is %s", expected[k], k, result.At(k))
		}
	}
	if common := Contracted(l, r); len(common) != 2 || !common[0].Equal(ls[0]) {
		t.Errorf("expected l1 and l3 to be contracted, have %v", common)
	}
}
