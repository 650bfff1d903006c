package namepat

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRenderPrimes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.index")
	defer teardown()
	//
	for i, x := range []struct {
		plev   int
		suffix string
	}{
		{0, ""}, {1, "'"}, {2, "''"}, {3, "'''"}, {4, "'4"}, {5, "'5"}, {12, "'12"},
	} {
		s, err := RenderPrimes(x.plev)
		if err != nil {
			t.Errorf("test %d: unexpected error %v", i, err)
		}
		if s != x.suffix {
			t.Errorf("test %d: expected prime level %d to render as %q, is %q", i, x.plev, x.suffix, s)
		}
	}
	if _, err := RenderPrimes(-1); !errors.Is(err, ErrInvalidPrimeLevel) {
		t.Errorf("expected negative prime level to be rejected, error is %v", err)
	}
}

func TestParsePrimes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.index")
	defer teardown()
	//
	for i, x := range []struct {
		s    string
		plev int
	}{
		{"'", 1}, {"''", 2}, {"'''", 3}, {"''''''", 6}, {"'5", 5}, {"'12", 12}, {"'0", 0},
	} {
		plev, err := ParsePrimes(x.s)
		if err != nil {
			t.Errorf("test %d: unexpected error %v", i, err)
		}
		if plev != x.plev {
			t.Errorf("test %d: expected %q to be prime level %d, is %d", i, x.s, x.plev, plev)
		}
	}
	for i, s := range []string{"", "5", "'ab", "''5", "x'"} {
		if _, err := ParsePrimes(s); !errors.Is(err, ErrMalformedPattern) {
			t.Errorf("test %d: expected %q to be malformed, error is %v", i, s, err)
		}
	}
}

func TestPrimesRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.index")
	defer teardown()
	//
	for n := 1; n < 200; n++ {
		s, _ := RenderPrimes(n)
		if plev, err := ParsePrimes(s); err != nil || plev != n {
			t.Errorf("expected %q to parse back to %d, is %d (error %v)", s, n, plev, err)
		}
	}
}

func TestParsePattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.index")
	defer teardown()
	//
	for i, x := range []struct {
		s string
		p Pattern
	}{
		{"site", Pattern{RawName: "site"}},
		{"site'", Pattern{RawName: "site", PrimeLevel: 1}},
		{"site'7", Pattern{RawName: "site", PrimeLevel: 7}},
		{"x*", Pattern{RawName: "x", HasPrimeWildcard: true}},
		{"x'*", Pattern{RawName: "x", PrimeLevel: 1, HasPrimeWildcard: true}},
		{"y*'2", Pattern{RawName: "y", HasPrimeWildcard: true, PrimeIncrement: 2}},
		{"y*''", Pattern{RawName: "y", HasPrimeWildcard: true, PrimeIncrement: 2}},
		{"l#", Pattern{RawName: "l", HasNumberWildcard: true}},
		{"l#''", Pattern{RawName: "l", PrimeLevel: 2, HasNumberWildcard: true}},
		{"l#*'", Pattern{RawName: "l", HasNumberWildcard: true, HasPrimeWildcard: true, PrimeIncrement: 1}},
		{"", Pattern{}},
	} {
		p, err := Parse(x.s)
		if err != nil {
			t.Errorf("test %d: unexpected error %v", i, err)
		}
		if p != x.p {
			t.Errorf("test %d: expected %q to parse as %#v, is %#v", i, x.s, x.p, p)
		}
	}
}

func TestMalformedPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.index")
	defer teardown()
	//
	for i, s := range []string{"a#b", "##", "x*y", "x**", "a'b", "x'#", "x*'a"} {
		if _, err := Parse(s); !errors.Is(err, ErrMalformedPattern) {
			t.Errorf("test %d: expected %q to be malformed, error is %v", i, s, err)
		}
	}
}

func TestPatternString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.index")
	defer teardown()
	//
	for i, s := range []string{"site", "site'", "site'5", "x*", "x''*", "y*'4", "l#", "l#'*''"} {
		p := MustParse(s)
		q, err := Parse(p.String())
		if err != nil {
			t.Errorf("test %d: cannot re-parse %q: %v", i, p.String(), err)
		}
		if p != q {
			t.Errorf("test %d: expected %q to survive a round trip, is %q", i, s, q.String())
		}
	}
}

func TestNameAndLevelRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.index")
	defer teardown()
	//
	for _, name := range []string{"a", "site", "link_4"} {
		for plev := 0; plev < 12; plev++ {
			s, _ := PutPrimes(name, plev)
			p, err := Parse(s)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", s, err)
			}
			if p.RawName != name || p.PrimeLevel != plev {
				t.Errorf("expected %q to be (%s,%d), is (%s,%d)", s, name, plev, p.RawName, p.PrimeLevel)
			}
		}
	}
}

func TestMatchName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.index")
	defer teardown()
	//
	for i, x := range []struct {
		name, pattern string
		wildcard      bool
		matches       bool
		intMatch      int
	}{
		{"l12", "l", true, true, 12},
		{"l12", "l12", false, true, 0},
		{"l12", "l", false, false, 0},
		{"l", "l", true, false, 0},
		{"lx", "l", true, false, 0},
		{"l1x", "l", true, false, 0},
		{"m12", "l", true, false, 0},
		{"site007", "site", true, true, 7},
	} {
		ok, n := MatchName(x.name, x.pattern, x.wildcard)
		if ok != x.matches || n != x.intMatch {
			t.Errorf("test %d: expected match of %q against %q to be (%v,%d), is (%v,%d)",
				i, x.name, x.pattern, x.matches, x.intMatch, ok, n)
		}
	}
}

func TestPatternMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tnet.index")
	defer teardown()
	//
	for i, x := range []struct {
		pattern string
		name    string
		plev    int
		matches bool
	}{
		{"x*", "x", 0, true},
		{"x*", "x", 3, true},
		{"x'*", "x", 0, false},
		{"x'*", "x", 2, true},
		{"x'", "x", 2, false},
		{"x''", "x", 2, true},
		{"l#", "l3", 0, true},
		{"l#", "l3", 1, false},
		{"l#*", "l3", 1, true},
		{"x", "y", 0, false},
	} {
		p := MustParse(x.pattern)
		if m := p.Matches(x.name, x.plev); m != x.matches {
			t.Errorf("test %d: expected %q to match (%s,%d) = %v, is %v",
				i, x.pattern, x.name, x.plev, x.matches, m)
		}
	}
}
