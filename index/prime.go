package index

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/tnet/index/namepat"
)

// === Priming and renaming ==================================================

// Mutating operations either apply completely or leave the index unchanged.

func checkLevel(plev int, op string) error {
	if plev < 0 {
		return fmt.Errorf("%w: %s led to negative prime level %d", ErrInvalidPrimeLevel, op, plev)
	}
	return nil
}

// Prime increments the prime level of an index by inc. inc may be negative,
// but the resulting prime level may not.
func (i *Index) Prime(inc int) error {
	if err := i.assertValid("prime"); err != nil {
		return err
	}
	plev := i.plev + inc
	if err := checkLevel(plev, "prime"); err != nil {
		return err
	}
	i.plev = plev
	return nil
}

// PrimeType increments the prime level of an index by inc, if the index
// is of type t. Type All primes every index.
func (i *Index) PrimeType(t Type, inc int) error {
	if err := i.assertValid("prime"); err != nil {
		return err
	}
	if !t.admits(i.typ) {
		return nil
	}
	return i.Prime(inc)
}

// PrimeMatching increments the prime level of an index by inc, if the index
// matches a name pattern. It returns true if the index has been primed.
func (i *Index) PrimeMatching(pattern string, inc int) (bool, error) {
	ok, err := i.Matches(pattern)
	if err != nil || !ok {
		return false, err
	}
	return true, i.Prime(inc)
}

// NoPrime resets the prime level of an index to 0.
func (i *Index) NoPrime() error {
	return i.SetPrimeLevel(0)
}

// SetPrimeLevel replaces the prime level of an index.
func (i *Index) SetPrimeLevel(plev int) error {
	if err := i.assertValid("set prime level"); err != nil {
		return err
	}
	if err := checkLevel(plev, "setting prime level"); err != nil {
		return err
	}
	i.plev = plev
	return nil
}

// MapPrime sets the prime level of an index to 'to', if it currently is 'from'.
// Otherwise the index is left unchanged.
func (i *Index) MapPrime(from, to int) error {
	return i.MapPrimeType(from, to, All)
}

// MapPrimeType is like MapPrime, but only affects indices of type t.
func (i *Index) MapPrimeType(from, to int, t Type) error {
	if err := i.assertValid("map prime level"); err != nil {
		return err
	}
	if i.plev != from || !t.admits(i.typ) {
		return nil
	}
	if err := checkLevel(to, "mapping prime level"); err != nil {
		return err
	}
	i.plev = to
	return nil
}

// Matches is a predicate: does an index match a name pattern?
// Malformed patterns result in an error.
func (i Index) Matches(pattern string) (bool, error) {
	if err := i.assertValid("match name"); err != nil {
		return false, err
	}
	p, err := namepat.Parse(pattern)
	if err != nil {
		return false, err
	}
	return p.Matches(i.name, i.plev), nil
}

// Rename renames an index, if it matches pattern 'from'. Name and prime level
// are then changed according to pattern 'to':
//
//    "x"   → "y"      renames x to y, for prime level 0 only
//    "x*"  → "y*"     renames x to y, keeping prime levels
//    "x*"  → "y*'2"   renames x to y, adding 2 primes
//    "l#"  → "m#"     renames l1 to m1, l2 to m2, …
//
// Rename returns false, if the index does not match 'from'. This is not an error.
// It is an error for 'to' to have a number wildcard when 'from' does not, or
// to have primes before a prime wildcard.
func (i *Index) Rename(from, to string) (bool, error) {
	if err := i.assertValid("rename"); err != nil {
		return false, err
	}
	src, err := namepat.Parse(from)
	if err != nil {
		return false, err
	}
	dest, err := namepat.Parse(to)
	if err != nil {
		return false, err
	}
	namematch, intmatch := src.MatchesName(i.name)
	if !namematch || !src.MatchesLevel(i.plev) {
		tracer().P("index", i.Name()).Debugf("no match for rename pattern %q", from)
		return false, nil
	}
	var name string
	switch {
	case dest.HasNumberWildcard && !src.HasNumberWildcard:
		return false, fmt.Errorf("%w: %q → %q, number wildcard only allowed on the target when the source also has it",
			ErrNumberWildcardMismatch, from, to)
	case dest.HasNumberWildcard:
		name = dest.RawName + strconv.Itoa(intmatch)
	default:
		name = dest.RawName
	}
	plev := dest.PrimeLevel
	if dest.HasPrimeWildcard {
		if dest.PrimeLevel != 0 {
			return false, fmt.Errorf("%w: %q, no primes allowed before a prime-wildcard", ErrMalformedPattern, to)
		}
		plev = i.plev + dest.PrimeIncrement
		if err := checkLevel(plev, "rename"); err != nil {
			return false, err
		}
	}
	tracer().P("index", i.Name()).Debugf("renaming to %s", primedName(name, plev))
	i.name, i.plev = name, plev
	return true, nil
}

func primedName(name string, plev int) string {
	s, _ := namepat.PutPrimes(name, plev)
	return s
}

// RenameTo renames an index according to pattern 'to'. It is a shortcut for
//
//    i.Rename(i.Name(), to)
//
func (i *Index) RenameTo(to string) error {
	_, err := i.Rename(i.Name(), to)
	return err
}

// --- Copying variants ------------------------------------------------------

// AtLevel returns a copy of an index with prime level plev.
func (i Index) AtLevel(plev int) (Index, error) {
	err := i.SetPrimeLevel(plev)
	return i, err
}

// Primed returns a copy of an index with its prime level incremented by inc.
func (i Index) Primed(inc int) (Index, error) {
	err := i.Prime(inc)
	return i, err
}

// Renamed returns a copy of an index, renamed according to pattern 'to'.
func (i Index) Renamed(to string) (Index, error) {
	err := i.RenameTo(to)
	return i, err
}
