/*
Package namepat implements the small pattern language for selecting and
renaming tensor indices.

Index names consist of a raw name and an optional prime suffix. Prime levels
up to 3 are rendered as ticks, higher levels as a tick followed by the number:

   site      prime level 0
   site''    prime level 2
   site'5    prime level 5

Patterns extend names by two kinds of wildcards:

   name    := rawchars ( "#" )? ( "'" primesuffix )? ( "*" ( "'" primesuffix )? )?
   primes  := "'"* | "'" digits

A trailing "*" is a prime wildcard: it matches any prime level greater or
equal to the level given before the "*". A prime suffix after the "*" is an
increment, applied instead of overwriting the prime level when the pattern is
used as a rename target. A "#" at the end of the raw name is a number
wildcard: the raw name is treated as a prefix and the rest of a matched name
has to be an unsigned integer, which will be captured.

Examples:

   "l#"     matches "l1", "l12", … with prime level 0, capturing 1, 12, …
   "x*"     matches "x", "x'", "x''", …
   "x'*"    matches "x'", "x''", …
   "y*'2"   as a rename target, renames to "y" and adds 2 primes

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package namepat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tnet.index'.
func tracer() tracing.Trace {
	return tracing.Select("tnet.index")
}

// Reserved glyphs of the pattern language.
const (
	Prime          = '\''
	PrimeWildcard  = '*'
	NumberWildcard = '#'
)

// Errors of the pattern language. Concrete errors wrap one of these.
var (
	ErrMalformedPattern  = errors.New("malformed name pattern")
	ErrInvalidPrimeLevel = errors.New("invalid prime level")
)

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedPattern, fmt.Sprintf(format, args...))
}

// --- Prime suffixes ---------------------------------------------------------

// RenderPrimes returns the canonical prime suffix for a prime level.
// Levels 1 to 3 are rendered as ticks, higher levels as "'n".
// A negative level is an error.
func RenderPrimes(plev int) (string, error) {
	if plev < 0 {
		return "", fmt.Errorf("%w: negative prime level %d", ErrInvalidPrimeLevel, plev)
	}
	if plev > 3 {
		return "'" + strconv.Itoa(plev), nil
	}
	return strings.Repeat("'", plev), nil
}

// PutPrimes appends the canonical prime suffix for plev to s.
func PutPrimes(s string, plev int) (string, error) {
	suffix, err := RenderPrimes(plev)
	if err != nil {
		return s, err
	}
	return s + suffix, nil
}

// ParsePrimes interprets a prime suffix, i.e. a string starting with a tick.
// A suffix consisting of ticks only denotes the number of ticks, otherwise
// everything after the first tick has to be a decimal integer.
//
//    "'"   ⟹ 1
//    "'''" ⟹ 3
//    "'5"  ⟹ 5
//
func ParsePrimes(s string) (int, error) {
	if len(s) == 0 || s[0] != Prime {
		return 0, malformed("prime string %q must start with '", s)
	}
	if len(s) == 1 {
		return 1, nil
	}
	rest := s[1:]
	if strings.Trim(rest, "'") == "" {
		return len(s), nil
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, malformed("prime string %q is neither ticks nor a number", s)
	}
	return n, nil
}

// --- Patterns ---------------------------------------------------------------

// Pattern is a parsed name pattern. Patterns are ephemeral and never stored
// with an index.
type Pattern struct {
	RawName           string // name without primes and wildcards
	PrimeLevel        int    // prime level before a prime wildcard, if any
	HasPrimeWildcard  bool   // pattern has a trailing '*'
	PrimeIncrement    int    // prime suffix after the '*'
	HasNumberWildcard bool   // raw name in pattern had a trailing '#'
}

// SplitPrimes splits a string into a raw name and a prime level. It recognizes
// a prime wildcard and a following prime increment, but does not care about
// number wildcards.
//
// This split is all there is to parsing an index name at construction time;
// full patterns are parsed by Parse.
func SplitPrimes(s string) (p Pattern, err error) {
	str := s
	if w := strings.IndexByte(s, PrimeWildcard); w >= 0 {
		p.HasPrimeWildcard = true
		str = s[:w]
		if w < len(s)-1 {
			if p.PrimeIncrement, err = ParsePrimes(s[w+1:]); err != nil {
				return Pattern{}, fmt.Errorf("prime increment in %q: %w", s, err)
			}
		}
	}
	if i := strings.IndexByte(str, Prime); i >= 0 {
		p.RawName = str[:i]
		if p.PrimeLevel, err = ParsePrimes(str[i:]); err != nil {
			return Pattern{}, fmt.Errorf("prime level in %q: %w", s, err)
		}
		if p.PrimeLevel < 0 {
			return Pattern{}, fmt.Errorf("%w: negative prime level in %q", ErrInvalidPrimeLevel, s)
		}
	} else {
		p.RawName = str
	}
	return p, nil
}

// Parse parses a name pattern.
//
// It is not an error to have a prime wildcard together with a non-zero prime
// level. Such a pattern will select indices, but is rejected as a rename target.
func Parse(s string) (Pattern, error) {
	p, err := SplitPrimes(s)
	if err != nil {
		return p, err
	}
	if w := strings.IndexByte(p.RawName, NumberWildcard); w >= 0 {
		if w != len(p.RawName)-1 {
			return Pattern{}, malformed("# must be at the end of the index name in %q", s)
		}
		p.HasNumberWildcard = true
		p.RawName = p.RawName[:w]
	}
	tracer().P("pattern", s).Debugf("parsed as %#v", p)
	return p, nil
}

// MustParse is like Parse, but panics on malformed patterns.
// It is intended for patterns known at compile time.
func MustParse(s string) Pattern {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders a pattern in the pattern language. Parse(p.String()) results
// in p for all patterns p with non-negative prime values.
func (p Pattern) String() string {
	var b strings.Builder
	b.WriteString(p.RawName)
	if p.HasNumberWildcard {
		b.WriteByte(NumberWildcard)
	}
	writePrimes(&b, p.PrimeLevel)
	if p.HasPrimeWildcard {
		b.WriteByte(PrimeWildcard)
		if p.PrimeIncrement != 0 {
			writePrimes(&b, p.PrimeIncrement)
		}
	}
	return b.String()
}

func writePrimes(b *strings.Builder, n int) {
	if s, err := RenderPrimes(n); err == nil {
		b.WriteString(s)
	} else {
		b.WriteString("'" + strconv.Itoa(n))
	}
}

// --- Matching ---------------------------------------------------------------

// MatchName checks a raw name against the raw name of a pattern. Without number
// wildcard, names have to be equal. With number wildcard, pattern has to be a
// prefix of name and the rest of name has to be an unsigned integer, which is
// returned as intMatch.
//
// intMatch is computed only after the prefix has matched. It is 0 if there is
// no match.
func MatchName(name, pattern string, numberWildcard bool) (matches bool, intMatch int) {
	if !numberWildcard {
		return name == pattern, 0
	}
	if !strings.HasPrefix(name, pattern) {
		return false, 0
	}
	rest := name[len(pattern):]
	if rest == "" || strings.TrimLeft(rest, "0123456789") != "" {
		return false, 0
	}
	n, err := strconv.Atoi(rest)
	if err != nil { // overflow
		return false, 0
	}
	return true, n
}

// MatchesName checks a raw name against this pattern, honouring a number wildcard.
func (p Pattern) MatchesName(name string) (bool, int) {
	return MatchName(name, p.RawName, p.HasNumberWildcard)
}

// MatchesLevel checks a prime level against this pattern. With a prime wildcard,
// any prime level greater than or equal to the pattern's level matches.
func (p Pattern) MatchesLevel(plev int) bool {
	if p.HasPrimeWildcard {
		return plev >= p.PrimeLevel
	}
	return plev == p.PrimeLevel
}

// Matches checks raw name and prime level against this pattern.
func (p Pattern) Matches(name string, plev int) bool {
	ok, _ := p.MatchesName(name)
	return ok && p.MatchesLevel(plev)
}
