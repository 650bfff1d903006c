package index

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tnet"
	"github.com/npillmayer/tnet/index/idgen"
	"github.com/npillmayer/tnet/index/namepat"
)

// tracer traces with key 'tnet.index'.
func tracer() tracing.Trace {
	return tracing.Select("tnet.index")
}

// Errors for index operations. Concrete errors wrap one of these.
var (
	ErrMalformedPattern       = namepat.ErrMalformedPattern
	ErrInvalidPrimeLevel      = namepat.ErrInvalidPrimeLevel
	ErrNumberWildcardMismatch = errors.New("number wildcard mismatch")
	ErrUninitialized          = errors.New("index is default initialized")
	ErrInvalidIndex           = errors.New("invalid index")
)

// === Index types ===========================================================

// Type is an optional category tag of an index. Untyped indices have type NoType.
type Type string

// Predefined index types. All is a wildcard for operations which filter by
// type; it is not a valid type for an index.
const (
	NoType Type = ""
	All    Type = "All"
	Link   Type = "Link"
	Site   Type = "Site"
)

func (t Type) admits(other Type) bool {
	return t == All || t == other
}

// === Index =================================================================

// Index is an axis of a tensor. Index is a value type: holders copy it, and
// mutating methods operate on the holder's copy only.
type Index struct {
	id   idgen.ID
	plev int
	m    int64
	typ  Type
	name string
}

// Option configures an index at construction time.
type Option func(*config)

type config struct {
	plev int
	typ  Type
	gen  idgen.Generator
}

// WithPrime sets the initial prime level of an index. A prime suffix in the
// name takes precedence.
func WithPrime(plev int) Option {
	return func(c *config) {
		c.plev = plev
	}
}

// WithType sets the category tag of an index.
func WithType(t Type) Option {
	return func(c *config) {
		c.typ = t
	}
}

// WithGenerator draws the identity of an index from g instead of the
// process-wide generator.
func WithGenerator(g idgen.Generator) Option {
	return func(c *config) {
		c.gen = g
	}
}

// New creates an index with a new identity.
//
// name may carry a prime suffix, e.g. "site'" or "site'5". A non-zero prime
// level given this way overrides option WithPrime. Wildcards are not allowed
// in names of new indices.
func New(name string, m int64, opts ...Option) (Index, error) {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if m < 1 {
		return Index{}, fmt.Errorf("%w: dimension of %q must be positive, is %d", ErrInvalidIndex, name, m)
	}
	if c.typ == All {
		return Index{}, fmt.Errorf("%w: cannot construct index %q of type All", ErrInvalidIndex, name)
	}
	if c.plev < 0 {
		return Index{}, fmt.Errorf("%w: index %q with prime level %d", ErrInvalidPrimeLevel, name, c.plev)
	}
	p, err := namepat.SplitPrimes(name)
	if err != nil {
		return Index{}, err
	}
	if p.HasPrimeWildcard {
		return Index{}, fmt.Errorf("%w: no wildcard allowed in a constructed name %q", ErrMalformedPattern, name)
	}
	if strings.IndexByte(p.RawName, namepat.NumberWildcard) >= 0 {
		return Index{}, fmt.Errorf("%w: no number wildcard allowed in a constructed name %q", ErrMalformedPattern, name)
	}
	if c.gen == nil {
		c.gen = idgen.Default()
	}
	i := Index{
		id:   c.gen.Generate(),
		plev: c.plev,
		m:    m,
		typ:  c.typ,
		name: p.RawName,
	}
	if p.PrimeLevel != 0 {
		i.plev = p.PrimeLevel
	}
	tracer().P("index", i.Name()).Debugf("new index of dimension %d", m)
	return i, nil
}

// Must is a helper which wraps a call to New and panics if New returns an error.
//
//    i := index.Must(index.New("site", 2))
//
func Must(i Index, err error) Index {
	if err != nil {
		panic(err)
	}
	return i
}

// IsValid is a predicate: has this index an identity? Default initialized
// indices are not valid.
func (i Index) IsValid() bool {
	return i.id != 0
}

// ID returns the identity of an index.
func (i Index) ID() idgen.ID {
	return i.id
}

// PrimeLevel returns the prime level of an index.
func (i Index) PrimeLevel() int {
	return i.plev
}

// Dim returns the dimension of an index. The null index has dimension 1.
func (i Index) Dim() int64 {
	if !i.IsValid() {
		return 1
	}
	return i.m
}

// Type returns the category tag of an index.
func (i Index) Type() Type {
	return i.typ
}

// RawName returns the name of an index without primes.
func (i Index) RawName() string {
	return i.name
}

// Name returns the name of an index, including the canonical prime suffix.
func (i Index) Name() string {
	s, _ := namepat.PutPrimes(i.name, i.plev) // plev is never negative
	return s
}

func (i Index) assertValid(op string) error {
	if !i.IsValid() {
		return fmt.Errorf("%w: cannot %s", ErrUninitialized, op)
	}
	return nil
}

// --- Equality and ordering -------------------------------------------------

// Equal is a predicate: are i and j the same index? Indices are equal if they
// agree in ID, prime level and raw name. Dimensions are not compared.
func (i Index) Equal(j Index) bool {
	return i.id == j.id && i.plev == j.plev && i.name == j.name
}

// NoPrimeEquals is a predicate: do i and j have the same identity, regardless
// of prime levels and names?
func (i Index) NoPrimeEquals(j Index) bool {
	return i.id == j.id
}

// Compare orders indices by dimension, then ID, then prime level.
// It returns -1, 0 or +1. Names do not take part in ordering.
func Compare(i, j Index) int {
	switch {
	case i.Dim() != j.Dim():
		return sign(i.Dim() < j.Dim())
	case i.id != j.id:
		return sign(i.id < j.id)
	case i.plev != j.plev:
		return sign(i.plev < j.plev)
	}
	return 0
}

func sign(less bool) int {
	if less {
		return -1
	}
	return 1
}

// Less is a predicate: is i ordered before j? See Compare.
func (i Index) Less(j Index) bool {
	return Compare(i, j) < 0
}

// --- Display ---------------------------------------------------------------

// String returns a diagnostic representation of an index, e.g.
//
//    ("site",2,Site)'
//
// If global flag ShowIDs is set, the last 3 digits of the identity will be
// displayed as well: ("site",2,Site|417)'.
func (i Index) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%q,%d", i.name, i.Dim())
	if i.typ != NoType {
		b.WriteString(",")
		b.WriteString(string(i.typ))
	}
	if tnet.ShowIDs() {
		fmt.Fprintf(&b, "|%d", i.id%1000)
	}
	b.WriteString(")")
	s, _ := namepat.PutPrimes(b.String(), i.plev)
	return s
}

// ShowM returns the dimension of an index as "m=<dim>".
func ShowM(i Index) string {
	return fmt.Sprintf("m=%d", i.Dim())
}

// Sim creates a new index similar to i: its name is i's raw name prepended
// with '~', and it has the same dimension and type. The new index has a new
// identity and prime level plev.
func Sim(i Index, plev int, opts ...Option) (Index, error) {
	if err := i.assertValid("create similar index"); err != nil {
		return Index{}, err
	}
	opts = append([]Option{WithType(i.typ), WithPrime(plev)}, opts...)
	return New("~"+i.name, i.m, opts...)
}
