package index

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/tnet"
	"github.com/npillmayer/tnet/index/idgen"
	"github.com/npillmayer/tnet/index/namepat"
)

// === Serialization =========================================================

// Indices are written as a sequence of little-endian fields without framing:
//
//    prime level   int32
//    id            uint64 (uint32 for legacy files)
//    dimension     int64
//    raw name      uint32 length + bytes
//    type          uint32 length + bytes
//
// Legacy files from generators with 32 bit identities are read if global flag
// Read32BitIDs is set.

var byteOrder = binary.LittleEndian

const maxStringLength = 1 << 16

// Write writes an index to w. Writing a default initialized index is an error.
func (i Index) Write(w io.Writer) error {
	if err := i.assertValid("write index"); err != nil {
		return err
	}
	tracer().P("index", i.Name()).Debugf("writing index")
	fields := []interface{}{int32(i.plev), uint64(i.id), i.m}
	for _, f := range fields {
		if err := binary.Write(w, byteOrder, f); err != nil {
			return fmt.Errorf("writing index %s: %w", i.Name(), err)
		}
	}
	if err := writeString(w, i.name); err != nil {
		return fmt.Errorf("writing index %s: %w", i.Name(), err)
	}
	if err := writeString(w, string(i.typ)); err != nil {
		return fmt.Errorf("writing index %s: %w", i.Name(), err)
	}
	return nil
}

// Read reads an index from r, in the format of Write. Read returns io.EOF
// only if r is exhausted before the first byte of an index. A record cut
// short anywhere after that is reported as io.ErrUnexpectedEOF.
func Read(r io.Reader) (Index, error) {
	var i Index
	var plev int32
	if err := binary.Read(r, byteOrder, &plev); err == io.EOF {
		return Index{}, io.EOF
	} else if err != nil {
		return Index{}, fmt.Errorf("reading prime level: %w", err)
	}
	i.plev = int(plev)
	if tnet.Read32BitIDs() {
		var oldid uint32
		if err := binary.Read(r, byteOrder, &oldid); err != nil {
			return Index{}, fmt.Errorf("reading legacy index id: %w", truncated(err))
		}
		i.id = idgen.ID(oldid)
	} else {
		var id uint64
		if err := binary.Read(r, byteOrder, &id); err != nil {
			return Index{}, fmt.Errorf("reading index id: %w", truncated(err))
		}
		i.id = idgen.ID(id)
	}
	if err := binary.Read(r, byteOrder, &i.m); err != nil {
		return Index{}, fmt.Errorf("reading index dimension: %w", truncated(err))
	}
	var err error
	if i.name, err = readString(r); err != nil {
		return Index{}, fmt.Errorf("reading index name: %w", truncated(err))
	}
	var typ string
	if typ, err = readString(r); err != nil {
		return Index{}, fmt.Errorf("reading index type: %w", truncated(err))
	}
	i.typ = Type(typ)
	if err := i.checkRead(); err != nil {
		return Index{}, err
	}
	tracer().P("index", i.Name()).Debugf("read index")
	return i, nil
}

// checkRead applies the construction rules of New to an index read from a
// stream.
func (i Index) checkRead() error {
	if i.m < 1 {
		return fmt.Errorf("%w: read index %q with dimension %d", ErrInvalidIndex, i.name, i.m)
	}
	if i.typ == All {
		return fmt.Errorf("%w: read index %q of type All", ErrInvalidIndex, i.name)
	}
	if strings.ContainsAny(i.name, reservedChars) {
		return fmt.Errorf("%w: read index with raw name %q", ErrMalformedPattern, i.name)
	}
	if debugChecks && i.plev < 0 {
		return fmt.Errorf("%w: read index %q with prime level %d", ErrInvalidPrimeLevel, i.name, i.plev)
	}
	return nil
}

// Characters with a meaning in name patterns, not allowed in raw names.
var reservedChars = string([]byte{namepat.Prime, namepat.PrimeWildcard, namepat.NumberWildcard})

// truncated maps an early end of input within a record to io.ErrUnexpectedEOF.
func truncated(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func writeString(w io.Writer, s string) error {
	if len(s) > maxStringLength {
		return fmt.Errorf("string of length %d too long", len(s))
	}
	if err := binary.Write(w, byteOrder, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var l uint32
	if err := binary.Read(r, byteOrder, &l); err != nil {
		return "", err
	}
	if l > maxStringLength {
		return "", fmt.Errorf("string of length %d too long", l)
	}
	b := make([]byte, l)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}
