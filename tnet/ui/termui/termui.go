// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'tnet.cli'.
func trace() tracing.Trace {
	return tracing.Select("tnet.cli")
}

// Formatter writes an item to w. It returns false if it does not know how
// to format the item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats strings, errors and tables. Everything else is
// displayed by type only.
type DefaultFormatter struct{}

func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case string:
		w.Write([]byte("▶ "))
		if _, err := w.Write([]byte(t)); err != nil {
			return false, err
		}
		w.Write([]byte{'\n'})
		return true, nil
	case error:
		_, err := fmt.Fprintf(w, "▶ error: %s\n", t.Error())
		return err == nil, err
	case table.Writer:
		if t == nil {
			w.Write([]byte("▶ (empty table)\n"))
		} else {
			w.Write([]byte(t.Render()))
			w.Write([]byte{'\n'})
		}
		return true, nil
	case fmt.Stringer:
		_, err := fmt.Fprintf(w, "▶ %s\n", t.String())
		return err == nil, err
	default:
		w.Write([]byte("▶ "))
		w.Write([]byte(fmt.Sprintf("object of type %T\n", t)))
		return true, nil
	}
}
