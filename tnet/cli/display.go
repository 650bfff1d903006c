package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/tnet"
	"github.com/npillmayer/tnet/index"
	"github.com/npillmayer/tnet/index/namepat"
	"github.com/npillmayer/tnet/indexset"
	"github.com/npillmayer/tnet/tnet/ui/termui"
)

// Formatter knows how to display indices, index sets and name patterns.
type Formatter struct {
	termui.DefaultFormatter
}

func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("format called for item %T", item)
	switch t := item.(type) {
	case index.Index:
		item = indexAsTable(t)
	case []index.Index:
		if len(t) == 0 {
			item = "no indices"
		} else {
			item = indicesAsTable(t, "")
		}
	case *indexset.IndexSet:
		if t.Rank() == 0 {
			item = "workspace is empty"
		} else {
			item = indicesAsTable(t.Indices(), fmt.Sprintf("Workspace of rank %d", t.Rank()))
		}
	case namepat.Pattern:
		item = patternAsTable(t)
	}
	return f.DefaultFormatter.Format(item, w)
}

// --- Property tables for various types -------------------------------------

func indexAsTable(i index.Index) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Index %s", i.Name())
	tw.AppendRow(table.Row{"raw name", i.RawName()})
	tw.AppendRow(table.Row{"prime level", i.PrimeLevel()})
	tw.AppendRow(table.Row{"dimension", i.Dim()})
	tw.AppendRow(table.Row{"type", typeName(i.Type())})
	if tnet.ShowIDs() {
		tw.AppendRow(table.Row{"id", fmt.Sprintf("%d", i.ID())})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func indicesAsTable(indices []index.Index, title string) table.Writer {
	tw := table.NewWriter()
	if title != "" {
		tw.SetTitle(title)
	}
	header := table.Row{"#", "name", "dim", "type"}
	if tnet.ShowIDs() {
		header = append(header, "id")
	}
	tw.AppendHeader(header)
	for k, i := range indices {
		row := table.Row{k, i.Name(), i.Dim(), typeName(i.Type())}
		if tnet.ShowIDs() {
			row = append(row, fmt.Sprintf("%d", i.ID()))
		}
		tw.AppendRow(row)
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func patternAsTable(p namepat.Pattern) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Pattern %s", p.String())
	tw.AppendRow(table.Row{"raw name", p.RawName})
	tw.AppendRow(table.Row{"number wildcard", p.HasNumberWildcard})
	tw.AppendRow(table.Row{"prime level", p.PrimeLevel})
	tw.AppendRow(table.Row{"prime wildcard", p.HasPrimeWildcard})
	if p.HasPrimeWildcard {
		tw.AppendRow(table.Row{"prime increment", p.PrimeIncrement})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func typeName(t index.Type) string {
	if t == index.NoType {
		return "–"
	}
	return string(t)
}
