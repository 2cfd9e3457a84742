// Package listing renders decoded instruction words as a table for
// human inspection.
package listing

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/ue14500/word"
)

// Fprint writes a listing of the words to out, one row per word. Every
// field is rendered at fixed width so columns stay stable regardless of
// value.
func Fprint(out io.Writer, words word.Words) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleLight)

	tw.AppendHeader(table.Row{"inst", "bits", "addr", "bits", "ctrl", "mode"})
	for _, wd := range words {
		tw.AppendRow(table.Row{
			wd.Inst().Name(),
			wd.Inst().Bin(),
			wd.Addr().Oct(),
			wd.Addr().Bin(),
			wd.Ctrl().Bin(),
			wd.Addr().Name(),
		})
	}

	tw.Render()
}
