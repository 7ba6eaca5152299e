package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"ustart/internal/entries"
)

// Column floors for the listing: the id column pads to 24 cells and the
// command column to 50 before either is allowed to grow.
const (
	idColumnWidth      = 24
	commandColumnWidth = 50
)

// renderEntryTable lays the entries out as a borderless two-column table
// with a lowercase header row. An empty slice yields only the header.
func renderEntryTable(list []entries.Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(entryTableStyle())

	tw.AppendHeader(table.Row{"id", "command"})
	for _, entry := range list {
		tw.AppendRow(table.Row{entry.ID, entry.Command})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft, WidthMin: idColumnWidth},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft, WidthMin: commandColumnWidth},
	})

	return tw.Render()
}

func entryTableStyle() table.Style {
	style := table.StyleDefault
	style.Options.DrawBorder = false
	style.Options.SeparateColumns = false
	style.Options.SeparateHeader = false
	style.Options.SeparateRows = false
	// StyleDefault shouts headers in uppercase; the listing keeps them as
	// written.
	style.Format.Header = text.FormatDefault
	style.Box.PaddingLeft = ""
	style.Box.PaddingRight = " "
	return style
}
