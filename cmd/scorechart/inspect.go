package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aerissecure/scorechart/internal/output"
	"github.com/aerissecure/scorechart/series"
	"github.com/aerissecure/scorechart/xlsx"
)

func newInspectCmd(a *app) *cobra.Command {
	var reader string
	cmd := &cobra.Command{
		Use:   "inspect <file.xlsx>",
		Short: "Show the rows of a score sheet and their chart labels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("reader") {
				a.cfg.Reader = reader
			}
			rd, err := xlsx.NewReader(a.cfg.Reader)
			if err != nil {
				return err
			}
			table, err := xlsx.Open(args[0], rd)
			if err != nil {
				return err
			}
			result := series.Build(series.FromCells(table.Rows))

			a.printer.Header(table.Sheet)
			tbl := output.NewTable(a.printer.Out(),
				output.Column{Title: "#", Right: true},
				output.Column{Title: "Label"},
				output.Column{Title: "Value", Right: true},
				output.Column{Title: "Chart label"},
			)
			for i, pair := range result.Summary {
				tbl.AddRow(
					strconv.Itoa(i+1),
					pair.Label,
					series.Text(pair.Value),
					strings.Join(result.Points[i].Label.Lines, " / "),
				)
			}
			return tbl.Render()
		},
	}
	cmd.Flags().StringVar(&reader, "reader", "", "Spreadsheet reader: excelize, unioffice")
	return cmd
}
