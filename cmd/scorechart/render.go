package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aerissecure/scorechart/chart"
	"github.com/aerissecure/scorechart/docx"
	"github.com/aerissecure/scorechart/export"
	"github.com/aerissecure/scorechart/internal/config"
	"github.com/aerissecure/scorechart/pipeline"
	"github.com/aerissecure/scorechart/report"
	"github.com/aerissecure/scorechart/xlsx"
)

type renderFlags struct {
	faculty    string
	department string
	year       string
	title      string
	color      string
	formats    []string
	outDir     string
	basename   string
	reader     string
	letterhead string
}

func newRenderCmd(a *app) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render <file.xlsx>",
		Short: "Render a score sheet as a report",
		Long: `Reads the first worksheet of the workbook (row one is the header, column A
the label and column B the score) and writes the report in every requested
format. All three metadata fields are required.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyRenderFlags(cmd, a.cfg, f)
			return a.render(cmd.Context(), args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.faculty, "faculty", "", "Name of faculty")
	flags.StringVar(&f.department, "department", "", "Department")
	flags.StringVar(&f.year, "year", "", "Academic year")
	flags.StringVar(&f.title, "title", "", "Report title")
	flags.StringVar(&f.color, "color", "", "Bar color (#rgb or #rrggbb)")
	flags.StringSliceVarP(&f.formats, "format", "f", nil, "Output formats: html, png, svg, pdf")
	flags.StringVarP(&f.outDir, "out", "o", "", "Output directory")
	flags.StringVar(&f.basename, "basename", "", "Output file name without extension")
	flags.StringVar(&f.reader, "reader", "", "Spreadsheet reader: excelize, unioffice")
	flags.StringVar(&f.letterhead, "letterhead", "", "DOCX letterhead replacing the institution header")
	return cmd
}

// applyRenderFlags overrides config values with the flags that were set.
func applyRenderFlags(cmd *cobra.Command, cfg *config.Config, f *renderFlags) {
	changed := cmd.Flags().Changed
	if changed("faculty") {
		cfg.Metadata.Faculty = f.faculty
	}
	if changed("department") {
		cfg.Metadata.Department = f.department
	}
	if changed("year") {
		cfg.Metadata.AcademicYear = f.year
	}
	if changed("title") {
		cfg.Title = f.title
	}
	if changed("color") {
		cfg.Chart.Color = f.color
	}
	if changed("format") {
		cfg.Output.Formats = f.formats
	}
	if changed("out") {
		cfg.Output.Dir = f.outDir
	}
	if changed("basename") {
		cfg.Output.Basename = f.basename
	}
	if changed("reader") {
		cfg.Reader = f.reader
	}
	if changed("letterhead") {
		cfg.Letterhead = f.letterhead
	}
}

func (a *app) render(ctx context.Context, path string) error {
	cfg := a.cfg
	if err := cfg.Validate(); err != nil {
		return err
	}
	meta := cfg.Metadata
	if !meta.Complete() {
		return fmt.Errorf("missing metadata: %s", strings.Join(meta.Missing(), ", "))
	}

	inst := cfg.Institution
	if cfg.Letterhead != "" {
		lh, err := docx.OpenLetterhead(cfg.Letterhead)
		if err != nil {
			return fmt.Errorf("letterhead: %w", err)
		}
		inst = inst.WithLetterhead(lh)
		a.logger.Debug("letterhead loaded", zap.Stringer("letterhead", lh))
	}

	reader, err := xlsx.NewReader(cfg.Reader)
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return err
	}

	uploader := pipeline.Uploader{Reader: reader, Board: &pipeline.Board{}, Logger: a.logger}
	result, err := uploader.Upload(ctx, filepath.Base(path), file, info.Size())
	if err != nil {
		return err
	}
	if result.Len() == 0 {
		a.printer.Warning("%s has no data rows", path)
	}

	page := report.Page{
		Institution: inst,
		Title:       cfg.Title,
		Metadata:    meta,
		Result:      result,
		Chart:       cfg.Chart,
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, format := range cfg.Output.Formats {
		format = strings.ToLower(format)
		if (format == config.FormatPNG || format == config.FormatSVG) && len(result.Points) == 0 {
			a.printer.Warning("skipping %s: no points to chart", format)
			continue
		}
		out := filepath.Join(cfg.Output.Dir, cfg.Output.Basename+"."+format)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := writeFile(out, func(w io.Writer) error { return renderFormat(w, format, page) }); err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			a.logger.Info("report written", zap.String("format", format), zap.String("path", out))
			a.printer.Success("wrote %s", out)
			return nil
		})
	}
	return g.Wait()
}

func renderFormat(w io.Writer, format string, page report.Page) error {
	switch format {
	case config.FormatHTML:
		return report.RenderHTML(w, page)
	case config.FormatPNG:
		return chart.RenderImage(w, page.Result.Points, page.Chart, chart.FormatPNG)
	case config.FormatSVG:
		return chart.RenderImage(w, page.Result.Points, page.Chart, chart.FormatSVG)
	case config.FormatPDF:
		return export.PDF(w, page)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// writeFile creates path and fills it with fn. The file is removed if fn
// fails.
func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
