package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/aerissecure/scorechart/series"
	"github.com/aerissecure/scorechart/xlsx"
)

// ErrSuperseded is returned when a newer upload began before this one was
// published.
var ErrSuperseded = errors.New("pipeline: superseded by a newer upload")

// Uploader reads an uploaded workbook, builds its series and publishes it on
// Board.
type Uploader struct {
	Reader xlsx.Reader // nil means xlsx.Excelize
	Board  *Board
	Logger *zap.Logger // nil means no logging
}

// Upload runs one upload to completion. The returned result is the one that
// was published.
func (u *Uploader) Upload(ctx context.Context, source string, r io.ReaderAt, size int64) (series.Result, error) {
	if u.Board == nil {
		return series.Result{}, errors.New("pipeline: uploader has no board")
	}
	log := u.Logger
	if log == nil {
		log = zap.NewNop()
	}
	reader := u.Reader
	if reader == nil {
		reader = xlsx.Excelize{}
	}

	ticket := u.Board.Begin()
	log = log.With(zap.String("source", source), zap.Uint64("generation", uint64(ticket)))
	log.Debug("upload started", zap.Int64("size", size))

	if err := ctx.Err(); err != nil {
		return series.Result{}, err
	}

	table, err := reader.Read(r, size)
	if err != nil {
		log.Warn("read failed", zap.Error(err))
		return series.Result{}, fmt.Errorf("pipeline: read %s: %w", source, err)
	}

	result := series.Build(series.FromCells(table.Rows))
	log.Debug("series built", zap.String("sheet", table.Sheet), zap.Int("rows", result.Len()))

	if err := ctx.Err(); err != nil {
		return series.Result{}, err
	}

	if !u.Board.Publish(ticket, source, result) {
		log.Info("discarded stale upload")
		return series.Result{}, ErrSuperseded
	}
	log.Info("upload published", zap.Int("rows", result.Len()))
	return result, nil
}
