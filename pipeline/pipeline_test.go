package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/aerissecure/scorechart/series"
	"github.com/aerissecure/scorechart/xlsx"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// stubReader returns table once release is closed (or immediately if nil).
type stubReader struct {
	table   xlsx.Table
	err     error
	started chan struct{}
	release chan struct{}
}

func (s *stubReader) Read(io.ReaderAt, int64) (xlsx.Table, error) {
	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		<-s.release
	}
	return s.table, s.err
}

func table(rows ...[]any) xlsx.Table {
	return xlsx.Table{Sheet: "Sheet1", Header: []any{"Question", "Score"}, Rows: rows}
}

func TestBoardPublishLatest(t *testing.T) {
	var b Board
	_, ok := b.Current()
	assert.False(t, ok)

	first := b.Begin()
	second := b.Begin()
	assert.Greater(t, second, first)

	res := series.Build([]series.Row{{Label: "A", Value: 1.0}})
	assert.False(t, b.Publish(first, "old.xlsx", res))
	_, ok = b.Current()
	assert.False(t, ok)

	assert.True(t, b.Publish(second, "new.xlsx", res))
	snap, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, second, snap.Generation)
	assert.Equal(t, "new.xlsx", snap.Source)
	assert.Equal(t, res, snap.Result)

	// A late publish of the older build leaves the display untouched.
	assert.False(t, b.Publish(first, "old.xlsx", series.Build(nil)))
	snap, _ = b.Current()
	assert.Equal(t, "new.xlsx", snap.Source)
}

func TestUpload(t *testing.T) {
	board := &Board{}
	u := Uploader{
		Reader: &stubReader{table: table([]any{"Punctuality", 4.5}, []any{"Quality of teaching materials provided", 3.9})},
		Board:  board,
		Logger: zap.NewNop(),
	}

	res, err := u.Upload(context.Background(), "scores.xlsx", bytes.NewReader(nil), 0)
	require.NoError(t, err)
	require.Equal(t, 2, res.Len())
	assert.Equal(t, "Punctuality", res.Summary[0].Label)
	assert.Equal(t, []string{"Quality of teaching", "materials provided"}, res.Points[1].Label.Lines)

	snap, ok := board.Current()
	require.True(t, ok)
	assert.Equal(t, "scores.xlsx", snap.Source)
	assert.Equal(t, res, snap.Result)
}

func TestUploadDefaultReader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Question"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "Score"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "Punctuality"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 4.5))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	u := Uploader{Board: &Board{}}
	res, err := u.Upload(context.Background(), "scores.xlsx", bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())
	assert.Equal(t, 4.5, res.Summary[0].Value)
}

func TestUploadReadError(t *testing.T) {
	boom := errors.New("boom")
	board := &Board{}
	u := Uploader{Reader: &stubReader{err: boom}, Board: board}

	_, err := u.Upload(context.Background(), "bad.xlsx", bytes.NewReader(nil), 0)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "bad.xlsx")
	_, ok := board.Current()
	assert.False(t, ok)
}

func TestUploadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	u := Uploader{Reader: &stubReader{table: table([]any{"A", 1.0})}, Board: &Board{}}

	_, err := u.Upload(ctx, "a.xlsx", bytes.NewReader(nil), 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUploadNoBoard(t *testing.T) {
	_, err := (&Uploader{}).Upload(context.Background(), "a.xlsx", bytes.NewReader(nil), 0)
	assert.Error(t, err)
}

func TestUploadSuperseded(t *testing.T) {
	board := &Board{}
	slow := &stubReader{
		table:   table([]any{"Old", 1.0}),
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	fast := &stubReader{table: table([]any{"New", 2.0})}

	var (
		wg      sync.WaitGroup
		slowErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, slowErr = (&Uploader{Reader: slow, Board: board}).Upload(context.Background(), "old.xlsx", bytes.NewReader(nil), 0)
	}()

	<-slow.started
	res, err := (&Uploader{Reader: fast, Board: board}).Upload(context.Background(), "new.xlsx", bytes.NewReader(nil), 0)
	require.NoError(t, err)
	assert.Equal(t, "New", res.Summary[0].Label)

	close(slow.release)
	wg.Wait()
	assert.ErrorIs(t, slowErr, ErrSuperseded)

	snap, ok := board.Current()
	require.True(t, ok)
	assert.Equal(t, "new.xlsx", snap.Source)
	assert.Equal(t, []series.SummaryPair{{Label: "New", Value: 2.0}}, snap.Result.Summary)
}

func TestUploadConcurrent(t *testing.T) {
	board := &Board{}
	const n = 16

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u := Uploader{Reader: &stubReader{table: table([]any{"Row", float64(i)})}, Board: board}
			_, err := u.Upload(context.Background(), "c.xlsx", bytes.NewReader(nil), 0)
			if err != nil {
				assert.ErrorIs(t, err, ErrSuperseded)
			}
		}()
	}
	wg.Wait()

	// Whatever build was shown, it is complete and not a mix.
	snap, ok := board.Current()
	require.True(t, ok)
	require.Len(t, snap.Result.Summary, 1)
	require.Len(t, snap.Result.Points, 1)
	assert.Equal(t, snap.Result.Summary[0].Value, snap.Result.Points[0].Value)
}

func TestUploadSupersededByFailedUpload(t *testing.T) {
	board := &Board{}
	first := Uploader{Reader: &stubReader{table: table([]any{"First", 1.0})}, Board: board}
	_, err := first.Upload(context.Background(), "first.xlsx", bytes.NewReader(nil), 0)
	require.NoError(t, err)

	slow := &stubReader{
		table:   table([]any{"Slow", 2.0}),
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	done := make(chan error, 1)
	go func() {
		_, err := (&Uploader{Reader: slow, Board: board}).Upload(context.Background(), "slow.xlsx", bytes.NewReader(nil), 0)
		done <- err
	}()
	<-slow.started

	// The newer upload fails, but it still began after the slow one did.
	boom := errors.New("unreadable")
	_, err = (&Uploader{Reader: &stubReader{err: boom}, Board: board}).Upload(context.Background(), "bad.xlsx", bytes.NewReader(nil), 0)
	require.ErrorIs(t, err, boom)

	close(slow.release)
	assert.ErrorIs(t, <-done, ErrSuperseded)

	snap, ok := board.Current()
	require.True(t, ok)
	assert.Equal(t, "first.xlsx", snap.Source)
	assert.Equal(t, []series.SummaryPair{{Label: "First", Value: 1.0}}, snap.Result.Summary)
}
