// Package pipeline turns uploaded spreadsheets into the series that is
// currently on display. When uploads overlap, the last one to begin wins.
package pipeline

import (
	"sync"

	"github.com/aerissecure/scorechart/series"
)

// Ticket identifies one upload. Tickets are issued in increasing order.
type Ticket uint64

// Snapshot is what the board currently shows.
type Snapshot struct {
	Generation Ticket
	Source     string
	Result     series.Result
}

// Board holds the displayed snapshot. The zero value is ready to use and
// shows nothing.
type Board struct {
	mu      sync.Mutex
	latest  Ticket
	current Snapshot
	shown   bool
}

// Begin issues the ticket for a new upload. Any build holding an older
// ticket can no longer be published.
func (b *Board) Begin() Ticket {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.latest++
	return b.latest
}

// Publish replaces the displayed snapshot with result if t is still the
// latest ticket. It reports whether the result was shown; stale results are
// dropped as a whole.
func (b *Board) Publish(t Ticket, source string, result series.Result) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t != b.latest {
		return false
	}
	b.current = Snapshot{Generation: t, Source: source, Result: result}
	b.shown = true
	return true
}

// Current returns the displayed snapshot and false if nothing has been
// published yet.
func (b *Board) Current() (Snapshot, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current, b.shown
}
