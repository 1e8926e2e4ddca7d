// SPDX-License-Identifier: MIT

package workspace

import (
	"context"
	"time"
)

// DefaultDebounce is the quiet period after the last edit before a scheduled
// action should fire.
const DefaultDebounce = 300 * time.Millisecond

// Ticket identifies one Schedule call.
type Ticket uint64

// Debouncer keeps only the most recently scheduled action. Each Schedule call
// bumps a generation counter; Fire runs the action only for the latest
// ticket, so a superseded timer firing late is a no-op.
//
// The zero value is ready to use. Not safe for concurrent use; callers that
// fire from timers must marshal back onto the owning goroutine.
type Debouncer struct {
	gen Ticket
	fn  func(context.Context) error
}

// Schedule replaces any pending action with fn and returns its ticket.
func (d *Debouncer) Schedule(fn func(context.Context) error) Ticket {
	d.gen++
	d.fn = fn

	return d.gen
}

// Pending reports whether an action is waiting to fire.
func (d *Debouncer) Pending() bool { return d.fn != nil }

// Latest returns the ticket of the most recent Schedule call.
func (d *Debouncer) Latest() Ticket { return d.gen }

// Fire runs the pending action if t is still the latest ticket.
// Returns ran=false for a superseded ticket or when nothing is pending.
func (d *Debouncer) Fire(ctx context.Context, t Ticket) (ran bool, err error) {
	if t != d.gen || d.fn == nil {
		return false, nil
	}
	fn := d.fn
	d.fn = nil

	return true, fn(ctx)
}

// Flush runs the pending action immediately, whatever its ticket.
func (d *Debouncer) Flush(ctx context.Context) (bool, error) {
	return d.Fire(ctx, d.gen)
}

// Cancel drops the pending action without running it.
func (d *Debouncer) Cancel() {
	d.fn = nil
}
