package tui

import "github.com/vovakirdan/tui-platformer/internal/core"

// HoldLatch turns key press events into held-key state.
// Terminals never report key releases; instead auto-repeat re-sends the key
// while it is down. Each press keeps the action held for a fixed number of
// ticks, long enough to bridge the gap between repeats.
type HoldLatch struct {
	ticks     int
	remaining map[core.Action]int
	frame     core.InputFrame
}

// NewHoldLatch creates a latch that holds each press for ticks frames.
func NewHoldLatch(ticks int) *HoldLatch {
	return &HoldLatch{
		ticks:     max(ticks, 1),
		remaining: make(map[core.Action]int),
		frame:     core.NewInputFrame(),
	}
}

// Press marks a as held for the next ticks frames.
func (l *HoldLatch) Press(a core.Action) {
	l.remaining[a] = l.ticks

	// Opposite directions cancel; the latest press wins
	switch a {
	case core.ActionLeft:
		delete(l.remaining, core.ActionRight)
	case core.ActionRight:
		delete(l.remaining, core.ActionLeft)
	}
}

// Frame returns the held actions for this tick and ages every hold by one.
// The returned frame is reused by the next call.
func (l *HoldLatch) Frame() core.InputFrame {
	l.frame.Clear()
	for a, n := range l.remaining {
		l.frame.Set(a)
		if n <= 1 {
			delete(l.remaining, a)
		} else {
			l.remaining[a] = n - 1
		}
	}
	return l.frame
}

// Release drops every held action.
func (l *HoldLatch) Release() {
	clear(l.remaining)
}
