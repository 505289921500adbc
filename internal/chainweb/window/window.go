// Package window computes the height ranges a chain worker requests from the
// branch header endpoint.
package window

import "fmt"

// Window is an inclusive [Min, Max] height range with a target size.
type Window struct {
	Min   uint64
	Max   uint64
	Limit uint64
}

// New returns the first window starting at the resume height.
func New(resume, limit uint64) (Window, error) {
	if limit == 0 {
		return Window{}, fmt.Errorf("window limit must be positive")
	}
	return Window{Min: resume, Max: resume + limit - 1, Limit: limit}, nil
}

// Next advances the window after a round whose highest header was top.
// Min moves forward by Limit but never past top+1, so heights the frontier has
// not produced yet are requested again. Min always moves forward by at least
// one and Max never decreases.
func (w Window) Next(top uint64) Window {
	next := w
	next.Min = max(min(w.Min+w.Limit, top+1), w.Min+1)
	next.Max = max(w.Max, top+w.Limit)
	return next
}

// Ceiling is the highest height requested for this window. Pages come back in
// descending order truncated to Limit items, so asking for more than Limit
// heights above Min would drop the lowest ones.
func (w Window) Ceiling() uint64 {
	return min(w.Max, w.Min+w.Limit-1)
}

// Contains reports whether height falls inside the requested range
// [Min, Ceiling].
func (w Window) Contains(height uint64) bool {
	return height >= w.Min && height <= w.Ceiling()
}

func (w Window) String() string {
	return fmt.Sprintf("[%d, %d] limit %d", w.Min, w.Max, w.Limit)
}
