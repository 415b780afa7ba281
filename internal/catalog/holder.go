package catalog

import "sync/atomic"

// Holder publishes the current snapshot. Reloads swap in a whole new snapshot;
// callers that already hold the old one keep a consistent view.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

func NewHolder(initial *Snapshot) *Holder {
	h := &Holder{}
	if initial != nil {
		h.current.Store(initial)
	}
	return h
}

// Current returns the live snapshot, or nil before the first load.
func (h *Holder) Current() *Snapshot {
	return h.current.Load()
}

// Replace installs s and returns the snapshot it displaced.
func (h *Holder) Replace(s *Snapshot) *Snapshot {
	return h.current.Swap(s)
}
