package queue

import "sync/atomic"

// Sequencer hands out increasing review batch sequence numbers. It is shared
// by the start-up augmentation and the intake endpoint so the catalog can
// tell which batch is newest.
type Sequencer struct{ n atomic.Uint64 }

// Next returns the next sequence number, starting at 1.
func (s *Sequencer) Next() uint64 { return s.n.Add(1) }
