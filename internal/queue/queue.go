// Package queue buffers review batches posted to the service and applies
// them to the catalog from a small worker pool.
package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
	"github.com/fairyhunter13/tour-catalog-service/internal/obs"
)

// Queue holds an unbounded backlog and a bounded output channel that workers
// read from. A broker goroutine moves batches from one to the other.
type Queue struct {
	mu      sync.Mutex
	backlog []model.ReviewBatch
	notify  chan struct{}
	out     chan model.ReviewBatch
	closed  atomic.Bool

	enqueued  atomic.Uint64
	processed atomic.Uint64
}

// New creates a Queue whose output channel buffers outBuffer batches.
func New(outBuffer int) *Queue {
	if outBuffer <= 0 {
		outBuffer = 64
	}
	return &Queue{
		notify: make(chan struct{}, 1),
		out:    make(chan model.ReviewBatch, outBuffer),
	}
}

// Start runs the broker until ctx ends. A positive highWatermark logs a
// warning whenever the backlog grows past it.
func (q *Queue) Start(ctx context.Context, highWatermark int) {
	go q.broker(ctx, highWatermark)
}

func (q *Queue) broker(ctx context.Context, highWatermark int) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	above := false
	for {
		n := q.flush()
		// Log transitions across the watermark only, not every tick.
		switch {
		case highWatermark <= 0:
		case !above && n > highWatermark:
			above = true
			obs.Logger.Warn("review_backlog_high", "backlog_size", n, "high_watermark", highWatermark)
		case above && n <= highWatermark:
			above = false
			obs.Logger.Info("review_backlog_recovered", "backlog_size", n, "high_watermark", highWatermark)
		}
		select {
		case <-ctx.Done():
			return
		case <-q.notify:
		case <-ticker.C:
		}
	}
}

// flush moves as many batches as fit into the output channel, in arrival
// order, and returns what is left in the backlog.
func (q *Queue) flush() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	moved := 0
	for moved < len(q.backlog) && len(q.out) < cap(q.out) {
		q.out <- q.backlog[moved]
		moved++
	}
	if moved > 0 {
		clear(q.backlog[:moved])
		q.backlog = q.backlog[moved:]
	}
	return len(q.backlog)
}

// Enqueue adds b to the backlog. It returns false once intake is closed.
func (q *Queue) Enqueue(b model.ReviewBatch) bool {
	if q.closed.Load() {
		return false
	}
	q.enqueued.Add(1)
	q.mu.Lock()
	q.backlog = append(q.backlog, b)
	q.mu.Unlock()
	select {
	case q.notify <- struct{}{}:
	default:
	}
	return true
}

// Out is the channel workers consume.
func (q *Queue) Out() <-chan model.ReviewBatch { return q.out }

// BacklogSize counts batches not yet handed to the output channel.
func (q *Queue) BacklogSize() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.backlog)
}

// Depth counts the backlog plus batches buffered in the output channel.
func (q *Queue) Depth() int {
	q.mu.Lock()
	n := len(q.backlog)
	q.mu.Unlock()
	return n + len(q.out)
}

// MarkProcessed records one applied batch.
func (q *Queue) MarkProcessed() { q.processed.Add(1) }

// Stats reports counters for the metrics endpoint.
func (q *Queue) Stats() Stats {
	return Stats{
		Enqueued:  q.enqueued.Load(),
		Processed: q.processed.Load(),
		Backlog:   q.BacklogSize(),
		Depth:     q.Depth(),
	}
}

// CloseIntake rejects further enqueues.
func (q *Queue) CloseIntake() { q.closed.Store(true) }

// IsClosed reports whether intake has been closed.
func (q *Queue) IsClosed() bool { return q.closed.Load() }

// Stats is a point-in-time view of queue counters.
type Stats struct {
	Enqueued  uint64 `json:"enqueued"`
	Processed uint64 `json:"processed"`
	Backlog   int    `json:"backlog"`
	Depth     int    `json:"depth"`
}

// Drained reports whether everything enqueued has been applied.
func (s Stats) Drained() bool {
	return s.Backlog == 0 && s.Depth == 0 && s.Enqueued == s.Processed
}
