package queue

import (
	"context"
	"sync"
	"time"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
	"github.com/fairyhunter13/tour-catalog-service/internal/obs"
)

// Applier receives review batches; *catalog.Catalog implements it.
type Applier interface {
	ApplyReviews(b model.ReviewBatch) int
}

// Manager runs a fixed pool of workers applying queued batches.
type Manager struct {
	q       *Queue
	applier Applier
	seq     *Sequencer
	workers int

	// submitMu keeps queue order equal to sequence order.
	submitMu sync.Mutex

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewManager wires a queue to an applier. seq numbers accepted batches and
// should be the same Sequencer the start-up augmentation uses.
func NewManager(q *Queue, a Applier, seq *Sequencer, workers int) *Manager {
	if workers <= 0 {
		workers = 1
	}
	return &Manager{q: q, applier: a, seq: seq, workers: workers}
}

// Start launches the broker and the workers.
func (m *Manager) Start(parent context.Context, highWatermark int) {
	ctx, cancel := context.WithCancel(parent)
	m.cancel = cancel
	m.q.Start(ctx, highWatermark)
	for i := 0; i < m.workers; i++ {
		m.wg.Add(1)
		go m.worker(ctx, i)
	}
	obs.Logger.Info("review_workers_started", "worker_count", m.workers)
}

// Stop cancels the broker and workers and waits for the workers to exit.
func (m *Manager) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
}

func (m *Manager) worker(ctx context.Context, id int) {
	defer m.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case b := <-m.q.Out():
			updated := m.applier.ApplyReviews(b)
			m.q.MarkProcessed()
			obs.Logger.Info("review_batch_applied",
				"worker", id,
				"sequence", b.Sequence,
				"source", b.Source,
				"entries", len(b.Entries),
				"tours_updated", updated,
			)
		}
	}
}

// Submit numbers b and enqueues it, returning the assigned sequence. ok is
// false once intake is closed.
func (m *Manager) Submit(b model.ReviewBatch) (seq uint64, ok bool) {
	m.submitMu.Lock()
	defer m.submitMu.Unlock()
	if m.q.IsClosed() {
		return 0, false
	}
	b.Sequence = m.seq.Next()
	return b.Sequence, m.q.Enqueue(b)
}

func (m *Manager) WorkerCount() int { return m.workers }

func (m *Manager) Stats() Stats { return m.q.Stats() }

func (m *Manager) CloseIntake() { m.q.CloseIntake() }

func (m *Manager) IsClosed() bool { return m.q.IsClosed() }

// DrainUntil blocks until every accepted batch is applied or ctx ends.
func (m *Manager) DrainUntil(ctx context.Context) bool {
	for {
		if m.q.Stats().Drained() {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(20 * time.Millisecond):
		}
	}
}
