package store

import (
	"context"
	"log/slog"

	"ripple/internal/observability"
	"ripple/internal/storage"
)

// kvWrite is one keyed blob to mirror to storage. A nil Value removes the key.
type kvWrite struct {
	Key   string
	Value []byte
}

type persistJob struct {
	writes  []kvWrite
	receipt *Receipt
}

// persister applies snapshot writes one at a time, in the order mutations were
// committed to memory, so a later snapshot can never be overwritten by an
// earlier one. Failures are logged and counted, never retried.
type persister struct {
	kv     storage.KV
	logger *slog.Logger
	jobs   chan persistJob
	done   chan struct{}
}

func newPersister(kv storage.KV, logger *slog.Logger) *persister {
	p := &persister{
		kv:     kv,
		logger: logger,
		jobs:   make(chan persistJob, 64),
		done:   make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *persister) run() {
	defer close(p.done)
	for job := range p.jobs {
		job.receipt.resolve(p.apply(job.writes))
	}
}

func (p *persister) apply(writes []kvWrite) error {
	// Persistence is intentionally not tied to the request that triggered
	// it, and carries no deadline.
	ctx := context.Background()
	var firstErr error
	for _, w := range writes {
		var err error
		if w.Value == nil {
			err = p.kv.Remove(ctx, w.Key)
		} else {
			err = p.kv.Set(ctx, w.Key, w.Value)
		}
		if err != nil {
			observability.SnapshotWrites.WithLabelValues(w.Key, "error").Inc()
			p.logger.Error("snapshot write failed", "key", w.Key, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		observability.SnapshotWrites.WithLabelValues(w.Key, "ok").Inc()
	}
	return firstErr
}

// enqueue queues the writes and returns their receipt. Callers hold their
// store lock, which fixes the commit order.
func (p *persister) enqueue(writes ...kvWrite) *Receipt {
	r := newReceipt()
	p.jobs <- persistJob{writes: writes, receipt: r}
	return r
}

// flush blocks until every write queued before the call has been applied.
func (p *persister) flush() {
	r := newReceipt()
	p.jobs <- persistJob{receipt: r}
	r.Err()
}

// close drains pending writes and stops the worker.
func (p *persister) close() {
	close(p.jobs)
	<-p.done
}
