// Package store implements the in-memory social-graph and content state
// containers. Each store loads a snapshot from local key-value storage at
// startup (seeding from the built-in sample dataset when none exists), applies
// mutations to memory first, and mirrors every change back to storage
// asynchronously. In-memory state is never rolled back on a failed write.
package store

// Receipt reports the durability outcome of a single mutation. The in-memory
// change is already visible when a Receipt is returned; the receipt only says
// whether the mirrored snapshot write made it to storage.
type Receipt struct {
	done chan struct{}
	err  error
}

func newReceipt() *Receipt {
	return &Receipt{done: make(chan struct{})}
}

// confirmedReceipt is returned by mutations that changed nothing and therefore
// wrote nothing.
func confirmedReceipt() *Receipt {
	r := newReceipt()
	r.resolve(nil)
	return r
}

// resolve marks the receipt durability-confirmed (err == nil) or
// durability-failed. Must be called exactly once.
func (r *Receipt) resolve(err error) {
	r.err = err
	close(r.done)
}

// Done returns a channel that is closed once the snapshot write has completed
// or failed.
func (r *Receipt) Done() <-chan struct{} {
	return r.done
}

// Err blocks until the write has resolved and returns its outcome. A nil
// result means the snapshot is durable.
func (r *Receipt) Err() error {
	<-r.done
	return r.err
}
