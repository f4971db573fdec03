package server

import "ripple/internal/store"

// logDurability watches a mutation's receipt in the background. Persistence
// is fire-and-forget: handlers respond as soon as the in-memory change is
// visible, and a failed write only shows up here and in the metrics.
func (s *Server) logDurability(op string, receipt *store.Receipt) {
	go func() {
		if err := receipt.Err(); err != nil {
			s.logger.Error("durability failed", "op", op, "error", err)
		}
	}()
}
