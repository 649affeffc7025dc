package source

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wzkoh/finsight/internal/ingest"
	"github.com/wzkoh/finsight/internal/transaction"
)

// Snapshot describes one successful refresh.
type Snapshot struct {
	ID        uuid.UUID `json:"id"`
	FetchedAt time.Time `json:"fetched_at"`
	Count     int       `json:"count"`
}

// Service holds the most recently fetched transaction list. Refresh
// replaces the list wholesale; readers get copies, so snapshots stay
// immutable under concurrent API handlers.
type Service struct {
	src RowSource

	mu   sync.RWMutex
	txns []transaction.Transaction
	snap Snapshot
}

func NewService(src RowSource) *Service {
	return &Service{src: src}
}

// Refresh fetches raw rows from the source and replaces the held
// transaction list with the parsed result. Malformed rows are dropped
// by the parser; only transport failures surface as errors.
func (s *Service) Refresh(ctx context.Context) (Snapshot, error) {
	rows, err := s.src.Fetch(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetching rows: %w", err)
	}

	txns := ingest.Parse(rows)

	snap := Snapshot{
		ID:        uuid.New(),
		FetchedAt: time.Now(),
		Count:     len(txns),
	}

	s.mu.Lock()
	s.txns = txns
	s.snap = snap
	s.mu.Unlock()

	return snap, nil
}

// Transactions returns a copy of the current transaction list.
func (s *Service) Transactions() []transaction.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]transaction.Transaction, len(s.txns))
	copy(out, s.txns)

	return out
}

// LastSnapshot reports the most recent successful refresh. The zero
// Snapshot means no refresh has completed yet.
func (s *Service) LastSnapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snap
}
