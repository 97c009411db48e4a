package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/laliga-forwards/internal/domain/player"
)

// PlayerRepository serves a fixed set of player records.
type PlayerRepository struct {
	mu      sync.RWMutex
	players player.Collection
}

func NewPlayerRepository(records []player.Record) (*PlayerRepository, error) {
	players, err := player.NewCollection(records...)
	if err != nil {
		return nil, fmt.Errorf("build player collection: %w", err)
	}

	return &PlayerRepository{players: players}, nil
}

func (r *PlayerRepository) List(_ context.Context) (player.Collection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.players, nil
}
