package mutatorsets

import (
	"context"
	"sync"

	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

type inMemoryRepo struct {
	mu   sync.RWMutex
	sets map[string][]string
}

// NewInMemoryRepository creates a repository that keeps enabled sets in
// process memory
func NewInMemoryRepository() Repository {
	return &inMemoryRepo{
		sets: make(map[string][]string),
	}
}

func (r *inMemoryRepo) Get(ctx context.Context, sessionID string) ([]string, error) {
	if sessionID == "" {
		return nil, dnderr.InvalidArgument("session ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string{}, r.sets[sessionID]...), nil
}

func (r *inMemoryRepo) Save(ctx context.Context, sessionID string, names []string) error {
	if sessionID == "" {
		return dnderr.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sets[sessionID] = append([]string{}, names...)
	return nil
}

func (r *inMemoryRepo) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sets, sessionID)
	return nil
}
