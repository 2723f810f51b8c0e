package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"dog-viewer/internal/domain/dogs"
)

const (
	DefaultViewerTTL  = 30 * time.Minute
	DefaultMaxViewers = 1000
)

var (
	ErrNotFound = dogs.ErrNotFound
)

// ViewerRepoConfig acota cuánto vive un viewer en memoria.
// Valores <= 0 usan los defaults.
type ViewerRepoConfig struct {
	TTL        time.Duration
	MaxViewers int
}

type viewerRepo struct {
	mu   sync.RWMutex
	byID map[string]*dogs.Viewer

	ttl time.Duration
	max int
	now func() time.Time
}

func NewViewerRepo(cfg ViewerRepoConfig) dogs.Repository {
	return newViewerRepo(cfg, time.Now)
}

func newViewerRepo(cfg ViewerRepoConfig, now func() time.Time) *viewerRepo {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultViewerTTL
	}
	if cfg.MaxViewers <= 0 {
		cfg.MaxViewers = DefaultMaxViewers
	}
	return &viewerRepo{
		byID: make(map[string]*dogs.Viewer),
		ttl:  cfg.TTL,
		max:  cfg.MaxViewers,
		now:  now,
	}
}

// Create guarda v. Antes descarta los viewers vencidos (CreatedAt + TTL) y,
// si sigue lleno, los más viejos hasta dejar lugar.
func (r *viewerRepo) Create(ctx context.Context, v *dogs.Viewer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v == nil || strings.TrimSpace(v.ID) == "" {
		return errors.New("viewer id required")
	}
	if _, exists := r.byID[v.ID]; exists {
		return errors.New("viewer already exists")
	}

	r.evictLocked()
	r.byID[v.ID] = v
	return nil
}

func (r *viewerRepo) GetByID(ctx context.Context, id string) (*dogs.Viewer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok || r.expired(v) {
		return nil, ErrNotFound
	}
	return v, nil
}

func (r *viewerRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *viewerRepo) expired(v *dogs.Viewer) bool {
	return r.now().Sub(v.CreatedAt) > r.ttl
}

func (r *viewerRepo) evictLocked() {
	for id, v := range r.byID {
		if r.expired(v) {
			delete(r.byID, id)
		}
	}

	over := len(r.byID) - r.max + 1
	if over <= 0 {
		return
	}

	// Los más viejos primero (por created_at)
	all := make([]*dogs.Viewer, 0, len(r.byID))
	for _, v := range r.byID {
		all = append(all, v)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	for _, v := range all[:over] {
		delete(r.byID, v.ID)
	}
}

func (r *viewerRepo) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
