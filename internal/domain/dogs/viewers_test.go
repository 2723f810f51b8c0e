package dogs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// mapRepo: repo mínimo para tests del paquete (el de memory importa dogs).
type mapRepo struct {
	mu   sync.Mutex
	byID map[string]*Viewer
}

func newMapRepo() *mapRepo {
	return &mapRepo{byID: map[string]*Viewer{}}
}

func (r *mapRepo) Create(ctx context.Context, v *Viewer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[v.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[v.ID] = v
	return nil
}

func (r *mapRepo) GetByID(ctx context.Context, id string) (*Viewer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (r *mapRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestViewers_OpenMountsInBackground(t *testing.T) {
	cat := &fakeCatalog{breeds: testBreeds}
	viewers := NewViewers(NewService(cat), newMapRepo(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	v, err := viewers.Open(ctx)
	require.NoError(t, err)
	// el request que abrió el viewer puede terminar antes que el fetch
	cancel()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	s, err := v.Wait(waitCtx)
	require.NoError(t, err)
	require.Equal(t, StatusReady, s.Status)

	got, err := viewers.Get(context.Background(), v.ID)
	require.NoError(t, err)
	require.Same(t, v, got)
}

func TestViewers_GetAndCloseUnknown(t *testing.T) {
	viewers := NewViewers(NewService(&fakeCatalog{}), newMapRepo(), nil)

	_, err := viewers.Get(context.Background(), "")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = viewers.Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, viewers.Close(context.Background(), "nope"), ErrNotFound)
}

func TestViewers_CloseForgetsViewer(t *testing.T) {
	viewers := NewViewers(NewService(&fakeCatalog{breeds: testBreeds}), newMapRepo(), nil)

	v, err := viewers.Open(context.Background())
	require.NoError(t, err)
	<-v.Done()

	require.NoError(t, viewers.Close(context.Background(), v.ID))
	_, err = viewers.Get(context.Background(), v.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
