package dogs

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"dog-viewer/internal/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Viewer es una instancia montada del componente: un ViewState en memoria
// que se llena una sola vez.
type Viewer struct {
	ID        string
	CreatedAt time.Time

	svc *Service
	log logger.Logger

	mounted atomic.Bool
	done    chan struct{}

	mu    sync.RWMutex
	state ViewState
}

func NewViewer(svc *Service, log logger.Logger) *Viewer {
	if log == nil {
		log = logger.Nop()
	}
	id := uuid.NewString()
	return &Viewer{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		svc:       svc,
		log:       log.With(map[string]any{"viewer_id": id}),
		done:      make(chan struct{}),
		state: ViewState{
			Status:  StatusLoading,
			Message: LoadingMessage,
		},
	}
}

// State devuelve una copia del estado actual.
func (v *Viewer) State() ViewState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state.clone()
}

// Done se cierra cuando el viewer queda en Ready o Error.
func (v *Viewer) Done() <-chan struct{} {
	return v.done
}

// Wait bloquea hasta que el viewer se asiente o ctx termine.
func (v *Viewer) Wait(ctx context.Context) (ViewState, error) {
	select {
	case <-v.done:
		return v.State(), nil
	case <-ctx.Done():
		return v.State(), ctx.Err()
	}
}

// Mount corre la secuencia de fetch. Solo la primera llamada hace algo;
// las siguientes vuelven enseguida. El fetch no se cancela con ctx.
func (v *Viewer) Mount(ctx context.Context) {
	if !v.mounted.CompareAndSwap(false, true) {
		return
	}
	defer close(v.done)

	start := time.Now()
	batch, err := v.fetchAll(context.WithoutCancel(ctx))
	if err != nil {
		msg := MessageFor(err)
		v.log.Warn("viewer fetch failed", map[string]any{
			"kind":        KindOf(err).String(),
			"error":       err,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		v.settle(ViewState{Status: StatusError, Message: msg})
		return
	}

	v.log.Info("viewer ready", map[string]any{
		"main":        batch[0].Breed,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	v.settle(ViewState{
		Status:     StatusReady,
		Message:    ReadyMessage,
		Main:       batch[0],
		Thumbnails: batch[1:],
	})
}

// fetchAll: lista de razas, después 1+ThumbnailCount fetches concurrentes.
// El resultado respeta el orden del batch, no el de llegada.
func (v *Viewer) fetchAll(ctx context.Context) (out []Dog, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in fetch pipeline: %v", r)
		}
	}()

	breeds, err := v.svc.FetchBreeds(ctx)
	if err != nil {
		return nil, err
	}
	v.log.Debug("breeds fetched", map[string]any{"count": len(breeds)})

	return fetchBatch(ctx, 1+ThumbnailCount, func(ctx context.Context, _ int) (Dog, error) {
		return v.svc.FetchRandomDog(ctx, breeds)
	})
}

// fetchBatch corre n fetches concurrentes y espera a todos.
// results[i] es siempre el del fetch i, termine cuando termine.
// Sin WithContext: un fallo no cancela a los demás, se espera el batch completo.
func fetchBatch(ctx context.Context, n int, fetch func(ctx context.Context, i int) (Dog, error)) ([]Dog, error) {
	results := make([]Dog, n)

	var g errgroup.Group
	for i := range results {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("panic fetching dog %d: %v", i, r)
				}
			}()
			d, err := fetch(ctx, i)
			if err != nil {
				return err
			}
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (v *Viewer) settle(s ViewState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = s
}

// Select promueve el thumbnail index a perro principal.
// Los thumbnails no cambian y no hay llamadas de red.
func (v *Viewer) Select(index int) (ViewState, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state.Status != StatusReady {
		return v.state.clone(), ErrNotReady
	}
	if index < 0 || index >= len(v.state.Thumbnails) {
		return v.state.clone(), ErrThumbnailOutOfRange
	}

	v.state.Main = v.state.Thumbnails[index]
	return v.state.clone(), nil
}
