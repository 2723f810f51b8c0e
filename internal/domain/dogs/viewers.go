package dogs

import (
	"context"
	"strings"

	"dog-viewer/internal/platform/logger"
)

// Viewers crea, guarda y monta viewers.
type Viewers struct {
	svc  *Service
	repo Repository
	log  logger.Logger
}

func NewViewers(svc *Service, repo Repository, log logger.Logger) *Viewers {
	if log == nil {
		log = logger.Nop()
	}
	return &Viewers{svc: svc, repo: repo, log: log}
}

// Open crea un viewer nuevo, lo registra y arranca su montaje en background.
// Vuelve de inmediato con el viewer en Loading.
func (s *Viewers) Open(ctx context.Context) (*Viewer, error) {
	v := NewViewer(s.svc, s.log)
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	s.log.Debug("viewer opened", map[string]any{"viewer_id": v.ID})
	go v.Mount(ctx)
	return v, nil
}

func (s *Viewers) Get(ctx context.Context, id string) (*Viewer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Close desmonta el viewer: deja de ser accesible. Los fetches en vuelo
// terminan igual y su resultado se descarta con el viewer.
func (s *Viewers) Close(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Debug("viewer closed", map[string]any{"viewer_id": id})
	return nil
}
