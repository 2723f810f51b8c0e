package dogs

import "context"

type Repository interface {
	Create(ctx context.Context, v *Viewer) error
	GetByID(ctx context.Context, id string) (*Viewer, error)
	Delete(ctx context.Context, id string) error
}
