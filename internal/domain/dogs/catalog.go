package dogs

import "context"

// Catalog es el servicio externo de imágenes de perros.
// Las respuestas no exitosas deben envolver ErrUpstreamStatus.
type Catalog interface {
	// ListBreeds devuelve las razas en el orden del documento fuente.
	ListBreeds(ctx context.Context) ([]string, error)
	RandomImage(ctx context.Context, breed string) (string, error)
}
