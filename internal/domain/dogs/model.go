package dogs

// BreedUniverse son los nombres de raza en el orden en que los lista el catálogo.
type BreedUniverse []string

// Dog es un par raza/imagen. Se copia por valor.
type Dog struct {
	Breed string
	Image string
}

// Status es el tag de ViewState.
// @Enum loading, error, ready
type Status string

const (
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusReady   Status = "ready"
)

const (
	LoadingMessage = "Loading dogs, hang tight..."
	ReadyMessage   = "OK"

	// ThumbnailCount perros chicos además del principal.
	ThumbnailCount = 10
)

// ViewState es lo que renderiza la vista.
// Main y Thumbnails solo tienen sentido con Status == StatusReady.
type ViewState struct {
	Status     Status
	Message    string
	Main       Dog
	Thumbnails []Dog
}

// Loading reporta si la vista todavía espera resultados.
func (s ViewState) Loading() bool {
	return s.Status == StatusLoading
}

func (s ViewState) clone() ViewState {
	out := s
	if s.Thumbnails != nil {
		out.Thumbnails = make([]Dog, len(s.Thumbnails))
		copy(out.Thumbnails, s.Thumbnails)
	}
	return out
}
