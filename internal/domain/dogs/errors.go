package dogs

import (
	"errors"
	"fmt"
)

// Kind clasifica los fallos del pipeline de fetch.
type Kind int

const (
	KindUnknown Kind = iota
	KindBreedListUnavailable
	KindEmptyBreedList
	KindImageUnavailable
)

const (
	MsgBreedListUnavailable = "Couldn't fetch the list of breeds"
	MsgEmptyBreedList       = "Something went wrong with the list you provided"
	MsgImageUnavailable     = "Couldn't fetch the random image for your breed"
	MsgUnknown              = "We couldn't find any dogs ):"
)

func (k Kind) String() string {
	switch k {
	case KindBreedListUnavailable:
		return "breed_list_unavailable"
	case KindEmptyBreedList:
		return "empty_breed_list"
	case KindImageUnavailable:
		return "image_unavailable"
	default:
		return "unknown"
	}
}

// Message es el texto que ve el usuario para cada Kind.
func (k Kind) Message() string {
	switch k {
	case KindBreedListUnavailable:
		return MsgBreedListUnavailable
	case KindEmptyBreedList:
		return MsgEmptyBreedList
	case KindImageUnavailable:
		return MsgImageUnavailable
	default:
		return MsgUnknown
	}
}

var (
	// ErrUpstreamStatus lo envuelven los adapters de Catalog cuando el
	// catálogo responde con status no exitoso.
	ErrUpstreamStatus = errors.New("catalog upstream returned non-success status")

	ErrNotFound            = errors.New("viewer not found")
	ErrNotReady            = errors.New("viewer is not ready")
	ErrThumbnailOutOfRange = errors.New("thumbnail index out of range")
)

// Error es un fallo tipado del pipeline. Error() devuelve el mensaje para el usuario.
type Error struct {
	Kind Kind
	Err  error
}

func newError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

func (e *Error) Error() string {
	return e.Kind.Message()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Detail incluye la causa, para logs.
func (e *Error) Detail() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// KindOf devuelve el Kind de err; cualquier cosa que no sea *Error es KindUnknown.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// MessageFor convierte cualquier error del pipeline en un único mensaje visible.
func MessageFor(err error) string {
	return KindOf(err).Message()
}
