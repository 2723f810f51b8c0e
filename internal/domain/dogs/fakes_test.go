package dogs

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// fakeCatalog simula dog.ceo. Cuenta llamadas como el mock de fetch del front.
type fakeCatalog struct {
	breeds  []string
	listErr error

	// imageErr decide el error de la llamada n (1-based) a RandomImage.
	imageErr   func(n int64) error
	imagePanic bool

	// si no es nil, ListBreeds espera a que se cierre.
	release chan struct{}

	listCalls  atomic.Int64
	imageCalls atomic.Int64

	mu     sync.Mutex
	picked []string
}

func (f *fakeCatalog) ListBreeds(ctx context.Context) ([]string, error) {
	f.listCalls.Add(1)
	if f.release != nil {
		<-f.release
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]string, len(f.breeds))
	copy(out, f.breeds)
	return out, nil
}

func (f *fakeCatalog) RandomImage(ctx context.Context, breed string) (string, error) {
	n := f.imageCalls.Add(1)
	if f.imagePanic {
		panic("image decoder exploded")
	}
	if f.imageErr != nil {
		if err := f.imageErr(n); err != nil {
			return "", err
		}
	}

	f.mu.Lock()
	f.picked = append(f.picked, breed)
	f.mu.Unlock()

	return fmt.Sprintf("https://images.dog.ceo/breeds/%s/dog.jpg", breed), nil
}

func (f *fakeCatalog) totalCalls() int64 {
	return f.listCalls.Load() + f.imageCalls.Load()
}

var testBreeds = []string{
	"airedale", "akita", "appenzeller", "boxer", "german", "malinois",
	"newfoundland", "pug", "schnauzer", "shiba", "weimaraner",
}

func upstreamStatus(status int) error {
	return fmt.Errorf("%w: status=%d", ErrUpstreamStatus, status)
}
