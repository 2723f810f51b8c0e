package dogs

import (
	"context"
	"errors"
	"math/rand/v2"
)

// Service agrupa los dos fetchers que usa el Viewer.
type Service struct {
	catalog Catalog
	intn    func(n int) int
}

func NewService(catalog Catalog) *Service {
	return &Service{
		catalog: catalog,
		intn:    rand.IntN,
	}
}

// FetchBreeds trae el universo de razas. Una sola llamada, sin reintentos.
// Un universo vacío no es error acá; falla recién al elegir una raza.
func (s *Service) FetchBreeds(ctx context.Context) (BreedUniverse, error) {
	names, err := s.catalog.ListBreeds(ctx)
	if err != nil {
		if errors.Is(err, ErrUpstreamStatus) {
			return nil, newError(KindBreedListUnavailable, err)
		}
		return nil, err
	}
	return BreedUniverse(names), nil
}

// FetchRandomDog elige una raza al azar (uniforme) y trae una imagen de esa raza.
func (s *Service) FetchRandomDog(ctx context.Context, breeds BreedUniverse) (Dog, error) {
	if len(breeds) == 0 {
		return Dog{}, newError(KindEmptyBreedList, nil)
	}

	breed := breeds[s.intn(len(breeds))]

	image, err := s.catalog.RandomImage(ctx, breed)
	if err != nil {
		if errors.Is(err, ErrUpstreamStatus) {
			return Dog{}, newError(KindImageUnavailable, err)
		}
		return Dog{}, err
	}

	return Dog{Breed: breed, Image: image}, nil
}
