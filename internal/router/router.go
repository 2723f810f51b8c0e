package router

import (
	"net/http"

	_ "dog-viewer/docs"
	"dog-viewer/internal/adapters/catalog/dogceo"
	mem "dog-viewer/internal/adapters/storage/memory"
	"dog-viewer/internal/domain/dogs"
	"dog-viewer/internal/middleware"
	"dog-viewer/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil (no loguea)

	// Opcional: si viene, se usa tal cual (tests). Si no, dog.ceo con CatalogConfig.
	Catalog       dogs.Catalog
	CatalogConfig dogceo.Config

	// Vida de los viewers en memoria; cero usa los defaults del repo.
	ViewerRepo mem.ViewerRepoConfig
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	catalog := opts.Catalog
	if catalog == nil {
		c, err := dogceo.NewClient(opts.CatalogConfig)
		if err != nil {
			return nil, err
		}
		catalog = c
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	svc := dogs.NewService(catalog)
	viewers := dogs.NewViewers(svc, mem.NewViewerRepo(opts.ViewerRepo), log)

	dogs.RegisterRoutes(r, viewers)

	return r, nil
}
