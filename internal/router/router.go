package router

import (
	"context"
	"net/http"
	"time"

	_ "med-catalog/docs"

	mem "med-catalog/internal/adapters/storage/memory"
	"med-catalog/internal/domain/medications"
	"med-catalog/internal/metrics"
	"med-catalog/internal/middleware"
	"med-catalog/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const greeting = "¡Hello there!"

type Options struct {
	// Opcional: si no viene, usa el repo in-memory (modo dev).
	Repo medications.Repository

	// Origin permitido para CORS (FRONTEND_URL).
	AllowedOrigin string

	Logger  logger.Logger    // nil => descarta logs
	Metrics *metrics.Metrics // nil => crea uno propio
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	repo := opts.Repo
	if repo == nil {
		repo = mem.NewMedicationsRepo()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(m.Middleware)
	r.Use(middleware.CORS(opts.AllowedOrigin))

	svc := medications.NewService(repo)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(greeting))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Ready verifica que el store responde.
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := svc.Ping(ctx); err != nil {
			log.Warn("store not ready", map[string]any{"error": err})
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ready"))
	})

	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	medications.RegisterRoutes(r, svc, log, m)

	return r
}
