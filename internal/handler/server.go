// Package handler implements the HTTP boundary of the application. Handlers
// translate JSON requests into service calls and domain errors into status
// codes; no business rules live here. The handlers are the only consumer of
// the repository's operations besides the tests, standing in for the
// original presentation layer.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mapler/fleet-records/internal/domain"
	"github.com/mapler/fleet-records/spec"
)

// TrailerServicer defines the trailer operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the service or repository layers.
type TrailerServicer interface {
	Save(ctx context.Context, t domain.Trailer) (domain.Trailer, error)
	List(ctx context.Context) ([]domain.Trailer, error)
	Find(ctx context.Context, term string) ([]domain.Trailer, error)
	GetByID(ctx context.Context, id string) (domain.Trailer, error)
	SaveTireInspection(ctx context.Context, trailerID string, insp domain.TireInspection, tires []domain.TireState) (domain.Trailer, error)
	DamageSummary(ctx context.Context, trailerID string) (string, error)
}

// RefuelingServicer defines the refueling operations the handlers depend on.
type RefuelingServicer interface {
	AddTractorRefueling(ctx context.Context, rec domain.TractorRefuelingRecord) (domain.TractorRefuelingRecord, error)
	ListTractorRefuelings(ctx context.Context) ([]domain.TractorRefuelingRecord, error)
	AddRefrigerationRefueling(ctx context.Context, trailerID string, entry domain.RefrigerationUnitRefuelingEntry) (domain.Trailer, bool, error)
}

// Server holds the handler dependencies. Methods live in domain-specific
// files (trailer.go, refueling.go, health.go) but all operate on this struct.
type Server struct {
	trailers   TrailerServicer
	refuelings RefuelingServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trailers TrailerServicer, refuelings RefuelingServicer) *Server {
	return &Server{trailers: trailers, refuelings: refuelings}
}

// Routes returns the router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.health)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/trailers", func(r chi.Router) {
			r.Get("/", s.listTrailers)
			r.Post("/", s.saveTrailer)
			r.Get("/{id}", s.getTrailer)
			r.Post("/{id}/inspection", s.saveTireInspection)
			r.Post("/{id}/refuelings", s.addRefrigerationRefueling)
			r.Get("/{id}/damage-summary", s.damageSummary)
		})
		r.Route("/refuelings", func(r chi.Router) {
			r.Get("/", s.listTractorRefuelings)
			r.Post("/", s.addTractorRefueling)
		})
	})

	return r
}

// serveOpenAPI serves the embedded API document.
func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
