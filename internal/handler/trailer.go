package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mapler/fleet-records/internal/domain"
)

// listTrailers handles GET /api/v1/trailers.
// The optional ?q= parameter filters by license plate, nickname, or driver
// name (case-insensitive substring); empty or absent means all trailers.
func (s *Server) listTrailers(w http.ResponseWriter, r *http.Request) {
	trailers, err := s.trailers.Find(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trailers)
}

// getTrailer handles GET /api/v1/trailers/{id}.
func (s *Server) getTrailer(w http.ResponseWriter, r *http.Request) {
	t, err := s.trailers.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// saveTrailer handles POST /api/v1/trailers.
// The body is a complete trailer record; an id matching an existing trailer
// replaces it in place, otherwise a new trailer is created (with a fresh id
// when the body carries none). Responds with the record as stored.
func (s *Server) saveTrailer(w http.ResponseWriter, r *http.Request) {
	var t domain.Trailer
	if err := decodeJSON(r, &t); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	saved, err := s.trailers.Save(r.Context(), t)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// tireInspectionRequest is the body of POST /api/v1/trailers/{id}/inspection:
// the detailed inspection snapshot plus the full six-position tire state it
// was taken against. Both replace the trailer's previous values wholesale.
type tireInspectionRequest struct {
	Inspection domain.TireInspection `json:"inspection"`
	Tires      []domain.TireState    `json:"tires"`
}

// saveTireInspection handles POST /api/v1/trailers/{id}/inspection.
func (s *Server) saveTireInspection(w http.ResponseWriter, r *http.Request) {
	var req tireInspectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	saved, err := s.trailers.SaveTireInspection(r.Context(), chi.URLParam(r, "id"), req.Inspection, req.Tires)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// addRefrigerationRefueling handles POST /api/v1/trailers/{id}/refuelings.
// A known trailer responds 200 with the updated record; an unknown id is the
// documented silent no-op and responds 204 with no body.
func (s *Server) addRefrigerationRefueling(w http.ResponseWriter, r *http.Request) {
	var entry domain.RefrigerationUnitRefuelingEntry
	if err := decodeJSON(r, &entry); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	trailer, found, err := s.refuelings.AddRefrigerationRefueling(r.Context(), chi.URLParam(r, "id"), entry)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, trailer)
}

// damageSummaryResponse carries the derived, non-persisted insight.
type damageSummaryResponse struct {
	Summary string `json:"summary"`
}

// damageSummary handles GET /api/v1/trailers/{id}/damage-summary.
func (s *Server) damageSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.trailers.DamageSummary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, damageSummaryResponse{Summary: summary})
}
