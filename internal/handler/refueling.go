package handler

import (
	"net/http"

	"github.com/mapler/fleet-records/internal/domain"
)

// listTractorRefuelings handles GET /api/v1/refuelings.
// Records are returned newest-first.
func (s *Server) listTractorRefuelings(w http.ResponseWriter, r *http.Request) {
	records, err := s.refuelings.ListTractorRefuelings(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// addTractorRefueling handles POST /api/v1/refuelings.
// Always an insert — any id in the body is ignored and a fresh one assigned.
func (s *Server) addTractorRefueling(w http.ResponseWriter, r *http.Request) {
	var rec domain.TractorRefuelingRecord
	if err := decodeJSON(r, &rec); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	created, err := s.refuelings.AddTractorRefueling(r.Context(), rec)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
