// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/maximo-analytics/internal/models"
	"github.com/tomtom215/maximo-analytics/internal/query"
)

// Response headers set on successful catalog queries.
const (
	headerRowCount      = "X-Row-Count"
	headerQueryDuration = "X-Query-Duration-Ms"
)

// MaximoQuery returns the handler for one catalog entry.
func (h *Handler) MaximoQuery(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.executeQuery(w, r, name)
	}
}

// MaximoQueryByName serves /api/maximo/{query} for names that have no
// registered route. The service answers NotFound for them.
func (h *Handler) MaximoQueryByName(w http.ResponseWriter, r *http.Request) {
	h.executeQuery(w, r, chi.URLParam(r, "query"))
}

func (h *Handler) executeQuery(w http.ResponseWriter, r *http.Request, name string) {
	result, err := h.service.Execute(r.Context(), name)
	if err != nil {
		respondError(w, r, statusForError(err), err.Error(), err)
		return
	}

	w.Header().Set(headerRowCount, strconv.Itoa(result.Count))
	w.Header().Set(headerQueryDuration, strconv.FormatFloat(float64(result.Duration.Microseconds())/1000, 'f', 3, 64))
	respondJSON(w, r, http.StatusOK, result.Rows)
}

// statusForError maps execution failures to HTTP status codes.
func statusForError(err error) int {
	switch query.KindOf(err) {
	case query.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ListQueries describes every catalog entry and its route.
func (h *Handler) ListQueries(w http.ResponseWriter, r *http.Request) {
	entries := h.service.Catalog().Entries()
	infos := make([]models.CatalogEntryInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, models.CatalogEntryInfo{
			Name:        e.Name,
			Description: e.Description,
			Path:        APIPrefix + "/" + e.Name,
			Tables:      e.Tables,
			Columns:     e.Columns,
		})
	}
	w.Header().Set(headerRowCount, strconv.Itoa(len(infos)))
	respondJSON(w, r, http.StatusOK, infos)
}

// NotFound answers unmatched paths with the API error shape.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, fmt.Sprintf("no route for %s", r.URL.Path), nil)
}

// MethodNotAllowed answers non-GET requests to known paths.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed", r.Method), nil)
}
