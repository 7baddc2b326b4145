package web

// handlers.go exposes the three import operations as JSON endpoints. The
// uploaded table travels either as a multipart form field named "file" or as
// the raw request body; both forms are size-capped by IMPORT_MAX_FILE_SIZE.

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fermworks/plantimport/internal/core"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleImportEquipment ingests an energy balance sheet.
func (s *Server) handleImportEquipment(w http.ResponseWriter, r *http.Request) {
	data, err := s.readUpload(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	outcomes, err := s.service.ImportEquipmentFromTable(r.Context(), data)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrMalformedTable) {
			status = http.StatusBadRequest
		}
		s.respondError(w, r, err, status)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"results": outcomes})
}

// handleImportUtilities ingests a utility requirement sheet for one recipe.
func (s *Server) handleImportUtilities(w http.ResponseWriter, r *http.Request) {
	recipeID, err := uuid.Parse(chi.URLParam(r, "recipeID"))
	if err != nil {
		s.respondError(w, r, fmt.Errorf("invalid recipe id: %w", err), http.StatusBadRequest)
		return
	}

	data, err := s.readUpload(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	outcomes, err := s.service.ImportUtilityRequirements(r.Context(), data, recipeID)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrRecipeNotFound):
			status = http.StatusNotFound
		case errors.Is(err, core.ErrMalformedTable):
			status = http.StatusBadRequest
		}
		s.respondError(w, r, err, status)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"results": outcomes})
}

// handleImportDocument ingests an unstructured PFD document through the
// extraction service. The response carries both the raw extraction payload
// and the reconciliation outcomes.
func (s *Server) handleImportDocument(w http.ResponseWriter, r *http.Request) {
	data, err := s.readUpload(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	result, err := s.service.ImportFromDocument(r.Context(), data)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// readUpload reads the uploaded file from a multipart form field named
// "file", falling back to the raw request body.
func (s *Server) readUpload(r *http.Request) ([]byte, error) {
	maxSize := s.cfg.Import.MaxFileSize

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxSize); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("no file provided: %w", err)
		}
		defer file.Close()
		return readCapped(file, maxSize)
	}

	return readCapped(r.Body, maxSize)
}

// readCapped reads at most maxSize bytes and rejects larger payloads.
func readCapped(r io.Reader, maxSize int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("file too large (limit %d bytes)", maxSize)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no file provided")
	}
	return data, nil
}
