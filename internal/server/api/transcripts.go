// Package api provides HTTP API handlers for the Mudra sign recognition system.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ayusman/mudra/internal/store"
)

// TranscriptHandler handles HTTP requests for transcript resources.
type TranscriptHandler struct {
	store *store.Store
}

// NewTranscriptHandler creates a new TranscriptHandler with the given store.
func NewTranscriptHandler(s *store.Store) *TranscriptHandler {
	return &TranscriptHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *TranscriptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Parse the path to determine if this is a collection or item request
	// Expected paths: /api/transcripts or /api/transcripts/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/transcripts")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/transcripts
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Item endpoint: /api/transcripts/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type createTranscriptRequest struct {
	Word string `json:"word"`
}

type transcriptResponse struct {
	ID       string `json:"id"`
	Word     string `json:"word"`
	SignedAt string `json:"signed_at"`
}

type listTranscriptsResponse struct {
	Transcripts []transcriptResponse `json:"transcripts"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toResponse converts a store.Transcript to a transcriptResponse.
func toResponse(t *store.Transcript) transcriptResponse {
	return transcriptResponse{
		ID:       t.ID,
		Word:     t.Word,
		SignedAt: t.SignedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/transcripts and returns all transcripts.
func (h *TranscriptHandler) list(w http.ResponseWriter, r *http.Request) {
	transcripts, err := h.store.Transcripts().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transcripts")
		return
	}

	resp := listTranscriptsResponse{Transcripts: []transcriptResponse{}}
	for _, t := range transcripts {
		resp.Transcripts = append(resp.Transcripts, toResponse(t))
	}

	writeJSON(w, http.StatusOK, resp)
}

// create handles POST /api/transcripts and saves a new transcript.
func (h *TranscriptHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createTranscriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Word) == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}

	t, err := h.store.Transcripts().Create(req.Word)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create transcript")
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(t))
}

// get handles GET /api/transcripts/{id}.
func (h *TranscriptHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	t, err := h.store.Transcripts().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transcript not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get transcript")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(t))
}

// delete handles DELETE /api/transcripts/{id}.
func (h *TranscriptHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Transcripts().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transcript not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete transcript")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
