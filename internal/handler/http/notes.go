// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

const defaultRecentDays = 7

// captureNote encrypts and forwards a plaintext note. The response body is
// always a Result, including on failure.
func (h *Handler) captureNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CaptureRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.captureNote").Msg("invalid capture request")
		utils.WriteError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	ts := h.now()
	if raw := strings.TrimSpace(req.TS); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			utils.WriteError(w, fmt.Sprintf("invalid ts %q: expected RFC 3339", raw), http.StatusBadRequest)
			return
		}
		ts = parsed
	}

	res := h.notes.Submit(r.Context(), req.Text, req.Channel, ts)
	if !res.Success {
		log.Warn().
			Str("func", "*Handler.captureNote").
			Str("reason", string(res.Reason)).
			Msg(res.Message)
	}

	_, _ = utils.WriteJSON(w, res, statusForResult(res))
}

func (h *Handler) searchNotes(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		utils.WriteError(w, ErrMissingQuery.Error(), http.StatusBadRequest)
		return
	}

	limit, err := intParam(r, "limit", 0)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	notes, err := h.queries.Search(r.Context(), query, limit)
	if err != nil {
		h.writeQueryError(w, r, "*Handler.searchNotes", err)
		return
	}

	_, _ = utils.WriteJSON(w, nonNil(notes), http.StatusOK)
}

func (h *Handler) recentNotes(w http.ResponseWriter, r *http.Request) {
	days, err := intParam(r, "days", defaultRecentDays)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	limit, err := intParam(r, "limit", 0)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	notes, err := h.queries.Recent(r.Context(), days, limit)
	if err != nil {
		h.writeQueryError(w, r, "*Handler.recentNotes", err)
		return
	}

	_, _ = utils.WriteJSON(w, nonNil(notes), http.StatusOK)
}

func (h *Handler) writeQueryError(w http.ResponseWriter, r *http.Request, caller string, err error) {
	if errors.Is(err, service.ErrInvalidQuery) {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	logger.FromRequest(r).Err(err).Str("func", caller).Msg("cache query failed")
	utils.WriteError(w, "cache query failed", http.StatusInternalServerError)
}

// intParam reads an optional positive integer query parameter.
func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, name, raw)
	}
	return n, nil
}

func nonNil(notes []models.Note) []models.Note {
	if notes == nil {
		return []models.Note{}
	}
	return notes
}
