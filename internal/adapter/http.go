// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type httpNoteAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPNoteAdapter constructs the resty implementation of [NoteAdapter].
// requestTimeout bounds every POST; the endpoint and token are supplied per
// call because they may change while the client runs.
func NewHTTPNoteAdapter(requestTimeout time.Duration, logger *logger.Logger) NoteAdapter {
	return &httpNoteAdapter{client: utils.NewHTTPClient(requestTimeout), logger: logger}
}

// PostNote implements [NoteAdapter].
func (h *httpNoteAdapter) PostNote(ctx context.Context, endpoint, token string, req models.NoteRequest) (models.NoteResponse, error) {
	log := logger.FromContextOr(ctx, h.logger)

	target, err := normalizeURL(endpoint, "http", "https")
	if err != nil {
		return models.NoteResponse{}, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(strings.TrimSpace(token)).
		SetBody(req).
		Post(target)
	if err != nil {
		log.Err(err).Str("func", "httpNoteAdapter.PostNote").Msg("note request failed")
		return models.NoteResponse{}, fmt.Errorf("%w: post note: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().
			Str("func", "httpNoteAdapter.PostNote").
			Int("status", resp.StatusCode()).
			Msg("note rejected by remote store")
		return models.NoteResponse{}, err
	}

	return decodeNoteResponse(resp.Body()), nil
}

// decodeNoteResponse extracts {"id": n} from body. Anything else, including
// an empty body, yields a response without an id.
func decodeNoteResponse(body []byte) models.NoteResponse {
	var nr models.NoteResponse
	if len(body) == 0 {
		return nr
	}
	if err := json.Unmarshal(body, &nr); err != nil {
		return models.NoteResponse{}
	}
	if nr.ID != nil && *nr.ID <= 0 {
		nr.ID = nil
	}
	return nr
}

// normalizeURL validates raw as an absolute URL with one of the allowed
// schemes.
func normalizeURL(raw string, schemes ...string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidEndpoint)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: address must include scheme and host", ErrInvalidEndpoint)
	}

	scheme := strings.ToLower(u.Scheme)
	for _, s := range schemes {
		if scheme == s {
			return u.String(), nil
		}
	}
	return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidEndpoint, u.Scheme)
}
