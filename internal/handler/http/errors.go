// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	ErrInvalidRequestBody = errors.New("invalid request body")
	ErrMissingQuery       = errors.New("missing `q` query parameter")
	ErrInvalidNumber      = errors.New("query parameter must be a positive integer")
)

// statusForResult picks the response status of a capture. Local failures
// are 422; anything the remote store or the network caused is 502.
func statusForResult(res models.Result) int {
	if res.Success {
		return http.StatusOK
	}

	switch res.Reason {
	case models.ReasonConfiguration, models.ReasonValidation, models.ReasonEncryption:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
