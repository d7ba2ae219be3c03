// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// maxImportLine bounds one NDJSON line.
const maxImportLine = 4 << 20

type importService struct {
	notes   NoteService
	maxLine int

	logger *logger.Logger
	now    func() time.Time
}

// NewImportService builds an [ImportService] that submits every line through
// notes, one at a time and in file order.
func NewImportService(notes NoteService, logger *logger.Logger) ImportService {
	return &importService{notes: notes, maxLine: maxImportLine, logger: logger, now: time.Now}
}

// ImportNDJSON implements [ImportService]. Each non-blank line is one note.
// Lines marked "encrypted" are sent as they are; other lines are encrypted
// first. A bad line is recorded in the report and the import continues; only
// a read failure or a cancelled ctx stops it early, returning the partial
// report together with the error.
func (s *importService) ImportNDJSON(ctx context.Context, r io.Reader) (models.ImportReport, error) {
	log := logger.FromContextOr(ctx, s.logger)

	var report models.ImportReport
	br := bufio.NewReader(r)

	lineNo := 0
	for {
		raw, tooLong, readErr := readLine(br, s.maxLine)
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return report, fmt.Errorf("read import: %w", readErr)
		}
		eof := readErr != nil
		if eof && len(raw) == 0 && !tooLong {
			break
		}
		lineNo++

		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 || tooLong {
			if err := ctx.Err(); err != nil {
				return report, err
			}

			report.Total++
			err := ErrImportLineTooLong
			if !tooLong {
				err = s.importLine(ctx, raw)
			}
			if err != nil {
				report.Failed++
				report.Errors = append(report.Errors, models.ImportError{Line: lineNo, Message: err.Error()})
				log.Warn().Err(err).Str("func", "importService.ImportNDJSON").Int("line", lineNo).Msg("import line failed")
			} else {
				report.Submitted++
			}
		}

		if eof {
			break
		}
	}

	log.Info().
		Str("func", "importService.ImportNDJSON").
		Int("total", report.Total).
		Int("submitted", report.Submitted).
		Int("failed", report.Failed).
		Msg("import finished")

	return report, nil
}

func (s *importService) importLine(ctx context.Context, raw []byte) error {
	var line models.ImportLine
	if err := json.Unmarshal(raw, &line); err != nil {
		return fmt.Errorf("%w: %w", ErrImportLineMalformed, err)
	}

	body := line.Body()
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("%w: no text", ErrImportLineMalformed)
	}
	ts := line.Time(s.now())

	var result models.Result
	if line.Encrypted {
		result = s.notes.SubmitPreEncrypted(ctx, body, line.Channel, ts)
	} else {
		result = s.notes.Submit(ctx, body, line.Channel, ts)
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", ErrImportLineRejected, result.Message)
	}
	return nil
}

// readLine returns the next line, terminator included. A line longer than
// limit is consumed to its end but returned empty with tooLong set, so memory
// stays bounded.
func readLine(br *bufio.Reader, limit int) (line []byte, tooLong bool, err error) {
	for {
		chunk, readErr := br.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			if len(bytes.TrimRight(line, "\r\n")) > limit {
				line, tooLong = nil, true
			}
		}
		if errors.Is(readErr, bufio.ErrBufferFull) {
			continue
		}
		return line, tooLong, readErr
	}
}
