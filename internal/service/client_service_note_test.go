// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	testTS    = time.Date(2026, 3, 14, 15, 9, 26, 0, time.FixedZone("UTC+3", 3*60*60))
	testCreds = config.StaticCredentials{
		NoteEndpoint: "https://notes.example.com/api/notes",
		BearerToken:  "opaque-token",
		Secret:       "correct horse battery staple",
	}
)

// newTestNoteSvc is a helper that builds a noteService backed by mocks.
func newTestNoteSvc(t *testing.T, ctrl *gomock.Controller, creds config.Credentials) (
	*noteService,
	*mock.MockNoteCipher,
	*mock.MockNoteAdapter,
) {
	t.Helper()
	mockCipher := mock.NewMockNoteCipher(ctrl)
	mockAdapter := mock.NewMockNoteAdapter(ctrl)

	svc := NewNoteService(mockCipher, mockAdapter, creds, logger.Nop()).(*noteService)
	return svc, mockCipher, mockAdapter
}

func jwtWithExpiry(t *testing.T, exp time.Time) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("remote-key"))
	require.NoError(t, err)
	return s
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestNoteService_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCipher, mockAdapter := newTestNoteSvc(t, ctrl, testCreds)
	ctx := context.Background()
	id := int64(101)

	mockCipher.EXPECT().Encrypt(testCreds.Secret, "buy milk").Return("ENVELOPE", nil)
	mockAdapter.EXPECT().
		PostNote(ctx, testCreds.NoteEndpoint, testCreds.BearerToken, models.NoteRequest{
			Channel:   "groceries",
			Text:      "ENVELOPE",
			TS:        "2026-03-14T12:09:26Z",
			Encrypted: true,
		}).
		Return(models.NoteResponse{ID: &id}, nil)

	res := svc.Submit(ctx, "buy milk", " groceries ", testTS)

	assert.True(t, res.Success)
	assert.Equal(t, MsgNoteSent, res.Message)
	assert.Equal(t, "buy milk", res.Echo)
	require.NotNil(t, res.AssignedID)
	assert.Equal(t, id, *res.AssignedID)
}

func TestNoteService_Submit_NoAssignedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCipher, mockAdapter := newTestNoteSvc(t, ctrl, testCreds)

	mockCipher.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return("ENVELOPE", nil)
	mockAdapter.EXPECT().PostNote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.NoteResponse{}, nil)

	res := svc.Submit(context.Background(), "x", "", testTS)

	assert.True(t, res.Success)
	assert.Nil(t, res.AssignedID)
}

func TestNoteService_Submit_DefaultsChannelAndTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCipher, mockAdapter := newTestNoteSvc(t, ctrl, testCreds)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	mockCipher.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return("ENVELOPE", nil)
	mockAdapter.EXPECT().PostNote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, req models.NoteRequest) (models.NoteResponse, error) {
			assert.Equal(t, models.DefaultChannel, req.Channel)
			assert.Equal(t, "2026-01-02T03:04:05Z", req.TS)
			return models.NoteResponse{}, nil
		})

	res := svc.Submit(context.Background(), "x", "  ", time.Time{})
	assert.True(t, res.Success)
}

func TestNoteService_Submit_ConfigurationFailures(t *testing.T) {
	tests := []struct {
		name    string
		creds   config.StaticCredentials
		content string
		wantMsg string
		reason  models.FailureReason
	}{
		{
			name:    "missing endpoint",
			creds:   config.StaticCredentials{BearerToken: "t", Secret: "p"},
			content: "x",
			wantMsg: MsgEndpointNotConfigured,
			reason:  models.ReasonConfiguration,
		},
		{
			name:    "missing token",
			creds:   config.StaticCredentials{NoteEndpoint: "https://e", Secret: "p"},
			content: "x",
			wantMsg: MsgTokenNotConfigured,
			reason:  models.ReasonConfiguration,
		},
		{
			name:    "missing passcode",
			creds:   config.StaticCredentials{NoteEndpoint: "https://e", BearerToken: "t"},
			content: "x",
			wantMsg: MsgPasscodeNotConfigured,
			reason:  models.ReasonConfiguration,
		},
		{
			name:    "blank content",
			creds:   testCreds,
			content: " \n\t",
			wantMsg: MsgEmptyContent,
			reason:  models.ReasonValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no EXPECT calls: neither the cipher nor the adapter may be touched
			svc, _, _ := newTestNoteSvc(t, ctrl, tt.creds)

			res := svc.Submit(context.Background(), tt.content, "inbox", testTS)

			assert.False(t, res.Success)
			assert.Equal(t, tt.wantMsg, res.Message)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}
}

func TestNoteService_Submit_ExpiredJWT(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := testCreds
	creds.BearerToken = jwtWithExpiry(t, time.Now().Add(-time.Hour))
	svc, _, _ := newTestNoteSvc(t, ctrl, creds)

	res := svc.Submit(context.Background(), "x", "inbox", testTS)

	assert.False(t, res.Success)
	assert.Equal(t, MsgTokenExpired, res.Message)
}

func TestNoteService_Submit_ValidJWT(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := testCreds
	creds.BearerToken = jwtWithExpiry(t, time.Now().Add(time.Hour))
	svc, mockCipher, mockAdapter := newTestNoteSvc(t, ctrl, creds)

	mockCipher.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return("ENVELOPE", nil)
	mockAdapter.EXPECT().PostNote(gomock.Any(), gomock.Any(), creds.BearerToken, gomock.Any()).
		Return(models.NoteResponse{}, nil)

	assert.True(t, svc.Submit(context.Background(), "x", "inbox", testTS).Success)
}

func TestNoteService_Submit_EncryptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCipher, _ := newTestNoteSvc(t, ctrl, testCreds)
	mockCipher.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return("", errors.New("rng exhausted"))

	res := svc.Submit(context.Background(), "x", "inbox", testTS)

	assert.False(t, res.Success)
	assert.Equal(t, MsgEncryptionFailed, res.Message)
	assert.Equal(t, models.ReasonEncryption, res.Reason)
}

func TestNoteService_Submit_AdapterErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
		reason  models.FailureReason
	}{
		{"unauthorized", adapter.ErrUnauthorized, MsgUnauthorized, models.ReasonRejected},
		{"bad request", adapter.ErrBadRequest, MsgRejected, models.ReasonRejected},
		{"server error", adapter.ErrInternalServerError, MsgServerError, models.ReasonRejected},
		{"rate limit", adapter.ErrTooManyRequests, MsgRateLimited, models.ReasonRejected},
		{"unreachable", adapter.ErrTransport, MsgUnreachable, models.ReasonTransport},
		{"timeout", context.DeadlineExceeded, MsgTimeout, models.ReasonTransport},
		{"bad url", adapter.ErrInvalidEndpoint, MsgInvalidEndpoint, models.ReasonConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockCipher, mockAdapter := newTestNoteSvc(t, ctrl, testCreds)
			mockCipher.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return("ENVELOPE", nil)
			mockAdapter.EXPECT().PostNote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(models.NoteResponse{}, errors.Join(tt.err, errors.New("detail")))

			res := svc.Submit(context.Background(), "x", "inbox", testTS)

			assert.False(t, res.Success)
			assert.Equal(t, tt.wantMsg, res.Message)
			assert.Equal(t, tt.reason, res.Reason)
			assert.NotContains(t, res.Message, "detail")
		})
	}
}

// ── SubmitPreEncrypted ───────────────────────────────────────────────────────

func TestNoteService_SubmitPreEncrypted_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// the passcode is not needed to forward an existing envelope
	creds := testCreds
	creds.Secret = ""
	svc, _, mockAdapter := newTestNoteSvc(t, ctrl, creds)

	mockAdapter.EXPECT().
		PostNote(gomock.Any(), creds.NoteEndpoint, creds.BearerToken, models.NoteRequest{
			Channel:   "archive",
			Text:      "AlreadyEncrypted==",
			TS:        "2026-03-14T12:09:26Z",
			Encrypted: true,
		}).
		Return(models.NoteResponse{}, nil)

	res := svc.SubmitPreEncrypted(context.Background(), " AlreadyEncrypted== ", "archive", testTS)

	assert.True(t, res.Success)
	assert.Empty(t, res.Echo)
}

func TestNoteService_SubmitPreEncrypted_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestNoteSvc(t, ctrl, config.StaticCredentials{BearerToken: "t"})

	res := svc.SubmitPreEncrypted(context.Background(), "AAA", "inbox", testTS)
	assert.Equal(t, MsgEndpointNotConfigured, res.Message)

	svc, _, _ = newTestNoteSvc(t, ctrl, testCreds)
	res = svc.SubmitPreEncrypted(context.Background(), "   ", "inbox", testTS)
	assert.Equal(t, MsgEmptyContent, res.Message)
}

// ── Async ────────────────────────────────────────────────────────────────────

func TestNoteService_SubmitAsync_DeliversExactlyOneResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCipher, mockAdapter := newTestNoteSvc(t, ctrl, testCreds)
	mockCipher.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return("ENVELOPE", nil)
	mockAdapter.EXPECT().PostNote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.NoteResponse{}, nil)

	ch := svc.SubmitAsync(context.Background(), "x", "inbox", testTS)

	select {
	case res := <-ch:
		assert.True(t, res.Success)
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
	}

	_, open := <-ch
	assert.False(t, open, "channel must be closed after the result")
}

func TestNoteService_SubmitPreEncryptedAsync_FailureIsAResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestNoteSvc(t, ctrl, config.StaticCredentials{})

	res := <-svc.SubmitPreEncryptedAsync(context.Background(), "AAA", "inbox", testTS)

	assert.False(t, res.Success)
	assert.Equal(t, models.ReasonConfiguration, res.Reason)
}

func TestNoteService_SubmitAsync_AbandonedCallerDoesNotLeak(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestNoteSvc(t, ctrl, config.StaticCredentials{})

	ch := svc.SubmitAsync(context.Background(), "x", "inbox", testTS)

	// the goroutine finishes and closes the channel even if nobody reads
	require.Eventually(t, func() bool { return len(ch) == 1 }, time.Second, 5*time.Millisecond)
}

// ── End to end against an HTTP server ────────────────────────────────────────

// TestSubmit_NoPasscodeMakesNoNetworkCalls submits without a passcode and
// checks that the remote store was never contacted.
func TestSubmit_NoPasscodeMakesNoNetworkCalls(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	creds := config.StaticCredentials{NoteEndpoint: srv.URL, BearerToken: "token"}
	svc := NewNoteService(
		crypto.NewNoteCipher(config.Crypto{}),
		adapter.NewHTTPNoteAdapter(time.Second, logger.Nop()),
		creds,
		logger.Nop(),
	)

	res := svc.Submit(context.Background(), "hello", "inbox", testTS)

	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "not configured")
	assert.Equal(t, int64(0), calls.Load())
}

func TestNoteService_EndToEnd_EncryptsBeforeSending(t *testing.T) {
	cipher := crypto.NewNoteCipher(config.Crypto{ArgonTime: 1, ArgonMemoryKiB: 8, ArgonThreads: 1})
	received := make(chan models.NoteRequest, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.NoteRequest
		assert.NoError(t, jsonDecode(r, &req))
		received <- req
		_, _ = w.Write([]byte(`{"id":5}`))
	}))
	defer srv.Close()

	creds := config.StaticCredentials{NoteEndpoint: srv.URL, BearerToken: "token", Secret: "pass"}
	svc := NewNoteService(cipher, adapter.NewHTTPNoteAdapter(time.Second, logger.Nop()), creds, logger.Nop())

	res := svc.Submit(context.Background(), "secret plan", "inbox", testTS)
	require.True(t, res.Success, res.Message)
	require.NotNil(t, res.AssignedID)
	assert.Equal(t, int64(5), *res.AssignedID)

	req := <-received
	assert.True(t, req.Encrypted)
	assert.NotContains(t, req.Text, "secret plan")

	plain, err := cipher.Decrypt("pass", req.Text)
	require.NoError(t, err)
	assert.Equal(t, "secret plan", plain)
}
