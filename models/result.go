// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FailureReason classifies a failed Result so that outer layers can pick a
// status code without parsing the message.
type FailureReason string

const (
	// ReasonConfiguration means endpoint, token or passcode are missing or
	// unusable. No I/O was attempted.
	ReasonConfiguration FailureReason = "configuration"
	// ReasonValidation means the submitted content was rejected locally.
	ReasonValidation FailureReason = "validation"
	// ReasonEncryption means the content could not be encrypted.
	ReasonEncryption FailureReason = "encryption"
	// ReasonRejected means the remote store answered with a non-2xx status.
	ReasonRejected FailureReason = "rejected"
	// ReasonTransport means no response was received.
	ReasonTransport FailureReason = "transport"
)

// Result is the outcome of a write-path submission. Submissions never return
// errors to the caller; every failure is folded into a Result with
// Success=false and a human-readable Message.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	// Echo is the content that was submitted, returned for display.
	Echo string `json:"echo,omitempty"`

	// AssignedID is the id the remote store returned, when it returned one.
	AssignedID *int64 `json:"assigned_id,omitempty"`

	Reason FailureReason `json:"reason,omitempty"`
}

// Succeeded builds a successful Result.
func Succeeded(message, echo string, assignedID *int64) Result {
	return Result{Success: true, Message: message, Echo: echo, AssignedID: assignedID}
}

// Failed builds a failed Result.
func Failed(reason FailureReason, message string) Result {
	return Result{Success: false, Message: message, Reason: reason}
}
