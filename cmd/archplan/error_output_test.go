package main

import (
	"encoding/json"
	"errors"
	"testing"

	coreerrors "archplan/core/errors"
)

func TestMarshalOutputWithErrorEnvelope(t *testing.T) {
	encoded, err := marshalOutputWithErrorEnvelope(verifyOutput{Error: "digest mismatch"}, exitVerifyFailed)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	var result map[string]any
	if err := json.Unmarshal(encoded, &result); err != nil {
		t.Fatalf("parse envelope: %v", err)
	}
	if result["error_code"] != "verification_failed" {
		t.Fatalf("unexpected error_code %v", result["error_code"])
	}
	if result["error_category"] != "verification_failed" {
		t.Fatalf("unexpected error_category %v", result["error_category"])
	}
	if result["retryable"] != false {
		t.Fatalf("unexpected retryable %v", result["retryable"])
	}
	if result["hint"] == "" || result["hint"] == nil {
		t.Fatalf("missing hint")
	}
}

func TestMarshalOutputWithoutErrorLeavesEnvelopeEmpty(t *testing.T) {
	encoded, err := marshalOutputWithErrorEnvelope(verifyOutput{OK: true, DesignID: "abc"}, exitOK)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	var result map[string]any
	if err := json.Unmarshal(encoded, &result); err != nil {
		t.Fatalf("parse envelope: %v", err)
	}
	if _, exists := result["error_code"]; exists {
		t.Fatalf("error_code must not appear on success payloads")
	}
	if _, exists := result["hint"]; exists {
		t.Fatalf("hint must not appear on success payloads")
	}
}

func TestExitCodeForError(t *testing.T) {
	if code := exitCodeForError(nil, exitInternalFailure); code != exitOK {
		t.Fatalf("nil error: expected %d got %d", exitOK, code)
	}

	invalid := coreerrors.Wrap(errors.New("bad input"), coreerrors.CategoryInvalidInput, "bad_input", "", false)
	if code := exitCodeForError(invalid, exitInternalFailure); code != exitInvalidInput {
		t.Fatalf("invalid input: expected %d got %d", exitInvalidInput, code)
	}

	verification := coreerrors.Wrap(errors.New("mismatch"), coreerrors.CategoryVerification, "mismatch", "", false)
	if code := exitCodeForError(verification, exitInternalFailure); code != exitVerifyFailed {
		t.Fatalf("verification: expected %d got %d", exitVerifyFailed, code)
	}

	plain := errors.New("unclassified")
	if code := exitCodeForError(plain, exitInvalidInput); code != exitInvalidInput {
		t.Fatalf("unclassified error: expected fallback %d got %d", exitInvalidInput, code)
	}
}
