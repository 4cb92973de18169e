// Package export builds, writes, and verifies the downloadable design
// artifact.
package export

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"archplan/core/fsx"
	"archplan/core/jcs"
	"archplan/core/schema/validate"
	schemadesign "archplan/core/schema/v1/design"
)

const (
	exportSchemaID = "archplan.design.export"
	exportSchemaV1 = "1.0.0"
)

// BuildOptions carries the envelope metadata for one export.
type BuildOptions struct {
	ProducerVersion string
	CatalogDigest   string
	GeneratedAt     time.Time
}

// BuildDocument assembles the export envelope from one recommendation cycle.
// The design ID fingerprints (inputs, catalog), so re-running the same
// parameters against the same catalog reproduces the same ID.
func BuildDocument(
	params schemadesign.ParameterSet,
	selection schemadesign.Selection,
	report schemadesign.Report,
	opts BuildOptions,
) (schemadesign.ExportDocument, error) {
	if strings.TrimSpace(opts.CatalogDigest) == "" {
		return schemadesign.ExportDocument{}, fmt.Errorf("catalog digest is required")
	}
	inputsDigest, err := digestInputs(params)
	if err != nil {
		return schemadesign.ExportDocument{}, err
	}

	generatedAt := opts.GeneratedAt.UTC()
	if generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}
	producerVersion := strings.TrimSpace(opts.ProducerVersion)
	if producerVersion == "" {
		producerVersion = "0.0.0-dev"
	}

	designID, err := computeDesignID(selection, report.Strings(), inputsDigest, opts.CatalogDigest)
	if err != nil {
		return schemadesign.ExportDocument{}, err
	}

	return schemadesign.ExportDocument{
		SchemaID:        exportSchemaID,
		SchemaVersion:   exportSchemaV1,
		ProducerVersion: producerVersion,
		DesignID:        designID,
		GeneratedAt:     generatedAt,
		Architecture:    selection,
		AgentFeedback:   report.Strings(),
		Inputs:          params,
		InputsDigest:    inputsDigest,
		CatalogDigest:   opts.CatalogDigest,
	}, nil
}

// WriteDocument validates the document against the export schema and writes
// it atomically as pretty JSON with a trailing newline. An empty path
// defaults to design_<design_id>.json in the working directory.
func WriteDocument(path string, document schemadesign.ExportDocument) (string, error) {
	encoded, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export document: %w", err)
	}
	if err := validate.ValidateExportDocument(encoded); err != nil {
		return "", fmt.Errorf("validate export document: %w", err)
	}

	resolvedPath := strings.TrimSpace(path)
	if resolvedPath == "" {
		resolvedPath = fmt.Sprintf("design_%s.json", document.DesignID)
	}
	dir := filepath.Dir(resolvedPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", fmt.Errorf("create export directory: %w", err)
		}
	}
	encoded = append(encoded, '\n')
	if err := fsx.WriteFileAtomic(resolvedPath, encoded, 0o600); err != nil {
		return "", fmt.Errorf("write export document: %w", err)
	}
	return resolvedPath, nil
}

// ReadDocument loads and schema-validates a previously written export.
func ReadDocument(path string) (schemadesign.ExportDocument, error) {
	// #nosec G304 -- export path is explicit local user input.
	content, err := os.ReadFile(path)
	if err != nil {
		return schemadesign.ExportDocument{}, fmt.Errorf("read export document: %w", err)
	}
	if err := validate.ValidateExportDocument(content); err != nil {
		return schemadesign.ExportDocument{}, err
	}
	var document schemadesign.ExportDocument
	if err := json.Unmarshal(content, &document); err != nil {
		return schemadesign.ExportDocument{}, fmt.Errorf("parse export document: %w", err)
	}
	return document, nil
}

// VerifyResult reports which integrity checks an export document passed.
type VerifyResult struct {
	DesignID           string
	InputsDigestOK     bool
	DesignIDOK         bool
	AgentFeedbackCount int
}

// VerifyDocument recomputes the inputs digest and design ID of a document.
// The design ID covers architecture, agent feedback, and both digests, so
// any post-export edit to those fields fails the check; the inputs digest
// check isolates edits to the inputs themselves.
func VerifyDocument(document schemadesign.ExportDocument) (VerifyResult, error) {
	inputsDigest, err := digestInputs(document.Inputs)
	if err != nil {
		return VerifyResult{}, err
	}
	designID, err := computeDesignID(document.Architecture, document.AgentFeedback, inputsDigest, document.CatalogDigest)
	if err != nil {
		return VerifyResult{}, err
	}
	return VerifyResult{
		DesignID:           document.DesignID,
		InputsDigestOK:     inputsDigest == document.InputsDigest,
		DesignIDOK:         designID == document.DesignID,
		AgentFeedbackCount: len(document.AgentFeedback),
	}, nil
}

func digestInputs(params schemadesign.ParameterSet) (string, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("marshal inputs: %w", err)
	}
	digest, err := jcs.Digest(raw)
	if err != nil {
		return "", fmt.Errorf("digest inputs: %w", err)
	}
	return digest, nil
}

// computeDesignID fingerprints the full design payload: the selection, the
// verifier feedback, and the digests binding inputs and catalog. The first
// 12 bytes of the sha256 keep the ID short enough for file names.
func computeDesignID(
	selection schemadesign.Selection,
	feedback []string,
	inputsDigest, catalogDigest string,
) (string, error) {
	payload := map[string]any{
		"architecture":   selection,
		"agent_feedback": feedback,
		"inputs_digest":  inputsDigest,
		"catalog_digest": catalogDigest,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal design id payload: %w", err)
	}
	canonical, err := jcs.Canonicalize(raw)
	if err != nil {
		return "", fmt.Errorf("canonicalize design id payload: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:12]), nil
}
