package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	schemadesign "archplan/core/schema/v1/design"
	"archplan/internal/testutil"
)

func TestExportVerifyRoundTrip(t *testing.T) {
	workDir := t.TempDir()
	paramsPath := filepath.Join(workDir, "params.json")
	exportPath := filepath.Join(workDir, "design.json")
	testutil.WriteFile(t, paramsPath, []byte(`{"latency_ms": 100, "corpus_gb": 700, "model_size": "L"}`))

	if code := run([]string{"archplan", "export", "--input", paramsPath, "--out", exportPath, "--no-config", "--json"}); code != exitOK {
		t.Fatalf("export: expected %d got %d", exitOK, code)
	}

	var document schemadesign.ExportDocument
	if err := json.Unmarshal(testutil.MustReadFile(t, exportPath), &document); err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if document.SchemaID != "archplan.design.export" {
		t.Fatalf("unexpected schema id %q", document.SchemaID)
	}
	if document.Inputs.LatencyMS != 100 || document.Inputs.ModelSize != "L" {
		t.Fatalf("input overrides lost: %+v", document.Inputs)
	}
	if document.Inputs.Users != 500 {
		t.Fatalf("omitted field did not default: %d", document.Inputs.Users)
	}

	if code := run([]string{"archplan", "verify", exportPath, "--json"}); code != exitOK {
		t.Fatalf("verify clean export: expected %d got %d", exitOK, code)
	}

	tampered := strings.Replace(string(testutil.MustReadFile(t, exportPath)), `"users": 500`, `"users": 9999`, 1)
	testutil.WriteFile(t, exportPath, []byte(tampered))
	if code := run([]string{"archplan", "verify", exportPath, "--json"}); code != exitVerifyFailed {
		t.Fatalf("verify tampered export: expected %d got %d", exitVerifyFailed, code)
	}
}

func TestExportDeterministicDesignID(t *testing.T) {
	workDir := t.TempDir()
	firstPath := filepath.Join(workDir, "first.json")
	secondPath := filepath.Join(workDir, "second.json")

	if code := run([]string{"archplan", "export", "--out", firstPath, "--no-config"}); code != exitOK {
		t.Fatalf("first export: expected %d got %d", exitOK, code)
	}
	if code := run([]string{"archplan", "export", "--out", secondPath, "--no-config"}); code != exitOK {
		t.Fatalf("second export: expected %d got %d", exitOK, code)
	}

	var first, second schemadesign.ExportDocument
	if err := json.Unmarshal(testutil.MustReadFile(t, firstPath), &first); err != nil {
		t.Fatalf("parse first export: %v", err)
	}
	if err := json.Unmarshal(testutil.MustReadFile(t, secondPath), &second); err != nil {
		t.Fatalf("parse second export: %v", err)
	}
	if first.DesignID != second.DesignID {
		t.Fatalf("design ids differ across identical runs: %q vs %q", first.DesignID, second.DesignID)
	}
	if first.InputsDigest != second.InputsDigest {
		t.Fatalf("inputs digests differ: %q vs %q", first.InputsDigest, second.InputsDigest)
	}
}

func TestExportRejectsInvalidParameters(t *testing.T) {
	workDir := t.TempDir()
	paramsPath := filepath.Join(workDir, "params.json")
	testutil.WriteFile(t, paramsPath, []byte(`{"userz": 10}`))

	code := run([]string{"archplan", "export", "--input", paramsPath, "--out", filepath.Join(workDir, "out.json"), "--no-config", "--json"})
	if code != exitInvalidInput {
		t.Fatalf("expected %d for unknown parameter field, got %d", exitInvalidInput, code)
	}
	if _, err := os.Stat(filepath.Join(workDir, "out.json")); !os.IsNotExist(err) {
		t.Fatalf("export file must not be written on invalid input")
	}
}

func TestExportHonorsConfigOutDir(t *testing.T) {
	workDir := t.TempDir()
	previous, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(workDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		_ = os.Chdir(previous)
	}()

	testutil.WriteFile(t, filepath.Join(workDir, ".archplan", "config.yaml"), []byte("export:\n  out_dir: designs\n"))

	if code := run([]string{"archplan", "export", "--json"}); code != exitOK {
		t.Fatalf("export with config: expected %d got %d", exitOK, code)
	}
	entries, err := os.ReadDir(filepath.Join(workDir, "designs"))
	if err != nil {
		t.Fatalf("read out_dir: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "design_") {
		t.Fatalf("expected one design_ file in out_dir, got %v", entries)
	}
}
