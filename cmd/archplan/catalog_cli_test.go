package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"archplan/core/catalog"
	"archplan/internal/testutil"
)

func writeValidCatalogYAML(t *testing.T, path, profile string) {
	t.Helper()
	var builder strings.Builder
	builder.WriteString("schema_id: archplan.catalog\n")
	builder.WriteString("schema_version: 1.0.0\n")
	builder.WriteString("profiles:\n")
	builder.WriteString(fmt.Sprintf("  %s:\n", profile))
	for _, id := range catalog.Components() {
		builder.WriteString(fmt.Sprintf("    %s: %s name\n", id, strings.ReplaceAll(string(id), ".", " ")))
	}
	testutil.WriteFile(t, path, []byte(builder.String()))
}

func TestCatalogValidateCLI(t *testing.T) {
	workDir := t.TempDir()
	validPath := filepath.Join(workDir, "catalog.yaml")
	writeValidCatalogYAML(t, validPath, "acme")

	if code := run([]string{"archplan", "catalog", "validate", validPath, "--json"}); code != exitOK {
		t.Fatalf("validate valid catalog: expected %d got %d", exitOK, code)
	}

	invalidPath := filepath.Join(workDir, "invalid.yaml")
	testutil.WriteFile(t, invalidPath, []byte("schema_id: archplan.catalog\nprofiles:\n  broken:\n    not.a.component: x\n"))
	if code := run([]string{"archplan", "catalog", "validate", invalidPath, "--json"}); code != exitInvalidInput {
		t.Fatalf("validate invalid catalog: expected %d got %d", exitInvalidInput, code)
	}

	if code := run([]string{"archplan", "catalog", "validate", filepath.Join(workDir, "missing.yaml"), "--json"}); code != exitInvalidInput {
		t.Fatalf("validate missing catalog: expected %d got %d", exitInvalidInput, code)
	}
}

func TestCatalogShowCLI(t *testing.T) {
	if code := run([]string{"archplan", "catalog", "show", "--no-config", "--json"}); code != exitOK {
		t.Fatalf("show default profile: expected %d got %d", exitOK, code)
	}
	if code := run([]string{"archplan", "catalog", "show", "--profile", "gcp", "--no-config", "--json"}); code != exitOK {
		t.Fatalf("show gcp profile: expected %d got %d", exitOK, code)
	}
	if code := run([]string{"archplan", "catalog", "show", "--profile", "nope", "--no-config", "--json"}); code != exitInvalidInput {
		t.Fatalf("show unknown profile: expected %d got %d", exitInvalidInput, code)
	}

	customPath := filepath.Join(t.TempDir(), "catalog.yaml")
	writeValidCatalogYAML(t, customPath, "acme")
	if code := run([]string{"archplan", "catalog", "show", "--catalog", customPath, "--profile", "acme", "--no-config", "--json"}); code != exitOK {
		t.Fatalf("show custom catalog: expected %d got %d", exitOK, code)
	}
}

func TestRecommendAndBOMAndDiagramCLI(t *testing.T) {
	workDir := t.TempDir()
	paramsPath := filepath.Join(workDir, "params.json")
	testutil.WriteFile(t, paramsPath, []byte(`{"streaming_pct": 20, "freshness_min": 5}`))

	if code := run([]string{"archplan", "recommend", "--input", paramsPath, "--no-config", "--json"}); code != exitOK {
		t.Fatalf("recommend: expected %d got %d", exitOK, code)
	}
	if code := run([]string{"archplan", "bom", "--input", paramsPath, "--no-config", "--json"}); code != exitOK {
		t.Fatalf("bom: expected %d got %d", exitOK, code)
	}

	dotPath := filepath.Join(workDir, "architecture.dot")
	if code := run([]string{"archplan", "diagram", "--input", paramsPath, "--out", dotPath, "--no-config", "--json"}); code != exitOK {
		t.Fatalf("diagram: expected %d got %d", exitOK, code)
	}
	dot := string(testutil.MustReadFile(t, dotPath))
	if !strings.HasPrefix(dot, "digraph architecture {") {
		t.Fatalf("unexpected DOT prefix: %q", dot[:40])
	}

	if code := run([]string{"archplan", "diagram", "--format", "bogus", "--no-config", "--json"}); code != exitInvalidInput {
		t.Fatalf("bogus format: expected %d got %d", exitInvalidInput, code)
	}

	jsonPath := filepath.Join(workDir, "graph.json")
	if code := run([]string{"archplan", "diagram", "--format", "json", "--out", jsonPath, "--no-config"}); code != exitOK {
		t.Fatalf("diagram json: expected %d got %d", exitOK, code)
	}
	if !strings.Contains(string(testutil.MustReadFile(t, jsonPath)), `"nodes"`) {
		t.Fatalf("graph json missing nodes")
	}
}

func TestRecommendRejectsPositionalArguments(t *testing.T) {
	if code := run([]string{"archplan", "recommend", "stray", "--no-config", "--json"}); code != exitInvalidInput {
		t.Fatalf("expected %d for stray positional, got %d", exitInvalidInput, code)
	}
}
