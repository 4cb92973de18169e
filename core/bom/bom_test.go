package bom

import (
	"strings"
	"testing"

	"archplan/core/catalog"
	"archplan/core/recommend"
	schemadesign "archplan/core/schema/v1/design"
)

func buildFor(t *testing.T, params schemadesign.ParameterSet) []Entry {
	t.Helper()
	view, err := catalog.DefaultCatalog().Profile(catalog.DefaultProfile)
	if err != nil {
		t.Fatalf("resolve profile: %v", err)
	}
	selection := recommend.NewEngine(view).Recommend(params)
	return Build(params, selection)
}

func TestBuildCoversEveryComponent(t *testing.T) {
	entries := buildFor(t, recommend.DefaultParameters())

	seenCategories := map[string]bool{}
	for _, entry := range entries {
		if entry.Component == "" || entry.Rationale == "" {
			t.Fatalf("incomplete entry: %#v", entry)
		}
		seenCategories[entry.Category] = true
	}
	if len(seenCategories) != 12 {
		t.Fatalf("expected entries for 12 categories, got %d", len(seenCategories))
	}
	// Defaults select 1+2+1+3+1+1+4+1+3+3+2+2 components.
	if len(entries) != 24 {
		t.Fatalf("expected 24 entries for default parameters, got %d", len(entries))
	}
}

func TestBuildCategoryOrderMatchesSelection(t *testing.T) {
	entries := buildFor(t, recommend.DefaultParameters())
	if entries[0].Category != schemadesign.KeyAPILayer {
		t.Fatalf("expected API Layer first, got %s", entries[0].Category)
	}
	if entries[len(entries)-1].Category != schemadesign.KeyDRResilience {
		t.Fatalf("expected DR/Resilience last, got %s", entries[len(entries)-1].Category)
	}
}

func TestBuildRationaleTracksThresholds(t *testing.T) {
	params := recommend.DefaultParameters()
	params.LatencyMS = 400
	params.CorpusGB = 30

	entries := buildFor(t, params)
	var apiRationale, vectorRationale string
	for _, entry := range entries {
		switch entry.Category {
		case schemadesign.KeyAPILayer:
			apiRationale = entry.Rationale
		case schemadesign.KeyVectorDB:
			vectorRationale = entry.Rationale
		}
	}
	if !strings.Contains(apiRationale, "exceeds 150 ms") {
		t.Fatalf("unexpected API rationale: %q", apiRationale)
	}
	if !strings.Contains(vectorRationale, "fits a vector extension") {
		t.Fatalf("unexpected vector rationale: %q", vectorRationale)
	}
}

func TestBuildRationaleUsesClampedValues(t *testing.T) {
	params := recommend.DefaultParameters()
	params.LatencyMS = 5000

	entries := buildFor(t, params)
	for _, entry := range entries {
		if entry.Category == schemadesign.KeyAPILayer {
			if !strings.Contains(entry.Rationale, "2000 ms") {
				t.Fatalf("expected clamped latency in rationale, got %q", entry.Rationale)
			}
			return
		}
	}
	t.Fatal("missing API Layer entry")
}
