package recommend

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"archplan/core/catalog"
	schemadesign "archplan/core/schema/v1/design"
)

func neutralEngine(t *testing.T) *Engine {
	t.Helper()
	view, err := catalog.DefaultCatalog().Profile(catalog.DefaultProfile)
	if err != nil {
		t.Fatalf("resolve neutral profile: %v", err)
	}
	return NewEngine(view)
}

func TestRecommendReturnsAllCategories(t *testing.T) {
	selection := neutralEngine(t).Recommend(DefaultParameters())

	categories := selection.Categories()
	if len(categories) != 12 {
		t.Fatalf("expected 12 categories, got %d", len(categories))
	}
	for _, category := range categories {
		if len(category.Components) == 0 {
			t.Fatalf("category %s has no components", category.Key)
		}
		for _, component := range category.Components {
			if component == "" {
				t.Fatalf("category %s has an empty component", category.Key)
			}
		}
	}

	raw, err := json.Marshal(selection)
	if err != nil {
		t.Fatalf("marshal selection: %v", err)
	}
	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err != nil {
		t.Fatalf("unmarshal selection: %v", err)
	}
	if len(asMap) != 12 {
		t.Fatalf("expected 12 JSON keys, got %d: %v", len(asMap), asMap)
	}
}

func TestRecommendIdempotent(t *testing.T) {
	engine := neutralEngine(t)
	params := DefaultParameters()
	params.LatencyMS = 90
	params.CorpusGB = 700

	first := engine.Recommend(params)
	second := engine.Recommend(params)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("recommendations differ for identical inputs:\n%s", diff)
	}
}

func TestAPILayerLatencyBoundary(t *testing.T) {
	engine := neutralEngine(t)

	params := DefaultParameters()
	params.LatencyMS = 150
	atBoundary := engine.Recommend(params)
	if got := atBoundary.APILayer[0]; got != "managed inference endpoint" {
		t.Fatalf("latency 150 should take the endpoint branch, got %q", got)
	}

	params.LatencyMS = 151
	overBoundary := engine.Recommend(params)
	if got := overBoundary.APILayer[0]; got != "low-latency container service" {
		t.Fatalf("latency 151 should take the container branch, got %q", got)
	}
}

func TestVectorDBCorpusBoundary(t *testing.T) {
	engine := neutralEngine(t)

	params := DefaultParameters()
	params.CorpusGB = 50
	atBoundary := engine.Recommend(params)
	if atBoundary.VectorDB != "vector extension on relational store" {
		t.Fatalf("corpus 50 should stay on the extension, got %q", atBoundary.VectorDB)
	}

	params.CorpusGB = 51
	overBoundary := engine.Recommend(params)
	if overBoundary.VectorDB != "managed vector index service" {
		t.Fatalf("corpus 51 should move to the managed index, got %q", overBoundary.VectorDB)
	}
}

func TestRAGStackEmbedsVectorDBChoice(t *testing.T) {
	engine := neutralEngine(t)
	params := DefaultParameters()
	params.CorpusGB = 30

	selection := engine.Recommend(params)
	want := VectorDBLabelPrefix + "vector extension on relational store"
	if selection.RAGStack[1] != want {
		t.Fatalf("expected %q in RAG stack, got %q", want, selection.RAGStack[1])
	}
}

func TestIngestionStreamingBoundary(t *testing.T) {
	engine := neutralEngine(t)

	params := DefaultParameters()
	params.StreamingPercent = 50
	streaming := engine.Recommend(params)
	if diff := cmp.Diff([]string{"object storage", "pub/sub messaging"}, streaming.Ingestion); diff != "" {
		t.Fatalf("streaming 50 should pick pub/sub ingestion:\n%s", diff)
	}

	params.StreamingPercent = 49
	batch := engine.Recommend(params)
	if diff := cmp.Diff([]string{"object storage", "batch pipeline"}, batch.Ingestion); diff != "" {
		t.Fatalf("streaming 49 should pick batch ingestion:\n%s", diff)
	}
}

func TestProcessingFreshnessBoundary(t *testing.T) {
	engine := neutralEngine(t)

	params := DefaultParameters()
	params.FreshnessMinutes = 14
	fresh := engine.Recommend(params)
	if fresh.Processing[0] != "streaming data pipeline" {
		t.Fatalf("freshness 14 should pick streaming processing, got %q", fresh.Processing[0])
	}

	params.FreshnessMinutes = 15
	batch := engine.Recommend(params)
	if batch.Processing[0] != "warehouse + workflow scheduler" {
		t.Fatalf("freshness 15 should pick warehouse processing, got %q", batch.Processing[0])
	}
}

func TestLLMServingModelSize(t *testing.T) {
	engine := neutralEngine(t)

	params := DefaultParameters()
	params.ModelSize = schemadesign.ModelSizeL
	large := engine.Recommend(params)
	if large.LLMServing != "managed inference endpoint" {
		t.Fatalf("model L should be served on the endpoint, got %q", large.LLMServing)
	}

	params.ModelSize = schemadesign.ModelSizeS
	small := engine.Recommend(params)
	if small.LLMServing != "lightweight container-hosted model" {
		t.Fatalf("model S should be container-hosted, got %q", small.LLMServing)
	}
}

func TestRecommendWithGCPProfile(t *testing.T) {
	view, err := catalog.DefaultCatalog().Profile("gcp")
	if err != nil {
		t.Fatalf("resolve gcp profile: %v", err)
	}
	params := DefaultParameters()
	params.CorpusGB = 600

	selection := NewEngine(view).Recommend(params)
	if selection.VectorDB != "Vertex AI Matching Engine" {
		t.Fatalf("unexpected gcp vector db: %q", selection.VectorDB)
	}
	if selection.Storage[1] != "Cloud SQL" {
		t.Fatalf("unexpected gcp relational store: %q", selection.Storage[1])
	}
}
