package advise

import (
	"testing"

	"archplan/core/catalog"
	"archplan/core/recommend"
	schemadesign "archplan/core/schema/v1/design"
)

func neutralView(t *testing.T) catalog.View {
	t.Helper()
	view, err := catalog.DefaultCatalog().Profile(catalog.DefaultProfile)
	if err != nil {
		t.Fatalf("resolve neutral profile: %v", err)
	}
	return view
}

func adviseFor(t *testing.T, params schemadesign.ParameterSet) schemadesign.Report {
	t.Helper()
	view := neutralView(t)
	selection := recommend.NewEngine(view).Recommend(params)
	return Advise(params, selection, view)
}

func TestAdviseNeverEmpty(t *testing.T) {
	report := adviseFor(t, recommend.DefaultParameters())
	if len(report.Advisories) == 0 {
		t.Fatal("report must never be empty")
	}
}

func TestAdviseConfirmationWhenClean(t *testing.T) {
	params := recommend.DefaultParameters()
	params.CorpusGB = 100
	params.StreamingPercent = 60
	params.ModelSize = schemadesign.ModelSizeM

	report := adviseFor(t, params)
	if len(report.Advisories) != 1 || report.Advisories[0].Code != CodeChecksPassed {
		t.Fatalf("expected single confirmation, got %#v", report.Advisories)
	}
	if report.Advisories[0].Message == "" {
		t.Fatal("confirmation message must not be empty")
	}
}

func TestAdviseLargeCorpusFires(t *testing.T) {
	params := recommend.DefaultParameters()
	params.CorpusGB = 600

	report := adviseFor(t, params)
	if got := report.Codes(); len(got) != 1 || got[0] != CodeVectorIndexUpgrade {
		t.Fatalf("expected only %s, got %#v", CodeVectorIndexUpgrade, got)
	}
}

func TestAdviseStreamingRuleDependsOnProcessing(t *testing.T) {
	// High streaming share with fresh data: processing picks the streaming
	// pipeline, so the transform advisory does not fire.
	params := recommend.DefaultParameters()
	params.StreamingPercent = 80
	params.FreshnessMinutes = 10

	report := adviseFor(t, params)
	for _, code := range report.Codes() {
		if code == CodeStreamingTransformsMissing {
			t.Fatalf("streaming advisory should not fire with streaming processing: %#v", report.Advisories)
		}
	}

	// Same share with relaxed freshness: processing is batch-oriented and
	// the advisory fires.
	params.FreshnessMinutes = 60
	report = adviseFor(t, params)
	found := false
	for _, code := range report.Codes() {
		if code == CodeStreamingTransformsMissing {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s, got %#v", CodeStreamingTransformsMissing, report.Codes())
	}
}

func TestAdviseLargeModelServedOnEndpointDoesNotFire(t *testing.T) {
	params := recommend.DefaultParameters()
	params.ModelSize = schemadesign.ModelSizeL
	params.LatencyMS = 100

	view := neutralView(t)
	selection := recommend.NewEngine(view).Recommend(params)
	if selection.APILayer[0] != view.Name(catalog.APIEndpoint) {
		t.Fatalf("latency 100 should keep the endpoint API layer, got %q", selection.APILayer[0])
	}
	if selection.LLMServing != view.Name(catalog.LLMEndpoint) {
		t.Fatalf("model L should be endpoint-served, got %q", selection.LLMServing)
	}

	report := Advise(params, selection, view)
	for _, code := range report.Codes() {
		if code == CodeLLMServingUpgrade {
			t.Fatalf("serving advisory should not fire for endpoint serving: %#v", report.Advisories)
		}
	}
}

func TestAdviseLargeModelOnContainerFires(t *testing.T) {
	params := recommend.DefaultParameters()
	params.ModelSize = schemadesign.ModelSizeL

	view := neutralView(t)
	selection := recommend.NewEngine(view).Recommend(params)
	selection.LLMServing = view.Name(catalog.LLMLightContainer)

	report := Advise(params, selection, view)
	found := false
	for _, code := range report.Codes() {
		if code == CodeLLMServingUpgrade {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s for container-hosted L model, got %#v", CodeLLMServingUpgrade, report.Codes())
	}
}

func TestAdviseRuleOrderStable(t *testing.T) {
	params := recommend.DefaultParameters()
	params.CorpusGB = 900
	params.StreamingPercent = 90
	params.FreshnessMinutes = 120

	report := adviseFor(t, params)
	want := []string{CodeVectorIndexUpgrade, CodeStreamingTransformsMissing}
	got := report.Codes()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for index := range want {
		if got[index] != want[index] {
			t.Fatalf("expected %v in definition order, got %v", want, got)
		}
	}
}
