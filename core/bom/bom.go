// Package bom renders a selection as an itemized bill of materials with
// per-category rationale derived from the same thresholds the recommender
// applies.
package bom

import (
	"fmt"

	"archplan/core/recommend"
	schemadesign "archplan/core/schema/v1/design"
)

// Entry is one bill-of-materials line.
type Entry struct {
	Category  string `json:"category"`
	Component string `json:"component"`
	Rationale string `json:"rationale"`
}

// Build lists every selected component in category order with the reason it
// was chosen. Parameters are normalized the same way the recommender
// normalizes them, so rationale sentences always cite in-domain values.
func Build(params schemadesign.ParameterSet, selection schemadesign.Selection) []Entry {
	normalized := recommend.NormalizeParams(params)
	rationales := map[string]string{
		schemadesign.KeyAPILayer:          apiLayerRationale(normalized),
		schemadesign.KeyIngestion:         ingestionRationale(normalized),
		schemadesign.KeyProcessing:        processingRationale(normalized),
		schemadesign.KeyStorage:           "baseline storage tier kept constant across designs",
		schemadesign.KeyVectorDB:          vectorDBRationale(normalized),
		schemadesign.KeyEmbeddingPipeline: "embedding refresh handled by a managed worker pool",
		schemadesign.KeyRAGStack:          "retrieval path assembled around the selected vector index",
		schemadesign.KeyLLMServing:        llmServingRationale(normalized),
		schemadesign.KeyAgenticAI:         "agent workflows kept serverless and event-triggered",
		schemadesign.KeyMLOps:             "experiment, registry and monitoring baseline",
		schemadesign.KeyCICD:              "build, deploy and infrastructure automation baseline",
		schemadesign.KeyDRResilience:      fmt.Sprintf("recovery targets RPO %d min / RTO %d min", normalized.RPOMinutes, normalized.RTOMinutes),
	}

	entries := make([]Entry, 0, 32)
	for _, category := range selection.Categories() {
		for _, component := range category.Components {
			entries = append(entries, Entry{
				Category:  category.Key,
				Component: component,
				Rationale: rationales[category.Key],
			})
		}
	}
	return entries
}

func apiLayerRationale(params schemadesign.ParameterSet) string {
	if params.LatencyMS > recommend.LatencyThresholdMS {
		return fmt.Sprintf("latency target %d ms exceeds %d ms, favoring a dedicated container tier", params.LatencyMS, recommend.LatencyThresholdMS)
	}
	return fmt.Sprintf("latency target %d ms fits the managed endpoint path", params.LatencyMS)
}

func ingestionRationale(params schemadesign.ParameterSet) string {
	if params.StreamingPercent >= recommend.StreamingThresholdPct {
		return fmt.Sprintf("streaming share %d%% at or above %d%% favors pub/sub ingestion", params.StreamingPercent, recommend.StreamingThresholdPct)
	}
	return fmt.Sprintf("streaming share %d%% below %d%% favors batch ingestion", params.StreamingPercent, recommend.StreamingThresholdPct)
}

func processingRationale(params schemadesign.ParameterSet) string {
	if params.FreshnessMinutes < recommend.FreshnessThresholdMin {
		return fmt.Sprintf("freshness target %d min under %d min requires streaming processing", params.FreshnessMinutes, recommend.FreshnessThresholdMin)
	}
	return fmt.Sprintf("freshness target %d min tolerates scheduled warehouse processing", params.FreshnessMinutes)
}

func vectorDBRationale(params schemadesign.ParameterSet) string {
	if params.CorpusGB > recommend.CorpusThresholdGB {
		return fmt.Sprintf("corpus %d GB above %d GB needs a managed vector index", params.CorpusGB, recommend.CorpusThresholdGB)
	}
	return fmt.Sprintf("corpus %d GB fits a vector extension on the relational store", params.CorpusGB)
}

func llmServingRationale(params schemadesign.ParameterSet) string {
	if params.ModelSize == recommend.LargeModelSize {
		return "size-L models need managed endpoint serving"
	}
	return fmt.Sprintf("size-%s models fit container-hosted serving", params.ModelSize)
}
