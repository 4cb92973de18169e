package recommend

import (
	"archplan/core/catalog"
	schemadesign "archplan/core/schema/v1/design"
)

// Decision thresholds. Boundary-equal values take the else branch; the
// strictness of each comparison is deliberate and differs across rules.
const (
	LatencyThresholdMS       = 150
	StreamingThresholdPct    = 50
	FreshnessThresholdMin    = 15
	CorpusThresholdGB        = 50
	LargeCorpusThresholdGB   = 500
	HighStreamingWarningPct  = 70
	VectorDBLabelPrefix      = "Vector DB: "
	LargeModelSize           = schemadesign.ModelSizeL
)

// Engine maps parameter sets to architecture selections using a resolved
// catalog profile for display names.
type Engine struct {
	view catalog.View
}

func NewEngine(view catalog.View) *Engine {
	return &Engine{view: view}
}

// View exposes the engine's catalog profile.
func (engine *Engine) View() catalog.View {
	return engine.view
}

// Recommend produces a fresh selection for the given parameters. Pure and
// deterministic: identical inputs yield structurally identical selections.
// Inputs are normalized first, so out-of-domain values are clamped rather
// than rejected.
func (engine *Engine) Recommend(params schemadesign.ParameterSet) schemadesign.Selection {
	normalized := NormalizeParams(params)
	view := engine.view

	apiLayer := []string{view.Name(catalog.APIEndpoint)}
	if normalized.LatencyMS > LatencyThresholdMS {
		apiLayer = []string{view.Name(catalog.APIContainer)}
	}

	ingestion := []string{view.Name(catalog.IngestObjectStorage), view.Name(catalog.IngestBatch)}
	if normalized.StreamingPercent >= StreamingThresholdPct {
		ingestion = []string{view.Name(catalog.IngestObjectStorage), view.Name(catalog.IngestPubSub)}
	}

	processing := []string{view.Name(catalog.ProcWarehouseScheduler)}
	if normalized.FreshnessMinutes < FreshnessThresholdMin {
		processing = []string{view.Name(catalog.ProcStreaming)}
	}

	vectorDB := view.Name(catalog.VectorPGExtension)
	if normalized.CorpusGB > CorpusThresholdGB {
		vectorDB = view.Name(catalog.VectorManaged)
	}

	llmServing := view.Name(catalog.LLMLightContainer)
	if normalized.ModelSize == LargeModelSize {
		llmServing = view.Name(catalog.LLMEndpoint)
	}

	return schemadesign.Selection{
		APILayer:   apiLayer,
		Ingestion:  ingestion,
		Processing: processing,
		Storage: []string{
			view.Name(catalog.StoreWarehouse),
			view.Name(catalog.StoreRelational),
			view.Name(catalog.StoreDocument),
		},
		VectorDB:          vectorDB,
		EmbeddingPipeline: view.Name(catalog.EmbedWorkers),
		RAGStack: []string{
			view.Name(catalog.RAGRetriever),
			VectorDBLabelPrefix + vectorDB,
			view.Name(catalog.RAGContextBuilder),
			view.Name(catalog.RAGPolicy),
		},
		LLMServing: llmServing,
		AgenticAI: []string{
			view.Name(catalog.AgentOrchestrator),
			view.Name(catalog.AgentRuntime),
			view.Name(catalog.AgentBus),
		},
		MLOps: []string{
			view.Name(catalog.MLOpsExperiments),
			view.Name(catalog.MLOpsRegistry),
			view.Name(catalog.MLOpsMonitoring),
		},
		CICD: []string{
			view.Name(catalog.CICDPipeline),
			view.Name(catalog.CICDIaC),
		},
		DRResilience: []string{
			view.Name(catalog.DRBackup),
			view.Name(catalog.DRStandby),
		},
	}
}
