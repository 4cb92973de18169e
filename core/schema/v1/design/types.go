// Package design declares the wire types for parameter sets, architecture
// selections, verifier advisories, and the export envelope.
package design

import "time"

// Availability tiers offered by the input form.
const (
	AvailabilityTwoNines   = "99.0%"
	AvailabilityThreeNines = "99.9%"
	AvailabilityFourNines  = "99.99%"
)

// Security posture levels.
const (
	SecurityLow    = "Low"
	SecurityMedium = "Medium"
	SecurityHigh   = "High"
)

// Compliance scopes.
const (
	ComplianceNone   = "None"
	CompliancePII    = "PII"
	CompliancePHIPCI = "PHI/PCI"
)

// Budget tiers.
const (
	BudgetLow    = "Low"
	BudgetMedium = "Medium"
	BudgetHigh   = "High"
)

// Model size classes.
const (
	ModelSizeS = "S"
	ModelSizeM = "M"
	ModelSizeL = "L"
)

// ParameterSet is the full set of workload inputs one recommendation runs
// over. Numeric fields carry the units their JSON names state.
type ParameterSet struct {
	Users             int    `json:"users"`
	RequestsPerSecond int    `json:"rps"`
	LatencyMS         int    `json:"latency_ms"`
	DataGBPerDay      int    `json:"data_gb_day"`
	CorpusGB          int    `json:"corpus_gb"`
	FreshnessMinutes  int    `json:"freshness_min"`
	StreamingPercent  int    `json:"streaming_pct"`
	Availability      string `json:"availability"`
	RPOMinutes        int    `json:"rpo_min"`
	RTOMinutes        int    `json:"rto_min"`
	Security          string `json:"security"`
	Compliance        string `json:"compliance"`
	Budget            string `json:"budget"`
	ModelSize         string `json:"model_size"`
	EmbedRefreshHours int    `json:"embed_refresh_hours"`
}

// Display keys of the twelve architecture categories, in presentation order.
const (
	KeyAPILayer          = "API Layer"
	KeyIngestion         = "Ingestion"
	KeyProcessing        = "Processing"
	KeyStorage           = "Storage"
	KeyVectorDB          = "Vector DB"
	KeyEmbeddingPipeline = "Embedding Pipeline"
	KeyRAGStack          = "RAG Stack"
	KeyLLMServing        = "LLM Serving"
	KeyAgenticAI         = "Agentic AI"
	KeyMLOps             = "MLOps"
	KeyCICD              = "CI/CD"
	KeyDRResilience      = "DR/Resilience"
)

// Selection maps every architecture category to its chosen components.
// Three categories are scalar, a single component name; the rest are
// ordered component lists. The JSON keys are the display keys above.
type Selection struct {
	APILayer          []string `json:"API Layer"`
	Ingestion         []string `json:"Ingestion"`
	Processing        []string `json:"Processing"`
	Storage           []string `json:"Storage"`
	VectorDB          string   `json:"Vector DB"`
	EmbeddingPipeline string   `json:"Embedding Pipeline"`
	RAGStack          []string `json:"RAG Stack"`
	LLMServing        string   `json:"LLM Serving"`
	AgenticAI         []string `json:"Agentic AI"`
	MLOps             []string `json:"MLOps"`
	CICD              []string `json:"CI/CD"`
	DRResilience      []string `json:"DR/Resilience"`
}

// Category is one selection entry in the canonical presentation order.
// Scalar marks categories whose JSON value is a single component name.
type Category struct {
	Key        string
	Components []string
	Scalar     bool
}

// Categories returns the selection in presentation order. Component slices
// are copies, so callers may mutate them freely.
func (s Selection) Categories() []Category {
	return []Category{
		{Key: KeyAPILayer, Components: copyComponents(s.APILayer)},
		{Key: KeyIngestion, Components: copyComponents(s.Ingestion)},
		{Key: KeyProcessing, Components: copyComponents(s.Processing)},
		{Key: KeyStorage, Components: copyComponents(s.Storage)},
		{Key: KeyVectorDB, Components: []string{s.VectorDB}, Scalar: true},
		{Key: KeyEmbeddingPipeline, Components: []string{s.EmbeddingPipeline}, Scalar: true},
		{Key: KeyRAGStack, Components: copyComponents(s.RAGStack)},
		{Key: KeyLLMServing, Components: []string{s.LLMServing}, Scalar: true},
		{Key: KeyAgenticAI, Components: copyComponents(s.AgenticAI)},
		{Key: KeyMLOps, Components: copyComponents(s.MLOps)},
		{Key: KeyCICD, Components: copyComponents(s.CICD)},
		{Key: KeyDRResilience, Components: copyComponents(s.DRResilience)},
	}
}

func copyComponents(components []string) []string {
	out := make([]string, len(components))
	copy(out, components)
	return out
}

// Advisory is one verifier finding. Code identifies the rule that fired;
// Message is the human-readable statement shown to the user.
type Advisory struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Report is the full verifier output for one selection. It is never empty:
// when no rule fires the verifier appends a single confirmation advisory.
type Report struct {
	Advisories []Advisory `json:"advisories"`
}

// Strings returns the advisory messages in report order.
func (r Report) Strings() []string {
	out := make([]string, 0, len(r.Advisories))
	for _, advisory := range r.Advisories {
		out = append(out, advisory.Message)
	}
	return out
}

// Codes returns the advisory codes in report order.
func (r Report) Codes() []string {
	out := make([]string, 0, len(r.Advisories))
	for _, advisory := range r.Advisories {
		out = append(out, advisory.Code)
	}
	return out
}

// ExportDocument is the downloadable design artifact. The digests bind the
// document to the exact inputs and catalog that produced it.
type ExportDocument struct {
	SchemaID        string       `json:"schema_id"`
	SchemaVersion   string       `json:"schema_version"`
	ProducerVersion string       `json:"producer_version"`
	DesignID        string       `json:"design_id"`
	GeneratedAt     time.Time    `json:"generated_at"`
	Architecture    Selection    `json:"architecture"`
	AgentFeedback   []string     `json:"agent_feedback"`
	Inputs          ParameterSet `json:"inputs"`
	InputsDigest    string       `json:"inputs_digest"`
	CatalogDigest   string       `json:"catalog_digest"`
}
