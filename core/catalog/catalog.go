package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"archplan/core/jcs"
)

const (
	catalogSchemaID = "archplan.catalog"
	catalogSchemaV1 = "1.0.0"

	// DefaultProfile is the provider-independent naming profile.
	DefaultProfile = "neutral"
)

// Component is a stable identifier for one catalog entry. Recommendation and
// verification rules reference components by ID; display names come from the
// active profile.
type Component string

const (
	APIContainer           Component = "api.container"
	APIEndpoint            Component = "api.endpoint"
	IngestObjectStorage    Component = "ingest.object_storage"
	IngestPubSub           Component = "ingest.pubsub"
	IngestBatch            Component = "ingest.batch"
	ProcStreaming          Component = "proc.streaming"
	ProcWarehouseScheduler Component = "proc.warehouse_scheduler"
	StoreWarehouse         Component = "store.warehouse"
	StoreRelational        Component = "store.relational"
	StoreDocument          Component = "store.document"
	VectorManaged          Component = "vector.managed"
	VectorPGExtension      Component = "vector.pg_extension"
	EmbedWorkers           Component = "embed.workers"
	RAGRetriever           Component = "rag.retriever"
	RAGContextBuilder      Component = "rag.context_builder"
	RAGPolicy              Component = "rag.policy"
	LLMEndpoint            Component = "llm.endpoint"
	LLMLightContainer      Component = "llm.light_container"
	AgentOrchestrator      Component = "agent.orchestrator"
	AgentRuntime           Component = "agent.runtime"
	AgentBus               Component = "agent.bus"
	MLOpsExperiments       Component = "mlops.experiments"
	MLOpsRegistry          Component = "mlops.registry"
	MLOpsMonitoring        Component = "mlops.monitoring"
	CICDPipeline           Component = "cicd.pipeline"
	CICDIaC                Component = "cicd.iac"
	DRBackup               Component = "dr.backup"
	DRStandby              Component = "dr.standby"
)

var allComponents = []Component{
	APIContainer,
	APIEndpoint,
	IngestObjectStorage,
	IngestPubSub,
	IngestBatch,
	ProcStreaming,
	ProcWarehouseScheduler,
	StoreWarehouse,
	StoreRelational,
	StoreDocument,
	VectorManaged,
	VectorPGExtension,
	EmbedWorkers,
	RAGRetriever,
	RAGContextBuilder,
	RAGPolicy,
	LLMEndpoint,
	LLMLightContainer,
	AgentOrchestrator,
	AgentRuntime,
	AgentBus,
	MLOpsExperiments,
	MLOpsRegistry,
	MLOpsMonitoring,
	CICDPipeline,
	CICDIaC,
	DRBackup,
	DRStandby,
}

// Components lists every known component ID in declaration order.
func Components() []Component {
	out := make([]Component, len(allComponents))
	copy(out, allComponents)
	return out
}

// Catalog maps component IDs to display names per naming profile.
type Catalog struct {
	SchemaID      string                       `yaml:"schema_id" json:"schema_id"`
	SchemaVersion string                       `yaml:"schema_version" json:"schema_version"`
	Profiles      map[string]map[string]string `yaml:"profiles" json:"profiles"`
}

// View is one resolved naming profile.
type View struct {
	profile string
	names   map[Component]string
	digest  string
}

// LoadCatalogFile reads and normalizes a catalog override from YAML.
func LoadCatalogFile(path string) (Catalog, error) {
	// #nosec G304 -- catalog path is explicit local user input.
	content, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalogYAML(content)
}

func ParseCatalogYAML(data []byte) (Catalog, error) {
	var parsed Catalog
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog yaml: %w", err)
	}
	return normalizeCatalog(parsed)
}

// Profile resolves one naming profile into a View. An empty name selects
// DefaultProfile.
func (c Catalog) Profile(name string) (View, error) {
	normalized, err := normalizeCatalog(c)
	if err != nil {
		return View{}, err
	}
	profile := strings.TrimSpace(name)
	if profile == "" {
		profile = DefaultProfile
	}
	entries, ok := normalized.Profiles[profile]
	if !ok {
		return View{}, fmt.Errorf("unknown catalog profile %q (have %s)", profile, strings.Join(normalized.ProfileNames(), ", "))
	}
	names := make(map[Component]string, len(entries))
	for id, displayName := range entries {
		names[Component(id)] = displayName
	}
	digest, err := Digest(normalized)
	if err != nil {
		return View{}, err
	}
	return View{profile: profile, names: names, digest: digest}, nil
}

// ProfileNames lists the available profiles sorted.
func (c Catalog) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Digest returns the sha256-over-JCS fingerprint of the normalized catalog.
func Digest(c Catalog) (string, error) {
	normalized, err := normalizeCatalog(c)
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(normalized)
	if err != nil {
		return "", fmt.Errorf("marshal normalized catalog: %w", err)
	}
	digest, err := jcs.Digest(raw)
	if err != nil {
		return "", fmt.Errorf("digest catalog: %w", err)
	}
	return digest, nil
}

// Name resolves a component ID to its display name in this profile.
func (v View) Name(id Component) string {
	return v.names[id]
}

// ProfileName reports which profile the view resolves.
func (v View) ProfileName() string {
	return v.profile
}

// CatalogDigest reports the fingerprint of the catalog this view came from.
func (v View) CatalogDigest() string {
	return v.digest
}

func normalizeCatalog(input Catalog) (Catalog, error) {
	output := input
	if output.SchemaID == "" {
		output.SchemaID = catalogSchemaID
	}
	if output.SchemaID != catalogSchemaID {
		return Catalog{}, fmt.Errorf("unsupported catalog schema_id: %s", output.SchemaID)
	}
	if output.SchemaVersion == "" {
		output.SchemaVersion = catalogSchemaV1
	}
	if output.SchemaVersion != catalogSchemaV1 {
		return Catalog{}, fmt.Errorf("unsupported catalog schema_version: %s", output.SchemaVersion)
	}
	if len(output.Profiles) == 0 {
		return Catalog{}, fmt.Errorf("catalog requires at least one profile")
	}

	known := make(map[string]struct{}, len(allComponents))
	for _, id := range allComponents {
		known[string(id)] = struct{}{}
	}

	profiles := make(map[string]map[string]string, len(output.Profiles))
	for profileName, entries := range output.Profiles {
		trimmedProfile := strings.TrimSpace(profileName)
		if trimmedProfile == "" {
			return Catalog{}, fmt.Errorf("catalog profile name is required")
		}
		normalizedEntries := make(map[string]string, len(entries))
		for id, displayName := range entries {
			trimmedID := strings.TrimSpace(id)
			if _, ok := known[trimmedID]; !ok {
				return Catalog{}, fmt.Errorf("unknown component id %q in profile %s", id, trimmedProfile)
			}
			trimmedName := strings.TrimSpace(displayName)
			if trimmedName == "" {
				return Catalog{}, fmt.Errorf("component %s has no display name in profile %s", trimmedID, trimmedProfile)
			}
			normalizedEntries[trimmedID] = trimmedName
		}
		for _, id := range allComponents {
			if _, ok := normalizedEntries[string(id)]; !ok {
				return Catalog{}, fmt.Errorf("profile %s is missing component %s", trimmedProfile, id)
			}
		}
		profiles[trimmedProfile] = normalizedEntries
	}
	output.Profiles = profiles
	return output, nil
}
