package catalog

// DefaultCatalog returns the built-in catalog: a provider-independent
// "neutral" profile and a "gcp" profile carrying concrete product names.
func DefaultCatalog() Catalog {
	return Catalog{
		SchemaID:      catalogSchemaID,
		SchemaVersion: catalogSchemaV1,
		Profiles: map[string]map[string]string{
			"neutral": {
				string(APIContainer):           "low-latency container service",
				string(APIEndpoint):            "managed inference endpoint",
				string(IngestObjectStorage):    "object storage",
				string(IngestPubSub):           "pub/sub messaging",
				string(IngestBatch):            "batch pipeline",
				string(ProcStreaming):          "streaming data pipeline",
				string(ProcWarehouseScheduler): "warehouse + workflow scheduler",
				string(StoreWarehouse):         "columnar warehouse",
				string(StoreRelational):        "relational store",
				string(StoreDocument):          "document store",
				string(VectorManaged):          "managed vector index service",
				string(VectorPGExtension):      "vector extension on relational store",
				string(EmbedWorkers):           "managed embedding worker pool",
				string(RAGRetriever):           "retriever",
				string(RAGContextBuilder):      "context builder",
				string(RAGPolicy):              "retrieval policy",
				string(LLMEndpoint):            "managed inference endpoint",
				string(LLMLightContainer):      "lightweight container-hosted model",
				string(AgentOrchestrator):      "workflow orchestrator",
				string(AgentRuntime):           "serverless agent runtime",
				string(AgentBus):               "event-trigger bus",
				string(MLOpsExperiments):       "experiment tracking",
				string(MLOpsRegistry):          "model registry",
				string(MLOpsMonitoring):        "monitoring + logging",
				string(CICDPipeline):           "build/deploy pipeline",
				string(CICDIaC):                "infrastructure-as-code",
				string(DRBackup):               "multi-region backup",
				string(DRStandby):              "standby replica",
			},
			"gcp": {
				string(APIContainer):           "Cloud Run (FastAPI)",
				string(APIEndpoint):            "Vertex AI Endpoints",
				string(IngestObjectStorage):    "Cloud Storage",
				string(IngestPubSub):           "Pub/Sub",
				string(IngestBatch):            "Batch Dataflow",
				string(ProcStreaming):          "Dataflow (Streaming)",
				string(ProcWarehouseScheduler): "BigQuery + Composer",
				string(StoreWarehouse):         "BigQuery",
				string(StoreRelational):        "Cloud SQL",
				string(StoreDocument):          "Firestore",
				string(VectorManaged):          "Vertex AI Matching Engine",
				string(VectorPGExtension):      "pgvector on Cloud SQL",
				string(EmbedWorkers):           "Cloud Run Embedding Workers",
				string(RAGRetriever):           "Retriever (FAISS or Matching Engine)",
				string(RAGContextBuilder):      "Context Builder",
				string(RAGPolicy):              "RAG Policy",
				string(LLMEndpoint):            "Vertex AI Endpoints",
				string(LLMLightContainer):      "Cloud Run (Light LLM)",
				string(AgentOrchestrator):      "Workflows orchestrator",
				string(AgentRuntime):           "Serverless agents",
				string(AgentBus):               "Pub/Sub triggers",
				string(MLOpsExperiments):       "Vertex AI Experiments",
				string(MLOpsRegistry):          "Model Registry",
				string(MLOpsMonitoring):        "Cloud Monitoring + Logging",
				string(CICDPipeline):           "GitHub Actions + Cloud Build deploy",
				string(CICDIaC):                "Terraform Infra as Code",
				string(DRBackup):               "Multi-region backups",
				string(DRStandby):              "Cold/Warm standby",
			},
		},
	}
}
