// Package history declares the wire type for the local command history log.
package history

// Event is one appended history record. One JSON line per command run.
type Event struct {
	SchemaID        string `json:"schema_id"`
	SchemaVersion   string `json:"schema_version"`
	CreatedAt       string `json:"created_at"`
	ProducerVersion string `json:"producer_version"`
	Command         string `json:"command"`
	ExitCode        int    `json:"exit_code"`
	DurationMS      int64  `json:"duration_ms"`
	DesignID        string `json:"design_id,omitempty"`
}
