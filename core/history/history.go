// Package history appends per-command events to an opt-in local JSONL log.
package history

import (
	"encoding/json"
	"fmt"
	"time"

	"archplan/core/fsx"
	schemahistory "archplan/core/schema/v1/history"
)

const (
	historySchemaID = "archplan.history.event"
	historySchemaV1 = "1.0.0"
)

// EnvLogPath names the environment variable that enables history logging.
// An empty value leaves logging off.
const EnvLogPath = "ARCHPLAN_HISTORY_LOG"

// NewEvent stamps a history event with the schema envelope and the current
// time.
func NewEvent(producerVersion, command string, exitCode int, duration time.Duration) schemahistory.Event {
	return schemahistory.Event{
		SchemaID:        historySchemaID,
		SchemaVersion:   historySchemaV1,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		ProducerVersion: producerVersion,
		Command:         command,
		ExitCode:        exitCode,
		DurationMS:      duration.Milliseconds(),
	}
}

// AppendEvent serializes the event to one JSON line and appends it under the
// log's file lock. Concurrent command runs interleave whole lines, never
// partial ones.
func AppendEvent(path string, event schemahistory.Event) error {
	line, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal history event: %w", err)
	}
	if err := fsx.AppendLineLocked(path, line, 0o600); err != nil {
		return fmt.Errorf("append history event: %w", err)
	}
	return nil
}
