package ui

import (
	"archplan/core/bom"
	"archplan/core/diagram"
	schemadesign "archplan/core/schema/v1/design"
)

type Config struct {
	ProducerVersion string
}

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Profile string `json:"profile"`
}

type RecommendResponse struct {
	OK           bool                    `json:"ok"`
	DesignID     string                  `json:"design_id,omitempty"`
	Architecture *schemadesign.Selection `json:"architecture,omitempty"`
	Advisories   []schemadesign.Advisory `json:"advisories,omitempty"`
	BOM          []bom.Entry             `json:"bom,omitempty"`
	Error        string                  `json:"error,omitempty"`
}

type DiagramResponse struct {
	OK    bool           `json:"ok"`
	Graph *diagram.Graph `json:"graph,omitempty"`
	DOT   string         `json:"dot,omitempty"`
	Error string         `json:"error,omitempty"`
}

type ExportResponse struct {
	OK       bool                         `json:"ok"`
	Document *schemadesign.ExportDocument `json:"document,omitempty"`
	Error    string                       `json:"error,omitempty"`
}
