// Package ui serves the localhost design form and its JSON API. Requests
// run against an in-process engine, never a subprocess.
package ui

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"archplan/core/advise"
	"archplan/core/bom"
	"archplan/core/catalog"
	"archplan/core/diagram"
	"archplan/core/export"
	"archplan/core/recommend"
	"archplan/core/schema/validate"
	schemadesign "archplan/core/schema/v1/design"
)

const maxRequestBytes = 1 << 20

type handler struct {
	engine          *recommend.Engine
	view            catalog.View
	producerVersion string
}

func NewHandler(view catalog.View, config Config, staticHandler http.Handler) (http.Handler, error) {
	producerVersion := strings.TrimSpace(config.ProducerVersion)
	if producerVersion == "" {
		producerVersion = "0.0.0-dev"
	}
	h := &handler{
		engine:          recommend.NewEngine(view),
		view:            view,
		producerVersion: producerVersion,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", h.handleHealth)
	mux.HandleFunc("/api/recommend", h.handleRecommend)
	mux.HandleFunc("/api/diagram", h.handleDiagram)
	mux.HandleFunc("/api/export", h.handleExport)
	mux.Handle("/", staticHandler)
	return mux, nil
}

func (handlerValue *handler) handleHealth(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet {
		writeError(writer, http.StatusMethodNotAllowed, "expected GET")
		return
	}
	writeJSON(writer, http.StatusOK, HealthResponse{
		OK:      true,
		Service: "archplan.ui",
		Profile: handlerValue.view.ProfileName(),
	})
}

func (handlerValue *handler) handleRecommend(writer http.ResponseWriter, request *http.Request) {
	params, ok := handlerValue.readParams(writer, request)
	if !ok {
		return
	}

	selection := handlerValue.engine.Recommend(params)
	report := advise.Advise(params, selection, handlerValue.view)
	document, err := export.BuildDocument(params, selection, report, export.BuildOptions{
		ProducerVersion: handlerValue.producerVersion,
		CatalogDigest:   handlerValue.view.CatalogDigest(),
	})
	if err != nil {
		writeJSON(writer, http.StatusInternalServerError, RecommendResponse{Error: err.Error()})
		return
	}

	writeJSON(writer, http.StatusOK, RecommendResponse{
		OK:           true,
		DesignID:     document.DesignID,
		Architecture: &selection,
		Advisories:   report.Advisories,
		BOM:          bom.Build(params, selection),
	})
}

func (handlerValue *handler) handleDiagram(writer http.ResponseWriter, request *http.Request) {
	params, ok := handlerValue.readParams(writer, request)
	if !ok {
		return
	}

	graph := diagram.Build(handlerValue.engine.Recommend(params))
	writeJSON(writer, http.StatusOK, DiagramResponse{
		OK:    true,
		Graph: &graph,
		DOT:   diagram.RenderDOT(graph),
	})
}

func (handlerValue *handler) handleExport(writer http.ResponseWriter, request *http.Request) {
	params, ok := handlerValue.readParams(writer, request)
	if !ok {
		return
	}

	selection := handlerValue.engine.Recommend(params)
	report := advise.Advise(params, selection, handlerValue.view)
	document, err := export.BuildDocument(params, selection, report, export.BuildOptions{
		ProducerVersion: handlerValue.producerVersion,
		CatalogDigest:   handlerValue.view.CatalogDigest(),
	})
	if err != nil {
		writeJSON(writer, http.StatusInternalServerError, ExportResponse{Error: err.Error()})
		return
	}
	writeJSON(writer, http.StatusOK, ExportResponse{OK: true, Document: &document})
}

// readParams decodes a parameter set request body. Fields the client omits
// keep their form defaults; out-of-range values are clamped, not rejected.
func (handlerValue *handler) readParams(writer http.ResponseWriter, request *http.Request) (schemadesign.ParameterSet, bool) {
	if request.Method != http.MethodPost {
		writeError(writer, http.StatusMethodNotAllowed, "expected POST")
		return schemadesign.ParameterSet{}, false
	}

	request.Body = http.MaxBytesReader(writer, request.Body, maxRequestBytes)
	body, err := io.ReadAll(request.Body)
	if err != nil {
		writeError(writer, http.StatusBadRequest, "read request body")
		return schemadesign.ParameterSet{}, false
	}

	params := recommend.DefaultParameters()
	if len(strings.TrimSpace(string(body))) > 0 {
		if err := validate.ValidateParameterSet(body); err != nil {
			writeError(writer, http.StatusBadRequest, err.Error())
			return schemadesign.ParameterSet{}, false
		}
		if err := json.Unmarshal(body, &params); err != nil {
			writeError(writer, http.StatusBadRequest, "decode request JSON")
			return schemadesign.ParameterSet{}, false
		}
	}
	return recommend.NormalizeParams(params), true
}

func writeJSON(writer http.ResponseWriter, status int, value any) {
	encoded, err := json.Marshal(value)
	if err != nil {
		http.Error(writer, `{"ok":false,"error":"encode response"}`, http.StatusInternalServerError)
		return
	}
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_, _ = writer.Write(append(encoded, '\n'))
}

func writeError(writer http.ResponseWriter, status int, message string) {
	writeJSON(writer, status, map[string]any{
		"ok":    false,
		"error": strings.TrimSpace(message),
	})
}
