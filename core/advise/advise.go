// Package advise runs the post-recommendation consistency checks: an ordered
// list of independent predicate rules over (parameters, selection). Rules
// never short-circuit each other and report order equals definition order.
package advise

import (
	"fmt"

	"archplan/core/catalog"
	"archplan/core/recommend"
	schemadesign "archplan/core/schema/v1/design"
)

// Advisory codes, stable for machine consumers.
const (
	CodeVectorIndexUpgrade         = "vector_index_upgrade"
	CodeLLMServingUpgrade          = "llm_serving_upgrade"
	CodeStreamingTransformsMissing = "streaming_transforms_missing"
	CodeChecksPassed               = "checks_passed"
)

// Rule is one advisory check. When fires independently of every other rule.
type Rule struct {
	Code    string
	When    func(params schemadesign.ParameterSet, selection schemadesign.Selection, view catalog.View) bool
	Message func(view catalog.View) string
}

// Rules returns the advisory rules in report order.
func Rules() []Rule {
	return []Rule{
		{
			Code: CodeVectorIndexUpgrade,
			When: func(params schemadesign.ParameterSet, selection schemadesign.Selection, view catalog.View) bool {
				return contains(selection.Storage, view.Name(catalog.StoreRelational)) &&
					params.CorpusGB > recommend.LargeCorpusThresholdGB
			},
			Message: func(view catalog.View) string {
				return fmt.Sprintf("Corpus above %d GB sits next to the %s; move vector search to the %s.",
					recommend.LargeCorpusThresholdGB, view.Name(catalog.StoreRelational), view.Name(catalog.VectorManaged))
			},
		},
		{
			Code: CodeLLMServingUpgrade,
			When: func(params schemadesign.ParameterSet, selection schemadesign.Selection, view catalog.View) bool {
				return params.ModelSize == recommend.LargeModelSize &&
					selection.LLMServing == view.Name(catalog.LLMLightContainer)
			},
			Message: func(view catalog.View) string {
				return fmt.Sprintf("A size-%s model is served on the %s; move serving to the %s.",
					recommend.LargeModelSize, view.Name(catalog.LLMLightContainer), view.Name(catalog.LLMEndpoint))
			},
		},
		{
			Code: CodeStreamingTransformsMissing,
			When: func(params schemadesign.ParameterSet, selection schemadesign.Selection, view catalog.View) bool {
				return params.StreamingPercent > recommend.HighStreamingWarningPct &&
					!contains(selection.Processing, view.Name(catalog.ProcStreaming))
			},
			Message: func(view catalog.View) string {
				return fmt.Sprintf("Streaming share is above %d%% but processing is batch-oriented; add streaming transforms via the %s.",
					recommend.HighStreamingWarningPct, view.Name(catalog.ProcStreaming))
			},
		},
	}
}

// Advise evaluates every rule against normalized parameters and the given
// selection. The report is never empty: when no rule fires it carries a
// single confirmation advisory.
func Advise(params schemadesign.ParameterSet, selection schemadesign.Selection, view catalog.View) schemadesign.Report {
	normalized := recommend.NormalizeParams(params)

	advisories := make([]schemadesign.Advisory, 0, 3)
	for _, rule := range Rules() {
		if !rule.When(normalized, selection, view) {
			continue
		}
		advisories = append(advisories, schemadesign.Advisory{
			Code:    rule.Code,
			Message: rule.Message(view),
		})
	}
	if len(advisories) == 0 {
		advisories = append(advisories, schemadesign.Advisory{
			Code:    CodeChecksPassed,
			Message: "Architecture selections are consistent with the declared parameters.",
		})
	}
	return schemadesign.Report{Advisories: advisories}
}

func contains(values []string, wanted string) bool {
	for _, value := range values {
		if value == wanted {
			return true
		}
	}
	return false
}
