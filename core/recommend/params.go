package recommend

import (
	"strings"

	schemadesign "archplan/core/schema/v1/design"
)

// Declared input domains. They mirror the ranges the interactive form
// enforces; normalization clamps anything outside them instead of failing.
const (
	MinUsers             = 1
	MaxUsers             = 20000
	MinRequestsPerSecond = 1
	MaxRequestsPerSecond = 5000
	MinLatencyMS         = 50
	MaxLatencyMS         = 2000
	MinDataGBPerDay      = 1
	MaxDataGBPerDay      = 5000
	MinCorpusGB          = 1
	MaxCorpusGB          = 10000
	MinFreshnessMinutes  = 1
	MaxFreshnessMinutes  = 1440
	MinStreamingPercent  = 0
	MaxStreamingPercent  = 100
	MinRPOMinutes        = 0
	MaxRPOMinutes        = 1440
	MinRTOMinutes        = 0
	MaxRTOMinutes        = 1440
	MinEmbedRefreshHours = 1
	MaxEmbedRefreshHours = 168
)

// DefaultParameters returns the parameter set the interactive form starts
// from.
func DefaultParameters() schemadesign.ParameterSet {
	return schemadesign.ParameterSet{
		Users:             500,
		RequestsPerSecond: 120,
		LatencyMS:         300,
		DataGBPerDay:      80,
		CorpusGB:          200,
		FreshnessMinutes:  30,
		StreamingPercent:  60,
		Availability:      schemadesign.AvailabilityThreeNines,
		RPOMinutes:        15,
		RTOMinutes:        30,
		Security:          schemadesign.SecurityHigh,
		Compliance:        schemadesign.CompliancePII,
		Budget:            schemadesign.BudgetMedium,
		ModelSize:         schemadesign.ModelSizeM,
		EmbedRefreshHours: 24,
	}
}

// NormalizeParams clamps numeric fields to their declared domains and maps
// unrecognized enum literals to the form defaults. It never fails: every
// input produces a parameter set the decision rules are total over.
func NormalizeParams(params schemadesign.ParameterSet) schemadesign.ParameterSet {
	output := params
	output.Users = clampInt(output.Users, MinUsers, MaxUsers)
	output.RequestsPerSecond = clampInt(output.RequestsPerSecond, MinRequestsPerSecond, MaxRequestsPerSecond)
	output.LatencyMS = clampInt(output.LatencyMS, MinLatencyMS, MaxLatencyMS)
	output.DataGBPerDay = clampInt(output.DataGBPerDay, MinDataGBPerDay, MaxDataGBPerDay)
	output.CorpusGB = clampInt(output.CorpusGB, MinCorpusGB, MaxCorpusGB)
	output.FreshnessMinutes = clampInt(output.FreshnessMinutes, MinFreshnessMinutes, MaxFreshnessMinutes)
	output.StreamingPercent = clampInt(output.StreamingPercent, MinStreamingPercent, MaxStreamingPercent)
	output.RPOMinutes = clampInt(output.RPOMinutes, MinRPOMinutes, MaxRPOMinutes)
	output.RTOMinutes = clampInt(output.RTOMinutes, MinRTOMinutes, MaxRTOMinutes)
	output.EmbedRefreshHours = clampInt(output.EmbedRefreshHours, MinEmbedRefreshHours, MaxEmbedRefreshHours)

	output.Availability = normalizeEnum(output.Availability, schemadesign.AvailabilityThreeNines,
		schemadesign.AvailabilityTwoNines, schemadesign.AvailabilityThreeNines, schemadesign.AvailabilityFourNines)
	output.Security = normalizeEnum(output.Security, schemadesign.SecurityHigh,
		schemadesign.SecurityLow, schemadesign.SecurityMedium, schemadesign.SecurityHigh)
	output.Compliance = normalizeEnum(output.Compliance, schemadesign.CompliancePII,
		schemadesign.ComplianceNone, schemadesign.CompliancePII, schemadesign.CompliancePHIPCI)
	output.Budget = normalizeEnum(output.Budget, schemadesign.BudgetMedium,
		schemadesign.BudgetLow, schemadesign.BudgetMedium, schemadesign.BudgetHigh)
	output.ModelSize = normalizeEnum(output.ModelSize, schemadesign.ModelSizeM,
		schemadesign.ModelSizeS, schemadesign.ModelSizeM, schemadesign.ModelSizeL)
	return output
}

func clampInt(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func normalizeEnum(value, fallback string, allowed ...string) string {
	trimmed := strings.TrimSpace(value)
	for _, candidate := range allowed {
		if strings.EqualFold(trimmed, candidate) {
			return candidate
		}
	}
	return fallback
}
