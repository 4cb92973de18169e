package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"archplan/core/advise"
	"archplan/core/export"
	"archplan/core/recommend"
	schemadesign "archplan/core/schema/v1/design"
)

type recommendOutput struct {
	OK           bool                    `json:"ok"`
	DesignID     string                  `json:"design_id,omitempty"`
	Profile      string                  `json:"profile,omitempty"`
	Architecture *schemadesign.Selection `json:"architecture,omitempty"`
	Advisories   []schemadesign.Advisory `json:"advisories,omitempty"`
	Error        string                  `json:"error,omitempty"`
}

func runRecommend(arguments []string) int {
	if hasExplainFlag(arguments) {
		return writeExplain("Map a workload parameter set to a twelve-category architecture selection with verifier advisories. Deterministic: identical inputs always yield identical selections.")
	}
	arguments = reorderInterspersedFlags(arguments, map[string]bool{
		"input":   true,
		"catalog": true,
		"profile": true,
	})

	flagSet := flag.NewFlagSet("recommend", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	var inputPath string
	var catalogPath string
	var profileName string
	var noConfig bool
	var jsonOutput bool
	var helpFlag bool

	flagSet.StringVar(&inputPath, "input", "", "parameter set JSON file, - for stdin (defaults used when omitted)")
	flagSet.StringVar(&catalogPath, "catalog", "", "catalog YAML file (built-in catalog when omitted)")
	flagSet.StringVar(&profileName, "profile", "", "catalog profile for component display names")
	flagSet.BoolVar(&noConfig, "no-config", false, "skip .archplan/config.yaml defaults")
	flagSet.BoolVar(&jsonOutput, "json", false, "emit JSON output")
	flagSet.BoolVar(&helpFlag, "help", false, "show help")

	if err := flagSet.Parse(arguments); err != nil {
		return writeRecommendOutput(jsonOutput, recommendOutput{Error: err.Error()}, exitInvalidInput)
	}
	if helpFlag {
		printUsage()
		return exitOK
	}
	if len(flagSet.Args()) > 0 {
		return writeRecommendOutput(jsonOutput, recommendOutput{Error: "unexpected positional arguments"}, exitInvalidInput)
	}

	defaults, err := loadProjectDefaults(noConfig)
	if err != nil {
		return writeRecommendOutput(jsonOutput, recommendOutput{Error: err.Error()}, exitCodeForError(err, exitInvalidInput))
	}
	view, err := resolveView(catalogPath, profileName, defaults)
	if err != nil {
		return writeRecommendOutput(jsonOutput, recommendOutput{Error: err.Error()}, exitCodeForError(err, exitInvalidInput))
	}
	params, err := readParameterSet(inputPath)
	if err != nil {
		return writeRecommendOutput(jsonOutput, recommendOutput{Error: err.Error()}, exitCodeForError(err, exitInvalidInput))
	}

	selection := recommend.NewEngine(view).Recommend(params)
	report := advise.Advise(params, selection, view)
	document, err := export.BuildDocument(params, selection, report, export.BuildOptions{
		ProducerVersion: version,
		CatalogDigest:   view.CatalogDigest(),
	})
	if err != nil {
		return writeRecommendOutput(jsonOutput, recommendOutput{Error: err.Error()}, exitCodeForError(err, exitInternalFailure))
	}

	return writeRecommendOutput(jsonOutput, recommendOutput{
		OK:           true,
		DesignID:     document.DesignID,
		Profile:      view.ProfileName(),
		Architecture: &selection,
		Advisories:   report.Advisories,
	}, exitOK)
}

func writeRecommendOutput(jsonOutput bool, output recommendOutput, exitCode int) int {
	if jsonOutput {
		return writeJSONOutput(output, exitCode)
	}
	if !output.OK {
		fmt.Printf("recommend error: %s\n", output.Error)
		return exitCode
	}
	fmt.Printf("design %s (profile %s)\n", output.DesignID, output.Profile)
	for _, category := range output.Architecture.Categories() {
		fmt.Printf("%-18s %s\n", category.Key, strings.Join(category.Components, "; "))
	}
	fmt.Println("advisories:")
	for _, advisory := range output.Advisories {
		fmt.Printf("  [%s] %s\n", advisory.Code, advisory.Message)
	}
	return exitCode
}
