package main

import (
	"flag"
	"fmt"
	"io"

	"archplan/core/bom"
	"archplan/core/recommend"
)

type bomOutput struct {
	OK      bool        `json:"ok"`
	Profile string      `json:"profile,omitempty"`
	Entries []bom.Entry `json:"entries,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func runBOM(arguments []string) int {
	if hasExplainFlag(arguments) {
		return writeExplain("List every selected component as a bill of materials with the parameter-derived rationale for each category.")
	}
	arguments = reorderInterspersedFlags(arguments, map[string]bool{
		"input":   true,
		"catalog": true,
		"profile": true,
	})

	flagSet := flag.NewFlagSet("bom", flag.ContinueOnError)
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
		return writeBOMOutput(jsonOutput, bomOutput{Error: err.Error()}, exitInvalidInput)
	}
	if helpFlag {
		printUsage()
		return exitOK
	}
	if len(flagSet.Args()) > 0 {
		return writeBOMOutput(jsonOutput, bomOutput{Error: "unexpected positional arguments"}, exitInvalidInput)
	}

	defaults, err := loadProjectDefaults(noConfig)
	if err != nil {
		return writeBOMOutput(jsonOutput, bomOutput{Error: err.Error()}, exitCodeForError(err, exitInvalidInput))
	}
	view, err := resolveView(catalogPath, profileName, defaults)
	if err != nil {
		return writeBOMOutput(jsonOutput, bomOutput{Error: err.Error()}, exitCodeForError(err, exitInvalidInput))
	}
	params, err := readParameterSet(inputPath)
	if err != nil {
		return writeBOMOutput(jsonOutput, bomOutput{Error: err.Error()}, exitCodeForError(err, exitInvalidInput))
	}

	selection := recommend.NewEngine(view).Recommend(params)
	return writeBOMOutput(jsonOutput, bomOutput{
		OK:      true,
		Profile: view.ProfileName(),
		Entries: bom.Build(params, selection),
	}, exitOK)
}

func writeBOMOutput(jsonOutput bool, output bomOutput, exitCode int) int {
	if jsonOutput {
		return writeJSONOutput(output, exitCode)
	}
	if !output.OK {
		fmt.Printf("bom error: %s\n", output.Error)
		return exitCode
	}
	for _, entry := range output.Entries {
		fmt.Printf("%-18s %-40s %s\n", entry.Category, entry.Component, entry.Rationale)
	}
	return exitCode
}
