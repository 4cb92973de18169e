package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"archplan/core/diagram"
	"archplan/core/fsx"
	"archplan/core/recommend"
)

type diagramOutput struct {
	OK     bool           `json:"ok"`
	Format string         `json:"format,omitempty"`
	Path   string         `json:"path,omitempty"`
	Graph  *diagram.Graph `json:"graph,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func runDiagram(arguments []string) int {
	if hasExplainFlag(arguments) {
		return writeExplain("Render the selected architecture as a component graph, either Graphviz DOT or a node/edge JSON document.")
	}
	arguments = reorderInterspersedFlags(arguments, map[string]bool{
		"input":   true,
		"catalog": true,
		"profile": true,
		"format":  true,
		"out":     true,
	})

	flagSet := flag.NewFlagSet("diagram", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	var inputPath string
	var catalogPath string
	var profileName string
	var format string
	var outPath string
	var noConfig bool
	var jsonOutput bool
	var helpFlag bool

	flagSet.StringVar(&inputPath, "input", "", "parameter set JSON file, - for stdin (defaults used when omitted)")
	flagSet.StringVar(&catalogPath, "catalog", "", "catalog YAML file (built-in catalog when omitted)")
	flagSet.StringVar(&profileName, "profile", "", "catalog profile for component display names")
	flagSet.StringVar(&format, "format", "dot", "output format: dot or json")
	flagSet.StringVar(&outPath, "out", "", "write the rendering to a file instead of stdout")
	flagSet.BoolVar(&noConfig, "no-config", false, "skip .archplan/config.yaml defaults")
	flagSet.BoolVar(&jsonOutput, "json", false, "emit JSON output")
	flagSet.BoolVar(&helpFlag, "help", false, "show help")

	if err := flagSet.Parse(arguments); err != nil {
		return writeDiagramOutput(jsonOutput, diagramOutput{Error: err.Error()}, exitInvalidInput)
	}
	if helpFlag {
		printUsage()
		return exitOK
	}
	if len(flagSet.Args()) > 0 {
		return writeDiagramOutput(jsonOutput, diagramOutput{Error: "unexpected positional arguments"}, exitInvalidInput)
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "dot" && format != "json" {
		return writeDiagramOutput(jsonOutput, diagramOutput{Error: "--format must be dot or json"}, exitInvalidInput)
	}

	defaults, err := loadProjectDefaults(noConfig)
	if err != nil {
		return writeDiagramOutput(jsonOutput, diagramOutput{Error: err.Error()}, exitCodeForError(err, exitInvalidInput))
	}
	view, err := resolveView(catalogPath, profileName, defaults)
	if err != nil {
		return writeDiagramOutput(jsonOutput, diagramOutput{Error: err.Error()}, exitCodeForError(err, exitInvalidInput))
	}
	params, err := readParameterSet(inputPath)
	if err != nil {
		return writeDiagramOutput(jsonOutput, diagramOutput{Error: err.Error()}, exitCodeForError(err, exitInvalidInput))
	}

	graph := diagram.Build(recommend.NewEngine(view).Recommend(params))

	var rendering string
	if format == "dot" {
		rendering = diagram.RenderDOT(graph)
	} else {
		encoded, marshalErr := marshalIndentJSON(graph)
		if marshalErr != nil {
			return writeDiagramOutput(jsonOutput, diagramOutput{Error: marshalErr.Error()}, exitInternalFailure)
		}
		rendering = encoded
	}

	outPath = strings.TrimSpace(outPath)
	if outPath != "" {
		if writeErr := fsx.WriteFileAtomic(outPath, []byte(rendering), 0o600); writeErr != nil {
			return writeDiagramOutput(jsonOutput, diagramOutput{Error: writeErr.Error()}, exitCodeForError(writeErr, exitInternalFailure))
		}
		output := diagramOutput{OK: true, Format: format, Path: outPath}
		if jsonOutput && format == "json" {
			output.Graph = &graph
		}
		return writeDiagramOutput(jsonOutput, output, exitOK)
	}

	if jsonOutput {
		output := diagramOutput{OK: true, Format: format}
		if format == "json" {
			output.Graph = &graph
		}
		return writeJSONOutput(output, exitOK)
	}
	fmt.Print(rendering)
	if !strings.HasSuffix(rendering, "\n") {
		fmt.Println()
	}
	return exitOK
}

func writeDiagramOutput(jsonOutput bool, output diagramOutput, exitCode int) int {
	if jsonOutput {
		return writeJSONOutput(output, exitCode)
	}
	if !output.OK {
		fmt.Printf("diagram error: %s\n", output.Error)
		return exitCode
	}
	if output.Path != "" {
		fmt.Printf("diagram written format=%s path=%s\n", output.Format, output.Path)
	}
	return exitCode
}
