package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"archplan/core/advise"
	"archplan/core/export"
	"archplan/core/recommend"
)

type exportOutput struct {
	OK            bool   `json:"ok"`
	DesignID      string `json:"design_id,omitempty"`
	Path          string `json:"path,omitempty"`
	InputsDigest  string `json:"inputs_digest,omitempty"`
	CatalogDigest string `json:"catalog_digest,omitempty"`
	Error         string `json:"error,omitempty"`
}

func runExport(arguments []string) int {
	if hasExplainFlag(arguments) {
		return writeExplain("Write the full design as a schema-validated JSON artifact whose digests bind it to the exact inputs and catalog that produced it.")
	}
	arguments = reorderInterspersedFlags(arguments, map[string]bool{
		"input":   true,
		"catalog": true,
		"profile": true,
		"out":     true,
	})

	flagSet := flag.NewFlagSet("export", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	var inputPath string
	var catalogPath string
	var profileName string
	var outPath string
	var noConfig bool
	var jsonOutput bool
	var helpFlag bool

	flagSet.StringVar(&inputPath, "input", "", "parameter set JSON file, - for stdin (defaults used when omitted)")
	flagSet.StringVar(&catalogPath, "catalog", "", "catalog YAML file (built-in catalog when omitted)")
	flagSet.StringVar(&profileName, "profile", "", "catalog profile for component display names")
	flagSet.StringVar(&outPath, "out", "", "export file path (design_<design_id>.json when omitted)")
	flagSet.BoolVar(&noConfig, "no-config", false, "skip .archplan/config.yaml defaults")
	flagSet.BoolVar(&jsonOutput, "json", false, "emit JSON output")
	flagSet.BoolVar(&helpFlag, "help", false, "show help")

	if err := flagSet.Parse(arguments); err != nil {
		return writeExportOutput(jsonOutput, exportOutput{Error: err.Error()}, exitInvalidInput)
	}
	if helpFlag {
		printUsage()
		return exitOK
	}
	if len(flagSet.Args()) > 0 {
		return writeExportOutput(jsonOutput, exportOutput{Error: "unexpected positional arguments"}, exitInvalidInput)
	}

	defaults, err := loadProjectDefaults(noConfig)
	if err != nil {
		return writeExportOutput(jsonOutput, exportOutput{Error: err.Error()}, exitCodeForError(err, exitInvalidInput))
	}
	view, err := resolveView(catalogPath, profileName, defaults)
	if err != nil {
		return writeExportOutput(jsonOutput, exportOutput{Error: err.Error()}, exitCodeForError(err, exitInvalidInput))
	}
	params, err := readParameterSet(inputPath)
	if err != nil {
		return writeExportOutput(jsonOutput, exportOutput{Error: err.Error()}, exitCodeForError(err, exitInvalidInput))
	}

	selection := recommend.NewEngine(view).Recommend(params)
	report := advise.Advise(params, selection, view)
	document, err := export.BuildDocument(params, selection, report, export.BuildOptions{
		ProducerVersion: version,
		CatalogDigest:   view.CatalogDigest(),
	})
	if err != nil {
		return writeExportOutput(jsonOutput, exportOutput{Error: err.Error()}, exitCodeForError(err, exitInternalFailure))
	}

	outPath = strings.TrimSpace(outPath)
	if outPath == "" && defaults.Export.OutDir != "" {
		outPath = filepath.Join(defaults.Export.OutDir, fmt.Sprintf("design_%s.json", document.DesignID))
	}
	writtenPath, err := export.WriteDocument(outPath, document)
	if err != nil {
		return writeExportOutput(jsonOutput, exportOutput{Error: err.Error()}, exitCodeForError(err, exitInternalFailure))
	}

	return writeExportOutput(jsonOutput, exportOutput{
		OK:            true,
		DesignID:      document.DesignID,
		Path:          writtenPath,
		InputsDigest:  document.InputsDigest,
		CatalogDigest: document.CatalogDigest,
	}, exitOK)
}

func writeExportOutput(jsonOutput bool, output exportOutput, exitCode int) int {
	if jsonOutput {
		return writeJSONOutput(output, exitCode)
	}
	if !output.OK {
		fmt.Printf("export error: %s\n", output.Error)
		return exitCode
	}
	fmt.Printf("export written design_id=%s path=%s\n", output.DesignID, output.Path)
	return exitCode
}
