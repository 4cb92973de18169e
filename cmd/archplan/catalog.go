package main

import (
	"flag"
	"fmt"
	"io"

	"archplan/core/catalog"
)

type catalogComponent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type catalogShowOutput struct {
	OK         bool               `json:"ok"`
	Profile    string             `json:"profile,omitempty"`
	Profiles   []string           `json:"profiles,omitempty"`
	Digest     string             `json:"digest,omitempty"`
	Components []catalogComponent `json:"components,omitempty"`
	Error      string             `json:"error,omitempty"`
}

type catalogValidateOutput struct {
	OK       bool     `json:"ok"`
	Path     string   `json:"path,omitempty"`
	Profiles []string `json:"profiles,omitempty"`
	Digest   string   `json:"digest,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func runCatalog(arguments []string) int {
	if hasExplainFlag(arguments) {
		return writeExplain("Inspect and validate component catalogs that map stable component IDs to per-profile display names.")
	}
	if len(arguments) == 0 {
		printUsage()
		return exitInvalidInput
	}
	switch arguments[0] {
	case "show":
		return runCatalogShow(arguments[1:])
	case "validate":
		return runCatalogValidate(arguments[1:])
	default:
		printUsage()
		return exitInvalidInput
	}
}

func runCatalogShow(arguments []string) int {
	if hasExplainFlag(arguments) {
		return writeExplain("Print one catalog profile: its components with display names, the available profiles, and the catalog digest.")
	}
	arguments = reorderInterspersedFlags(arguments, map[string]bool{
		"catalog": true,
		"profile": true,
	})

	flagSet := flag.NewFlagSet("catalog-show", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	var catalogPath string
	var profileName string
	var noConfig bool
	var jsonOutput bool
	var helpFlag bool

	flagSet.StringVar(&catalogPath, "catalog", "", "catalog YAML file (built-in catalog when omitted)")
	flagSet.StringVar(&profileName, "profile", "", "catalog profile to show")
	flagSet.BoolVar(&noConfig, "no-config", false, "skip .archplan/config.yaml defaults")
	flagSet.BoolVar(&jsonOutput, "json", false, "emit JSON output")
	flagSet.BoolVar(&helpFlag, "help", false, "show help")

	if err := flagSet.Parse(arguments); err != nil {
		return writeCatalogShowOutput(jsonOutput, catalogShowOutput{Error: err.Error()}, exitInvalidInput)
	}
	if helpFlag {
		printUsage()
		return exitOK
	}
	if len(flagSet.Args()) > 0 {
		return writeCatalogShowOutput(jsonOutput, catalogShowOutput{Error: "unexpected positional arguments"}, exitInvalidInput)
	}

	defaults, err := loadProjectDefaults(noConfig)
	if err != nil {
		return writeCatalogShowOutput(jsonOutput, catalogShowOutput{Error: err.Error()}, exitCodeForError(err, exitInvalidInput))
	}
	view, err := resolveView(catalogPath, profileName, defaults)
	if err != nil {
		return writeCatalogShowOutput(jsonOutput, catalogShowOutput{Error: err.Error()}, exitCodeForError(err, exitInvalidInput))
	}

	source := catalog.DefaultCatalog()
	if resolvedPath := firstNonEmpty(catalogPath, defaults.Catalog.Path); resolvedPath != "" {
		loaded, loadErr := catalog.LoadCatalogFile(resolvedPath)
		if loadErr != nil {
			return writeCatalogShowOutput(jsonOutput, catalogShowOutput{Error: loadErr.Error()}, exitInvalidInput)
		}
		source = loaded
	}

	components := make([]catalogComponent, 0, len(catalog.Components()))
	for _, id := range catalog.Components() {
		components = append(components, catalogComponent{ID: string(id), Name: view.Name(id)})
	}

	return writeCatalogShowOutput(jsonOutput, catalogShowOutput{
		OK:         true,
		Profile:    view.ProfileName(),
		Profiles:   source.ProfileNames(),
		Digest:     view.CatalogDigest(),
		Components: components,
	}, exitOK)
}

func runCatalogValidate(arguments []string) int {
	if hasExplainFlag(arguments) {
		return writeExplain("Parse and normalize a catalog YAML file, rejecting unknown component IDs and profiles with missing components.")
	}
	arguments = reorderInterspersedFlags(arguments, nil)

	flagSet := flag.NewFlagSet("catalog-validate", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	var jsonOutput bool
	var helpFlag bool

	flagSet.BoolVar(&jsonOutput, "json", false, "emit JSON output")
	flagSet.BoolVar(&helpFlag, "help", false, "show help")

	if err := flagSet.Parse(arguments); err != nil {
		return writeCatalogValidateOutput(jsonOutput, catalogValidateOutput{Error: err.Error()}, exitInvalidInput)
	}
	if helpFlag {
		printUsage()
		return exitOK
	}
	if len(flagSet.Args()) != 1 {
		return writeCatalogValidateOutput(jsonOutput, catalogValidateOutput{Error: "expected <catalog.yaml>"}, exitInvalidInput)
	}
	catalogPath := flagSet.Args()[0]

	loaded, err := catalog.LoadCatalogFile(catalogPath)
	if err != nil {
		return writeCatalogValidateOutput(jsonOutput, catalogValidateOutput{Path: catalogPath, Error: err.Error()}, exitInvalidInput)
	}
	digest, err := catalog.Digest(loaded)
	if err != nil {
		return writeCatalogValidateOutput(jsonOutput, catalogValidateOutput{Path: catalogPath, Error: err.Error()}, exitInternalFailure)
	}

	return writeCatalogValidateOutput(jsonOutput, catalogValidateOutput{
		OK:       true,
		Path:     catalogPath,
		Profiles: loaded.ProfileNames(),
		Digest:   digest,
	}, exitOK)
}

func writeCatalogShowOutput(jsonOutput bool, output catalogShowOutput, exitCode int) int {
	if jsonOutput {
		return writeJSONOutput(output, exitCode)
	}
	if !output.OK {
		fmt.Printf("catalog error: %s\n", output.Error)
		return exitCode
	}
	fmt.Printf("profile %s (available: %v) digest %s\n", output.Profile, output.Profiles, output.Digest)
	for _, component := range output.Components {
		fmt.Printf("%-24s %s\n", component.ID, component.Name)
	}
	return exitCode
}

func writeCatalogValidateOutput(jsonOutput bool, output catalogValidateOutput, exitCode int) int {
	if jsonOutput {
		return writeJSONOutput(output, exitCode)
	}
	if !output.OK {
		fmt.Printf("catalog validate failed path=%s: %s\n", output.Path, output.Error)
		return exitCode
	}
	fmt.Printf("catalog ok path=%s profiles=%v digest=%s\n", output.Path, output.Profiles, output.Digest)
	return exitCode
}
