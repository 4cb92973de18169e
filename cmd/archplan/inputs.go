package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"archplan/core/catalog"
	coreerrors "archplan/core/errors"
	"archplan/core/projectconfig"
	"archplan/core/recommend"
	"archplan/core/schema/validate"
	schemadesign "archplan/core/schema/v1/design"
)

// readParameterSet loads a parameter set file ("-" reads stdin) and overlays
// it on the form defaults. An empty path yields the defaults unchanged.
// Unknown fields and wrong types are rejected; out-of-range values are
// clamped during normalization, never rejected.
func readParameterSet(inputPath string) (schemadesign.ParameterSet, error) {
	params := recommend.DefaultParameters()
	trimmedPath := strings.TrimSpace(inputPath)
	if trimmedPath == "" {
		return recommend.NormalizeParams(params), nil
	}

	var content []byte
	var err error
	if trimmedPath == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		// #nosec G304 -- input path is explicit local user input.
		content, err = os.ReadFile(trimmedPath)
	}
	if err != nil {
		return schemadesign.ParameterSet{}, coreerrors.Wrap(
			fmt.Errorf("read parameters: %w", err),
			coreerrors.CategoryInvalidInput, "parameters_unreadable",
			"pass --input with a readable parameter JSON file", false)
	}

	if err := validate.ValidateParameterSet(content); err != nil {
		return schemadesign.ParameterSet{}, coreerrors.Wrap(
			err, coreerrors.CategoryInvalidInput, "parameters_invalid",
			"parameter files carry only the documented fields with integer and string values", false)
	}
	if err := json.Unmarshal(content, &params); err != nil {
		return schemadesign.ParameterSet{}, coreerrors.Wrap(
			fmt.Errorf("parse parameters: %w", err),
			coreerrors.CategoryInvalidInput, "parameters_invalid",
			"parameter files carry only the documented fields with integer and string values", false)
	}
	return recommend.NormalizeParams(params), nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// loadProjectDefaults reads .archplan/config.yaml when present. --no-config
// skips it entirely.
func loadProjectDefaults(noConfig bool) (projectconfig.Config, error) {
	if noConfig {
		return projectconfig.Config{}, nil
	}
	return projectconfig.Load(projectconfig.DefaultPath, true)
}

// resolveView loads the requested catalog and profile. Explicit flags win
// over project config defaults; both empty falls back to the built-in
// catalog's neutral profile.
func resolveView(catalogPath, profile string, defaults projectconfig.Config) (catalog.View, error) {
	resolvedPath := strings.TrimSpace(catalogPath)
	if resolvedPath == "" {
		resolvedPath = defaults.Catalog.Path
	}
	resolvedProfile := strings.TrimSpace(profile)
	if resolvedProfile == "" {
		resolvedProfile = defaults.Catalog.Profile
	}
	if resolvedProfile == "" {
		resolvedProfile = catalog.DefaultProfile
	}

	source := catalog.DefaultCatalog()
	if resolvedPath != "" {
		loaded, err := catalog.LoadCatalogFile(resolvedPath)
		if err != nil {
			return catalog.View{}, coreerrors.Wrap(
				err, coreerrors.CategoryInvalidInput, "catalog_invalid",
				"check the catalog YAML against archplan catalog validate", false)
		}
		source = loaded
	}

	view, err := source.Profile(resolvedProfile)
	if err != nil {
		return catalog.View{}, coreerrors.Wrap(
			err, coreerrors.CategoryInvalidInput, "profile_unknown",
			"list available profiles with archplan catalog show", false)
	}
	return view, nil
}
