package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"archplan/core/history"
)

// version is stamped at release time via ldflags; default stays dev for local builds.
var version = "0.0.0-dev"

func main() {
	os.Exit(run(os.Args))
}

func run(arguments []string) int {
	startedAt := time.Now()
	command := normalizeHistoryCommand(arguments)
	exitCode := runDispatch(arguments)
	writeHistoryEvent(command, exitCode, time.Since(startedAt))
	return exitCode
}

func runDispatch(arguments []string) int {
	if len(arguments) < 2 {
		fmt.Println("archplan", version)
		return exitOK
	}
	if arguments[1] == "--explain" {
		return writeExplain("Archplan is a deterministic cloud architecture designer: it maps workload parameters to a component selection with advisories, a bill of materials, a diagram, and a verifiable JSON export.")
	}

	switch arguments[1] {
	case "recommend":
		return runRecommend(arguments[2:])
	case "bom":
		return runBOM(arguments[2:])
	case "diagram":
		return runDiagram(arguments[2:])
	case "export":
		return runExport(arguments[2:])
	case "verify":
		return runVerify(arguments[2:])
	case "catalog":
		return runCatalog(arguments[2:])
	case "serve":
		return runServe(arguments[2:])
	case "version", "--version", "-v":
		if hasExplainFlag(arguments[2:]) {
			return writeExplain("Print the CLI version.")
		}
		fmt.Println("archplan", version)
		return exitOK
	default:
		printUsage()
		return exitInvalidInput
	}
}

func normalizeHistoryCommand(arguments []string) string {
	if len(arguments) < 2 {
		return "version"
	}
	command := strings.TrimSpace(arguments[1])
	if command == "" {
		return "unknown"
	}
	switch command {
	case "--version", "-v", "version":
		return "version"
	case "--explain":
		return "explain"
	case "catalog":
		if len(arguments) > 2 {
			subcommand := strings.TrimSpace(arguments[2])
			if subcommand != "" && !strings.HasPrefix(subcommand, "-") {
				return command + " " + subcommand
			}
		}
	}
	return command
}

func writeHistoryEvent(command string, exitCode int, elapsed time.Duration) {
	historyPath := strings.TrimSpace(os.Getenv(history.EnvLogPath))
	if historyPath == "" {
		return
	}
	event := history.NewEvent(version, command, exitCode, elapsed)
	if err := history.AppendEvent(historyPath, event); err != nil {
		fmt.Fprintf(os.Stderr, "archplan warning: history write failed: %v\n", err)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  archplan recommend [--input params.json] [--catalog catalog.yaml] [--profile name] [--no-config] [--json] [--explain]")
	fmt.Println("  archplan bom [--input params.json] [--catalog catalog.yaml] [--profile name] [--no-config] [--json] [--explain]")
	fmt.Println("  archplan diagram [--input params.json] [--format dot|json] [--out <path>] [--catalog catalog.yaml] [--profile name] [--no-config] [--json] [--explain]")
	fmt.Println("  archplan export [--input params.json] [--out <path>] [--catalog catalog.yaml] [--profile name] [--no-config] [--json] [--explain]")
	fmt.Println("  archplan verify <export.json> [--json] [--explain]")
	fmt.Println("  archplan catalog show [--catalog catalog.yaml] [--profile name] [--no-config] [--json] [--explain]")
	fmt.Println("  archplan catalog validate <catalog.yaml> [--json] [--explain]")
	fmt.Println("  archplan serve [--listen 127.0.0.1:7980] [--open-browser=true|false] [--allow-non-loopback] [--catalog catalog.yaml] [--profile name] [--no-config] [--json] [--explain]")
	fmt.Println("  archplan version")
}
