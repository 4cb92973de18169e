package main

import (
	"flag"
	"fmt"
	"io"

	"archplan/core/export"
)

type verifyOutput struct {
	OK             bool   `json:"ok"`
	Path           string `json:"path,omitempty"`
	DesignID       string `json:"design_id,omitempty"`
	InputsDigestOK bool   `json:"inputs_digest_ok"`
	DesignIDOK     bool   `json:"design_id_ok"`
	Error          string `json:"error,omitempty"`
}

func runVerify(arguments []string) int {
	if hasExplainFlag(arguments) {
		return writeExplain("Check an exported design file against its schema and recompute its digests to detect post-export edits.")
	}
	arguments = reorderInterspersedFlags(arguments, nil)

	flagSet := flag.NewFlagSet("verify", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	var jsonOutput bool
	var helpFlag bool

	flagSet.BoolVar(&jsonOutput, "json", false, "emit JSON output")
	flagSet.BoolVar(&helpFlag, "help", false, "show help")

	if err := flagSet.Parse(arguments); err != nil {
		return writeVerifyOutput(jsonOutput, verifyOutput{Error: err.Error()}, exitInvalidInput)
	}
	if helpFlag {
		printUsage()
		return exitOK
	}
	if len(flagSet.Args()) != 1 {
		return writeVerifyOutput(jsonOutput, verifyOutput{Error: "expected <export.json>"}, exitInvalidInput)
	}
	exportPath := flagSet.Args()[0]

	document, err := export.ReadDocument(exportPath)
	if err != nil {
		return writeVerifyOutput(jsonOutput, verifyOutput{Path: exportPath, Error: err.Error()}, exitVerifyFailed)
	}
	result, err := export.VerifyDocument(document)
	if err != nil {
		return writeVerifyOutput(jsonOutput, verifyOutput{Path: exportPath, Error: err.Error()}, exitCodeForError(err, exitInternalFailure))
	}

	output := verifyOutput{
		OK:             result.InputsDigestOK && result.DesignIDOK,
		Path:           exportPath,
		DesignID:       result.DesignID,
		InputsDigestOK: result.InputsDigestOK,
		DesignIDOK:     result.DesignIDOK,
	}
	if !output.OK {
		output.Error = "export digests do not match document contents"
		return writeVerifyOutput(jsonOutput, output, exitVerifyFailed)
	}
	return writeVerifyOutput(jsonOutput, output, exitOK)
}

func writeVerifyOutput(jsonOutput bool, output verifyOutput, exitCode int) int {
	if jsonOutput {
		return writeJSONOutput(output, exitCode)
	}
	if !output.OK {
		fmt.Printf("verify failed path=%s: %s\n", output.Path, output.Error)
		return exitCode
	}
	fmt.Printf("verify ok design_id=%s path=%s\n", output.DesignID, output.Path)
	return exitCode
}
