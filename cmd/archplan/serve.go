package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"strings"
	"time"

	coreui "archplan/core/ui"
)

type serveOutput struct {
	OK      bool   `json:"ok"`
	Listen  string `json:"listen,omitempty"`
	URL     string `json:"url,omitempty"`
	Profile string `json:"profile,omitempty"`
	OpenURL bool   `json:"open_url,omitempty"`
	Error   string `json:"error,omitempty"`
}

func runServe(arguments []string) int {
	if hasExplainFlag(arguments) {
		return writeExplain("Run the localhost design form: an interactive parameter panel backed by the same engine the CLI commands use.")
	}
	arguments = reorderInterspersedFlags(arguments, map[string]bool{
		"listen":             true,
		"catalog":            true,
		"profile":            true,
		"open-browser":       true,
		"allow-non-loopback": false,
	})

	flagSet := flag.NewFlagSet("serve", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	var listenAddr string
	var catalogPath string
	var profileName string
	var openBrowser bool
	var allowNonLoopback bool
	var noConfig bool
	var jsonOutput bool
	var helpFlag bool

	flagSet.StringVar(&listenAddr, "listen", "", "listen address for the localhost server")
	flagSet.StringVar(&catalogPath, "catalog", "", "catalog YAML file (built-in catalog when omitted)")
	flagSet.StringVar(&profileName, "profile", "", "catalog profile for component display names")
	flagSet.BoolVar(&openBrowser, "open-browser", true, "open the UI URL in the default browser after startup")
	flagSet.BoolVar(&allowNonLoopback, "allow-non-loopback", false, "allow non-loopback listen addresses")
	flagSet.BoolVar(&noConfig, "no-config", false, "skip .archplan/config.yaml defaults")
	flagSet.BoolVar(&jsonOutput, "json", false, "emit startup JSON")
	flagSet.BoolVar(&helpFlag, "help", false, "show help")

	if err := flagSet.Parse(arguments); err != nil {
		return writeServeOutput(jsonOutput, serveOutput{Error: err.Error()}, exitInvalidInput)
	}
	if helpFlag {
		printUsage()
		return exitOK
	}
	if len(flagSet.Args()) > 0 {
		return writeServeOutput(jsonOutput, serveOutput{Error: "unexpected positional arguments"}, exitInvalidInput)
	}

	defaults, err := loadProjectDefaults(noConfig)
	if err != nil {
		return writeServeOutput(jsonOutput, serveOutput{Error: err.Error()}, exitCodeForError(err, exitInvalidInput))
	}
	listenAddr = firstNonEmpty(listenAddr, defaults.Serve.Listen, "127.0.0.1:7980")
	isLoopback, loopbackErr := isLoopbackListen(listenAddr)
	if loopbackErr != nil {
		return writeServeOutput(jsonOutput, serveOutput{Error: loopbackErr.Error()}, exitInvalidInput)
	}
	if !isLoopback && !allowNonLoopback {
		return writeServeOutput(jsonOutput, serveOutput{
			Error: "non-loopback --listen requires --allow-non-loopback",
		}, exitInvalidInput)
	}

	view, err := resolveView(catalogPath, profileName, defaults)
	if err != nil {
		return writeServeOutput(jsonOutput, serveOutput{Error: err.Error()}, exitCodeForError(err, exitInvalidInput))
	}
	staticHandler, staticErr := coreui.NewStaticHandler()
	if staticErr != nil {
		return writeServeOutput(jsonOutput, serveOutput{Error: staticErr.Error()}, exitCodeForError(staticErr, exitInternalFailure))
	}
	apiHandler, apiErr := coreui.NewHandler(view, coreui.Config{ProducerVersion: version}, staticHandler)
	if apiErr != nil {
		return writeServeOutput(jsonOutput, serveOutput{Error: apiErr.Error()}, exitCodeForError(apiErr, exitInternalFailure))
	}

	listener, listenErr := net.Listen("tcp", listenAddr)
	if listenErr != nil {
		return writeServeOutput(jsonOutput, serveOutput{Error: listenErr.Error()}, exitCodeForError(listenErr, exitInternalFailure))
	}
	url := "http://" + listener.Addr().String()
	if jsonOutput {
		if code := writeServeOutput(jsonOutput, serveOutput{
			OK:      true,
			Listen:  listener.Addr().String(),
			URL:     url,
			Profile: view.ProfileName(),
			OpenURL: openBrowser,
		}, exitOK); code != exitOK {
			_ = listener.Close()
			return code
		}
	} else {
		fmt.Printf("serve listening=%s profile=%s\n", listener.Addr().String(), view.ProfileName())
		fmt.Printf("serve url=%s\n", url)
	}

	if openBrowser {
		_ = openInBrowser(url)
	}
	server := &http.Server{
		Handler:           apiHandler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := server.Serve(listener); err != nil && !strings.Contains(err.Error(), "closed network connection") {
		return writeServeOutput(jsonOutput, serveOutput{Error: err.Error()}, exitCodeForError(err, exitInternalFailure))
	}
	return exitOK
}

func writeServeOutput(jsonOutput bool, output serveOutput, exitCode int) int {
	if jsonOutput {
		return writeJSONOutput(output, exitCode)
	}
	if output.OK {
		return exitCode
	}
	fmt.Printf("serve error: %s\n", output.Error)
	return exitCode
}

func isLoopbackListen(listenAddr string) (bool, error) {
	host, _, err := net.SplitHostPort(strings.TrimSpace(listenAddr))
	if err != nil {
		return false, fmt.Errorf("invalid --listen address: %w", err)
	}
	if host == "" || strings.EqualFold(host, "localhost") {
		return host != "", nil
	}
	parsed := net.ParseIP(host)
	if parsed == nil {
		return false, nil
	}
	return parsed.IsLoopback(), nil
}

func openInBrowser(url string) error {
	trimmedURL := strings.TrimSpace(url)
	if trimmedURL == "" {
		return fmt.Errorf("empty url")
	}
	var command *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		command = exec.Command("open", trimmedURL) // #nosec G204
	case "windows":
		command = exec.Command("rundll32", "url.dll,FileProtocolHandler", trimmedURL) // #nosec G204
	default:
		command = exec.Command("xdg-open", trimmedURL) // #nosec G204
	}
	return command.Start()
}
