package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-log-file          JSON log file path
//	-timeout           validation pass timeout (e.g., "3s")
//	-auto-validate     enable auto-validation for every field from the start
//	-check-url         base URL of the remote username check
//	-check-path        request path of the remote username check
//	-request-timeout   remote check request timeout (e.g., "2s")
//	-c/-config         json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("formdemo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		logFile        string
		timeout        time.Duration
		autoValidate   bool
		checkURL       string
		checkPath      string
		requestTimeout time.Duration
		jsonConfigPath string
	)

	fs.StringVar(&logFile, "log-file", "", "JSON log file path")
	fs.DurationVar(&timeout, "timeout", 0, "Validation pass timeout (e.g., 3s)")
	fs.BoolVar(&autoValidate, "auto-validate", false, "Enable auto-validation for every field from the start")
	fs.StringVar(&checkURL, "check-url", "", "Base URL of the remote username check")
	fs.StringVar(&checkPath, "check-path", "", "Request path of the remote username check")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote check request timeout (e.g., 2s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Validation: Validation{
			Timeout:      timeout,
			AutoValidate: autoValidate,
		},
		Remote: Remote{
			CheckURL:       checkURL,
			CheckPath:      checkPath,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
