package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"
)

// optionalBool is a flag.Value that stays nil until the flag is given, so an
// explicit "false" can override a value from the environment.
//
// With isBool unset the flag requires a value ("--testing true"), matching the
// original command line; with isBool set a bare "--insecure" means true.
type optionalBool struct {
	value  *bool
	isBool bool
}

func (o *optionalBool) String() string {
	if o == nil || o.value == nil {
		return ""
	}
	return strconv.FormatBool(*o.value)
}

func (o *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean %q", s)
	}
	o.value = &v
	return nil
}

func (o *optionalBool) IsBoolFlag() bool {
	return o.isBool
}

// parseFlags parses the command line (without the program name).
//
// Flags:
//
//	-server          backend base URL
//	-testing         relax email/password validation (true/false)
//	-c/-config       json file path with configs
//	-timeout         request timeout (e.g. "15s")
//	-ca-cert         extra trusted root certificate (PEM)
//	-insecure        skip TLS verification
//	-art-dir         directory with <species>.txt art sheets
//	-log-file        log file path
//
// Both "-flag" and "--flag" spellings are accepted. Positional arguments are
// rejected.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("svp-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		serverURL      string
		jsonConfigPath string
		requestTimeout time.Duration
		caCertPath     string
		artDir         string
		logFile        string
		testing        = optionalBool{}
		insecure       = optionalBool{isBool: true}
	)

	fs.StringVar(&serverURL, "server", "", "Server URL")
	fs.Var(&testing, "testing", "Relax input validation for test runs (true/false)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&caCertPath, "ca-cert", "", "Trusted server certificate (PEM)")
	fs.Var(&insecure, "insecure", "Skip TLS certificate verification")
	fs.StringVar(&artDir, "art-dir", "", "Directory with pet art sheets")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArguments, fs.Args())
	}

	return &StructuredConfig{
		App: App{
			Testing: testing.value,
			ArtDir:  artDir,
		},
		Adapter: Adapter{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
			CACertPath:     caCertPath,
			Insecure:       insecure.value,
		},
		Logger: Logger{
			FilePath: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
