package main

import (
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/focusdir/internal/config"
	"github.com/1broseidon/focusdir/internal/logging"
	"github.com/1broseidon/focusdir/internal/navigation"
	"github.com/1broseidon/focusdir/internal/platform"
	"github.com/1broseidon/focusdir/internal/switcher"
)

const usage = "usage: focusdir left|right|up|down"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	dir, ok := parseArgs(args, os.Stderr)
	if !ok {
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "focusdir: %v\n", err)
		return 1
	}

	logger, closer, err := logging.New(logging.Options{
		Level:     cfg.Logging.Level,
		FilePath:  cfg.Logging.File,
		MaxSizeMB: cfg.Logging.MaxSizeMB,
		MaxFiles:  cfg.Logging.MaxFiles,
	}, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "focusdir: %v\n", err)
		return 1
	}
	defer closer.Close()

	backend, err := platform.NewLinuxBackendFromDisplay(platform.ActivationPolicy(cfg.Activation), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "focusdir: %v\n", err)
		return 1
	}
	defer backend.Disconnect()

	if _, _, err := switcher.New(backend, logger).Focus(dir); err != nil {
		fmt.Fprintf(os.Stderr, "focusdir: %v\n", err)
		return 1
	}
	return 0
}

// parseArgs accepts exactly one direction name. On failure it prints the
// usage line to w.
func parseArgs(args []string, w io.Writer) (navigation.Direction, bool) {
	if len(args) != 1 {
		fmt.Fprintln(w, usage)
		return 0, false
	}
	dir, err := navigation.ParseDirection(args[0])
	if err != nil {
		fmt.Fprintln(w, usage)
		return 0, false
	}
	return dir, true
}
