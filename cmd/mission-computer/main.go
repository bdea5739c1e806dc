package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"mission-computer/internal/config"
	"mission-computer/internal/logging"
	"mission-computer/internal/metrics"
)

const version = "1.0.0"

func main() {
	if err := run(os.Args[1:], os.Stdout, metrics.NewHostSource()); err != nil {
		log.Fatal(err)
	}
}

// run parses args and prints both reports to out. Report failures are
// printed as diagnostics and never returned.
func run(args []string, out io.Writer, src metrics.Source) error {
	var (
		configPath  string
		showVersion bool
	)

	fs := flag.NewFlagSet("mission-computer", flag.ContinueOnError)
	fs.StringVar(&configPath, "config", "", "path to config.yaml (optional)")
	fs.BoolVar(&showVersion, "version", false, "show version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showVersion {
		fmt.Fprintf(out, "mission-computer v%s\n", version)
		return nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	metrics.NewReporter(cfg, src, out, logger.Logger).Run()
	return nil
}
