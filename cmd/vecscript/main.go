package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/zeusync/vecmath/internal/config"
	"github.com/zeusync/vecmath/internal/core/script"
	"github.com/zeusync/vecmath/internal/injector"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vecscript", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	logLevel := fs.String("log-level", "", "override log level (debug, info, warn, error)")
	workers := fs.Int("workers", 0, "override the number of scripts run in parallel")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: vecscript [flags] script.yaml...\n\noperations: %s\n\n", strings.Join(script.Operations(), ", "))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, "Error loading config:", err)
			return 2
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *workers > 0 {
		cfg.Runner.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "Invalid config:", err)
		return 2
	}

	var scripts []*script.Script
	for _, path := range fs.Args() {
		loaded, err := script.LoadFile(path)
		if err != nil {
			fmt.Fprintln(stderr, "Error loading script:", err)
			return 2
		}
		scripts = append(scripts, loaded...)
	}

	runner, cleanup := injector.InitializeRunner(cfg)
	defer cleanup()

	results, err := runner.RunAll(ctx, scripts)

	failed := 0
	for i, res := range results {
		switch {
		case res == nil:
			failed++
			fmt.Fprintf(stdout, "SKIP %s\n", scripts[i].Name)
		case res.Passed():
			fmt.Fprintf(stdout, "PASS %s (%s)\n", res.Name, res.Final)
		default:
			failed++
			fmt.Fprintf(stdout, "FAIL %s: %v\n", res.Name, res.Err)
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, "Run stopped:", err)
		return 1
	}
	if failed > 0 {
		return 1
	}
	return 0
}
