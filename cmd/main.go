package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/dzfranklin/bikeshare"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"io"
	"log/slog"
	"os"
)

func main() {
	dataDir := pflag.StringP("data-dir", "d", "", "Directory holding chicago.csv, new_york_city.csv and washington.csv")
	configPath := pflag.StringP("config", "c", "", "YAML file overriding the data directory or per-city file names")
	verbose := pflag.BoolP("verbose", "v", false, "Log loading and filtering progress to stderr")
	noColor := pflag.Bool("no-color", false, "Disable bold and colored output")

	pflag.Parse()

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	if *noColor {
		color.NoColor = true
	}

	cfg := bikeshare.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = bikeshare.LoadConfig(*configPath)
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			os.Exit(1)
		}
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	err := bikeshare.NewSession(cfg, os.Stdin, os.Stdout).Run(context.Background())
	if err != nil && !errors.Is(err, io.EOF) {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
}
