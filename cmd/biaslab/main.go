package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tordrt/biaslab/internal/config"
	"github.com/tordrt/biaslab/internal/logging"
)

var (
	envFile   string
	addr      string
	storeURL  string
	seed      uint32
	logLevel  string
	logFormat string
	format    string
	session   string
)

// Resolved in PersistentPreRunE
var (
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "biaslab",
	Short: "Explore bias in AI systems used in education",
	Long: `BiasLab generates a synthetic student dataset with built-in bias, compares groups
against a fixed threshold, shows documented examples of bias and builds lesson
plans for teachers. Run "biaslab serve" for the HTTP API.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&envFile, "env-file", config.DefaultEnvFile, "Optional .env file with BIASLAB_* settings")
	pf.StringVar(&addr, "addr", "", "HTTP listen address (overrides BIASLAB_ADDR)")
	pf.StringVar(&storeURL, "store", "", "Lesson plan store: memory://, sqlite://path, postgres://..., mysql://... (overrides BIASLAB_STORE_URL; serve defaults to memory://, plan commands to sqlite://biaslab.db)")
	pf.Uint32Var(&seed, "seed", 0, "Dataset seed (overrides BIASLAB_SEED, default 42)")
	pf.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&logFormat, "log-format", "", "Log format: text or json")
	pf.StringVarP(&format, "format", "f", "text", "Output format: text or markdown")
	pf.StringVar(&session, "session", "cli", "Session that owns saved lesson plans")

	rootCmd.AddCommand(serveCmd, generateCmd, compareCmd, summaryCmd, examplesCmd, planCmd)
}

// setup loads the configuration and applies flags given on the command line
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		loaded.Addr = addr
	}
	if flags.Changed("store") {
		loaded.StoreURL = storeURL
	}
	if flags.Changed("seed") {
		loaded.Seed = seed
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		loaded.LogFormat = logFormat
	}

	l, err := logging.New(loaded.LogLevel, loaded.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cfg = loaded
	logger = l
	return nil
}

// parseSubjects splits a comma-separated list, dropping blanks
func parseSubjects(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(list, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
