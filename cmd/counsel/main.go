package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"counsel/internal/config"
	"counsel/internal/export"
	"counsel/internal/logging"
	"counsel/internal/pipeline"
	"counsel/internal/provider"
	"counsel/internal/service"
)

const version = "1.0.0"

var (
	// Global flags
	verbose    bool
	configPath string
	outputDir  string

	// Logger
	logger *zap.Logger

	cfg *config.Config
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "counsel",
	Short: "counsel - multi-stage scenario reasoning pipeline",
	Long: `counsel runs a scenario through ten sequential analytical stages,
from ethical alignment through final GO/NO_GO decision.

Each stage calls a language model suited to its depth, accumulates its
structured result into the shared context, and degrades gracefully when
a provider fails. Geopolitical scenarios trigger a dual-perspective
analysis that measures divergence between opposing civilizational
framings before synthesizing them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}

		level := logging.LevelInfo
		if verbose {
			level = logging.LevelDebug
		}
		return logging.Initialize(cfg.OutputDir, level)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
}

// runCmd analyzes a single scenario.
var runCmd = &cobra.Command{
	Use:   "run [scenario]",
	Short: "Analyze a scenario through all ten stages",
	Long: `Runs the full pipeline on a scenario given as arguments or, with
--file, read from a file. Results are exported as JSON, text, and
Markdown under the output directory.

Example:
  counsel run "A regional cooperative plans to ..."
  counsel run --file scenario.txt`,
	RunE: runScenario,
}

var scenarioFile string

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the case API over HTTP",
	Long: `Starts the JSON API. Cases are accepted with POST /v1/cases and run
asynchronously; poll GET /v1/cases/{id} for the result.`,
	RunE: serveAPI,
}

// versionCmd prints the version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("counsel %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "counsel.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: results)")

	runCmd.Flags().StringVarP(&scenarioFile, "file", "f", "", "Read the scenario from a file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildPipeline() (*pipeline.Pipeline, error) {
	router, err := provider.NewRouter(cfg)
	if err != nil {
		return nil, err
	}
	for _, name := range []provider.Name{provider.Anthropic, provider.DeepSeek} {
		if !router.Available(name) {
			logger.Warn("provider unavailable, stages will fall back",
				zap.String("provider", string(name)),
				zap.String("fallback", string(router.DefaultProvider())))
		}
	}
	return pipeline.New(router, cfg), nil
}

func readScenario(args []string) (string, error) {
	if scenarioFile != "" {
		data, err := os.ReadFile(scenarioFile)
		if err != nil {
			return "", fmt.Errorf("read scenario file: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("provide a scenario as arguments or with --file")
	}
	return strings.Join(args, " "), nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	text, err := readScenario(args)
	if err != nil {
		return err
	}

	p, err := buildPipeline()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	agg, err := p.Run(ctx, text)
	if err != nil {
		return err
	}

	paths, err := export.New(cfg.OutputDir).Write(agg)
	if err != nil {
		return err
	}

	fmt.Print(export.Summary(agg))
	fmt.Printf("Report: %s\n", paths[len(paths)-1])
	return nil
}

func serveAPI(cmd *cobra.Command, args []string) error {
	p, err := buildPipeline()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := service.NewServer(p, logger)
	return srv.ListenAndServe(ctx, cfg.Service.Listen)
}
