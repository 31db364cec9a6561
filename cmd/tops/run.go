package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ishandutta2007/Tops-of-Github/internal/chart"
	"github.com/ishandutta2007/Tops-of-Github/internal/config"
	"github.com/ishandutta2007/Tops-of-Github/internal/enrich"
	"github.com/ishandutta2007/Tops-of-Github/internal/github"
	toplog "github.com/ishandutta2007/Tops-of-Github/internal/log"
	"github.com/ishandutta2007/Tops-of-Github/internal/model"
	"github.com/ishandutta2007/Tops-of-Github/internal/owner"
	"github.com/ishandutta2007/Tops-of-Github/internal/pipeline"
	"github.com/ishandutta2007/Tops-of-Github/internal/report"
)

// Commands that run a pipeline over the document.
const (
	commandEnrich = "enrich"
	commandChart  = "chart"
	commandUpdate = "update"
)

// addDocumentFlags registers the flags shared by every pipeline command.
func addDocumentFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", config.DefaultDocumentPath,
		"Markdown document holding the leaderboard table")
	cmd.Flags().String("header", config.DefaultHeaderFragment,
		"Text identifying the table header line")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .tops in current or home directory)")
	cmd.Flags().BoolP("dry-run", "n", false,
		"Compute changes and print the summary without writing any file")

	cmd.Flags().BoolP("json", "j", false,
		"Print the run summary as JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Print the run summary as Markdown (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the run summary to the specified file (creates directories if needed)")
}

// addGitHubFlags registers the flags of commands that query GitHub.
func addGitHubFlags(cmd *cobra.Command) {
	cmd.Flags().String("anchor", config.DefaultAnchorColumn,
		"Column after which Owner Type and Country are inserted")
	cmd.Flags().String("api-url", config.DefaultAPIBaseURL,
		"GitHub REST API base URL")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each GitHub request")
	cmd.Flags().Duration("delay", config.DefaultRequestDelay,
		"Minimum spacing between GitHub requests")
	cmd.Flags().Duration("backoff", config.DefaultRateLimitBackoff,
		"Wait before retrying a rate-limited request")
}

// addChartFlags registers the flags of commands that draw the chart.
func addChartFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("image", "i", config.DefaultImagePath,
		"Output path of the chart image")
	cmd.Flags().String("title", config.DefaultChartTitle,
		"Chart title")
	cmd.Flags().Float64("threshold", config.DefaultOtherThreshold,
		"Share in percent below which countries are merged into Other")
	cmd.Flags().Int("size", config.DefaultChartSize,
		"Chart width and height in pixels")
}

// runPipelineCmd returns the RunE of a pipeline command.
func runPipelineCmd(command string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose, getBoolFlag(cmd, "log-json"))
		slog.SetDefault(logger)

		// Set up context with signal handling for graceful shutdown
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)
		go func() {
			select {
			case <-sigCh:
				logger.Info("received shutdown signal, cancelling...")
				cancel()
			case <-ctx.Done():
			}
		}()

		summary, err := runPipeline(ctx, command, cfg, logger, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		return outputReport(cfg, summary, cmd.OutOrStdout())
	}
}

// getBoolFlag retrieves a boolean flag from the command or its root.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return v
}

// buildConfig creates a Config from defaults, the config file and the
// command flags, in that order of precedence. Only flags the user set
// override the config file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user named a config file it must exist; otherwise a missing
	// file just means defaults.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	flags := flagOverlay{cmd: cmd}
	flags.stringVar("file", &cfg.DocumentPath)
	flags.stringVar("header", &cfg.HeaderFragment)
	flags.stringVar("anchor", &cfg.AnchorColumn)
	flags.stringVar("api-url", &cfg.APIBaseURL)
	flags.durationVar("timeout", &cfg.Timeout)
	flags.durationVar("delay", &cfg.RequestDelay)
	flags.durationVar("backoff", &cfg.RateLimitBackoff)
	flags.stringVar("image", &cfg.ImagePath)
	flags.stringVar("title", &cfg.ChartTitle)
	flags.float64Var("threshold", &cfg.OtherThreshold)
	flags.sizeVar("size", &cfg.ChartWidth, &cfg.ChartHeight)
	flags.boolVar("dry-run", &cfg.DryRun)
	flags.boolVar("json", &cfg.JSONReport)
	flags.boolVar("markdown", &cfg.MarkdownReport)
	flags.stringVar("output", &cfg.ReportFile)
	if flags.err != nil {
		return nil, flags.err
	}

	cfg.Token = os.Getenv(config.TokenEnv)
	cfg.Verbose = getBoolFlag(cmd, "verbose")

	return cfg, nil
}

// flagOverlay copies flags the user set into config fields. Flags the
// command does not define are ignored. The first lookup error is kept.
type flagOverlay struct {
	cmd *cobra.Command
	err error
}

func (o *flagOverlay) changed(name string) bool {
	if o.err != nil {
		return false
	}
	f := o.cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

func (o *flagOverlay) stringVar(name string, dst *string) {
	if o.changed(name) {
		*dst, o.err = o.cmd.Flags().GetString(name)
	}
}

func (o *flagOverlay) boolVar(name string, dst *bool) {
	if o.changed(name) {
		*dst, o.err = o.cmd.Flags().GetBool(name)
	}
}

func (o *flagOverlay) durationVar(name string, dst *time.Duration) {
	if o.changed(name) {
		*dst, o.err = o.cmd.Flags().GetDuration(name)
	}
}

func (o *flagOverlay) float64Var(name string, dst *float64) {
	if o.changed(name) {
		*dst, o.err = o.cmd.Flags().GetFloat64(name)
	}
}

func (o *flagOverlay) sizeVar(name string, width, height *int) {
	if o.changed(name) {
		var n int
		n, o.err = o.cmd.Flags().GetInt(name)
		*width, *height = n, n
	}
}

// setupLogger creates the credential-masking logger for the run.
func setupLogger(w io.Writer, verbose, jsonFormat bool) *slog.Logger {
	return toplog.New(w, toplog.WithVerbose(verbose), toplog.WithJSON(jsonFormat))
}

// runPipeline builds the steps of command and runs them over the document.
// Progress notes go to stderr; the summary is returned for reporting.
func runPipeline(ctx context.Context, command string, cfg *config.Config, logger *slog.Logger, stderr io.Writer) (*model.Summary, error) {
	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddStep(pipeline.NewReadDocumentStep())

	if command == commandEnrich || command == commandUpdate {
		step, err := newEnrichStep(cfg, logger, stderr)
		if err != nil {
			return nil, err
		}
		p.AddStep(step)
	}

	if command == commandChart || command == commandUpdate {
		opts := chart.DefaultRenderOptions()
		opts.Title = cfg.ChartTitle
		opts.Width = cfg.ChartWidth
		opts.Height = cfg.ChartHeight

		p.AddSteps(
			pipeline.NewTallyStep(cfg.HeaderFragment, enrich.CountryColumn, cfg.OtherThreshold, logger),
			pipeline.NewRenderChartStep(cfg.ImagePath, opts, cfg.DryRun),
			pipeline.NewSpliceChartStep(cfg.ImagePath, cfg.HeaderFragment),
		)
	}

	p.AddStep(pipeline.NewWriteDocumentStep(cfg.DryRun, logger))

	logger.Debug("starting run",
		"command", command,
		"document", cfg.DocumentPath,
		"steps", p.StepNames(),
		"dry_run", cfg.DryRun,
	)

	run := pipeline.NewRun(command, cfg.DocumentPath)
	err := p.Execute(ctx, run)
	run.Summary.Duration = time.Since(run.Summary.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", command, err)
	}
	return run.Summary, nil
}

// newEnrichStep wires the GitHub client, resolver and enricher.
func newEnrichStep(cfg *config.Config, logger *slog.Logger, stderr io.Writer) (*pipeline.EnrichStep, error) {
	client, err := github.NewClient(
		github.WithBaseURL(cfg.APIBaseURL),
		github.WithToken(cfg.Token),
		github.WithTimeout(cfg.Timeout),
		github.WithRequestDelay(cfg.RequestDelay),
		github.WithUserAgent(cfg.UserAgent),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	if client.Authenticated() {
		fmt.Fprintf(stderr, "Using %s for GitHub API requests.\n", config.TokenEnv)
	} else {
		fmt.Fprintf(stderr, "%s is not set; GitHub API requests are unauthenticated and strictly rate limited.\n", config.TokenEnv)
	}
	logger.Debug("github client ready",
		"api", client.BaseURL(),
		"mode", authMode(client),
		"delay", cfg.RequestDelay,
	)

	resolver := owner.NewResolver(client, owner.NewCache(),
		owner.WithLogger(logger),
		owner.WithRateLimitBackoff(cfg.RateLimitBackoff),
	)
	enricher := enrich.New(resolver,
		enrich.WithHeaderFragment(cfg.HeaderFragment),
		enrich.WithAnchorColumn(cfg.AnchorColumn),
		enrich.WithLogger(logger),
	)
	return pipeline.NewEnrichStep(enricher, resolver), nil
}

func authMode(c *github.Client) string {
	if c.Authenticated() {
		return "token"
	}
	return "anonymous"
}

// outputReport writes the run summary in the requested format.
func outputReport(cfg *config.Config, summary *model.Summary, stdout io.Writer) error {
	output := stdout
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output, report.WithChartTitle(cfg.ChartTitle))
	default:
		w = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
	_, err := w.Write(summary)
	return err
}
