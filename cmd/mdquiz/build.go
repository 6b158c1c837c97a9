package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	mdquiz "github.com/alnah/go-mdquiz"
	"github.com/alnah/go-mdquiz/internal/config"
	"github.com/alnah/go-mdquiz/internal/fileutil"
	"github.com/alnah/go-mdquiz/internal/hints"
	"github.com/alnah/go-mdquiz/internal/logging"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
	ErrBuildFailed  = errors.New("page build failed")
)

// PageBuilder is the interface for the page build service.
type PageBuilder interface {
	Build(ctx context.Context, input mdquiz.Input) (*mdquiz.Result, error)
}

// Compile-time interface implementation check.
var _ PageBuilder = (*mdquiz.Builder)(nil)

// BuildResult holds the outcome of a single page build.
type BuildResult struct {
	InputPath   string
	OutputPath  string
	Quizzes     int
	Diagnostics []mdquiz.Diagnostic
	Err         error
	Duration    time.Duration
}

// runBuild orchestrates the site build.
func runBuild(ctx context.Context, positionalArgs []string, flags *buildFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	// Precedence: CLI flags > env vars > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, env.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}

	builder, err := newBuilder(cfg, logger)
	if err != nil {
		return err
	}

	workers := resolveWorkers(cfg.Build.Workers)
	logger.Debug("building site",
		zap.String("input", inputPath),
		zap.Int("pages", len(files)),
		zap.Int("workers", workers),
	)

	results := buildBatch(ctx, builder, files, workers, env)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%w: %d of %d page(s)", ErrBuildFailed, failedCount, len(results))
	}
	return nil
}

// loadConfig loads the config named by flag or environment, or the defaults.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.assets.style != "" {
		cfg.CSS.Style = flags.assets.style
	}
	if flags.assets.noStyle {
		cfg.CSS.Disabled = true
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
	if flags.assets.template != "" {
		cfg.Assets.Template = flags.assets.template
	}
	if flags.noLinkRewrite {
		cfg.Links.RewriteMarkdown = false
	}
	if flags.workers > 0 {
		cfg.Build.Workers = flags.workers
	}
	if flags.common.logFormat != "" {
		cfg.Log.Format = flags.common.logFormat
	}

	// Verbosity flags
	if flags.common.verbose {
		cfg.Log.Level = "debug"
	}
	if flags.common.quiet {
		cfg.Log.Level = "error"
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// newBuilder creates the page builder from the merged configuration.
func newBuilder(cfg *config.Config, logger *zap.Logger) (*mdquiz.Builder, error) {
	opts := []mdquiz.Option{
		mdquiz.WithLogger(logger),
		mdquiz.WithLinkRewrite(cfg.Links.RewriteMarkdown),
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, mdquiz.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Assets.Template != "" {
		opts = append(opts, mdquiz.WithTemplateSet(cfg.Assets.Template))
	}
	if cfg.CSS.Disabled {
		opts = append(opts, mdquiz.WithoutStyle())
	} else if cfg.CSS.Style != "" {
		opts = append(opts, mdquiz.WithStyle(cfg.CSS.Style))
	}

	builder, err := mdquiz.NewBuilder(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, assetHint(err))
	}
	return builder, nil
}

// assetHint returns an actionable hint for asset loading errors.
func assetHint(err error) string {
	switch {
	case errors.Is(err, mdquiz.ErrInvalidAssetPath):
		return hints.ForAssetPath()
	case errors.Is(err, mdquiz.ErrStyleNotFound):
		return hints.ForStyleNotFound(mdquiz.AvailableStyles())
	default:
		return ""
	}
}

// buildBatch builds pages concurrently with at most workers in flight.
// A failing page never stops the other builds.
func buildBatch(ctx context.Context, builder PageBuilder, files []FileToBuild, workers int, env *Environment) []BuildResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]BuildResult, len(files))

	var g errgroup.Group
	g.SetLimit(max(workers, 1))
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = BuildResult{InputPath: f.InputPath, Err: err}
				return nil
			}
			results[i] = buildFile(ctx, builder, f, env)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// buildFile builds a single page and returns the result.
func buildFile(ctx context.Context, builder PageBuilder, f FileToBuild, env *Environment) BuildResult {
	start := env.Now()
	result := BuildResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	done := func(err error) BuildResult {
		result.Err = err
		result.Duration = env.Now().Sub(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return done(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return done(fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory()))
	}

	page, err := builder.Build(ctx, mdquiz.Input{
		Markdown: string(content),
		Name:     f.InputPath,
		Title:    titleFromPath(f.InputPath),
	})
	if err != nil {
		return done(err)
	}
	result.Quizzes = page.Quizzes
	result.Diagnostics = page.Diagnostics

	// #nosec G306 -- built pages are meant to be readable
	if err := fileutil.WriteFileAtomic(f.OutputPath, string(page.HTML), filePermissions); err != nil {
		return done(fmt.Errorf("%w: %v", ErrWriteHTML, err))
	}

	return done(nil)
}

// titleFromPath derives a fallback document title from the file name.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ResultSummary holds the count of succeeded and failed builds.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Quizzes   int
	Skipped   int
}

// countResults tallies the build results.
func countResults(results []BuildResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.Quizzes += r.Quizzes
		summary.Skipped += len(r.Diagnostics)
	}
	return summary
}

// printResults outputs build results and returns the number of failed pages.
func printResults(results []BuildResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		// Skipped blocks are reported by the logger
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d quizzes, %v)\n", r.InputPath, r.OutputPath, r.Quizzes, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed, %d quizzes, %d blocks skipped\n",
			summary.Succeeded, summary.Failed, summary.Quizzes, summary.Skipped)
	}

	return summary.Failed
}
