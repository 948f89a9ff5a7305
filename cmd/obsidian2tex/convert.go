package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	obsidian2tex "github.com/alnah/go-obsidian2tex"
	"github.com/alnah/go-obsidian2tex/internal/config"
	"github.com/alnah/go-obsidian2tex/internal/figures"
	"github.com/alnah/go-obsidian2tex/internal/fileutil"
	"github.com/alnah/go-obsidian2tex/internal/hints"
	"github.com/alnah/go-obsidian2tex/internal/mdscan"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteTex           = errors.New("failed to write LaTeX file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// maxWorkers bounds --workers; conversions are CPU-light so more buys nothing.
const maxWorkers = 32

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	BackupPath string
	Skipped    bool
	Warnings   []string
	Inventory  *mdscan.Inventory // populated in verbose mode
	Images     int
	Err        error
	Duration   time.Duration
}

// conversionParams groups parameters shared across the batch.
type conversionParams struct {
	opts       obsidian2tex.Options
	savePolicy string
	figuresDir string
	noFigures  bool
	verbose    bool
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(nil))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	if err := fileutil.ValidatePolicy(cfg.Save.Policy); err != nil {
		return err
	}

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
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	params := &conversionParams{
		opts: obsidian2tex.Options{
			HeaderLevelOffset: cfg.Convert.HeaderOffset,
			DefaultImageWidth: cfg.Convert.ImageWidth,
			WidthUnit:         cfg.Convert.WidthUnit,
			IndentWidth:       cfg.Convert.IndentWidth,
			FiguresDir:        cfg.Figures.Dir,
		},
		savePolicy: cfg.Save.Policy,
		figuresDir: resolveFiguresDir(cfg),
		noFigures:  cfg.Figures.Disabled,
		verbose:    flags.common.verbose,
	}

	results := convertBatch(ctx, files, params, resolveWorkers(flags.workers), env)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.levelAdjust != 0 {
		cfg.Convert.HeaderOffset = flags.levelAdjust
	}
	if flags.imageWidth != "" {
		cfg.Convert.ImageWidth = flags.imageWidth
	}
	if flags.indentWidth != 0 {
		cfg.Convert.IndentWidth = flags.indentWidth
	}
	if flags.figuresDir != "" {
		cfg.Figures.Dir = flags.figuresDir
	}
	if flags.noFigures {
		cfg.Figures.Disabled = true
	}
	if flags.overwrite != "" {
		cfg.Save.Policy = flags.overwrite
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
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

// resolveOutputDir determines the output destination from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// resolveFiguresDir returns the materialization target directory.
func resolveFiguresDir(cfg *config.Config) string {
	if cfg.Figures.Dir != "" {
		return cfg.Figures.Dir
	}
	return obsidian2tex.DefaultFiguresDir
}

// resolveWorkers maps the --workers flag to a concrete worker count.
func resolveWorkers(n int) int {
	if n == 0 {
		return min(runtime.GOMAXPROCS(0), maxWorkers)
	}
	return n
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}

// discoverFiles finds all markdown files to convert.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".markdown" {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the .tex output path for a markdown file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".tex")
	}

	if strings.HasSuffix(outputDir, ".tex") {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+".tex")
		}
	}

	return filepath.Join(outputDir, base+".tex")
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// convertBatch processes files concurrently with a bounded worker group.
// One Service is shared: it carries no per-conversion state.
func convertBatch(ctx context.Context, files []FileToConvert, params *conversionParams, workers int, env *Environment) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	svc := obsidian2tex.New()

	concurrency := workers
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, svc, files[idx], params, env)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, svc *obsidian2tex.Service, f FileToConvert, params *conversionParams, env *Environment) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	out, err := svc.Convert(ctx, obsidian2tex.Input{
		Markdown:   string(content),
		SourceName: filepath.Base(f.InputPath),
		Options:    params.opts,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		env.Logger.Error("conversion failed", "input", f.InputPath, "error", err)
		return result
	}
	result.Warnings = append(result.Warnings, out.Warnings...)
	result.Images = len(out.Images)

	if params.verbose {
		result.Inventory = mdscan.Scan(content)
	}

	saved, backupPath, err := fileutil.Save(f.OutputPath, []byte(out.Latex), params.savePolicy)
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteTex, err)
		result.Duration = time.Since(start)
		return result
	}
	result.BackupPath = backupPath
	if !saved {
		result.Skipped = true
		result.Duration = time.Since(start)
		return result
	}

	if !params.noFigures && len(out.Images) > 0 {
		sourceDir := filepath.Dir(f.InputPath)
		figResults, err := figures.Materialize(out.Images, sourceDir, params.figuresDir)
		if err != nil {
			result.Err = err
			result.Duration = time.Since(start)
			return result
		}
		for _, fr := range figResults {
			if fr.Err != nil {
				result.Warnings = append(result.Warnings, fr.Err.Error()+hints.ForUnresolvedImage())
			}
		}
	}

	result.Duration = time.Since(start)
	env.Logger.Info("converted",
		"input", f.InputPath,
		"output", f.OutputPath,
		"images", result.Images,
		"duration", result.Duration.Round(time.Millisecond).String(),
	)
	return result
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed, skipped int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		for _, w := range r.Warnings {
			fmt.Fprintf(env.Stderr, "WARNING %s: %s\n", r.InputPath, w)
		}

		if r.Skipped {
			skipped++
			if !quiet {
				fmt.Fprintf(env.Stdout, "Skipped %s (exists)%s\n", r.OutputPath, hints.ForSkippedOutput())
			}
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
			printInventory(env, r)
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
		fmt.Fprintf(env.Stdout, "  \\input{%s}\n", strings.TrimSuffix(r.OutputPath, filepath.Ext(r.OutputPath)))
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d skipped, %d failed\n", succeeded, skipped, failed)
	}

	return failed
}

// printInventory prints the verbose document summary.
func printInventory(env *Environment, r ConversionResult) {
	if r.Inventory == nil {
		return
	}
	fmt.Fprintf(env.Stdout, "  headings=%d links=%d images=%d fences=%d embeds=%d\n",
		len(r.Inventory.Headings),
		len(r.Inventory.Links),
		len(r.Inventory.Images),
		r.Inventory.CodeFences,
		r.Images,
	)
}
