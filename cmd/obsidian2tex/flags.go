package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across the tool.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for a conversion run.
type convertFlags struct {
	common      commonFlags
	output      string
	figuresDir  string
	noFigures   bool
	levelAdjust int
	imageWidth  string
	indentWidth int
	overwrite   string
	workers     int
	logFile     string
	showVersion bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show document summary and timing")
}

// addConvertFlags adds conversion flags to a FlagSet.
func addConvertFlags(fs *flag.FlagSet, f *convertFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output .tex file or directory")
	fs.StringVarP(&f.figuresDir, "figures", "f", "", "figures directory (default: figures)")
	fs.BoolVar(&f.noFigures, "no-figures", false, "skip copying images into the figures directory")
	fs.IntVarP(&f.levelAdjust, "level-adjust", "l", 0, "adjust header levels by this amount")
	fs.StringVar(&f.imageWidth, "image-width", "", `default figure width (default: 0.8\textwidth)`)
	fs.IntVar(&f.indentWidth, "indent-width", 0, "spaces per list nesting level (default: 2)")
	fs.StringVar(&f.overwrite, "overwrite", "", "existing file policy: overwrite, backup, skip")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for directory input (0 = auto)")
	fs.StringVar(&f.logFile, "log-file", "", "append a conversion log to this file")
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("obsidian2tex", flag.ContinueOnError)
	f := &convertFlags{}

	addCommonFlags(fs, &f.common)
	addConvertFlags(fs, f)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
