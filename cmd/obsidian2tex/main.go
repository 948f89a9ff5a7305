package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args))
}

// run parses flags, wires the environment, and drives the conversion.
// Separated from main so deferred cleanup runs before os.Exit.
func run(args []string) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitUsage
	}

	if flags.showVersion {
		fmt.Println("obsidian2tex " + Version)
		return ExitSuccess
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	env := DefaultEnv()
	if flags.logFile != "" {
		closeLog, err := env.openLogFile(flags.logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
			return ExitIO
		}
		defer closeLog() //nolint:errcheck // best-effort close on exit
	}

	if err := runConvert(context.Background(), positional, flags, env); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
