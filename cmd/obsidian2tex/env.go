package main

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger // conversion log (discarded unless --log-file is set)
}

// DefaultEnv returns a production environment with logging disabled.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// openLogFile attaches a text-format slog logger appending to path.
// Returns a close func for the underlying file.
func (e *Environment) openLogFile(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) // #nosec G302 G304 -- user-chosen log path
	if err != nil {
		return nil, err
	}
	e.Logger = slog.New(slog.NewTextHandler(f, nil))
	return f.Close, nil
}
