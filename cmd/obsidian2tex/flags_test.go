package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		check      func(t *testing.T, f *convertFlags)
		positional []string
	}{
		{
			name: "no flags",
			args: []string{"obsidian2tex", "notes.md"},
			check: func(t *testing.T, f *convertFlags) {
				if f.output != "" || f.levelAdjust != 0 || f.workers != 0 {
					t.Errorf("flags = %+v, want zero values", f)
				}
			},
			positional: []string{"notes.md"},
		},
		{
			name: "long flags",
			args: []string{
				"obsidian2tex",
				"--output", "out/doc.tex",
				"--level-adjust", "1",
				"--figures", "img",
				"--no-figures",
				"--indent-width", "4",
				"--overwrite", "backup",
				"--workers", "8",
				"--log-file", "conv.log",
				"notes.md",
			},
			check: func(t *testing.T, f *convertFlags) {
				if f.output != "out/doc.tex" {
					t.Errorf("output = %q", f.output)
				}
				if f.levelAdjust != 1 {
					t.Errorf("levelAdjust = %d", f.levelAdjust)
				}
				if f.figuresDir != "img" || !f.noFigures {
					t.Errorf("figures = %q noFigures = %v", f.figuresDir, f.noFigures)
				}
				if f.indentWidth != 4 {
					t.Errorf("indentWidth = %d", f.indentWidth)
				}
				if f.overwrite != "backup" {
					t.Errorf("overwrite = %q", f.overwrite)
				}
				if f.workers != 8 {
					t.Errorf("workers = %d", f.workers)
				}
				if f.logFile != "conv.log" {
					t.Errorf("logFile = %q", f.logFile)
				}
			},
			positional: []string{"notes.md"},
		},
		{
			name: "short flags",
			args: []string{"obsidian2tex", "-o", "out", "-l", "-1", "-f", "fig", "-w", "2", "-q", "-v", "in"},
			check: func(t *testing.T, f *convertFlags) {
				if f.output != "out" || f.levelAdjust != -1 || f.figuresDir != "fig" || f.workers != 2 {
					t.Errorf("flags = %+v", f)
				}
				if !f.common.quiet || !f.common.verbose {
					t.Errorf("common = %+v, want quiet and verbose set", f.common)
				}
			},
			positional: []string{"in"},
		},
		{
			name: "config flag",
			args: []string{"obsidian2tex", "-c", "myconfig", "notes.md"},
			check: func(t *testing.T, f *convertFlags) {
				if f.common.config != "myconfig" {
					t.Errorf("config = %q", f.common.config)
				}
			},
			positional: []string{"notes.md"},
		},
		{
			name: "version flag",
			args: []string{"obsidian2tex", "--version"},
			check: func(t *testing.T, f *convertFlags) {
				if !f.showVersion {
					t.Error("showVersion = false, want true")
				}
			},
			positional: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, positional, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			tt.check(t, f)
			if len(positional) != len(tt.positional) {
				t.Fatalf("positional = %v, want %v", positional, tt.positional)
			}
			for i := range positional {
				if positional[i] != tt.positional[i] {
					t.Errorf("positional[%d] = %q, want %q", i, positional[i], tt.positional[i])
				}
			}
		})
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := parseFlags([]string{"obsidian2tex", "--bogus"})
	if err == nil {
		t.Error("parseFlags() error = nil, want unknown-flag error")
	}
}
