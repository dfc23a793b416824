package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"pick/internal/filter"
	"pick/internal/ingest"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Config struct {
	FilePath     string
	UseStdin     bool
	MaxBuffer    int
	MaxLineBytes int
	Theme        Theme
	Mode         filter.Mode
	ShowVersion  bool

	// Internal
	IsPipedStdin bool
}

func Load() (*Config, error) {
	cfg := &Config{}

	// Detect if stdin is piped
	fi, _ := os.Stdin.Stat()
	cfg.IsPipedStdin = (fi.Mode() & os.ModeCharDevice) == 0

	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.FilePath, "file", "", "read lines from a file instead of stdin")
	fs.IntVar(&cfg.MaxBuffer, "max-buffer", 200000, "maximum number of lines kept (min 1000)")
	fs.IntVar(&cfg.MaxLineBytes, "max-line-bytes", 1024*1024, "per-line scanner buffer size")
	theme := string(ThemeDark)
	fs.StringVar(&theme, "theme", string(ThemeDark), "theme: dark|light")
	mode := filter.ModeFuzzy.String()
	fs.StringVar(&mode, "mode", filter.ModeFuzzy.String(), "initial filter mode: fuzzy|regex|expr")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}
	cfg.Theme = Theme(theme)

	m, err := filter.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	cfg.Mode = m

	if cfg.IsPipedStdin && cfg.FilePath == "" {
		cfg.UseStdin = true
	}
	if !cfg.ShowVersion && !cfg.UseStdin && cfg.FilePath == "" {
		return nil, errors.New("no input: pipe lines on stdin or pass -file")
	}

	if cfg.MaxBuffer < 1000 {
		cfg.MaxBuffer = 1000
	}

	return cfg, nil
}

func (c *Config) Source() ingest.SourceKind {
	if c.UseStdin {
		return ingest.SourceStdin
	}
	return ingest.SourceFile
}

func (c *Config) String() string {
	return fmt.Sprintf("file=%s stdin=%v mode=%s theme=%s", c.FilePath, c.UseStdin, c.Mode, c.Theme)
}
