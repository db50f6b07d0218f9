// Package config loads settings from OCRSCAN_* environment variables and
// command-line flags. Flags win over the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"go-simpler.org/env"

	"github.com/ironsheep/ocrscan/internal/ocr"
	"github.com/ironsheep/ocrscan/internal/search"
)

// Input sources for Run.
const (
	SourcePrompt = "prompt"
	SourceFlags  = "flags"
	SourceCwd    = "cwd"
)

// Config is the complete runtime configuration.
type Config struct {
	// Log level (debug, info, warn, error). Default: warn
	LogLevel string `env:"OCRSCAN_LOG_LEVEL" default:"warn"`
	// Tesseract language codes separated by "+". Default: eng
	Languages string `env:"OCRSCAN_LANGUAGES" default:"eng"`
	// Directory holding *.traineddata; empty uses the library default
	TessdataPrefix string `env:"OCRSCAN_TESSDATA_PREFIX"`
	// Fragment granularity: line, word, para or block. Default: line
	DetectionLevel string `env:"OCRSCAN_DETECTION_LEVEL" default:"line"`
	// Tesseract page segmentation mode; 0 keeps the library default
	PageSegMode int `env:"OCRSCAN_PSM" default:"0"`
	// Clean up images (upscale, grayscale, contrast, sharpen) before OCR
	Preprocess bool `env:"OCRSCAN_PREPROCESS" default:"false"`
	// Which files a directory search considers: exact, fold or sniff
	ExtensionPolicy string `env:"OCRSCAN_EXTENSION_POLICY" default:"exact"`
	// Images bigger than this are rejected before OCR
	MaxImageSize  string `env:"OCRSCAN_MAX_IMAGE_SIZE" default:"50MiB"`
	MaxImageBytes uint64
	// Number of images recognized concurrently during a directory search
	Workers int `env:"OCRSCAN_WORKERS" default:"1"`
	// Skip unreadable images instead of aborting the search
	ContinueOnError bool `env:"OCRSCAN_CONTINUE_ON_ERROR" default:"false"`
	// Where analysis plots are written; empty disables plotting
	PlotDir string `env:"OCRSCAN_PLOT_DIR"`

	// Flag-only settings.
	Source          string
	Directory       string
	Image           string
	Keyword         string
	Analyze         bool
	Sentence        int
	Word            string
	DispersionWords []string
	ContextWord     string
	Collocations    int
	Window          int
	Top             int

	LanguageList []string
	Level        ocr.Level
	Policy       search.ExtensionPolicy
}

// FromEnv returns a config populated with defaults and environment values.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("loading config from env: %w", err)
	}
	cfg.Source = SourcePrompt
	cfg.Word = "it"
	cfg.DispersionWords = []string{"it", "a", "time"}
	cfg.ContextWord = "wisdom"
	cfg.Collocations = 20
	cfg.Window = 4
	cfg.Top = 10
	return &cfg, nil
}

// BindFlags registers the command-line flags, using the current values as defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Source, "source", c.Source, "where inputs come from: prompt, flags or cwd")
	fs.StringVarP(&c.Directory, "dir", "d", c.Directory, "directory to search recursively")
	fs.StringVarP(&c.Image, "image", "i", c.Image, "single image to scan")
	fs.StringVarP(&c.Keyword, "keyword", "k", c.Keyword, "text to look for (case-insensitive)")
	fs.BoolVarP(&c.Analyze, "analyze", "a", c.Analyze, "run the text analysis report on --image")
	fs.IntVar(&c.Sentence, "sentence", c.Sentence, "1-based sentence to tag (prompted when 0)")
	fs.StringVar(&c.Word, "word", c.Word, "word to count and show in context")
	fs.StringSliceVar(&c.DispersionWords, "dispersion", c.DispersionWords, "words for the dispersion plot")
	fs.StringVar(&c.ContextWord, "context", c.ContextWord, "word for common contexts and similar words")
	fs.IntVar(&c.Collocations, "collocations", c.Collocations, "number of collocations to report")
	fs.IntVar(&c.Window, "window", c.Window, "collocation window size")
	fs.IntVar(&c.Top, "top", c.Top, "entries in each top-N list")
	fs.StringVar(&c.PlotDir, "plot-dir", c.PlotDir, "write analysis plots to this directory")

	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&c.Languages, "lang", c.Languages, "Tesseract languages, e.g. eng+deu")
	fs.StringVar(&c.TessdataPrefix, "tessdata", c.TessdataPrefix, "directory holding traineddata files")
	fs.StringVar(&c.DetectionLevel, "level", c.DetectionLevel, "fragment level: line, word, para or block")
	fs.IntVar(&c.PageSegMode, "psm", c.PageSegMode, "Tesseract page segmentation mode")
	fs.BoolVar(&c.Preprocess, "preprocess", c.Preprocess, "clean up images before OCR")
	fs.StringVar(&c.ExtensionPolicy, "extensions", c.ExtensionPolicy, "file selection: exact, fold or sniff")
	fs.StringVar(&c.MaxImageSize, "max-image-size", c.MaxImageSize, "reject larger images, e.g. 20MiB")
	fs.IntVar(&c.Workers, "workers", c.Workers, "images recognized concurrently")
	fs.BoolVar(&c.ContinueOnError, "continue-on-error", c.ContinueOnError, "skip images that fail to scan")
}

// Finalize parses derived values and validates the configuration.
func (c *Config) Finalize() error {
	size, err := humanize.ParseBytes(c.MaxImageSize)
	if err != nil {
		return fmt.Errorf("parsing max image size: %w", err)
	}
	c.MaxImageBytes = size

	if c.Level, err = ocr.ParseLevel(c.DetectionLevel); err != nil {
		return err
	}
	if c.Policy, err = search.ParsePolicy(c.ExtensionPolicy); err != nil {
		return err
	}

	c.LanguageList = nil
	for _, l := range strings.Split(c.Languages, "+") {
		if l = strings.TrimSpace(l); l != "" {
			c.LanguageList = append(c.LanguageList, l)
		}
	}

	switch c.Source {
	case SourcePrompt, SourceFlags, SourceCwd:
	default:
		return fmt.Errorf("unknown source %q (want prompt, flags or cwd)", c.Source)
	}
	if c.Directory != "" && c.Image != "" {
		return errors.New("--dir and --image are mutually exclusive")
	}
	if c.Analyze && c.Directory != "" {
		return errors.New("--analyze works on a single --image")
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.Window < 2 {
		return fmt.Errorf("collocation window must be at least 2, got %d", c.Window)
	}
	return nil
}

// Load reads the environment, then parses args over it.
func Load(args []string) (*Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	fs := pflag.NewFlagSet("ocrscan", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}
