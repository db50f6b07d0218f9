package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ironsheep/ocrscan/internal/app"
	"github.com/ironsheep/ocrscan/internal/config"
	"github.com/ironsheep/ocrscan/internal/imaging"
	"github.com/ironsheep/ocrscan/internal/logging"
	"github.com/ironsheep/ocrscan/internal/ocr"
	"github.com/ironsheep/ocrscan/internal/search"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type recognizer interface {
	Scan(ctx context.Context, path string) (string, error)
	Close() error
}

func main() {
	// Handle --version and -h before flag parsing
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("ocrscan %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ocrscan: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	defer log.Sync()
	log.Debug("starting",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("commit", GitCommit))

	rec, err := newRecognizer(cfg, log)
	if err != nil {
		return err
	}
	defer rec.Close()

	scanner := search.NewScanner(rec, search.Options{
		Policy:          cfg.Policy,
		ContinueOnError: cfg.ContinueOnError,
		Workers:         cfg.Workers,
		Logger:          log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, cfg, app.Deps{
		Recognizer: rec,
		Searcher:   scanner,
		Logger:     log,
	})
}

// newRecognizer loads the OCR model once, or once per worker.
func newRecognizer(cfg *config.Config, log *zap.Logger) (recognizer, error) {
	opts := ocr.TesseractOptions{
		Languages:      cfg.LanguageList,
		PageSegMode:    cfg.PageSegMode,
		Level:          cfg.Level,
		TessdataPrefix: cfg.TessdataPrefix,
	}
	if cfg.Preprocess {
		opts.Preprocess = imaging.DefaultPreprocess()
	}

	build := func() (*ocr.Recognizer, error) {
		engine, err := ocr.NewTesseract(opts)
		if err != nil {
			return nil, err
		}
		info := engine.Info()
		log.Debug("OCR engine ready",
			zap.String("backend", info.Backend),
			zap.String("version", info.Version),
			zap.Strings("languages", info.Languages),
			zap.String("level", info.Level))
		return ocr.NewRecognizer(engine, ocr.WithMaxImageBytes(cfg.MaxImageBytes), ocr.WithLogger(log)), nil
	}

	if cfg.Workers > 1 {
		return ocr.NewPool(cfg.Workers, build)
	}
	return build()
}

func printHelp() {
	fmt.Println("ocrscan - find images by the text they contain")
	fmt.Println()
	fmt.Println("Usage: ocrscan [options]")
	fmt.Println()
	fmt.Println("With no options, ocrscan asks whether to search a directory or a single")
	fmt.Println("image and which keyword to look for.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --source prompt|flags|cwd   Where inputs come from (default prompt)")
	fmt.Println("  --dir, -d DIR               Search DIR recursively")
	fmt.Println("  --image, -i FILE            Check a single image")
	fmt.Println("  --keyword, -k TEXT          Keyword to find (case-insensitive)")
	fmt.Println("  --analyze, -a               Print a text analysis of --image")
	fmt.Println("  --sentence N                Sentence to tag in the analysis")
	fmt.Println("  --plot-dir DIR              Write analysis plots to DIR")
	fmt.Println("  --extensions exact|fold|sniff  How image files are selected")
	fmt.Println("  --workers N                 Images recognized concurrently")
	fmt.Println("  --version, -v               Print version information")
	fmt.Println("  --help, -h                  Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  OCRSCAN_LOG_LEVEL=debug         Log level (default warn)")
	fmt.Println("  OCRSCAN_LANGUAGES=eng+deu       Tesseract languages")
	fmt.Println("  OCRSCAN_MAX_IMAGE_SIZE=50MiB    Skip larger images")
	fmt.Println("  OCRSCAN_EXTENSION_POLICY=exact  File selection policy")
	fmt.Println()
	fmt.Println("Flags take precedence over environment variables.")
}
