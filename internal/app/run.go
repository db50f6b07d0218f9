// Package app wires recognition, search and text analysis into the
// command's interactive and non-interactive flows.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ironsheep/ocrscan/internal/config"
	"github.com/ironsheep/ocrscan/internal/search"
)

// ErrNoTarget is returned when neither a directory nor an image is known
// and the source cannot ask for one.
var ErrNoTarget = errors.New("--dir or --image is required with --source flags")

// Searcher finds images under root whose text contains keyword.
type Searcher interface {
	Search(ctx context.Context, root, keyword string) ([]string, error)
}

// Deps are the collaborators Run uses. Nil readers and writers default to
// the process's standard streams.
type Deps struct {
	Recognizer search.TextRecognizer
	Searcher   Searcher
	In         io.Reader
	Out        io.Writer
	Getwd      func() (string, error)
	Logger     *zap.Logger
}

func (d *Deps) setDefaults() {
	if d.In == nil {
		d.In = os.Stdin
	}
	if d.Out == nil {
		d.Out = os.Stdout
	}
	if d.Getwd == nil {
		d.Getwd = os.Getwd
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
}

type mode int

const (
	modeDirectory mode = iota
	modeImage
	modeAnalyze
)

type request struct {
	mode    mode
	path    string
	keyword string
}

// Run executes one command: a directory search, a single-image check or a
// text analysis, asking for whatever the configuration leaves open.
func Run(ctx context.Context, cfg *config.Config, deps Deps) error {
	deps.setDefaults()
	p := newPrompter(deps.In, deps.Out)

	req, err := resolve(cfg, p, deps.Getwd)
	if err != nil {
		return err
	}
	deps.Logger.Debug("resolved request",
		zap.String("source", cfg.Source),
		zap.Int("mode", int(req.mode)),
		zap.String("path", req.path))

	switch req.mode {
	case modeDirectory:
		return runDirectory(ctx, cfg, req, deps)
	case modeImage:
		return runImage(ctx, req, deps)
	default:
		return runAnalyze(ctx, cfg, req, p, deps)
	}
}

func resolve(cfg *config.Config, p *prompter, getwd func() (string, error)) (request, error) {
	req := request{keyword: cfg.Keyword}

	switch {
	case cfg.Analyze:
		req.mode, req.path = modeAnalyze, cfg.Image
	case cfg.Directory != "":
		req.mode, req.path = modeDirectory, cfg.Directory
	case cfg.Image != "":
		req.mode, req.path = modeImage, cfg.Image
	case cfg.Source == config.SourceCwd:
		dir, err := getwd()
		if err != nil {
			return req, fmt.Errorf("failed to get working directory: %w", err)
		}
		req.mode, req.path = modeDirectory, dir
	case cfg.Source == config.SourceFlags:
		return req, ErrNoTarget
	default:
		answer, err := p.ask("Do you want to search in a directory (yes/no)? ")
		if err != nil {
			return req, err
		}
		if strings.ToLower(answer) == "yes" {
			req.mode = modeDirectory
		} else {
			req.mode = modeImage
		}
	}

	if req.path == "" {
		question := "Enter the image path to scan: "
		if req.mode == modeDirectory {
			question = "Enter the directory path containing the images: "
		}
		path, err := p.ask(question)
		if err != nil {
			return req, err
		}
		req.path = path
	}

	if req.mode != modeAnalyze && req.keyword == "" {
		keyword, err := p.ask("Enter the keyword text you are looking for: ")
		if err != nil {
			return req, err
		}
		req.keyword = keyword
	}
	return req, nil
}

func runDirectory(ctx context.Context, cfg *config.Config, req request, deps Deps) error {
	matches, err := deps.Searcher.Search(ctx, req.path, req.keyword)
	if err != nil {
		return err
	}

	if len(matches) == 0 && cfg.Source == config.SourceCwd {
		_, err := fmt.Fprintln(deps.Out, "No images containing the keyword were found.")
		return err
	}

	if _, err := fmt.Fprintln(deps.Out, "Images that contain the keyword:"); err != nil {
		return err
	}
	for _, m := range matches {
		if _, err := fmt.Fprintln(deps.Out, m); err != nil {
			return err
		}
	}
	return nil
}

func runImage(ctx context.Context, req request, deps Deps) error {
	text, err := deps.Recognizer.Scan(ctx, req.path)
	if err != nil {
		return err
	}

	if !search.Match(text, req.keyword) {
		_, err := fmt.Fprintln(deps.Out, "Keyword not detected in the image")
		return err
	}
	_, err = fmt.Fprintf(deps.Out, "Keyword detected in the image\nDetected text: %s\n", text)
	return err
}
