package search

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TextRecognizer extracts the text of one image file.
type TextRecognizer interface {
	Scan(ctx context.Context, path string) (string, error)
}

// Options configures a Scanner. The zero value is the sequential,
// case-sensitive-extension behavior.
type Options struct {
	Policy ExtensionPolicy

	// Extensions overrides DefaultExtensions for PolicyExact and PolicyFold.
	Extensions []string

	// ContinueOnError logs recognition failures and skips the file instead
	// of aborting the search.
	ContinueOnError bool

	// Workers > 1 recognizes files concurrently. The recognizer must then be
	// safe for concurrent use (ocr.Pool is).
	Workers int

	Logger *zap.Logger
}

// Scanner finds images under a directory whose recognized text contains a keyword.
type Scanner struct {
	rec  TextRecognizer
	opts Options
	log  *zap.Logger
}

// NewScanner creates a Scanner using rec for every accepted file.
func NewScanner(rec TextRecognizer, opts Options) *Scanner {
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{rec: rec, opts: opts, log: log}
}

// Match reports whether keyword occurs in text, ignoring case.
// The empty keyword matches any text.
func Match(text, keyword string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(keyword))
}

// Accept reports whether path would be recognized during a search.
func (s *Scanner) Accept(path string) (bool, error) {
	return s.opts.Policy.Accept(path, s.opts.Extensions)
}

// Search walks root recursively, top-down, and returns the paths of accepted
// files whose text contains keyword, in traversal order. Within a directory
// its files come before the contents of its subdirectories.
//
// Every accepted file is recognized, even after earlier matches. Returned
// paths are root joined with the path relative to it. Subdirectories that
// cannot be read are skipped; a missing or unreadable root is an error.
func (s *Scanner) Search(ctx context.Context, root, keyword string) ([]string, error) {
	if s.opts.Workers > 1 {
		return s.searchParallel(ctx, root, keyword)
	}

	var matches []string
	err := s.walk(ctx, root, func(path string) error {
		text, err := s.rec.Scan(ctx, path)
		if err != nil {
			return s.recognitionFailed(path, err)
		}
		if Match(text, keyword) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// Candidates lists the files under root that the policy accepts.
func (s *Scanner) Candidates(ctx context.Context, root string) ([]string, error) {
	var paths []string
	err := s.walk(ctx, root, func(path string) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func (s *Scanner) searchParallel(ctx context.Context, root, keyword string) ([]string, error) {
	paths, err := s.Candidates(ctx, root)
	if err != nil {
		return nil, err
	}

	matched := make([]bool, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			text, err := s.rec.Scan(gctx, path)
			if err != nil {
				return s.recognitionFailed(path, err)
			}
			matched[i] = Match(text, keyword)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var matches []string
	for i, path := range paths {
		if matched[i] {
			matches = append(matches, path)
		}
	}
	return matches, nil
}

func (s *Scanner) recognitionFailed(path string, err error) error {
	if s.opts.ContinueOnError {
		s.log.Warn("skipping image", zap.String("path", path), zap.Error(err))
		return nil
	}
	return fmt.Errorf("failed to scan %s: %w", path, err)
}

// walk visits accepted files top-down: a directory's own files in name
// order first, then each subdirectory in name order. Symlinked directories
// are neither visited nor followed.
func (s *Scanner) walk(ctx context.Context, root string, visit func(path string) error) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", root, err)
	}
	return s.walkDir(ctx, root, entries, visit)
}

func (s *Scanner) walkDir(ctx context.Context, dir string, entries []fs.DirEntry, visit func(path string) error) error {
	var subdirs []string
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(dir, e.Name())
		if isDir(path, e) {
			if e.Type()&fs.ModeSymlink == 0 {
				subdirs = append(subdirs, path)
			}
			continue
		}

		ok, err := s.Accept(path)
		if err != nil {
			if err := s.recognitionFailed(path, err); err != nil {
				return err
			}
			continue
		}
		if !ok {
			continue
		}
		if err := visit(path); err != nil {
			return err
		}
	}

	for _, sub := range subdirs {
		entries, err := os.ReadDir(sub)
		if err != nil {
			s.log.Debug("skipping unreadable directory", zap.String("path", sub), zap.Error(err))
			continue
		}
		if err := s.walkDir(ctx, sub, entries, visit); err != nil {
			return err
		}
	}
	return nil
}

// isDir reports whether e is a directory or a symlink whose target is one.
func isDir(path string, e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
