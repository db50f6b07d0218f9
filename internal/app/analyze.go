package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ironsheep/ocrscan/internal/chart"
	"github.com/ironsheep/ocrscan/internal/config"
	"github.com/ironsheep/ocrscan/internal/nlp"
)

func analysisOptions(cfg *config.Config) nlp.AnalysisOptions {
	opts := nlp.DefaultAnalysisOptions()
	if cfg.Top > 0 {
		opts.Top = cfg.Top
	}
	if cfg.Word != "" {
		opts.Word = cfg.Word
	}
	if len(cfg.DispersionWords) > 0 {
		opts.DispersionWords = cfg.DispersionWords
	}
	if cfg.ContextWord != "" {
		opts.ContextWord = cfg.ContextWord
	}
	if cfg.Collocations > 0 {
		opts.Collocations = cfg.Collocations
	}
	if cfg.Window >= 2 {
		opts.Window = cfg.Window
	}
	return opts
}

func runAnalyze(ctx context.Context, cfg *config.Config, req request, p *prompter, deps Deps) error {
	text, err := deps.Recognizer.Scan(ctx, req.path)
	if err != nil {
		return err
	}

	opts := analysisOptions(cfg)
	a, err := nlp.Analyze(text, opts)
	if err != nil {
		return err
	}
	if err := writeReport(deps.Out, a, opts); err != nil {
		return err
	}

	if cfg.PlotDir != "" {
		if err := writePlots(cfg.PlotDir, a, opts, deps); err != nil {
			return err
		}
	}

	index := cfg.Sentence
	if index == 0 {
		answer, err := p.ask("Enter the number of the sentence you wish to access: ")
		if err != nil {
			return err
		}
		index, err = strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			return fmt.Errorf("invalid sentence number %q: %w", answer, err)
		}
	}

	sentence, err := nlp.SelectSentence(a.Sentences, index)
	var rangeErr *nlp.OutOfRangeError
	if errors.As(err, &rangeErr) {
		_, err := fmt.Fprintln(deps.Out, rangeErr.Error())
		return err
	}
	if err != nil {
		return err
	}

	tagged, err := nlp.Tag(sentence)
	if err != nil {
		return err
	}
	tree, err := nlp.NamedEntities(sentence)
	if err != nil {
		return err
	}
	return writeSentence(deps.Out, sentence, tagged, tree)
}

func writePlots(dir string, a *nlp.Analysis, opts nlp.AnalysisOptions, deps Deps) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create plot directory: %w", err)
	}

	save := func(name string, build func() (*image.RGBA, error)) error {
		img, err := build()
		if errors.Is(err, chart.ErrNoData) {
			deps.Logger.Info("skipping empty plot", zap.String("plot", name))
			return nil
		}
		if err != nil {
			return err
		}
		path := filepath.Join(dir, name)
		if err := chart.Save(img, path); err != nil {
			return err
		}
		_, err = fmt.Fprintf(deps.Out, "Saved plot: %s\n", path)
		return err
	}

	for _, bp := range barPlots(a) {
		if err := save(bp.name, func() (*image.RGBA, error) {
			labels, values := split(bp.counts)
			return chart.FrequencyPlot(labels, values, bp.title, chart.DefaultStyle)
		}); err != nil {
			return err
		}
	}
	return save("dispersion.png", func() (*image.RGBA, error) {
		return chart.DispersionPlot(opts.DispersionWords, a.Dispersion, a.Text.Len(), chart.DefaultStyle)
	})
}

type barPlot struct {
	name   string
	title  string
	counts []nlp.Count
}

// barPlots lists the frequency charts; each shows only the top bins.
func barPlots(a *nlp.Analysis) []barPlot {
	return []barPlot{
		{"frequencies.png", "Most common words", a.TopFeatures},
		{"word_lengths.png", "Word lengths", a.TopLengths},
	}
}

func split(counts []nlp.Count) ([]string, []int) {
	labels := make([]string, len(counts))
	values := make([]int, len(counts))
	for i, c := range counts {
		labels[i], values[i] = c.Sample, c.N
	}
	return labels, values
}
