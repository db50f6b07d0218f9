package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/ocrscan/internal/config"
	"github.com/ironsheep/ocrscan/internal/nlp"
)

type fakeRecognizer struct {
	texts map[string]string
	err   error
}

func (f *fakeRecognizer) Scan(ctx context.Context, path string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.texts[path], nil
}

type fakeSearcher struct {
	matches []string
	err     error
	root    string
	keyword string
}

func (f *fakeSearcher) Search(ctx context.Context, root, keyword string) ([]string, error) {
	f.root, f.keyword = root, keyword
	return f.matches, f.err
}

func testConfig(t *testing.T, args ...string) *config.Config {
	t.Helper()
	cfg, err := config.Load(args)
	if err != nil {
		t.Fatalf("config.Load failed: %v", err)
	}
	return cfg
}

func run(t *testing.T, cfg *config.Config, input string, rec *fakeRecognizer, s *fakeSearcher) (string, error) {
	t.Helper()
	var out bytes.Buffer
	if rec == nil {
		rec = &fakeRecognizer{}
	}
	if s == nil {
		s = &fakeSearcher{}
	}
	err := Run(context.Background(), cfg, Deps{
		Recognizer: rec,
		Searcher:   s,
		In:         strings.NewReader(input),
		Out:        &out,
		Getwd:      func() (string, error) { return "/work", nil },
	})
	return out.String(), err
}

func TestRun_PromptDirectory(t *testing.T) {
	s := &fakeSearcher{matches: []string{"/data/a.png", "/data/sub/c.jpg"}}

	out, err := run(t, testConfig(t), "yes\n/data\napple\n", nil, s)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := "Do you want to search in a directory (yes/no)? " +
		"Enter the directory path containing the images: " +
		"Enter the keyword text you are looking for: " +
		"Images that contain the keyword:\n/data/a.png\n/data/sub/c.jpg\n"
	if out != want {
		t.Errorf("output:\n%q\nwant:\n%q", out, want)
	}
	if s.root != "/data" || s.keyword != "apple" {
		t.Errorf("Search(%q, %q)", s.root, s.keyword)
	}
}

func TestRun_PromptYesIsCaseInsensitive(t *testing.T) {
	s := &fakeSearcher{}
	if _, err := run(t, testConfig(t), "YES\r\n/data\r\nx\r\n", nil, s); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if s.root != "/data" {
		t.Errorf("directory mode expected, root = %q", s.root)
	}
}

func TestRun_PromptImage(t *testing.T) {
	rec := &fakeRecognizer{texts: map[string]string{"/img/a.png": "an apple a day"}}

	out, err := run(t, testConfig(t), "no\n/img/a.png\nAPPLE\n", rec, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out, "Enter the image path to scan: ") {
		t.Errorf("image path prompt missing: %q", out)
	}
	if !strings.HasSuffix(out, "Keyword detected in the image\nDetected text: an apple a day\n") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestRun_ImageNotDetected(t *testing.T) {
	rec := &fakeRecognizer{texts: map[string]string{"b.jpg": "the quick brown fox"}}

	out, err := run(t, testConfig(t, "--image", "b.jpg", "-k", "apple"), "", rec, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out != "Keyword not detected in the image\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRun_CwdNoMatches(t *testing.T) {
	s := &fakeSearcher{}

	out, err := run(t, testConfig(t, "--source", "cwd"), "wisdom\n", nil, s)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := "Enter the keyword text you are looking for: No images containing the keyword were found.\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if s.root != "/work" {
		t.Errorf("root = %q, want working directory", s.root)
	}
}

func TestRun_FlagsNoPrompts(t *testing.T) {
	s := &fakeSearcher{matches: []string{"/data/a.png"}}
	cfg := testConfig(t, "--source", "flags", "--dir", "/data", "--keyword", "apple")

	out, err := run(t, cfg, "", nil, s)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out != "Images that contain the keyword:\n/data/a.png\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRun_FlagsWithoutTarget(t *testing.T) {
	_, err := run(t, testConfig(t, "--source", "flags"), "", nil, nil)
	if !errors.Is(err, ErrNoTarget) {
		t.Errorf("expected ErrNoTarget, got %v", err)
	}
}

func TestRun_EndOfInput(t *testing.T) {
	_, err := run(t, testConfig(t), "yes\n", nil, nil)
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput, got %v", err)
	}
}

func TestRun_SearchError(t *testing.T) {
	boom := errors.New("walk failed")
	cfg := testConfig(t, "--dir", "/data", "-k", "x")

	if _, err := run(t, cfg, "", nil, &fakeSearcher{err: boom}); !errors.Is(err, boom) {
		t.Errorf("expected search error, got %v", err)
	}
}

const sample = "It was the best of times, it was the worst of times. " +
	"It was the age of wisdom, it was the age of foolishness."

func TestRun_AnalyzeSentenceOutOfRange(t *testing.T) {
	rec := &fakeRecognizer{texts: map[string]string{"page.png": sample}}
	cfg := testConfig(t, "--analyze", "--image", "page.png", "--sentence", "3")

	out, err := run(t, cfg, "", rec, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for _, want := range []string{
		"Most common words:",
		"Occurrences of \"it\": 2",
		"Displaying 4 of 4 matches:",
		"Sentences: 2",
		"That number is out of range. The text only has 2 sentences.\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_AnalyzePromptedSentence(t *testing.T) {
	rec := &fakeRecognizer{texts: map[string]string{"page.png": sample}}
	cfg := testConfig(t, "--analyze", "--image", "page.png")

	out, err := run(t, cfg, " 2 \n", rec, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out, "Enter the number of the sentence you wish to access: ") {
		t.Errorf("sentence prompt missing")
	}
	if !strings.Contains(out, "It was the age of wisdom, it was the age of foolishness.\n") {
		t.Errorf("selected sentence missing:\n%s", out)
	}
	if !strings.Contains(out, "Part-of-speech tags:") || !strings.Contains(out, "(S ") {
		t.Errorf("tagging output missing:\n%s", out)
	}
}

func TestRun_AnalyzeInvalidSentence(t *testing.T) {
	rec := &fakeRecognizer{texts: map[string]string{"page.png": sample}}
	cfg := testConfig(t, "--analyze", "--image", "page.png")

	if _, err := run(t, cfg, "two\n", rec, nil); err == nil {
		t.Error("non-numeric sentence should fail")
	}
}

func TestRun_AnalyzePlots(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	rec := &fakeRecognizer{texts: map[string]string{"page.png": sample}}
	cfg := testConfig(t, "--analyze", "--image", "page.png", "--sentence", "1", "--plot-dir", dir)

	out, err := run(t, cfg, "", rec, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for _, name := range []string{"frequencies.png", "word_lengths.png", "dispersion.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
		if !strings.Contains(out, "Saved plot: "+filepath.Join(dir, name)) {
			t.Errorf("output does not mention %s", name)
		}
	}
}

func TestBarPlots_TopBinsOnly(t *testing.T) {
	var words []string
	for n := 1; n <= 12; n++ {
		words = append(words, strings.Repeat("x", n))
	}
	lengths := nlp.LengthDist(words)
	a := &nlp.Analysis{LengthDist: lengths, TopLengths: lengths.MostCommon(10)}

	for _, bp := range barPlots(a) {
		if bp.name != "word_lengths.png" {
			continue
		}
		if len(bp.counts) != 10 {
			t.Errorf("word length plot has %d bins, want 10 of %d", len(bp.counts), lengths.B())
		}
		return
	}
	t.Error("no word length plot")
}

func TestRun_AnalyzeRecognizerError(t *testing.T) {
	boom := errors.New("no engine")
	cfg := testConfig(t, "--analyze", "--image", "page.png")

	if _, err := run(t, cfg, "", &fakeRecognizer{err: boom}, nil); !errors.Is(err, boom) {
		t.Errorf("expected recognizer error, got %v", err)
	}
}

func TestWrap(t *testing.T) {
	if got := wrap([]string{"new york", "old town"}, "; "); got != "new york; old town" {
		t.Errorf("wrap() = %q", got)
	}
	long := strings.Fields(strings.Repeat("abcdefghij ", 10))
	for _, line := range strings.Split(wrap(long, " "), "\n") {
		if len(line) > wrapWidth {
			t.Errorf("line longer than %d: %q", wrapWidth, line)
		}
	}
	if wrap(nil, " ") != "" {
		t.Error("wrap(nil) should be empty")
	}
}
