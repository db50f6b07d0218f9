package nlp

// AnalysisOptions selects the words and sizes used by Analyze.
type AnalysisOptions struct {
	Top             int      // entries in each top-N list
	Word            string   // word counted and shown in context
	DispersionWords []string // words located by offset
	ContextWord     string   // word for common contexts and similar words
	Collocations    int
	Window          int
	Stopwords       Set
}

// DefaultAnalysisOptions mirrors the classic corpus walkthrough.
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		Top:             10,
		Word:            "it",
		DispersionWords: []string{"it", "a", "time"},
		ContextWord:     "wisdom",
		Collocations:    20,
		Window:          4,
	}
}

// Analysis is the full report over one text.
type Analysis struct {
	Tokens   []string
	Features []string // alphabetic, lower-cased, stop words removed

	FeatureDist *FreqDist
	TopFeatures []Count
	Hapaxes     []string
	TopBigrams  []Count
	LengthDist  *FreqDist
	TopLengths  []Count
	TopStems    []Count

	Text              *Text
	WordCount         int
	Concordance       []ConcordanceLine
	ConcordanceTotal  int
	Dispersion        map[string][]int
	Collocations      []Bigram
	CommonContexts    []Context
	CommonContextsErr error
	Similar           []string

	Sentences []string
}

// Analyze runs the whole pipeline over text.
func Analyze(text string, opts AnalysisOptions) (*Analysis, error) {
	if opts.Top <= 0 {
		opts.Top = 10
	}
	if opts.Stopwords == nil {
		opts.Stopwords = EnglishStopwords()
	}

	doc, err := NewDocument(text)
	if err != nil {
		return nil, err
	}

	a := &Analysis{Tokens: doc.Tokens(), Sentences: doc.Sentences()}
	a.Features = RemoveStopwords(Features(a.Tokens), opts.Stopwords)

	a.FeatureDist = NewFreqDist(a.Features...)
	a.TopFeatures = a.FeatureDist.MostCommon(opts.Top)
	a.Hapaxes = a.FeatureDist.Hapaxes()
	a.TopBigrams = NewFreqDist(Bigrams(a.Features)...).MostCommon(opts.Top)
	a.LengthDist = LengthDist(a.Features)
	a.TopLengths = a.LengthDist.MostCommon(opts.Top)
	a.TopStems = NewFreqDist(Stems(a.Features)...).MostCommon(opts.Top)

	a.Text = NewText(a.Tokens)
	a.WordCount = a.Text.Count(opts.Word)
	a.Concordance, a.ConcordanceTotal = a.Text.Concordance(opts.Word, 79, 25)
	a.Dispersion = a.Text.Dispersion(opts.DispersionWords)
	a.Collocations = a.Text.Collocations(opts.Collocations, opts.Window, opts.Stopwords)
	a.CommonContexts, a.CommonContextsErr = a.Text.CommonContexts([]string{opts.ContextWord}, 20)
	a.Similar = a.Text.Similar(opts.ContextWord, 20)

	return a, nil
}
