package nlp

import (
	"math"
	"sort"
)

// Bigram is a scored word pair.
type Bigram struct {
	First  string
	Second string
	Score  float64
}

func (b Bigram) String() string { return b.First + " " + b.Second }

const smallProb = 1e-20

// Collocations finds word pairs that co-occur within window tokens of each
// other more often than chance. Pairs seen fewer than twice and pairs
// containing a word shorter than three letters or a stop word are ignored.
// Pairs are ranked by Dunning's log-likelihood ratio, highest first, with
// ties broken alphabetically. window < 2 is treated as 2.
func (t *Text) Collocations(num, window int, stop Set) []Bigram {
	if window < 2 {
		window = 2
	}

	words := NewFreqDist()
	type pair struct{ a, b string }
	pairs := make(map[pair]int)
	var pairOrder []pair

	for i, w1 := range t.tokens {
		words.Add(w1)
		for j := i + 1; j < i+window && j < len(t.tokens); j++ {
			p := pair{w1, t.tokens[j]}
			if _, ok := pairs[p]; !ok {
				pairOrder = append(pairOrder, p)
			}
			pairs[p]++
		}
	}

	ignored := func(w string) bool {
		return len([]rune(w)) < 3 || stop.Contains(w)
	}

	nAll := float64(words.N())
	var scored []Bigram
	for _, p := range pairOrder {
		if pairs[p] < 2 || ignored(p.a) || ignored(p.b) {
			continue
		}
		nii := float64(pairs[p]) / float64(window-1)
		scored = append(scored, Bigram{
			First:  p.a,
			Second: p.b,
			Score:  likelihoodRatio(nii, float64(words.Count(p.a)), float64(words.Count(p.b)), nAll),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].First != scored[j].First {
			return scored[i].First < scored[j].First
		}
		return scored[i].Second < scored[j].Second
	})
	if num > 0 && num < len(scored) {
		scored = scored[:num]
	}
	return scored
}

// likelihoodRatio scores a bigram from its 2x2 contingency table.
func likelihoodRatio(nii, nix, nxi, nxx float64) float64 {
	noi := nxi - nii
	nio := nix - nii
	cont := [4]float64{nii, noi, nio, nxx - nii - noi - nio}

	total := cont[0] + cont[1] + cont[2] + cont[3]
	sum := 0.0
	for i := 0; i < 4; i++ {
		expected := (cont[i] + cont[i^1]) * (cont[i] + cont[i^2]) / total
		sum += cont[i] * math.Log(cont[i]/(expected+smallProb)+smallProb)
	}
	return 2 * sum
}
