package nlp

import "sort"

// Count is a sample with its number of occurrences.
type Count struct {
	Sample string
	N      int
}

// FreqDist counts samples and remembers the order they were first seen.
// Ties in MostCommon keep that order.
type FreqDist struct {
	counts map[string]int
	order  []string
	total  int
}

// NewFreqDist counts the given samples.
func NewFreqDist(samples ...string) *FreqDist {
	fd := &FreqDist{counts: make(map[string]int)}
	for _, s := range samples {
		fd.Add(s)
	}
	return fd
}

// Add records one occurrence of sample.
func (fd *FreqDist) Add(sample string) {
	fd.AddN(sample, 1)
}

// AddN records n occurrences of sample.
func (fd *FreqDist) AddN(sample string, n int) {
	if _, seen := fd.counts[sample]; !seen {
		fd.order = append(fd.order, sample)
	}
	fd.counts[sample] += n
	fd.total += n
}

// Count returns the occurrences of sample, zero if unseen.
func (fd *FreqDist) Count(sample string) int { return fd.counts[sample] }

// N returns the total number of outcomes recorded.
func (fd *FreqDist) N() int { return fd.total }

// B returns the number of distinct samples.
func (fd *FreqDist) B() int { return len(fd.order) }

// Samples returns the distinct samples in first-seen order.
func (fd *FreqDist) Samples() []string {
	return append([]string(nil), fd.order...)
}

// MostCommon returns the n most frequent samples, or all when n <= 0.
func (fd *FreqDist) MostCommon(n int) []Count {
	out := make([]Count, len(fd.order))
	for i, s := range fd.order {
		out[i] = Count{Sample: s, N: fd.counts[s]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].N > out[j].N })
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Hapaxes returns the samples seen exactly once, in first-seen order.
func (fd *FreqDist) Hapaxes() []string {
	var out []string
	for _, s := range fd.order {
		if fd.counts[s] == 1 {
			out = append(out, s)
		}
	}
	return out
}
