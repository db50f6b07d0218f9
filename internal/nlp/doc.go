// Package nlp provides the text statistics and corpus exploration used on
// recognized text.
//
// Tokenization, sentence segmentation, part-of-speech tagging and entity
// extraction come from prose. Stemming is Porter's algorithm. Everything
// else is counting:
//
//   - FreqDist: insertion-ordered frequency distribution with MostCommon and Hapaxes
//   - Features/RemoveStopwords: alphabetic, lower-cased, stop-word-free tokens
//   - Text: concordance, dispersion, collocations, common contexts, similar words
//   - SelectSentence: 1-based access with an out-of-range message
//   - Chunk: named entities grouped into a bracketed Tree
//
// # Ordering
//
// Every ranked list is deterministic. Ties keep first-seen order, except
// Collocations where equal scores are ordered alphabetically.
//
// # Case
//
// Count and Dispersion are case-sensitive. Concordance, CommonContexts and
// Similar compare lower-cased words.
package nlp
