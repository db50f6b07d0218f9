package nlp

import "fmt"

// OutOfRangeError reports a sentence number beyond the text.
type OutOfRangeError struct {
	Index int
	Count int
}

func (e *OutOfRangeError) Error() string {
	if e.Count == 1 {
		return "That number is out of range. The text only has 1 sentence."
	}
	return fmt.Sprintf("That number is out of range. The text only has %d sentences.", e.Count)
}

// SelectSentence returns the sentence at the 1-based index.
// Indexes below 1 or above len(sentences) yield *OutOfRangeError.
func SelectSentence(sentences []string, index int) (string, error) {
	if index < 1 || index > len(sentences) {
		return "", &OutOfRangeError{Index: index, Count: len(sentences)}
	}
	return sentences[index-1], nil
}
