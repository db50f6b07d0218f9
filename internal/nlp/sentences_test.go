package nlp

import (
	"errors"
	"testing"
)

func TestSelectSentence(t *testing.T) {
	one := []string{"Only one."}

	got, err := SelectSentence(one, 1)
	if err != nil || got != "Only one." {
		t.Errorf("SelectSentence(1) = %q, %v", got, err)
	}

	tests := []struct {
		name      string
		sentences []string
		index     int
		want      string
	}{
		{"singular", one, 2, "That number is out of range. The text only has 1 sentence."},
		{"plural", []string{"a.", "b."}, 3, "That number is out of range. The text only has 2 sentences."},
		{"empty", nil, 1, "That number is out of range. The text only has 0 sentences."},
		{"zero index", []string{"a.", "b."}, 0, "That number is out of range. The text only has 2 sentences."},
		{"negative index", one, -1, "That number is out of range. The text only has 1 sentence."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SelectSentence(tt.sentences, tt.index)
			var rangeErr *OutOfRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("expected *OutOfRangeError, got %v", err)
			}
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}
