package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/ocrscan/internal/imaging"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognized names.
var ErrUnknownPolicy = errors.New("unknown extension policy")

// DefaultExtensions are the suffixes considered images.
var DefaultExtensions = []string{".png", ".jpg", ".jpeg"}

// ExtensionPolicy decides which files in a tree are handed to the recognizer.
type ExtensionPolicy int

const (
	// PolicyExact accepts names ending in one of the extensions, compared
	// case-sensitively. "note.PNG" is skipped.
	PolicyExact ExtensionPolicy = iota
	// PolicyFold compares extensions ignoring case.
	PolicyFold
	// PolicySniff ignores the name and accepts files whose content is an image.
	PolicySniff
)

// ParsePolicy converts "exact", "fold" or "sniff" to a policy.
func ParsePolicy(s string) (ExtensionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exact":
		return PolicyExact, nil
	case "fold":
		return PolicyFold, nil
	case "sniff":
		return PolicySniff, nil
	default:
		return PolicyExact, fmt.Errorf("%w: %q (want exact, fold or sniff)", ErrUnknownPolicy, s)
	}
}

func (p ExtensionPolicy) String() string {
	switch p {
	case PolicyFold:
		return "fold"
	case PolicySniff:
		return "sniff"
	default:
		return "exact"
	}
}

// Accept reports whether the file at path is a candidate under the policy.
// Only PolicySniff reads the file.
func (p ExtensionPolicy) Accept(path string, extensions []string) (bool, error) {
	switch p {
	case PolicySniff:
		return imaging.IsImage(path)
	case PolicyFold:
		lower := strings.ToLower(path)
		for _, ext := range extensions {
			if strings.HasSuffix(lower, strings.ToLower(ext)) {
				return true, nil
			}
		}
		return false, nil
	default:
		for _, ext := range extensions {
			if strings.HasSuffix(path, ext) {
				return true, nil
			}
		}
		return false, nil
	}
}
