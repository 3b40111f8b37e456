// Package entropy scores strings by Shannon entropy as a secret-likelihood
// heuristic. It is independent of the regex signature catalog: a value can
// trip either heuristic without the other.
package entropy

import (
	"math"
	"strings"
)

const (
	// DefaultThreshold is the entropy above which a value is treated as a
	// likely secret.
	DefaultThreshold = 4.5
	// DefaultMinLength is the shortest value worth scoring; short strings
	// produce noisy entropy estimates.
	DefaultMinLength = 20
)

// benignPrefixes marks values that are high-entropy by construction but
// never sensitive (image digests, CI registry paths, release payloads).
var benignPrefixes = []string{
	"sha256:",
	"registry-ci-",
	"quay.io/openshift-release-dev",
}

// Shannon returns the Shannon entropy of s over its rune-frequency
// distribution. The empty string has zero entropy.
func Shannon(s string) float64 {
	if s == "" {
		return 0.0
	}

	freq := make(map[rune]int)
	total := 0
	for _, r := range s {
		freq[r]++
		total++
	}

	h := 0.0
	n := float64(total)
	for _, count := range freq {
		p := float64(count) / n
		h -= p * math.Log2(p)
	}
	return h
}

// IsHighEntropy reports whether s looks like a secret under the default
// threshold and minimum length.
func IsHighEntropy(s string) bool {
	return IsHighEntropyAt(s, DefaultThreshold, DefaultMinLength)
}

// IsHighEntropyAt is IsHighEntropy with caller-supplied bounds.
func IsHighEntropyAt(s string, threshold float64, minLength int) bool {
	if len(s) < minLength {
		return false
	}
	for _, prefix := range benignPrefixes {
		if strings.HasPrefix(s, prefix) {
			return false
		}
	}
	return Shannon(s) > threshold
}
