package entropy

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShannon(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "empty string", input: "", want: 0.0},
		{name: "single character", input: "a", want: 0.0},
		{name: "repeated character", input: strings.Repeat("x", 64), want: 0.0},
		{name: "two characters uniform", input: "abababab", want: 1.0},
		{name: "four characters uniform", input: "abcdabcd", want: 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Shannon(tt.input), 1e-9)
		})
	}
}

func TestShannon_MaximizedByDistinctRunes(t *testing.T) {
	// n distinct runes used once each give log2(n) bits, the maximum for
	// a string of that length.
	uniform := "abcdefghijklmnop"
	assert.InDelta(t, 4.0, Shannon(uniform), 1e-9)

	skewed := "aaaaaaaaaaaabcde"
	assert.Less(t, Shannon(skewed), Shannon(uniform))
}

func TestShannon_NonNegative(t *testing.T) {
	for _, s := range []string{"", "a", "hello world", "AKIA1234567890ABCDEF"} {
		assert.GreaterOrEqual(t, Shannon(s), 0.0)
		assert.False(t, math.IsNaN(Shannon(s)))
	}
}

func TestIsHighEntropy_ShortStringsRejected(t *testing.T) {
	// Even a maximally random short string is below the minimum length.
	assert.False(t, IsHighEntropy("aB3$xY7!qW9@"))
	assert.False(t, IsHighEntropy(""))
}

func TestIsHighEntropy_BenignPrefixes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "image digest", input: "sha256:a3f8b2c9d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a9b0c1d2e3f4a5b6c7d8e9f0a1"},
		{name: "ci registry", input: "registry-ci-Kj8mNp2qRs4tUv6wXy0zAb1cDe3fGh5i"},
		{name: "release payload", input: "quay.io/openshift-release-dev/ocp-release@sha256:9f2e8d7c6b5a4f3e2d1c0b9a8f7e6d5c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IsHighEntropy(tt.input))
		})
	}
}

func TestIsHighEntropy_Threshold(t *testing.T) {
	// Long but uniform: entropy 0, never flagged.
	assert.False(t, IsHighEntropy(strings.Repeat("a", 40)))

	// Mixed-case alphanumeric with symbols clears 4.5 bits.
	secret := "kH9$mP2@qR5!tU8#wX1%zA4&cD7*fG0(jK3)nQ6-"
	assert.True(t, IsHighEntropy(secret))
}

func TestIsHighEntropyAt(t *testing.T) {
	s := "abcdefghij"
	// Entropy is ~3.32; flagged only once the threshold drops below it
	// and the length gate admits the string.
	assert.False(t, IsHighEntropyAt(s, 3.0, 20))
	assert.True(t, IsHighEntropyAt(s, 3.0, 10))
	assert.False(t, IsHighEntropyAt(s, 4.0, 10))
}
