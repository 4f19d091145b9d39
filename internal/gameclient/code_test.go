package gameclient

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^\d+_[0-9a-f]{8}$`)

func TestGenerateCodeFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateCode()
		require.Regexp(t, codePattern, code)
	}
}

func TestGenerateCodeUniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	// Enough iterations that many codes share a millisecond timestamp.
	for i := 0; i < 5000; i++ {
		code := GenerateCode()
		_, dup := seen[code]
		assert.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}
