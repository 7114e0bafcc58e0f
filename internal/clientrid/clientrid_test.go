package clientrid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Next_IsUniqueAndBoundedLength(t *testing.T) {
	g := New("registrar1")

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := g.Next()
		require.LessOrEqual(t, len(id), maxLength)
		require.True(t, strings.HasPrefix(id, "registrar1:"))
		require.False(t, seen[id], "clTRID %q was generated twice", id)
		seen[id] = true
	}
}

func Test_New_TruncatesLongPrefix(t *testing.T) {
	g := New(strings.Repeat("x", 100))
	require.LessOrEqual(t, len(g.prefix), 32)
}
