package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocumentTypes(t *testing.T) {
	counts := DocumentTypes(testProperties())
	require.Equal(t, []TypeCount{
		{Type: "Deed", Count: 3},
		{Type: "RECONVEYANCE", Count: 1},
		{Type: "TRUST DEED", Count: 1},
		{Type: "WARRANTY DEED", Count: 1},
	}, counts)
}

func TestSuggestTypes(t *testing.T) {
	known := DocumentTypes(testProperties())

	suggestions := SuggestTypes([]string{"deed", "WARANTY DEED", "zzzz"}, known)
	require.Len(t, suggestions, 2)

	require.Equal(t, "WARANTY DEED", suggestions[0].Filter)
	require.Equal(t, "WARRANTY DEED", suggestions[0].Closest)
	require.GreaterOrEqual(t, suggestions[0].Score, suggestThreshold)

	require.Equal(t, "zzzz", suggestions[1].Filter)
	require.Empty(t, suggestions[1].Closest)

	require.Empty(t, SuggestTypes(nil, known))
}
