package primemap

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestMakeDefaultHashFunc(t *testing.T) {
	f := MakeDefaultHashFunc()

	require.Equal(t, f("foo"), f("foo"))
}

func TestHashXX(t *testing.T) {
	require.Equal(t, xxhash.Sum64String("foo"), HashXX("foo"))
}

func TestHashSum_HashWeighted(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		wantSum      uint64
		wantWeighted uint64
	}{
		{
			name:         "Empty key",
			key:          "",
			wantSum:      0,
			wantWeighted: 0,
		},
		{
			name:         "Single byte",
			key:          "a",
			wantSum:      97,
			wantWeighted: 97,
		},
		{
			name:         "Two bytes",
			key:          "ab",
			wantSum:      97 + 98,
			wantWeighted: 97 + 2*98,
		},
		{
			name:         "Anagram",
			key:          "ba",
			wantSum:      98 + 97,
			wantWeighted: 98 + 2*97,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantSum, HashSum(tt.key))
			require.Equal(t, tt.wantWeighted, HashWeighted(tt.key))
		})
	}
}
