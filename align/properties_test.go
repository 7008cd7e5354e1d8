package align_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/stretchr/testify/require"
)

const (
	// propRounds is the number of random pairs checked per scheme.
	propRounds = 60

	// propMaxLen bounds the random sequence length (0..propMaxLen).
	propMaxLen = 14

	// propAlphabet is the number of distinct symbols (0..propAlphabet-1).
	propAlphabet = 4
)

func randomSeq(rng *rand.Rand) []int {
	s := make([]int, rng.IntN(propMaxLen+1))
	for i := range s {
		s[i] = rng.IntN(propAlphabet)
	}

	return s
}

// TestProperties runs the structural invariants over random pairs and
// several schemes.
func TestProperties(t *testing.T) {
	schemes := map[string]align.ScoringScheme[int]{
		"unit":   unitScheme{match: 1, mismatch: -1, gap: -1},
		"reward": unitScheme{match: 5, mismatch: -4, gap: -2},
		"cheap":  unitScheme{match: 1, mismatch: -3, gap: 0},
		"near":   nearScheme{},
		"skew":   skewScheme{},
	}
	rng := rand.New(rand.NewPCG(1, 2))

	for name, scheme := range schemes {
		for i := 0; i < propRounds; i++ {
			a, b := randomSeq(rng), randomSeq(rng)

			global, err := newIntAligner(align.Global, scheme, a, b)
			require.NoError(t, err)
			gRes, err := global.Alignment()
			require.NoError(t, err)

			local, err := newIntAligner(align.Local, scheme, a, b)
			require.NoError(t, err)
			lRes, err := local.Alignment()
			require.NoError(t, err)

			// full matrix and linear space agree
			for _, al := range []*align.Aligner[int, string]{global, local} {
				al.Reset()
			}
			gScore, err := global.Score()
			require.NoError(t, err)
			lScore, err := local.Score()
			require.NoError(t, err)
			require.Equal(t, gRes.Score, gScore, "%s: global a=%v b=%v", name, a, b)
			require.Equal(t, lRes.Score, lScore, "%s: local a=%v b=%v", name, a, b)

			// local is never negative and never below global
			require.GreaterOrEqual(t, lScore, 0, name)
			require.GreaterOrEqual(t, lScore, gScore, "%s: a=%v b=%v", name, a, b)

			for _, res := range []*align.Alignment[int, string]{gRes, lRes} {
				require.Len(t, res.Gapped2, res.Len())
				require.Len(t, res.Tags, res.Len())
				for k := range res.Gapped1 {
					require.False(t, res.Gapped1[k] == gapInt && res.Gapped2[k] == gapInt,
						"%s: column %d is gap/gap", name, k)
				}
			}

			// global reproduces both inputs, local contiguous substrings
			require.Equal(t, a, stripGaps(gRes.Gapped1), name)
			require.Equal(t, b, stripGaps(gRes.Gapped2), name)
			require.GreaterOrEqual(t, gRes.Len(), max(len(a), len(b)))
			require.True(t, isContiguous(a, stripGaps(lRes.Gapped1)), "%s: a=%v got=%v", name, a, lRes.Gapped1)
			require.True(t, isContiguous(b, stripGaps(lRes.Gapped2)), "%s: b=%v got=%v", name, b, lRes.Gapped2)
		}
	}
}

// TestProperties_SelfAlignment: self-alignment is gap-free and scores the sum
// of self-substitutions whenever gaps are penalized.
func TestProperties_SelfAlignment(t *testing.T) {
	scheme := unitScheme{match: 2, mismatch: -1, gap: -1}
	rng := rand.New(rand.NewPCG(7, 7))

	for i := 0; i < propRounds; i++ {
		s := randomSeq(rng)
		al, err := newIntAligner(align.Global, scheme, s, s)
		require.NoError(t, err)

		res, err := al.Alignment()
		require.NoError(t, err)
		require.Equal(t, 2*len(s), res.Score)
		require.NotContains(t, res.Gapped1, gapInt)
		require.NotContains(t, res.Gapped2, gapInt)
	}
}
