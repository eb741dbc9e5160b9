package interleave

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func split(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func TestInterleave(t *testing.T) {
	tests := []struct {
		name    string
		sources []string
		want    string
	}{
		{
			name:    "Equal lengths",
			sources: []string{"11,12,13,14", "21,22,23,24", "31,32,33,34"},
			want:    "11,21,31,12,22,32,13,23,33,14,24,34",
		},
		{
			name:    "Four against two",
			sources: []string{"11,12,13,14", "21,22"},
			want:    "11,21,12,13,22,14",
		},
		{
			name:    "Two four two",
			sources: []string{"11,12", "21,22,23,24", "31,32"},
			want:    "11,21,31,22,12,23,32,24",
		},
		{
			name:    "Single source",
			sources: []string{"a,b,c"},
			want:    "a,b,c",
		},
		{
			name:    "Empty source is neutral",
			sources: []string{"11,12,13,14", "", "21,22"},
			want:    "11,21,12,13,22,14",
		},
		{
			name:    "One element each",
			sources: []string{"a", "b", "c"},
			want:    "a,b,c",
		},
		{
			name:    "Long against single",
			sources: []string{"1,2,3,4,5", "x"},
			want:    "1,x,2,3,4,5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sources := make([][]string, len(tt.sources))
			for i, s := range tt.sources {
				sources[i] = split(s)
			}
			got := Interleave(sources...)
			assert.Equal(t, split(tt.want), got)
		})
	}
}

func TestInterleaveNoElements(t *testing.T) {
	assert.Empty(t, Interleave[string]())
	assert.Empty(t, Interleave([]string{}, []string{}))
	assert.NotNil(t, Interleave[int]())
}

func TestInterleaveDoesNotModifyInputs(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{10, 20}
	out := Interleave(a, b)
	out[0] = 99

	assert.Equal(t, []int{1, 2, 3}, a)
	assert.Equal(t, []int{10, 20}, b)
}

func TestInterleaveSingleSourceIsCopy(t *testing.T) {
	src := []string{"x", "y"}
	out := Interleave(src)
	require.Equal(t, src, out)

	out[0] = "changed"
	assert.Equal(t, "x", src[0])
}

// tagged identifies an element by its source and position within that source.
type tagged struct {
	source, index int
}

func randomSources(r *rand.Rand) [][]tagged {
	n := r.Intn(6) + 1
	sources := make([][]tagged, n)
	for j := range sources {
		l := r.Intn(25)
		sources[j] = make([]tagged, l)
		for k := range sources[j] {
			sources[j][k] = tagged{source: j, index: k}
		}
	}
	return sources
}

func TestInterleaveProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 500; round++ {
		sources := randomSources(r)
		t.Run(fmt.Sprintf("round_%d", round), func(t *testing.T) {
			total := 0
			for _, s := range sources {
				total += len(s)
			}

			out := Interleave(sources...)
			require.Len(t, out, total)

			// Every element once, each source in its original order.
			next := make([]int, len(sources))
			for _, e := range out {
				require.Equal(t, next[e.source], e.index, "source %d out of order", e.source)
				next[e.source]++
			}
			for j, s := range sources {
				assert.Equal(t, len(s), next[j], "source %d not drained", j)
			}

			// Running the same input again gives the same output.
			assert.Equal(t, out, Interleave(sources...))
		})
	}
}

func TestInterleaveEqualLengthsRoundRobin(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for round := 0; round < 100; round++ {
		n := r.Intn(5) + 1
		l := r.Intn(20) + 1
		sources := make([][]tagged, n)
		for j := range sources {
			sources[j] = make([]tagged, l)
			for k := range sources[j] {
				sources[j][k] = tagged{source: j, index: k}
			}
		}

		out := Interleave(sources...)
		require.Len(t, out, n*l)
		for pos, e := range out {
			assert.Equal(t, tagged{source: pos % n, index: pos / n}, e,
				"n=%d l=%d position %d", n, l, pos)
		}
	}
}

func BenchmarkInterleave(b *testing.B) {
	sources := make([][]int, 8)
	for j := range sources {
		sources[j] = make([]int, 1000*(j+1))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Interleave(sources...)
	}
}
