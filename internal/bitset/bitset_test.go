package bitset_test

import (
	"math/rand"
	"testing"

	"github.com/gopherclique/kpclique/internal/bitset"
	"github.com/stretchr/testify/require"
)

// TestSetUnsetHas exercises the basic single-bit operations across limb
// boundaries (bit 63, 64, 127, 128).
func TestSetUnsetHas(t *testing.T) {
	s := bitset.New(200, false)
	for _, idx := range []int{0, 1, 63, 64, 65, 127, 128, 199} {
		require.False(t, s.Has(idx))
		s.Set(idx)
		require.True(t, s.Has(idx))
	}
	s.Unset(64)
	require.False(t, s.Has(64))
	require.True(t, s.Has(63))
	require.True(t, s.Has(65))
}

// TestNewFill verifies that New(n, true) sets exactly the first n bits and
// masks off the trailing bits of the final partial limb.
func TestNewFill(t *testing.T) {
	s := bitset.New(70, true)
	require.Equal(t, 70, s.Count(0, 70))
	for i := 0; i < 70; i++ {
		require.True(t, s.Has(i))
	}
}

// TestCountRanges checks Count against a naive reference over every
// half-open [start, stop) pair for a pseudo-random 257-bit vector,
// covering the partial-limb, full-limb and no-trailing-limb edge cases
// named by the half-open-range contract.
func TestCountRanges(t *testing.T) {
	const n = 257
	rng := rand.New(rand.NewSource(7))
	want := make([]bool, n)
	s := bitset.New(n, false)
	for i := 0; i < n; i++ {
		if rng.Intn(2) == 1 {
			s.Set(i)
			want[i] = true
		}
	}

	for start := 0; start <= n; start++ {
		for stop := start; stop <= n; stop++ {
			expect := 0
			for i := start; i < stop; i++ {
				if want[i] {
					expect++
				}
			}
			require.Equal(t, expect, s.Count(start, stop), "start=%d stop=%d", start, stop)
		}
	}
}

// TestIntersectionCount checks IntersectionCount against a naive reference,
// and against materializing the intersection via IntersectionAssign.
func TestIntersectionCount(t *testing.T) {
	const n = 193
	rng := rand.New(rand.NewSource(11))
	a := bitset.New(n, false)
	b := bitset.New(n, false)
	wantA := make([]bool, n)
	wantB := make([]bool, n)
	for i := 0; i < n; i++ {
		if rng.Intn(2) == 1 {
			a.Set(i)
			wantA[i] = true
		}
		if rng.Intn(2) == 1 {
			b.Set(i)
			wantB[i] = true
		}
	}

	c := bitset.New(n, false)
	c.IntersectionAssign(a, b)

	for start := 0; start <= n; start += 3 {
		for stop := start; stop <= n; stop += 5 {
			expect := 0
			for i := start; i < stop; i++ {
				if wantA[i] && wantB[i] {
					expect++
				}
			}
			require.Equal(t, expect, a.IntersectionCount(b, start, stop), "start=%d stop=%d", start, stop)
			require.Equal(t, c.Count(start, stop), a.IntersectionCount(b, start, stop))
		}
	}
}

// TestFirst verifies First returns the earliest set bit at or after start,
// and the limbs*64 sentinel when no such bit exists.
func TestFirst(t *testing.T) {
	s := bitset.New(150, false)
	require.Equal(t, 3*64, s.First(0)) // nothing set: limbs(150)=3

	s.Set(5)
	s.Set(70)
	s.Set(149)
	require.Equal(t, 5, s.First(0))
	require.Equal(t, 70, s.First(6))
	require.Equal(t, 149, s.First(71))
	require.Equal(t, 3*64, s.First(150))
}

// TestFromBools checks that FromBools reproduces the same membership as a
// manual Set loop.
func TestFromBools(t *testing.T) {
	raw := []bool{true, false, true, true, false, false, true}
	s := bitset.FromBools(raw)
	for i, b := range raw {
		require.Equal(t, b, s.Has(i))
	}
}
