package prng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextMatchesSPlusC1(t *testing.T) {
	seeds := []uint64{0, 1, 5, 0xfcca2321c7d655ed, 0xffffffffffffffff}
	for _, s := range seeds {
		g := New(s)
		got := g.Next()
		want := s + C1
		assert.Equal(t, want, got, "seed %#x", s)
	}
}

func TestNextBoundedStaysInRange(t *testing.T) {
	g := New(12345)
	for i := 0; i < 1000; i++ {
		v := g.NextBounded(25)
		assert.Less(t, v, uint64(25))
	}
}

func TestBoundMaskCoversModulus(t *testing.T) {
	cases := []uint64{2, 6, 25, 32, 252, 0x81, 0x80, 0xFFFFFFFF}
	for _, mod := range cases {
		mask := boundMask(mod)
		assert.GreaterOrEqual(t, mask, mod-1)
		// mask must be of the form 2^k - 1.
		assert.Zero(t, mask&(mask+1))
	}
}

func TestNextU32DefaultBound(t *testing.T) {
	g := New(0xce662cc305201801)
	v := g.NextU32()
	assert.LessOrEqual(t, uint64(v), uint64(DefaultBound))
}
