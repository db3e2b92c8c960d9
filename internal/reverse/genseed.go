package reverse

import (
	"math/big"

	"github.com/aclements/go-z3/z3"

	"github.com/corvusglyph/seedreaper/internal/prng"
)

// GenSeedCandidates enumerates every generator seed G such that seeding a
// xoroshiro128+ generator with (s0=G, s1=C1), discarding the first Next()
// output, and taking the second yields entitySeed.
//
// The unknown is a single 64-bit word (G); s1 is pinned to the known
// constant C1 for the whole advance. That makes the inversion cheap for a
// bit-vector SMT solver but prohibitive for brute force (2^64 candidates) —
// the mirror image of the entity-seed reversal in entityseed.go, which goes
// the other way (cheap brute force, expensive to express symbolically).
//
// The solver context is created fresh for each call and is never shared
// across goroutines. This function does not close or explicitly release the
// context or solver before returning.
func GenSeedCandidates(entitySeed uint64) ([]uint64, error) {
	z3Config := z3.NewContextConfig()
	ctx := z3.NewContext(z3Config)

	sort := ctx.BVSort(64)
	g := ctx.Const("group_seed", sort).(z3.BV)
	c1 := constBV(ctx, sort, prng.C1)
	target := constBV(ctx, sort, entitySeed)

	// First advance from (s0=g, s1=c1): result discarded, state mutates.
	sixteen := constBV(ctx, sort, 16)
	s1a := c1.Xor(g)
	s0a := rotlBV(ctx, sort, g, 24).Xor(s1a).Xor(s1a.Lsh(sixteen))
	s1b := rotlBV(ctx, sort, s1a, 37)

	// Second advance's result is the entity seed we're matching.
	result2 := s0a.Add(s1b)

	solver := z3.NewSolver(ctx)
	solver.Assert(result2.Eq(target))

	var out []uint64
	for {
		sat, err := solver.Check()
		if err != nil {
			return nil, err
		}
		if !sat {
			break
		}
		model := solver.Model()
		val, exact := model.Eval(g, true).(z3.BV).AsBigUnsigned()
		if !exact {
			break
		}
		found := val.Uint64()
		out = append(out, found)
		// Exclude this model's value so the next Check() is forced to
		// find a different one, if any exists.
		solver.Assert(g.Eq(constBV(ctx, sort, found)).Not())
	}
	return out, nil
}

func constBV(ctx *z3.Context, sort z3.Sort, v uint64) z3.BV {
	return ctx.FromBigInt(new(big.Int).SetUint64(v), sort).(z3.BV)
}

func rotlBV(ctx *z3.Context, sort z3.Sort, x z3.BV, k uint) z3.BV {
	left := x.Lsh(constBV(ctx, sort, uint64(k)))
	right := x.URsh(constBV(ctx, sort, uint64(64-k)))
	return left.Or(right)
}

// forwardTwoAdvances seeds a generator with (s0=groupSeed, s1=C1), discards
// the first Next(), and returns the second — the plain, non-symbolic
// forward direction GenSeedCandidates inverts. Used to round-trip-check
// solver output in tests.
func forwardTwoAdvances(groupSeed uint64) uint64 {
	g := prng.New(groupSeed)
	g.Next()
	return g.Next()
}
