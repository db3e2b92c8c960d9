// Package reverse implements the three reversal stages that recover a
// cohort's group seed from a decoded entity record: an entity record's
// entity seed (entityseed.go, brute force over the 2^32 space the record's
// encryption constant doesn't pin down), that entity seed's generator seed
// (genseed.go, symbolic inversion via a bit-vector SMT solver), and that
// generator seed's group seed (groupseed.go, a constant-time subtraction).
//
// Level two is cheap to invert symbolically (one 64-bit unknown, few
// solutions) but would cost 2^64 by brute force; level one is the mirror
// image (brute-forcible after an algebraic constraint narrows it to 2^32,
// but a constraint per regenerated trait would explode a symbolic
// formula). The two reversers are deliberately not unified.
package reverse
