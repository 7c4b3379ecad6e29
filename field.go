// Package goldilocks implements the Goldilocks prime field (p =
// 2^64 - 2^32 + 1) in Montgomery form, its cubic extension field
// B[x]/(x^3 - x + 1), and a generic number-theoretic transform over either.
package goldilocks

import "math/bits"

// B is an element of the base field, stored internally in Montgomery form:
// a B holding logical value v is represented as m = v * 2^64 mod p. The zero
// value of B is the field's ZERO element, so a plain "var x B" is usable
// without construction.
//
// The invariant maintained by every constructor and operation in this
// package is m < p: a B never holds a non-canonical Montgomery residue.
type B uint64

// ZeroB and OneB are the additive and multiplicative identities.
var (
	ZeroB = B(0)
	OneB  = FromValue(1)
	// MinusTwoInverse is -2^-1 mod p, exposed for callers that need it
	// directly.
	MinusTwoInverse = FromValue(0x7FFFFFFF80000000)
)

// FromValue lifts a canonical or near-canonical uint64 into Montgomery form.
// v need not already be reduced mod p.
func FromValue(v uint64) B {
	hi, lo := bits.Mul64(v, r2)
	return B(montyReduce(lo, hi))
}

// TryFromCanonical builds a B only if v is already a canonical
// representative (v < p), rejecting silent reduction.
func TryFromCanonical(v uint64) (B, error) {
	if v >= p {
		return 0, newError(NotCanonical, "TryFromCanonical", "value %d is not canonical (p = %d)", v, p)
	}
	return FromValue(v), nil
}

// Value returns the canonical representative of b, taking it out of
// Montgomery form.
func (b B) Value() uint64 {
	return montyReduce(uint64(b), 0)
}

// Add returns a + b mod p.
func (a B) Add(b B) B {
	sub := p - uint64(b)
	x1 := uint64(a) - sub
	if uint64(a) < sub {
		return B(x1 + p)
	}
	return B(x1)
}

// Sub returns a - b mod p.
func (a B) Sub(b B) B {
	x1 := uint64(a) - uint64(b)
	if uint64(a) < uint64(b) {
		x1 -= epsilon
	}
	return B(x1)
}

// Neg returns -a mod p.
func (a B) Neg() B {
	return ZeroB.Sub(a)
}

// Mul returns a * b mod p.
func (a B) Mul(b B) B {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return B(montyReduce(lo, hi))
}

// Square returns a * a mod p.
func (a B) Square() B {
	return a.Mul(a)
}

// MulBase satisfies the element[B] constraint the NTT engine requires: for
// the base field, "multiply by a base-field scalar" is the same as Mul.
func (a B) MulBase(b B) B {
	return a.Mul(b)
}

// Div returns a / b mod p. It returns an InverseOfZero error if b is zero.
func (a B) Div(b B) (B, error) {
	inv, err := b.Inverse()
	if err != nil {
		return 0, err
	}
	return a.Mul(inv), nil
}

// IsZero reports whether b is the additive identity.
func (b B) IsZero() bool {
	return b == 0
}

// IsOne reports whether b is the multiplicative identity.
func (b B) IsOne() bool {
	return b == OneB
}

// Increment adds one in place. It exists for boundary-value testing,
// mirroring the original library's increment/decrement helpers.
func (b *B) Increment() {
	*b = b.Add(OneB)
}

// Decrement subtracts one in place.
func (b *B) Decrement() {
	*b = b.Sub(OneB)
}

// Generator returns a fixed generator of the field's multiplicative group.
func Generator() B {
	return FromValue(7)
}

// PowerAccumulator computes, for every slot j of base and tail, the value
// base[j]^(2^m) * tail[j], via m rounds of squaring followed by one
// multiplication. It is the batched repeated-squaring helper the original
// root-of-unity table precomputation uses internally; exposed here so tests
// can cross-check table entries by construction instead of trusting a second
// hard-coded table.
func PowerAccumulator(base, tail []B, m int) []B {
	result := make([]B, len(base))
	copy(result, base)
	for i := 0; i < m; i++ {
		for j := range result {
			result[j] = result[j].Square()
		}
	}
	for j := range result {
		result[j] = result[j].Mul(tail[j])
	}
	return result
}
