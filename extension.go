package goldilocks

import (
	"fmt"
	"math/bits"
)

// X is an element of the cubic extension field B[x]/(x^3 - x + 1),
// represented as C0 + C1*x + C2*x^2.
type X struct {
	C0, C1, C2 B
}

// ZeroX and OneX are the additive and multiplicative identities of X.
var (
	ZeroX = X{}
	OneX  = X{C0: OneB}
)

// NewConst lifts a base-field element into X as a constant (zero x and x²
// coefficients).
func NewConst(b B) X {
	return X{C0: b}
}

// Lift is NewConst as a method on B, for symmetry with Unlift.
func (b B) Lift() X {
	return NewConst(b)
}

// Add returns x + y, componentwise.
func (x X) Add(y X) X {
	return X{x.C0.Add(y.C0), x.C1.Add(y.C1), x.C2.Add(y.C2)}
}

// Sub returns x - y, componentwise.
func (x X) Sub(y X) X {
	return X{x.C0.Sub(y.C0), x.C1.Sub(y.C1), x.C2.Sub(y.C2)}
}

// Neg returns -x, componentwise.
func (x X) Neg() X {
	return X{x.C0.Neg(), x.C1.Neg(), x.C2.Neg()}
}

// MulBase multiplies x by a base-field scalar, componentwise. It also
// satisfies the element[X] constraint the NTT engine requires.
func (x X) MulBase(b B) X {
	return X{x.C0.Mul(b), x.C1.Mul(b), x.C2.Mul(b)}
}

// AddBase adds a base-field constant to x's constant term.
func (x X) AddBase(b B) X {
	return X{x.C0.Add(b), x.C1, x.C2}
}

// SubBase subtracts a base-field constant from x's constant term.
func (x X) SubBase(b B) X {
	return X{x.C0.Sub(b), x.C1, x.C2}
}

// Mul returns x * y reduced modulo x³ - x + 1.
//
// Writing x = a·t² + b·t + c and y = d·t² + e·t + f, the raw product
// ad·t⁴ + (ae+bd)·t³ + (af+be+cd)·t² + (bf+ce)·t + cf reduces via t³ = t - 1
// (so t⁴ = t² - t) to:
//
//	r0 = cf - ae - bd
//	r1 = bf + ce - ad + ae + bd
//	r2 = af + be + cd + ad
func (x X) Mul(y X) X {
	a, b, c := x.C2, x.C1, x.C0
	d, e, f := y.C2, y.C1, y.C0

	r0 := c.Mul(f).Sub(a.Mul(e)).Sub(b.Mul(d))
	r1 := b.Mul(f).Add(c.Mul(e)).Sub(a.Mul(d)).Add(a.Mul(e)).Add(b.Mul(d))
	r2 := a.Mul(f).Add(b.Mul(e)).Add(c.Mul(d)).Add(a.Mul(d))

	return X{r0, r1, r2}
}

// IsZero reports whether x is the additive identity.
func (x X) IsZero() bool {
	return x.C0.IsZero() && x.C1.IsZero() && x.C2.IsZero()
}

// IsOne reports whether x is the multiplicative identity.
func (x X) IsOne() bool {
	return x.C0.IsOne() && x.C1.IsZero() && x.C2.IsZero()
}

// Inverse returns x^-1. On the basis (1, t, t²), multiplication by x is the
// matrix
//
//	| C0  -C2     -C1   |
//	| C1  C0+C2   C1-C2 |
//	| C2  C1      C0+C2 |
//
// and x^-1 is the first column of its inverse: the cofactors of the first
// row divided by the determinant,
//
//	i0  = (C0+C2)² - C1² + C1·C2
//	i1  = -(C0·C1 + C2²)
//	i2  = C1² - C0·C2 - C2²
//	det = C0·i0 - C2·i1 - C1·i2
//	x^-1 = (i0, i1, i2) · det^-1
//
// It returns an InverseOfZero error if x is zero.
func (x X) Inverse() (X, error) {
	if x.IsZero() {
		return X{}, newError(InverseOfZero, "Inverse", "zero element has no multiplicative inverse")
	}

	c0, c1, c2 := x.C0, x.C1, x.C2
	s := c0.Add(c2)

	i0 := s.Square().Sub(c1.Square()).Add(c1.Mul(c2))
	i1 := c0.Mul(c1).Add(c2.Square()).Neg()
	i2 := c1.Square().Sub(c0.Mul(c2)).Sub(c2.Square())

	det := c0.Mul(i0).Sub(c2.Mul(i1)).Sub(c1.Mul(i2))
	detInv, err := det.Inverse()
	if err != nil {
		return X{}, err
	}

	return X{i0.Mul(detInv), i1.Mul(detInv), i2.Mul(detInv)}, nil
}

// InverseOrZero returns x^-1, or ZeroX if x is zero.
func (x X) InverseOrZero() X {
	inv, err := x.Inverse()
	if err != nil {
		return ZeroX
	}
	return inv
}

// Div returns x / y. It returns an InverseOfZero error if y is zero.
func (x X) Div(y X) (X, error) {
	inv, err := y.Inverse()
	if err != nil {
		return X{}, err
	}
	return x.Mul(inv), nil
}

// ModPow raises x to the given exponent via left-to-right
// square-and-multiply, matching B.ModPow's shape.
func (x X) ModPow(exp uint64) X {
	acc := OneX
	bitLength := bits.Len64(exp)
	for i := 0; i < bitLength; i++ {
		acc = acc.Mul(acc)
		if exp&(1<<uint(bitLength-1-i)) != 0 {
			acc = acc.Mul(x)
		}
	}
	return acc
}

// ModPowU32 is ModPow with a 32-bit exponent.
func (x X) ModPowU32(exp uint32) X {
	return x.ModPow(uint64(exp))
}

// PrimitiveRootOfUnityX returns a primitive n-th root of unity in X, lifted
// directly from the base field's root of the same order.
func PrimitiveRootOfUnityX(n uint64) (X, error) {
	root, err := PrimitiveRootOfUnity(n)
	if err != nil {
		return X{}, newError(NoRootOfUnity, "PrimitiveRootOfUnityX", "no primitive %d-th root of unity in this extension field", n)
	}
	return NewConst(root), nil
}

// CyclicGroupElements enumerates the cyclic subgroup generated by x, exactly
// like B.CyclicGroupElements: ZERO yields [ZERO]; otherwise it starts at ONE,
// appending the running product before checking it against ONE, stopping at
// max elements (0 = unlimited).
func (x X) CyclicGroupElements(max int) []X {
	if x.IsZero() {
		return []X{ZeroX}
	}

	result := []X{OneX}
	current := x
	for !current.IsOne() && (max == 0 || len(result) < max) {
		result = append(result, current)
		current = current.Mul(x)
	}
	return result
}

// Unlift returns the base-field element this X represents, if it is a
// lifted constant (C1 = C2 = 0). It returns an InvalidUnlift error
// otherwise.
func (x X) Unlift() (B, error) {
	if x.C1.IsZero() && x.C2.IsZero() {
		return x.C0, nil
	}
	return 0, newError(InvalidUnlift, "Unlift", "element has non-zero coefficients for x or x^2")
}

// Increment adds one to the coefficient at index (0, 1, or 2) in place.
func (x *X) Increment(index int) {
	switch index {
	case 0:
		x.C0.Increment()
	case 1:
		x.C1.Increment()
	case 2:
		x.C2.Increment()
	}
}

// Decrement subtracts one from the coefficient at index (0, 1, or 2) in place.
func (x *X) Decrement(index int) {
	switch index {
	case 0:
		x.C0.Decrement()
	case 1:
		x.C1.Decrement()
	case 2:
		x.C2.Decrement()
	}
}

// String renders x the way the reference implementation's to_string does:
// an unliftable element (C1 = C2 = 0) displays as its lifted B's canonical
// form with an "_xfe" suffix; otherwise as the three-coefficient polynomial
// form.
func (x X) String() string {
	if b, err := x.Unlift(); err == nil {
		return fmt.Sprintf("%s_xfe", b.String())
	}
	return fmt.Sprintf("(%s·x² + %s·x + %s)", x.C2.String(), x.C1.String(), x.C0.String())
}
