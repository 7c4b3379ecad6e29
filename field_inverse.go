package goldilocks

import "math/bits"

// Inverse returns a^-1 mod p via a fixed addition-chain exponentiation to
// p-2, built from repeated squaring blocks rather than the generic
// square-and-multiply loop ModPow uses: the exponent p-2 has a known shape
// (31 one-bits, a zero, then 32 one-bits) that this chain exploits directly.
// It returns an InverseOfZero error for the zero element.
func (a B) Inverse() (B, error) {
	if a.IsZero() {
		return 0, newError(InverseOfZero, "Inverse", "zero element has no multiplicative inverse")
	}

	bin2Ones := a.Mul(a).Mul(a)
	bin3Ones := bin2Ones.Mul(bin2Ones).Mul(a)
	bin6Ones := expSquarings(bin3Ones, 3).Mul(bin3Ones)
	bin12Ones := expSquarings(bin6Ones, 6).Mul(bin6Ones)
	bin24Ones := expSquarings(bin12Ones, 12).Mul(bin12Ones)
	bin30Ones := expSquarings(bin24Ones, 6).Mul(bin6Ones)
	bin31Ones := bin30Ones.Mul(bin30Ones).Mul(a)
	bin31Ones1Zero := bin31Ones.Mul(bin31Ones)
	bin32Ones := bin31Ones.Mul(bin31Ones).Mul(a)

	return expSquarings(bin31Ones1Zero, 32).Mul(bin32Ones), nil
}

// InverseOrZero returns a^-1 mod p, or ZeroB if a is zero.
func (a B) InverseOrZero() B {
	inv, err := a.Inverse()
	if err != nil {
		return ZeroB
	}
	return inv
}

// expSquarings squares base exponent times in a row (i.e. returns
// base^(2^exponent)).
func expSquarings(base B, exponent uint64) B {
	res := base
	for i := uint64(0); i < exponent; i++ {
		res = res.Square()
	}
	return res
}

// ModPow raises a to the given exponent via left-to-right square-and-multiply.
func (a B) ModPow(exp uint64) B {
	acc := OneB
	bitLength := bits.Len64(exp)
	for i := 0; i < bitLength; i++ {
		acc = acc.Square()
		if exp&(1<<uint(bitLength-1-i)) != 0 {
			acc = acc.Mul(a)
		}
	}
	return acc
}

// ModPowU32 is ModPow with a 32-bit exponent.
func (a B) ModPowU32(exp uint32) B {
	return a.ModPow(uint64(exp))
}
