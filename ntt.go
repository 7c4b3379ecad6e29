package goldilocks

import "math/bits"

// element is the minimal capability an NTT sequence's element type needs:
// additive group operations plus multiplication by a base-field scalar
// twiddle factor. B and X both satisfy it, which is how this engine runs
// over either field without duplicating the butterfly logic.
type element[T any] interface {
	Add(T) T
	Sub(T) T
	MulBase(B) T
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func log2Of(n int) uint32 {
	return uint32(bits.Len(uint(n)) - 1)
}

// Forward performs an in-place forward NTT over x, whose length must be a
// power of two (or zero, a no-op). The transform uses the canonical
// primitive root of unity for len(x).
func Forward[T element[T]](x []T) error {
	return transformChecked(x, false)
}

// Inverse performs an in-place inverse NTT over x: a forward transform using
// the inverse root of unity, followed by scaling every element by 1/len(x).
func Inverse[T element[T]](x []T) error {
	return transformChecked(x, true)
}

func transformChecked[T element[T]](x []T, inverse bool) error {
	n := len(x)
	if n == 0 {
		return nil
	}
	if !isPowerOfTwo(n) || uint64(n) > 1<<32 {
		return newError(InvalidLength, "Forward/Inverse", "length %d is not a power of 2 up to 2^32", n)
	}

	omega, err := PrimitiveRootOfUnity(uint64(n))
	if err != nil {
		return err
	}
	if inverse {
		omega, err = omega.Inverse()
		if err != nil {
			return err
		}
	}

	ForwardWithRoot(x, omega, log2Of(n))

	if inverse {
		return Unscale(x)
	}
	return nil
}

// ForwardWithRoot runs the unchecked radix-2 decimation-in-time NTT over x
// using the supplied root of unity: a bit-reversal permutation followed by
// log2n butterfly stages. Callers are responsible for ensuring len(x) is a
// power of two and that omega is a primitive len(x)-th root of unity (the
// same root inverted gives the inverse transform, before scaling).
func ForwardWithRoot[T element[T]](x []T, omega B, log2n uint32) {
	n := uint32(len(x))

	for k := uint32(0); k < n; k++ {
		rk := bitreverse(k, log2n)
		if k < rk {
			x[k], x[rk] = x[rk], x[k]
		}
	}

	m := uint32(1)
	for s := uint32(0); s < log2n; s++ {
		wm := omega.ModPowU32(n / (2 * m))
		var k uint32
		for k < n {
			w := OneB
			for j := uint32(0); j < m; j++ {
				u := x[k+j]
				v := x[k+j+m].MulBase(w)
				x[k+j] = u.Add(v)
				x[k+j+m] = u.Sub(v)
				w = w.Mul(wm)
			}
			k += 2 * m
		}
		m *= 2
	}
}

// ForwardNoSwap performs an in-place forward NTT without the initial
// bit-reversal permutation: the output is in bit-reversed order relative to
// Forward's, trading the permutation pass for a precomputed bit-reversed
// twiddle table.
func ForwardNoSwap[T element[T]](x []T) error {
	n := len(x)
	if n == 0 {
		return nil
	}
	if !isPowerOfTwo(n) || uint64(n) > 1<<32 {
		return newError(InvalidLength, "ForwardNoSwap", "length %d is not a power of 2 up to 2^32", n)
	}

	omega, err := PrimitiveRootOfUnity(uint64(n))
	if err != nil {
		return err
	}
	logn := log2Of(n)

	powers := make([]B, n)
	omegai := OneB
	for i := 0; i < n/2; i++ {
		powers[bitreverseInt(i, logn-1)] = omegai
		omegai = omegai.Mul(omega)
	}

	noSwapButterflies(x, powers)
	return nil
}

// InverseNoSwap performs an in-place inverse NTT without a bit-reversal
// permutation, leaving the result unscaled: callers that need the
// conventional 1/n-scaled result must call Unscale themselves, matching the
// reference implementation's split between the transform and the scaling
// step.
func InverseNoSwap[T element[T]](x []T) error {
	n := len(x)
	if n == 0 {
		return nil
	}
	if !isPowerOfTwo(n) || uint64(n) > 1<<32 {
		return newError(InvalidLength, "InverseNoSwap", "length %d is not a power of 2 up to 2^32", n)
	}

	omega, err := PrimitiveRootOfUnity(uint64(n))
	if err != nil {
		return err
	}
	omegaInv, err := omega.Inverse()
	if err != nil {
		return err
	}
	logn := log2Of(n)

	m := uint32(1)
	for s := uint32(0); s < logn; s++ {
		wm := omegaInv.ModPowU32(uint32(n) / (2 * m))
		var k uint32
		for k < uint32(n) {
			w := OneB
			for j := uint32(0); j < m; j++ {
				u := x[k+j]
				v := x[k+j+m].MulBase(w)
				x[k+j] = u.Add(v)
				x[k+j+m] = u.Sub(v)
				w = w.Mul(wm)
			}
			k += 2 * m
		}
		m *= 2
	}
	return nil
}

func noSwapButterflies[T element[T]](x []T, powersOfOmegaBitreversed []B) {
	n := len(x)
	m := 1
	t := n
	for m < n {
		t >>= 1
		for i := 0; i < m; i++ {
			s := i * t * 2
			for j := s; j < s+t; j++ {
				u := x[j]
				v := x[j+t].MulBase(powersOfOmegaBitreversed[i])
				x[j] = u.Add(v)
				x[j+t] = u.Sub(v)
			}
		}
		m *= 2
	}
}

// Unscale divides every element of x by len(x), the scaling step an inverse
// transform needs. It is exposed separately so ForwardNoSwap/InverseNoSwap
// callers can apply it on their own schedule.
func Unscale[T element[T]](x []T) error {
	if len(x) == 0 {
		return nil
	}
	nInv, err := FromValue(uint64(len(x))).Inverse()
	if err != nil {
		return err
	}
	for i := range x {
		x[i] = x[i].MulBase(nInv)
	}
	return nil
}

// BitreverseOrder permutes x in place so that x[bitreverse(k)] and x[k] are
// swapped for every k, for the smallest log2n with 2^log2n >= len(x).
func BitreverseOrder[T any](x []T) {
	n := len(x)
	if n == 0 {
		return
	}
	logn := uint32(0)
	for (1 << logn) < n {
		logn++
	}
	for k := 0; k < n; k++ {
		rk := bitreverseInt(k, logn)
		if k < rk {
			x[k], x[rk] = x[rk], x[k]
		}
	}
}

func bitreverse(n, l uint32) uint32 {
	var r uint32
	for i := uint32(0); i < l; i++ {
		r = (r << 1) | (n & 1)
		n >>= 1
	}
	return r
}

func bitreverseInt(n int, l uint32) int {
	return int(bitreverse(uint32(n), l))
}
