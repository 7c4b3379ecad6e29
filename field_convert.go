package goldilocks

// RawBytes returns the canonical value of b as 8 little-endian bytes.
func (b B) RawBytes() [8]byte {
	val := b.Value()
	var out [8]byte
	for i := 0; i < 8; i++ {
		out[i] = byte(val)
		val >>= 8
	}
	return out
}

// FromRawBytes decodes 8 little-endian bytes as a canonical value. It
// returns a NotCanonical error if the decoded value is not less than p.
func FromRawBytes(bytes [8]byte) (B, error) {
	var result uint64
	for i := 7; i >= 0; i-- {
		result = (result << 8) | uint64(bytes[i])
	}
	return TryFromCanonical(result)
}

// RawU16s returns the canonical value of b as 4 little-endian 16-bit limbs.
func (b B) RawU16s() [4]uint16 {
	val := b.Value()
	var out [4]uint16
	for i := 0; i < 4; i++ {
		out[i] = uint16(val)
		val >>= 16
	}
	return out
}

// FromRawU16s decodes 4 little-endian 16-bit limbs as a canonical value. It
// returns a NotCanonical error if the decoded value is not less than p.
func FromRawU16s(limbs [4]uint16) (B, error) {
	var result uint64
	for i := 3; i >= 0; i-- {
		result = (result << 16) | uint64(limbs[i])
	}
	return TryFromCanonical(result)
}

// CyclicGroupElements enumerates the cyclic subgroup generated by b,
// starting at ONE and repeatedly multiplying by b, stopping when the
// running product returns to ONE or the result reaches max elements
// (max == 0 means unlimited). The running product is appended before the
// equal-to-ONE check, matching the reference iteration exactly: the
// generator itself is always the second entry unless b is ONE or ZERO or
// max is 1.
func (b B) CyclicGroupElements(max int) []B {
	if b.IsZero() {
		return []B{ZeroB}
	}

	val := b
	result := []B{OneB}
	for !val.IsOne() && (max == 0 || len(result) < max) {
		result = append(result, val)
		val = val.Mul(b)
	}
	return result
}

// BatchInversion inverts every element of elements using Montgomery's
// trick: one field inversion plus 3n multiplications, instead of n
// inversions. Zero elements map to zero, matching InverseOrZero.
func BatchInversion(elements []B) []B {
	n := len(elements)
	if n == 0 {
		return nil
	}

	scratch := make([]B, n)
	acc := OneB
	for i, e := range elements {
		scratch[i] = acc
		if !e.IsZero() {
			acc = acc.Mul(e)
		}
	}

	accInv := acc.InverseOrZero()

	result := make([]B, n)
	for i := n - 1; i >= 0; i-- {
		e := elements[i]
		if e.IsZero() {
			result[i] = ZeroB
			continue
		}
		result[i] = scratch[i].Mul(accInv)
		accInv = accInv.Mul(e)
	}
	return result
}
