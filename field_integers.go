package goldilocks

// This file implements the full signed/unsigned integer conversion matrix:
// every common Go integer width converts into B (always succeeding, via
// p + v for negative values), and converts back out fallibly (OutOfRange
// when the canonical value, interpreted as signed when it exceeds p/2,
// doesn't fit the requested width).

// FromUint64 lifts v directly; equivalent to FromValue.
func FromUint64(v uint64) B { return FromValue(v) }

// FromUint32 lifts v directly.
func FromUint32(v uint32) B { return FromValue(uint64(v)) }

// FromUint16 lifts v directly.
func FromUint16(v uint16) B { return FromValue(uint64(v)) }

// FromUint8 lifts v directly.
func FromUint8(v uint8) B { return FromValue(uint64(v)) }

// FromUint lifts v directly.
func FromUint(v uint) B { return FromValue(uint64(v)) }

// FromInt64 lifts v, adding p once if v is negative.
func FromInt64(v int64) B {
	if v < 0 {
		return FromValue(p + uint64(v))
	}
	return FromValue(uint64(v))
}

// FromInt32 lifts v, adding p once if v is negative.
func FromInt32(v int32) B { return FromInt64(int64(v)) }

// FromInt16 lifts v, adding p once if v is negative.
func FromInt16(v int16) B { return FromInt64(int64(v)) }

// FromInt8 lifts v, adding p once if v is negative.
func FromInt8(v int8) B { return FromInt64(int64(v)) }

// FromInt lifts v, adding p once if v is negative.
func FromInt(v int) B { return FromInt64(int64(v)) }

// signedValue interprets b's canonical value as a signed integer: values
// above p/2 are negative residues, reported as val - p.
func (b B) signedValue() int64 {
	val := b.Value()
	if val > p/2 {
		return -int64(p - val)
	}
	return int64(val)
}

// ToUint64 returns b's canonical value. It never fails since a canonical
// value always fits uint64.
func (b B) ToUint64() uint64 { return b.Value() }

// ToInt64 returns b's value interpreted as signed. It never fails since
// p/2 fits comfortably within the int64 range in both directions.
func (b B) ToInt64() int64 { return b.signedValue() }

// ToUint32 returns b's canonical value narrowed to uint32, or an
// OutOfRange error if the value doesn't fit.
func (b B) ToUint32() (uint32, error) {
	val := b.Value()
	if val > 0xFFFFFFFF {
		return 0, newError(OutOfRange, "ToUint32", "value %d does not fit in uint32", val)
	}
	return uint32(val), nil
}

// ToUint16 returns b's canonical value narrowed to uint16, or an
// OutOfRange error if the value doesn't fit.
func (b B) ToUint16() (uint16, error) {
	val := b.Value()
	if val > 0xFFFF {
		return 0, newError(OutOfRange, "ToUint16", "value %d does not fit in uint16", val)
	}
	return uint16(val), nil
}

// ToUint8 returns b's canonical value narrowed to uint8, or an
// OutOfRange error if the value doesn't fit.
func (b B) ToUint8() (uint8, error) {
	val := b.Value()
	if val > 0xFF {
		return 0, newError(OutOfRange, "ToUint8", "value %d does not fit in uint8", val)
	}
	return uint8(val), nil
}

// ToInt32 returns b's signed value narrowed to int32, or an OutOfRange
// error if the value doesn't fit.
func (b B) ToInt32() (int32, error) {
	v := b.signedValue()
	if v > (1<<31 - 1) || v < -(1 << 31) {
		return 0, newError(OutOfRange, "ToInt32", "value %d does not fit in int32", v)
	}
	return int32(v), nil
}

// ToInt16 returns b's signed value narrowed to int16, or an OutOfRange
// error if the value doesn't fit.
func (b B) ToInt16() (int16, error) {
	v := b.signedValue()
	if v > (1<<15 - 1) || v < -(1 << 15) {
		return 0, newError(OutOfRange, "ToInt16", "value %d does not fit in int16", v)
	}
	return int16(v), nil
}

// ToInt8 returns b's signed value narrowed to int8, or an OutOfRange
// error if the value doesn't fit.
func (b B) ToInt8() (int8, error) {
	v := b.signedValue()
	if v > (1<<7 - 1) || v < -(1 << 7) {
		return 0, newError(OutOfRange, "ToInt8", "value %d does not fit in int8", v)
	}
	return int8(v), nil
}
