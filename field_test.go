package goldilocks

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestFieldRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, p - 1, p / 2, 1 << 32, 1<<32 - 1} {
		require.Equal(t, v, FromValue(v).Value(), "value %d", v)
	}
}

func TestFieldMultiplicationFixed(t *testing.T) {
	a := FromValue(2779336007265862836)
	b := FromValue(8146517303801474933)
	require.Equal(t, FromValue(1857758653037316764), a.Mul(b))
}

func TestFieldMultiplicationMidRange(t *testing.T) {
	a := FromValue(1 << 63)
	require.Equal(t, FromValue(18446744068340842497), a.Mul(a))
}

func TestFieldInverseFixed(t *testing.T) {
	a := FromValue(8561862112314395584)
	inv, err := a.Inverse()
	require.NoError(t, err)
	require.Equal(t, FromValue(17307602810081694772), inv)
}

func TestFieldInverseOfZero(t *testing.T) {
	_, err := ZeroB.Inverse()
	require.Error(t, err)
	require.True(t, IsKind(err, InverseOfZero))
	require.Equal(t, ZeroB, ZeroB.InverseOrZero())
}

func TestFieldWraparound(t *testing.T) {
	maxVal := FromValue(p - 1)
	require.Equal(t, FromValue(0), maxVal.Add(OneB))
}

func TestFieldIncrementDecrement(t *testing.T) {
	a := FromValue(p - 1)
	a.Increment()
	require.Equal(t, ZeroB, a)
	a.Decrement()
	require.Equal(t, FromValue(p-1), a)
}

func TestFieldGeneratorOrder(t *testing.T) {
	g := Generator()
	require.Equal(t, OneB, g.ModPow(p-1))
	require.NotEqual(t, OneB, g.ModPow((p-1)/2))
}

func TestFieldAxioms(t *testing.T) {
	assoc := func(a, b, c uint64) bool {
		x, y, z := FromValue(a), FromValue(b), FromValue(c)
		return x.Add(y).Add(z) == x.Add(y.Add(z)) &&
			x.Add(y) == y.Add(x) &&
			x.Mul(y.Add(z)) == x.Mul(y).Add(x.Mul(z)) &&
			x.Mul(y).Mul(z) == x.Mul(y.Mul(z)) &&
			x.Mul(y) == y.Mul(x) &&
			x.Add(ZeroB) == x &&
			x.Mul(OneB) == x
	}
	require.NoError(t, quick.Check(assoc, nil))
}

func TestFieldInverseProperty(t *testing.T) {
	prop := func(v uint64) bool {
		a := FromValue(v)
		if a.IsZero() {
			return true
		}
		inv, err := a.Inverse()
		if err != nil {
			return false
		}
		div, err := a.Div(a)
		if err != nil {
			return false
		}
		return a.Mul(inv) == OneB && div == OneB
	}
	require.NoError(t, quick.Check(prop, nil))
}

func TestFieldNegationProperty(t *testing.T) {
	prop := func(v uint64) bool {
		a := FromValue(v)
		return a.Neg().Add(a) == ZeroB && a.Sub(a) == ZeroB
	}
	require.NoError(t, quick.Check(prop, nil))
}

func TestFieldMaxPlusOneWraps(t *testing.T) {
	prop := func(v uint64) bool {
		a := FromValue(v)
		return a.Add(FromValue(p - 1)).Add(OneB) == a
	}
	require.NoError(t, quick.Check(prop, nil))
}
