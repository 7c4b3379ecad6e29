package goldilocks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegerConversionsRoundTrip(t *testing.T) {
	require.Equal(t, uint64(42), FromUint64(42).ToUint64())
	require.Equal(t, int64(-1), FromInt64(-1).ToInt64())
	require.Equal(t, int64(42), FromInt64(42).ToInt64())

	u32, err := FromUint32(0xFFFFFFFF).ToUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xFFFFFFFF), u32)

	i8, err := FromInt8(-5).ToInt8()
	require.NoError(t, err)
	require.Equal(t, int8(-5), i8)
}

func TestIntegerConversionsOutOfRange(t *testing.T) {
	_, err := FromUint64(1 << 40).ToUint32()
	require.Error(t, err)
	require.True(t, IsKind(err, OutOfRange))

	_, err = FromUint64(1000).ToUint8()
	require.Error(t, err)
	require.True(t, IsKind(err, OutOfRange))

	_, err = FromInt64(-1000).ToInt8()
	require.Error(t, err)
	require.True(t, IsKind(err, OutOfRange))
}

func TestIntegerConversionsNegativeLift(t *testing.T) {
	require.Equal(t, FromValue(p-1), FromInt64(-1))
	require.Equal(t, FromValue(p-5), FromInt8(-5))
}
