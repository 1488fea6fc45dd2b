package signal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeValue_FloatRoundsToTwoDecimals(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0.12345, 0.12},
		{0.126, 0.13},
		{0.125, 0.13}, // half away from zero
		{2.0, 2.0},
		{-0.005, -0.01},
		{99.999, 100.0},
	}

	for _, test := range tests {
		got := NormalizeValue(Float(test.in))
		f, ok := got.(FloatValue)
		require.True(t, ok)
		assert.InDelta(t, test.expected, float64(f), 1e-9, "rounding %v", test.in)
	}
}

func TestNormalizeValue_NonFloatPassesThrough(t *testing.T) {
	// Integers stay integers, never widened to the float variant.
	v := NormalizeValue(Int(2))
	assert.Equal(t, IntValue(2), v)

	v = NormalizeValue(Str("x"))
	assert.Equal(t, StringValue("x"), v)

	m := map[string]interface{}{"ratio": 0.123456}
	v = NormalizeValue(Map(m))
	assert.Equal(t, MapValue(m), v, "map contents are not touched")
}

func TestAsNumber(t *testing.T) {
	f, ok := AsNumber(Float(1.5))
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	f, ok = AsNumber(Int(7))
	assert.True(t, ok)
	assert.Equal(t, 7.0, f)

	_, ok = AsNumber(Str("seven"))
	assert.False(t, ok)

	_, ok = AsNumber(Map(map[string]interface{}{}))
	assert.False(t, ok)

	assert.True(t, IsNumeric(Int(0)))
	assert.False(t, IsNumeric(Str("")))
}

func TestValue_JSONShapes(t *testing.T) {
	// Reports embed signal values directly, so each variant must serialize
	// to plain JSON scalars/objects.
	b, err := json.Marshal(FloatValue(0.12))
	require.NoError(t, err)
	assert.Equal(t, "0.12", string(b))

	b, err = json.Marshal(IntValue(2))
	require.NoError(t, err)
	assert.Equal(t, "2", string(b))

	b, err = json.Marshal(StringValue("x"))
	require.NoError(t, err)
	assert.Equal(t, `"x"`, string(b))

	b, err = json.Marshal(MapValue{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, `{"k":"v"}`, string(b))
}
