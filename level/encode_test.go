package level_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pamstim/level"
)

func TestRailEncoder(t *testing.T) {
	r := level.DefaultRail()
	require.NoError(t, r.Validate())

	assert.Equal(t, "ileak", r.Select(0).Name())
	assert.Equal(t, "ihold", r.Select(1).Name())
	assert.Equal(t, "ihold", r.Select(7).Name(), "any non-zero code selects high")

	assert.True(t, r.Data(0).Equal(level.Numeric(0)))
	assert.Equal(t, "xvcc", r.Data(1).Name())
	assert.True(t, r.Baseline().Equal(level.Numeric(0)))

	l, err := r.Encode(1)
	require.NoError(t, err)
	assert.Equal(t, "ihold", l.Name())

	_, err = r.Encode(2)
	assert.ErrorIs(t, err, level.ErrCodeOutOfRange)
	_, err = r.Encode(-1)
	assert.ErrorIs(t, err, level.ErrCodeOutOfRange)

	assert.ErrorIs(t, level.RailEncoder{SelectLow: "a", SelectHigh: "b"}.Validate(), level.ErrEmptyName)
}

func TestPAMEncoder_PAM4(t *testing.T) {
	enc, err := level.NewPAM(4, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 4, enc.Levels())
	assert.Equal(t, 1.0, enc.Amplitude())

	want := []float64{-1.0, -1.0 / 3.0, 1.0 / 3.0, 1.0}
	for code, w := range want {
		assert.InDelta(t, w, enc.Voltage(code), 1e-12, "code %d", code)
	}
	// Boundary codes are exact.
	assert.Equal(t, -1.0, enc.Voltage(0))
	assert.Equal(t, 1.0, enc.Voltage(3))
}

func TestPAMEncoder_BoundariesExact(t *testing.T) {
	for k := 2; k <= 16; k++ {
		for _, amp := range []float64{0.4, 1.0, 0.35, 3.3} {
			enc, err := level.NewPAM(k, amp)
			require.NoError(t, err)
			assert.Equal(t, -amp, enc.Voltage(0), "k=%d amp=%g", k, amp)
			assert.Equal(t, amp, enc.Voltage(k-1), "k=%d amp=%g", k, amp)
		}
	}
}

func TestPAMEncoder_EqualSpacing(t *testing.T) {
	enc, err := level.NewPAM(8, 0.5)
	require.NoError(t, err)
	step := 2 * 0.5 / 7
	for code := 1; code < 8; code++ {
		assert.InDelta(t, step, enc.Voltage(code)-enc.Voltage(code-1), 1e-12)
	}
}

func TestPAMEncoder_Encode(t *testing.T) {
	enc, err := level.NewPAM(2, 0.8)
	require.NoError(t, err)

	l, err := enc.Encode(0)
	require.NoError(t, err)
	v, ok := l.Float()
	require.True(t, ok)
	assert.Equal(t, -0.8, v)

	_, err = enc.Encode(2)
	assert.ErrorIs(t, err, level.ErrCodeOutOfRange)
	_, err = enc.Encode(-1)
	assert.ErrorIs(t, err, level.ErrCodeOutOfRange)
}

func TestNewPAM_Invalid(t *testing.T) {
	_, err := level.NewPAM(1, 1)
	assert.ErrorIs(t, err, level.ErrTooFewLevels)
	_, err = level.NewPAM(4, 0)
	assert.ErrorIs(t, err, level.ErrBadAmplitude)
	_, err = level.NewPAM(4, -1)
	assert.ErrorIs(t, err, level.ErrBadAmplitude)
	_, err = level.NewPAM(4, math.NaN())
	assert.ErrorIs(t, err, level.ErrBadAmplitude)
	_, err = level.NewPAM(4, math.Inf(1))
	assert.ErrorIs(t, err, level.ErrBadAmplitude)
}

// Both encoders satisfy Encoder.
var (
	_ level.Encoder = level.RailEncoder{}
	_ level.Encoder = level.PAMEncoder{}
)
