package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCPUName(t *testing.T) {
	t.Run("cumulative levels", func(t *testing.T) {
		flags, err := ParseCPUName("SSE4.2", false)
		require.NoError(t, err)
		for _, bit := range []int{CPUMMX, CPUSSE, CPUSSE2, CPUSSE3, CPUSSSE3, CPUSSE4, CPUSSE42} {
			assert.NotZero(t, flags&bit)
		}
		assert.Zero(t, flags&CPUAVX)
	})

	t.Run("ssse3 implies fast sse2", func(t *testing.T) {
		flags, err := ParseCPUName("ssse3", false)
		require.NoError(t, err)
		assert.NotZero(t, flags&CPUSSE2Fast)

		flags, err = ParseCPUName("ssse3,sse2slow", false)
		require.NoError(t, err)
		assert.Zero(t, flags&CPUSSE2Fast)
	})

	t.Run("list", func(t *testing.T) {
		flags, err := ParseCPUName("avx2,bmi2", false)
		require.NoError(t, err)
		assert.NotZero(t, flags&CPUAVX2)
		assert.NotZero(t, flags&CPUBMI1)
	})

	t.Run("raw bitmap", func(t *testing.T) {
		flags, err := ParseCPUName("0x3", false)
		require.NoError(t, err)
		assert.Equal(t, CPUMMX|CPUMMX2, flags)
	})

	t.Run("booleans", func(t *testing.T) {
		flags, err := ParseCPUName("false", false)
		require.NoError(t, err)
		assert.Zero(t, flags)

		flags, err = ParseCPUName("auto", false)
		require.NoError(t, err)
		assert.Equal(t, DetectCPU(false), flags)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseCPUName("sse2,quantum", false)
		assert.ErrorIs(t, err, ErrBadValue)
		_, err = ParseCPUName("", false)
		assert.ErrorIs(t, err, ErrBadValue)
	})
}

func TestDetectCPUWithoutAVX512(t *testing.T) {
	assert.Zero(t, DetectCPU(false)&CPUAVX512)
}

func TestCPUNames(t *testing.T) {
	flags, err := ParseCPUName("sse3,fma3", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"MMX2", "SSE", "SSE2", "SSE3", "FMA3"}, CPUNames(flags))
	assert.Empty(t, CPUNames(0))
}
