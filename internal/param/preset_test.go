package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediumIsDefault(t *testing.T) {
	p, err := New("medium", "")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestPresetsAreDeterministic(t *testing.T) {
	for _, name := range PresetNames {
		t.Run(name, func(t *testing.T) {
			once, err := New(name, "")
			require.NoError(t, err)

			twice, err := New(name, "")
			require.NoError(t, err)
			require.NoError(t, twice.ApplyPreset(name))

			assert.Equal(t, once, twice)
		})
	}
}

func TestPresetByIndex(t *testing.T) {
	byIndex, err := New("9", "")
	require.NoError(t, err)
	byName, err := New("placebo", "")
	require.NoError(t, err)
	assert.Equal(t, byName, byIndex)

	_, err = New("10", "")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	_, err = New("turbo", "")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestPresetValues(t *testing.T) {
	p, err := New("ultrafast", "")
	require.NoError(t, err)
	assert.Equal(t, 32, p.MaxCUSize)
	assert.Equal(t, 16, p.MinCUSize)
	assert.Equal(t, DiaSearch, p.SearchMethod)
	assert.Equal(t, AQNone, p.RC.AQMode)
	assert.False(t, p.SAO)

	p, err = New("slower", "")
	require.NoError(t, err)
	assert.Equal(t, 8, p.BFrames)
	assert.Equal(t, 6, p.RDLevel)
	assert.Equal(t, 4, p.LimitTU)
	assert.True(t, p.AMP)
}

func TestTunes(t *testing.T) {
	t.Run("zerolatency", func(t *testing.T) {
		p, err := New("medium", "zerolatency")
		require.NoError(t, err)
		assert.Equal(t, 0, p.BFrames)
		assert.Equal(t, 0, p.LookaheadDepth)
		assert.False(t, p.RC.CUTree)
		assert.Equal(t, 1, p.FrameNumThreads)
	})

	t.Run("aliases and index", func(t *testing.T) {
		a, err := New("medium", "zero-latency")
		require.NoError(t, err)
		b, err := New("medium", "3")
		require.NoError(t, err)
		c, err := New("medium", "zerolatency")
		require.NoError(t, err)
		assert.Equal(t, c, a)
		assert.Equal(t, c, b)
	})

	t.Run("animation reads preset bframes", func(t *testing.T) {
		p, err := New("medium", "animation")
		require.NoError(t, err)
		assert.Equal(t, 6, p.BFrames)

		// ultrafast has bframes 3 and lookahead 5, so there is no room.
		p, err = New("ultrafast", "animation")
		require.NoError(t, err)
		assert.Equal(t, 3, p.BFrames)
	})

	t.Run("grain", func(t *testing.T) {
		p, err := New("medium", "grain")
		require.NoError(t, err)
		assert.True(t, p.RC.Grain)
		assert.Equal(t, 4.0, p.PsyRD)
		assert.Equal(t, 1, p.RC.QPStep)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := New("medium", "cinematic")
		assert.ErrorIs(t, err, ErrUnknownTune)
		assert.False(t, ValidTune("cinematic"))
	})
}

func TestAnimeTunes(t *testing.T) {
	t.Run("littlepox", func(t *testing.T) {
		p, err := New("medium", "littlepox")
		require.NoError(t, err)
		assert.Equal(t, 20.0, p.RC.RFConstant)
		assert.Equal(t, 1.8, p.PsyRD)
		assert.Equal(t, 32, p.MaxCUSize)
		assert.Equal(t, 40, p.LookaheadDepth)
		assert.Equal(t, -1, p.DeblockTCOffset)
		assert.Equal(t, 3, p.MaxNumReferences)
	})

	t.Run("prefix match is case-insensitive", func(t *testing.T) {
		assert.True(t, ValidTune("LP++"))
		assert.True(t, ValidTune("VCB-S"))
		assert.True(t, ValidTune("vcbs"))
	})

	t.Run("vcb-s++", func(t *testing.T) {
		p, err := New("medium", "vcb-s++")
		require.NoError(t, err)
		assert.Equal(t, 18.0, p.RC.RFConstant)
		assert.Equal(t, 4, p.SubpelRefine)
		assert.Equal(t, 4, p.MaxNumReferences)
		assert.True(t, p.RectInter)
		assert.True(t, p.IntraInBFrames)
	})

	t.Run("lp++ on ultrafast", func(t *testing.T) {
		p, err := New("ultrafast", "lp++")
		require.NoError(t, err)
		assert.Equal(t, 2, p.MaxNumReferences)
		assert.Equal(t, 4, p.BFrames)
	})
}

func TestAllPresetTuneCombinationsValidate(t *testing.T) {
	tunes := append([]string{""}, TuneNames...)
	tunes = append(tunes, "littlepox", "lp++", "vcb-s", "vcb-s++")
	for _, preset := range PresetNames {
		for _, tune := range tunes {
			p, err := New(preset, tune)
			require.NoError(t, err, "%s/%s", preset, tune)
			assert.Empty(t, Check(p, nil), "%s/%s", preset, tune)
		}
	}
}

func TestApplyFastFirstPass(t *testing.T) {
	p, err := New("slower", "")
	require.NoError(t, err)
	before := p.Clone()

	p.ApplyFastFirstPass()
	assert.Equal(t, before, p, "no effect unless only writing stats")

	require.NoError(t, p.Set("pass", "1"))
	p.ApplyFastFirstPass()
	assert.Equal(t, 1, p.MaxNumReferences)
	assert.Equal(t, 1, p.MaxNumMergeCand)
	assert.False(t, p.RectInter)
	assert.False(t, p.AMP)
	assert.Equal(t, DiaSearch, p.SearchMethod)
	assert.Equal(t, 2, p.SubpelRefine)
	assert.Equal(t, 2, p.RDLevel)
	assert.True(t, p.EarlySkip)
	assert.True(t, p.FastIntra)
}
