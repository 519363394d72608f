package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileZoneLeavesBaseUntouched(t *testing.T) {
	base := Default()
	require.NoError(t, base.Set("bframes", "6"))
	snapshot := base.Clone()

	z, err := base.CompileZone(ZoneSpec{
		StartFrame: 0,
		EndFrame:   99,
		Settings:   []Setting{NewSetting("crf", "18"), Flag("no-sao")},
	})
	require.NoError(t, err)

	require.Len(t, base.RC.Zones, 1)
	withoutZones := base.Clone()
	withoutZones.RC.Zones = nil
	assert.Equal(t, snapshot, withoutZones)

	require.NotNil(t, z.Param)
	assert.Equal(t, 18.0, z.Param.RC.RFConstant)
	assert.False(t, z.Param.SAO)
	assert.Equal(t, 6, z.Param.BFrames, "zones start from the base record")
	assert.True(t, base.SAO)
	assert.Equal(t, 1.0, z.BitrateFactor)
	assert.False(t, z.ForceQP)
}

func TestCompileZoneForcedQP(t *testing.T) {
	base := Default()
	z, err := base.CompileZone(ZoneSpec{StartFrame: 10, EndFrame: 20, Settings: []Setting{NewSetting("qp", "30")}})
	require.NoError(t, err)
	assert.True(t, z.ForceQP)
	assert.Equal(t, 30, z.QP)
	assert.Zero(t, z.BitrateFactor)
	assert.Equal(t, RCCRF, base.RC.Mode)
}

func TestCompileZonesIndependent(t *testing.T) {
	base := Default()
	err := base.CompileZones([]ZoneSpec{
		{StartFrame: 0, EndFrame: 99, Settings: []Setting{NewSetting("crf", "18")}},
		{StartFrame: 100, EndFrame: OpenEnded, Settings: []Setting{NewSetting("crf", "24")}},
	})
	require.NoError(t, err)
	require.Len(t, base.RC.Zones, 2)

	first, second := base.RC.Zones[0], base.RC.Zones[1]
	assert.Equal(t, 0, first.StartFrame)
	assert.Equal(t, 100, second.StartFrame)
	assert.Equal(t, 18.0, first.Param.RC.RFConstant)
	assert.Equal(t, 24.0, second.Param.RC.RFConstant)
	assert.NotSame(t, first.Param, second.Param)

	assert.Nil(t, first.Param.RC.Zones, "zones do not nest")
	assert.Nil(t, second.Param.RC.Zones)
}

func TestCompileZonesAllOrNothing(t *testing.T) {
	base := Default()
	err := base.CompileZones([]ZoneSpec{
		{StartFrame: 0, EndFrame: 10, Settings: []Setting{NewSetting("crf", "18")}},
		{StartFrame: 11, EndFrame: 20, Settings: []Setting{NewSetting("crf", "eighteen")}},
	})
	assert.ErrorIs(t, err, ErrBadValue)
	assert.Empty(t, base.RC.Zones)

	err = base.CompileZones([]ZoneSpec{
		{StartFrame: 0, EndFrame: 10, Settings: []Setting{NewSetting("frobnicate", "1")}},
	})
	assert.ErrorIs(t, err, ErrBadName)
	assert.Empty(t, base.RC.Zones)
}

func TestCompileZoneBadRange(t *testing.T) {
	base := Default()
	_, err := base.CompileZone(ZoneSpec{StartFrame: 50, EndFrame: 10})
	assert.ErrorIs(t, err, ErrBadValue)
	_, err = base.CompileZone(ZoneSpec{StartFrame: -1, EndFrame: 10})
	assert.ErrorIs(t, err, ErrBadValue)
	assert.Empty(t, base.RC.Zones)
}

func TestCloneDeepCopiesZones(t *testing.T) {
	base := Default()
	_, err := base.CompileZone(ZoneSpec{StartFrame: 0, EndFrame: 5, Settings: []Setting{NewSetting("crf", "18")}})
	require.NoError(t, err)

	c := base.Clone()
	c.RC.Zones[0].Param.RC.RFConstant = 40
	c.RC.Zones[0].StartFrame = 3
	assert.Equal(t, 18.0, base.RC.Zones[0].Param.RC.RFConstant)
	assert.Equal(t, 0, base.RC.Zones[0].StartFrame)
}
