package param

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toolList(lines []string) []string {
	var tools []string
	for _, l := range lines {
		if strings.HasPrefix(l, "tools: ") {
			tools = append(tools, strings.Fields(strings.TrimPrefix(l, "tools:"))...)
		}
	}
	return tools
}

func TestToolSummaryDefault(t *testing.T) {
	lines := Default().ToolSummary()
	require.NotEmpty(t, lines)

	assert.Equal(t, "Coding QT: max CU size, min CU size : 64 / 8", lines[0])
	assert.Contains(t, lines, "Residual QT: max TU size, max depth : 32 / 1 inter / 1 intra")
	assert.Contains(t, lines, "ME / range / subpel / merge         : hex / 57 / 2 / 2")
	assert.Contains(t, lines, "Keyframe min / max / scenecut / bias: 0 / 250 / 40 / 500.00")
	assert.Contains(t, lines, "References / ref-limit  cu / depth  : 3 / on / on")
	assert.Contains(t, lines, "AQ: mode / str / qg-size / cu-tree  : 2 / 1.0 / 32 / 1")
	assert.Contains(t, lines, "Rate Control / qCompress            : CRF-28.0 / 0.60")

	tools := toolList(lines)
	assert.Equal(t, []string{
		"rd=3", "psy-rd=2.00", "rskip", "signhide", "tmvp",
		"strong-intra-smoothing", "lslices=8", "deblock", "sao",
	}, tools)
}

func TestToolSummaryWraps(t *testing.T) {
	p, err := New("placebo", "")
	require.NoError(t, err)
	p.NoiseReductionIntra = 100
	p.NoiseReductionInter = 200
	p.CULossless = true
	p.ConstrainedIntra = true
	p.DeblockTCOffset = -1
	p.DeblockBetaOffset = 2

	lines := p.ToolSummary()
	var toolLines []string
	for _, l := range lines {
		if strings.HasPrefix(l, "tools:") {
			toolLines = append(toolLines, l)
			assert.Less(t, len(l)-len("tools:")+toolsOverhead, toolsWidth+1, l)
		}
	}
	assert.Greater(t, len(toolLines), 1)
	tools := toolList(lines)
	assert.Contains(t, tools, "deblock(tC=-1:B=2)")
	assert.Contains(t, tools, "tskip")
	assert.Contains(t, tools, "nr-inter=200")
}

func TestToolSummaryRateControlLines(t *testing.T) {
	p := Default()
	require.NoError(t, p.Set("bitrate", "3000"))
	require.NoError(t, p.Set("vbv-bufsize", "6000"))
	require.NoError(t, p.Set("vbv-maxrate", "3500"))
	lines := p.ToolSummary()
	assert.Contains(t, lines, "Rate Control / qCompress            : ABR-3000 kbps / 0.60")
	assert.Contains(t, lines, "VBV/HRD buffer / max-rate / init    : 6000 / 3500 / 0.900")

	p = Default()
	p.Lossless = true
	assert.Contains(t, p.ToolSummary(), "Rate Control                        : Lossless")

	p = Default()
	p.KeyframeMax = OpenEnded
	p.ScenecutThreshold = 0
	assert.Contains(t, p.ToolSummary(), "Keyframe min / max / scenecut       : disabled")
}

func TestToolSummaryInterlace(t *testing.T) {
	p := Default()
	require.NoError(t, p.Set("interlace", "bff"))
	assert.Equal(t, "Interlaced field inputs             : bff", p.ToolSummary()[0])
}
