package param

import (
	"fmt"
	"math"
	"strings"
)

const (
	toolsWidth    = 80
	toolsOverhead = len("x265 [info]: tools: ")
)

// ToolSummary returns the human readable summary an encoder prints at
// startup: one line per coding structure group followed by the enabled
// tools, wrapped to fit an 80 column log line.
func (p *Param) ToolSummary() []string {
	var lines []string
	line := func(format string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	if p.InterlaceMode != 0 && p.InterlaceMode < len(InterlaceNames) {
		line("Interlaced field inputs             : %s", InterlaceNames[p.InterlaceMode])
	}
	line("Coding QT: max CU size, min CU size : %d / %d", p.MaxCUSize, p.MinCUSize)
	line("Residual QT: max TU size, max depth : %d / %d inter / %d intra",
		p.MaxTUSize, p.TUQTMaxInterDepth, p.TUQTMaxIntraDepth)
	me := "?"
	if p.SearchMethod >= 0 && p.SearchMethod < len(MotionEstNames) {
		me = MotionEstNames[p.SearchMethod]
	}
	line("ME / range / subpel / merge         : %s / %d / %d / %d",
		me, p.SearchRange, p.SubpelRefine, p.MaxNumMergeCand)
	if p.KeyframeMax != math.MaxInt32 || p.ScenecutThreshold != 0 {
		line("Keyframe min / max / scenecut / bias: %d / %d / %d / %.2f",
			p.KeyframeMin, p.KeyframeMax, p.ScenecutThreshold, p.ScenecutBias*100)
	} else {
		line("Keyframe min / max / scenecut       : disabled")
	}
	if p.CbQPOffset != 0 || p.CrQPOffset != 0 {
		line("Cb/Cr QP Offset                     : %d / %d", p.CbQPOffset, p.CrQPOffset)
	}
	if p.RDPenalty != 0 {
		line("Intra 32x32 TU penalty type         : %d", p.RDPenalty)
	}
	line("Lookahead / bframes / badapt        : %d / %d / %d",
		p.LookaheadDepth, p.BFrames, p.BFrameAdaptive)
	line("b-pyramid / weightp / weightb       : %d / %d / %d",
		b2i(p.BPyramid), b2i(p.WeightedPred), b2i(p.WeightedBiPred))
	line("References / ref-limit  cu / depth  : %d / %s / %s",
		p.MaxNumReferences, onOff(p.LimitReferences&RefLimitCU != 0), onOff(p.LimitReferences&RefLimitDepth != 0))
	if p.RC.AQMode != AQNone {
		line("AQ: mode / str / qg-size / cu-tree  : %d / %0.1f / %d / %d",
			p.RC.AQMode, p.RC.AQStrength, p.RC.QGSize, b2i(p.RC.CUTree))
	}
	switch {
	case p.Lossless:
		line("Rate Control                        : Lossless")
	case p.RC.Mode == RCABR:
		line("Rate Control / qCompress            : ABR-%d kbps / %0.2f", p.RC.Bitrate, p.RC.QCompress)
	case p.RC.Mode == RCCQP:
		line("Rate Control                        : CQP-%d", p.RC.QP)
	case p.RC.Mode == RCCRF:
		line("Rate Control / qCompress            : CRF-%0.1f / %0.2f", p.RC.RFConstant, p.RC.QCompress)
	}
	if p.RC.VBVBufferSize != 0 {
		line("VBV/HRD buffer / max-rate / init    : %d / %d / %.3f",
			p.RC.VBVBufferSize, p.RC.VBVMaxBitrate, p.RC.VBVBufferInit)
	}

	return append(lines, p.toolLines()...)
}

func (p *Param) toolLines() []string {
	var (
		lines []string
		buf   strings.Builder
	)
	add := func(tool string) {
		if buf.Len()+len(tool)+toolsOverhead >= toolsWidth {
			lines = append(lines, "tools:"+buf.String())
			buf.Reset()
		}
		buf.WriteByte(' ')
		buf.WriteString(tool)
	}
	opt := func(on bool, tool string) {
		if on {
			add(tool)
		}
	}
	val := func(v interface{}, format string) {
		switch n := v.(type) {
		case int:
			if n != 0 {
				add(fmt.Sprintf(format, n))
			}
		case float64:
			if n != 0 {
				add(fmt.Sprintf(format, n))
			}
		}
	}

	opt(p.RectInter, "rect")
	opt(p.AMP, "amp")
	opt(p.LimitModes, "limit-modes")
	val(p.RDLevel, "rd=%d")
	val(p.DynamicRD, "dynamic-rd=%.2f")
	opt(p.SSIMRD, "ssim-rd")
	val(p.PsyRD, "psy-rd=%.2f")
	val(p.RDOQLevel, "rdoq=%d")
	val(p.PsyRDOQ, "psy-rdoq=%.2f")
	opt(p.RDRefine, "rd-refine")
	opt(p.EarlySkip, "early-skip")
	opt(p.RecursionSkip, "rskip")
	opt(p.SplitRdSkip, "splitrd-skip")
	val(p.NoiseReductionIntra, "nr-intra=%d")
	val(p.NoiseReductionInter, "nr-inter=%d")
	opt(p.TSkipFast, "tskip-fast")
	opt(!p.TSkipFast && p.TransformSkip, "tskip")
	val(p.LimitTU, "limit-tu=%d")
	opt(p.CULossless, "cu-lossless")
	opt(p.SignHiding, "signhide")
	opt(p.TemporalMVP, "tmvp")
	opt(p.ConstrainedIntra, "cip")
	opt(p.IntraInBFrames, "b-intra")
	opt(p.FastIntra, "fast-intra")
	opt(p.StrongIntraSmoothing, "strong-intra-smoothing")
	val(p.LookaheadSlices, "lslices=%d")
	val(p.LookaheadThreads, "lthreads=%d")
	val(p.CTUInfo, "ctu-info=%d")
	opt(p.AnalysisType == AnalysisAVC, "refine-analysis-type=avc")
	opt(p.AnalysisType == AnalysisHEVC, "refine-analysis-type=hevc")
	opt(p.DynamicRefine, "dynamic-refine")
	if p.MaxSlices > 1 {
		add(fmt.Sprintf("slices=%d", p.MaxSlices))
	}
	if p.LoopFilter {
		if p.DeblockBetaOffset != 0 || p.DeblockTCOffset != 0 {
			add(fmt.Sprintf("deblock(tC=%d:B=%d)", p.DeblockTCOffset, p.DeblockBetaOffset))
		} else {
			add("deblock")
		}
	}
	if p.SAO {
		if p.SAONonDeblocked {
			add("sao-non-deblock")
		} else {
			add("sao")
		}
	}
	opt(p.RC.StatWrite, "stats-write")
	opt(p.RC.StatRead, "stats-read")
	opt(p.SingleSEINAL, "single-sei")
	opt(p.ToneMapFile != "", "dhdr10-info")

	if buf.Len() > 0 {
		lines = append(lines, "tools:"+buf.String())
	}
	return lines
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
