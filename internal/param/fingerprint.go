package param

import (
	"fmt"
	"strings"
)

// TierSeparator splits the three tiers of the fingerprint.
const TierSeparator = "-----"

type fingerprint struct {
	sb strings.Builder
}

func (f *fingerprint) add(format string, args ...interface{}) {
	if f.sb.Len() > 0 {
		f.sb.WriteByte(' ')
	}
	fmt.Fprintf(&f.sb, format, args...)
}

func (f *fingerprint) flag(on bool, name string) {
	if on {
		f.add("%s", name)
	} else {
		f.add("no-%s", name)
	}
}

// String returns the canonical fingerprint of p.
func (p *Param) String() string {
	return p.Fingerprint(0, 0)
}

// Fingerprint renders p as one line of space separated key=value tokens
// in a fixed order: rate control and core tools first, then secondary
// coding tools, then CPU, logging, VUI, zone and HDR detail. The tiers are
// separated by TierSeparator. padX and padY are subtracted from the
// reported input resolution.
//
// Nothing is emitted unless bit 2 of Opts is set.
func (p *Param) Fingerprint(padX, padY int) string {
	if p.Opts&2 == 0 {
		return ""
	}
	f := &fingerprint{}
	p.primaryTier(f)
	f.add(TierSeparator)
	p.secondaryTier(f)
	f.add(TierSeparator)
	p.diagnosticTier(f, padX, padY)
	return f.sb.String()
}

func (p *Param) primaryTier(f *fingerprint) {
	rc := &p.RC
	switch rc.Mode {
	case RCABR:
		if rc.Bitrate == rc.VBVMaxBitrate {
			f.add("rc=cbr")
		} else {
			f.add("rc=abr")
		}
	case RCCRF:
		f.add("rc=crf")
	default:
		f.add("rc=cqp")
	}
	if rc.Mode == RCABR || rc.Mode == RCCRF {
		if rc.Mode == RCCRF {
			f.add("crf=%.4f", rc.RFConstant)
		} else {
			f.add("bitrate=%d", rc.Bitrate)
		}
		f.add("qcomp=%.2f qpstep=%d", rc.QCompress, rc.QPStep)
		f.add("stats-write=%d", b2i(rc.StatWrite))
		f.add("stats-read=%d", b2i(rc.StatRead))
		if rc.StatRead {
			f.add("cplxblur=%.1f qblur=%.1f", rc.ComplexityBlur, rc.QBlur)
		}
		if rc.StatWrite && !rc.StatRead {
			f.flag(rc.SlowFirstPass, "slow-firstpass")
		}
		if rc.VBVBufferSize != 0 {
			f.add("vbv-maxrate=%d vbv-bufsize=%d vbv-init=%.1f",
				rc.VBVMaxBitrate, rc.VBVBufferSize, rc.VBVBufferInit)
			if p.VBVBufferEnd != 0 {
				f.add("vbv-end=%.1f vbv-end-fr-adj=%.1f", p.VBVBufferEnd, p.VBVEndFrameAdjust)
			}
			if rc.Mode == RCCRF {
				f.add("crf-max=%.1f crf-min=%.1f", rc.RFConstantMax, rc.RFConstantMin)
			}
		}
	} else if rc.Mode == RCCQP {
		f.add("qp=%d", rc.QP)
	}

	f.flag(p.Lossless, "lossless")
	f.flag(p.CULossless, "cu-lossless")
	f.add("aq-mode=%d", rc.AQMode)
	f.add("aq-strength=%.2f", rc.AQStrength)
	f.add("cbqpoffs=%d", p.CbQPOffset)
	f.add("crqpoffs=%d", p.CrQPOffset)
	if !(rc.Mode == RCCQP && rc.QP == 0) {
		f.add("ipratio=%.2f", rc.IPFactor)
		if p.BFrames != 0 {
			f.add("pbratio=%.2f", rc.PBFactor)
		}
	}
	f.add("psy-rd=%.2f", p.PsyRD)
	f.add("psy-rdoq=%.2f", p.PsyRDOQ)
	if p.LoopFilter {
		f.add("deblock=%d:%d", p.DeblockTCOffset, p.DeblockBetaOffset)
	} else {
		f.add("no-deblock")
	}

	f.add("ref=%d", p.MaxNumReferences)
	f.add("limit-refs=%d", p.LimitReferences)
	f.flag(p.LimitModes, "limit-modes")
	f.add("bframes=%d", p.BFrames)
	f.add("b-adapt=%d", p.BFrameAdaptive)
	f.add("bframe-bias=%d", p.BFrameBias)
	f.flag(p.BPyramid, "b-pyramid")
	f.flag(p.IntraInBFrames, "b-intra")
	f.flag(p.WeightedPred, "weightp")
	f.flag(p.WeightedBiPred, "weightb")
	f.add("min-keyint=%d", p.KeyframeMin)
	f.add("max-keyint=%d", p.KeyframeMax)
	f.add("rc-lookahead=%d", p.LookaheadDepth)
	f.add("gop-lookahead=%d", p.GOPLookahead)
	f.add("scenecut=%d", p.ScenecutThreshold)
	f.add("radl=%d", p.RADL)
	f.add("max-cu-size=%d", p.MaxCUSize)
	f.add("min-cu-size=%d", p.MinCUSize)
	f.add("me=%d", p.SearchMethod)
	f.add("subme=%d", p.SubpelRefine)
	f.add("merange=%d", p.SearchRange)
	f.add("rdoq-level=%d", p.RDOQLevel)
	f.add("rd=%d", p.RDLevel)
	f.add("rdpenalty=%d", p.RDPenalty)
	f.add("dynamic-rd=%.2f", p.DynamicRD)
	f.flag(p.RDRefine, "rd-refine")
}

func (p *Param) secondaryTier(f *fingerprint) {
	f.flag(p.RC.CUTree, "cutree")
	f.flag(p.SAO, "sao")
	f.flag(p.RectInter, "rect")
	f.flag(p.AMP, "amp")
	f.flag(p.OpenGOP, "open-gop")
	f.flag(p.EnableWavefront, "wpp")
	f.flag(p.DistributeModeAnalysis, "pmode")
	f.flag(p.DistributeMotionEstimation, "pme")
	f.flag(p.EnablePSNR, "psnr")
	f.flag(p.EnableSSIM, "ssim")
	f.add("nr-intra=%d", p.NoiseReductionIntra)
	f.add("nr-inter=%d", p.NoiseReductionInter)
	f.flag(p.ConstrainedIntra, "constrained-intra")
	f.flag(p.StrongIntraSmoothing, "strong-intra-smoothing")
	f.add("max-tu-size=%d", p.MaxTUSize)
	f.add("tu-inter-depth=%d", p.TUQTMaxInterDepth)
	f.add("tu-intra-depth=%d", p.TUQTMaxIntraDepth)
	f.add("limit-tu=%d", p.LimitTU)
	f.add("qg-size=%d", p.RC.QGSize)
	f.add("qpmax=%d qpmin=%d", p.RC.QPMax, p.RC.QPMin)
}

func (p *Param) diagnosticTier(f *fingerprint, padX, padY int) {
	f.add("cpuid=%d", p.CPUID)
	f.add("frame-threads=%d", p.FrameNumThreads)
	if p.NumaPools != "" {
		f.add("numa-pools=%s", p.NumaPools)
	}
	f.add("log-level=%d", p.LogLevel)
	if p.CSVFile != "" {
		f.add("csv csv-log-level=%d", p.CSVLogLevel)
	}
	f.add("bitdepth=%d", p.InternalBitDepth)
	f.add("input-csp=%d", p.InternalCsp)
	f.add("fps=%d/%d", p.FPSNum, p.FPSDenom)
	f.add("input-res=%dx%d", p.SourceWidth-padX, p.SourceHeight-padY)
	f.add("interlace=%d", p.InterlaceMode)
	if p.ChunkStart != 0 {
		f.add("chunk-start=%d", p.ChunkStart)
	}
	if p.ChunkEnd != 0 {
		f.add("chunk-end=%d", p.ChunkEnd)
	}
	f.add("level-idc=%d", p.LevelIdc)
	f.add("high-tier=%d", b2i(p.HighTier))
	f.add("uhd-bd=%d", b2i(p.UHDBluray))
	f.flag(p.AllowNonConformance, "allow-non-conformance")
	f.flag(p.RepeatHeaders, "repeat-headers")
	f.flag(p.AccessUnitDelimiters, "aud")
	f.flag(p.EmitHRDSEI, "hrd")
	f.flag(p.EmitInfoSEI, "info")
	f.add("hash=%d", p.DecodedPictureHashSEI)
	f.flag(p.TemporalSubLayers, "temporal-layers")
	f.add("lookahead-slices=%d", p.LookaheadSlices)
	f.flag(p.HRDConcat, "splice")
	f.flag(p.IntraRefresh, "intra-refresh")
	f.flag(p.SSIMRD, "ssim-rd")
	f.flag(p.SignHiding, "signhide")
	f.flag(p.TransformSkip, "tskip")
	f.add("max-merge=%d", p.MaxNumMergeCand)
	f.flag(p.TemporalMVP, "temporal-mvp")
	f.flag(p.SourceReferenceEstimation, "analyze-src-pics")
	f.flag(p.SAONonDeblocked, "sao-non-deblock")
	f.flag(p.EarlySkip, "early-skip")
	f.flag(p.RecursionSkip, "rskip")
	f.flag(p.FastIntra, "fast-intra")
	f.flag(p.TSkipFast, "tskip-fast")
	f.flag(p.SplitRdSkip, "splitrd-skip")

	f.add("zone-count=%d", len(p.RC.Zones))
	for _, z := range p.RC.Zones {
		f.add("zones: start-frame=%d end-frame=%d", z.StartFrame, z.EndFrame)
		if z.ForceQP {
			f.add("qp=%d", z.QP)
		} else {
			f.add("bitrate-factor=%f", z.BitrateFactor)
		}
	}
	f.flag(p.RC.StrictCBR, "strict-cbr")
	f.flag(p.RC.Grain, "rc-grain")
	f.flag(p.RC.ConstVBV, "const-vbv")

	v := &p.VUI
	f.add("sar=%d", v.AspectRatioIdc)
	if v.AspectRatioIdc == ExtendedSAR {
		f.add("sar-width : sar-height=%d:%d", v.SARWidth, v.SARHeight)
	}
	f.add("overscan=%d", b2i(v.OverscanInfoPresent))
	if v.OverscanInfoPresent {
		f.add("overscan-crop=%d", b2i(v.OverscanAppropriate))
	}
	f.add("videoformat=%d", v.VideoFormat)
	f.add("range=%d", v.FullRange)
	f.add("colorprim=%d", v.ColorPrimaries)
	f.add("transfer=%d", v.TransferCharacteristics)
	f.add("colormatrix=%d", v.MatrixCoeffs)
	f.add("chromaloc=%d", b2i(v.ChromaLocInfoPresent))
	if v.ChromaLocInfoPresent {
		f.add("chromaloc-top=%d chromaloc-bottom=%d", v.ChromaSampleLocTop, v.ChromaSampleLocBottom)
	}
	f.add("display-window=%d", b2i(v.DefaultDisplayWindow))
	if v.DefaultDisplayWindow {
		f.add("left=%d top=%d right=%d bottom=%d",
			v.DispWinLeft, v.DispWinTop, v.DispWinRight, v.DispWinBottom)
	}

	if p.MasteringDisplay != "" {
		f.add("master-display=%s", p.MasteringDisplay)
	}
	f.add("max-cll=%d,%d", p.MaxCLL, p.MaxFALL)
	f.add("min-luma=%d", p.MinLuma)
	f.add("max-luma=%d", p.MaxLuma)
	f.add("log2-max-poc-lsb=%d", p.Log2MaxPocLsb)
	f.flag(p.EmitVUITimingInfo, "vui-timing-info")
	f.flag(p.EmitVUIHRDInfo, "vui-hrd-info")
	f.add("slices=%d", p.MaxSlices)
	f.flag(p.OptQpPPS, "opt-qp-pps")
	f.flag(p.OptRefListLengthPPS, "opt-ref-list-length-pps")
	f.flag(p.MultiPassOptRPS, "multi-pass-opt-rps")
	f.add("scenecut-bias=%.2f", p.ScenecutBias)
	f.flag(p.OptCUDeltaQP, "opt-cu-delta-qp")
	f.flag(p.AQMotion, "aq-motion")
	f.flag(p.EmitHDRSEI, "hdr")
	f.flag(p.HDROpt, "hdr-opt")
	f.flag(p.DHDR10Opt, "dhdr10-opt")
	f.flag(p.EmitIDRRecoverySEI, "idr-recovery-sei")
	if p.AnalysisSave != "" {
		f.add("analysis-save")
	}
	if p.AnalysisLoad != "" {
		f.add("analysis-load")
	}
	f.add("analysis-reuse-level=%d", p.AnalysisReuseLevel)
	f.add("scale-factor=%d", p.ScaleFactor)
	f.add("refine-intra=%d", p.IntraRefine)
	f.add("refine-inter=%d", p.InterRefine)
	f.add("refine-mv=%d", b2i(p.MVRefine))
	f.add("refine-ctu-distortion=%d", p.CTUDistortionRefine)
	f.flag(p.LimitSAO, "limit-sao")
	f.add("ctu-info=%d", p.CTUInfo)
	f.flag(p.LowPassDCT, "lowpass-dct")
	f.add("refine-analysis-type=%d", p.AnalysisType)
	f.add("copy-pic=%d", b2i(p.CopyPicToFrame))
	f.add("max-ausize-factor=%.1f", p.MaxAUSizeFactor)
	f.flag(p.DynamicRefine, "dynamic-refine")
	f.flag(p.SingleSEINAL, "single-sei")
	f.flag(p.RC.HEVCAQ, "hevc-aq")
	f.add("qp-adaptation-range=%.2f", p.RC.QPAdaptationRange)
}
