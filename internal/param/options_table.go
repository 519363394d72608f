package param

import (
	"strings"
)

// optionTable is the dispatch table. Canonical names are unique; see
// TestOptionTableNamesUnique.
var optionTable = []Option{
	// Performance and logging
	{Name: "asm", Bool: true, set: setASM},
	intOpt("frame-threads", func(p *Param) *int { return &p.FrameNumThreads }),
	strOpt("pools", func(p *Param) *string { return &p.NumaPools }, "numa-pools"),
	boolOpt("wpp", func(p *Param) *bool { return &p.EnableWavefront }),
	boolOpt("pmode", func(p *Param) *bool { return &p.DistributeModeAnalysis }),
	boolOpt("pme", func(p *Param) *bool { return &p.DistributeMotionEstimation }),
	{Name: "log-level", Aliases: []string{"log"}, set: logLevelSetter(func(p *Param) *int { return &p.LogLevel })},
	strOpt("log-file", func(p *Param) *string { return &p.LogFile }),
	{Name: "log-file-level", set: logLevelSetter(func(p *Param) *int { return &p.LogFileLevel })},
	strOpt("csv", func(p *Param) *string { return &p.CSVFile }),
	intOpt("csv-log-level", func(p *Param) *int { return &p.CSVLogLevel }),
	boolOpt("cu-stats", func(p *Param) *bool { return &p.LogCUStats }),
	intOpt("hash", func(p *Param) *int { return &p.DecodedPictureHashSEI }),
	intOpt("opts", func(p *Param) *int { return &p.Opts }),
	boolOpt("stylish", func(p *Param) *bool { return &p.Stylish }),
	boolOpt("psnr", func(p *Param) *bool { return &p.EnablePSNR }),
	boolOpt("ssim", func(p *Param) *bool { return &p.EnableSSIM }),

	// Source
	{Name: "fps", set: setFPS},
	{Name: "input-res", set: setInputRes},
	nameOpt("input-csp", SourceCspNames, func(p *Param) *int { return &p.InternalCsp }),
	intOpt("output-depth", func(p *Param) *int { return &p.InternalBitDepth }),
	gatedName("interlace", InterlaceNames, func(p *Param) *int { return &p.InterlaceMode }),
	intOpt("total-frames", func(p *Param) *int { return &p.TotalFrames }),
	{Name: "level-idc", Aliases: []string{"level"}, set: tenthsSetter(func(p *Param) *int { return &p.LevelIdc })},
	boolOpt("high-tier", func(p *Param) *bool { return &p.HighTier }),
	boolOpt("uhd-bd", func(p *Param) *bool { return &p.UHDBluray }),
	boolOpt("allow-non-conformance", func(p *Param) *bool { return &p.AllowNonConformance }),
	intOpt("chunk-start", func(p *Param) *int { return &p.ChunkStart }),
	intOpt("chunk-end", func(p *Param) *int { return &p.ChunkEnd }),

	// Bitstream and SEI
	boolOpt("annexb", func(p *Param) *bool { return &p.AnnexB }),
	boolOpt("repeat-headers", func(p *Param) *bool { return &p.RepeatHeaders }),
	boolOpt("aud", func(p *Param) *bool { return &p.AccessUnitDelimiters }),
	boolOpt("hrd", func(p *Param) *bool { return &p.EmitHRDSEI }),
	boolOpt("info", func(p *Param) *bool { return &p.EmitInfoSEI }),
	boolOpt("hdr", func(p *Param) *bool { return &p.EmitHDRSEI }),
	boolOpt("idr-recovery-sei", func(p *Param) *bool { return &p.EmitIDRRecoverySEI }),
	boolOpt("vui-timing-info", func(p *Param) *bool { return &p.EmitVUITimingInfo }),
	boolOpt("vui-hrd-info", func(p *Param) *bool { return &p.EmitVUIHRDInfo }),
	boolOpt("hrd-concat", func(p *Param) *bool { return &p.HRDConcat }),
	boolOpt("single-sei", func(p *Param) *bool { return &p.SingleSEINAL }),
	intOpt("atc-sei", func(p *Param) *int { return &p.PreferredTransferCharacteristic }),
	intOpt("pic-struct", func(p *Param) *int { return &p.PictureStructure }),
	strOpt("nalu-file", func(p *Param) *string { return &p.NALUFile }),
	intOpt("log2-max-poc-lsb", func(p *Param) *int { return &p.Log2MaxPocLsb }),
	intOpt("slices", func(p *Param) *int { return &p.MaxSlices }),
	boolOpt("opt-qp-pps", func(p *Param) *bool { return &p.OptQpPPS }),
	boolOpt("opt-ref-list-length-pps", func(p *Param) *bool { return &p.OptRefListLengthPPS }),
	boolOpt("opt-cu-delta-qp", func(p *Param) *bool { return &p.OptCUDeltaQP }),
	boolOpt("multi-pass-opt-rps", func(p *Param) *bool { return &p.MultiPassOptRPS }),

	// CU and TU sizing
	intOpt("ctu", func(p *Param) *int { return &p.MaxCUSize }),
	intOpt("min-cu-size", func(p *Param) *int { return &p.MinCUSize }),
	intOpt("tu-intra-depth", func(p *Param) *int { return &p.TUQTMaxIntraDepth }),
	intOpt("tu-inter-depth", func(p *Param) *int { return &p.TUQTMaxInterDepth }),
	intOpt("max-tu-size", func(p *Param) *int { return &p.MaxTUSize }),
	intOpt("limit-tu", func(p *Param) *int { return &p.LimitTU }),

	// GOP structure
	intOpt("keyint", func(p *Param) *int { return &p.KeyframeMax }),
	intOpt("min-keyint", func(p *Param) *int { return &p.KeyframeMin }),
	intOpt("gop-lookahead", func(p *Param) *int { return &p.GOPLookahead }),
	boolOpt("open-gop", func(p *Param) *bool { return &p.OpenGOP }),
	intOpt("bframes", func(p *Param) *int { return &p.BFrames }),
	intOpt("rc-lookahead", func(p *Param) *int { return &p.LookaheadDepth }),
	gatedInt("b-adapt", func(p *Param) *int { return &p.BFrameAdaptive }),
	boolOpt("b-pyramid", func(p *Param) *bool { return &p.BPyramid }),
	intOpt("bframe-bias", func(p *Param) *int { return &p.BFrameBias }),
	gatedInt("scenecut", func(p *Param) *int { return &p.ScenecutThreshold }),
	floatOpt("scenecut-bias", func(p *Param) *float64 { return &p.ScenecutBias }),
	intOpt("lookahead-slices", func(p *Param) *int { return &p.LookaheadSlices }),
	intOpt("lookahead-threads", func(p *Param) *int { return &p.LookaheadThreads }),
	intOpt("radl", func(p *Param) *int { return &p.RADL }),
	boolOpt("intra-refresh", func(p *Param) *bool { return &p.IntraRefresh }),
	boolOpt("temporal-layers", func(p *Param) *bool { return &p.TemporalSubLayers }),

	// Intra tools
	boolOpt("constrained-intra", func(p *Param) *bool { return &p.ConstrainedIntra }, "cip"),
	boolOpt("strong-intra-smoothing", func(p *Param) *bool { return &p.StrongIntraSmoothing }),
	boolOpt("fast-intra", func(p *Param) *bool { return &p.FastIntra }),
	boolOpt("splitrd-skip", func(p *Param) *bool { return &p.SplitRdSkip }),
	boolOpt("b-intra", func(p *Param) *bool { return &p.IntraInBFrames }),

	// Inter tools
	nameOpt("me", MotionEstNames, func(p *Param) *int { return &p.SearchMethod }),
	intOpt("subme", func(p *Param) *int { return &p.SubpelRefine }),
	intOpt("merange", func(p *Param) *int { return &p.SearchRange }),
	intOpt("max-merge", func(p *Param) *int { return &p.MaxNumMergeCand }),
	intOpt("ref", func(p *Param) *int { return &p.MaxNumReferences }),
	intOpt("limit-refs", func(p *Param) *int { return &p.LimitReferences }),
	boolOpt("limit-modes", func(p *Param) *bool { return &p.LimitModes }),
	boolOpt("weightp", func(p *Param) *bool { return &p.WeightedPred }),
	boolOpt("weightb", func(p *Param) *bool { return &p.WeightedBiPred }),
	boolOpt("early-skip", func(p *Param) *bool { return &p.EarlySkip }),
	boolOpt("rskip", func(p *Param) *bool { return &p.RecursionSkip }),
	boolOpt("amp", func(p *Param) *bool { return &p.AMP }),
	boolOpt("rect", func(p *Param) *bool { return &p.RectInter }),
	intOpt("rd", func(p *Param) *int { return &p.RDLevel }),
	gatedInt("rdoq", func(p *Param) *int { return &p.RDOQLevel }, "rdoq-level"),
	floatOpt("dynamic-rd", func(p *Param) *float64 { return &p.DynamicRD }),
	boolOpt("rd-refine", func(p *Param) *bool { return &p.RDRefine }),
	boolOpt("signhide", func(p *Param) *bool { return &p.SignHiding }),
	boolOpt("tskip", func(p *Param) *bool { return &p.TransformSkip }),
	boolOpt("tskip-fast", func(p *Param) *bool { return &p.TSkipFast }),
	boolOpt("temporal-mvp", func(p *Param) *bool { return &p.TemporalMVP }),
	boolOpt("analyze-src-pics", func(p *Param) *bool { return &p.SourceReferenceEstimation }),

	// Loop filters
	{Name: "deblock", Bool: true, set: setDeblock},
	boolOpt("lft", func(p *Param) *bool { return &p.LoopFilter }),
	boolOpt("sao", func(p *Param) *bool { return &p.SAO }),
	boolOpt("sao-non-deblock", func(p *Param) *bool { return &p.SAONonDeblocked }),
	boolOpt("limit-sao", func(p *Param) *bool { return &p.LimitSAO }),

	// Quality
	intOpt("cbqpoffs", func(p *Param) *int { return &p.CbQPOffset }),
	intOpt("crqpoffs", func(p *Param) *int { return &p.CrQPOffset }),
	intOpt("rdpenalty", func(p *Param) *int { return &p.RDPenalty }),
	gatedFloat("psy-rd", func(p *Param) *float64 { return &p.PsyRD }),
	gatedFloat("psy-rdoq", func(p *Param) *float64 { return &p.PsyRDOQ }),
	{Name: "ssim-rd", Bool: true, set: setSSIMRD},
	boolOpt("lossless", func(p *Param) *bool { return &p.Lossless }),
	boolOpt("cu-lossless", func(p *Param) *bool { return &p.CULossless }),
	intOpt("nr-intra", func(p *Param) *int { return &p.NoiseReductionIntra }),
	intOpt("nr-inter", func(p *Param) *int { return &p.NoiseReductionInter }),
	strOpt("scaling-list", func(p *Param) *string { return &p.ScalingLists }),
	boolOpt("lowpass-dct", func(p *Param) *bool { return &p.LowPassDCT }),
	boolOpt("aq-motion", func(p *Param) *bool { return &p.AQMotion }),

	// Analysis save/load and refinement
	nameOpt("analysis-reuse-mode", AnalysisNames, func(p *Param) *int { return &p.AnalysisReuseMode }),
	strOpt("analysis-reuse-file", func(p *Param) *string { return &p.AnalysisReuseFile }),
	strOpt("analysis-save", func(p *Param) *string { return &p.AnalysisSave }),
	strOpt("analysis-load", func(p *Param) *string { return &p.AnalysisLoad }),
	intOpt("analysis-reuse-level", func(p *Param) *int { return &p.AnalysisReuseLevel }),
	boolOpt("multi-pass-opt-analysis", func(p *Param) *bool { return &p.AnalysisMultiPassRefine }),
	boolOpt("multi-pass-opt-distortion", func(p *Param) *bool { return &p.AnalysisMultiPassDistortion }),
	{Name: "refine-analysis-type", set: setAnalysisType},
	intOpt("scale-factor", func(p *Param) *int { return &p.ScaleFactor }),
	intOpt("refine-intra", func(p *Param) *int { return &p.IntraRefine }),
	intOpt("refine-inter", func(p *Param) *int { return &p.InterRefine }),
	boolOpt("refine-mv", func(p *Param) *bool { return &p.MVRefine }),
	boolOpt("dynamic-refine", func(p *Param) *bool { return &p.DynamicRefine }),
	intOpt("refine-ctu-distortion", func(p *Param) *int { return &p.CTUDistortionRefine }),
	intOpt("ctu-info", func(p *Param) *int { return &p.CTUInfo }),
	intOpt("force-flush", func(p *Param) *int { return &p.ForceFlush }),
	boolOpt("copy-pic", func(p *Param) *bool { return &p.CopyPicToFrame }),
	floatOpt("max-ausize-factor", func(p *Param) *float64 { return &p.MaxAUSizeFactor }),

	// Rate control
	{Name: "crf", set: setCRF},
	{Name: "bitrate", set: setBitrate},
	{Name: "qp", set: setQP},
	floatOpt("crf-max", func(p *Param) *float64 { return &p.RC.RFConstantMax }),
	floatOpt("crf-min", func(p *Param) *float64 { return &p.RC.RFConstantMin }),
	floatOpt("qcomp", func(p *Param) *float64 { return &p.RC.QCompress }),
	floatOpt("ipratio", func(p *Param) *float64 { return &p.RC.IPFactor }, "ip-factor"),
	floatOpt("pbratio", func(p *Param) *float64 { return &p.RC.PBFactor }, "pb-factor"),
	intOpt("qpstep", func(p *Param) *int { return &p.RC.QPStep }),
	intOpt("qpmin", func(p *Param) *int { return &p.RC.QPMin }),
	intOpt("qpmax", func(p *Param) *int { return &p.RC.QPMax }),
	intOpt("aq-mode", func(p *Param) *int { return &p.RC.AQMode }),
	floatOpt("aq-strength", func(p *Param) *float64 { return &p.RC.AQStrength }),
	floatOpt("qp-adaptation-range", func(p *Param) *float64 { return &p.RC.QPAdaptationRange }),
	boolOpt("hevc-aq", func(p *Param) *bool { return &p.RC.HEVCAQ }),
	intOpt("qg-size", func(p *Param) *int { return &p.RC.QGSize }),
	boolOpt("cutree", func(p *Param) *bool { return &p.RC.CUTree }),
	intOpt("vbv-maxrate", func(p *Param) *int { return &p.RC.VBVMaxBitrate }),
	intOpt("vbv-bufsize", func(p *Param) *int { return &p.RC.VBVBufferSize }),
	floatOpt("vbv-init", func(p *Param) *float64 { return &p.RC.VBVBufferInit }),
	floatOpt("vbv-end", func(p *Param) *float64 { return &p.VBVBufferEnd }),
	floatOpt("vbv-end-fr-adj", func(p *Param) *float64 { return &p.VBVEndFrameAdjust }),
	boolOpt("const-vbv", func(p *Param) *bool { return &p.RC.ConstVBV }),
	{Name: "strict-cbr", Bool: true, set: setStrictCBR},
	boolOpt("rc-grain", func(p *Param) *bool { return &p.RC.Grain }),
	{Name: "pass", set: setPass},
	strOpt("stats", func(p *Param) *string { return &p.RC.StatFileName }),
	boolOpt("slow-firstpass", func(p *Param) *bool { return &p.RC.SlowFirstPass }),
	floatOpt("cplxblur", func(p *Param) *float64 { return &p.RC.ComplexityBlur }),
	floatOpt("qblur", func(p *Param) *float64 { return &p.RC.QBlur }),
	strOpt("lambda-file", func(p *Param) *string { return &p.RC.LambdaFileName }),
	{Name: "zones", set: setZones},

	// VUI
	{Name: "sar", set: setSAR},
	{Name: "overscan", set: setOverscan},
	{Name: "videoformat", set: setVideoFormat},
	{Name: "range", set: setRange},
	{Name: "colorprim", set: colorSetter(ColorPrimNames, func(p *Param) *int { return &p.VUI.ColorPrimaries })},
	{Name: "transfer", set: colorSetter(TransferNames, func(p *Param) *int { return &p.VUI.TransferCharacteristics })},
	{Name: "colormatrix", set: colorSetter(ColorMatrixNames, func(p *Param) *int { return &p.VUI.MatrixCoeffs })},
	{Name: "chromaloc", set: setChromaLoc},
	{Name: "display-window", Aliases: []string{"crop-rect"}, Bool: true, set: setDisplayWindow},

	// HDR
	strOpt("master-display", func(p *Param) *string { return &p.MasteringDisplay }),
	{Name: "max-cll", set: setMaxCLL},
	{Name: "min-luma", set: lumaSetter(func(p *Param) *uint16 { return &p.MinLuma })},
	{Name: "max-luma", set: lumaSetter(func(p *Param) *uint16 { return &p.MaxLuma })},
	boolOpt("hdr-opt", func(p *Param) *bool { return &p.HDROpt }),
	strOpt("dhdr10-info", func(p *Param) *string { return &p.ToneMapFile }),
	boolOpt("dhdr10-opt", func(p *Param) *bool { return &p.DHDR10Opt }),
	{Name: "dolby-vision-profile", set: tenthsSetter(func(p *Param) *int { return &p.DolbyProfile })},
}

func setASM(p *Param, v string) (err error) {
	if strings.EqualFold(v, "avx512") {
		p.CPUID = DetectCPU(true)
		return nil
	}
	p.CPUID, err = ParseCPUName(v, false)
	return err
}

func setFPS(p *Param, v string) error {
	if n := scanInts(v, '/', 2); len(n) == 2 {
		p.FPSNum, p.FPSDenom = uint32(n[0]), uint32(n[1])
		return nil
	}
	f, err := parseFloat(v)
	fps := float32(f)
	if fps > 0 && fps <= float32(maxInt32/1000) {
		p.FPSNum = uint32(fps*1000 + .5)
		p.FPSDenom = 1000
		return err
	}
	n, ierr := parseInt(v)
	p.FPSNum, p.FPSDenom = uint32(n), 1
	if err != nil {
		return err
	}
	return ierr
}

const maxInt32 = 1<<31 - 1

func setInputRes(p *Param, v string) error {
	n := scanInts(v, 'x', 2)
	if len(n) > 0 {
		p.SourceWidth = n[0]
	}
	if len(n) > 1 {
		p.SourceHeight = n[1]
	}
	if len(n) != 2 {
		return ErrBadValue
	}
	return nil
}

// logLevelSetter accepts a number or one of none, error, warning, info,
// debug, full.
func logLevelSetter(f func(*Param) *int) setFunc {
	return func(p *Param, v string) error {
		n, err := parseInt(v)
		if err != nil {
			n, err = parseName(v, logLevelNames)
			n--
		}
		*f(p) = n
		return err
	}
}

// tenthsSetter accepts "5.1" or "51", both stored as 51.
func tenthsSetter(f func(*Param) *int) setFunc {
	return func(p *Param, v string) error {
		fv, ferr := parseFloat(v)
		if fv < 10 {
			*f(p) = int(10*fv + .5)
			return ferr
		}
		n, err := parseInt(v)
		if n < 100 {
			*f(p) = n
			return err
		}
		return ErrBadValue
	}
}

func setDeblock(p *Param, v string) error {
	n := scanInts(v, ':', 2)
	if len(n) < 2 {
		n = scanInts(v, ',', 2)
	}
	switch len(n) {
	case 2:
		p.DeblockTCOffset, p.DeblockBetaOffset = n[0], n[1]
		p.LoopFilter = true
		return nil
	case 1:
		p.DeblockTCOffset, p.DeblockBetaOffset = n[0], n[0]
		p.LoopFilter = true
		return nil
	}
	b, err := parseBool(v)
	p.LoopFilter = b
	return err
}

func setSSIMRD(p *Param, v string) error {
	b, err := parseBool(v)
	if err != nil {
		return err
	}
	if b {
		p.PsyRD = 0
	}
	p.SSIMRD = b
	return nil
}

func setAnalysisType(p *Param, v string) error {
	switch v {
	case "avc":
		p.AnalysisType = AnalysisAVC
	case "hevc":
		p.AnalysisType = AnalysisHEVC
	case "off":
		p.AnalysisType = AnalysisNone
	default:
		return ErrBadValue
	}
	return nil
}

func setCRF(p *Param, v string) (err error) {
	p.RC.RFConstant, err = parseFloat(v)
	p.RC.Mode = RCCRF
	return err
}

func setBitrate(p *Param, v string) (err error) {
	p.RC.Bitrate, err = parseInt(v)
	p.RC.Mode = RCABR
	return err
}

func setQP(p *Param, v string) (err error) {
	p.RC.QP, err = parseInt(v)
	p.RC.Mode = RCCQP
	return err
}

func setStrictCBR(p *Param, v string) (err error) {
	p.RC.StrictCBR, err = parseBool(v)
	p.RC.PBFactor = 1.0
	return err
}

// setPass maps 1 to first pass, 2 to last pass and 3 to a middle pass
// that both reads and writes statistics.
func setPass(p *Param, v string) error {
	n, err := parseInt(v)
	pass := clip3(0, 3, n)
	p.RC.StatWrite = pass&1 != 0
	p.RC.StatRead = pass&2 != 0
	return err
}

func setSAR(p *Param, v string) error {
	idx, err := parseName(v, SARNames)
	if err == nil {
		p.VUI.AspectRatioIdc = idx
		return nil
	}
	p.VUI.AspectRatioIdc = ExtendedSAR
	n := scanInts(v, ':', 2)
	if len(n) > 0 {
		p.VUI.SARWidth = n[0]
	}
	if len(n) > 1 {
		p.VUI.SARHeight = n[1]
	}
	if len(n) != 2 {
		return ErrBadValue
	}
	return nil
}

func setOverscan(p *Param, v string) error {
	switch v {
	case "show":
		p.VUI.OverscanInfoPresent = true
	case "crop":
		p.VUI.OverscanInfoPresent = true
		p.VUI.OverscanAppropriate = true
	case "undef":
		p.VUI.OverscanInfoPresent = false
	default:
		return ErrBadValue
	}
	return nil
}

func setVideoFormat(p *Param, v string) (err error) {
	p.VUI.VideoSignalTypePresent = true
	p.VUI.VideoFormat, err = parseName(v, VideoFormatNames)
	return err
}

func setRange(p *Param, v string) (err error) {
	p.VUI.VideoSignalTypePresent = true
	p.VUI.FullRange, err = parseName(v, FullRangeNames)
	return err
}

func colorSetter(names []string, f func(*Param) *int) setFunc {
	return func(p *Param, v string) (err error) {
		p.VUI.VideoSignalTypePresent = true
		p.VUI.ColorDescriptionPresent = true
		*f(p), err = parseName(v, names)
		return err
	}
}

func setChromaLoc(p *Param, v string) (err error) {
	p.VUI.ChromaLocInfoPresent = true
	p.VUI.ChromaSampleLocTop, err = parseInt(v)
	p.VUI.ChromaSampleLocBottom = p.VUI.ChromaSampleLocTop
	return err
}

// setDisplayWindow takes either the left,top,right,bottom offsets or a
// boolean that switches the window without touching the offsets.
func setDisplayWindow(p *Param, v string) error {
	n := scanInts(v, ',', 4)
	if len(n) == 0 {
		b, err := parseBool(v)
		p.VUI.DefaultDisplayWindow = b
		return err
	}
	p.VUI.DefaultDisplayWindow = true
	dst := []*int{&p.VUI.DispWinLeft, &p.VUI.DispWinTop, &p.VUI.DispWinRight, &p.VUI.DispWinBottom}
	for i, x := range n {
		*dst[i] = x
	}
	if len(n) != 4 {
		return ErrBadValue
	}
	return nil
}

func setMaxCLL(p *Param, v string) error {
	n := scanInts(v, ',', 2)
	if len(n) > 0 {
		p.MaxCLL = uint16(n[0])
	}
	if len(n) > 1 {
		p.MaxFALL = uint16(n[1])
	}
	if len(n) != 2 {
		return ErrBadValue
	}
	return nil
}

func lumaSetter(f func(*Param) *uint16) setFunc {
	return func(p *Param, v string) error {
		n, err := parseInt(v)
		*f(p) = uint16(n)
		return err
	}
}
