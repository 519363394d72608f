package param

import (
	"fmt"
	"math"
	"math/bits"
)

// Logger receives validator diagnostics. logger.ConsoleLogger and
// logger.FileLogger satisfy it.
type Logger interface {
	Errorf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Debugf(string, ...interface{}) {}

type checker struct {
	log      Logger
	failures []string
	// prefix names the zone being checked, empty for the base record.
	prefix string
}

func (c *checker) check(failed bool, msg string) {
	if !failed {
		return
	}
	msg = c.prefix + msg
	c.failures = append(c.failures, msg)
	c.log.Errorf("%s", msg)
}

// Validate runs Check and returns a *ValidationError when any check fails.
func (p *Param) Validate(log Logger) error {
	if failures := Check(p, log); len(failures) > 0 {
		return &ValidationError{Failures: failures}
	}
	return nil
}

// Check validates p and returns one message per failed check; each is
// also logged at error level. Every check of a phase runs, so all problems
// are reported together.
//
// Phase one checks CTU size and the UHD Blu-ray combination. If either
// fails, the rest of that record is skipped since phase two derives log2
// sizes from the CTU size. After phase two the HDR SEI and single-SEI flags
// are reconciled; that adjustment only warns.
//
// Each zone that carries its own record is checked the same way, with
// messages prefixed by the zone.
func Check(p *Param, log Logger) []string {
	if log == nil {
		log = nopLogger{}
	}
	c := &checker{log: log}
	p.checkRecord(c)
	for i := range p.RC.Zones {
		z := &p.RC.Zones[i]
		if z.Param == nil {
			continue
		}
		c.prefix = fmt.Sprintf("zone %d (frames %d-%d): ", i, z.StartFrame, z.EndFrame)
		if z.EndFrame == OpenEnded {
			c.prefix = fmt.Sprintf("zone %d (frames %d-): ", i, z.StartFrame)
		}
		z.Param.checkRecord(c)
	}
	return c.failures
}

func (p *Param) checkRecord(c *checker) {
	before := len(c.failures)
	c.check(p.UHDBluray && (CompiledBitDepth != 10 || p.InternalCsp != CSPI420 || p.InterlaceMode != 0),
		"uhd-bd: bit depth, chroma subsample, source picture type must be 10, 4:2:0, progressive")
	c.check(p.MaxCUSize != 64 && p.MaxCUSize != 32 && p.MaxCUSize != 16,
		"max cu size must be 16, 32, or 64")
	if len(c.failures) > before {
		return
	}

	p.checkFinite(c)
	p.checkStructure(c)
	p.checkRateControl(c)
	p.checkVUI(c)
	p.checkAnalysis(c)
	p.reconcileSEI(c)
}

// checkFinite catches NaN or infinite values stored without going through
// the dispatcher; every range check below is false for NaN.
func (p *Param) checkFinite(c *checker) {
	fields := []struct {
		name string
		v    float64
	}{
		{"scenecut-bias", p.ScenecutBias},
		{"dynamic-rd", p.DynamicRD},
		{"psy-rd", p.PsyRD},
		{"psy-rdoq", p.PsyRDOQ},
		{"max-ausize-factor", p.MaxAUSizeFactor},
		{"vbv-end", p.VBVBufferEnd},
		{"vbv-end-fr-adj", p.VBVEndFrameAdjust},
		{"crf", p.RC.RFConstant},
		{"crf-max", p.RC.RFConstantMax},
		{"crf-min", p.RC.RFConstantMin},
		{"qcomp", p.RC.QCompress},
		{"ipratio", p.RC.IPFactor},
		{"pbratio", p.RC.PBFactor},
		{"aq-strength", p.RC.AQStrength},
		{"qp-adaptation-range", p.RC.QPAdaptationRange},
		{"vbv-init", p.RC.VBVBufferInit},
		{"cplxblur", p.RC.ComplexityBlur},
		{"qblur", p.RC.QBlur},
	}
	for _, f := range fields {
		c.check(math.IsNaN(f.v) || math.IsInf(f.v, 0), f.name+" must be a finite number")
	}
}

func (p *Param) checkStructure(c *checker) {
	maxLog2CUSize := bits.TrailingZeros(uint(p.MaxCUSize))
	tuQTMaxLog2Size := min(maxLog2CUSize, 5)
	const tuQTMinLog2Size = 2
	qpFloor := -6 * (p.InternalBitDepth - 8)

	c.check(p.MaxSlices > 1 && !p.EnableWavefront,
		"multiple slices require wavefront parallel processing (--wpp)")
	c.check(p.InternalBitDepth != CompiledBitDepth,
		"internal bit depth must match compiled bit depth")
	c.check(p.MinCUSize != 32 && p.MinCUSize != 16 && p.MinCUSize != 8,
		"minimum CU size must be 8, 16 or 32")
	c.check(p.MinCUSize > p.MaxCUSize,
		"min CU size must be less than or equal to max CU size")
	c.check(p.RC.QP < qpFloor || p.RC.QP > QPMaxSpec,
		"QP exceeds supported range (-QpBDOffsetY to 51)")
	c.check(p.FPSNum == 0 || p.FPSDenom == 0,
		"frame rate numerator and denominator must be specified")
	c.check(p.InterlaceMode < 0 || p.InterlaceMode > 2,
		"interlace mode must be 0 (progressive) 1 (top-field first) or 2 (bottom field first)")
	c.check(p.SearchMethod < 0 || p.SearchMethod > FullSearch,
		"search method is not supported value (0:DIA 1:HEX 2:UMH 3:HM 4:SEA 5:FULL)")
	c.check(p.SearchRange < 0, "search range must be more than 0")
	c.check(p.SearchRange >= 32768, "search range must be less than 32768")
	c.check(p.SubpelRefine > MaxSubpelLevel, "subme must be less than or equal to 7")
	c.check(p.SubpelRefine < 0, "subme must be greater than or equal to 0")
	c.check(p.LimitReferences > 3, "limit-refs must be 0, 1, 2 or 3")
	c.check(p.FrameNumThreads < 0 || p.FrameNumThreads > MaxFrameThreads,
		"frame-threads must be between 0 and 16")
	c.check(p.CbQPOffset < -12, "min chroma Cb QP offset is -12")
	c.check(p.CbQPOffset > 12, "max chroma Cb QP offset is 12")
	c.check(p.CrQPOffset < -12, "min chroma Cr QP offset is -12")
	c.check(p.CrQPOffset > 12, "max chroma Cr QP offset is 12")

	c.check(tuQTMaxLog2Size > maxLog2CUSize,
		"QuadtreeTULog2MaxSize must be log2(maxCUSize) or smaller")
	c.check(p.TUQTMaxInterDepth < 1 || p.TUQTMaxInterDepth > 4,
		"tu-inter-depth must be greater than 0 and less than 5")
	c.check(maxLog2CUSize < tuQTMinLog2Size+p.TUQTMaxInterDepth-1,
		"tu-inter-depth must be less than or equal to the difference between log2(maxCUSize) and QuadtreeTULog2MinSize plus 1")
	c.check(p.TUQTMaxIntraDepth < 1 || p.TUQTMaxIntraDepth > 4,
		"tu-intra-depth must be greater 0 and less than 5")
	c.check(maxLog2CUSize < tuQTMinLog2Size+p.TUQTMaxIntraDepth-1,
		"tu-intra-depth must be less than or equal to the difference between log2(maxCUSize) and QuadtreeTULog2MinSize plus 1")
	c.check(p.MaxTUSize != 32 && p.MaxTUSize != 16 && p.MaxTUSize != 8 && p.MaxTUSize != 4,
		"max TU size must be 4, 8, 16, or 32")
	c.check(p.LimitTU < 0 || p.LimitTU > 4, "invalid limit-tu option, limit-tu must be between 0 and 4")
	c.check(p.MaxNumMergeCand < 1, "max-merge must be 1 or greater")
	c.check(p.MaxNumMergeCand > 5, "max-merge must be 5 or smaller")
	c.check(p.MaxNumReferences < 1, "ref must be 1 or greater")
	c.check(p.MaxNumReferences > MaxNumRef, "ref must be 16 or smaller")

	c.check(p.SourceWidth < p.MaxCUSize || p.SourceHeight < p.MaxCUSize,
		"picture size must be at least one CTU")
	cspOK := p.InternalCsp >= CSPI400 && p.InternalCsp <= CSPI444
	c.check(!cspOK,
		"chroma subsampling must be i400 (4:0:0 monochrome), i420 (4:2:0 default), i422 (4:2:2), i444 (4:4:4)")
	if cspOK {
		c.check(p.SourceWidth&chromaHShift(p.InternalCsp) != 0,
			"picture width must be an integer multiple of the specified chroma subsampling")
		c.check(p.SourceHeight&chromaVShift(p.InternalCsp) != 0,
			"picture height must be an integer multiple of the specified chroma subsampling")
	}

	c.check(p.RDLevel < 1 || p.RDLevel > 6, "RD level is out of range")
	c.check(p.RDOQLevel < 0 || p.RDOQLevel > 2, "RDOQ level is out of range")
	c.check(p.DynamicRD < 0 || p.DynamicRD > AdaptRDStrength,
		"dynamic RD strength must be between 0 and 4")
	c.check(p.BFrames != 0 && p.BFrames >= p.LookaheadDepth && !p.RC.StatRead,
		"lookahead depth must be greater than the max consecutive bframe count")
	c.check(p.BFrames < 0, "bframe count should be greater than zero")
	c.check(p.BFrames > BFrameMax, "max consecutive bframe count must be 16 or smaller")
	c.check(p.LookaheadDepth > LookaheadMax, "lookahead depth must be less than 256")
	c.check(p.LookaheadSlices > 16 || p.LookaheadSlices < 0,
		"lookahead slices must between 0 and 16")
	c.check(p.DeblockTCOffset < -6 || p.DeblockTCOffset > 6,
		"deblocking filter tC offset must be in the range of -6 to +6")
	c.check(p.DeblockBetaOffset < -6 || p.DeblockBetaOffset > 6,
		"deblocking filter Beta offset must be in the range of -6 to +6")
	c.check(p.PsyRD < 0 || p.PsyRD > 5.0, "psy-rd strength must be between 0 and 5.0")
	c.check(p.PsyRDOQ < 0 || p.PsyRDOQ > 50.0, "psy-rdoq strength must be between 0 and 50.0")
	c.check(p.BFrameAdaptive < 0 || p.BFrameAdaptive > 2,
		"valid adaptive b scheduling values 0 - none, 1 - fast, 2 - full")
	c.check(p.LogLevel < LogNone || p.LogLevel > LogFull,
		"valid logging level -1:none 0:error 1:warning 2:info 3:debug 4:full")
	c.check(p.ScenecutThreshold < 0, "scenecut threshold must be greater than 0")
	c.check(p.ScenecutBias < 0 || p.ScenecutBias > 100, "scenecut-bias must be between 0 and 100")
	c.check(p.RADL < 0 || p.RADL > p.BFrames, "radl must be between 0 and bframes")
	c.check(p.RDPenalty < 0 || p.RDPenalty > 2,
		"valid penalty for 32x32 intra TU in non-I slices. 0:disabled 1:RD-penalty 2:maximum")
	c.check(p.KeyframeMax < -1,
		"invalid max IDR period in frames. value should be greater than -1")
	c.check(p.GOPLookahead < -1, "GOP lookahead must be greater than -1")
	c.check(p.DecodedPictureHashSEI < 0 || p.DecodedPictureHashSEI > 3,
		"invalid hash option. decoded picture hash SEI 0: disabled, 1: MD5, 2: CRC, 3: Checksum")
	if p.NoiseReductionIntra != 0 {
		c.check(p.NoiseReductionIntra < 0 || p.NoiseReductionIntra > 2000, "valid noise reduction range 0 - 2000")
	}
	if p.NoiseReductionInter != 0 {
		c.check(p.NoiseReductionInter < 0 || p.NoiseReductionInter > 2000, "valid noise reduction range 0 - 2000")
	}
	c.check(p.Log2MaxPocLsb < 4 || p.Log2MaxPocLsb > 16,
		"supported range for log2-max-poc-lsb is 4 to 16")
	c.check(p.MaxAUSizeFactor < 0.5 || p.MaxAUSizeFactor > 1.0,
		"supported factor for controlling max AU size is from 0.5 to 1")
	if bits.UintSize == 32 {
		c.check(p.SearchMethod == SEASearch && (p.SourceWidth > 840 || p.SourceHeight > 480),
			"SEA motion search does not support resolutions greater than 480p in 32 bit build")
	}
}

func (p *Param) checkRateControl(c *checker) {
	qpFloor := float64(-6 * (p.InternalBitDepth - 8))
	rc := &p.RC

	c.check(rc.Mode < RCABR || rc.Mode > RCCRF, "rate control mode is out of range")
	c.check(rc.AQMode < AQNone || rc.AQMode > AQAutoVarianceBiased, "aq-mode is out of range")
	c.check(rc.AQStrength < 0 || rc.AQStrength > 3, "aq-strength is out of range")
	c.check(rc.QPAdaptationRange < 1.0 || rc.QPAdaptationRange > 6.0,
		"qp adaptation range is out of range")
	c.check(rc.RFConstant < qpFloor || rc.RFConstant > 51,
		"valid quality based range: -qpBDOffsetY to 51")
	c.check(rc.RFConstantMax < qpFloor || rc.RFConstantMax > 51,
		"valid quality based range for crf-max: -qpBDOffsetY to 51")
	c.check(rc.RFConstantMin < qpFloor || rc.RFConstantMin > 51,
		"valid quality based range for crf-min: -qpBDOffsetY to 51")
	c.check(rc.VBVBufferSize < 0, "size of the vbv buffer can not be less than zero")
	c.check(rc.VBVMaxBitrate < 0, "maximum local bit rate can not be less than zero")
	c.check(rc.VBVBufferInit < 0,
		"valid initial VBV buffer occupancy must be a fraction 0 - 1, or size in kbits")
	c.check(p.VBVBufferEnd < 0,
		"valid final VBV buffer emptiness must be a fraction 0 - 1, or size in kbits")
	c.check(p.VBVEndFrameAdjust < 0, "valid vbv-end-fr-adj must be a fraction 0 - 1")
	c.check(p.TotalFrames == 0 && p.VBVEndFrameAdjust != 0,
		"vbv-end-fr-adj cannot be enabled when total number of frames is unknown")
	c.check(rc.Bitrate < 0, "target bitrate can not be less than zero")
	c.check(rc.QCompress < 0.5 || rc.QCompress > 1.0, "qcomp must be between 0.5 and 1.0")
	c.check(rc.Mode == RCCQP && rc.StatRead, "constant QP is incompatible with 2pass")
	c.check(rc.StrictCBR && (rc.Bitrate <= 0 || rc.VBVBufferSize <= 0),
		"strict-cbr cannot be applied without specifying target bitrate or vbv bufsize")
	c.check(rc.QPMax < QPMin || rc.QPMax > QPMaxMax, "qpmax exceeds supported range (0 to 69)")
	c.check(rc.QPMin < QPMin || rc.QPMin > QPMaxMax, "qpmin exceeds supported range (0 to 69)")
}

func (p *Param) checkVUI(c *checker) {
	v := &p.VUI
	c.check((v.AspectRatioIdc < 0 || v.AspectRatioIdc > 16) && v.AspectRatioIdc != ExtendedSAR,
		"sample aspect ratio must be 0-16 or 255")
	c.check(v.AspectRatioIdc == ExtendedSAR && v.SARWidth <= 0,
		"sample aspect ratio width must be greater than 0")
	c.check(v.AspectRatioIdc == ExtendedSAR && v.SARHeight <= 0,
		"sample aspect ratio height must be greater than 0")
	c.check(v.VideoFormat < 0 || v.VideoFormat > 5,
		"video format must be component, pal, ntsc, secam, mac or undef")
	c.check(v.ColorPrimaries < 0 || v.ColorPrimaries > 12 || v.ColorPrimaries == 3,
		"color primaries must be undef, bt709, bt470m, bt470bg, smpte170m, smpte240m, film, bt2020, smpte428, smpte431 or smpte432")
	c.check(v.TransferCharacteristics < 0 || v.TransferCharacteristics > 18 || v.TransferCharacteristics == 3,
		"transfer characteristics must be undef, bt709, bt470m, bt470bg, smpte170m, smpte240m, linear, log100, log316, iec61966-2-4, bt1361e, iec61966-2-1, bt2020-10, bt2020-12, smpte2084, smpte428 or arib-std-b67")
	c.check(v.MatrixCoeffs < 0 || v.MatrixCoeffs > 14 || v.MatrixCoeffs == 3,
		"matrix coefficients must be undef, bt709, fcc, bt470bg, smpte170m, smpte240m, gbr, ycgco, bt2020nc, bt2020c, smpte2085, chroma-derived-nc, chroma-derived-c or ictcp")
	c.check(v.ChromaSampleLocTop < 0 || v.ChromaSampleLocTop > 5,
		"chroma sample location type top field must be 0-5")
	c.check(v.ChromaSampleLocBottom < 0 || v.ChromaSampleLocBottom > 5,
		"chroma sample location type bottom field must be 0-5")
	c.check(v.DispWinLeft < 0, "default display window left offset must be 0 or greater")
	c.check(v.DispWinRight < 0, "default display window right offset must be 0 or greater")
	c.check(v.DispWinTop < 0, "default display window top offset must be 0 or greater")
	c.check(v.DispWinBottom < 0, "default display window bottom offset must be 0 or greater")
}

func (p *Param) checkAnalysis(c *checker) {
	c.check((p.AnalysisSave != "" || p.AnalysisLoad != "") && (p.AnalysisReuseLevel < 1 || p.AnalysisReuseLevel > 10),
		"invalid analysis refine level. value must be between 1 and 10 (inclusive)")
	c.check(p.ScaleFactor > 2, "invalid scale-factor. supports factor <= 2")
	c.check(p.CTUInfo != 0 && p.CTUInfo != 1 && p.CTUInfo != 2 && p.CTUInfo != 4 && p.CTUInfo != 6,
		"supported values for ctu-info are 0, 1, 2, 4, 6")
	c.check(p.InterRefine < 0 || p.InterRefine > 3,
		"invalid refine-inter value, refine-inter levels 0 to 3 supported")
	c.check(p.IntraRefine < 0 || p.IntraRefine > 4,
		"invalid refine-intra value, refine-intra levels 0 to 4 supported")
	c.check(p.CTUDistortionRefine < 0 || p.CTUDistortionRefine > 1,
		"invalid refine-ctu-distortion value, must be either 0 or 1")

	c.check(p.DolbyProfile != 0 && p.DolbyProfile != 50 && p.DolbyProfile != 81 && p.DolbyProfile != 82,
		"unsupported Dolby Vision profile, only profile 5, profile 8.1 and profile 8.2 enabled")
	if p.DolbyProfile != 0 {
		c.check(p.RC.VBVMaxBitrate <= 0 || p.RC.VBVBufferSize <= 0,
			"Dolby Vision requires VBV settings to enable HRD")
		c.check(p.InternalBitDepth != 10,
			"Dolby Vision profile 5, profile 8.1 and profile 8.2 are Main10 only")
		c.check(p.InternalCsp != CSPI420,
			"Dolby Vision profile 5, profile 8.1 and profile 8.2 require YCbCr 4:2:0 color space")
		if p.DolbyProfile == 81 {
			c.check(p.MasteringDisplay == "",
				"Dolby Vision profile 8.1 requires mastering display color volume information")
		}
	}
}

// reconcileSEI turns HDR SEI on when HDR metadata is present and drops the
// single-SEI request when no SEI would be emitted.
func (p *Param) reconcileSEI(c *checker) {
	if p.MasteringDisplay != "" || p.MaxFALL != 0 || p.MaxCLL != 0 {
		p.EmitHDRSEI = true
	}
	anySEI := p.RepeatHeaders ||
		p.EmitHRDSEI ||
		p.EmitInfoSEI ||
		p.EmitHDRSEI ||
		p.EmitIDRRecoverySEI ||
		p.InterlaceMode != 0 ||
		p.PreferredTransferCharacteristic > 1 ||
		p.ToneMapFile != "" ||
		p.NALUFile != ""
	if !anySEI && p.SingleSEINAL {
		p.SingleSEINAL = false
		c.log.Warnf("%snone of the SEI messages are enabled, disabling single SEI NAL", c.prefix)
	}
}

func chromaHShift(csp int) int {
	if csp == CSPI420 || csp == CSPI422 {
		return 1
	}
	return 0
}

func chromaVShift(csp int) int {
	if csp == CSPI420 {
		return 1
	}
	return 0
}
