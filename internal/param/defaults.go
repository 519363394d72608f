package param

// Nominal source descriptor of a default record. Real encodes overwrite
// these from the input reader or with input-res and fps.
const (
	DefaultSourceWidth  = 1920
	DefaultSourceHeight = 1080
	DefaultFPSNum       = 25
	DefaultFPSDenom     = 1
)

// Default returns a record populated with the documented defaults. It is
// the same record as New("medium", "").
func Default() *Param {
	p := &Param{}
	p.Reset()
	return p
}

// Reset clears p and fills in every default.
func (p *Param) Reset() {
	*p = Param{}

	p.CPUID = DetectCPU(false)
	p.EnableWavefront = true
	p.LogLevel = LogInfo
	p.LogFileLevel = LogInfo
	p.Opts = 3

	p.InternalBitDepth = CompiledBitDepth
	p.InternalCsp = CSPI420
	p.SourceWidth = DefaultSourceWidth
	p.SourceHeight = DefaultSourceHeight
	p.FPSNum = DefaultFPSNum
	p.FPSDenom = DefaultFPSDenom
	p.HighTier = true

	p.AnnexB = true
	p.EmitInfoSEI = true
	p.EmitVUITimingInfo = true
	p.EmitVUIHRDInfo = true
	p.PreferredTransferCharacteristic = -1
	p.PictureStructure = -1
	p.Log2MaxPocLsb = 8
	p.MaxSlices = 1

	p.MaxCUSize = 64
	p.MinCUSize = 8
	p.TUQTMaxInterDepth = 1
	p.TUQTMaxIntraDepth = 1
	p.MaxTUSize = 32

	p.KeyframeMax = 250
	p.OpenGOP = true
	p.BFrames = 4
	p.LookaheadDepth = 20
	p.BFrameAdaptive = bAdaptTrellis
	p.BPyramid = true
	p.ScenecutThreshold = 40
	p.ScenecutBias = 5.0
	p.LookaheadSlices = 8

	p.StrongIntraSmoothing = true

	p.SearchMethod = HexSearch
	p.SubpelRefine = 2
	p.SearchRange = 57
	p.MaxNumMergeCand = 2
	p.LimitReferences = 3
	p.WeightedPred = true
	p.RecursionSkip = true
	p.RDLevel = 3
	p.SignHiding = true
	p.MaxNumReferences = 3
	p.TemporalMVP = true

	p.LoopFilter = true
	p.SAO = true

	p.PsyRD = 2.0
	p.AnalysisReuseLevel = 5
	p.CopyPicToFrame = true
	p.MaxAUSizeFactor = 1
	p.MaxLuma = pixelMax

	p.RC = RateControl{
		Mode:              RCCRF,
		QP:                32,
		RFConstant:        28,
		QCompress:         0.6,
		IPFactor:          1.4,
		PBFactor:          1.3,
		QPStep:            4,
		QPMax:             QPMaxMax,
		AQMode:            AQAutoVariance,
		AQStrength:        1.0,
		QPAdaptationRange: 1.0,
		QGSize:            32,
		CUTree:            true,
		VBVBufferInit:     0.9,
		SlowFirstPass:     true,
		ComplexityBlur:    20,
		QBlur:             0.5,
	}

	p.VUI = VUI{
		VideoFormat:             5,
		ColorPrimaries:          2,
		TransferCharacteristics: 2,
		MatrixCoeffs:            2,
	}
}
