// Package param holds the encoder configuration record and everything that
// builds it: primitive value converters, the option name normalizer, the
// option dispatch table, default/preset/tune initialization, zone override
// compilation, cross-field validation and the canonical fingerprint string.
//
// A Param is built by exactly one goroutine. Once Check has passed it is
// treated as read-only and may be shared freely.
package param

import "math"

// Compile-time limits of the encoder core.
const (
	// CompiledBitDepth is the internal pixel depth the core was built for.
	CompiledBitDepth = 8

	QPMaxSpec = 51
	QPMaxMax  = 69
	QPMin     = 0

	MaxSubpelLevel  = 7
	MaxNumRef       = 16
	BFrameMax       = 16
	LookaheadMax    = 250
	MaxFrameThreads = 16
	AdaptRDStrength = 4

	// ExtendedSAR is the aspect_ratio_idc signalling an explicit W:H pair.
	ExtendedSAR = 255

	pixelMax = (1 << CompiledBitDepth) - 1
)

// RCMode selects the rate control algorithm.
type RCMode int

const (
	RCABR RCMode = iota
	RCCQP
	RCCRF
)

func (m RCMode) String() string {
	switch m {
	case RCABR:
		return "abr"
	case RCCQP:
		return "cqp"
	case RCCRF:
		return "crf"
	default:
		return "unknown"
	}
}

// Motion search methods.
const (
	DiaSearch = iota
	HexSearch
	UMHSearch
	StarSearch
	SEASearch
	FullSearch
)

// Chroma formats.
const (
	CSPI400 = iota
	CSPI420
	CSPI422
	CSPI444
)

// Adaptive quantization modes.
const (
	AQNone = iota
	AQVariance
	AQAutoVariance
	AQAutoVarianceBiased
)

// Log levels stored in LogLevel and LogFileLevel.
const (
	LogNone    = -1
	LogError   = 0
	LogWarning = 1
	LogInfo    = 2
	LogDebug   = 3
	LogFull    = 4
)

// Analysis reuse source type.
const (
	AnalysisNone = iota
	AnalysisAVC
	AnalysisHEVC
)

// Reference limiting bits of LimitReferences.
const (
	RefLimitDepth = 1
	RefLimitCU    = 2
)

const bAdaptTrellis = 2

// Param is the complete set of resolved encoder parameters for one encode
// or for one zone.
type Param struct {
	CPUID                      int
	FrameNumThreads            int
	NumaPools                  string
	EnableWavefront            bool
	DistributeModeAnalysis     bool
	DistributeMotionEstimation bool
	LogLevel                   int
	LogFile                    string
	LogFileLevel               int
	CSVFile                    string
	CSVLogLevel                int
	LogCUStats                 bool
	DecodedPictureHashSEI      int
	Opts                       int
	Stylish                    bool
	EnablePSNR                 bool
	EnableSSIM                 bool

	// Source
	InternalBitDepth    int
	InternalCsp         int
	FPSNum              uint32
	FPSDenom            uint32
	SourceWidth         int
	SourceHeight        int
	InterlaceMode       int
	TotalFrames         int
	LevelIdc            int
	HighTier            bool
	UHDBluray           bool
	AllowNonConformance bool
	ChunkStart          int
	ChunkEnd            int

	// Bitstream and SEI
	AnnexB                          bool
	RepeatHeaders                   bool
	AccessUnitDelimiters            bool
	EmitHRDSEI                      bool
	EmitInfoSEI                     bool
	EmitHDRSEI                      bool
	EmitIDRRecoverySEI              bool
	EmitVUITimingInfo               bool
	EmitVUIHRDInfo                  bool
	HRDConcat                       bool
	SingleSEINAL                    bool
	PreferredTransferCharacteristic int
	PictureStructure                int
	NALUFile                        string
	Log2MaxPocLsb                   int
	MaxSlices                       int
	OptQpPPS                        bool
	OptRefListLengthPPS             bool
	OptCUDeltaQP                    bool
	MultiPassOptRPS                 bool

	// CU and TU sizing
	MaxCUSize         int
	MinCUSize         int
	TUQTMaxInterDepth int
	TUQTMaxIntraDepth int
	MaxTUSize         int
	LimitTU           int

	// GOP structure
	KeyframeMin       int
	KeyframeMax       int
	GOPLookahead      int
	OpenGOP           bool
	BFrames           int
	LookaheadDepth    int
	BFrameAdaptive    int
	BPyramid          bool
	BFrameBias        int
	ScenecutThreshold int
	ScenecutBias      float64
	LookaheadSlices   int
	LookaheadThreads  int
	RADL              int
	IntraRefresh      bool
	TemporalSubLayers bool

	// Intra tools
	ConstrainedIntra     bool
	StrongIntraSmoothing bool
	FastIntra            bool
	SplitRdSkip          bool

	// Inter tools
	SearchMethod              int
	SubpelRefine              int
	SearchRange               int
	MaxNumMergeCand           int
	LimitReferences           int
	LimitModes                bool
	WeightedPred              bool
	WeightedBiPred            bool
	EarlySkip                 bool
	RecursionSkip             bool
	AMP                       bool
	RectInter                 bool
	RDLevel                   int
	RDOQLevel                 int
	SignHiding                bool
	TransformSkip             bool
	TSkipFast                 bool
	MaxNumReferences          int
	TemporalMVP               bool
	SourceReferenceEstimation bool
	DynamicRD                 float64
	IntraInBFrames            bool

	// Loop filters
	LoopFilter        bool
	DeblockTCOffset   int
	DeblockBetaOffset int
	SAO               bool
	SAONonDeblocked   bool
	LimitSAO          bool

	// Quality and analysis
	CbQPOffset                  int
	CrQPOffset                  int
	RDPenalty                   int
	PsyRD                       float64
	PsyRDOQ                     float64
	SSIMRD                      bool
	Lossless                    bool
	CULossless                  bool
	RDRefine                    bool
	NoiseReductionIntra         int
	NoiseReductionInter         int
	ScalingLists                string
	LowPassDCT                  bool
	AnalysisReuseMode           int
	AnalysisReuseFile           string
	AnalysisSave                string
	AnalysisLoad                string
	AnalysisReuseLevel          int
	AnalysisMultiPassRefine     bool
	AnalysisMultiPassDistortion bool
	AnalysisType                int
	ScaleFactor                 int
	IntraRefine                 int
	InterRefine                 int
	MVRefine                    bool
	DynamicRefine               bool
	CTUDistortionRefine         int
	CTUInfo                     int
	ForceFlush                  int
	CopyPicToFrame              bool
	MaxAUSizeFactor             float64
	AQMotion                    bool

	// HDR
	MasteringDisplay string
	MaxCLL           uint16
	MaxFALL          uint16
	MinLuma          uint16
	MaxLuma          uint16
	HDROpt           bool
	ToneMapFile      string
	DHDR10Opt        bool
	DolbyProfile     int

	VBVBufferEnd      float64
	VBVEndFrameAdjust float64

	RC  RateControl
	VUI VUI
}

// RateControl is the nested rate control sub-record.
type RateControl struct {
	Mode              RCMode
	QP                int
	Bitrate           int
	RFConstant        float64
	RFConstantMax     float64
	RFConstantMin     float64
	QCompress         float64
	IPFactor          float64
	PBFactor          float64
	QPStep            int
	QPMin             int
	QPMax             int
	AQMode            int
	AQStrength        float64
	QPAdaptationRange float64
	HEVCAQ            bool
	QGSize            int
	CUTree            bool
	VBVMaxBitrate     int
	VBVBufferSize     int
	VBVBufferInit     float64
	ConstVBV          bool
	StrictCBR         bool
	Grain             bool
	StatWrite         bool
	StatRead          bool
	StatFileName      string
	SlowFirstPass     bool
	ComplexityBlur    float64
	QBlur             float64
	LambdaFileName    string
	Zones             []Zone
}

// VUI is the nested video usability information sub-record.
type VUI struct {
	AspectRatioIdc          int
	SARWidth                int
	SARHeight               int
	OverscanInfoPresent     bool
	OverscanAppropriate     bool
	VideoSignalTypePresent  bool
	VideoFormat             int
	FullRange               int
	ColorDescriptionPresent bool
	ColorPrimaries          int
	TransferCharacteristics int
	MatrixCoeffs            int
	ChromaLocInfoPresent    bool
	ChromaSampleLocTop      int
	ChromaSampleLocBottom   int
	DefaultDisplayWindow    bool
	DispWinLeft             int
	DispWinTop              int
	DispWinRight            int
	DispWinBottom           int
}

// OpenEnded is the EndFrame of a zone that runs to the end of the stream.
const OpenEnded = math.MaxInt32

// Zone is a frame range with either a forced QP or a bitrate scale factor.
// Param holds the zone's own resolved record; it is nil for zones given
// through the zones option, which inherit the base record.
type Zone struct {
	StartFrame    int
	EndFrame      int
	ForceQP       bool
	QP            int
	BitrateFactor float64
	Param         *Param
}

// Clone returns a deep copy of p. Zone records are cloned as well, so the
// copy shares no mutable state with p.
func (p *Param) Clone() *Param {
	c := *p
	if p.RC.Zones != nil {
		c.RC.Zones = make([]Zone, len(p.RC.Zones))
		for i, z := range p.RC.Zones {
			if z.Param != nil {
				z.Param = z.Param.Clone()
			}
			c.RC.Zones[i] = z
		}
	}
	return &c
}

// zoneBase returns the copy a zone starts from: the base record without
// its own zone list, since zones do not nest.
func (p *Param) zoneBase() *Param {
	c := *p
	c.RC.Zones = nil
	return &c
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
