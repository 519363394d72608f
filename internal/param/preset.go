package param

import (
	"fmt"
	"strconv"
	"strings"
)

// presets maps each preset name to its override list. medium is the
// defaults themselves.
var presets = map[string]func(p *Param){
	"ultrafast": func(p *Param) {
		p.LookaheadDepth = 5
		p.ScenecutThreshold = 0
		p.MaxCUSize = 32
		p.MinCUSize = 16
		p.BFrames = 3
		p.BFrameAdaptive = 0
		p.SubpelRefine = 0
		p.SearchMethod = DiaSearch
		p.EarlySkip = true
		p.SAO = false
		p.SignHiding = false
		p.WeightedPred = false
		p.RDLevel = 2
		p.MaxNumReferences = 1
		p.LimitReferences = 0
		p.RC.AQStrength = 0
		p.RC.AQMode = AQNone
		p.RC.HEVCAQ = false
		p.RC.QGSize = 32
		p.FastIntra = true
	},
	"superfast": func(p *Param) {
		p.LookaheadDepth = 10
		p.MaxCUSize = 32
		p.BFrames = 3
		p.BFrameAdaptive = 0
		p.SubpelRefine = 1
		p.EarlySkip = true
		p.WeightedPred = false
		p.RDLevel = 2
		p.MaxNumReferences = 1
		p.LimitReferences = 0
		p.RC.AQStrength = 0
		p.RC.AQMode = AQNone
		p.RC.HEVCAQ = false
		p.RC.QGSize = 32
		p.SAO = false
		p.FastIntra = true
	},
	"veryfast": func(p *Param) {
		p.LookaheadDepth = 15
		p.BFrameAdaptive = 0
		p.SubpelRefine = 1
		p.EarlySkip = true
		p.RDLevel = 2
		p.MaxNumReferences = 2
		p.RC.QGSize = 32
		p.FastIntra = true
	},
	"faster": func(p *Param) {
		p.LookaheadDepth = 15
		p.BFrameAdaptive = 0
		p.EarlySkip = true
		p.RDLevel = 2
		p.MaxNumReferences = 2
		p.FastIntra = true
	},
	"fast": func(p *Param) {
		p.LookaheadDepth = 15
		p.BFrameAdaptive = 0
		p.RDLevel = 2
		p.MaxNumReferences = 3
		p.FastIntra = true
	},
	"medium": func(p *Param) {},
	"slow": func(p *Param) {
		p.RectInter = true
		p.LookaheadDepth = 25
		p.RDLevel = 4
		p.RDOQLevel = 2
		p.PsyRDOQ = 1.0
		p.SubpelRefine = 3
		p.MaxNumMergeCand = 3
		p.SearchMethod = StarSearch
		p.MaxNumReferences = 4
		p.LimitModes = true
		p.LookaheadSlices = 4
	},
	"slower": func(p *Param) {
		p.WeightedBiPred = true
		p.AMP = true
		p.RectInter = true
		p.LookaheadDepth = 40
		p.BFrames = 8
		p.TUQTMaxInterDepth = 3
		p.TUQTMaxIntraDepth = 3
		p.RDLevel = 6
		p.RDOQLevel = 2
		p.PsyRDOQ = 1.0
		p.SubpelRefine = 4
		p.MaxNumMergeCand = 4
		p.SearchMethod = StarSearch
		p.MaxNumReferences = 5
		p.LimitReferences = 1
		p.LimitModes = true
		p.IntraInBFrames = true
		p.LookaheadSlices = 0
		p.LimitTU = 4
	},
	"veryslow": func(p *Param) {
		p.WeightedBiPred = true
		p.AMP = true
		p.RectInter = true
		p.LookaheadDepth = 40
		p.BFrames = 8
		p.TUQTMaxInterDepth = 3
		p.TUQTMaxIntraDepth = 3
		p.RDLevel = 6
		p.RDOQLevel = 2
		p.PsyRDOQ = 1.0
		p.SubpelRefine = 4
		p.MaxNumMergeCand = 5
		p.SearchMethod = StarSearch
		p.MaxNumReferences = 5
		p.LimitReferences = 0
		p.LimitModes = false
		p.IntraInBFrames = true
		p.LookaheadSlices = 0
		p.LimitTU = 0
	},
	"placebo": func(p *Param) {
		p.WeightedBiPred = true
		p.AMP = true
		p.RectInter = true
		p.LookaheadDepth = 60
		p.SearchRange = 92
		p.BFrames = 8
		p.TUQTMaxInterDepth = 4
		p.TUQTMaxIntraDepth = 4
		p.RDLevel = 6
		p.RDOQLevel = 2
		p.PsyRDOQ = 1.0
		p.SubpelRefine = 5
		p.MaxNumMergeCand = 5
		p.SearchMethod = StarSearch
		p.TransformSkip = true
		p.RecursionSkip = false
		p.MaxNumReferences = 5
		p.LimitReferences = 0
		p.IntraInBFrames = true
		p.LookaheadSlices = 0
	},
}

var tunes = map[string]func(p *Param){
	"psnr": func(p *Param) {
		p.RC.AQStrength = 0
		p.PsyRD = 0
		p.PsyRDOQ = 0
	},
	"ssim": func(p *Param) {
		p.RC.AQMode = AQAutoVariance
		p.PsyRD = 0
		p.PsyRDOQ = 0
	},
	"fastdecode": func(p *Param) {
		p.LoopFilter = false
		p.SAO = false
		p.WeightedPred = false
		p.WeightedBiPred = false
		p.IntraInBFrames = false
	},
	"zerolatency": func(p *Param) {
		p.BFrameAdaptive = 0
		p.BFrames = 0
		p.LookaheadDepth = 0
		p.ScenecutThreshold = 0
		p.RC.CUTree = false
		p.FrameNumThreads = 1
	},
	"grain": func(p *Param) {
		p.RC.IPFactor = 1.1
		p.RC.PBFactor = 1.0
		p.RC.CUTree = false
		p.RC.AQMode = AQNone
		p.RC.HEVCAQ = false
		p.RC.QPStep = 1
		p.RC.Grain = true
		p.RecursionSkip = false
		p.PsyRD = 4.0
		p.PsyRDOQ = 10.0
		p.SAO = false
		p.RC.ConstVBV = true
	},
	"animation": func(p *Param) {
		if p.BFrames+2 < p.LookaheadDepth {
			p.BFrames += 2
		}
		p.PsyRD = 0.4
		p.RC.AQStrength = 0.4
		p.DeblockBetaOffset = 1
		p.DeblockTCOffset = 1
	},
}

var tuneAliases = map[string]string{
	"fast-decode":  "fastdecode",
	"zero-latency": "zerolatency",
}

// animePrefixes select the anime/film family handled by applyAnimeTune.
var animePrefixes = []string{"littlepox", "lp", "vcb-s", "vcbs"}

// New returns a default record with preset and tune applied. An empty
// preset or tune is skipped.
func New(preset, tune string) (*Param, error) {
	p := Default()
	if err := p.ApplyPreset(preset); err != nil {
		return nil, err
	}
	if err := p.ApplyTune(tune); err != nil {
		return nil, err
	}
	return p, nil
}

// ResolvePreset maps a preset name or table index to its name.
func ResolvePreset(preset string) (string, error) {
	if i, err := strconv.Atoi(preset); err == nil && i >= 0 && i < len(PresetNames) {
		return PresetNames[i], nil
	}
	if _, ok := presets[preset]; ok {
		return preset, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
}

// ApplyPreset layers a preset's overrides onto p. Presets are total over
// the fields they touch, so applying one twice is the same as once.
func (p *Param) ApplyPreset(preset string) error {
	if preset == "" {
		return nil
	}
	name, err := ResolvePreset(preset)
	if err != nil {
		return err
	}
	presets[name](p)
	return nil
}

// ValidTune reports whether tune names a known tune.
func ValidTune(tune string) bool {
	if _, ok := resolveTune(tune); ok {
		return true
	}
	return isAnimeTune(tune)
}

func resolveTune(tune string) (func(*Param), bool) {
	if i, err := strconv.Atoi(tune); err == nil && i >= 0 && i < len(TuneNames) {
		tune = TuneNames[i]
	}
	if alias, ok := tuneAliases[tune]; ok {
		tune = alias
	}
	f, ok := tunes[tune]
	return f, ok
}

func isAnimeTune(tune string) bool {
	lower := strings.ToLower(tune)
	for _, prefix := range animePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// ApplyTune layers a tune onto p. Tunes read the fields the preset left
// behind, so they must run after ApplyPreset.
func (p *Param) ApplyTune(tune string) error {
	if tune == "" {
		return nil
	}
	if f, ok := resolveTune(tune); ok {
		f(p)
		return nil
	}
	if isAnimeTune(tune) {
		p.applyAnimeTune(strings.ToLower(tune))
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownTune, tune)
}

// applyAnimeTune handles the littlepox (mid bitrate anime) and vcb-s (high
// bitrate anime or film) families. A "++" suffix raises effort further.
func (p *Param) applyAnimeTune(tune string) {
	p.SearchRange = 44
	p.AMP = false
	p.RectInter = false
	p.RC.AQMode = AQAutoVarianceBiased
	p.RC.AQStrength = 0.7
	p.RDLevel = 4
	p.RDOQLevel = 2
	p.SAO = false
	p.RC.QCompress = 0.65
	p.StrongIntraSmoothing = false
	if p.TUQTMaxInterDepth > 3 {
		p.TUQTMaxInterDepth--
	}
	if p.TUQTMaxIntraDepth > 3 {
		p.TUQTMaxIntraDepth--
	}
	if p.MaxNumMergeCand > 3 {
		p.MaxNumMergeCand--
	}
	if p.SubpelRefine < 3 {
		p.SubpelRefine = 3
	}
	p.KeyframeMin = 1
	p.KeyframeMax = 360
	p.OpenGOP = false
	p.DeblockBetaOffset = -1
	p.DeblockTCOffset = -1
	p.RDPenalty = 1
	p.MaxCUSize = 32
	if p.BFrames > 6 {
		p.BFrames = 6
	}
	p.CbQPOffset = -2
	p.CrQPOffset = -2
	p.RC.PBFactor = 1.2
	p.WeightedBiPred = true
	p.LookaheadDepth *= 2
	if p.LookaheadDepth > 80 {
		p.LookaheadDepth = 80
	}

	extra := strings.Contains(tune, "++")
	if tune[0] == 'l' {
		p.RC.RFConstant = 20
		p.PsyRD = 1.8
		p.PsyRDOQ = 2.0
		if extra {
			if p.MaxNumReferences < 3 {
				p.MaxNumReferences++
			}
			for i := 0; i < 2 && p.BFrames < 4; i++ {
				p.BFrames++
			}
		}
		return
	}
	p.RC.RFConstant = 18
	p.PsyRD = 2.0
	p.PsyRDOQ = 3.0
	if extra {
		p.SubpelRefine = 4
		p.IntraInBFrames = true
		if p.MaxNumReferences < 4 {
			p.MaxNumReferences = 4
		}
		p.RectInter = true
	}
}

// ApplyFastFirstPass trades quality for speed on a first pass that only
// writes statistics.
func (p *Param) ApplyFastFirstPass() {
	if !p.RC.StatWrite || p.RC.StatRead {
		return
	}
	p.MaxNumReferences = 1
	p.MaxNumMergeCand = 1
	p.RectInter = false
	p.FastIntra = true
	p.AMP = false
	p.SearchMethod = DiaSearch
	p.SubpelRefine = min(2, p.SubpelRefine)
	p.EarlySkip = true
	p.RDLevel = min(2, p.RDLevel)
}
