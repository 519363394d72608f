package param

// fixedRatios are the sample aspect ratios with a predefined idc; entry i
// has idc i+1.
var fixedRatios = [16][2]int{
	{1, 1}, {12, 11}, {10, 11}, {16, 11}, {40, 33}, {24, 11}, {20, 11}, {32, 11},
	{80, 33}, {18, 11}, {15, 11}, {64, 33}, {160, 99}, {4, 3}, {3, 2}, {2, 1},
}

// SetAspectRatio stores the sample aspect ratio w:h, using a predefined
// idc when one matches exactly and the extended form otherwise.
func (p *Param) SetAspectRatio(w, h int) {
	p.VUI.AspectRatioIdc = ExtendedSAR
	p.VUI.SARWidth = w
	p.VUI.SARHeight = h
	for i, r := range fixedRatios {
		if r[0] == w && r[1] == h {
			p.VUI.AspectRatioIdc = i + 1
			return
		}
	}
}

// AspectRatio returns the sample aspect ratio described by the VUI, or
// 0:0 when none is signalled.
func (p *Param) AspectRatio() (w, h int) {
	idc := p.VUI.AspectRatioIdc
	switch {
	case idc <= 0:
		return 0, 0
	case idc <= len(fixedRatios):
		r := fixedRatios[idc-1]
		return r[0], r[1]
	case idc == ExtendedSAR:
		return p.VUI.SARWidth, p.VUI.SARHeight
	}
	return 0, 0
}
