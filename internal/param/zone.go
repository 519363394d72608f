package param

import (
	"fmt"
	"strings"
)

// ZoneSpec is the textual form of a zone: a frame range plus option
// overrides in the same syntax as top-level options.
type ZoneSpec struct {
	StartFrame int
	EndFrame   int
	Settings   []Setting
}

// CompileZone resolves spec against a copy of p and appends the result to
// p's zone list. The copy starts from p as it is now, minus p's own zones.
// Any failing override fails the whole zone and leaves p untouched.
//
// A zone whose resolved rate control mode is constant QP forces that QP;
// any other zone carries a bitrate factor of 1.
func (p *Param) CompileZone(spec ZoneSpec) (Zone, error) {
	z, err := p.compileZone(spec)
	if err != nil {
		return Zone{}, err
	}
	p.RC.Zones = append(p.RC.Zones, z)
	return z, nil
}

// CompileZones compiles every spec. Zones are attached only if all of them
// compile.
func (p *Param) CompileZones(specs []ZoneSpec) error {
	zones := make([]Zone, 0, len(specs))
	for _, spec := range specs {
		z, err := p.compileZone(spec)
		if err != nil {
			return err
		}
		zones = append(zones, z)
	}
	p.RC.Zones = append(p.RC.Zones, zones...)
	return nil
}

func (p *Param) compileZone(spec ZoneSpec) (Zone, error) {
	if spec.StartFrame < 0 || spec.EndFrame < spec.StartFrame {
		return Zone{}, fmt.Errorf("zone %d-%d: %w: frame range", spec.StartFrame, spec.EndFrame, ErrBadValue)
	}
	zp := p.zoneBase()
	for _, s := range spec.Settings {
		if err := zp.Apply(s); err != nil {
			return Zone{}, fmt.Errorf("zone at frame %d: %w", spec.StartFrame, err)
		}
	}
	z := Zone{
		StartFrame: spec.StartFrame,
		EndFrame:   spec.EndFrame,
		Param:      zp,
	}
	if zp.RC.Mode == RCCQP {
		z.ForceQP = true
		z.QP = zp.RC.QP
	} else {
		z.BitrateFactor = 1.0
	}
	return z, nil
}

// setZones reads start,end,q=N or start,end,b=F entries separated by '/'.
// The zone list is replaced only when every entry parses.
func setZones(p *Param, v string) error {
	var zones []Zone
	for _, part := range strings.Split(v, "/") {
		z, err := parseZoneEntry(part)
		if err != nil {
			return err
		}
		zones = append(zones, z)
	}
	p.RC.Zones = zones
	return nil
}

func parseZoneEntry(s string) (Zone, error) {
	f := strings.SplitN(s, ",", 3)
	if len(f) != 3 {
		return Zone{}, ErrBadValue
	}
	start, err := parseInt(strings.TrimSpace(f[0]))
	if err != nil {
		return Zone{}, err
	}
	end, err := parseInt(strings.TrimSpace(f[1]))
	if err != nil {
		return Zone{}, err
	}
	if start < 0 || end < start {
		return Zone{}, ErrBadValue
	}
	z := Zone{StartFrame: start, EndFrame: end}
	switch {
	case strings.HasPrefix(f[2], "q="):
		z.ForceQP = true
		z.QP, err = parseInt(f[2][2:])
	case strings.HasPrefix(f[2], "b="):
		z.BitrateFactor, err = parseFloat(f[2][2:])
	default:
		err = ErrBadValue
	}
	return z, err
}
