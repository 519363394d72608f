package paramfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/harrison/hevcparam/internal/param"
)

// ZoneEntry is one zone file line.
type ZoneEntry struct {
	Line int
	Spec param.ZoneSpec
}

// ReadZoneFile opens and parses a zone file.
func ReadZoneFile(path string) ([]ZoneEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Op: "open zone file", Err: err}
	}
	defer f.Close()
	return ParseZones(f, path)
}

// ParseZones reads zone lines of the form
//
//	<start-frame> <option> [<option>...]
//
// where each option is --name=value, name=value, --name value or a bare
// flag. Lines starting with '#' and blank lines are skipped. A zone ends one
// frame before the next zone that starts after it; the last zone is open
// ended.
func ParseZones(r io.Reader, path string) ([]ZoneEntry, error) {
	var entries []ZoneEntry
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		start, err := strconv.Atoi(fields[0])
		if err != nil || start < 0 {
			return nil, &ResourceError{Path: path, Op: "parse zone file", Line: lineNo,
				Err: fmt.Errorf("%w: start frame %q", param.ErrBadValue, fields[0])}
		}
		entries = append(entries, ZoneEntry{
			Line: lineNo,
			Spec: param.ZoneSpec{StartFrame: start, Settings: tokenize(fields[1:])},
		})
	}
	if err := sc.Err(); err != nil {
		return nil, &ResourceError{Path: path, Op: "read zone file", Err: err}
	}
	assignEndFrames(entries)
	return entries, nil
}

func tokenize(tokens []string) []param.Setting {
	var settings []param.Setting
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case strings.Contains(tok, "="):
			settings = append(settings, param.ParseSetting(tok))
		case strings.HasPrefix(tok, "--") && i+1 < len(tokens) && takesValue(tokens[i+1]):
			settings = append(settings, param.NewSetting(tok, tokens[i+1]))
			i++
		default:
			settings = append(settings, param.Flag(tok))
		}
	}
	return settings
}

func takesValue(next string) bool {
	return !strings.HasPrefix(next, "--") && !strings.Contains(next, "=")
}

func assignEndFrames(entries []ZoneEntry) {
	starts := make([]int, len(entries))
	for i, e := range entries {
		starts[i] = e.Spec.StartFrame
	}
	sort.Ints(starts)
	for i := range entries {
		start := entries[i].Spec.StartFrame
		j := sort.SearchInts(starts, start+1)
		if j < len(starts) {
			entries[i].Spec.EndFrame = starts[j] - 1
		} else {
			entries[i].Spec.EndFrame = param.OpenEnded
		}
	}
}

// LoadZones reads path and compiles every zone against p. Zones are
// attached only if all of them compile; a failure names the offending line.
func LoadZones(p *param.Param, path string) error {
	entries, err := ReadZoneFile(path)
	if err != nil {
		return err
	}
	return CompileEntries(p, entries, path)
}

// CompileEntries compiles parsed zone lines against p, all or nothing.
func CompileEntries(p *param.Param, entries []ZoneEntry, path string) error {
	n := len(p.RC.Zones)
	for _, e := range entries {
		if _, err := p.CompileZone(e.Spec); err != nil {
			if n == 0 {
				p.RC.Zones = nil
			} else {
				p.RC.Zones = p.RC.Zones[:n]
			}
			return &ResourceError{Path: path, Op: "compile zone", Line: e.Line, Err: err}
		}
	}
	return nil
}
