package param

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// CPU capability bits stored in Param.CPUID.
const (
	CPUMMX = 1 << iota
	CPUMMX2
	CPUSSE
	CPUSSE2
	CPULZCNT
	CPUSSE3
	CPUSSSE3
	CPUSSE4
	CPUSSE42
	CPUAVX
	CPUXOP
	CPUFMA4
	CPUFMA3
	CPUBMI1
	CPUBMI2
	CPUAVX2
	CPUAVX512
	CPUSSE2Slow
	CPUSSE2Fast
	CPUNEON
)

type cpuName struct {
	name  string
	flags int
}

// cpuNames are cumulative: naming a level enables everything below it.
var cpuNames = []cpuName{
	{"MMX2", CPUMMX | CPUMMX2},
	{"MMXEXT", CPUMMX | CPUMMX2},
	{"SSE", CPUMMX | CPUMMX2 | CPUSSE},
	{"SSE2Slow", CPUMMX | CPUMMX2 | CPUSSE | CPUSSE2 | CPUSSE2Slow},
	{"SSE2", CPUMMX | CPUMMX2 | CPUSSE | CPUSSE2},
	{"SSE2Fast", CPUMMX | CPUMMX2 | CPUSSE | CPUSSE2 | CPUSSE2Fast},
	{"LZCNT", CPULZCNT},
	{"SSE3", CPUMMX | CPUMMX2 | CPUSSE | CPUSSE2 | CPUSSE3},
	{"SSSE3", CPUMMX | CPUMMX2 | CPUSSE | CPUSSE2 | CPUSSE3 | CPUSSSE3},
	{"SSE4.1", CPUMMX | CPUMMX2 | CPUSSE | CPUSSE2 | CPUSSE3 | CPUSSSE3 | CPUSSE4},
	{"SSE4", CPUMMX | CPUMMX2 | CPUSSE | CPUSSE2 | CPUSSE3 | CPUSSSE3 | CPUSSE4},
	{"SSE4.2", CPUMMX | CPUMMX2 | CPUSSE | CPUSSE2 | CPUSSE3 | CPUSSSE3 | CPUSSE4 | CPUSSE42},
	{"AVX", CPUMMX | CPUMMX2 | CPUSSE | CPUSSE2 | CPUSSE3 | CPUSSSE3 | CPUSSE4 | CPUSSE42 | CPUAVX},
	{"XOP", CPUXOP},
	{"FMA4", CPUFMA4},
	{"FMA3", CPUFMA3},
	{"BMI1", CPUBMI1},
	{"BMI2", CPUBMI1 | CPUBMI2},
	{"AVX2", CPUMMX | CPUMMX2 | CPUSSE | CPUSSE2 | CPUSSE3 | CPUSSSE3 | CPUSSE4 | CPUSSE42 | CPUAVX | CPUAVX2},
	{"AVX512", CPUAVX512},
	{"NEON", CPUNEON},
}

// DetectCPU returns the capability bits of the running machine. AVX-512 is
// only reported when withAVX512 is set.
func DetectCPU(withAVX512 bool) int {
	flags := 0
	if cpu.X86.HasSSE2 {
		flags |= CPUMMX | CPUMMX2 | CPUSSE | CPUSSE2
	}
	if cpu.X86.HasSSE3 {
		flags |= CPUSSE3
	}
	if cpu.X86.HasSSSE3 {
		flags |= CPUSSSE3 | CPUSSE2Fast
	}
	if cpu.X86.HasSSE41 {
		flags |= CPUSSE4
	}
	if cpu.X86.HasSSE42 {
		flags |= CPUSSE42
	}
	if cpu.X86.HasPOPCNT && cpu.X86.HasSSE42 {
		flags |= CPULZCNT
	}
	if cpu.X86.HasAVX && cpu.X86.HasOSXSAVE {
		flags |= CPUAVX
	}
	if cpu.X86.HasFMA {
		flags |= CPUFMA3
	}
	if cpu.X86.HasBMI1 {
		flags |= CPUBMI1
	}
	if cpu.X86.HasBMI2 {
		flags |= CPUBMI2
	}
	if cpu.X86.HasAVX2 {
		flags |= CPUAVX2
	}
	if withAVX512 && cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW {
		flags |= CPUAVX512
	}
	if cpu.ARM64.HasASIMD || cpu.ARM.HasNEON {
		flags |= CPUNEON
	}
	return flags
}

// ParseCPUName reads an asm value: "auto" or a true value detects, a false
// value disables, a number is taken as a raw bitmap, anything else is a
// comma separated list of capability names.
func ParseCPUName(value string, withAVX512 bool) (int, error) {
	if value == "" {
		return 0, ErrBadValue
	}
	if value[0] >= '0' && value[0] <= '9' {
		if n, err := parseInt(value); err == nil {
			return n, nil
		}
	} else if value == "auto" {
		return DetectCPU(withAVX512), nil
	} else if b, err := parseBool(value); err == nil {
		if b {
			return DetectCPU(withAVX512), nil
		}
		return 0, nil
	}

	flags := 0
	var err error
	for _, tok := range strings.Split(value, ",") {
		if tok == "" {
			continue
		}
		found := false
		for _, c := range cpuNames {
			if strings.EqualFold(tok, c.name) {
				flags |= c.flags
				found = true
				break
			}
		}
		if !found {
			err = ErrBadValue
		}
	}
	if flags&CPUSSSE3 != 0 && flags&CPUSSE2Slow == 0 {
		flags |= CPUSSE2Fast
	}
	return flags, err
}

// CPUNames renders flags as the names they contain, for display.
func CPUNames(flags int) []string {
	var names []string
	for _, c := range cpuNames {
		switch c.name {
		case "MMXEXT", "SSE4", "SSE2Slow", "SSE2Fast":
			continue
		}
		if flags&highestBit(c.flags) != 0 {
			names = append(names, c.name)
		}
	}
	return names
}

func highestBit(v int) int {
	h := 1
	for v > 1 {
		v >>= 1
		h <<= 1
	}
	return h
}
