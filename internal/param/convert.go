package param

import (
	"math"
	"strconv"
	"strings"
)

// parseInt reads the whole string as an integer in C literal syntax
// (decimal, 0x hex, leading-zero octal), after optional leading blanks.
// On failure it returns 0 and ErrBadValue.
func parseInt(s string) (int, error) {
	s = strings.TrimLeft(s, " \t")
	if s == "" || strings.ContainsRune(s, '_') || hasGoPrefix(s) {
		return 0, ErrBadValue
	}
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, ErrBadValue
	}
	return int(v), nil
}

// hasGoPrefix reports a 0b or 0o base prefix, which strconv accepts but
// C integer syntax does not.
func hasGoPrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	switch s[1] {
	case 'b', 'B', 'o', 'O':
		return true
	}
	return false
}

// parseFloat reads the whole string as a finite floating point number.
// NaN and infinities are ErrBadValue.
func parseFloat(s string) (float64, error) {
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, ErrBadValue
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrBadValue
	}
	return v, nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no":
		return false, nil
	}
	return false, ErrBadValue
}

// parseName returns the index of s in names, or s read as an integer so a
// raw enumeration value is always accepted.
func parseName(s string, names []string) (int, error) {
	for i, n := range names {
		if s == n {
			return i, nil
		}
	}
	return parseInt(s)
}

// scanInt reads a leading decimal integer the way %d does: optional
// whitespace, optional sign, then digits. It returns the rest of s.
func scanInt(s string) (int, string, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, s, false
	}
	v, err := strconv.ParseInt(s[start:i], 10, 64)
	if err != nil {
		return 0, s, false
	}
	return int(v), s[i:], true
}

// scanInts reads integers separated by sep and returns as many as
// converted before the first mismatch, like sscanf's return count.
func scanInts(s string, sep byte, max int) []int {
	var out []int
	rest := s
	for len(out) < max {
		if len(out) > 0 {
			if rest == "" || rest[0] != sep {
				break
			}
			rest = rest[1:]
		}
		v, r, ok := scanInt(rest)
		if !ok {
			break
		}
		out = append(out, v)
		rest = r
	}
	return out
}

func clip3(lo, hi, v int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
