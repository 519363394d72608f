package param

import "strings"

// Setting is one option as delivered by an argument tokenizer. Value is nil
// when the option appeared without a value.
type Setting struct {
	Name  string
	Value *string
}

// NewSetting returns a setting with a value.
func NewSetting(name, value string) Setting {
	return Setting{Name: name, Value: &value}
}

// Flag returns a setting without a value, as in "--no-sao" or "--cutree".
func Flag(name string) Setting {
	return Setting{Name: name}
}

// ParseSetting splits a "name=value" token. A token without '=' becomes
// a Flag.
func ParseSetting(token string) Setting {
	if i := strings.IndexByte(token, '='); i >= 0 {
		return NewSetting(token[:i], token[i+1:])
	}
	return Flag(token)
}

func (s Setting) String() string {
	if s.Value == nil {
		return s.Name
	}
	return s.Name + "=" + *s.Value
}

// Normalized is a setting after name normalization.
type Normalized struct {
	Name  string
	Value string
	// Negated is set when a no- or no prefix was stripped; the option is
	// then boolean shaped regardless of its descriptor.
	Negated bool
	// ValueWasNull records that the tokenizer supplied no value.
	ValueWasNull bool
	// Err is ErrBadValue when a negated option carried a value that is not
	// a boolean.
	Err error
}

// Normalize canonicalizes an option name and value. The same rules apply
// to top-level and zone options:
//
//  1. a leading "--" is dropped
//  2. '_' folds to '-'
//  3. a "no-" or "no" prefix is stripped and the value inverted; no value
//     or a true value becomes "false", a false value becomes "true"
//  4. otherwise a missing value becomes "true"
//  5. otherwise a leading '=' is dropped from the value
func Normalize(s Setting) Normalized {
	n := Normalized{Name: s.Name, ValueWasNull: s.Value == nil}
	n.Name = strings.TrimPrefix(n.Name, "--")
	// Names of any length are folded; there is no scratch buffer limit.
	n.Name = strings.ReplaceAll(n.Name, "_", "-")

	switch {
	case strings.HasPrefix(n.Name, "no-"):
		n.Name = n.Name[3:]
		n.Negated = true
	case strings.HasPrefix(n.Name, "no"):
		n.Name = n.Name[2:]
		n.Negated = true
	}

	switch {
	case n.Negated:
		on := true
		if s.Value != nil {
			b, err := parseBool(*s.Value)
			n.Err = err
			on = b
		}
		if on {
			n.Value = "false"
		} else {
			n.Value = "true"
		}
	case s.Value == nil:
		n.Value = "true"
	default:
		n.Value = strings.TrimPrefix(*s.Value, "=")
	}
	return n
}
