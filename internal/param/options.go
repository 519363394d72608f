package param

import "sort"

type setFunc func(p *Param, v string) error

// Option describes one dispatchable option. Descriptors are static and
// shared by every record.
type Option struct {
	Name    string
	Aliases []string
	// Bool marks options that read their value as a boolean, at least in
	// part. Only these may appear without a value.
	Bool bool
	set  setFunc
}

// Names returns the canonical name followed by its aliases.
func (o *Option) Names() []string {
	return append([]string{o.Name}, o.Aliases...)
}

var optionIndex = buildIndex(optionTable)

// buildIndex keys every canonical name and alias. The first descriptor to
// claim a name owns it.
func buildIndex(opts []Option) map[string]*Option {
	idx := make(map[string]*Option, len(opts)*2)
	for i := range opts {
		o := &opts[i]
		for _, n := range o.Names() {
			if _, dup := idx[n]; !dup {
				idx[n] = o
			}
		}
	}
	return idx
}

// Lookup returns the descriptor for a canonical name or alias.
func Lookup(name string) (*Option, bool) {
	o, ok := optionIndex[name]
	return o, ok
}

// Options returns every descriptor in table order.
func Options() []Option {
	out := make([]Option, len(optionTable))
	copy(out, optionTable)
	return out
}

// OptionNames returns every accepted name, aliases included, sorted.
func OptionNames() []string {
	names := make([]string, 0, len(optionIndex))
	for n := range optionIndex {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Apply normalizes s and dispatches it against p. The error wraps
// ErrBadName or ErrBadValue. A failed value may leave the partially parsed
// result in the target field.
func (p *Param) Apply(s Setting) error {
	return p.dispatch(Normalize(s))
}

// Set applies name=value.
func (p *Param) Set(name, value string) error {
	return p.Apply(NewSetting(name, value))
}

// ApplyAll applies settings in order and stops at the first failure.
func (p *Param) ApplyAll(settings []Setting) error {
	for _, s := range settings {
		if err := p.Apply(s); err != nil {
			return err
		}
	}
	return nil
}

func (p *Param) dispatch(n Normalized) error {
	o, ok := optionIndex[n.Name]
	if !ok {
		return &OptionError{Name: n.Name, Value: n.Value, Err: ErrBadName}
	}
	err := o.set(p, n.Value)
	if err == nil {
		err = n.Err
	}
	if err == nil && n.ValueWasNull && !o.Bool {
		err = ErrBadValue
	}
	if err != nil {
		return &OptionError{Name: n.Name, Value: n.Value, Err: err}
	}
	return nil
}

func intOpt(name string, f func(*Param) *int, aliases ...string) Option {
	return Option{Name: name, Aliases: aliases, set: func(p *Param, v string) (err error) {
		*f(p), err = parseInt(v)
		return err
	}}
}

func floatOpt(name string, f func(*Param) *float64, aliases ...string) Option {
	return Option{Name: name, Aliases: aliases, set: func(p *Param, v string) (err error) {
		*f(p), err = parseFloat(v)
		return err
	}}
}

func boolOpt(name string, f func(*Param) *bool, aliases ...string) Option {
	return Option{Name: name, Aliases: aliases, Bool: true, set: func(p *Param, v string) (err error) {
		*f(p), err = parseBool(v)
		return err
	}}
}

// strOpt stores path-like values verbatim.
func strOpt(name string, f func(*Param) *string, aliases ...string) Option {
	return Option{Name: name, Aliases: aliases, set: func(p *Param, v string) error {
		*f(p) = v
		return nil
	}}
}

func nameOpt(name string, names []string, f func(*Param) *int) Option {
	return Option{Name: name, set: func(p *Param, v string) (err error) {
		*f(p), err = parseName(v, names)
		return err
	}}
}

// gatedInt reads the value as a boolean first. False stores 0; true or a
// non-boolean is parsed again as a number, so opt=0, opt=false and no-opt
// all disable while opt=3 selects a level.
func gatedInt(name string, f func(*Param) *int, aliases ...string) Option {
	return Option{Name: name, Aliases: aliases, Bool: true, set: func(p *Param, v string) (err error) {
		if b, berr := parseBool(v); berr == nil && !b {
			*f(p) = 0
			return nil
		}
		*f(p), err = parseInt(v)
		return err
	}}
}

func gatedFloat(name string, f func(*Param) *float64) Option {
	return Option{Name: name, Bool: true, set: func(p *Param, v string) (err error) {
		if b, berr := parseBool(v); berr == nil && !b {
			*f(p) = 0
			return nil
		}
		*f(p), err = parseFloat(v)
		return err
	}}
}

func gatedName(name string, names []string, f func(*Param) *int) Option {
	return Option{Name: name, Bool: true, set: func(p *Param, v string) (err error) {
		if b, berr := parseBool(v); berr == nil && !b {
			*f(p) = 0
			return nil
		}
		*f(p), err = parseName(v, names)
		return err
	}}
}
