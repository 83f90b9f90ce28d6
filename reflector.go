package staticenum

import (
	"fmt"
	"sync"
)

// Reflector binds one enumeration type to a configuration, its scan window
// and its namer. The dispatch array used by NameOf and the enumerator table
// are computed on first use and then shared; a Reflector is safe for
// concurrent use.
type Reflector[E Integer] struct {
	cfg     Config
	window  Window
	namer   Namer[E]
	aliases map[string]E

	dispatchOnce sync.Once
	dispatch     []string // Name per window position, empty for non-members.

	tableOnce sync.Once
	table     *Table[E]
}

// Option configures a Reflector.
type Option[E Integer] func(*Reflector[E])

// WithConfig replaces the whole configuration.
func WithConfig[E Integer](cfg Config) Option[E] {
	return func(r *Reflector[E]) {
		r.cfg = cfg
	}
}

// WithMaxWindowSize overrides Config.MaxWindowSize.
func WithMaxWindowSize[E Integer](n int) Option[E] {
	return func(r *Reflector[E]) {
		r.cfg.MaxWindowSize = n
	}
}

// WithNamer sets the name extraction primitive instead of detecting it.
func WithNamer[E Integer](n Namer[E]) Option[E] {
	return func(r *Reflector[E]) {
		r.namer = n
	}
}

// WithAliases adds secondary names accepted by ValueOf. They are merged with
// the aliases the type itself declares.
func WithAliases[E Integer](aliases map[string]E) Option[E] {
	return func(r *Reflector[E]) {
		for name, v := range aliases {
			r.aliases[name] = v
		}
	}
}

// New creates a Reflector for E with the default configuration unless
// options say otherwise. Without WithNamer the namer is detected from E's
// methods (see NamerFor).
//
// Returns ErrInvalidWindowSize for a bad configuration and ErrNoNamer when no
// namer is available.
func New[E Integer](opts ...Option[E]) (*Reflector[E], error) {
	r := &Reflector[E]{
		cfg:     DefaultConfig(),
		aliases: make(map[string]E),
	}
	for name, v := range aliasesFor[E]() {
		r.aliases[name] = v
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	if r.namer == nil {
		n, err := NamerFor[E]()
		if err != nil {
			return nil, err
		}
		r.namer = n
	}

	r.window = WindowOf[E](r.cfg.MaxWindowSize)
	return r, nil
}

// MustNew is like New but panics on error.
func MustNew[E Integer](opts ...Option[E]) *Reflector[E] {
	r, err := New[E](opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Config returns the configuration the reflector was built with.
func (r *Reflector[E]) Config() Config {
	return r.cfg
}

// Window returns the scan window of E.
func (r *Reflector[E]) Window() Window {
	return r.window
}

// Namer returns the name extraction primitive in use.
func (r *Reflector[E]) Namer() Namer[E] {
	return r.namer
}

// Classify probes a single value.
func (r *Reflector[E]) Classify(v E) Classification[E] {
	return Classify(r.namer, v)
}

// Table returns the enumerator table, building it on first use.
func (r *Reflector[E]) Table() *Table[E] {
	r.tableOnce.Do(func() {
		r.table = BuildTable(r.namer, r.window)
	})
	return r.table
}

// Enumerators returns every member inside the window, ascending by value.
func (r *Reflector[E]) Enumerators() []E {
	return r.Table().Values()
}

// Names returns the member names, ordered by value.
func (r *Reflector[E]) Names() []string {
	return r.Table().Names()
}

// Count returns the number of members inside the window.
func (r *Reflector[E]) Count() int {
	return r.Table().Len()
}

// Contains reports whether v is a member inside the window.
func (r *Reflector[E]) Contains(v E) bool {
	_, ok := r.NameOf(v)
	return ok
}

// Validate returns an error unless v is a member inside the window.
func (r *Reflector[E]) Validate(v E) error {
	if !r.Contains(v) {
		return fmt.Errorf("%w: %v", ErrUnknownValue, v)
	}
	return nil
}

// ValidateName returns an error unless name resolves to a member.
func (r *Reflector[E]) ValidateName(name string) error {
	if _, ok := r.ValueOf(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return nil
}

// Parse resolves s as a member name first and, failing that, as a numeric
// literal of a member.
func (r *Reflector[E]) Parse(s string) (Value[E], error) {
	if v, ok := r.ValueOf(s); ok {
		return NewValue(v, r.namer(v)), nil
	}
	v, err := parseInteger[E](s)
	if err != nil {
		return Value[E]{}, fmt.Errorf("%w: %q", ErrUnknownName, s)
	}
	name, ok := r.NameOf(v)
	if !ok {
		return Value[E]{}, fmt.Errorf("%w: %s", ErrUnknownValue, s)
	}
	return NewValue(v, name), nil
}

// MustParse is like Parse but panics on error.
func (r *Reflector[E]) MustParse(s string) Value[E] {
	v, err := r.Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Cast converts between members and their names in either direction.
// x may be an E, a Value[E], any Go integer (value to name) or a string
// (name to value, then numeric literal). The result is reported as found
// only for members inside the window.
func (r *Reflector[E]) Cast(x any) (Value[E], bool) {
	switch v := x.(type) {
	case E:
		return r.entry(v)
	case Value[E]:
		return r.entry(v.value)
	case string:
		parsed, err := r.Parse(v)
		return parsed, err == nil
	case int:
		return r.castInt64(int64(v))
	case int8:
		return r.castInt64(int64(v))
	case int16:
		return r.castInt64(int64(v))
	case int32:
		return r.castInt64(int64(v))
	case int64:
		return r.castInt64(v)
	case uint:
		return r.castUint64(uint64(v))
	case uint8:
		return r.castUint64(uint64(v))
	case uint16:
		return r.castUint64(uint64(v))
	case uint32:
		return r.castUint64(uint64(v))
	case uint64:
		return r.castUint64(v)
	}
	return Value[E]{}, false
}

func (r *Reflector[E]) entry(v E) (Value[E], bool) {
	name, ok := r.NameOf(v)
	if !ok {
		return Value[E]{}, false
	}
	return NewValue(v, name), true
}

func (r *Reflector[E]) castInt64(n int64) (Value[E], bool) {
	v, err := safeCast[E](n)
	if err != nil {
		return Value[E]{}, false
	}
	return r.entry(v)
}

func (r *Reflector[E]) castUint64(n uint64) (Value[E], bool) {
	if int64(n) < 0 {
		return Value[E]{}, false
	}
	return r.castInt64(int64(n))
}
