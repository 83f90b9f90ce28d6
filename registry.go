package staticenum

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// cache is one generation of the process-wide reflectors. Entries are
// written once per type; two goroutines racing on the first lookup may both
// build a reflector, and the first stored wins.
type cache struct {
	cfg        Config
	reflectors sync.Map // reflect.Type -> *Reflector[E]
}

var current atomic.Pointer[cache]

func init() {
	current.Store(&cache{cfg: DefaultConfig()})
}

// SetDefaultConfig validates cfg and makes it the configuration of the
// package-level helpers. Reflectors built under the previous configuration
// are dropped.
func SetDefaultConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	current.Store(&cache{cfg: cfg})
	return nil
}

// DefaultConfigInUse returns the configuration of the package-level helpers.
func DefaultConfigInUse() Config {
	return current.Load().cfg
}

// Of returns the process-wide reflector for E, creating it on first use with
// the detected namer of E.
func Of[E Integer]() (*Reflector[E], error) {
	c := current.Load()
	key := reflect.TypeOf((*E)(nil)).Elem()
	if r, ok := c.reflectors.Load(key); ok {
		return r.(*Reflector[E]), nil
	}

	r, err := New[E](WithConfig[E](c.cfg))
	if err != nil {
		return nil, err
	}
	actual, _ := c.reflectors.LoadOrStore(key, r)
	return actual.(*Reflector[E]), nil
}

// MustOf is like Of but panics when E has no namer.
func MustOf[E Integer]() *Reflector[E] {
	r, err := Of[E]()
	if err != nil {
		panic(err)
	}
	return r
}

// Enumerators returns every member of E inside its window, ascending by
// value. Panics if E has no namer.
func Enumerators[E Integer]() []E {
	return MustOf[E]().Enumerators()
}

// NameOf returns the member name of v. Panics if E has no namer.
func NameOf[E Integer](v E) (string, bool) {
	return MustOf[E]().NameOf(v)
}

// Name returns the member name of v, or "" when v is not a member. It does
// not scan a window. Panics if E has no namer.
func Name[E Integer](v E) string {
	return MustOf[E]().Name(v)
}

// ValueOf returns the member of E named name. Panics if E has no namer.
func ValueOf[E Integer](name string) (E, bool) {
	return MustOf[E]().ValueOf(name)
}

// Cast converts x (a member, an integer or a name) to a member of E.
// Panics if E has no namer.
func Cast[E Integer](x any) (E, bool) {
	v, ok := MustOf[E]().Cast(x)
	return v.Get(), ok
}
