package generate

import (
	"fmt"
	"go/constant"
	"go/types"
	"sort"

	"git.imaxinacion.net/aibox/staticenum"
)

// Member is one constant of an enumeration type.
type Member struct {
	Name string
	// Value is the constant's value when it fits in an int64.
	Value int64
	// Literal is the exact constant value as written by go/constant.
	Literal string
	// Fits is false for unsigned constants above math.MaxInt64.
	Fits bool
}

// Enum describes one enumeration type found in a package.
type Enum struct {
	Name   string
	Bits   int
	Signed bool
	Window staticenum.Window
	// Members holds the first constant declared for each value, in
	// declaration order. EnumName returns these names.
	Members []Member
	// Aliases holds the later constants that repeat an earlier value.
	Aliases []Member
	// Misses holds the constants, members or aliases, outside Window.
	Misses []Member
}

// Collect finds the constants of each named type in pkg and sizes their
// windows with cfg.
func Collect(pkg *types.Package, names []string, cfg staticenum.Config) ([]Enum, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	enums := make([]Enum, 0, len(names))
	for _, name := range names {
		e, err := collectOne(pkg, name, cfg.MaxWindowSize)
		if err != nil {
			return nil, err
		}
		enums = append(enums, e)
	}
	return enums, nil
}

func collectOne(pkg *types.Package, name string, maxWindow int) (Enum, error) {
	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		return Enum{}, fmt.Errorf("type %s not found in package %s", name, pkg.Path())
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return Enum{}, fmt.Errorf("%s is not a type", name)
	}
	basic, ok := tn.Type().Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return Enum{}, fmt.Errorf("%s is not an integer type", name)
	}

	signed := basic.Info()&types.IsUnsigned == 0
	bits := basicBits(basic.Kind())
	e := Enum{
		Name:   name,
		Bits:   bits,
		Signed: signed,
		Window: staticenum.ComputeWindow(bits, signed, maxWindow),
	}

	consts := make([]*types.Const, 0)
	for _, n := range pkg.Scope().Names() {
		c, ok := pkg.Scope().Lookup(n).(*types.Const)
		if !ok || !types.Identical(c.Type(), tn.Type()) {
			continue
		}
		consts = append(consts, c)
	}
	sort.Slice(consts, func(i, j int) bool {
		return consts[i].Pos() < consts[j].Pos()
	})

	seen := make(map[string]bool, len(consts))
	for _, c := range consts {
		m := Member{Name: c.Name(), Literal: c.Val().ExactString()}
		m.Value, m.Fits = constant.Int64Val(c.Val())

		if !m.Fits || !e.Window.Contains(m.Value) {
			e.Misses = append(e.Misses, m)
		}
		if seen[m.Literal] {
			e.Aliases = append(e.Aliases, m)
			continue
		}
		seen[m.Literal] = true
		e.Members = append(e.Members, m)
	}
	return e, nil
}

func basicBits(k types.BasicKind) int {
	switch k {
	case types.Int8, types.Uint8:
		return 8
	case types.Int16, types.Uint16:
		return 16
	case types.Int32, types.Uint32:
		return 32
	}
	return 64
}
