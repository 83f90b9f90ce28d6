package staticenum

import (
	"fmt"
	"go/token"
	"strconv"
)

// Namer is the name extraction primitive. For a declared member it returns
// exactly the member's identifier; for any other value it returns a fallback
// whose first byte is a decimal digit (see Fallback). It must be
// deterministic and free of side effects.
type Namer[E Integer] func(E) string

// EnumNamer is implemented by enumeration types carrying a generated name
// method (see cmd/enumgen). Unknown values must yield Fallback(v).
type EnumNamer interface {
	EnumName() string
}

// AliasNamer is implemented by enumeration types that declare several
// constants with the same value. The map holds the names EnumName does not
// return.
type AliasNamer[E Integer] interface {
	EnumAliases() map[string]E
}

// Fallback renders a value that is not a member. Non-negative values are
// rendered in decimal, negative ones as a 0x-prefixed two's complement hex
// literal, so the text always begins with a digit.
func Fallback[E Integer](v E) string {
	if v < 0 {
		return "0x" + strconv.FormatUint(uint64(int64(v)), 16)
	}
	return strconv.FormatUint(uint64(v), 10)
}

// NamerFor detects the namer of E: a generated EnumName method first, then
// an adapted String method.
func NamerFor[E Integer]() (Namer[E], error) {
	var zero E
	switch any(zero).(type) {
	case EnumNamer:
		return func(v E) string {
			return any(v).(EnumNamer).EnumName()
		}, nil
	case fmt.Stringer:
		return func(v E) string {
			return stringerName(v, any(v).(fmt.Stringer).String())
		}, nil
	}
	return nil, fmt.Errorf("%w %T", ErrNoNamer, zero)
}

// aliasesFor returns the aliases declared by E, if any.
func aliasesFor[E Integer]() map[string]E {
	var zero E
	if a, ok := any(zero).(AliasNamer[E]); ok {
		return a.EnumAliases()
	}
	return nil
}

// FromStringer adapts the String method of E. Output that is not a Go
// identifier, such as stringer's "Color(5)" for unknown values, is replaced
// by Fallback.
func FromStringer[E interface {
	Integer
	fmt.Stringer
}]() Namer[E] {
	return func(v E) string {
		return stringerName(v, v.String())
	}
}

func stringerName[E Integer](v E, s string) string {
	if !token.IsIdentifier(s) {
		return Fallback(v)
	}
	return s
}

// MapNamer builds a namer from a value-to-name map. The map is copied.
//
// Example:
//
//	n := staticenum.MapNamer(map[Color]string{RED: "RED", GREEN: "GREEN"})
//	n(RED) // "RED"
//	n(5)   // "5"
func MapNamer[E Integer](names map[E]string) Namer[E] {
	m := make(map[E]string, len(names))
	for k, v := range names {
		m[k] = v
	}
	return func(v E) string {
		if name, ok := m[v]; ok {
			return name
		}
		return Fallback(v)
	}
}
