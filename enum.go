// Package staticenum provides reflective introspection over Go enumerations,
// i.e. defined integer types with a block of typed constants.
//
// Nothing is registered by hand. Given an enumeration type E, the package
// computes a bounded scan window of candidate values from E's bit width and
// signedness, probes every candidate through a Namer (the name extraction
// primitive), and keeps the candidates whose name does not start with a
// decimal digit. From that it derives the ascending list of members, an O(1)
// value-to-name dispatch and a linear name-to-value lookup.
//
// Namers come from a generated EnumName method (see cmd/enumgen), an adapted
// fmt.Stringer, a value-to-name map, or a struct of named constants (Make).
//
// Example usage:
//
//	type Color int
//
//	const (
//	    RED   Color = -12
//	    GREEN Color = 7
//	    BLUE  Color = 15
//	)
//
//	//go:generate enumgen -type=Color
//
//	staticenum.Enumerators[Color]()       // [RED GREEN BLUE]
//	staticenum.NameOf(GREEN)              // "GREEN", true
//	staticenum.ValueOf[Color]("BLUE")     // BLUE, true
//	staticenum.ValueOf[Color]("MAGENTA")  // 0, false
package staticenum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Integer is the constraint for enumeration types: any defined type whose
// underlying type is a signed or unsigned integer.
type Integer interface {
	constraints.Integer
}

// Value is one enumeration member: its underlying value and its declared
// name. Tables hold Value entries, and it doubles as an encodable wrapper for
// enum fields in JSON documents and SQL rows.
//
// The zero name marks a value that is not a member.
type Value[E Integer] struct {
	value E
	name  string
}

// NewValue creates an entry with the given value and name.
//
// Example:
//
//	red := staticenum.NewValue(RED, "RED")
//	fmt.Println(red.String()) // Output: RED
//	fmt.Println(red.Get())    // Output: -12
func NewValue[E Integer](value E, name string) Value[E] {
	return Value[E]{value: value, name: name}
}

// Get returns the underlying enumeration value.
func (e Value[E]) Get() E {
	return e.value
}

// String returns the member name, or an empty string for non-members.
func (e Value[E]) String() string {
	return e.name
}

// IsValid reports whether the entry names a declared member.
func (e Value[E]) IsValid() bool {
	return e.name != ""
}

// MarshalText implements encoding.TextMarshaler. Members encode as their
// name; anything else encodes as the decimal value.
func (e Value[E]) MarshalText() ([]byte, error) {
	if e.name != "" {
		return []byte(e.name), nil
	}
	return []byte(formatInteger(e.value)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text may be a member
// name or a numeric literal of a member; it is resolved through the
// process-wide reflector for E.
func (e *Value[E]) UnmarshalText(text []byte) error {
	r, err := Of[E]()
	if err != nil {
		return err
	}
	v, err := r.Parse(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MarshalJSON implements json.Marshaler, encoding the entry as a JSON string
// holding the text form. The zero entry encodes as null.
func (e Value[E]) MarshalJSON() ([]byte, error) {
	if e == (Value[E]{}) {
		return []byte("null"), nil
	}
	text, err := e.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Both JSON strings (names or
// numeric strings) and JSON numbers are accepted. null leaves e unchanged.
func (e *Value[E]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return e.UnmarshalText([]byte(s))
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("failed to unmarshal enum: %w", err)
	}
	return e.UnmarshalText([]byte(n.String()))
}

// Value implements driver.Valuer, storing the underlying value as an int64.
// The zero entry, as left by scanning NULL, is stored as NULL.
func (e Value[E]) Value() (driver.Value, error) {
	if e == (Value[E]{}) {
		return nil, nil
	}
	n, ok := toInt64(e.value)
	if !ok {
		return nil, fmt.Errorf("value %v is out of range for int64", e.value)
	}
	return n, nil
}

// Scan implements sql.Scanner. It accepts int64, float64, string and []byte
// and requires the result to be a member of E.
func (e *Value[E]) Scan(value interface{}) error {
	if value == nil {
		*e = Value[E]{}
		return nil
	}

	switch v := value.(type) {
	case int64:
		return e.scanInteger(v)
	case float64:
		n := int64(v)
		if float64(n) != v {
			return fmt.Errorf("failed to scan enum: %v is not an integer", v)
		}
		return e.scanInteger(n)
	case []byte:
		if err := e.UnmarshalText(v); err != nil {
			return fmt.Errorf("failed to scan enum from bytes: %w", err)
		}
		return nil
	case string:
		if err := e.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("failed to scan enum from string: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported type for enum scan: %T", value)
	}
}

func (e *Value[E]) scanInteger(n int64) error {
	v, err := safeCast[E](n)
	if err != nil {
		return fmt.Errorf("failed to scan enum: %w", err)
	}
	r, err := Of[E]()
	if err != nil {
		return err
	}
	name, ok := r.NameOf(v)
	if !ok {
		return fmt.Errorf("failed to scan enum: %w: %d", ErrUnknownValue, n)
	}
	*e = NewValue(v, name)
	return nil
}

// safeCast converts n to E, rejecting values that do not survive the round
// trip back to int64.
func safeCast[E Integer](n int64) (E, error) {
	v := E(n)
	if back, ok := toInt64(v); !ok || back != n {
		var zero E
		return zero, fmt.Errorf("value %d is out of range for type %T", n, zero)
	}
	return v, nil
}

// parseInteger parses a decimal, hex, octal or binary literal into E with an
// explicit range check for E's width.
func parseInteger[E Integer](s string) (E, error) {
	var zero E
	t := reflect.TypeOf(zero)
	if isSigned(t) {
		n, err := strconv.ParseInt(s, 0, t.Bits())
		if err != nil {
			return zero, err
		}
		return E(n), nil
	}
	n, err := strconv.ParseUint(s, 0, t.Bits())
	if err != nil {
		return zero, err
	}
	return E(n), nil
}

// toInt64 widens v to int64. Unsigned values above math.MaxInt64 do not fit.
func toInt64[E Integer](v E) (int64, bool) {
	n := int64(v)
	if n < 0 && v > 0 {
		return 0, false
	}
	return n, true
}

func formatInteger[E Integer](v E) string {
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

func isSigned(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}
