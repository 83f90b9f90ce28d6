package staticenum

import (
	"fmt"
	"reflect"
)

// Maker derives a namer from a struct whose exported fields are members of
// one enumeration. Field names are member names and field values are member
// values, so a single declaration carries both:
//
//	var Colors = struct {
//	    RED, GREEN, BLUE Color
//	}{-12, 7, 15}
//
//	m := staticenum.Make[Color](&Colors)
//	r := staticenum.MustNew(staticenum.WithNamer(m.Namer()), staticenum.WithAliases(m.Aliases()))
//
// When several fields share a value, the first field in declaration order is
// the member name and the later ones are aliases.
//
// A Maker is read-only after Make returns and safe for concurrent use.
type Maker[E Integer] struct {
	fields   []string     // Exported field names in declaration order.
	valueMap map[E]string // Value to primary name.
	aliases  map[string]E // Secondary names.
}

// Make walks the struct pointed to by construct.
//
// Panics if construct is not a pointer to a struct, or if an exported field
// is not an integer convertible to E. Unexported fields are skipped.
func Make[E Integer](construct any) *Maker[E] {
	val := reflect.ValueOf(construct)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		panic("staticenum.Make: construct must be a pointer to a struct")
	}

	elem := val.Elem()
	rc := elem.Type()
	n := rc.NumField()

	var zero E
	typeE := reflect.TypeOf(zero)

	m := &Maker[E]{
		fields:   make([]string, 0, n),
		valueMap: make(map[E]string, n),
		aliases:  make(map[string]E),
	}

	for i := 0; i < n; i++ {
		field := rc.Field(i)
		if !field.IsExported() {
			continue
		}
		if !field.Type.ConvertibleTo(typeE) || !isInteger(field.Type) {
			panic(fmt.Sprintf("staticenum.Make: field %s of type %s is not convertible to %s", field.Name, field.Type, typeE))
		}

		value := elem.Field(i).Convert(typeE).Interface().(E)
		m.fields = append(m.fields, field.Name)

		if _, taken := m.valueMap[value]; taken {
			m.aliases[field.Name] = value
			continue
		}
		m.valueMap[value] = field.Name
	}

	return m
}

// Namer returns the value-to-name primitive backed by the struct.
func (m *Maker[E]) Namer() Namer[E] {
	return func(v E) string {
		if name, ok := m.valueMap[v]; ok {
			return name
		}
		return Fallback(v)
	}
}

// Aliases returns a copy of the secondary names.
func (m *Maker[E]) Aliases() map[string]E {
	out := make(map[string]E, len(m.aliases))
	for k, v := range m.aliases {
		out[k] = v
	}
	return out
}

// Fields returns every exported field name in declaration order, aliases
// included.
func (m *Maker[E]) Fields() []string {
	out := make([]string, len(m.fields))
	copy(out, m.fields)
	return out
}

func isInteger(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
