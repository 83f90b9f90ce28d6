package staticenum

// Classification is the verdict for one candidate value.
type Classification[E Integer] struct {
	Value E
	Valid bool
	// Name is the member name, empty when Valid is false.
	Name string
}

// IsValidName reports whether a namer's output names a declared member. Go
// identifiers never start with a digit and every fallback does, so the first
// byte decides. The empty string is never a name.
func IsValidName(s string) bool {
	return s != "" && (s[0] < '0' || s[0] > '9')
}

// Classify probes v through n and classifies the result.
func Classify[E Integer](n Namer[E], v E) Classification[E] {
	name := n(v)
	if !IsValidName(name) {
		return Classification[E]{Value: v}
	}
	return Classification[E]{Value: v, Valid: true, Name: name}
}
