package staticenum

// NameOf returns the member name of v.
//
// Values outside (-MaxWindowSize, MaxWindowSize) are rejected before the
// window is consulted; values outside E's window, and values that are not
// members, are likewise not found. The lookup indexes a per-position name
// array built once per reflector, so it is O(1) after the first call.
func (r *Reflector[E]) NameOf(v E) (string, bool) {
	n, ok := toInt64(v)
	if !ok {
		return "", false
	}
	limit := int64(r.cfg.MaxWindowSize)
	if n <= -limit || n >= limit {
		return "", false
	}
	i, ok := r.window.Index(n)
	if !ok {
		return "", false
	}
	name := r.dispatchTable()[i]
	return name, name != ""
}

// Name is the single-value form of NameOf: it classifies v alone without
// scanning a window and returns "" when v is not a member. For any value
// inside the window it agrees with NameOf; outside the window it still
// answers.
func (r *Reflector[E]) Name(v E) string {
	return r.Classify(v).Name
}

// ValueOf returns the member named name.
//
// The window is probed in ascending order and the first candidate whose
// name matches exactly wins, so the lowest value is returned if a namer ever
// repeats a name. Aliases are consulted only when no primary name matches,
// and only resolve to values inside the window.
func (r *Reflector[E]) ValueOf(name string) (E, bool) {
	if !IsValidName(name) {
		var zero E
		return zero, false
	}
	for i := 0; i < r.window.Size; i++ {
		v := E(r.window.At(i))
		if c := r.Classify(v); c.Valid && c.Name == name {
			return v, true
		}
	}
	if v, ok := r.aliases[name]; ok {
		if n, fits := toInt64(v); fits && r.window.Contains(n) {
			return v, true
		}
	}
	var zero E
	return zero, false
}

func (r *Reflector[E]) dispatchTable() []string {
	r.dispatchOnce.Do(func() {
		names := make([]string, r.window.Size)
		for i := range names {
			names[i] = r.Classify(E(r.window.At(i))).Name
		}
		r.dispatch = names
	})
	return r.dispatch
}
