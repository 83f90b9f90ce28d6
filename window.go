package staticenum

import "reflect"

// Window is the bounded range of candidate values probed for one enumeration
// type: [-Offset, Size-Offset).
type Window struct {
	Size   int
	Offset int
}

// ComputeWindow sizes the scan window for an underlying integer type of the
// given width and signedness.
//
// Types of at most 16 bits use their natural range when it is smaller than
// maxSize. Wider types are assumed to exceed maxSize and are clamped to it.
// Signed windows are centred on zero with one more negative than positive
// value when the size is even; unsigned windows start at zero.
//
// maxSize must already be validated (see Config.Validate).
func ComputeWindow(bits int, signed bool, maxSize int) Window {
	size := maxSize
	if bits <= 16 {
		if r := 1 << bits; r < size {
			size = r
		}
	}
	offset := 0
	if signed {
		offset = (size + 1) / 2
	}
	return Window{Size: size, Offset: offset}
}

// WindowOf computes the scan window for E.
func WindowOf[E Integer](maxSize int) Window {
	var zero E
	t := reflect.TypeOf(zero)
	return ComputeWindow(t.Bits(), isSigned(t), maxSize)
}

// Low returns the smallest probed value.
func (w Window) Low() int64 {
	return -int64(w.Offset)
}

// High returns the exclusive upper bound of the probed values.
func (w Window) High() int64 {
	return int64(w.Size - w.Offset)
}

// Contains reports whether v lies inside the window.
func (w Window) Contains(v int64) bool {
	return v >= w.Low() && v < w.High()
}

// Index maps v to its position in the window.
func (w Window) Index(v int64) (int, bool) {
	if !w.Contains(v) {
		return 0, false
	}
	return int(v + int64(w.Offset)), true
}

// At returns the candidate value at position i.
func (w Window) At(i int) int64 {
	return int64(i - w.Offset)
}
