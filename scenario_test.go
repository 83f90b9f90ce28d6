package staticenum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.imaxinacion.net/aibox/staticenum"
	"git.imaxinacion.net/aibox/staticenum/internal/sample"
)

func TestColor(t *testing.T) {
	t.Run("Enumerators ascending by value", func(t *testing.T) {
		assert.Equal(t, []sample.Color{sample.RED, sample.GREEN, sample.BLUE}, staticenum.Enumerators[sample.Color]())
	})

	t.Run("NameOf", func(t *testing.T) {
		name, ok := staticenum.NameOf(sample.RED)
		assert.True(t, ok)
		assert.Equal(t, "RED", name)

		_, ok = staticenum.NameOf(sample.Color(5))
		assert.False(t, ok)
	})

	t.Run("Name", func(t *testing.T) {
		assert.Equal(t, "BLUE", staticenum.Name(sample.BLUE))
		assert.Empty(t, staticenum.Name(sample.Color(5)))
	})

	t.Run("ValueOf", func(t *testing.T) {
		v, ok := staticenum.ValueOf[sample.Color]("BLUE")
		assert.True(t, ok)
		assert.Equal(t, sample.BLUE, v)

		_, ok = staticenum.ValueOf[sample.Color]("NotSoGreen")
		assert.False(t, ok)
	})
}

func TestDirection(t *testing.T) {
	assert.Equal(t,
		[]sample.Direction{sample.Left, sample.Down, sample.Up, sample.Right},
		staticenum.Enumerators[sample.Direction]())

	for _, name := range []string{"Up", "Down", "Right", "Left"} {
		v, ok := staticenum.ValueOf[sample.Direction](name)
		require.True(t, ok, name)
		assert.Equal(t, name, staticenum.Name(v))
	}
	_, ok := staticenum.ValueOf[sample.Direction]("None")
	assert.False(t, ok)
}

func TestNumber(t *testing.T) {
	r := staticenum.MustOf[sample.Number]()

	assert.Equal(t, 0, r.Window().Offset)
	assert.Equal(t, int64(0), r.Window().Low())
	assert.Equal(t, []sample.Number{sample.ONE, sample.TWO, sample.THREE}, r.Enumerators())
}

func TestShadeAliases(t *testing.T) {
	r := staticenum.MustOf[sample.Shade]()

	assert.Equal(t, []sample.Shade{sample.Light, sample.Dark}, r.Enumerators())
	assert.Equal(t, "Light", r.Name(sample.Pale))

	v, ok := r.ValueOf("Pale")
	assert.True(t, ok)
	assert.Equal(t, sample.Light, v)
}

func TestPriorityStringer(t *testing.T) {
	assert.Equal(t, []sample.Priority{sample.Low, sample.Medium, sample.High}, staticenum.Enumerators[sample.Priority]())

	_, ok := staticenum.NameOf(sample.Priority(11))
	assert.False(t, ok, "stringer fallback must classify as invalid")
}

func TestRoundTrip(t *testing.T) {
	check := func(t *testing.T, names []string, lookup func(string) (string, bool)) {
		for _, name := range names {
			got, ok := lookup(name)
			assert.True(t, ok, name)
			assert.Equal(t, name, got)
		}
	}

	t.Run("Color", func(t *testing.T) {
		r := staticenum.MustOf[sample.Color]()
		check(t, r.Names(), func(s string) (string, bool) {
			v, ok := r.ValueOf(s)
			if !ok {
				return "", false
			}
			return r.NameOf(v)
		})
	})

	t.Run("Direction", func(t *testing.T) {
		r := staticenum.MustOf[sample.Direction]()
		check(t, r.Names(), func(s string) (string, bool) {
			v, ok := r.ValueOf(s)
			if !ok {
				return "", false
			}
			return r.NameOf(v)
		})
	})
}
