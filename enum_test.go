package staticenum

import (
	"database/sql/driver"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Basic(t *testing.T) {
	v := NewValue(generatedLevel(2), "Info")
	assert.Equal(t, generatedLevel(2), v.Get())
	assert.Equal(t, "Info", v.String())
	assert.True(t, v.IsValid())
	assert.False(t, Value[generatedLevel]{}.IsValid())
}

func TestValue_Text(t *testing.T) {
	t.Run("Marshal member", func(t *testing.T) {
		b, err := NewValue(generatedLevel(1), "Debug").MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "Debug", string(b))
	})

	t.Run("Marshal non-member", func(t *testing.T) {
		b, err := NewValue(generatedLevel(-4), "").MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "-4", string(b))
	})

	t.Run("Unmarshal name and number", func(t *testing.T) {
		var v Value[generatedLevel]
		require.NoError(t, v.UnmarshalText([]byte("Info")))
		assert.Equal(t, NewValue(generatedLevel(2), "Info"), v)

		require.NoError(t, v.UnmarshalText([]byte("1")))
		assert.Equal(t, NewValue(generatedLevel(1), "Debug"), v)
	})

	t.Run("Unmarshal unknown", func(t *testing.T) {
		var v Value[generatedLevel]
		assert.ErrorIs(t, v.UnmarshalText([]byte("Trace")), ErrUnknownName)
		assert.ErrorIs(t, v.UnmarshalText([]byte("9")), ErrUnknownValue)
	})

	t.Run("Unmarshal without namer", func(t *testing.T) {
		var v Value[testColor]
		assert.ErrorIs(t, v.UnmarshalText([]byte("RED")), ErrNoNamer)
	})
}

func TestValue_JSON(t *testing.T) {
	type record struct {
		Level Value[generatedLevel] `json:"level"`
	}

	t.Run("Marshal", func(t *testing.T) {
		b, err := json.Marshal(record{Level: NewValue(generatedLevel(2), "Info")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"level":"Info"}`, string(b))
	})

	t.Run("Unmarshal string", func(t *testing.T) {
		var r record
		require.NoError(t, json.Unmarshal([]byte(`{"level":"Debug"}`), &r))
		assert.Equal(t, generatedLevel(1), r.Level.Get())
	})

	t.Run("Unmarshal number", func(t *testing.T) {
		var r record
		require.NoError(t, json.Unmarshal([]byte(`{"level":2}`), &r))
		assert.Equal(t, "Info", r.Level.String())
	})

	t.Run("Null", func(t *testing.T) {
		r := record{Level: NewValue(generatedLevel(2), "Info")}
		require.NoError(t, json.Unmarshal([]byte(`{"level":null}`), &r))
		assert.Equal(t, NewValue(generatedLevel(2), "Info"), r.Level)

		var empty record
		require.NoError(t, json.Unmarshal([]byte(`{"level":null}`), &empty))
		assert.False(t, empty.Level.IsValid())
	})

	t.Run("Zero round trip", func(t *testing.T) {
		b, err := json.Marshal(record{})
		require.NoError(t, err)
		assert.JSONEq(t, `{"level":null}`, string(b))

		var r record
		require.NoError(t, json.Unmarshal(b, &r))
		assert.Equal(t, record{}, r)
	})

	t.Run("Unmarshal invalid", func(t *testing.T) {
		var r record
		assert.Error(t, json.Unmarshal([]byte(`{"level":true}`), &r))
		assert.Error(t, json.Unmarshal([]byte(`{"level":"Trace"}`), &r))
	})
}

func TestValue_SQL(t *testing.T) {
	t.Run("Value", func(t *testing.T) {
		got, err := NewValue(generatedLevel(2), "Info").Value()
		require.NoError(t, err)
		assert.Equal(t, driver.Value(int64(2)), got)

		_, err = NewValue(uint64(1<<63), "").Value()
		assert.Error(t, err)
	})

	t.Run("NULL round trip", func(t *testing.T) {
		v := NewValue(generatedLevel(2), "Info")
		require.NoError(t, v.Scan(nil))
		got, err := v.Value()
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Scan", func(t *testing.T) {
		tests := []struct {
			name    string
			in      interface{}
			want    Value[generatedLevel]
			wantErr bool
		}{
			{name: "int64", in: int64(2), want: NewValue(generatedLevel(2), "Info")},
			{name: "float64", in: float64(1), want: NewValue(generatedLevel(1), "Debug")},
			{name: "string name", in: "Info", want: NewValue(generatedLevel(2), "Info")},
			{name: "bytes number", in: []byte("1"), want: NewValue(generatedLevel(1), "Debug")},
			{name: "nil", in: nil, want: Value[generatedLevel]{}},
			{name: "unknown value", in: int64(7), wantErr: true},
			{name: "fractional", in: 1.5, wantErr: true},
			{name: "unsupported", in: true, wantErr: true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var v Value[generatedLevel]
				err := v.Scan(tt.in)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, v)
			})
		}
	})

	t.Run("Scan out of range", func(t *testing.T) {
		type tiny int8
		var v Value[tiny]
		assert.Error(t, v.Scan(int64(300)))
	})
}
