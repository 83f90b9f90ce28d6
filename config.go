package staticenum

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultMaxWindowSize bounds the scan window when no configuration is
	// given. Signed enumerations are probed over [-128, 128), unsigned ones
	// over [0, 256).
	DefaultMaxWindowSize = 256

	// MaxWindowLimit is the exclusive upper bound accepted for
	// Config.MaxWindowSize.
	MaxWindowLimit = math.MaxInt32
)

var (
	// ErrInvalidWindowSize is returned when a Config carries a non-positive,
	// oversized or misaligned MaxWindowSize.
	ErrInvalidWindowSize = errors.New("staticenum: invalid max window size")
	// ErrNoNamer is returned when a type has neither an EnumName nor a String
	// method and no Namer was supplied.
	ErrNoNamer = errors.New("staticenum: no namer for type")
	// ErrUnknownName is returned when a name does not match any member.
	ErrUnknownName = errors.New("staticenum: unknown enum name")
	// ErrUnknownValue is returned when a value is not a member.
	ErrUnknownValue = errors.New("staticenum: unknown enum value")
)

// Config controls how wide the engine probes.
type Config struct {
	// MaxWindowSize caps the number of candidates probed per type and with it
	// the largest member magnitude that can be discovered.
	MaxWindowSize int

	// Alignment, when positive, requires MaxWindowSize to be a multiple of
	// it. Set it to 8 to keep windows batchable in bytes.
	Alignment int
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{MaxWindowSize: DefaultMaxWindowSize}
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if c.MaxWindowSize <= 0 {
		return fmt.Errorf("%w: %d must be positive", ErrInvalidWindowSize, c.MaxWindowSize)
	}
	if c.MaxWindowSize >= MaxWindowLimit {
		return fmt.Errorf("%w: %d must be less than %d", ErrInvalidWindowSize, c.MaxWindowSize, MaxWindowLimit)
	}
	if c.Alignment < 0 {
		return fmt.Errorf("%w: alignment %d must not be negative", ErrInvalidWindowSize, c.Alignment)
	}
	if c.Alignment > 0 && c.MaxWindowSize%c.Alignment != 0 {
		return fmt.Errorf("%w: %d is not a multiple of %d", ErrInvalidWindowSize, c.MaxWindowSize, c.Alignment)
	}
	return nil
}
