// Package sample declares enumerations used by tests and examples.
package sample

import "strconv"

//go:generate go run ../../cmd/enumgen -type=Color,Direction,Number,Shade

// Color is declared out of value order on purpose.
type Color int

const (
	GREEN Color = 7
	RED   Color = -12
	BLUE  Color = 15
)

type Direction int

const (
	Up    Direction = 85
	Down  Direction = -42
	Right Direction = 119
	Left  Direction = -119
)

// Number has an unsigned underlying type, so its window starts at zero.
type Number uint8

const (
	ONE Number = iota
	TWO
	THREE
)

// Shade declares Pale as an alias of Light.
type Shade int8

const (
	Light Shade = 1
	Dark  Shade = 2
	Pale  Shade = 1
)

// Priority carries a stringer-style String method instead of a generated
// namer.
type Priority int16

const (
	Low    Priority = 10
	Medium Priority = 20
	High   Priority = 30
)

func (p Priority) String() string {
	switch p {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	}
	return "Priority(" + strconv.FormatInt(int64(p), 10) + ")"
}
