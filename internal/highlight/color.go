package highlight

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

const (
	LabelWhite = "white"
	LabelBlack = "black"
)

// Pair is the background/foreground of a highlighted term.
type Pair struct {
	Background string `json:"background" yaml:"background"`
	Foreground string `json:"foreground" yaml:"foreground"`
}

// ColorAssigner picks a color pair for a term.
type ColorAssigner interface {
	Assign(term string) Pair
}

// RandomAssigner draws a uniformly random background for every call.
type RandomAssigner struct {
	rnd *rand.Rand
}

// NewRandomAssigner uses rnd, or a randomly seeded source when rnd is nil.
func NewRandomAssigner(rnd *rand.Rand) *RandomAssigner {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomAssigner{rnd: rnd}
}

func (a *RandomAssigner) Assign(string) Pair {
	r, g, b := uint8(a.rnd.IntN(256)), uint8(a.rnd.IntN(256)), uint8(a.rnd.IntN(256))
	return Pair{
		Background: Hex(r, g, b),
		Foreground: LabelColor(r, g, b),
	}
}

// Hex formats r, g, b as "#rrggbb".
func Hex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ParseHex parses "#rrggbb".
func ParseHex(hex string) (uint8, uint8, uint8, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
	}
	value, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("strconv.ParseUint(%s) > %w", hex, err)
	}
	return uint8(value >> 16), uint8(value >> 8), uint8(value), nil
}

// LabelColor returns the label color readable on an r, g, b background,
// using perceived luminance 0.299R + 0.587G + 0.114B.
func LabelColor(r, g, b uint8) string {
	luminance := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if luminance < 128 {
		return LabelWhite
	}
	return LabelBlack
}
