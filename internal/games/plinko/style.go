package plinko

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-plinko/internal/core"
)

// Style identifies one of the closed set of board presets.
type Style int

const (
	StyleModern  Style = iota // 600x800, 7 gates, delayed reset
	StyleClassic              // 400x600, 5 gates, wall pegs, immediate reset
)

// String returns the style name used on the command line and in config.
func (s Style) String() string {
	switch s {
	case StyleModern:
		return "modern"
	case StyleClassic:
		return "classic"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// Next returns the style the toggle switches to.
func (s Style) Next() Style {
	if s == StyleModern {
		return StyleClassic
	}
	return StyleModern
}

// Preset returns the configuration bundle of the style.
// Panics on a value outside the closed set.
func (s Style) Preset() Preset {
	p, ok := presets[s]
	if !ok {
		panic(fmt.Sprintf("plinko: unknown style %d", int(s)))
	}
	return p
}

// ParseStyle converts a style name to a Style.
func ParseStyle(name string) (Style, error) {
	for _, s := range Styles() {
		if s.String() == name {
			return s, nil
		}
	}
	return StyleModern, fmt.Errorf("plinko: unknown style %q (want modern or classic)", name)
}

// Styles lists every preset in toggle order.
func Styles() []Style {
	return []Style{StyleModern, StyleClassic}
}

// ResetPolicy decides when a fresh coin follows a scored one.
// The zero value resets immediately.
type ResetPolicy struct {
	Delay time.Duration
}

// ResetImmediate puts the next coin up in the same tick the gate line is crossed.
var ResetImmediate = ResetPolicy{}

// ResetAfter keeps the scored coin on the board for d before the next one.
func ResetAfter(d time.Duration) ResetPolicy {
	return ResetPolicy{Delay: d}
}

// Immediate reports whether the policy has no delay.
func (p ResetPolicy) Immediate() bool {
	return p.Delay <= 0
}

// Ticks converts the delay to whole simulation ticks, rounding up.
func (p ResetPolicy) Ticks(tickRate int) uint64 {
	if p.Immediate() || tickRate <= 0 {
		return 0
	}
	return uint64(math.Ceil(p.Delay.Seconds() * float64(tickRate)))
}

// Preset bundles board dimensions, layout rules and scoring pacing.
type Preset struct {
	Style  Style
	Title  string
	Width  float64
	Height float64
	Pegs   PegRule
	Gates  GateRule
	Reset  ResetPolicy
}

var pegColor = core.ColorPink

var presets = map[Style]Preset{
	StyleModern: {
		Style:  StyleModern,
		Title:  "Modern",
		Width:  600,
		Height: 800,
		Pegs: PegRule{
			Rows:         12,
			Radius:       6,
			StartY:       100,
			BottomMargin: 250,
			FullRowPegs:  9,
			SpanFraction: 0.9,
		},
		Gates: GateRule{
			Count:  7,
			Height: 50,
			Values: []int{10, 50, 100, 200, 100, 50, 10},
			Colors: []core.Color{
				core.ColorRed, core.ColorGreen, core.ColorBlue, core.ColorYellow,
				core.ColorBlue, core.ColorGreen, core.ColorRed,
			},
		},
		Reset: ResetAfter(500 * time.Millisecond),
	},
	StyleClassic: {
		Style:  StyleClassic,
		Title:  "Classic",
		Width:  400,
		Height: 600,
		Pegs: PegRule{
			Rows:         9,
			Radius:       5,
			StartY:       80,
			RowHeight:    55,
			FullRowPegs:  7,
			SpanFraction: 0.8,
			WallPegs:     true,
		},
		Gates: GateRule{
			Count:  5,
			Height: 40,
			Values: []int{10, 50, 100, 50, 10},
			Colors: []core.Color{
				core.ColorRed, core.ColorGreen, core.ColorBlue, core.ColorGreen, core.ColorRed,
			},
		},
		Reset: ResetImmediate,
	},
}
