package plinko

import (
	"fmt"

	"github.com/vovakirdan/tui-plinko/internal/core"
)

// Peg is a fixed circular obstacle.
type Peg struct {
	X, Y   float64
	Radius float64
	Color  core.Color
}

// Gate is a scoring zone covering [X, X+Width) at the bottom of the board.
type Gate struct {
	X, Y          float64
	Width, Height float64
	Value         int
	Color         core.Color
}

// PegRule describes a triangular peg lattice.
// Even rows are full rows of FullRowPegs pegs spanning SpanFraction of the
// board width; odd rows hold one peg fewer, shifted right by half a spacing.
type PegRule struct {
	Rows   int
	Radius float64
	StartY float64

	// RowHeight is the vertical spacing between rows. When zero the spacing
	// is (height - BottomMargin) / Rows.
	RowHeight    float64
	BottomMargin float64

	FullRowPegs  int
	SpanFraction float64

	// WallPegs adds a peg against each side wall on every offset row so the
	// coin cannot slide down the walls untouched.
	WallPegs bool
}

// GateRule describes equal-width gates along the bottom edge.
type GateRule struct {
	Count  int
	Height float64
	Values []int
	Colors []core.Color

	// Gap is the dead space between neighbouring gates. Zero makes the gates
	// contiguous; anything landing in a gap is a miss.
	Gap float64
}

// Board is a generated layout for one preset.
// Pegs and Gates are rebuilt from scratch by Generate and never mutated after.
type Board struct {
	Style      Style
	Width      float64
	Height     float64
	GateHeight float64
	Pegs       []Peg
	Gates      []Gate
}

// GateTop returns the y coordinate of the top of the gate band.
func (b *Board) GateTop() float64 {
	return b.Height - b.GateHeight
}

// Generate builds the board of a style.
func Generate(style Style) Board {
	return GenerateLayout(style.Preset())
}

// GenerateLayout builds a board from an explicit preset. It always uses the
// preset's own dimensions. Degenerate geometry is a programming error and
// panics.
func GenerateLayout(p Preset) Board {
	if p.Width <= 0 || p.Height <= 0 {
		panic(fmt.Sprintf("plinko: %s board has degenerate size %vx%v", p.Style, p.Width, p.Height))
	}
	return Board{
		Style:      p.Style,
		Width:      p.Width,
		Height:     p.Height,
		GateHeight: p.Gates.Height,
		Pegs:       p.Pegs.generate(p.Width, p.Height),
		Gates:      p.Gates.generate(p.Width, p.Height),
	}
}

func (r PegRule) generate(width, height float64) []Peg {
	if r.Rows <= 0 || r.FullRowPegs < 2 || r.Radius <= 0 {
		panic(fmt.Sprintf("plinko: degenerate peg rule %+v", r))
	}

	rowHeight := r.RowHeight
	if rowHeight == 0 {
		rowHeight = (height - r.BottomMargin) / float64(r.Rows)
	}

	rowWidth := width * r.SpanFraction
	spacing := rowWidth / float64(r.FullRowPegs-1)
	baseStartX := (width - rowWidth) / 2

	pegs := make([]Peg, 0, r.Rows*(r.FullRowPegs+1))
	for row := 0; row < r.Rows; row++ {
		y := r.StartY + float64(row)*rowHeight
		offset := row%2 != 0

		count := r.FullRowPegs
		startX := baseStartX
		if offset {
			count--
			startX += spacing / 2
		}

		for col := 0; col < count; col++ {
			pegs = append(pegs, Peg{X: startX + float64(col)*spacing, Y: y, Radius: r.Radius, Color: pegColor})
		}

		if offset && r.WallPegs {
			pegs = append(pegs,
				Peg{X: r.Radius, Y: y, Radius: r.Radius, Color: pegColor},
				Peg{X: width - r.Radius, Y: y, Radius: r.Radius, Color: pegColor},
			)
		}
	}
	return pegs
}

func (r GateRule) generate(width, height float64) []Gate {
	if r.Count <= 0 || r.Height <= 0 {
		panic(fmt.Sprintf("plinko: degenerate gate rule: count=%d height=%v", r.Count, r.Height))
	}
	if len(r.Values) != r.Count || len(r.Colors) != r.Count {
		panic(fmt.Sprintf("plinko: gate rule has %d values and %d colors for %d gates", len(r.Values), len(r.Colors), r.Count))
	}

	slot := width / float64(r.Count)
	if r.Gap < 0 || r.Gap >= slot {
		panic(fmt.Sprintf("plinko: gate gap %v does not fit a %v wide slot", r.Gap, slot))
	}

	gates := make([]Gate, 0, r.Count)
	for i := 0; i < r.Count; i++ {
		if r.Values[i] < 0 {
			panic(fmt.Sprintf("plinko: gate %d has negative value %d", i, r.Values[i]))
		}
		gates = append(gates, Gate{
			X:      float64(i)*slot + r.Gap/2,
			Y:      height - r.Height,
			Width:  slot - r.Gap,
			Height: r.Height,
			Value:  r.Values[i],
			Color:  r.Colors[i],
		})
	}
	return gates
}
