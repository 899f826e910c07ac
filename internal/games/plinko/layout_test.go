package plinko

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-plinko/internal/config"
)

func TestGeneratePegCounts(t *testing.T) {
	tests := []struct {
		style Style
		want  int
	}{
		// 6 full rows of 9 and 6 offset rows of 8
		{StyleModern, 6*9 + 6*8},
		// 5 full rows of 7 and 4 offset rows of 6 plus two wall pegs
		{StyleClassic, 5*7 + 4*(6+2)},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			b := Generate(tt.style)
			if len(b.Pegs) != tt.want {
				t.Errorf("got %d pegs, want %d", len(b.Pegs), tt.want)
			}
			for i, p := range b.Pegs {
				if p.Radius != tt.style.Preset().Pegs.Radius {
					t.Fatalf("peg %d radius = %v", i, p.Radius)
				}
				if p.Color != pegColor {
					t.Fatalf("peg %d color = %v", i, p.Color)
				}
			}
		})
	}
}

func TestGenerateModernGeometry(t *testing.T) {
	b := Generate(StyleModern)

	if b.Width != 600 || b.Height != 800 {
		t.Fatalf("board = %vx%v, want 600x800", b.Width, b.Height)
	}

	// First row starts at 5% of the width and spans 90% of it.
	first, last := b.Pegs[0], b.Pegs[8]
	if math.Abs(first.X-30) > 1e-9 || first.Y != 100 {
		t.Errorf("first peg = (%v, %v), want (30, 100)", first.X, first.Y)
	}
	if math.Abs(last.X-570) > 1e-9 {
		t.Errorf("last peg of row 0 x = %v, want 570", last.X)
	}

	// Offset row is shifted by half the spacing.
	spacing := 540.0 / 8
	if got := b.Pegs[9].X; math.Abs(got-(30+spacing/2)) > 1e-9 {
		t.Errorf("offset row first x = %v, want %v", got, 30+spacing/2)
	}
	rowHeight := (800.0 - 250) / 12
	if got := b.Pegs[9].Y; math.Abs(got-(100+rowHeight)) > 1e-9 {
		t.Errorf("row 1 y = %v, want %v", got, 100+rowHeight)
	}

	wantValues := []int{10, 50, 100, 200, 100, 50, 10}
	if len(b.Gates) != len(wantValues) {
		t.Fatalf("got %d gates, want %d", len(b.Gates), len(wantValues))
	}
	for i, g := range b.Gates {
		if g.Value != wantValues[i] {
			t.Errorf("gate %d value = %d, want %d", i, g.Value, wantValues[i])
		}
		if g.Y != 750 || g.Height != 50 {
			t.Errorf("gate %d band = (%v, %v), want (750, 50)", i, g.Y, g.Height)
		}
	}
}

func TestGenerateClassicWallPegs(t *testing.T) {
	b := Generate(StyleClassic)

	var walls int
	for _, p := range b.Pegs {
		if p.X == p.Radius || p.X == b.Width-p.Radius {
			walls++
			// Wall pegs only sit on offset rows.
			row := int(math.Round((p.Y - 80) / 55))
			if row%2 == 0 {
				t.Errorf("wall peg on full row %d", row)
			}
		}
	}
	if walls != 8 {
		t.Errorf("got %d wall pegs, want 8", walls)
	}
}

func TestGenerateClassicGates(t *testing.T) {
	b := Generate(StyleClassic)

	if len(b.Gates) != 5 {
		t.Fatalf("got %d gates, want 5", len(b.Gates))
	}
	for i, g := range b.Gates {
		if g.Width != 80 {
			t.Errorf("gate %d width = %v, want 80", i, g.Width)
		}
		if g.X != float64(i)*80 {
			t.Errorf("gate %d x = %v, want %v", i, g.X, float64(i)*80)
		}
	}
	// Contiguous gates cover the full width.
	lastGate := b.Gates[4]
	if lastGate.X+lastGate.Width != b.Width {
		t.Errorf("gates end at %v, want %v", lastGate.X+lastGate.Width, b.Width)
	}
}

// Pegs are resolved after the wall clamp, so the gap between a side wall and
// the outermost lattice peg must fit a whole coin diameter.
func TestGenerateLeavesRoomForLargestCoin(t *testing.T) {
	for _, style := range Styles() {
		b := Generate(style)
		for _, p := range b.Pegs {
			left, right := p.X-p.Radius, b.Width-p.X-p.Radius
			if left == 0 || right == 0 {
				continue // wall peg
			}
			if room := math.Min(left, right); room < 2*config.MaxCoinRadius {
				t.Errorf("%s peg at (%v, %v) leaves %v to the wall, want >= %v", style, p.X, p.Y, room, 2*config.MaxCoinRadius)
			}
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	for _, s := range Styles() {
		a := Generate(s)
		b := Generate(s)

		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: two generations differ", s)
		}
		if &a.Pegs[0] == &b.Pegs[0] || &a.Gates[0] == &b.Gates[0] {
			t.Errorf("%s: generations share backing arrays", s)
		}
	}
}

func TestGenerateLayoutGap(t *testing.T) {
	p := StyleClassic.Preset()
	p.Gates.Gap = 10

	b := GenerateLayout(p)
	if got := b.Gates[0]; got.X != 5 || got.Width != 70 {
		t.Errorf("gate 0 = [%v, +%v), want [5, +70)", got.X, got.Width)
	}
	if got := b.Gates[1].X; got != 85 {
		t.Errorf("gate 1 x = %v, want 85", got)
	}
}

func TestGenerateLayoutDegeneratePanics(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Preset)
	}{
		{"zero width", func(p *Preset) { p.Width = 0 }},
		{"zero height", func(p *Preset) { p.Height = 0 }},
		{"zero rows", func(p *Preset) { p.Pegs.Rows = 0 }},
		{"single peg row", func(p *Preset) { p.Pegs.FullRowPegs = 1 }},
		{"zero gates", func(p *Preset) { p.Gates.Count = 0 }},
		{"value count mismatch", func(p *Preset) { p.Gates.Values = p.Gates.Values[:2] }},
		{"gap wider than slot", func(p *Preset) { p.Gates.Gap = 80 }},
		{"negative value", func(p *Preset) { p.Gates.Values = []int{10, -50, 100, 50, 10} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := StyleClassic.Preset()
			tt.mutate(&p)

			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			GenerateLayout(p)
		})
	}
}

func TestStyleToggleAndParse(t *testing.T) {
	if StyleModern.Next() != StyleClassic || StyleClassic.Next() != StyleModern {
		t.Error("toggle should alternate between modern and classic")
	}

	for _, s := range Styles() {
		got, err := ParseStyle(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStyle(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseStyle("retro"); err == nil {
		t.Error("ParseStyle should reject unknown names")
	}
}

func TestResetPolicyTicks(t *testing.T) {
	tests := []struct {
		name   string
		policy ResetPolicy
		rate   int
		want   uint64
	}{
		{"immediate", ResetImmediate, 60, 0},
		{"modern at 60", StyleModern.Preset().Reset, 60, 30},
		{"modern at 30", StyleModern.Preset().Reset, 30, 15},
		{"rounds up", ResetAfter(10 * time.Millisecond), 60, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Ticks(tt.rate); got != tt.want {
				t.Errorf("Ticks(%d) = %d, want %d", tt.rate, got, tt.want)
			}
		})
	}
}
