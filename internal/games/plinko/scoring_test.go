package plinko

import "testing"

func TestDetectorCrossed(t *testing.T) {
	b := Generate(StyleClassic) // gate band starts at 560

	tests := []struct {
		y    float64
		want bool
	}{
		{500, false},
		{548, false}, // lower edge exactly on the line
		{548.5, true},
		{700, true},
	}

	var d Detector
	for _, tt := range tests {
		c := Coin{X: 200, Y: tt.y, Radius: 12}
		if got := d.Crossed(c, &b); got != tt.want {
			t.Errorf("Crossed(y=%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestDetectorResolve(t *testing.T) {
	classic := Generate(StyleClassic)

	gapped := StyleClassic.Preset()
	gapped.Gates.Gap = 10
	withGaps := GenerateLayout(gapped)

	tests := []struct {
		name     string
		gates    []Gate
		x        float64
		wantGate int
		wantPts  int
	}{
		{"center gate", classic.Gates, 200, 2, 100},
		{"first gate", classic.Gates, 1, 0, 10},
		{"second gate", classic.Gates, 120, 1, 50},
		{"on boundary", classic.Gates, 80, -1, 0},
		{"left edge", classic.Gates, 0, -1, 0},
		{"in gap", withGaps.Gates, 80, -1, 0},
		{"inside gapped gate", withGaps.Gates, 100, 1, 50},
		{"no gates", nil, 200, -1, 0},
	}

	var d Detector
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := d.Resolve(Coin{X: tt.x, Radius: 12}, tt.gates)
			if out.Gate != tt.wantGate || out.Points != tt.wantPts {
				t.Errorf("Resolve(%v) = %+v, want gate %d for %d", tt.x, out, tt.wantGate, tt.wantPts)
			}
			if out.Hit() != (tt.wantGate >= 0) {
				t.Errorf("Hit() = %v", out.Hit())
			}
		})
	}
}

func TestDetectorResolveOverlappingGatesSum(t *testing.T) {
	gates := []Gate{
		{X: 0, Width: 100, Value: 10},
		{X: 50, Width: 100, Value: 20},
	}
	out := Detector{}.Resolve(Coin{X: 75}, gates)
	if out.Gate != 0 || out.Points != 30 {
		t.Errorf("got %+v, want first gate and 30 points", out)
	}
}
