package plinko

// Outcome is the result of evaluating the gates for one drop.
type Outcome struct {
	Gate   int // Index of the matched gate, -1 on a miss
	Points int
}

// Hit reports whether the coin landed inside a gate.
func (o Outcome) Hit() bool {
	return o.Gate >= 0
}

// Detector decides when a drop is over and what it scored.
type Detector struct{}

// Crossed reports whether the coin's lower edge has passed the top of the
// gate band.
func (Detector) Crossed(c Coin, b *Board) bool {
	return c.Y+c.Radius > b.GateTop()
}

// Resolve matches the coin's center against every gate using strict bounds,
// so a center exactly on a gate edge, or inside a gap, scores nothing.
func (Detector) Resolve(c Coin, gates []Gate) Outcome {
	out := Outcome{Gate: -1}
	for i, g := range gates {
		if c.X > g.X && c.X < g.X+g.Width {
			out.Points += g.Value
			if out.Gate < 0 {
				out.Gate = i
			}
		}
	}
	return out
}
