package plinko

import (
	"math"

	"github.com/vovakirdan/tui-plinko/internal/core"
)

// Coin is the single dynamic body on the board.
type Coin struct {
	X, Y   float64 // Center position
	VX, VY float64 // Velocity per tick
	Radius float64
	Color  core.Color
}

// Contact records one peg collision resolved during Advance.
type Contact struct {
	Peg   int     // Index into the peg slice
	Speed float64 // Coin speed before damping
}

// Engine advances the coin one tick at a time.
// Stepping is tied to the tick rate of the host loop: a faster loop makes
// the coin fall faster in wall-clock time.
type Engine struct {
	Gravity float64 // Added to VY every tick
	Damping float64 // Fraction of speed kept after a peg contact
}

// Advance moves the coin one tick: gravity, integration, side walls, then
// every peg in slice order. Each overlapping peg redirects the coin's whole
// velocity along the contact normal, scaled by Damping, and pushes the coin
// out by the overlap. Later pegs see the state left by earlier ones, so a
// correction can create a new overlap with a peg already visited this tick.
func (e Engine) Advance(c *Coin, pegs []Peg, boardWidth float64) []Contact {
	c.VY += e.Gravity

	c.X += c.VX
	c.Y += c.VY

	collideWalls(c, boardWidth)

	var contacts []Contact
	for i := range pegs {
		if speed, hit := e.collidePeg(c, &pegs[i]); hit {
			contacts = append(contacts, Contact{Peg: i, Speed: speed})
		}
	}
	return contacts
}

// collideWalls reflects VX and clamps X when the coin pokes through a side
// wall. The board is open at the top and bottom.
func collideWalls(c *Coin, boardWidth float64) bool {
	if c.X-c.Radius >= 0 && c.X+c.Radius <= boardWidth {
		return false
	}
	c.VX = -c.VX
	c.X = core.ClampF(c.X, c.Radius, boardWidth-c.Radius)
	return true
}

// collidePeg resolves an overlap with a single peg and reports the coin's
// speed before the hit.
func (e Engine) collidePeg(c *Coin, p *Peg) (float64, bool) {
	distance := core.Dist(c.X, c.Y, p.X, p.Y)
	reach := c.Radius + p.Radius
	if distance >= reach {
		return 0, false
	}

	// Concentric centers have no normal; push straight up, against gravity.
	angle := -math.Pi / 2
	if distance > 0 {
		angle = math.Atan2(c.Y-p.Y, c.X-p.X)
	}
	cos, sin := math.Cos(angle), math.Sin(angle)

	speed := math.Sqrt(c.VX*c.VX + c.VY*c.VY)
	c.VX = cos * speed * e.Damping
	c.VY = sin * speed * e.Damping

	overlap := reach - distance
	c.X += cos * overlap
	c.Y += sin * overlap

	return speed, true
}
