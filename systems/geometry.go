package systems

import (
	"math"

	"github.com/plus3/asteroids/components"
	"gonum.org/v1/gonum/spatial/r2"
)

// Heading returns the unit vector for a rotation in degrees, clockwise
// from up, with y pointing up.
func Heading(rot float64) r2.Vec {
	sin, cos := math.Sincos(rot * math.Pi / 180)
	return r2.Vec{X: sin, Y: cos}
}

// Advance moves pos along its heading by distance. Screen y grows
// downwards, so the y component is subtracted.
func Advance(pos *components.Position, distance float64) {
	h := Heading(pos.Rot)
	pos.X += distance * h.X
	pos.Y -= distance * h.Y
}

// Wrap maps v into [0, size).
func Wrap(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	if v >= size {
		// v was a tiny negative number that rounded up to size.
		v = 0
	}
	return v
}

// WrapDegrees maps an angle into [0, 360).
func WrapDegrees(deg float64) float64 {
	return Wrap(deg, 360)
}

// ReflectHorizontal is the heading after hitting a left or right edge.
func ReflectHorizontal(rot float64) float64 {
	return 360 - rot
}

// ReflectVertical is the heading after hitting a top or bottom edge.
func ReflectVertical(rot float64) float64 {
	if rot > 180 {
		return 540 - rot
	}
	return 180 - rot
}

// Circle is a collision body.
type Circle struct {
	X, Y, R float64
}

// Distance between the two centers.
func Distance(a, b Circle) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Overlaps reports whether the centers are closer than threshold.
// The check only depends on the distance, so argument order does not matter.
func Overlaps(a, b Circle, threshold float64) bool {
	return Distance(a, b) < threshold
}

// IntegrateVelocity applies friction and the pending impulse, clamps the
// result to MaxSpeed and clears the impulse.
func IntegrateVelocity(p *components.Player) {
	p.Velocity = r2.Add(r2.Scale(p.Friction, p.Velocity), p.Impulse)
	if speed := r2.Norm(p.Velocity); speed > p.MaxSpeed {
		p.Velocity = r2.Scale(p.MaxSpeed/speed, p.Velocity)
	}
	p.Impulse = r2.Vec{}
}
