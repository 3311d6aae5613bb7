package coord

import (
	"math"
)

// Pose is a full nine-coordinate machine position. X,Y,Z and U,V,W are
// lengths, A,B,C are angles. The units are whatever the caller is
// working in; Pose itself is unit-agnostic.
type Pose struct {
	X, Y, Z float64
	A, B, C float64
	U, V, W float64
}

func (p Pose) Equal(b Pose) bool {
	return p == b
}

// Tran returns the linear XYZ part of p.
func (p Pose) Tran() Point {
	return Point{X: p.X, Y: p.Y, Z: p.Z}
}

// Add will add the target values to p.
func (p Pose) Add(target Pose) Pose {
	p.X += target.X
	p.Y += target.Y
	p.Z += target.Z
	p.A += target.A
	p.B += target.B
	p.C += target.C
	p.U += target.U
	p.V += target.V
	p.W += target.W
	return p
}

// Sub will subtract the target values from p.
func (p Pose) Sub(target Pose) Pose {
	p.X -= target.X
	p.Y -= target.Y
	p.Z -= target.Z
	p.A -= target.A
	p.B -= target.B
	p.C -= target.C
	p.U -= target.U
	p.V -= target.V
	p.W -= target.W
	return p
}

// RotateXY returns x,y rotated about the origin by theta degrees.
func RotateXY(x, y, theta float64) (float64, float64) {
	t := theta * math.Pi / 180
	return x*math.Cos(t) - y*math.Sin(t), x*math.Sin(t) + y*math.Cos(t)
}

// RotateXY returns p with its X,Y coordinates rotated by theta degrees.
func (p Pose) RotateXY(theta float64) Pose {
	p.X, p.Y = RotateXY(p.X, p.Y, theta)
	return p
}
