package canon

import "github.com/mastercactapus/gcanon/coord"

// All unit and offset arithmetic lives here. Internal values are mm
// and degrees; program units depend on lengthUnits; external units on
// the host-supplied factors. Nothing outside this file mixes unit
// systems in one expression.

func (c *Canon) progLenFactor() float64 {
	switch c.lengthUnits {
	case UnitsInches:
		return 25.4
	case UnitsCM:
		return 10.0
	}
	return 1.0
}

func (c *Canon) fromProgLen(v float64) float64 { return v * c.progLenFactor() }
func (c *Canon) toProgLen(v float64) float64   { return v / c.progLenFactor() }

// Angles are degrees in both program and internal units.
func (c *Canon) fromProgAng(v float64) float64 { return v }
func (c *Canon) toProgAng(v float64) float64   { return v }

func (c *Canon) toExtLen(mm float64) float64    { return mm * c.extLen }
func (c *Canon) fromExtLen(ext float64) float64 { return ext / c.extLen }
func (c *Canon) toExtAng(deg float64) float64   { return deg * c.extAng }
func (c *Canon) fromExtAng(ext float64) float64 { return ext / c.extAng }

func (c *Canon) fromProg(p coord.Pose) coord.Pose {
	p.X = c.fromProgLen(p.X)
	p.Y = c.fromProgLen(p.Y)
	p.Z = c.fromProgLen(p.Z)
	p.A = c.fromProgAng(p.A)
	p.B = c.fromProgAng(p.B)
	p.C = c.fromProgAng(p.C)
	p.U = c.fromProgLen(p.U)
	p.V = c.fromProgLen(p.V)
	p.W = c.fromProgLen(p.W)
	return p
}

func (c *Canon) toProg(p coord.Pose) coord.Pose {
	p.X = c.toProgLen(p.X)
	p.Y = c.toProgLen(p.Y)
	p.Z = c.toProgLen(p.Z)
	p.A = c.toProgAng(p.A)
	p.B = c.toProgAng(p.B)
	p.C = c.toProgAng(p.C)
	p.U = c.toProgLen(p.U)
	p.V = c.toProgLen(p.V)
	p.W = c.toProgLen(p.W)
	return p
}

func (c *Canon) toExtPose(p coord.Pose) coord.Pose {
	p.X = c.toExtLen(p.X)
	p.Y = c.toExtLen(p.Y)
	p.Z = c.toExtLen(p.Z)
	p.A = c.toExtAng(p.A)
	p.B = c.toExtAng(p.B)
	p.C = c.toExtAng(p.C)
	p.U = c.toExtLen(p.U)
	p.V = c.toExtLen(p.V)
	p.W = c.toExtLen(p.W)
	return p
}

func (c *Canon) fromExtPose(p coord.Pose) coord.Pose {
	p.X = c.fromExtLen(p.X)
	p.Y = c.fromExtLen(p.Y)
	p.Z = c.fromExtLen(p.Z)
	p.A = c.fromExtAng(p.A)
	p.B = c.fromExtAng(p.B)
	p.C = c.fromExtAng(p.C)
	p.U = c.fromExtLen(p.U)
	p.V = c.fromExtLen(p.V)
	p.W = c.fromExtLen(p.W)
	return p
}

func (c *Canon) offsetX(x float64) float64 { return x + c.programOrigin.X + c.toolOffset.X }
func (c *Canon) offsetY(y float64) float64 { return y + c.programOrigin.Y + c.toolOffset.Y }

// rotateAndOffset rotates the X,Y pair by the active XY rotation then
// adds the program origin and tool offset to every coordinate.
func (c *Canon) rotateAndOffset(p coord.Pose) coord.Pose {
	p = p.RotateXY(c.xyRotation)
	return p.Add(c.programOrigin).Add(c.toolOffset)
}

// unoffsetAndUnrotate is the inverse of rotateAndOffset.
func (c *Canon) unoffsetAndUnrotate(p coord.Pose) coord.Pose {
	p = p.Sub(c.programOrigin).Sub(c.toolOffset)
	p.X, p.Y = coord.RotateXY(p.X, p.Y, -c.xyRotation)
	return p
}

// toExtVel converts a velocity (or acceleration) to external units
// based on the classification of the last move.
func (c *Canon) toExtVel(vel float64) float64 {
	if !c.cartesianMove && c.angularMove {
		return c.toExtAng(vel)
	}
	return c.toExtLen(vel)
}

func (c *Canon) toExtAcc(acc float64) float64 { return c.toExtVel(acc) }
