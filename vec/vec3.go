// Package vec implements the 2 and 3 component vectors every geometric
// computation of the tracer is built on.
//
// Vec3 is used for points, directions and normals alike. The caller picks
// the right transformation rule for the role a value plays.
//
// Nothing here rejects degenerate input. Dividing by zero or normalizing a
// zero vector yields infinities or NaNs following IEEE-754, and HasNaNs is
// there for callers who want to check. Building with -tags vecdebug turns a
// few of these cases into panics.
package vec

import (
	"fmt"

	"ray/m"
)

type float = m.Float

var (
	Zeros = Vec3{0, 0, 0}
	Ones  = Vec3{1, 1, 1}
)

// Vec3 is compared with ==, which is exact per component.
type Vec3 struct {
	X, Y, Z float
}

func (u Vec3) HasNaNs() bool {
	return m.IsNaN(u.X) || m.IsNaN(u.Y) || m.IsNaN(u.Z)
}

func (u Vec3) Add(v Vec3) Vec3 {
	return Vec3{X: u.X + v.X, Y: u.Y + v.Y, Z: u.Z + v.Z}
}

func (u Vec3) Sub(v Vec3) Vec3 {
	return Vec3{X: u.X - v.X, Y: u.Y - v.Y, Z: u.Z - v.Z}
}

func (u Vec3) Mul(v Vec3) Vec3 {
	return Vec3{X: u.X * v.X, Y: u.Y * v.Y, Z: u.Z * v.Z}
}

func (u Vec3) Kmul(k float) Vec3 {
	return Vec3{X: k * u.X, Y: k * u.Y, Z: k * u.Z}
}

// Kdiv multiplies by 1/k. k == 0 is not checked.
func (u Vec3) Kdiv(k float) Vec3 {
	checkDivisor(k)
	inv := 1 / k
	return Vec3{X: u.X * inv, Y: u.Y * inv, Z: u.Z * inv}
}

func (u Vec3) Neg() Vec3 {
	return Vec3{X: -u.X, Y: -u.Y, Z: -u.Z}
}

// At returns X for 0, Y for 1 and Z for any other index.
func (u Vec3) At(i int) float {
	switch i {
	case 0:
		return u.X
	case 1:
		return u.Y
	}
	return u.Z
}

// Set writes the component At(i) would return.
func (u *Vec3) Set(i int, f float) {
	switch i {
	case 0:
		u.X = f
	case 1:
		u.Y = f
	default:
		u.Z = f
	}
}

func (u Vec3) LengthSquared() float {
	return u.X*u.X + u.Y*u.Y + u.Z*u.Z
}

func (u Vec3) Length() float {
	return m.Sqrt(u.LengthSquared())
}

func (u Vec3) String() string {
	return fmt.Sprintf("[%v, %v, %v]", u.X, u.Y, u.Z)
}

// Kmul scales u by k with the scalar on the left.
func Kmul(k float, u Vec3) Vec3 {
	return u.Kmul(k)
}
