package vec

import (
	"fmt"

	"ray/m"
)

type Vec2 struct {
	X, Y float
}

func (u Vec2) HasNaNs() bool {
	return m.IsNaN(u.X) || m.IsNaN(u.Y)
}

func (u Vec2) Add(v Vec2) Vec2 {
	return Vec2{X: u.X + v.X, Y: u.Y + v.Y}
}

func (u Vec2) Sub(v Vec2) Vec2 {
	return Vec2{X: u.X - v.X, Y: u.Y - v.Y}
}

func (u Vec2) Mul(v Vec2) Vec2 {
	return Vec2{X: u.X * v.X, Y: u.Y * v.Y}
}

func (u Vec2) Kmul(k float) Vec2 {
	return Vec2{X: k * u.X, Y: k * u.Y}
}

func (u Vec2) Kdiv(k float) Vec2 {
	checkDivisor(k)
	inv := 1 / k
	return Vec2{X: u.X * inv, Y: u.Y * inv}
}

func (u Vec2) Neg() Vec2 {
	return Vec2{X: -u.X, Y: -u.Y}
}

// At returns X for 0 and Y for any other index.
func (u Vec2) At(i int) float {
	if i == 0 {
		return u.X
	}
	return u.Y
}

func (u *Vec2) Set(i int, f float) {
	if i == 0 {
		u.X = f
		return
	}
	u.Y = f
}

func (u Vec2) LengthSquared() float {
	return u.X*u.X + u.Y*u.Y
}

func (u Vec2) Length() float {
	return m.Sqrt(u.LengthSquared())
}

func (u Vec2) String() string {
	return fmt.Sprintf("[%v, %v]", u.X, u.Y)
}

func Kmul2(k float, u Vec2) Vec2 {
	return u.Kmul(k)
}

func Lerp2(t float, a, b Vec2) Vec2 {
	return a.Kmul(1 - t).Add(b.Kmul(t))
}
