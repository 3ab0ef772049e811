// Package m holds the scalar side of the tracer: the Float type, numeric
// constants and small generic helpers shared by every geometric package.
package m // import "ray/m"

import "golang.org/x/exp/constraints"

const (
	Pi      Float = 3.1415926535897932385
	InvPi   Float = 1 / Pi
	Inv4Pi  Float = 0.07957747154594766788
	PiOver2 Float = 1.57079632679489661923
	PiOver4 Float = 0.78539816339744830961

	// Offset applied to secondary ray origins so they do not hit the
	// surface they leave from.
	ShadowEpsilon Float = 0.0001
)

// Clamp returns low if val < low, high if val > high and val otherwise.
// A NaN val fails both comparisons and is returned as is.
func Clamp[T constraints.Ordered](val, low, high T) T {
	if val < low {
		return low
	} else if val > high {
		return high
	}
	return val
}

// Lerp interpolates between v1 (t=0) and v2 (t=1). t is not restricted to
// [0,1]; values outside extrapolate.
func Lerp[T constraints.Float](t, v1, v2 T) T {
	return (1-t)*v1 + t*v2
}

func DegreesToRadians(degrees Float) Float {
	return degrees * Pi / 180
}
