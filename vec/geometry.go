package vec

import "ray/m"

func Abs(u Vec3) Vec3 {
	return Vec3{X: m.Abs(u.X), Y: m.Abs(u.Y), Z: m.Abs(u.Z)}
}

func Dot(u, v Vec3) float {
	return u.X*v.X + u.Y*v.Y + u.Z*v.Z
}

func AbsDot(u, v Vec3) float {
	return m.Abs(Dot(u, v))
}

func Cross(u, v Vec3) Vec3 {
	return Vec3{
		X: u.Y*v.Z - u.Z*v.Y,
		Y: u.Z*v.X - u.X*v.Z,
		Z: u.X*v.Y - u.Y*v.X,
	}
}

// Normalize returns u scaled to unit length. The zero vector becomes all
// NaNs.
func Normalize(u Vec3) Vec3 {
	checkNormalizable(u)
	return u.Kdiv(u.Length())
}

func MinComponent(u Vec3) float {
	return m.Min(u.X, m.Min(u.Y, u.Z))
}

func MaxComponent(u Vec3) float {
	return m.Max(u.X, m.Max(u.Y, u.Z))
}

func Min(u, v Vec3) Vec3 {
	return Vec3{X: m.Min(u.X, v.X), Y: m.Min(u.Y, v.Y), Z: m.Min(u.Z, v.Z)}
}

func Max(u, v Vec3) Vec3 {
	return Vec3{X: m.Max(u.X, v.X), Y: m.Max(u.Y, v.Y), Z: m.Max(u.Z, v.Z)}
}

// Permute reads the components through At, so out of range indices pick Z.
func Permute(u Vec3, x, y, z int) Vec3 {
	return Vec3{X: u.At(x), Y: u.At(y), Z: u.At(z)}
}

// CoordinateSystem completes v1 into a right-handed orthonormal basis
// {v1, v2, v3}. v1 must already be unit length; it is not normalized here
// and the result is not orthonormal otherwise.
func CoordinateSystem(v1 Vec3) (v2, v3 Vec3) {
	// pick the pair of components that cannot both be near zero
	if m.Abs(v1.X) > m.Abs(v1.Y) {
		v2 = Vec3{-v1.Z, 0, v1.X}.Kdiv(m.Sqrt(v1.X*v1.X + v1.Z*v1.Z))
	} else {
		v2 = Vec3{0, v1.Z, -v1.Y}.Kdiv(m.Sqrt(v1.Y*v1.Y + v1.Z*v1.Z))
	}
	v3 = Cross(v1, v2)
	return v2, v3
}

func Distance(u, v Vec3) float {
	return u.Sub(v).Length()
}

func DistanceSquared(u, v Vec3) float {
	return u.Sub(v).LengthSquared()
}

func Floor(u Vec3) Vec3 {
	return Vec3{X: m.Floor(u.X), Y: m.Floor(u.Y), Z: m.Floor(u.Z)}
}

func Ceil(u Vec3) Vec3 {
	return Vec3{X: m.Ceil(u.X), Y: m.Ceil(u.Y), Z: m.Ceil(u.Z)}
}

// FaceForward flips normal to the hemisphere of v.
func FaceForward(normal, v Vec3) Vec3 {
	if Dot(normal, v) < 0 {
		return normal.Neg()
	}
	return normal
}

func Lerp(t float, a, b Vec3) Vec3 {
	return a.Kmul(1 - t).Add(b.Kmul(t))
}

func Sqrt(u Vec3) Vec3 {
	return Vec3{X: m.Sqrt(u.X), Y: m.Sqrt(u.Y), Z: m.Sqrt(u.Z)}
}

func Reflect(u, normal Vec3) Vec3 {
	v := normal.Kmul(2 * Dot(u, normal))
	return u.Sub(v)
}

func RandomInUnitBall(rnd *m.RandState) Vec3 {
	var u Vec3
	var norm float
	for {
		u = Vec3{X: rnd.Rand(), Y: rnd.Rand(), Z: rnd.Rand()}
		u = u.Kmul(2).Sub(Ones)
		norm = u.Length()
		if m.Epsilon <= norm && norm < 1 {
			break
		}
	}
	return u
}
