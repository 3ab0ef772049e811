//go:build vecdebug

package vec

func checkDivisor(k float) {
	if k == 0 {
		panic("vec: division by zero")
	}
}

func checkNormalizable(u Vec3) {
	if u.LengthSquared() == 0 {
		panic("cannot normalize a zero vector")
	}
}
