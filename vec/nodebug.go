//go:build !vecdebug

package vec

func checkDivisor(float) {}

func checkNormalizable(Vec3) {}
