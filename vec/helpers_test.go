package vec

import "ray/m"

const tolerance = 1e-5

func closeEnough(a, b float) bool {
	return m.Abs(a-b) <= tolerance
}

func vecClose(a, b Vec3) bool {
	return closeEnough(a.X, b.X) && closeEnough(a.Y, b.Y) && closeEnough(a.Z, b.Z)
}

// randomVecs returns n vectors with components in [-10, 10).
func randomVecs(n int) []Vec3 {
	rnd := m.NewRandSeeded(42, 7)
	vs := make([]Vec3, n)
	for i := range vs {
		vs[i] = Vec3{rnd.Rand(), rnd.Rand(), rnd.Rand()}.Kmul(20).Sub(Ones.Kmul(10))
	}
	return vs
}
