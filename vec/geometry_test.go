package vec

import (
	"math"
	"testing"

	"ray/m"
)

func TestDotCrossAxes(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	if got := Cross(a, b); got != (Vec3{0, 0, 1}) {
		t.Errorf("Cross = %v, want [0, 0, 1]", got)
	}
	if got := Dot(a, b); got != 0 {
		t.Errorf("Dot = %v, want 0", got)
	}
	if got := AbsDot(Vec3{1, 2, 3}, Vec3{-1, -1, -1}); got != 6 {
		t.Errorf("AbsDot = %v, want 6", got)
	}
}

func TestCrossProperties(t *testing.T) {
	vs := randomVecs(64)
	for i := 0; i+1 < len(vs); i++ {
		a, b := vs[i], vs[i+1]
		c := Cross(a, b)
		if !vecClose(c, Cross(b, a).Neg()) {
			t.Errorf("Cross(%v, %v) = %v, not -Cross(b, a)", a, b, c)
		}
		tol := 1e-5 * a.LengthSquared() * b.Length()
		if d := Dot(c, a); m.Abs(d) > tol {
			t.Errorf("Dot(Cross(a, b), a) = %v for a=%v b=%v", d, a, b)
		}
		tol = 1e-5 * b.LengthSquared() * a.Length()
		if d := Dot(c, b); m.Abs(d) > tol {
			t.Errorf("Dot(Cross(a, b), b) = %v for a=%v b=%v", d, a, b)
		}
	}
}

func TestNormalize(t *testing.T) {
	for _, v := range randomVecs(64) {
		if v == Zeros {
			continue
		}
		n := Normalize(v)
		if !closeEnough(n.Length(), 1) {
			t.Errorf("|Normalize(%v)| = %v", v, n.Length())
		}
		if Dot(n, v) <= 0 {
			t.Errorf("Normalize(%v) = %v changed direction", v, n)
		}
	}
	if got := Normalize(Vec3{0, -3, 0}); got != (Vec3{0, -1, 0}) {
		t.Errorf("Normalize = %v, want [0, -1, 0]", got)
	}
}

func TestCoordinateSystemAxis(t *testing.T) {
	tests := []struct {
		v1, v2, v3 Vec3
	}{
		{Vec3{1, 0, 0}, Vec3{0, 0, 1}, Vec3{0, -1, 0}},
		{Vec3{0, 1, 0}, Vec3{0, 0, -1}, Vec3{-1, 0, 0}},
		{Vec3{0, 0, 1}, Vec3{0, 1, 0}, Vec3{-1, 0, 0}},
	}
	for _, tt := range tests {
		v2, v3 := CoordinateSystem(tt.v1)
		if v2 != tt.v2 || v3 != tt.v3 {
			t.Errorf("CoordinateSystem(%v) = %v, %v, want %v, %v", tt.v1, v2, v3, tt.v2, tt.v3)
		}
	}
}

func TestCoordinateSystemOrthonormal(t *testing.T) {
	for _, v := range randomVecs(128) {
		v1 := Normalize(v)
		v2, v3 := CoordinateSystem(v1)
		for _, d := range []float{Dot(v1, v2), Dot(v1, v3), Dot(v2, v3)} {
			if !closeEnough(d, 0) {
				t.Errorf("basis %v %v %v not orthogonal: dot = %v", v1, v2, v3, d)
				break
			}
		}
		if !closeEnough(v2.Length(), 1) || !closeEnough(v3.Length(), 1) {
			t.Errorf("basis of %v not unit: |v2|=%v |v3|=%v", v1, v2.Length(), v3.Length())
		}
		if !vecClose(Cross(v1, v2), v3) {
			t.Errorf("Cross(%v, %v) != %v", v1, v2, v3)
		}
		if !vecClose(Cross(v2, v3), v1) {
			t.Errorf("basis of %v is not right-handed", v1)
		}
	}
}

func TestFaceForward(t *testing.T) {
	n := Vec3{0, 0, 1}
	tests := []struct {
		v    Vec3
		want Vec3
	}{
		{Vec3{0, 0, 2}, n},
		{Vec3{1, 0, 0}, n},
		{Vec3{1, 0, -0.5}, n.Neg()},
	}
	for _, tt := range tests {
		if got := FaceForward(n, tt.v); got != tt.want {
			t.Errorf("FaceForward(%v, %v) = %v, want %v", n, tt.v, got, tt.want)
		}
	}
}

func TestComponentWise(t *testing.T) {
	a := Vec3{1.5, -2.5, 3}
	b := Vec3{-1, 4, 3.25}
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"abs", Abs(a), Vec3{1.5, 2.5, 3}},
		{"min", Min(a, b), Vec3{-1, -2.5, 3}},
		{"max", Max(a, b), Vec3{1.5, 4, 3.25}},
		{"floor", Floor(a), Vec3{1, -3, 3}},
		{"ceil", Ceil(a), Vec3{2, -2, 3}},
		{"sqrt", Sqrt(Vec3{4, 9, 0.25}), Vec3{2, 3, 0.5}},
		{"permute", Permute(a, 2, 0, 1), Vec3{3, 1.5, -2.5}},
		{"permute repeat", Permute(a, 1, 1, 0), Vec3{-2.5, -2.5, 1.5}},
		{"permute out of range", Permute(a, 9, -1, 0), Vec3{3, 3, 1.5}},
		{"reflect", Reflect(Vec3{1, -1, 0}, Vec3{0, 1, 0}), Vec3{1, 1, 0}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if got := MinComponent(a); got != -2.5 {
		t.Errorf("MinComponent = %v", got)
	}
	if got := MaxComponent(b); got != 4 {
		t.Errorf("MaxComponent = %v", got)
	}
}

// NaN wins over any other component regardless of argument order.
func TestMinMaxNaN(t *testing.T) {
	nan := float(math.NaN())
	a := Vec3{0, 1, 2}
	b := Vec3{nan, 0, 3}
	for _, got := range []Vec3{Min(a, b), Min(b, a), Max(a, b), Max(b, a)} {
		if !m.IsNaN(got.X) {
			t.Errorf("X = %v, want NaN", got.X)
		}
	}
	if got := Min(a, b); got.Y != 0 || got.Z != 2 {
		t.Errorf("Min = %v, want [NaN, 0, 2]", got)
	}
	if got := Max(b, a); got.Y != 1 || got.Z != 3 {
		t.Errorf("Max = %v, want [NaN, 1, 3]", got)
	}
	if !m.IsNaN(MinComponent(b)) || !m.IsNaN(MaxComponent(b)) {
		t.Errorf("Min/MaxComponent(%v) = %v, %v, want NaN", b, MinComponent(b), MaxComponent(b))
	}
}

func TestDistance(t *testing.T) {
	a := Vec3{1, 1, 1}
	b := Vec3{3, 4, 7}
	if got := DistanceSquared(a, b); got != 49 {
		t.Errorf("DistanceSquared = %v, want 49", got)
	}
	if got := Distance(a, b); got != 7 {
		t.Errorf("Distance = %v, want 7", got)
	}
	if Distance(a, b) != Distance(b, a) {
		t.Error("Distance is not symmetric")
	}
}

func TestLerp(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{3, -4, 5}
	if got := Lerp(0, a, b); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := Lerp(1, a, b); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got, want := Lerp(0.5, a, b), a.Add(b).Kdiv(2); got != want {
		t.Errorf("Lerp(0.5) = %v, want %v", got, want)
	}
	if got := Lerp(2, a, b); got != (Vec3{5, -10, 7}) {
		t.Errorf("Lerp(2) = %v, want [5, -10, 7]", got)
	}
}

func TestRandomInUnitBall(t *testing.T) {
	rnd := m.NewRandSeeded(1, 2)
	for i := 0; i < 1000; i++ {
		u := RandomInUnitBall(rnd)
		if n := u.Length(); n >= 1 || n < m.Epsilon {
			t.Fatalf("RandomInUnitBall returned %v with length %v", u, n)
		}
	}
}
