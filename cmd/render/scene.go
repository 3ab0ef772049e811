package main

import (
	"ray/m"
	"ray/vec"
)

type MaterialKind int32

const (
	KindMatte MaterialKind = iota
	KindMetal
	KindDielectric
)

type Material struct {
	Kind   MaterialKind
	Albedo Vec   // for Matte and Metal
	F      float // fuzz when kind is Metal, refIdx when Dielectric
}

type HitRecord struct {
	T      float
	P      Vec
	Normal Vec
	Mat    Material
}

type Sphere struct {
	Center Vec
	Radius float
	Mat    Material
}

// Hit reports the nearest intersection with t in (tmin, tmax) and fills rec
// only in that case.
func (s *Sphere) Hit(tmin, tmax float, r *Ray, rec *HitRecord) bool {
	// |o + t d - c|^2 = R^2 with the factor 2 folded into halfB
	oc := r.Origin.Sub(s.Center)
	a := r.Dir.LengthSquared()
	halfB := vec.Dot(oc, r.Dir)
	c := oc.LengthSquared() - s.Radius*s.Radius
	disc := halfB*halfB - a*c
	if disc <= 0 {
		return false
	}
	sq := m.Sqrt(disc)
	t := (-halfB - sq) / a
	if t <= tmin || t >= tmax {
		t = (-halfB + sq) / a
		if t <= tmin || t >= tmax {
			return false
		}
	}
	p := r.Eval(t)
	*rec = HitRecord{
		T:      t,
		P:      p,
		Normal: p.Sub(s.Center).Kdiv(s.Radius),
		Mat:    s.Mat,
	}
	return true
}

type Scene struct {
	Spheres []Sphere
}

// Hit finds the closest sphere along r, shrinking the search interval to
// each hit found so far.
func (sc Scene) Hit(tmin, tmax float, r *Ray, rec *HitRecord) bool {
	found := false
	for i := range sc.Spheres {
		if sc.Spheres[i].Hit(tmin, tmax, r, rec) {
			found = true
			tmax = rec.T
		}
	}
	return found
}

func SmallScene() Scene {
	nspheres := 3 + 360/15
	spheres := make([]Sphere, 0, nspheres)

	spheres = append(spheres,
		Sphere{
			Center: Vec{X: 0, Y: -1000, Z: 0},
			Radius: 1000,
			Mat:    Material{Kind: KindMatte, Albedo: Vec{X: .88, Y: .96, Z: .7}},
		},
		Sphere{
			Center: Vec{X: 1.5, Y: 1, Z: 0},
			Radius: 1,
			Mat:    Material{Kind: KindDielectric, F: 1.5},
		},
		Sphere{
			Center: Vec{X: -1.5, Y: 1, Z: 0},
			Radius: 1,
			Mat:    Material{Kind: KindMetal, Albedo: Vec{X: .8, Y: .9, Z: .8}, F: 0},
		},
	)

	const R0 = 3
	for deg := 0; deg < 360; deg += 15 {
		rad := m.DegreesToRadians(float(deg))
		x, z := m.Sin(rad), m.Cos(rad)
		R1 := .33 + x*z/9
		// albedo components stay in [0,1] even where sin or cos is negative
		albedo := vec.Vec3{X: x, Y: .5 + x*z/2, Z: z}
		albedo = vec.Max(albedo, vec.Zeros)
		spheres = append(spheres, Sphere{
			Center: Vec{X: R0 * x, Y: R1, Z: R0 * z},
			Radius: R1,
			Mat:    Material{Kind: KindMatte, Albedo: albedo},
		})
	}

	return Scene{spheres}
}
