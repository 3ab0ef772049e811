package main

import (
	"io"
	"sync"

	"ray/m"
	"ray/vec"
)

type float = m.Float

type Vec = vec.Vec3

type ImageWriter func(io.Writer, []byte, int, int) error

// Run renders the default scene with one goroutine per row. Each goroutine
// owns its random state, derived from cfg.Seed and the row index.
func Run(write ImageWriter, w io.Writer, cfg Config) error {
	nx, ny := cfg.Width, cfg.Height
	buf := RenderImage(cfg, SmallScene())
	return write(w, buf, nx, ny)
}

func RenderImage(cfg Config, sc Scene) []byte {
	nx, ny := cfg.Width, cfg.Height
	lookFrom, lookAt := cfg.Camera.From(), cfg.Camera.At()
	distToFocus := vec.Distance(lookFrom, lookAt)

	nxf, nyf := float(nx), float(ny)

	cam := CameraNew(
		lookFrom, lookAt, cfg.Camera.VUp(),
		cfg.Camera.VFov, nxf/nyf, cfg.Camera.Aperture, distToFocus,
	)

	buf := make([]byte, 3*nx*ny)

	bufpos := 0
	rowlen := 3 * nx
	var wg sync.WaitGroup
	wg.Add(ny)
	for i := 0; i < ny; i++ {
		ymax := float(ny-i-0) / nyf
		ymin := float(ny-i-1) / nyf
		bufchunk := buf[bufpos : bufpos+rowlen]
		rnd := newRowRand(cfg.Seed, i)
		go func() {
			Render(bufchunk, cam, sc, rnd, cfg.Samples, cfg.MaxDepth, nx, 1, ymin, ymax)
			wg.Done()
		}()
		bufpos += rowlen
	}
	wg.Wait()

	return buf
}

func newRowRand(seed uint64, row int) *m.RandState {
	if seed == 0 {
		return m.NewRand()
	}
	return m.NewRandSeeded(seed, uint64(row))
}

func Render(
	buf []byte, cam Camera, sc Scene, rnd *m.RandState,
	nsamples, maxDepth, nx, ny int, ymin, ymax float,
) {
	yheight := ymax - ymin
	bi := 0
	for j := ny; j > 0; j-- {
		for i := 0; i < nx; i++ {
			var color Vec
			for s := 0; s < nsamples; s++ {
				x := (float(i) + rnd.Rand()) / float(nx)
				y := ymin + (yheight*(float(j-1)+rnd.Rand()))/float(ny)
				r := cam.RayAtXY(x, y, rnd)
				color = color.Add(sc.Color(&r, rnd, maxDepth))
			}
			color = color.Kdiv(float(nsamples))
			color = vec.Sqrt(color)
			buf[bi+0] = toByte(color.X)
			buf[bi+1] = toByte(color.Y)
			buf[bi+2] = toByte(color.Z)
			bi += 3
		}
	}
}

// toByte maps [0,1] to a byte. NaN samples become black.
func toByte(c float) byte {
	if m.IsNaN(c) {
		return 0
	}
	return byte(255 * m.Clamp(c, 0, 1))
}

type Ray struct {
	Origin, Dir Vec
}

func (r *Ray) Eval(t float) Vec {
	return r.Origin.Add(r.Dir.Kmul(t))
}

var skyColor = Vec{X: .75, Y: .95, Z: 1.0}

func (sc Scene) Color(r0 *Ray, rnd *m.RandState, maxDepth int) Vec {
	var rec HitRecord
	r := *r0
	color := vec.Ones // At infinity
	for depth := 0; depth < maxDepth; depth++ {
		if !sc.Hit(m.ShadowEpsilon, m.Infinity, &r, &rec) {
			t := .5 * (vec.Normalize(r.Dir).Y + 1)
			color = color.Mul(vec.Lerp(t, vec.Ones, skyColor))
			break
		}
		attenuation, scattered := Scatter(&r, rec.P, rec.Normal, rec.Mat, rnd)
		r = scattered
		color = color.Mul(attenuation)
	}
	return color
}

type Camera struct {
	LowerLeftCorner     Vec
	Horiz, Vert, Origin Vec
	U, V, W             Vec
	LensRadius          float
}

func CameraNew(
	lookFrom, lookAt, vup Vec,
	vfov, aspect, aperture, focusDist float,
) Camera {
	theta := m.DegreesToRadians(vfov)
	halfHeight := m.Tan(theta / 2)
	halfWidth := aspect * halfHeight
	w := vec.Normalize(lookFrom.Sub(lookAt))
	u := vec.Normalize(vec.Cross(vup, w))
	v := vec.Cross(w, u)

	llc := lookFrom.Sub(u.Kmul(halfWidth * focusDist))
	llc = llc.Sub(v.Kmul(halfHeight * focusDist))
	llc = llc.Sub(w.Kmul(focusDist))

	return Camera{
		LowerLeftCorner: llc,
		Horiz:           u.Kmul(2 * halfWidth * focusDist),
		Vert:            v.Kmul(2 * halfHeight * focusDist),
		Origin:          lookFrom,
		U:               u,
		V:               v,
		W:               w,
		LensRadius:      aperture / 2,
	}
}

func (c *Camera) RayAtXY(x, y float, rnd *m.RandState) Ray {
	rd := vec.RandomInUnitBall(rnd).Kmul(c.LensRadius)
	offset := c.U.Kmul(rd.X).Add(c.V.Kmul(rd.Y))

	dir := c.Horiz.Kmul(x).Add(c.Vert.Kmul(y))
	dir = c.LowerLeftCorner.Add(dir)
	dir = dir.Sub(c.Origin)
	dir = dir.Sub(offset)
	return Ray{Origin: c.Origin.Add(offset), Dir: dir}
}

func Schlick(cosine, refIdx float) float {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*m.Pow(1-cosine, 5)
}

func Refract(u, n Vec, niOverNt float, refracted *Vec) bool {
	un := vec.Normalize(u)
	dt := vec.Dot(un, n)
	D := 1 - niOverNt*niOverNt*(1-dt*dt)
	if D > 0 {
		*refracted = un.Sub(n.Kmul(dt)).Kmul(niOverNt).Sub(n.Kmul(m.Sqrt(D)))
		return true
	}
	return false
}

// cosineHemisphere returns a direction around normal, drawn with density
// proportional to the cosine of the angle to it.
func cosineHemisphere(normal Vec, rnd *m.RandState) Vec {
	t1, t2 := vec.CoordinateSystem(normal)
	phi := 2 * m.Pi * rnd.Rand()
	r2 := rnd.Rand()
	rs := m.Sqrt(r2)
	local := t1.Kmul(m.Cos(phi) * rs).Add(t2.Kmul(m.Sin(phi) * rs))
	return local.Add(normal.Kmul(m.Sqrt(1 - r2)))
}

func Scatter(r *Ray, p, normal Vec, mat Material, rnd *m.RandState) (Vec, Ray) {
	switch mat.Kind {
	case KindMatte:
		scattered := Ray{Origin: p, Dir: cosineHemisphere(normal, rnd)}
		return mat.Albedo, scattered

	case KindMetal:
		reflected := vec.Reflect(vec.Normalize(r.Dir), normal)
		dir := reflected.Add(vec.RandomInUnitBall(rnd).Kmul(mat.F))
		var scattered Ray
		if vec.Dot(dir, normal) > 0 {
			scattered.Origin = p
			scattered.Dir = dir
		} else {
			scattered = *r
		}
		return mat.Albedo, scattered

	case KindDielectric:
		refIdx := mat.F
		// normal on the side the ray comes from
		outwardNormal := vec.FaceForward(normal, r.Dir.Neg())
		var niOverNt, cosine float
		dot := vec.Dot(r.Dir, normal)
		if dot > 0 {
			niOverNt = refIdx
			cosine = refIdx * dot / r.Dir.Length()
		} else {
			niOverNt = 1 / refIdx
			cosine = -dot / r.Dir.Length()
		}
		var dir Vec
		if !Refract(r.Dir, outwardNormal, niOverNt, &dir) ||
			rnd.Rand() < Schlick(cosine, refIdx) {
			dir = vec.Reflect(r.Dir, normal)
		}
		scattered := Ray{Origin: p, Dir: dir}
		return vec.Ones, scattered

	default:
		panic("unknown material kind")
	}
}
