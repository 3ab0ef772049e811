//go:build !math64

package m // import "ray/m"

import "github.com/chewxy/math32"

// Exported name
type Float = float32

const MaxFloat = math32.MaxFloat32

var (
	Epsilon  Float
	Infinity Float
)

func init() {
	Epsilon = math32.Nextafter(1, 2) - 1
	Infinity = math32.Inf(1)
}

func Abs(x Float) Float { return math32.Abs(x) }

func Sqrt(x Float) Float { return math32.Sqrt(x) }

func Floor(x Float) Float { return math32.Floor(x) }

func Ceil(x Float) Float { return math32.Ceil(x) }

// Min and Max return NaN if either argument is NaN.
func Min(x, y Float) Float { return math32.Min(x, y) }

func Max(x, y Float) Float { return math32.Max(x, y) }

func IsNaN(x Float) bool { return math32.IsNaN(x) }

func Pow(x, y Float) Float { return math32.Pow(x, y) }

func Cos(x Float) Float { return math32.Cos(x) }

func Sin(x Float) Float { return math32.Sin(x) }

func Tan(x Float) Float { return math32.Tan(x) }
