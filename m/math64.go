//go:build math64

package m // import "ray/m"

import "math"

// Exported name
type Float = float64

const MaxFloat = math.MaxFloat64

var (
	Epsilon  Float
	Infinity Float
)

func init() {
	Epsilon = math.Nextafter(1, 2) - 1
	Infinity = math.Inf(1)
}

func Abs(x Float) Float { return math.Abs(x) }

func Sqrt(x Float) Float { return math.Sqrt(x) }

func Floor(x Float) Float { return math.Floor(x) }

func Ceil(x Float) Float { return math.Ceil(x) }

// Min and Max return NaN if either argument is NaN.
func Min(x, y Float) Float { return math.Min(x, y) }

func Max(x, y Float) Float { return math.Max(x, y) }

func IsNaN(x Float) bool { return math.IsNaN(x) }

func Pow(x, y Float) Float { return math.Pow(x, y) }

func Cos(x Float) Float { return math.Cos(x) }

func Sin(x Float) Float { return math.Sin(x) }

func Tan(x Float) Float { return math.Tan(x) }
