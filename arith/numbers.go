package arith

import (
	c "github.com/dhamidi/arith/combinator"
	"github.com/dhamidi/arith/lexical"
)

// Point is a pair of coordinates written as "x,y".
type Point struct {
	X float64
	Y float64
}

var (
	number = c.Whitespaced(lexical.Float64)

	numbers = c.Repeat1(number)

	sum = c.Fold1(number, 0.0, func(acc, v float64) float64 {
		return acc + v
	})

	point = c.Map(c.Tuple3(number, c.Literal(","), number), func(t c.Triple[float64, string, float64]) Point {
		return Point{X: t.First, Y: t.Third}
	})
)

// Numbers parses a whitespace separated list of at least one number.
func Numbers(text string) ([]float64, error) {
	return finish(numbers, text)
}

// Sum adds up a whitespace separated list of at least one number.
func Sum(text string) (float64, error) {
	return finish(sum, text)
}

// ParsePoint parses "x,y", allowing whitespace around either number.
func ParsePoint(text string) (Point, error) {
	return finish(point, text)
}
