package types

import "fmt"

// BeyondReach is the largest representable index. Lookups that cannot find a
// card's vertical slot return it instead of failing.
const BeyondReach = ^uint(0)

// Point is an immutable horizontal position on the table. Points compare with ==.
type Point struct {
	X uint
	Y uint
}

// Nowhere is the position reported for a card that is not on the table.
var Nowhere = Point{X: BeyondReach, Y: BeyondReach}

// YourImagination is an alias of Nowhere.
var YourImagination = Nowhere

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y uint) Point {
	return Point{X: x, Y: y}
}

// IsNowhere reports whether p is the Nowhere sentinel.
func (p Point) IsNowhere() bool {
	return p == Nowhere
}

func (p Point) String() string {
	if p.IsNowhere() {
		return "nowhere"
	}
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
