// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package curve

import (
	"fmt"
	"math/big"
)

// Point is a point on an elliptic curve y² = x³ + a·x + b over the integers,
// or the point at infinity of that curve (which is the identity of the group).
// The point at infinity is represented by both coordinates being absent (nil).
// Every point carries its own curve coefficients, and two points are only
// considered on the same curve when their coefficients match exactly.
//
// Coordinates are unbounded integers, and the slopes used in the group law are
// computed with integer division (truncated towards zero).  This models the
// group law over rational coordinates only for inputs where the divisions are
// exact; it is not a curve over a finite field and has no cryptographic
// meaning.  See package ecc for curves over finite fields.
//
// A zero Point is not valid, and points should be obtained from New, NewInt64,
// Infinity or Add.  None of the big.Int values held by a point are ever
// mutated.
type Point struct {
	x *big.Int
	y *big.Int
	a *big.Int
	b *big.Int
}

// New constructs a point with the given coordinates on the curve determined by
// a and b.  When both x and y are nil the point at infinity is returned.  This
// fails if only one of the coordinates is nil, or the coordinates do not satisfy
// the curve equation.
func New(x, y, a, b *big.Int) (Point, error) {
	switch {
	case x == nil && y == nil:
		return Infinity(a, b), nil
	case x == nil || y == nil:
		return Point{}, ErrSingleInfinity
	case !OnCurve(x, y, a, b):
		return Point{}, &InvalidPointError{clone(y), clone(x)}
	}
	//
	return Point{clone(x), clone(y), clone(a), clone(b)}, nil
}

// NewInt64 is a convenience wrapper around New for (finite) points with small
// coordinates.
func NewInt64(x, y, a, b int64) (Point, error) {
	return New(big.NewInt(x), big.NewInt(y), big.NewInt(a), big.NewInt(b))
}

// Infinity returns the point at infinity of the curve determined by a and b.
func Infinity(a, b *big.Int) Point {
	return Point{nil, nil, clone(a), clone(b)}
}

// OnCurve checks whether (x,y) satisfies y² = x³ + a·x + b.
func OnCurve(x, y, a, b *big.Int) bool {
	lhs := new(big.Int).Mul(y, y)
	rhs := new(big.Int).Mul(x, x)
	rhs.Add(rhs, a)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, b)
	//
	return lhs.Cmp(rhs) == 0
}

// X returns (a copy of) the x coordinate, or nil for the point at infinity.
func (p Point) X() *big.Int {
	return clone(p.x)
}

// Y returns (a copy of) the y coordinate, or nil for the point at infinity.
func (p Point) Y() *big.Int {
	return clone(p.y)
}

// A returns (a copy of) the linear coefficient of the curve.
func (p Point) A() *big.Int {
	return clone(p.a)
}

// B returns (a copy of) the constant coefficient of the curve.
func (p Point) B() *big.Int {
	return clone(p.b)
}

// IsInfinity checks whether this is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.x == nil
}

// SameCurve checks whether two points are on the same curve.
func (p Point) SameCurve(q Point) bool {
	return p.a.Cmp(q.a) == 0 && p.b.Cmp(q.b) == 0
}

// Equal checks whether two points have the same coordinates and are on the same
// curve.
func (p Point) Equal(q Point) bool {
	return p.SameCurve(q) && equal(p.x, q.x) && equal(p.y, q.y)
}

// Neg returns the reflection (x,-y) of this point, which is its inverse.
func (p Point) Neg() Point {
	if p.IsInfinity() {
		return p
	}
	//
	return Point{p.x, new(big.Int).Neg(p.y), p.a, p.b}
}

// Add two points together according to the elliptic curve group law.  This
// fails if the points are on different curves.
func (p Point) Add(q Point) (Point, error) {
	switch {
	case !p.SameCurve(q):
		return Point{}, &DifferentCurvesError{p, q}
	case p.IsInfinity():
		return q, nil
	case q.IsInfinity():
		return p, nil
	case equal(p.x, q.x) && !equal(p.y, q.y):
		// Vertical line through p and its reflection.
		return Infinity(p.a, p.b), nil
	case !equal(p.x, q.x):
		// s = (y₂ - y₁) / (x₂ - x₁)
		num := new(big.Int).Sub(q.y, p.y)
		den := new(big.Int).Sub(q.x, p.x)
		//
		return p.through(q, num.Quo(num, den)), nil
	case p.y == nil:
		// Only reachable for points not constructed through New.
		break
	case p.Equal(q) && p.y.Sign() == 0:
		// Vertical tangent
		return Infinity(p.a, p.b), nil
	case p.Equal(q):
		// s = (3x² + a) / 2y
		num := new(big.Int).Mul(p.x, p.x)
		num.Mul(num, big.NewInt(3))
		num.Add(num, p.a)
		den := new(big.Int).Lsh(p.y, 1)
		//
		return p.through(q, num.Quo(num, den)), nil
	}
	//
	return Point{}, &UnknownAdditionError{p, q}
}

// Determine the (reflected) third point on the line through p and q with a
// given slope s, where x₃ = s² - x₁ - x₂ and y₃ = s·(x₁ - x₃) - y₁.
func (p Point) through(q Point, s *big.Int) Point {
	x := new(big.Int).Mul(s, s)
	x.Sub(x, p.x)
	x.Sub(x, q.x)
	//
	y := new(big.Int).Sub(p.x, x)
	y.Mul(y, s)
	y.Sub(y, p.y)
	//
	return Point{x, y, p.a, p.b}
}

func (p Point) String() string {
	return fmt.Sprintf("Point(x:%s, y:%s, a:%s, b:%s)", coordinate(p.x), coordinate(p.y), p.a, p.b)
}

func coordinate(c *big.Int) string {
	if c == nil {
		return "Infinity"
	}
	//
	return c.String()
}

func equal(x, y *big.Int) bool {
	if x == nil || y == nil {
		return x == y
	}
	//
	return x.Cmp(y) == 0
}

func clone(x *big.Int) *big.Int {
	if x == nil {
		return nil
	}
	//
	return new(big.Int).Set(x)
}
