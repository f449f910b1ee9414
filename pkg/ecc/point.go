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
package ecc

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-ecmath/pkg/field"
)

// Point is a point on an elliptic curve y² = x³ + a·x + b whose coordinates and
// coefficients are elements of the same prime field, or the point at infinity
// of such a curve.  As for curve.Point, each point carries its own curve.
type Point struct {
	// Coordinates (undefined for the point at infinity)
	x, y field.FieldElement
	// Curve coefficients
	a, b field.FieldElement
	// Indicates the point at infinity
	infinity bool
}

// NewPoint constructs the point (x,y) on the curve determined by a and b.  All
// four elements must belong to the same field, and the coordinates must satisfy
// the curve equation.
func NewPoint(x, y, a, b field.FieldElement) (Point, error) {
	for _, e := range []field.FieldElement{y, a, b} {
		if !x.SameField(e) {
			return Point{}, &field.MisMatchedPrimesError{Left: x.Prime(), Right: e.Prime()}
		}
	}
	//
	var (
		c   calc
		lhs = c.mul(y, y)
		rhs = c.add(c.mul(c.add(c.mul(x, x), a), x), b)
	)
	//
	if c.err != nil {
		return Point{}, c.err
	} else if !lhs.Equal(rhs) {
		return Point{}, &NotOnCurveError{x, y}
	}
	//
	return Point{x: x, y: y, a: a, b: b}, nil
}

// Infinity returns the point at infinity of the curve determined by a and b,
// which must belong to the same field.
func Infinity(a, b field.FieldElement) (Point, error) {
	if !a.SameField(b) {
		return Point{}, &field.MisMatchedPrimesError{Left: a.Prime(), Right: b.Prime()}
	}
	//
	return Point{a: a, b: b, infinity: true}, nil
}

// X returns the x coordinate, or false for the point at infinity.
func (p Point) X() (field.FieldElement, bool) {
	return p.x, !p.infinity
}

// Y returns the y coordinate, or false for the point at infinity.
func (p Point) Y() (field.FieldElement, bool) {
	return p.y, !p.infinity
}

// IsInfinity checks whether this is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.infinity
}

// SameCurve checks whether two points are on the same curve.
func (p Point) SameCurve(q Point) bool {
	return p.a.Equal(q.a) && p.b.Equal(q.b)
}

// Equal checks whether two points are identical.
func (p Point) Equal(q Point) bool {
	if !p.SameCurve(q) || p.infinity != q.infinity {
		return false
	}
	//
	return p.infinity || (p.x.Equal(q.x) && p.y.Equal(q.y))
}

// Neg returns the inverse (x,-y) of this point.
func (p Point) Neg() Point {
	if p.infinity {
		return p
	}
	//
	return Point{x: p.x, y: p.y.Neg(), a: p.a, b: p.b}
}

// Add two points together according to the elliptic curve group law.  The cases
// mirror those of curve.Point, except that slopes are computed with field
// division.
func (p Point) Add(q Point) (Point, error) {
	switch {
	case !p.SameCurve(q):
		return Point{}, &DifferentCurvesError{p, q}
	case p.infinity:
		return q, nil
	case q.infinity:
		return p, nil
	case p.x.Equal(q.x) && !p.y.Equal(q.y):
		return p.inf(), nil
	case !p.x.Equal(q.x):
		var c calc
		// s = (y₂ - y₁) / (x₂ - x₁)
		s := c.div(c.sub(q.y, p.y), c.sub(q.x, p.x))
		//
		return p.through(q, s, &c)
	case p.y.IsZero():
		return p.inf(), nil
	default:
		var c calc
		// s = (3x² + a) / 2y
		xx := c.mul(p.x, p.x)
		s := c.div(c.add(c.add(c.add(xx, xx), xx), p.a), c.add(p.y, p.y))
		//
		return p.through(q, s, &c)
	}
}

// ScalarMul computes k·p using binary double-and-add.  A negative scalar k
// gives |k|·(-p).
func (p Point) ScalarMul(k *big.Int) (Point, error) {
	if k.Sign() < 0 {
		return p.Neg().ScalarMul(new(big.Int).Neg(k))
	}
	//
	var (
		err    error
		result = p.inf()
		addend = p
	)
	//
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			if result, err = result.Add(addend); err != nil {
				return Point{}, err
			}
		}
		// No need to double past the top bit
		if i+1 == k.BitLen() {
			break
		} else if addend, err = addend.Add(addend); err != nil {
			return Point{}, err
		}
	}
	//
	return result, nil
}

func (p Point) String() string {
	if p.infinity {
		return fmt.Sprintf("Point(x:Infinity, y:Infinity, a:%s, b:%s, prime:%s)", p.a.Num(), p.b.Num(), p.a.Prime())
	}
	//
	return fmt.Sprintf("Point(x:%s, y:%s, a:%s, b:%s, prime:%s)", p.x.Num(), p.y.Num(), p.a.Num(), p.b.Num(),
		p.a.Prime())
}

func (p Point) inf() Point {
	return Point{a: p.a, b: p.b, infinity: true}
}

// Determine the (reflected) third point on the line through p and q with a
// given slope s, where x₃ = s² - x₁ - x₂ and y₃ = s·(x₁ - x₃) - y₁.
func (p Point) through(q Point, s field.FieldElement, c *calc) (Point, error) {
	x := c.sub(c.sub(c.mul(s, s), p.x), q.x)
	y := c.sub(c.mul(s, c.sub(p.x, x)), p.y)
	//
	if c.err != nil {
		return Point{}, c.err
	}
	//
	return Point{x: x, y: y, a: p.a, b: p.b}, nil
}

// calc chains field operations, retaining the first error encountered.  Once an
// error has arisen, all subsequent operations are skipped.
type calc struct {
	err error
}

func (c *calc) add(x, y field.FieldElement) field.FieldElement {
	return c.apply(x.Add, y)
}

func (c *calc) sub(x, y field.FieldElement) field.FieldElement {
	return c.apply(x.Sub, y)
}

func (c *calc) mul(x, y field.FieldElement) field.FieldElement {
	return c.apply(x.Mul, y)
}

func (c *calc) div(x, y field.FieldElement) field.FieldElement {
	return c.apply(x.Div, y)
}

func (c *calc) apply(op func(field.FieldElement) (field.FieldElement, error), y field.FieldElement) field.FieldElement {
	if c.err != nil {
		return field.FieldElement{}
	}
	//
	res, err := op(y)
	c.err = err
	//
	return res
}
