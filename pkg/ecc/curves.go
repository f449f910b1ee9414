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
	"slices"

	"github.com/consensys/go-ecmath/pkg/field"
)

// NamedCurve holds the domain parameters of a well-known curve y² = x³ + a·x + b
// over the prime field of order P, along with a generator G = (Gx, Gy) of a
// subgroup of order N.  Every call to a curve constructor (e.g. Secp256k1)
// returns fresh parameters, hence they may be modified freely.
type NamedCurve struct {
	Name string
	P    *big.Int
	A    *big.Int
	B    *big.Int
	Gx   *big.Int
	Gy   *big.Int
	N    *big.Int
}

// Lookup a named curve.
func Lookup(name string) (*NamedCurve, error) {
	if fn, ok := namedCurves[name]; ok {
		return fn(), nil
	}
	//
	return nil, fmt.Errorf("%w \"%s\" (expected one of %v)", ErrUnknownCurve, name, Names())
}

// Names returns the names of all known curves in sorted order.
func Names() []string {
	names := make([]string, 0, len(namedCurves))
	//
	for n := range namedCurves {
		names = append(names, n)
	}
	//
	slices.Sort(names)
	//
	return names
}

// Element constructs an element of the base field of this curve.
func (c *NamedCurve) Element(v *big.Int) (field.FieldElement, error) {
	return field.New(v, c.P)
}

// Point constructs the point (x,y) on this curve.
func (c *NamedCurve) Point(x, y *big.Int) (Point, error) {
	elems, err := c.elements(x, y, c.A, c.B)
	if err != nil {
		return Point{}, err
	}
	//
	return NewPoint(elems[0], elems[1], elems[2], elems[3])
}

// Infinity returns the point at infinity of this curve.
func (c *NamedCurve) Infinity() (Point, error) {
	elems, err := c.elements(c.A, c.B)
	if err != nil {
		return Point{}, err
	}
	//
	return Infinity(elems[0], elems[1])
}

// Generator returns the generator point G of this curve.
func (c *NamedCurve) Generator() (Point, error) {
	return c.Point(c.Gx, c.Gy)
}

func (c *NamedCurve) elements(vals ...*big.Int) ([]field.FieldElement, error) {
	var (
		err   error
		elems = make([]field.FieldElement, len(vals))
	)
	//
	for i, v := range vals {
		if elems[i], err = c.Element(v); err != nil {
			return nil, err
		}
	}
	//
	return elems, nil
}

func fromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic(fmt.Sprintf("invalid hex constant %s", s))
	}
	//
	return v
}
