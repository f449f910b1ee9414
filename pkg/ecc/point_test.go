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
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/go-ecmath/pkg/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// f223Point constructs a point on the toy curve y² = x³ + 7 over F₂₂₃.
func f223Point(t *testing.T, x, y int64) Point {
	t.Helper()
	//
	p, err := F223().Point(big.NewInt(x), big.NewInt(y))
	require.NoError(t, err)
	//
	return p
}

func f223Infinity(t *testing.T) Point {
	t.Helper()
	//
	p, err := F223().Infinity()
	require.NoError(t, err)
	//
	return p
}

func f223Element(t *testing.T, v int64) field.FieldElement {
	t.Helper()
	//
	e, err := field.NewInt64(v, 223)
	require.NoError(t, err)
	//
	return e
}

func checkPoint(t *testing.T, expected Point, actual Point, err error) {
	t.Helper()
	require.NoError(t, err)
	assert.True(t, expected.Equal(actual), "expected %s, got %s", expected, actual)
}

func Test_NewPoint_00(t *testing.T) {
	for _, c := range [][2]int64{{192, 105}, {17, 56}, {1, 193}} {
		p := f223Point(t, c[0], c[1])
		x, ok := p.X()
		require.True(t, ok)
		assert.Equal(t, c[0], x.Num().Int64())
	}
}

func Test_NewPoint_01(t *testing.T) {
	for _, c := range [][2]int64{{200, 119}, {42, 99}} {
		_, err := F223().Point(big.NewInt(c[0]), big.NewInt(c[1]))
		//
		var notOnCurve *NotOnCurveError
		require.ErrorAs(t, err, &notOnCurve)
		assert.Equal(t, c[0], notOnCurve.X.Num().Int64())
		assert.Equal(t, c[1], notOnCurve.Y.Num().Int64())
	}
}

func Test_NewPoint_02(t *testing.T) {
	y, err := field.NewInt64(105, 227)
	require.NoError(t, err)
	//
	_, err = NewPoint(f223Element(t, 192), y, f223Element(t, 0), f223Element(t, 7))
	//
	var mismatch *field.MisMatchedPrimesError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, int64(223), mismatch.Left.Int64())
	assert.Equal(t, int64(227), mismatch.Right.Int64())
}

func Test_NewPoint_03(t *testing.T) {
	// Coordinates out of range of the field
	_, err := F223().Point(big.NewInt(223), big.NewInt(0))
	//
	var tooLarge *field.NumberTooLargeError
	require.ErrorAs(t, err, &tooLarge)
}

func Test_Infinity_00(t *testing.T) {
	b, err := field.NewInt64(7, 227)
	require.NoError(t, err)
	//
	_, err = Infinity(f223Element(t, 0), b)
	//
	var mismatch *field.MisMatchedPrimesError
	require.ErrorAs(t, err, &mismatch)
	//
	inf := f223Infinity(t)
	assert.True(t, inf.IsInfinity())
	_, ok := inf.X()
	assert.False(t, ok)
	_, ok = inf.Y()
	assert.False(t, ok)
}

func Test_Add_00(t *testing.T) {
	tests := []struct{ x1, y1, x2, y2, x3, y3 int64 }{
		{170, 142, 60, 139, 220, 181},
		{47, 71, 17, 56, 215, 68},
		{143, 98, 76, 66, 47, 71},
		{192, 105, 192, 105, 49, 71},
	}
	//
	for _, tc := range tests {
		sum, err := f223Point(t, tc.x1, tc.y1).Add(f223Point(t, tc.x2, tc.y2))
		checkPoint(t, f223Point(t, tc.x3, tc.y3), sum, err)
	}
}

func Test_Add_01(t *testing.T) {
	inf := f223Infinity(t)
	p := f223Point(t, 47, 71)
	//
	sum, err := inf.Add(p)
	checkPoint(t, p, sum, err)
	sum, err = p.Add(inf)
	checkPoint(t, p, sum, err)
	sum, err = p.Add(p.Neg())
	checkPoint(t, inf, sum, err)
}

func Test_Add_02(t *testing.T) {
	// x³ + 7 has a root over F₂₂₃ iff -7 is a cube; scan for a point with y = 0.
	for x := int64(0); x < 223; x++ {
		if p, err := F223().Point(big.NewInt(x), big.NewInt(0)); err == nil {
			sum, err := p.Add(p)
			checkPoint(t, f223Infinity(t), sum, err)
		}
	}
}

func Test_Add_03(t *testing.T) {
	p := f223Point(t, 47, 71)
	//
	g, err := Secp256k1().Generator()
	require.NoError(t, err)
	//
	_, err = p.Add(g)
	//
	var different *DifferentCurvesError
	require.ErrorAs(t, err, &different)
	assert.True(t, different.Left.Equal(p))
	assert.True(t, different.Right.Equal(g))
}

func Test_ScalarMul_00(t *testing.T) {
	g := f223Point(t, 47, 71)
	//
	tests := []struct {
		k    int64
		x, y int64
	}{
		{1, 47, 71},
		{2, 36, 111},
		{7, 92, 47},
		{20, 47, 152},
		{-1, 47, 152},
	}
	//
	for _, tc := range tests {
		kg, err := g.ScalarMul(big.NewInt(tc.k))
		checkPoint(t, f223Point(t, tc.x, tc.y), kg, err)
	}
	// The generator has order 21
	for _, k := range []int64{0, 21, 42, -21} {
		kg, err := g.ScalarMul(big.NewInt(k))
		checkPoint(t, f223Infinity(t), kg, err)
	}
}

func Test_ScalarMul_01(t *testing.T) {
	// n·G = ∞ for every named curve.
	for _, name := range Names() {
		c, err := Lookup(name)
		require.NoError(t, err)
		//
		g, err := c.Generator()
		require.NoError(t, err)
		//
		ng, err := g.ScalarMul(c.N)
		require.NoError(t, err)
		assert.True(t, ng.IsInfinity(), "%s: n·G = %s", name, ng)
		// (n-1)·G = -G
		ng, err = g.ScalarMul(new(big.Int).Sub(c.N, big.NewInt(1)))
		checkPoint(t, g.Neg(), ng, err)
	}
}

func Test_Lookup_00(t *testing.T) {
	assert.Equal(t, []string{"f223", "p256", "secp256k1"}, Names())
	//
	c, err := Lookup("secp256k1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.B.Int64())
	// Parameters are fresh on each lookup
	c.B.SetInt64(8)
	assert.Equal(t, int64(7), Secp256k1().B.Int64())
	//
	_, err = Lookup("curve25519")
	require.True(t, errors.Is(err, ErrUnknownCurve))
}

func Test_String_00(t *testing.T) {
	assert.Equal(t, "Point(x:47, y:71, a:0, b:7, prime:223)", f223Point(t, 47, 71).String())
	assert.Equal(t, "Point(x:Infinity, y:Infinity, a:0, b:7, prime:223)", f223Infinity(t).String())
}
