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
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func Test_Property_ScalarMul(t *testing.T) {
	checkScalarMulProperties(t, F223(), 500)
	checkScalarMulProperties(t, Secp256k1(), 20)
}

func checkScalarMulProperties(t *testing.T, curve *NamedCurve, n int) {
	g, err := curve.Generator()
	if err != nil {
		t.Fatal(err)
	}
	//
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = n
	properties := gopter.NewProperties(parameters)
	//
	mul := func(k int64) Point {
		kg, err := g.ScalarMul(big.NewInt(k))
		if err != nil {
			t.Fatal(err)
		}
		//
		return kg
	}
	//
	properties.Property(curve.Name+": k1·G + k2·G = (k1+k2)·G", prop.ForAll(
		func(k1, k2 int64) bool {
			sum, err := mul(k1).Add(mul(k2))
			//
			return err == nil && sum.Equal(mul(k1+k2))
		},
		gen.Int64Range(-100_000, 100_000),
		gen.Int64Range(-100_000, 100_000),
	))
	properties.Property(curve.Name+": addition commutes", prop.ForAll(
		func(k1, k2 int64) bool {
			p, q := mul(k1), mul(k2)
			lhs, err1 := p.Add(q)
			rhs, err2 := q.Add(p)
			//
			return err1 == nil && err2 == nil && lhs.Equal(rhs)
		},
		gen.Int64Range(-100_000, 100_000),
		gen.Int64Range(-100_000, 100_000),
	))
	properties.Property(curve.Name+": k·G + (-k)·G = ∞", prop.ForAll(
		func(k int64) bool {
			sum, err := mul(k).Add(mul(-k))
			//
			return err == nil && sum.IsInfinity()
		},
		gen.Int64Range(-100_000, 100_000),
	))
	//
	properties.TestingRun(t)
}
