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
package field

import (
	"fmt"
	"math/big"
)

// BatchInverse computes the inverses of all elements in xs, using only a
// single field inversion (Montgomery's trick).  All elements must belong to the
// same field, and none may be zero.  The elements of xs are not modified.
func BatchInverse(xs []FieldElement) ([]FieldElement, error) {
	n := len(xs)
	if n == 0 {
		return nil, nil
	}
	//
	for i, x := range xs {
		if err := xs[0].checkField(x); err != nil {
			return nil, err
		} else if x.IsZero() {
			return nil, fmt.Errorf("element %d: %w", i, ErrDivisionByZero)
		}
	}
	// m[i] = xs[i] * xs[i+1] * ...
	m := make([]FieldElement, n)
	m[n-1] = xs[n-1]
	//
	for i := n - 2; i >= 0; i-- {
		m[i] = m[i+1].mul(xs[i])
	}
	// inv = xs[0]⁻¹ * xs[1]⁻¹ * ...
	inv, err := m[0].Inverse()
	if err != nil {
		// Only possible for a composite modulus
		return nil, err
	}
	//
	res := make([]FieldElement, n)
	//
	for i := 0; i < n-1; i++ {
		// inv = xs[i]⁻¹ * xs[i+1]⁻¹ * ...
		res[i] = inv.mul(m[i+1])
		inv = inv.mul(xs[i])
	}
	//
	res[n-1] = inv
	//
	return res, nil
}

// Unchecked multiplication, for elements already known to share a field.
func (x FieldElement) mul(y FieldElement) FieldElement {
	num := new(big.Int).Mul(x.num, y.num)
	//
	return FieldElement{num.Mod(num, x.prime), x.prime}
}
