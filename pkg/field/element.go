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

var one = big.NewInt(1)

// FieldElement is an element of the prime field of integers modulo some prime.
// An element holds both its value and the prime of the field it belongs to, so
// elements of different fields can be freely mixed and are only checked for
// compatibility when combined.  The value is always kept in canonical form,
// i.e. 0 <= num < prime.  Neither big.Int is ever mutated once an element has
// been constructed, hence elements can be shared freely.
//
// NOTE: the primality of the modulus is never checked.  Field identities (such
// as the existence of inverses) only hold when the modulus is actually prime.
type FieldElement struct {
	num   *big.Int
	prime *big.Int
}

// New constructs a field element with the given value in the field of integers
// modulo prime.  This fails if num is not within the range [0, prime).  When
// num is both too large and negative (which can only happen for a non-positive
// prime) the too large error takes precedence.
func New(num *big.Int, prime *big.Int) (FieldElement, error) {
	if num.Cmp(prime) >= 0 {
		return FieldElement{}, &NumberTooLargeError{new(big.Int).Set(num), new(big.Int).Set(prime)}
	} else if num.Sign() < 0 {
		return FieldElement{}, &NumberLessThanZeroError{new(big.Int).Set(num)}
	}
	//
	return FieldElement{new(big.Int).Set(num), new(big.Int).Set(prime)}, nil
}

// NewInt64 is a convenience wrapper around New for small values.
func NewInt64(num int64, prime int64) (FieldElement, error) {
	return New(big.NewInt(num), big.NewInt(prime))
}

// Num returns (a copy of) the value of this element.
func (x FieldElement) Num() *big.Int {
	return new(big.Int).Set(x.num)
}

// Prime returns (a copy of) the modulus of the field this element belongs to.
func (x FieldElement) Prime() *big.Int {
	return new(big.Int).Set(x.prime)
}

// IsZero checks whether this is the additive identity.
func (x FieldElement) IsZero() bool {
	return x.num.Sign() == 0
}

// SameField checks whether two elements belong to the same field.
func (x FieldElement) SameField(y FieldElement) bool {
	return x.prime.Cmp(y.prime) == 0
}

// Equal checks whether two elements have the same value and belong to the same
// field.
func (x FieldElement) Equal(y FieldElement) bool {
	return x.SameField(y) && x.num.Cmp(y.num) == 0
}

// Add computes x + y.
func (x FieldElement) Add(y FieldElement) (FieldElement, error) {
	if err := x.checkField(y); err != nil {
		return FieldElement{}, err
	}
	// Since both operands are in [0,p), their sum is in [0,2p).
	num := new(big.Int).Add(x.num, y.num)
	if num.Cmp(x.prime) >= 0 {
		num.Sub(num, x.prime)
	}
	//
	return FieldElement{num, x.prime}, nil
}

// Sub computes x - y.
func (x FieldElement) Sub(y FieldElement) (FieldElement, error) {
	if err := x.checkField(y); err != nil {
		return FieldElement{}, err
	}
	//
	num := new(big.Int).Sub(x.num, y.num)
	if num.Sign() < 0 {
		num.Add(num, x.prime)
	}
	//
	return FieldElement{num, x.prime}, nil
}

// Mul computes x * y.
func (x FieldElement) Mul(y FieldElement) (FieldElement, error) {
	if err := x.checkField(y); err != nil {
		return FieldElement{}, err
	}
	// Mod (unlike Rem) always gives a non-negative result for a positive
	// modulus.
	num := new(big.Int).Mul(x.num, y.num)
	num.Mod(num, x.prime)
	//
	return FieldElement{num, x.prime}, nil
}

// Div computes x / y, which is x * y⁻¹ where the inverse is obtained via
// Fermat's little theorem (i.e. y⁻¹ = y^(p-2)).  Dividing by zero fails with
// ErrDivisionByZero, though only after the fields have been checked.
func (x FieldElement) Div(y FieldElement) (FieldElement, error) {
	if err := x.checkField(y); err != nil {
		return FieldElement{}, err
	} else if y.IsZero() {
		return FieldElement{}, ErrDivisionByZero
	}
	//
	inv := y.PowBig(new(big.Int).Sub(x.prime, big.NewInt(2)))
	num := new(big.Int).Mul(x.num, inv.num)
	num.Mod(num, x.prime)
	//
	return FieldElement{num, x.prime}, nil
}

// Pow computes x^exponent.  See PowBig for details.
func (x FieldElement) Pow(exponent int64) FieldElement {
	return x.PowBig(big.NewInt(exponent))
}

// PowBig computes x^exponent for an arbitrary (possibly negative) exponent.
// Since x^(p-1) = 1 for any non-zero x (Fermat's little theorem), the exponent
// is first reduced modulo p-1 into the range [0,p-1).  A negative exponent thus
// gives the corresponding power of the multiplicative inverse.  Observe that,
// as a consequence, zero raised to any multiple of p-1 gives one.
func (x FieldElement) PowBig(exponent *big.Int) FieldElement {
	order := new(big.Int).Sub(x.prime, one)
	// The trivial field {0} has no multiplicative group to reduce by.
	if order.Sign() == 0 {
		return FieldElement{new(big.Int), x.prime}
	}
	// Rem truncates towards zero, so may leave a negative remainder.
	n := new(big.Int).Rem(exponent, order)
	if n.Sign() < 0 {
		n.Add(n, order)
	}
	//
	return FieldElement{new(big.Int).Exp(x.num, n, x.prime), x.prime}
}

// Neg computes -x.
func (x FieldElement) Neg() FieldElement {
	if x.IsZero() {
		return x
	}
	//
	return FieldElement{new(big.Int).Sub(x.prime, x.num), x.prime}
}

// Inverse computes x⁻¹, failing with ErrDivisionByZero if x is zero.
func (x FieldElement) Inverse() (FieldElement, error) {
	if x.IsZero() {
		return FieldElement{}, ErrDivisionByZero
	}
	//
	return x.PowBig(new(big.Int).Sub(x.prime, big.NewInt(2))), nil
}

func (x FieldElement) String() string {
	return fmt.Sprintf("FieldElement(num:%s, prime:%s)", x.num, x.prime)
}

func (x FieldElement) checkField(y FieldElement) error {
	if !x.SameField(y) {
		return &MisMatchedPrimesError{x.Prime(), y.Prime()}
	}
	//
	return nil
}
