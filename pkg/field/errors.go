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
	"errors"
	"fmt"
	"math/big"
)

// ErrDivisionByZero is returned when dividing by (or inverting) the additive
// identity of a field.
var ErrDivisionByZero = errors.New("division by zero")

// NumberTooLargeError signals an attempt to construct an element whose value is
// not smaller than the prime modulus.
type NumberTooLargeError struct {
	Num   *big.Int
	Prime *big.Int
}

// Error implements the error interface.
func (e *NumberTooLargeError) Error() string {
	return fmt.Sprintf("Number, %s, is invalid as it is larger then the prime, %s.", e.Num, e.Prime)
}

// NumberLessThanZeroError signals an attempt to construct an element from a
// negative value.
type NumberLessThanZeroError struct {
	Num *big.Int
}

// Error implements the error interface.
func (e *NumberLessThanZeroError) Error() string {
	return fmt.Sprintf("Number, %s, is less then zero, which is invalid", e.Num)
}

// MisMatchedPrimesError signals a binary operation between elements of two
// different fields.  The primes are reported in operand order.
type MisMatchedPrimesError struct {
	Left  *big.Int
	Right *big.Int
}

// Error implements the error interface.
func (e *MisMatchedPrimesError) Error() string {
	return fmt.Sprintf("The prime value must be equal to add. Provide primes %s and %s.", e.Left, e.Right)
}
