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
	"errors"
	"fmt"
	"math/big"
)

// ErrSingleInfinity is returned when exactly one coordinate of a point is
// absent.
var ErrSingleInfinity = errors.New("Both X and Y must both be nil or both be non-nil")

// InvalidPointError signals coordinates which do not satisfy the curve
// equation.  Note the coordinates are held in (y, x) order.
type InvalidPointError struct {
	Y *big.Int
	X *big.Int
}

// Error implements the error interface.
func (e *InvalidPointError) Error() string {
	return fmt.Sprintf("Invalid Point: (%s, %s) is not on the curve", e.Y, e.X)
}

// DifferentCurvesError signals an attempt to add points of different curves.
type DifferentCurvesError struct {
	Left  Point
	Right Point
}

// Error implements the error interface.
func (e *DifferentCurvesError) Error() string {
	return fmt.Sprintf("Points %s and %s are on different curves", e.Left, e.Right)
}

// UnknownAdditionError signals a pair of points for which none of the cases of
// the group law applied.  This cannot arise for points constructed via New.
type UnknownAdditionError struct {
	Left  Point
	Right Point
}

// Error implements the error interface.
func (e *UnknownAdditionError) Error() string {
	return fmt.Sprintf("Unknown Addition for %s and %s", e.Left, e.Right)
}
