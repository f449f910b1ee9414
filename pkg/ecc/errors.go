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
	"fmt"

	"github.com/consensys/go-ecmath/pkg/field"
)

// ErrUnknownCurve is returned when looking up a curve by an unrecognised name.
var ErrUnknownCurve = errors.New("unknown curve")

// NotOnCurveError signals coordinates which do not satisfy the curve equation.
type NotOnCurveError struct {
	X field.FieldElement
	Y field.FieldElement
}

// Error implements the error interface.
func (e *NotOnCurveError) Error() string {
	return fmt.Sprintf("(%s, %s) is not on the curve", e.X.Num(), e.Y.Num())
}

// DifferentCurvesError signals an attempt to add points of different curves.
type DifferentCurvesError struct {
	Left  Point
	Right Point
}

// Error implements the error interface.
func (e *DifferentCurvesError) Error() string {
	return fmt.Sprintf("points %s and %s are on different curves", e.Left, e.Right)
}
