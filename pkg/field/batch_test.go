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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BatchInverse_00(t *testing.T) {
	res, err := BatchInverse(nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func Test_BatchInverse_01(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 30} {
		var xs []FieldElement
		//
		for i := 1; i <= n; i++ {
			xs = append(xs, element(t, int64(i), 31))
		}
		//
		res, err := BatchInverse(xs)
		require.NoError(t, err)
		require.Len(t, res, n)
		//
		for i, x := range xs {
			expected, err := x.Inverse()
			require.NoError(t, err)
			checkElement(t, expected, res[i], nil)
			// inputs unchanged
			assert.Equal(t, int64(i+1), x.Num().Int64())
		}
	}
}

func Test_BatchInverse_02(t *testing.T) {
	_, err := BatchInverse([]FieldElement{element(t, 3, 31), element(t, 0, 31), element(t, 5, 31)})
	require.True(t, errors.Is(err, ErrDivisionByZero))
	assert.Equal(t, "element 1: division by zero", err.Error())
	//
	_, err = BatchInverse([]FieldElement{element(t, 3, 31), element(t, 0, 37)})
	checkMisMatchedPrimes(t, err, 31, 37)
}
