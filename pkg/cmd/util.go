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
package cmd

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// INFINITY is the textual representation of the point at infinity.
const INFINITY = "inf"

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse an integer in decimal, or in hexadecimal / octal / binary when given
// with the usual prefix (e.g. 0x).
func parseInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.Errorf("invalid integer \"%s\"", s)
	}
	//
	return n, nil
}

// Parse a pair of coordinates "x,y".  The point at infinity is given as "inf",
// in which case both coordinates are nil.
func parseCoordinates(s string) (*big.Int, *big.Int, error) {
	if s == INFINITY {
		return nil, nil, nil
	}
	//
	split := strings.Split(s, ",")
	if len(split) != 2 {
		return nil, nil, errors.Errorf("invalid point \"%s\" (expected x,y or %s)", s, INFINITY)
	}
	//
	x, err := parseInt(strings.TrimSpace(split[0]))
	if err != nil {
		return nil, nil, err
	}
	//
	y, err := parseInt(strings.TrimSpace(split[1]))
	//
	return x, y, err
}
