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

	"github.com/consensys/go-ecmath/pkg/curve"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPointCmd(config *viper.Viper) *cobra.Command {
	pointCmd := &cobra.Command{
		Use:   "point",
		Short: "arithmetic over integer points of a curve y² = x³ + a·x + b.",
		Long: `Arithmetic over points with integer coordinates on the curve
	y² = x³ + a·x + b.  Points are given as "x,y", or "inf" for the point
	at infinity.  Points with negative coordinates must follow a "--"
	separator, e.g. "point add --a 5 --b 7 -- -1,-1 3,7".`,
	}
	//
	pointCmd.PersistentFlags().String("a", "", "coefficient a of the curve")
	pointCmd.PersistentFlags().String("b", "", "coefficient b of the curve")
	pointCmd.AddCommand(
		&cobra.Command{
			Use:   "new [flags] point",
			Short: "check a point is on the curve.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := integerPoint(config, args[0])
				if err != nil {
					return err
				}
				//
				fmt.Fprintln(cmd.OutOrStdout(), p)
				//
				return nil
			},
		},
		&cobra.Command{
			Use:   "add [flags] lhs rhs",
			Short: "add two points of the curve.",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := integerPoint(config, args[0])
				if err != nil {
					return err
				}
				//
				q, err := integerPoint(config, args[1])
				if err != nil {
					return err
				}
				//
				log.Debugf("computing %s + %s", p, q)
				//
				sum, err := p.Add(q)
				if err != nil {
					return errors.Wrapf(err, "add %s %s", args[0], args[1])
				}
				//
				fmt.Fprintln(cmd.OutOrStdout(), sum)
				//
				return nil
			},
		},
	)
	//
	return pointCmd
}

// Construct a point from its textual representation, using the configured
// curve coefficients.
func integerPoint(config *viper.Viper, s string) (curve.Point, error) {
	var (
		a, b, x, y *big.Int
		err        error
	)
	//
	if a, err = configInt(config, "a"); err != nil {
		return curve.Point{}, err
	} else if b, err = configInt(config, "b"); err != nil {
		return curve.Point{}, err
	} else if x, y, err = parseCoordinates(s); err != nil {
		return curve.Point{}, err
	}
	//
	p, err := curve.New(x, y, a, b)
	//
	return p, errors.Wrapf(err, "point %s", s)
}
