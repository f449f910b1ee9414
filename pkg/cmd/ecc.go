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

	"github.com/consensys/go-ecmath/pkg/ecc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newEccCmd(config *viper.Viper) *cobra.Command {
	eccCmd := &cobra.Command{
		Use:   "ecc",
		Short: "arithmetic over points of a named curve over a prime field.",
		Long: `Arithmetic over points of a named elliptic curve over a prime
	field.  Points are given as "x,y", or "inf" for the point at infinity.`,
	}
	//
	eccCmd.PersistentFlags().String("curve", "secp256k1", "name of the curve")
	eccCmd.AddCommand(
		&cobra.Command{
			Use:   "curves",
			Short: "list the known curves.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, name := range ecc.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				//
				return nil
			},
		},
		&cobra.Command{
			Use:   "add [flags] lhs rhs",
			Short: "add two points of the curve.",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := namedCurve(config)
				if err != nil {
					return err
				}
				//
				p, err := curvePoint(c, args[0])
				if err != nil {
					return err
				}
				//
				q, err := curvePoint(c, args[1])
				if err != nil {
					return err
				}
				//
				log.Debugf("computing %s + %s on %s", p, q, c.Name)
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
		&cobra.Command{
			Use:   "mul [flags] scalar [point]",
			Short: "multiply a point (by default the generator) by a scalar.",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := namedCurve(config)
				if err != nil {
					return err
				}
				//
				k, err := parseInt(args[0])
				if err != nil {
					return err
				}
				//
				p, err := c.Generator()
				if len(args) == 2 {
					p, err = curvePoint(c, args[1])
				}
				//
				if err != nil {
					return err
				}
				//
				log.Debugf("computing %s·%s on %s", k, p, c.Name)
				//
				kp, err := p.ScalarMul(k)
				if err != nil {
					return errors.Wrapf(err, "mul %s", k)
				}
				//
				fmt.Fprintln(cmd.OutOrStdout(), kp)
				//
				return nil
			},
		},
	)
	//
	return eccCmd
}

func namedCurve(config *viper.Viper) (*ecc.NamedCurve, error) {
	c, err := ecc.Lookup(config.GetString("curve"))
	//
	return c, errors.Wrap(err, "--curve")
}

// Construct a point on a named curve from its textual representation.
func curvePoint(c *ecc.NamedCurve, s string) (ecc.Point, error) {
	x, y, err := parseCoordinates(s)
	if err != nil {
		return ecc.Point{}, err
	} else if x == nil {
		return c.Infinity()
	}
	//
	p, err := c.Point(x, y)
	//
	return p, errors.Wrapf(err, "point %s on %s", s, c.Name)
}
