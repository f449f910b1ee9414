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

	"github.com/consensys/go-ecmath/pkg/field"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newFieldCmd(config *viper.Viper) *cobra.Command {
	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "arithmetic over the prime field of a given order.",
		Long: `Arithmetic over the field of integers modulo a prime.  Negative
	operands must follow a "--" separator, e.g. "field pow --prime 31 -- 17 -3".`,
	}
	//
	fieldCmd.PersistentFlags().String("prime", "", "order of the field")
	fieldCmd.AddCommand(
		&cobra.Command{
			Use:   "new [flags] num",
			Short: "construct an element of the field.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, err := fieldElement(config, args[0])
				if err != nil {
					return err
				}
				//
				fmt.Fprintln(cmd.OutOrStdout(), x)
				//
				return nil
			},
		},
		binaryFieldCmd(config, "add", "add two elements.", field.FieldElement.Add),
		binaryFieldCmd(config, "sub", "subtract one element from another.", field.FieldElement.Sub),
		binaryFieldCmd(config, "mul", "multiply two elements.", field.FieldElement.Mul),
		binaryFieldCmd(config, "div", "divide one element by another.", field.FieldElement.Div),
		unaryFieldCmd(config, "neg", "negate an element.", func(x field.FieldElement) (field.FieldElement, error) {
			return x.Neg(), nil
		}),
		&cobra.Command{
			Use:   "inv [flags] num...",
			Short: "invert one or more non-zero elements.",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				xs := make([]field.FieldElement, len(args))
				//
				for i, arg := range args {
					x, err := fieldElement(config, arg)
					if err != nil {
						return err
					}
					//
					xs[i] = x
				}
				//
				log.Debugf("inverting %d element(s)", len(xs))
				//
				inverses, err := field.BatchInverse(xs)
				if err != nil {
					return errors.Wrap(err, "inv")
				}
				//
				for _, x := range inverses {
					fmt.Fprintln(cmd.OutOrStdout(), x)
				}
				//
				return nil
			},
		},
		&cobra.Command{
			Use:   "pow [flags] num exponent",
			Short: "raise an element to an (arbitrary) integer power.",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, err := fieldElement(config, args[0])
				if err != nil {
					return err
				}
				//
				exponent, err := parseInt(args[1])
				if err != nil {
					return err
				}
				//
				log.Debugf("computing %s^%s", x, exponent)
				fmt.Fprintln(cmd.OutOrStdout(), x.PowBig(exponent))
				//
				return nil
			},
		},
	)
	//
	return fieldCmd
}

func unaryFieldCmd(config *viper.Viper, name string, short string,
	op func(field.FieldElement) (field.FieldElement, error)) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s [flags] num", name),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := fieldElement(config, args[0])
			if err != nil {
				return err
			}
			//
			log.Debugf("computing %s %s", name, x)
			//
			res, err := op(x)
			if err != nil {
				return errors.Wrapf(err, "%s %s", name, x)
			}
			//
			fmt.Fprintln(cmd.OutOrStdout(), res)
			//
			return nil
		},
	}
}

func binaryFieldCmd(config *viper.Viper, name string, short string,
	op func(field.FieldElement, field.FieldElement) (field.FieldElement, error)) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s [flags] lhs rhs", name),
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := fieldElement(config, args[0])
			if err != nil {
				return err
			}
			//
			y, err := fieldElement(config, args[1])
			if err != nil {
				return err
			}
			//
			log.Debugf("computing %s %s %s", name, x, y)
			//
			res, err := op(x, y)
			if err != nil {
				return errors.Wrapf(err, "%s %s %s", name, x, y)
			}
			//
			fmt.Fprintln(cmd.OutOrStdout(), res)
			//
			return nil
		},
	}
}

// Construct a field element from its textual representation, using the
// configured field order.
func fieldElement(config *viper.Viper, s string) (field.FieldElement, error) {
	var (
		num   *big.Int
		prime *big.Int
		err   error
	)
	//
	if prime, err = configInt(config, "prime"); err != nil {
		return field.FieldElement{}, err
	} else if num, err = parseInt(s); err != nil {
		return field.FieldElement{}, err
	}
	//
	x, err := field.New(num, prime)
	//
	return x, errors.Wrapf(err, "element %s", s)
}
