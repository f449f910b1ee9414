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
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// NewRootCmd constructs the base command (i.e. when called without any
// subcommands) along with all of its children.  Each command tree has its own
// configuration, hence separate trees can be executed independently.
func NewRootCmd() *cobra.Command {
	config := viper.New()
	//
	rootCmd := &cobra.Command{
		Use:   "ecmath",
		Short: "Arithmetic over prime fields and elliptic curves.",
		Long: `Arithmetic over prime fields and elliptic curves.  Field elements
	and curve points are given on the command line, whilst the field order
	and curve coefficients can be given as flags, environment variables
	(e.g. ECMATH_PRIME) or in a configuration file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(config, cmd); err != nil {
				return err
			}
			//
			configureLogging(cmd, config)
			//
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if GetFlag(cmd, "version") {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			//
			return cmd.Help()
		},
	}
	//
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("config", "", "read configuration from file (json, yaml or toml)")
	rootCmd.AddCommand(newFieldCmd(config), newPointCmd(config), newEccCmd(config))
	//
	return rootCmd
}

// Execute constructs the root command and runs it against the program
// arguments.  This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func printVersion(out io.Writer) {
	fmt.Fprint(out, "ecmath ")
	//
	if Version != "" {
		// Built via "make"
		fmt.Fprintf(out, "%s", Version)
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		fmt.Fprintf(out, "%s", info.Main.Version)
	} else {
		// Unknown, perhaps "go run"
		fmt.Fprintf(out, "(unknown version)")
	}
	//
	fmt.Fprintln(out)
}
