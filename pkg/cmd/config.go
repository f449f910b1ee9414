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
	"math"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// ENV_PREFIX is prepended to configuration keys when looking them up in the
// environment, e.g. the field order is read from ECMATH_PRIME.
const ENV_PREFIX = "ECMATH"

// Bind the flags of the command being executed into the configuration, along
// with the environment and (if given) the configuration file.  Explicitly set
// flags take precedence over the environment, which takes precedence over the
// configuration file.
func loadConfig(config *viper.Viper, cmd *cobra.Command) error {
	config.SetEnvPrefix(ENV_PREFIX)
	config.AutomaticEnv()
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	//
	if err := config.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}
	//
	if file := config.GetString("config"); file != "" {
		config.SetConfigFile(file)
		//
		if err := config.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading configuration file %s", file)
		}
	}
	//
	return nil
}

// Configure logging for the command being executed.  Colours are only used
// when writing to a terminal.
func configureLogging(cmd *cobra.Command, config *viper.Viper) {
	var (
		out     = cmd.ErrOrStderr()
		colours = false
	)
	//
	if f, ok := out.(*os.File); ok {
		colours = term.IsTerminal(int(f.Fd()))
	}
	//
	log.SetOutput(out)
	log.SetFormatter(&log.TextFormatter{
		DisableColors:    !colours,
		DisableTimestamp: true,
	})
	// Configure log level
	if config.GetBool("verbose") {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	//
	if file := config.ConfigFileUsed(); file != "" {
		log.Debugf("using configuration file %s", file)
	}
}

// Read a required integer parameter from the configuration.  Flags and the
// environment always give strings.  Configuration files may also give numbers,
// though large integers are decoded as floating point and must be quoted.
func configInt(config *viper.Viper, key string) (*big.Int, error) {
	var val string
	//
	switch v := config.Get(key).(type) {
	case nil:
	case string:
		val = v
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		val = fmt.Sprint(v)
	case float32:
		return floatInt(key, float64(v))
	case float64:
		return floatInt(key, v)
	default:
		return nil, errors.Errorf("--%s: unexpected value %v", key, v)
	}
	//
	if val == "" {
		return nil, errors.Errorf("missing --%s (or %s_%s)", key, ENV_PREFIX, strings.ToUpper(key))
	}
	//
	n, err := parseInt(val)
	//
	return n, errors.Wrapf(err, "--%s", key)
}

// Accept a floating point value only when it is an integer below 2⁵³, since
// any larger value may have been rounded when decoded.
func floatInt(key string, v float64) (*big.Int, error) {
	if v != math.Trunc(v) || math.Abs(v) >= 1<<53 {
		return nil, errors.Errorf("--%s: %s is not an exact integer (quote large values in configuration files)",
			key, strconv.FormatFloat(v, 'g', -1, 64))
	}
	//
	return big.NewInt(int64(v)), nil
}
