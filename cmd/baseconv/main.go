/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

// Command baseconv converts numbers between bases 2 to 64 and checks
// round-trip conversions.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/capitalone/baseconv/internal/log"
)

const envConfigPath = "BASECONV_CONFIG"

// Version is reported by --version.
var Version = "0.1.0"

type app struct {
	configPath string
	logLevel   string

	cfg    Config
	logger *zap.Logger
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	logger, err := log.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "baseconv",
		Short:             "convert arbitrary-precision numbers between bases 2 to 64",
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}
	root.PersistentFlags().
		StringVarP(&a.configPath, "config", "c", os.Getenv(envConfigPath), "load configuration from TOML `FILE`")
	root.PersistentFlags().
		StringVar(&a.logLevel, "log-level", log.DefaultLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		newDemoCommand(a),
		newConvertCommand(a),
		newRoundTripCommand(a),
	)
	return root
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
