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

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/capitalone/baseconv/roundtrip"
)

func newRoundTripCommand(a *app) *cobra.Command {
	var flags RoundTripConfig
	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "check that values survive conversion to other bases and back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.RoundTrip
			fs := cmd.Flags()
			if fs.Changed("from") {
				cfg.From = flags.From
			}
			if fs.Changed("to") {
				cfg.To = flags.To
			}
			if fs.Changed("source-base") {
				cfg.SourceBase = flags.SourceBase
			}
			if fs.Changed("bases") {
				cfg.Bases = flags.Bases
			}
			if fs.Changed("workers") {
				cfg.Workers = flags.Workers
			}
			if fs.Changed("max-failures") {
				cfg.MaxFailures = flags.MaxFailures
			}

			v, err := roundtrip.New(cfg.verifierConfig(), roundtrip.WithLogger(a.logger))
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			report, err := v.Run(ctx)
			if err != nil && !errors.Is(err, roundtrip.ErrMismatch) {
				return err
			}

			return writeReport(cmd.OutOrStdout(), report)
		},
	}

	fs := cmd.Flags()
	fs.Uint64Var(&flags.From, "from", roundtrip.DefaultFrom, "first value to check")
	fs.Uint64Var(&flags.To, "to", roundtrip.DefaultTo, "last value to check")
	fs.IntVar(&flags.SourceBase, "source-base", roundtrip.DefaultSourceBase, "base values are written in before conversion")
	fs.IntSliceVar(&flags.Bases, "bases", roundtrip.DefaultBases, "bases to convert through")
	fs.IntVar(&flags.Workers, "workers", 0, "concurrent workers (0 for GOMAXPROCS)")
	fs.IntVar(&flags.MaxFailures, "max-failures", roundtrip.DefaultMaxFailures, "failures to report in detail")
	return cmd
}

func writeReport(w io.Writer, report roundtrip.Report) error {
	for _, f := range report.Failures {
		if _, err := fmt.Fprintf(w, "%d via base %d: want %s, got %s\n", f.Value, f.Base, f.Original, f.Got); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Checked: %d\n", report.Checked); err != nil {
		return err
	}
	if !report.OK() {
		if _, err := fmt.Fprintln(w, "Test: FAIL"); err != nil {
			return err
		}
		return errors.Errorf("%d of %d values failed the round trip", report.FailureCount, report.Checked)
	}
	_, err := fmt.Fprintln(w, "Test: OK")
	return err
}
