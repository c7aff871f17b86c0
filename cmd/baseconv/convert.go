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
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/capitalone/baseconv"
)

func newConvertCommand(a *app) *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:     "convert VALUE",
		Short:   "convert VALUE from one base to another",
		Example: "baseconv convert 1234 --from 10 --to 16",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := baseconv.Decode(args[0], from)
			if err != nil {
				return err
			}
			dst, err := baseconv.Convert(src, to)
			if err != nil {
				return err
			}
			s, err := baseconv.Encode(dst)
			if err != nil {
				return err
			}
			a.logger.Debug("converted", zap.Stringer("from", src), zap.Stringer("to", dst))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
	cmd.Flags().IntVarP(&from, "from", "f", 10, "base of VALUE")
	cmd.Flags().IntVarP(&to, "to", "t", 16, "base to convert to")
	return cmd
}
