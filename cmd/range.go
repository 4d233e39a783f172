/*
Copyright 2016 Jive Communications All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"fmt"

	"github.com/jive/cidrcalc/cidr"
	"github.com/jive/cidrcalc/cmd/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// rangeCmd represents the range command
var rangeCmd = &cobra.Command{
	Use:   "range <start> <end>",
	Short: "decompose an address range into CIDR blocks",
	Long: `The range command decomposes the inclusive address range [start, end]
into the minimal ordered set of CIDR blocks that covers it exactly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("range requires a start and an end address")
		}

		subnets, err := cidr.CalculateRange(addressArg(args[0]), addressArg(args[1]))
		if err != nil {
			return errors.Wrap(err, "failed to calculate range")
		}

		util.PrintSubnets(subnets, human)
		return nil
	},
}

func init() {
	CidrcalcCmd.AddCommand(rangeCmd)
}
