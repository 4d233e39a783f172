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

// maskCmd represents the mask command
var maskCmd = &cobra.Command{
	Use:   "mask <address> <netmask>",
	Short: "derive the CIDR block for an address and dotted-decimal mask",
	Long: `The mask command derives the longest CIDR prefix consistent with the
given subnet mask and shows the block containing the address at that size.
A non-contiguous mask is truncated at its first zero bit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("mask requires an address and a subnet mask")
		}

		subnet, err := cidr.CalculateFromMask(addressArg(args[0]), addressArg(args[1]))
		if err != nil {
			return errors.Wrap(err, "failed to calculate subnet")
		}

		util.PrintSubnet(subnet, human)
		return nil
	},
}

func init() {
	CidrcalcCmd.AddCommand(maskCmd)
}
