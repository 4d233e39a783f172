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
	"strconv"

	"github.com/jive/cidrcalc/cidr"
	"github.com/jive/cidrcalc/cmd/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// prefixCmd represents the prefix command
var prefixCmd = &cobra.Command{
	Use:   "prefix <address> <size>",
	Short: "show the CIDR block containing an address at a prefix size",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("prefix requires an address and a prefix size")
		}

		size, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrapf(err, "bad prefix size (%s)", args[1])
		}

		subnet, err := cidr.CalculateFromPrefix(addressArg(args[0]), size)
		if err != nil {
			return errors.Wrap(err, "failed to calculate subnet")
		}

		util.PrintSubnet(subnet, human)
		return nil
	},
}

func init() {
	CidrcalcCmd.AddCommand(prefixCmd)
}
