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

package util

import (
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jive/cidrcalc/cidr"
	"github.com/olekukonko/tablewriter"
)

// PrintSubnets prints a slice of Subnets in a tabular format
func PrintSubnets(subnets []cidr.Subnet, human bool) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"cidr", "low", "high", "prefix mask", "host mask", "addresses"})
	for _, s := range subnets {
		table.Append([]string{
			s.String(),
			s.LowAddr,
			s.HighAddr,
			s.PrefixMaskAddr,
			s.HostMaskAddr,
			formatAddressCount(s, human),
		})
	}
	table.Render()
}

// PrintSubnet prints a single Subnet in a tabular format
func PrintSubnet(subnet cidr.Subnet, human bool) {
	PrintSubnets([]cidr.Subnet{subnet}, human)
}

func formatAddressCount(s cidr.Subnet, human bool) string {
	count := uint64(s.High-s.Low) + 1
	if human {
		return humanize.Comma(int64(count))
	}
	return strconv.FormatUint(count, 10)
}
