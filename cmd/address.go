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
	"strconv"

	"github.com/jive/cidrcalc/cidr"
)

// addressArg converts a command line argument to an address input. A bare
// integer within the IPv4 space is taken as the numeric encoding, everything
// else as dotted-decimal text.
func addressArg(arg string) cidr.Input {
	if n, err := strconv.ParseInt(arg, 10, 64); err == nil && cidr.IsAddressInt(n) {
		return cidr.Numeric(uint32(n))
	}
	return cidr.Text(arg)
}
