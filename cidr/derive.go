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

package cidr

// CalculateFromMask derives the longest CIDR prefix consistent with the
// given dotted-decimal subnet mask and returns the block containing addr at
// that size. A non-contiguous mask is not an error; derivation stops at the
// first zero bit counted from the most-significant side, so 255.0.255.0
// yields a /8.
func CalculateFromMask(addr, mask Input) (Subnet, error) {
	a, err := ParseAddress(addr)
	if err != nil {
		return Subnet{}, err
	}
	m, err := ParseAddress(mask)
	if err != nil {
		return Subnet{}, err
	}

	size := 0
	for size < 32 {
		candidate := PrefixMask(size + 1)
		if m&candidate != candidate {
			break
		}
		size++
	}
	return AnalyzeBlock(a, size), nil
}
