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

// PrefixMask returns the mask with the size most-significant bits set.
// PrefixMask(0) == 0 and PrefixMask(32) == 0xFFFFFFFF.
func PrefixMask(size int) uint32 {
	return ^uint32(0) << uint(32-size)
}

// HostMask returns the mask with the size least-significant bits set.
// HostMask(0) == 0 and HostMask(32) == 0xFFFFFFFF.
func HostMask(size int) uint32 {
	return ^(^uint32(0) << uint(size))
}
