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

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidRange is returned by CalculateRange when either endpoint fails
// to parse or the end address precedes the start address.
var ErrInvalidRange = errors.New("cidr: invalid range")

// ErrInvalidPrefix is returned by CalculateFromPrefix when the prefix size
// falls outside [0,32].
var ErrInvalidPrefix = errors.New("cidr: invalid prefix size")

// Subnet describes a single CIDR block: its bounds and masks, each in both
// integer and dotted-decimal form.
type Subnet struct {
	Low            uint32 `json:"low"`
	LowAddr        string `json:"lowAddr"`
	High           uint32 `json:"high"`
	HighAddr       string `json:"highAddr"`
	PrefixSize     int    `json:"prefixSize"`
	PrefixMask     uint32 `json:"prefixMask"`
	PrefixMaskAddr string `json:"prefixMaskAddr"`
	HostMaskSize   int    `json:"hostMaskSize"`
	HostMask       uint32 `json:"hostMask"`
	HostMaskAddr   string `json:"hostMaskAddr"`
}

// String renders the block in CIDR notation.
func (s Subnet) String() string {
	return fmt.Sprintf("%s/%d", s.LowAddr, s.PrefixSize)
}

// AnalyzeBlock computes the bounds and masks of the CIDR block containing
// addr at the given prefix size. Host bits already set in addr are
// truncated. The prefix size must be in [0,32].
func AnalyzeBlock(addr uint32, prefixSize int) Subnet {
	prefix := PrefixMask(prefixSize)
	host := HostMask(32 - prefixSize)
	low := addr & prefix
	high := low + host
	return Subnet{
		Low:            low,
		LowAddr:        formatAddr(low),
		High:           high,
		HighAddr:       formatAddr(high),
		PrefixSize:     prefixSize,
		PrefixMask:     prefix,
		PrefixMaskAddr: formatAddr(prefix),
		HostMaskSize:   32 - prefixSize,
		HostMask:       host,
		HostMaskAddr:   formatAddr(host),
	}
}

// largestBlockFrom returns the widest block whose network address is exactly
// addr and whose broadcast address does not pass end. Prefix sizes are tried
// from 32 downward; the first size that misaligns or overshoots terminates
// the search, so no backtracking is needed.
func largestBlockFrom(addr, end uint32) (Subnet, bool) {
	var best Subnet
	found := false
	for size := 32; size >= 0; size-- {
		block := AnalyzeBlock(addr, size)
		if block.Low != addr || block.High > end {
			break
		}
		best = block
		found = true
	}
	return best, found
}

// CalculateRange decomposes the inclusive range [start, end] into the
// minimal ordered set of CIDR blocks covering it exactly, without gaps or
// overlaps. Blocks are returned in ascending address order.
func CalculateRange(start, end Input) ([]Subnet, error) {
	low, err := ParseAddress(start)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidRange, "start address")
	}
	high, err := ParseAddress(end)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidRange, "end address")
	}
	if high < low {
		return nil, errors.Wrap(ErrInvalidRange, "end address precedes start address")
	}

	subnets := []Subnet{}
	cur := low
	for {
		block, found := largestBlockFrom(cur, high)
		if !found {
			return nil, errors.Wrap(ErrInvalidRange, "no aligned block")
		}
		subnets = append(subnets, block)
		if block.High >= high {
			break
		}
		cur = block.High + 1
	}
	return subnets, nil
}

// CalculateFromPrefix returns the block containing addr at the given prefix
// size.
func CalculateFromPrefix(addr Input, prefixSize int) (Subnet, error) {
	a, err := ParseAddress(addr)
	if err != nil {
		return Subnet{}, err
	}
	if prefixSize < 0 || prefixSize > 32 {
		return Subnet{}, errors.Wrapf(ErrInvalidPrefix, "(%d)", prefixSize)
	}
	return AnalyzeBlock(a, prefixSize), nil
}
