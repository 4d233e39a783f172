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
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidAddress is returned when a value is neither a well-formed
// dotted-decimal string nor an integer in [0, 4294967295].
var ErrInvalidAddress = errors.New("cidr: invalid address")

// Input holds an IPv4 address in one of its two accepted encodings:
// dotted-decimal text or a 32-bit unsigned integer. The zero value is the
// numeric address 0.0.0.0.
type Input struct {
	text    string
	numeric uint32
	isText  bool
}

// Text returns an Input holding the dotted-decimal encoding s.
// The string is not validated until parsed.
func Text(s string) Input {
	return Input{text: s, isText: true}
}

// Numeric returns an Input holding the integer encoding n.
func Numeric(n uint32) Input {
	return Input{numeric: n}
}

// IsAddressString reports whether s is exactly four dot-separated decimal
// groups, each in [0,255]. Leading zeros are permitted.
func IsAddressString(s string) bool {
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for idx := range groups {
		if _, err := strconv.ParseUint(groups[idx], 10, 8); err != nil {
			return false
		}
	}
	return true
}

// IsAddressInt reports whether n falls within the IPv4 address space.
func IsAddressInt(n int64) bool {
	return n >= 0 && n <= math.MaxUint32
}

// ParseAddress converts v to its canonical integer form. Numeric inputs are
// returned unchanged; text inputs are folded most-significant octet first.
func ParseAddress(v Input) (uint32, error) {
	if !v.isText {
		return v.numeric, nil
	}
	if !IsAddressString(v.text) {
		return 0, errors.Wrapf(ErrInvalidAddress, "(%s)", v.text)
	}
	var addr uint32
	for _, group := range strings.Split(v.text, ".") {
		octet, _ := strconv.ParseUint(group, 10, 8)
		addr = addr<<8 | uint32(octet)
	}
	return addr, nil
}

// FormatAddress converts v to its dotted-decimal form. Valid text inputs are
// returned unchanged; numeric inputs are formatted octet by octet.
func FormatAddress(v Input) (string, error) {
	if v.isText {
		if !IsAddressString(v.text) {
			return "", errors.Wrapf(ErrInvalidAddress, "(%s)", v.text)
		}
		return v.text, nil
	}
	return formatAddr(v.numeric), nil
}

func formatAddr(addr uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d",
		byte(addr>>24), byte(addr>>16), byte(addr>>8), byte(addr))
}
