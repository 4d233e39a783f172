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

package server

import (
	"strconv"

	"github.com/coreos/pkg/capnslog"
	"github.com/gorilla/mux"
	"github.com/jive/cidrcalc/cidr"
	"github.com/pkg/errors"
)

var plog = capnslog.NewPackageLogger("github.com/jive/cidrcalc", "server")

// CalcServer exposes the subnet calculator over HTTP. It holds no state
// beyond its router; every response is computed from the request arguments.
type CalcServer struct {
	r *mux.Router
}

// NewServer returns a CalcServer with its HTTP routes initialized.
func NewServer() *CalcServer {
	srv := &CalcServer{}
	initHTTPServer(srv)
	return srv
}

// RangeRequest asks for the CIDR decomposition of [Start, End].
type RangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RangeResponse carries the ordered blocks covering the requested range.
type RangeResponse struct {
	Subnets []cidr.Subnet `json:"subnets"`
	Size    int           `json:"size"`
}

// PrefixRequest asks for the block containing Address at PrefixSize.
type PrefixRequest struct {
	Address    string `json:"address"`
	PrefixSize int    `json:"prefixSize"`
}

// MaskRequest asks for the block containing Address under the dotted-decimal
// subnet mask Mask.
type MaskRequest struct {
	Address string `json:"address"`
	Mask    string `json:"mask"`
}

// SubnetResponse carries a single analyzed block.
type SubnetResponse struct {
	Subnet cidr.Subnet `json:"subnet"`
}

// Range decomposes the inclusive range [req.Start, req.End] into CIDR blocks.
func (srv *CalcServer) Range(req *RangeRequest) (*RangeResponse, error) {
	subnets, err := cidr.CalculateRange(addressInput(req.Start), addressInput(req.End))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to calculate range (%s - %s)", req.Start, req.End)
	}
	return &RangeResponse{Subnets: subnets, Size: len(subnets)}, nil
}

// FromPrefix analyzes the block containing req.Address at req.PrefixSize.
func (srv *CalcServer) FromPrefix(req *PrefixRequest) (*SubnetResponse, error) {
	subnet, err := cidr.CalculateFromPrefix(addressInput(req.Address), req.PrefixSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to calculate subnet (%s/%d)", req.Address, req.PrefixSize)
	}
	return &SubnetResponse{Subnet: subnet}, nil
}

// FromMask derives the CIDR prefix for req.Mask and analyzes the block
// containing req.Address at that size.
func (srv *CalcServer) FromMask(req *MaskRequest) (*SubnetResponse, error) {
	subnet, err := cidr.CalculateFromMask(addressInput(req.Address), addressInput(req.Mask))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to calculate subnet (%s mask %s)", req.Address, req.Mask)
	}
	return &SubnetResponse{Subnet: subnet}, nil
}

// addressInput accepts either address encoding: a bare integer in range is
// treated as the numeric form, anything else as dotted-decimal text.
func addressInput(arg string) cidr.Input {
	if n, err := strconv.ParseInt(arg, 10, 64); err == nil && cidr.IsAddressInt(n) {
		return cidr.Numeric(uint32(n))
	}
	return cidr.Text(arg)
}
