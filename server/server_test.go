package server

import (
	"testing"

	"github.com/jive/cidrcalc/cidr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestServerRange(t *testing.T) {
	assert := assert.New(t)
	srv := NewServer()

	resp, err := srv.Range(&RangeRequest{Start: "10.0.1.255", End: "10.0.3.255"})
	assert.NoError(err)
	assert.Equal(2, resp.Size)

	_, err = srv.Range(&RangeRequest{Start: "10.0.3.255", End: "10.0.1.255"})
	assert.Error(err)
	assert.Equal(cidr.ErrInvalidRange, errors.Cause(err))
}

func TestServerFromPrefix(t *testing.T) {
	assert := assert.New(t)
	srv := NewServer()

	resp, err := srv.FromPrefix(&PrefixRequest{Address: "1.2.3.4", PrefixSize: 32})
	assert.NoError(err)
	assert.Equal("1.2.3.4", resp.Subnet.LowAddr)
	assert.Equal("1.2.3.4", resp.Subnet.HighAddr)

	_, err = srv.FromPrefix(&PrefixRequest{Address: "1.2.3.4", PrefixSize: 40})
	assert.Error(err)
	assert.Equal(cidr.ErrInvalidPrefix, errors.Cause(err))
}

func TestServerFromMask(t *testing.T) {
	assert := assert.New(t)
	srv := NewServer()

	resp, err := srv.FromMask(&MaskRequest{Address: "123.123.123.1", Mask: "255.255.255.0"})
	assert.NoError(err)
	assert.Equal(24, resp.Subnet.PrefixSize)

	_, err = srv.FromMask(&MaskRequest{Address: "bogus", Mask: "255.255.255.0"})
	assert.Error(err)
	assert.Equal(cidr.ErrInvalidAddress, errors.Cause(err))
}

func TestAddressInput(t *testing.T) {
	assert := assert.New(t)
	cases := []struct {
		arg    string
		result uint32
	}{
		{arg: "10.0.1.255", result: 167772671},
		{arg: "167772671", result: 167772671},
		{arg: "0", result: 0},
		{arg: "4294967295", result: 4294967295},
	}

	for idx := range cases {
		n, err := cidr.ParseAddress(addressInput(cases[idx].arg))
		assert.NoError(err)
		assert.Equal(cases[idx].result, n)
	}

	// out-of-range integers fall through to text parsing and fail there
	_, err := cidr.ParseAddress(addressInput("4294967296"))
	assert.Error(err)
}
