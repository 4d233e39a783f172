package cmd

import (
	"testing"

	"github.com/jive/cidrcalc/cidr"
	"github.com/stretchr/testify/assert"
)

func TestAddressArg(t *testing.T) {
	assert := assert.New(t)
	cases := []struct {
		arg    string
		result uint32
	}{
		{arg: "10.10.10.10", result: 168430090},
		{arg: "168430090", result: 168430090},
		{arg: "0", result: 0},
		{arg: "0.0.0.0", result: 0},
		{arg: "4294967295", result: 4294967295},
		{arg: "255.255.255.255", result: 4294967295},
	}

	for idx := range cases {
		n, err := cidr.ParseAddress(addressArg(cases[idx].arg))
		assert.NoError(err)
		assert.Equal(cases[idx].result, n)
	}
}

func TestAddressArgInvalid(t *testing.T) {
	assert := assert.New(t)

	// neither a valid integer nor valid dotted-decimal text
	for _, arg := range []string{"4294967296", "-1", "256.1.1.1", "foo"} {
		_, err := cidr.ParseAddress(addressArg(arg))
		assert.Error(err)
	}
}
