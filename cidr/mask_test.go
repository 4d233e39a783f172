package cidr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixMask(t *testing.T) {
	assert := assert.New(t)
	cases := []struct {
		size   int
		result uint32
	}{
		{size: 0, result: 0x00000000},
		{size: 1, result: 0x80000000},
		{size: 8, result: 0xFF000000},
		{size: 16, result: 0xFFFF0000},
		{size: 24, result: 0xFFFFFF00},
		{size: 31, result: 0xFFFFFFFE},
		{size: 32, result: 0xFFFFFFFF},
	}

	for idx := range cases {
		assert.Equal(cases[idx].result, PrefixMask(cases[idx].size))
	}
}

func TestHostMask(t *testing.T) {
	assert := assert.New(t)
	cases := []struct {
		size   int
		result uint32
	}{
		{size: 0, result: 0x00000000},
		{size: 1, result: 0x00000001},
		{size: 8, result: 0x000000FF},
		{size: 16, result: 0x0000FFFF},
		{size: 24, result: 0x00FFFFFF},
		{size: 31, result: 0x7FFFFFFF},
		{size: 32, result: 0xFFFFFFFF},
	}

	for idx := range cases {
		assert.Equal(cases[idx].result, HostMask(cases[idx].size))
	}
}

func TestMaskPartition(t *testing.T) {
	assert := assert.New(t)
	for size := 0; size <= 32; size++ {
		prefix := PrefixMask(size)
		host := HostMask(32 - size)
		assert.Equal(uint32(0), prefix&host)
		assert.Equal(uint32(0xFFFFFFFF), prefix|host)
	}
}
