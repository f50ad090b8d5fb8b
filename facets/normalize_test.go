package facets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "memorytype", NormalizeKey("Memory Type"))
	assert.Equal(t, "memorytype", NormalizeKey("memory_type"))
	assert.Equal(t, "memorytype", NormalizeKey("Memory-Type"))
	assert.Equal(t, "readwrite", NormalizeKey("Read/Write"))
	assert.Equal(t, "80plus", NormalizeKey("80 Plus."))
}

func TestLookupSpec(t *testing.T) {
	v, ok := LookupSpec(map[string]string{"memoryType": "DDR5"}, "memory_type")
	assert.True(t, ok)
	assert.Equal(t, "DDR5", v)

	v, ok = LookupSpec(map[string]string{"RAM Type": "DDR4"}, "memory_type")
	assert.True(t, ok)
	assert.Equal(t, "DDR4", v)

	v, ok = LookupSpec(map[string]string{"Sequential Read": "7000 MB/s"}, "read_speed")
	assert.True(t, ok)
	assert.Equal(t, "7000 MB/s", v)

	_, ok = LookupSpec(map[string]string{"Memory Type": "  "}, "memory_type")
	assert.False(t, ok)

	_, ok = LookupSpec(nil, "socket")
	assert.False(t, ok)
}

func TestAliases_UnknownKey(t *testing.T) {
	assert.Equal(t, []string{"somethingelse"}, Aliases("Something Else"))
	assert.Contains(t, Aliases("socket"), "cpusocket")
}

func TestNumericValue(t *testing.T) {
	tests := map[string]float64{
		"3.5 GHz":  3.5,
		"1,5 TB":   1.5,
		"16GB":     16,
		"PCIe 4.0": 4.0,
		"n/a":      0,
		"":         0,
	}
	for in, want := range tests {
		assert.Equal(t, want, NumericValue(in), in)
	}
}

func TestCapacityValue(t *testing.T) {
	assert.Equal(t, 1000.0, CapacityValue("1TB"))
	assert.Equal(t, 512.0, CapacityValue("512 GB"))
	assert.Equal(t, 0.5, CapacityValue("500MB"))
	assert.Equal(t, 64.0, CapacityValue("64"))
}

func TestNormalizeBool(t *testing.T) {
	for _, in := range []string{"Yes", "true", "1", "Supported", " on "} {
		got, ok := NormalizeBool(in)
		assert.True(t, ok, in)
		assert.Equal(t, "true", got, in)
	}
	for _, in := range []string{"No", "FALSE", "0", "Not Supported", "none"} {
		got, ok := NormalizeBool(in)
		assert.True(t, ok, in)
		assert.Equal(t, "false", got, in)
	}
	_, ok := NormalizeBool("maybe")
	assert.False(t, ok)
}

func TestValueOrder(t *testing.T) {
	assert.True(t, numericOrder.less("8", "24"))
	assert.False(t, lexicalOrder.less("8", "24"))
	assert.True(t, capacityOrder.less("512GB", "1TB"))
	assert.True(t, lexicalOrder.less("ddr4", "DDR5"))
}
