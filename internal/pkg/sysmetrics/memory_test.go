package sysmetrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const memInfoFixture = `MemTotal:       24670208 kB
MemFree:        21234176 kB
MemAvailable:   23488000 kB
Buffers:          213260 kB
Cached:          1633964 kB
SwapTotal:       2097148 kB
SwapFree:        2097148 kB
`

func TestParseMemInfo(t *testing.T) {
	got, err := parseMemInfo(strings.NewReader(memInfoFixture))
	require.NoError(t, err)

	assert.Equal(t, uint64(24670208)*1024, got.TotalBytes)
	assert.Equal(t, uint64(24670208-23488000)*1024, got.UsedBytes)
	assert.InDelta(t, 4.79, got.UsedPercent, 0.01)

	// The report renders binary gigabytes with two decimals.
	const bytesPerGB = 1 << 30
	assert.InDelta(t, 23.53, float64(got.TotalBytes)/bytesPerGB, 0.01)
	assert.InDelta(t, 1.13, float64(got.UsedBytes)/bytesPerGB, 0.01)
}

func TestParseMemInfo_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "MemTotal missing",
			input: "MemFree:        21234176 kB\nMemAvailable:   23488000 kB\n",
		},
		{
			name:  "MemTotal zero",
			input: "MemTotal:       0 kB\nMemAvailable:   23488000 kB\n",
		},
		{
			name:  "MemTotal not numeric",
			input: "MemTotal:       lots kB\n",
		},
		{
			name:  "Empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseMemInfo(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseMemInfo_MissingAvailableReportsAllUsed(t *testing.T) {
	got, err := parseMemInfo(strings.NewReader("MemTotal:       1024 kB\n"))
	require.NoError(t, err)
	assert.Equal(t, got.TotalBytes, got.UsedBytes)
	assert.InDelta(t, 100.0, got.UsedPercent, 0.0001)
}

func TestParseMemInfo_AvailableExceedingTotalClamps(t *testing.T) {
	got, err := parseMemInfo(strings.NewReader("MemTotal:       1024 kB\nMemAvailable:   2048 kB\n"))
	require.NoError(t, err)
	assert.Zero(t, got.UsedBytes)
	assert.Zero(t, got.UsedPercent)
}

func TestPhysicalMemoryStat(t *testing.T) {
	const page = 4096

	t.Run("Used is total minus free pages", func(t *testing.T) {
		got := physicalMemoryStat(16*page, 4, page)
		assert.Equal(t, uint64(12*page), got.UsedBytes)
		assert.Equal(t, uint64(16*page), got.TotalBytes)
		assert.InDelta(t, 75.0, got.UsedPercent, 0.0001)
	})

	t.Run("Free exceeding total clamps used to zero", func(t *testing.T) {
		got := physicalMemoryStat(16*page, 32, page)
		assert.Zero(t, got.UsedBytes)
		assert.Zero(t, got.UsedPercent)
	})

	t.Run("Percent matches byte ratio", func(t *testing.T) {
		got := physicalMemoryStat(24670208*1024, 0, page)
		assert.InDelta(t, float64(got.UsedBytes)/float64(got.TotalBytes)*100, got.UsedPercent, 0.0001)
	})
}

func TestUsedPercent_ZeroTotal(t *testing.T) {
	assert.Zero(t, usedPercent(100, 0))
}
