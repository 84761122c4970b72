package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrequencyDaily(t *testing.T) {
	offsets, err := parseFrequency("daily")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, offsets)

	offsets, err = parseFrequency("  Daily ")
	require.NoError(t, err)
	assert.Len(t, offsets, 7)
}

func TestParseFrequencyTimesPerWeek(t *testing.T) {
	cases := map[string][]int{
		"1x per week":      {0},
		"2x per week":      {0, 4},
		"3x per week":      {0, 2, 5},
		"3 x per week":     {0, 2, 5},
		"3 times per week": {0, 2, 5},
		"3 per week":       {0, 2, 5},
		"4x per week":      {0, 2, 4, 5},
		"5x per week":      {0, 1, 3, 4, 6},
		"7x per week":      {0, 1, 2, 3, 4, 5, 6},
		"2x a week":        {0, 4},
	}

	for descriptor, expected := range cases {
		offsets, err := parseFrequency(descriptor)
		require.NoError(t, err, descriptor)
		assert.Equal(t, expected, offsets, descriptor)
	}
}

func TestParseFrequencyDeterministic(t *testing.T) {
	first, err := parseFrequency("3x per week")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := parseFrequency("3x per week")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestParseFrequencyRejectsUnrecognized(t *testing.T) {
	for _, descriptor := range []string{"", "whenever", "8x per week", "0x per week", "twice per fortnight"} {
		_, err := parseFrequency(descriptor)
		assert.Error(t, err, descriptor)
	}
}
