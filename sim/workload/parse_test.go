package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequests_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"comma and space", "82, 170, 43", []int{82, 170, 43}},
		{"no spaces", "1,2,3", []int{1, 2, 3}},
		{"whitespace only separators", "1 2\t3\n4", []int{1, 2, 3, 4}},
		{"blank tokens skipped", " ,5,, 6 ,", []int{5, 6}},
		{"duplicates kept", "7,7,7", []int{7, 7, 7}},
		{"negative parses", "-3", []int{-3}},
		{"empty", "", []int{}},
		{"only separators", " , ,", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequests(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRequests_InvalidToken_ReportsPositionAndToken(t *testing.T) {
	_, err := ParseRequests("82, abc, 43")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "request 2")
	assert.Contains(t, err.Error(), `"abc"`)
}

func TestParseRequests_FloatRejected(t *testing.T) {
	_, err := ParseRequests("82.5")
	assert.Error(t, err)
}

func TestFormatRequests_RoundTripsThroughParse(t *testing.T) {
	reqs := []int{82, 170, 43, 140, 24, 16, 190}
	s := FormatRequests(reqs)
	assert.Equal(t, DefaultRequests, s)

	back, err := ParseRequests(s)
	require.NoError(t, err)
	assert.Equal(t, reqs, back)
}

func TestFormatRequests_Empty(t *testing.T) {
	assert.Equal(t, "", FormatRequests(nil))
}
