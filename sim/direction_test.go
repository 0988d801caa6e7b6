package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"left", DirectionLeft, false},
		{"RIGHT", DirectionRight, false},
		{" Left ", DirectionLeft, false},
		{"up", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidDirection(t *testing.T) {
	assert.True(t, IsValidDirection("left"))
	assert.True(t, IsValidDirection("Right"))
	assert.False(t, IsValidDirection("down"))
}
