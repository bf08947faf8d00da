package numberutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToIntWithDefault(t *testing.T) {
	assert.Equal(t, 42, ToIntWithDefault("42", 0))
	assert.Equal(t, 7, ToIntWithDefault("", 7))
	assert.Equal(t, 7, ToIntWithDefault("4x", 7))
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		num, want int
	}{
		{num: -3, want: 1},
		{num: 0, want: 1},
		{num: 1, want: 1},
		{num: 3, want: 3},
		{num: 5, want: 5},
		{num: 9, want: 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampInt(tt.num, 1, 5), "ClampInt(%d, 1, 5)", tt.num)
	}
}

func TestIsIntInRange(t *testing.T) {
	assert.True(t, IsIntInRange(1, 1, 3))
	assert.True(t, IsIntInRange(3, 1, 3))
	assert.False(t, IsIntInRange(4, 1, 3))
}
