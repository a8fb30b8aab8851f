package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"5h", 5 * time.Hour},
		{"5m", 5 * time.Minute},
		{"1s", time.Second},
		{"3d", 3 * day},
		{"52w", 52 * 7 * day},
		{"2 months", 2 * 2_630_016 * time.Second},
		{"1M", 2_630_016 * time.Second},
		{"1y", 31_557_600 * time.Second},
		{"1w 3d", 10 * day},
		{"1h30min", 90 * time.Minute},
		{" 6 weeks ", 42 * day},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	for _, in := range []string{"", "5", "h", "5 parsecs", "-5h", "5h x", "99999999999y"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDuration(in)
			assert.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}

func TestWholeDays(t *testing.T) {
	assert.Equal(t, int64(0), wholeDays(23*time.Hour))
	assert.Equal(t, int64(1), wholeDays(day+time.Minute))
	assert.Equal(t, int64(30), wholeDays(2_630_016*time.Second))
}
