package message

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTo12Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"00:05", "12:05 AM"},
		{"09:07", "9:07 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"13:05", "1:05 PM"},
		{"23:59", "11:59 PM"},
		{"14:30 (IST)", "2:30 PM (IST)"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, To12Hour(tt.in))
		})
	}
}

func TestTo12HourPreservesMinutes(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			in := fmt.Sprintf("%02d:%02d", h, m)
			out := To12Hour(in)

			clock, suffix, ok := strings.Cut(out, " ")
			require.True(t, ok, in)
			assert.Contains(t, []string{"AM", "PM"}, suffix, in)

			hourStr, minute, ok := strings.Cut(clock, ":")
			require.True(t, ok, in)
			assert.Equal(t, in[3:], minute, in)

			hour, err := strconv.Atoi(hourStr)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, hour, 1, in)
			assert.LessOrEqual(t, hour, 12, in)
		}
	}
}

func TestTo12HourLeavesGarbageAlone(t *testing.T) {
	assert.Equal(t, "", To12Hour(""))
	assert.Equal(t, "noon", To12Hour("noon"))
	assert.Equal(t, "xx:10", To12Hour("xx:10"))
}
