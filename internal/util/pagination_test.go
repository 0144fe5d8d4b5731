package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageWindow(t *testing.T) {
	cases := []struct {
		name                string
		page, size          int
		wantFrom, wantLimit int
	}{
		{"defaults", 0, 0, 0, 10},
		{"first page", 1, 20, 0, 20},
		{"third page", 3, 25, 50, 25},
		{"negative page", -2, 10, 0, 10},
		{"oversized clamped", 1, 500, 0, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, limit := PageWindow(tc.page, tc.size)
			require.Equal(t, tc.wantFrom, from)
			require.Equal(t, tc.wantLimit, limit)
		})
	}
}
