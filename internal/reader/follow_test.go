package reader

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFollowStep(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    float64
	}{
		{"snap beyond threshold", 0, 2500, 2500},
		{"snap upward", 3000, 500, 500},
		{"at snap threshold still animates", 0, 2000, 50},
		{"fast zone", 0, 600, 50},
		{"fast zone upward", 900, 100, 850},
		{"at fast threshold uses slow speed", 0, 500, 20},
		{"slow zone", 0, 400, 20},
		{"slow zone upward", 300, 150, 280},
		{"no overshoot", 0, 12, 12},
		{"no overshoot upward", 100, 95, 95},
		{"already there", 55, 55, 55},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, FollowStep(tt.current, tt.target), 1e-9)
		})
	}
}

func TestFollowerTarget(t *testing.T) {
	var f Follower

	_, ok := f.Target()
	require.False(t, ok)

	f.Follow("bob")
	name, ok := f.Target()
	require.True(t, ok)
	require.Equal(t, "bob", name)

	f.Cancel()
	_, ok = f.Target()
	require.False(t, ok)
}
