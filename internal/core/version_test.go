package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareGenerationsOrdering(t *testing.T) {
	cases := []struct {
		old  string
		new  string
		want int
	}{
		{"2.1.0", "2.2.0", -1},
		{"2.2.0", "2.2.0", 0},
		{"2.2.1", "2.2.0", 1},
		{"2.2.10", "2.2.9", 1},
		{"2.2.10-alpha1", "2.2.10-alpha2", -1},
	}
	for _, c := range cases {
		got, err := CompareGenerations(c.old, c.new)
		require.NoError(t, err, "%s vs %s", c.old, c.new)
		assert.Equal(t, c.want, got, "%s vs %s", c.old, c.new)
	}
}

func TestCompareGenerationsUnparseable(t *testing.T) {
	_, err := CompareGenerations("not a version at all!", "2.2.0")
	require.Error(t, err)
}

func TestParseConfigVersionFallsBackToDebianScheme(t *testing.T) {
	parsed, err := ParseConfigVersion("1:2.2.10-1ubuntu1")
	require.NoError(t, err)
	assert.Equal(t, "1:2.2.10-1ubuntu1", parsed.String())
}
