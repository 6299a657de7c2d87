package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		s     string
		v     Version
		valid bool
	}{
		{"0.0.0", Version{0, 0, 0}, true},
		{"1.02.3", Version{1, 2, 3}, true},
		{"12.0.7", Version{12, 0, 7}, true},
		{"", Version{}, false},
		{"0", Version{}, false},
		{"0.0", Version{}, false},
		{"0.0.0.0", Version{}, false},
		{"0.-1.0", Version{}, false},
		{"0.+1.0", Version{}, false},
		{"a.b.c", Version{}, false},
	}

	for _, test := range tests {
		v, err := Parse(test.s)
		if !test.valid {
			assert.ErrorIs(t, err, ErrFormat, "Parse('%s')", test.s)
			continue
		}
		require.NoError(t, err, "Parse('%s')", test.s)
		assert.Equal(t, test.v, v, "Parse('%s')", test.s)
	}
}

func TestCurrent(t *testing.T) {
	v := Current()
	assert.Equal(t, SourceVersion, v.String())
	assert.Zero(t, v.Compare(v))
	assert.Equal(t, 1, v.Compare(Version{}))
	assert.Equal(t, -1, Version{}.Compare(v))

	tests := []struct {
		v, w Version
		cmp  int
	}{
		{Version{0, 0, 1}, Version{0, 0, 0}, 1},
		{Version{0, 1, 0}, Version{0, 0, 9}, 1},
		{Version{1, 0, 0}, Version{0, 9, 9}, 1},
		{Version{2, 13, 7}, Version{2, 12, 19}, 1},
		{Version{2, 12, 19}, Version{2, 13, 7}, -1},
		{Version{3, 1, 4}, Version{3, 1, 4}, 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.cmp, test.v.Compare(test.w), "%s vs %s", test.v, test.w)
	}
}
