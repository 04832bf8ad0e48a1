package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitVersion(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected gitVersion
		wantErr  bool
	}{
		{
			name:     "standard output",
			output:   "git version 2.39.2\n",
			expected: gitVersion{2, 39, 2},
		},
		{
			name:     "windows suffix",
			output:   "git version 2.39.2.windows.1\n",
			expected: gitVersion{2, 39, 2},
		},
		{
			name:     "two component version",
			output:   "git version 1.9\n",
			expected: gitVersion{1, 9, 0},
		},
		{
			name:    "garbage output",
			output:  "not git at all",
			wantErr: true,
		},
		{
			name:    "empty output",
			output:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseGitVersion(tt.output)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestGitVersionLess(t *testing.T) {
	tests := []struct {
		name     string
		a, b     gitVersion
		expected bool
	}{
		{"older major", gitVersion{1, 9, 9}, gitVersion{2, 0, 0}, true},
		{"older minor", gitVersion{1, 7, 9}, gitVersion{1, 9, 1}, true},
		{"older patch", gitVersion{1, 9, 0}, gitVersion{1, 9, 1}, true},
		{"equal", gitVersion{1, 9, 1}, gitVersion{1, 9, 1}, false},
		{"newer", gitVersion{2, 39, 2}, gitVersion{1, 9, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.less(tt.b))
		})
	}
}
