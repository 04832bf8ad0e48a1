package services

import (
	"testing"

	"github.com/Tomas-vilte/MatePick/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUpdateAvailable(t *testing.T) {
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	tests := []struct {
		name     string
		current  string
		latest   string
		expected bool
	}{
		{
			name:     "patch update available",
			current:  "v0.3.0",
			latest:   "v0.3.1",
			expected: true,
		},
		{
			name:     "minor update available",
			current:  "v0.3.1",
			latest:   "v0.4.0",
			expected: true,
		},
		{
			name:     "major update available",
			current:  "v0.3.1",
			latest:   "v1.0.0",
			expected: true,
		},
		{
			name:     "same version",
			current:  "v0.3.1",
			latest:   "v0.3.1",
			expected: false,
		},
		{
			name:     "local version is newer",
			current:  "v0.4.0",
			latest:   "v0.3.1",
			expected: false,
		},
		{
			name:     "missing v prefix still compares",
			current:  "0.3.0",
			latest:   "0.3.1",
			expected: true,
		},
		{
			name:     "invalid versions fall back to inequality",
			current:  "dev",
			latest:   "v0.3.1",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updater := NewVersionUpdater(tt.current, trans)
			assert.Equal(t, tt.expected, updater.isUpdateAvailable(tt.latest))
		})
	}
}
