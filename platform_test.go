package aperture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryNamePerPlatform(t *testing.T) {
	names := map[string]Platform{}
	for _, p := range Platforms {
		name, err := LibraryName(p)
		require.NoError(t, err, p)
		require.NotEmpty(t, name)
		assert.True(t, p.Supported())

		if other, dup := names[name]; dup {
			t.Errorf("%s and %s share library name %s", p, other, name)
		}
		names[name] = p
	}
	assert.Len(t, names, 3)
}

func TestLibraryNameUnsupported(t *testing.T) {
	_, err := LibraryName(Platform("js"))
	assert.ErrorIs(t, err, ErrLoad)
	assert.False(t, Platform("js").Supported())
}
