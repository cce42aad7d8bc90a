package zebra

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortonl/zebra-label-generator-sub001/api"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "printers.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPrinterProfiles(t *testing.T) {
	path := writeProfiles(t, `
[profiles.dock]
dpi = 203
media_width = 110.0

[profiles.office]
dpi = 300
media_width = 110.0
media_length = 152.4
`)
	profiles, err := LoadPrinterProfiles(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"dock", "office"}, profiles.Names())

	dock, err := profiles.Printer("dock")
	require.NoError(t, err)
	assert.Equal(t, api.DPI203, dock.Density)
	assert.True(t, dock.Media.IsContinuous())
	assert.Equal(t, 110.0, dock.Media.Width)

	office, err := profiles.Printer("office")
	require.NoError(t, err)
	assert.Equal(t, api.DPI300, office.Density)
	require.NotNil(t, office.Media.Length)
	assert.Equal(t, 152.4, *office.Media.Length)
}

func TestPrinterProfileErrors(t *testing.T) {
	path := writeProfiles(t, `
[profiles.dock]
dpi = 180
media_width = 110.0
`)
	profiles, err := LoadPrinterProfiles(path)
	require.NoError(t, err)

	_, err = profiles.Printer("dock")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no print density preset for 180 dots per inch")

	_, err = profiles.Printer("warehouse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown printer profile "warehouse"`)
	assert.Contains(t, err.Error(), "dock")
}

func TestLoadPrinterProfilesErrors(t *testing.T) {
	_, err := LoadPrinterProfiles(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open printer profiles")

	path := writeProfiles(t, "profiles = [")
	_, err = LoadPrinterProfiles(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse printer profiles")
}
