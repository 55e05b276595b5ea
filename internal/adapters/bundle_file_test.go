package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slicer-profiles/internal/types"
)

func writeBundle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBundleParsesSectionsAndVendor(t *testing.T) {
	path := writeBundle(t, `
# comment
; another comment
[vendor]
name = PrusaResearch
config_version = 2.2.10

[print:0.20mm SPEED]
layer_height = 0.2
inherits = *common*; base
fill_density = 20%

[filament:Generic PLA]
temperature = 215
`)

	store, err := NewBundleFileAdapter().LoadBundle(path)
	require.NoError(t, err)

	assert.Equal(t, "PrusaResearch", store.Vendor.Name)
	assert.Equal(t, "2.2.10", store.Vendor.ConfigVersion)

	printRecord, ok := store.Lookup(types.RecordTypePrint, "0.20mm SPEED")
	require.True(t, ok)
	assert.Equal(t, []string{"*common*", "base"}, printRecord.Inherits)
	assert.Equal(t, "0.2", printRecord.Fields["layer_height"])
	assert.Equal(t, "20%", printRecord.Fields["fill_density"])
	_, hasInherits := printRecord.Fields["inherits"]
	assert.False(t, hasInherits, "inherits must not appear among fields")

	filament, ok := store.Lookup(types.RecordTypeFilament, "Generic PLA")
	require.True(t, ok)
	assert.Equal(t, "215", filament.Fields["temperature"])
}

func TestLoadBundleSkipsMalformedLines(t *testing.T) {
	path := writeBundle(t, `
[print:p]
this line has no equals sign
layer_height = 0.2
[not a typed header]
orphan = value
`)

	store, err := NewBundleFileAdapter().LoadBundle(path)
	require.NoError(t, err)

	record, ok := store.Lookup(types.RecordTypePrint, "p")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"layer_height": "0.2"}, record.Fields)
}

func TestLoadBundlePreservesKeyOrder(t *testing.T) {
	path := writeBundle(t, `
[print:p]
zeta = 1
alpha = 2
mid = 3
`)

	store, err := NewBundleFileAdapter().LoadBundle(path)
	require.NoError(t, err)

	record, _ := store.Lookup(types.RecordTypePrint, "p")
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, record.Keys)
}

func TestLoadBundleMissingFile(t *testing.T) {
	_, err := NewBundleFileAdapter().LoadBundle(filepath.Join(t.TempDir(), "absent.ini"))
	require.Error(t, err)
}
