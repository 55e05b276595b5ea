package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slicer-profiles/internal/types"
)

func TestWriteAndLoadProfileRoundTrip(t *testing.T) {
	adapter := NewProfileDirAdapter()
	base := t.TempDir()

	profile := types.OutputProfile{
		"type":         "process",
		"name":         "0.20mm Standard",
		"layer_height": "0.2",
		"speeds":       []any{"60", "30"},
	}
	path, err := adapter.WriteProfile(base, types.OutputKindProcess, "0.20mm Standard", profile)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "process", "0.20mm Standard.json"), path)

	loaded, err := adapter.LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "0.2", loaded["layer_height"])
	assert.Equal(t, []any{"60", "30"}, loaded["speeds"])
}

func TestLoadCorpusIndexesByProfileName(t *testing.T) {
	adapter := NewProfileDirAdapter()
	base := t.TempDir()

	_, err := adapter.WriteProfile(base, types.OutputKindProcess, "file-name", types.OutputProfile{
		"name": "display name",
	})
	require.NoError(t, err)
	_, err = adapter.WriteProfile(base, types.OutputKindFilament, "Generic PLA", types.OutputProfile{
		"nozzle_temperature": []any{"215"},
	})
	require.NoError(t, err)

	corpus, err := adapter.LoadCorpus(base)
	require.NoError(t, err)

	assert.Contains(t, corpus[types.OutputKindProcess], "display name")
	assert.Contains(t, corpus[types.OutputKindFilament], "Generic PLA")
	assert.Empty(t, corpus[types.OutputKindMachine])
}

func TestLoadProfileInvalidJSON(t *testing.T) {
	adapter := NewProfileDirAdapter()
	base := t.TempDir()
	path := filepath.Join(base, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := adapter.LoadProfile(path)
	require.Error(t, err)
}
