package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"slicer-profiles/internal/types"
)

// outputKindDirs maps output kinds to their directory names in a
// profile tree. Directory name and kind string happen to coincide.
var outputKindDirs = []types.OutputKind{
	types.OutputKindProcess,
	types.OutputKindMachine,
	types.OutputKindFilament,
	types.OutputKindMachineModel,
}

// ProfileDirAdapter reads and writes target-schema profile trees:
// <base>/<kind>/<name>.json, four-space indented, matching what the
// target slicer ships.
type ProfileDirAdapter struct{}

// NewProfileDirAdapter creates the adapter.
func NewProfileDirAdapter() *ProfileDirAdapter {
	return &ProfileDirAdapter{}
}

// WriteProfile writes one profile under baseDir, creating the kind
// directory as needed, and returns the written path.
func (a *ProfileDirAdapter) WriteProfile(baseDir string, kind types.OutputKind, name string, profile types.OutputProfile) (string, error) {
	dir := filepath.Join(baseDir, string(kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("cannot create output directory: %s", dir)).
			WithCause(err)
	}
	path := filepath.Join(dir, name+".json")
	if err := a.SaveProfile(path, profile); err != nil {
		return "", err
	}
	return path, nil
}

// LoadCorpus reads every profile under dir's kind subdirectories.
// Missing kind directories contribute an empty set.
func (a *ProfileDirAdapter) LoadCorpus(dir string) (types.OutputCorpus, error) {
	corpus := types.OutputCorpus{}
	for _, kind := range outputKindDirs {
		profiles := map[string]types.OutputProfile{}
		kindDir := filepath.Join(dir, string(kind))
		entries, err := os.ReadDir(kindDir)
		if os.IsNotExist(err) {
			corpus[kind] = profiles
			continue
		}
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("cannot read corpus directory: %s", kindDir)).
				WithCause(err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}
			profile, err := a.LoadProfile(filepath.Join(kindDir, entry.Name()))
			if err != nil {
				return nil, err
			}
			name := strings.TrimSuffix(entry.Name(), ".json")
			if fromProfile, ok := profile["name"].(string); ok && fromProfile != "" {
				name = fromProfile
			}
			profiles[name] = profile
		}
		corpus[kind] = profiles
	}
	return corpus, nil
}

// LoadProfile reads a single profile file.
func (a *ProfileDirAdapter) LoadProfile(path string) (types.OutputProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("cannot read profile: %s", path)).
			WithCause(err)
	}
	var profile types.OutputProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid profile JSON: %s", path)).
			WithCause(err)
	}
	return profile, nil
}

// SaveProfile writes a single profile file.
func (a *ProfileDirAdapter) SaveProfile(path string, profile types.OutputProfile) error {
	data, err := json.MarshalIndent(profile, "", "    ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("cannot encode profile: %s", path)).
			WithCause(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("cannot write profile: %s", path)).
			WithCause(err)
	}
	return nil
}
