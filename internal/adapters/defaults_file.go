package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"slicer-profiles/internal/types"
)

// defaultsDoc is the on-disk shape of a defaults override file: one map
// per output kind, all optional.
type defaultsDoc struct {
	Process      map[string]any `yaml:"process"`
	Machine      map[string]any `yaml:"machine"`
	Filament     map[string]any `yaml:"filament"`
	MachineModel map[string]any `yaml:"machine_model"`
}

// DefaultsFileAdapter loads target-default overrides from a YAML file.
type DefaultsFileAdapter struct{}

// NewDefaultsFileAdapter creates the adapter.
func NewDefaultsFileAdapter() *DefaultsFileAdapter {
	return &DefaultsFileAdapter{}
}

// LoadOverrides reads the override file at path. The returned set holds
// only the keys the file names; merging into the built-in tables is the
// caller's concern.
func (a *DefaultsFileAdapter) LoadOverrides(path string) (types.DefaultSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.DefaultSet{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("cannot read defaults file: %s", path)).
			WithCause(err)
	}
	var doc defaultsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return types.DefaultSet{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid defaults file: %s", path)).
			WithCause(err)
	}
	return types.DefaultSet{
		Process:      doc.Process,
		Machine:      doc.Machine,
		Filament:     doc.Filament,
		MachineModel: doc.MachineModel,
	}, nil
}
