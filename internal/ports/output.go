package ports

import "slicer-profiles/internal/types"

// OutputWriterPort persists converted profiles under an output tree,
// one directory per output kind. WriteProfile returns the path written.
type OutputWriterPort interface {
	WriteProfile(baseDir string, kind types.OutputKind, name string, profile types.OutputProfile) (string, error)
}
