package ports

import "slicer-profiles/internal/types"

// CorpusPort reads and updates target-schema profile trees.
type CorpusPort interface {
	LoadCorpus(dir string) (types.OutputCorpus, error)
	LoadProfile(path string) (types.OutputProfile, error)
	SaveProfile(path string, profile types.OutputProfile) error
}
