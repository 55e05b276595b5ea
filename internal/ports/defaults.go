package ports

import "slicer-profiles/internal/types"

// DefaultsPort loads user overrides for the target default tables.
type DefaultsPort interface {
	LoadOverrides(path string) (types.DefaultSet, error)
}
