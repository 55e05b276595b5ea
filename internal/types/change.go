package types

// KeyChange describes a key that appears in only one generation.
// Direct marks changes defined literally in the record itself; inherited
// changes carry Direct=false and Source names the ancestor that owns them.
type KeyChange struct {
	Value  string
	Source string
	Direct bool
}

// ValueChange describes a key whose value differs between generations.
type ValueChange struct {
	Old       string
	New       string
	OldSource string
	NewSource string
	Direct    bool
}

// RecordChanges is the per-record diff between two generations.
type RecordChanges struct {
	Added      map[string]KeyChange
	Removed    map[string]KeyChange
	Modified   map[string]ValueChange
	DirectKeys map[string]struct{}
	Affects    []string
}

// NewRecordChanges creates an empty change set.
func NewRecordChanges() *RecordChanges {
	return &RecordChanges{
		Added:      map[string]KeyChange{},
		Removed:    map[string]KeyChange{},
		Modified:   map[string]ValueChange{},
		DirectKeys: map[string]struct{}{},
	}
}

// HasChanges reports whether any key was added, removed, or modified.
func (c *RecordChanges) HasChanges() bool {
	return len(c.Added) > 0 || len(c.Removed) > 0 || len(c.Modified) > 0
}

// HasDirectChanges reports whether at least one change is defined in the
// record itself rather than inherited.
func (c *RecordChanges) HasDirectChanges() bool {
	return len(c.DirectKeys) > 0
}

// GenerationDiff is the result of comparing one record type across two
// bundle generations.
type GenerationDiff struct {
	AddedRecords   []string
	RemovedRecords []string
	Changed        map[string]*RecordChanges
	Children       map[string][]string
}
