package core

import (
	"sort"

	"slicer-profiles/internal/types"
)

// Comparer classifies key-level differences between two bundle
// generations. A key a record defines directly in one generation but
// not the other is reported as a direct add or removal regardless of
// what inheritance resolves it to; a child whose resolved value shifted
// because an ancestor was edited reports the difference as inherited,
// and the ancestor's blast radius is surfaced through its transitive
// descendant set.
type Comparer struct{}

// NewComparer creates a comparer. It keeps no state between calls.
func NewComparer() *Comparer {
	return &Comparer{}
}

// CompareGeneration diffs one record type across two generations.
func (c *Comparer) CompareGeneration(oldStore *types.Store, newStore *types.Store, recordType types.RecordType) *types.GenerationDiff {
	oldResolver := NewResolver(oldStore)
	newResolver := NewResolver(newStore)

	diff := &types.GenerationDiff{
		Changed:  map[string]*types.RecordChanges{},
		Children: childAdjacency(newStore, newResolver, recordType),
	}

	oldNames := nameSet(oldStore, recordType)
	newNames := nameSet(newStore, recordType)
	for name := range newNames {
		if _, ok := oldNames[name]; !ok {
			diff.AddedRecords = append(diff.AddedRecords, name)
		}
	}
	for name := range oldNames {
		if _, ok := newNames[name]; !ok {
			diff.RemovedRecords = append(diff.RemovedRecords, name)
		}
	}
	sort.Strings(diff.AddedRecords)
	sort.Strings(diff.RemovedRecords)

	for name := range newNames {
		if _, ok := oldNames[name]; !ok {
			continue
		}
		changes := compareRecord(oldStore, newStore, oldResolver, newResolver, recordType, name)
		if !changes.HasChanges() {
			continue
		}
		if changes.HasDirectChanges() {
			changes.Affects = descendants(diff.Children, name)
		}
		diff.Changed[name] = changes
	}
	return diff
}

func compareRecord(
	oldStore *types.Store, newStore *types.Store,
	oldResolver *Resolver, newResolver *Resolver,
	recordType types.RecordType, name string,
) *types.RecordChanges {
	oldRecord, _ := oldStore.Lookup(recordType, name)
	newRecord, _ := newStore.Lookup(recordType, name)
	oldResolved := oldResolver.ResolveWithSource(recordType, name)
	newResolved := newResolver.ResolveWithSource(recordType, name)

	changes := types.NewRecordChanges()
	for key := range unionKeys(oldResolved, newResolved) {
		oldValue, inOld := oldResolved[key]
		newValue, inNew := newResolved[key]
		oldDirect, hasOldDirect := oldRecord.Fields[key]
		newDirect, hasNewDirect := newRecord.Fields[key]

		// Direct-set membership decides the classification: a key the
		// record gains or drops directly is added or removed even when the
		// resolved value is unchanged through inheritance. Resolved values
		// only classify keys neither generation defines directly.
		switch {
		case hasNewDirect && !hasOldDirect:
			changes.Added[key] = types.KeyChange{
				Value:  newDirect,
				Source: newValue.Source,
				Direct: true,
			}
			changes.DirectKeys[key] = struct{}{}
		case hasOldDirect && !hasNewDirect:
			changes.Removed[key] = types.KeyChange{
				Value:  oldDirect,
				Source: oldValue.Source,
				Direct: true,
			}
			changes.DirectKeys[key] = struct{}{}
		case hasOldDirect && hasNewDirect && oldDirect != newDirect:
			changes.Modified[key] = types.ValueChange{
				Old:       oldValue.Value,
				New:       newValue.Value,
				OldSource: oldValue.Source,
				NewSource: newValue.Source,
				Direct:    true,
			}
			changes.DirectKeys[key] = struct{}{}
		case !inOld && inNew:
			changes.Added[key] = types.KeyChange{
				Value:  newValue.Value,
				Source: newValue.Source,
			}
		case inOld && !inNew:
			changes.Removed[key] = types.KeyChange{
				Value:  oldValue.Value,
				Source: oldValue.Source,
			}
		case oldValue.Value != newValue.Value:
			changes.Modified[key] = types.ValueChange{
				Old:       oldValue.Value,
				New:       newValue.Value,
				OldSource: oldValue.Source,
				NewSource: newValue.Source,
			}
		}
	}
	return changes
}

// childAdjacency builds the parent→children map over one generation,
// with wildcard parents expanded the same way resolution expands them.
func childAdjacency(store *types.Store, resolver *Resolver, recordType types.RecordType) map[string][]string {
	children := map[string][]string{}
	for _, record := range store.Records(recordType) {
		for _, parent := range resolver.Chain(recordType, record.Name) {
			children[parent] = append(children[parent], record.Name)
		}
	}
	for parent := range children {
		sort.Strings(children[parent])
	}
	return children
}

// descendants walks the adjacency transitively from name, excluding the
// record itself, returning a sorted set.
func descendants(children map[string][]string, name string) []string {
	seen := map[string]struct{}{}
	queue := append([]string(nil), children[name]...)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if _, ok := seen[current]; ok || current == name {
			continue
		}
		seen[current] = struct{}{}
		queue = append(queue, children[current]...)
	}
	result := make([]string, 0, len(seen))
	for descendant := range seen {
		result = append(result, descendant)
	}
	sort.Strings(result)
	return result
}

func nameSet(store *types.Store, recordType types.RecordType) map[string]struct{} {
	names := map[string]struct{}{}
	for _, record := range store.Records(recordType) {
		names[record.Name] = struct{}{}
	}
	return names
}

func unionKeys(a types.SourcedProfile, b types.SourcedProfile) map[string]struct{} {
	keys := make(map[string]struct{}, len(a)+len(b))
	for key := range a {
		keys[key] = struct{}{}
	}
	for key := range b {
		keys[key] = struct{}{}
	}
	return keys
}
