package types

import (
	"sort"
	"strings"
)

// TemplateDelimiter bounds wildcard parent references and marks abstract
// template record names (e.g. "*common*").
const TemplateDelimiter = "*"

// Record is one named configuration unit parsed from a source bundle.
// Fields holds the record's direct key/value pairs; Keys preserves their
// insertion order. The inherits directive is carried separately and never
// appears in Fields.
type Record struct {
	Type     RecordType
	Name     string
	Inherits []string
	Fields   map[string]string
	Keys     []string
}

// NewRecord creates an empty record of the given type and name.
func NewRecord(recordType RecordType, name string) *Record {
	return &Record{
		Type:   recordType,
		Name:   name,
		Fields: map[string]string{},
	}
}

// Set stores a direct field, preserving first-insertion order. Setting an
// existing key overwrites its value in place.
func (r *Record) Set(key string, value string) {
	if _, ok := r.Fields[key]; !ok {
		r.Keys = append(r.Keys, key)
	}
	r.Fields[key] = value
}

// IsTemplate reports whether the record is an abstract template (its name
// starts with the template delimiter). Templates participate in
// inheritance but are never written as concrete output profiles.
func (r *Record) IsTemplate() bool {
	return strings.HasPrefix(r.Name, TemplateDelimiter)
}

// FullName is the type-qualified reference used in reports and source
// attribution, e.g. "print:0.20mm SPEED".
func (r *Record) FullName() string {
	return string(r.Type) + ":" + r.Name
}

// VendorInfo is the singleton metadata section of a bundle.
type VendorInfo struct {
	Name          string
	ConfigVersion string
	Fields        map[string]string
}

// Store is the in-memory representation of one parsed bundle: records
// grouped by type, insertion order preserved per type, plus the vendor
// metadata section. Records are immutable once parsing completes.
type Store struct {
	Vendor VendorInfo
	byType map[RecordType][]*Record
	byName map[RecordType]map[string]*Record
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		byType: map[RecordType][]*Record{},
		byName: map[RecordType]map[string]*Record{},
	}
}

// Add appends a record to the store. A record with a duplicate name
// replaces the earlier one, matching last-section-wins parse behavior.
func (s *Store) Add(record *Record) {
	if record == nil {
		return
	}
	names, ok := s.byName[record.Type]
	if !ok {
		names = map[string]*Record{}
		s.byName[record.Type] = names
	}
	if _, exists := names[record.Name]; !exists {
		s.byType[record.Type] = append(s.byType[record.Type], record)
	} else {
		for i, existing := range s.byType[record.Type] {
			if existing.Name == record.Name {
				s.byType[record.Type][i] = record
				break
			}
		}
	}
	names[record.Name] = record
}

// Lookup returns the record with the exact name within a type.
func (s *Store) Lookup(recordType RecordType, name string) (*Record, bool) {
	names, ok := s.byName[recordType]
	if !ok {
		return nil, false
	}
	record, ok := names[name]
	return record, ok
}

// LookupRef resolves a parent reference within recordType: first as an
// exact name, then as a "type:name" qualified reference.
func (s *Store) LookupRef(recordType RecordType, ref string) (*Record, bool) {
	if record, ok := s.Lookup(recordType, ref); ok {
		return record, true
	}
	if prefix := string(recordType) + ":"; strings.HasPrefix(ref, prefix) {
		return s.Lookup(recordType, strings.TrimPrefix(ref, prefix))
	}
	return nil, false
}

// Records returns the records of a type in insertion order.
func (s *Store) Records(recordType RecordType) []*Record {
	return s.byType[recordType]
}

// Names returns the record names of a type, sorted.
func (s *Store) Names(recordType RecordType) []string {
	records := s.byType[recordType]
	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.Name)
	}
	sort.Strings(names)
	return names
}

// TemplatesMatching returns, in lexicographic order, the names of
// template records of the given type whose name contains pattern.
// Lexicographic order makes wildcard expansion deterministic regardless
// of bundle section order.
func (s *Store) TemplatesMatching(recordType RecordType, pattern string) []string {
	var matches []string
	for _, record := range s.byType[recordType] {
		if record.IsTemplate() && strings.Contains(record.Name, pattern) {
			matches = append(matches, record.Name)
		}
	}
	sort.Strings(matches)
	return matches
}
