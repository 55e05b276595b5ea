package app

import (
	"slicer-profiles/internal/core"
	"slicer-profiles/internal/types"
)

type ConvertRequest struct {
	BundlePath   string
	OutputDir    string
	Printer      string
	DefaultsPath string
}

type ConvertResult struct {
	OutputDir       string
	ProfilesWritten int
	ManualKeys      []string
	ReportPath      string
}

type CompareRequest struct {
	OldBundlePath string
	NewBundlePath string
	RecordTypes   []string
	Filter        string
}

type CompareResult struct {
	OldVersion string
	NewVersion string
	Diffs      map[types.RecordType]*types.GenerationDiff
}

type ApplyRequest struct {
	OldBundlePath string
	NewBundlePath string
	ProfilesDir   string
	RecordType    string
	DryRun        bool
}

type ApplyResult struct {
	ProfilesUpdated int
	ChangesApplied  int
	ProfilesMissing []string
	SkippedKeys     []string
}

type DiffRequest struct {
	CandidateDir string
	ReferenceDir string
	Kinds        []string
}

type ProfileDiff struct {
	Kind   types.OutputKind
	Name   string
	Result core.DiffResult
}

type DiffResult struct {
	Diffs        []ProfileDiff
	MissingInRef []string
	CleanCount   int
	DirtyCount   int
}

type AuditRequest struct {
	OutputPath string
}

type AuditResult struct {
	Audits     map[string]core.Audit
	OutputPath string
}

type InspectRequest struct {
	BundlePath string
	RecordType string
	Name       string
}

type InspectResult struct {
	Vendor   types.VendorInfo
	Names    []string
	Chain    []string
	Resolved types.SourcedProfile
}
