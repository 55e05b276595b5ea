package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slicer-profiles/internal/types"
)

const testBundleOld = `
[vendor]
name = PrusaResearch
config_version = 2.2.10

[printer_model:COREONE]
variants = 0.4; HF0.4
bed_model = bed.stl
bed_texture = texture.png

[printer:Prusa COREONE HF0.4 nozzle]
printer_model = COREONE
printer_variant = 0.4
nozzle_high_flow = 1
nozzle_diameter = 0.4
retract_length = 0.8

[printer:Prusa COREONE 0.4 nozzle]
printer_model = COREONE
printer_variant = 0.4
nozzle_diameter = 0.4
retract_length = 0.8

[print:*common*]
layer_height = 0.2
perimeters = 2
fill_density = 15%

[print:0.20mm SPEED @COREONE]
inherits = *common*
fill_density = 20%

[filament:Generic PLA @COREONE]
temperature = 215
bed_temperature = 60
`

const testBundleNew = `
[vendor]
name = PrusaResearch
config_version = 2.4.2

[printer_model:COREONE]
variants = 0.4; HF0.4
bed_model = bed.stl
bed_texture = texture.png

[printer:Prusa COREONE HF0.4 nozzle]
printer_model = COREONE
printer_variant = 0.4
nozzle_high_flow = 1
nozzle_diameter = 0.4
retract_length = 0.8

[printer:Prusa COREONE 0.4 nozzle]
printer_model = COREONE
printer_variant = 0.4
nozzle_diameter = 0.4
retract_length = 0.8

[print:*common*]
layer_height = 0.2
perimeters = 2
fill_density = 15%

[print:0.20mm SPEED @COREONE]
inherits = *common*
fill_density = 25%
perimeters = 3

[filament:Generic PLA @COREONE]
temperature = 215
bed_temperature = 65
`

func writeTestBundle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvertEndToEnd(t *testing.T) {
	service := NewService()
	outputDir := t.TempDir()

	result, err := service.Convert(context.Background(), ConvertRequest{
		BundlePath: writeTestBundle(t, testBundleOld),
		OutputDir:  outputDir,
	})
	require.NoError(t, err)

	assert.Positive(t, result.ProfilesWritten)

	process, err := service.Profiles.LoadProfile(
		filepath.Join(outputDir, "process", "0.20mm SPEED @CORE One.json"))
	require.NoError(t, err)
	assert.Equal(t, "0.2", process["layer_height"])
	assert.Equal(t, "20%", process["sparse_infill_density"])
	assert.Equal(t, "2", process["wall_loops"])

	machine, err := service.Profiles.LoadProfile(
		filepath.Join(outputDir, "machine", "Prusa CORE One HF 0.4 nozzle.json"))
	require.NoError(t, err)
	assert.Equal(t, "fdm_machine_common", machine["inherits"])

	model, err := service.Profiles.LoadProfile(
		filepath.Join(outputDir, "machine_model", "CORE One HF.json"))
	require.NoError(t, err)
	assert.Equal(t, "Prusa_CORE_One_HF", model["model_id"])
}

func TestConvertRequiresPaths(t *testing.T) {
	service := NewService()

	_, err := service.Convert(context.Background(), ConvertRequest{OutputDir: "x"})
	require.Error(t, err)
	_, err = service.Convert(context.Background(), ConvertRequest{BundlePath: "x"})
	require.Error(t, err)
}

func TestCompareEndToEnd(t *testing.T) {
	service := NewService()

	result, err := service.Compare(context.Background(), CompareRequest{
		OldBundlePath: writeTestBundle(t, testBundleOld),
		NewBundlePath: writeTestBundle(t, testBundleNew),
		RecordTypes:   []string{"print", "filament"},
	})
	require.NoError(t, err)

	assert.Equal(t, "2.2.10", result.OldVersion)
	assert.Equal(t, "2.4.2", result.NewVersion)

	printDiff := result.Diffs[types.RecordTypePrint]
	require.NotNil(t, printDiff)
	changes := printDiff.Changed["0.20mm SPEED @COREONE"]
	require.NotNil(t, changes)
	assert.True(t, changes.Modified["fill_density"].Direct)
	assert.True(t, changes.Added["perimeters"].Direct)

	filamentDiff := result.Diffs[types.RecordTypeFilament]
	require.NotNil(t, filamentDiff)
	assert.Contains(t, filamentDiff.Changed, "Generic PLA @COREONE")
}

func TestCompareFilterScopesRecords(t *testing.T) {
	service := NewService()

	result, err := service.Compare(context.Background(), CompareRequest{
		OldBundlePath: writeTestBundle(t, testBundleOld),
		NewBundlePath: writeTestBundle(t, testBundleNew),
		RecordTypes:   []string{"print", "filament"},
		Filter:        "speed @coreone",
	})
	require.NoError(t, err)

	assert.Contains(t, result.Diffs[types.RecordTypePrint].Changed, "0.20mm SPEED @COREONE")
	assert.Empty(t, result.Diffs[types.RecordTypeFilament].Changed)
}

func TestCompareRejectsUnknownRecordType(t *testing.T) {
	service := NewService()

	_, err := service.Compare(context.Background(), CompareRequest{
		OldBundlePath: writeTestBundle(t, testBundleOld),
		NewBundlePath: writeTestBundle(t, testBundleNew),
		RecordTypes:   []string{"nonsense"},
	})
	require.Error(t, err)
}

func TestApplyEndToEnd(t *testing.T) {
	service := NewService()
	outputDir := t.TempDir()

	// Seed the converted tree from the old generation, then apply the
	// new generation's direct changes onto it.
	_, err := service.Convert(context.Background(), ConvertRequest{
		BundlePath: writeTestBundle(t, testBundleOld),
		OutputDir:  outputDir,
	})
	require.NoError(t, err)

	result, err := service.Apply(context.Background(), ApplyRequest{
		OldBundlePath: writeTestBundle(t, testBundleOld),
		NewBundlePath: writeTestBundle(t, testBundleNew),
		ProfilesDir:   filepath.Join(outputDir, "process"),
		RecordType:    "print",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.ProfilesUpdated)
	assert.Empty(t, result.ProfilesMissing)

	process, err := service.Profiles.LoadProfile(
		filepath.Join(outputDir, "process", "0.20mm SPEED @CORE One.json"))
	require.NoError(t, err)
	assert.Equal(t, "25%", process["sparse_infill_density"])
	assert.Equal(t, "3", process["wall_loops"])
}

func TestApplyDryRunLeavesFilesUntouched(t *testing.T) {
	service := NewService()
	outputDir := t.TempDir()

	_, err := service.Convert(context.Background(), ConvertRequest{
		BundlePath: writeTestBundle(t, testBundleOld),
		OutputDir:  outputDir,
	})
	require.NoError(t, err)

	result, err := service.Apply(context.Background(), ApplyRequest{
		OldBundlePath: writeTestBundle(t, testBundleOld),
		NewBundlePath: writeTestBundle(t, testBundleNew),
		ProfilesDir:   filepath.Join(outputDir, "process"),
		DryRun:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.ProfilesUpdated)

	process, err := service.Profiles.LoadProfile(
		filepath.Join(outputDir, "process", "0.20mm SPEED @CORE One.json"))
	require.NoError(t, err)
	assert.Equal(t, "20%", process["sparse_infill_density"])
}

func TestDiffEndToEnd(t *testing.T) {
	service := NewService()
	candidateDir := t.TempDir()
	referenceDir := t.TempDir()

	_, err := service.Convert(context.Background(), ConvertRequest{
		BundlePath: writeTestBundle(t, testBundleOld),
		OutputDir:  candidateDir,
	})
	require.NoError(t, err)
	_, err = service.Convert(context.Background(), ConvertRequest{
		BundlePath: writeTestBundle(t, testBundleNew),
		OutputDir:  referenceDir,
	})
	require.NoError(t, err)

	result, err := service.Diff(context.Background(), DiffRequest{
		CandidateDir: candidateDir,
		ReferenceDir: referenceDir,
		Kinds:        []string{"process"},
	})
	require.NoError(t, err)

	require.Len(t, result.Diffs, 1)
	diff := result.Diffs[0]
	assert.Equal(t, "0.20mm SPEED @CORE One", diff.Name)
	assert.Contains(t, diff.Result.Differing, "sparse_infill_density")
	assert.Contains(t, diff.Result.Differing, "wall_loops")
}

func TestAuditEnumeratesAllRegistries(t *testing.T) {
	service := NewService()
	path := filepath.Join(t.TempDir(), "audit.yaml")

	result, err := service.Audit(context.Background(), AuditRequest{OutputPath: path})
	require.NoError(t, err)

	assert.Len(t, result.Audits, 3)
	assert.FileExists(t, path)
	assert.Contains(t, result.Audits["print"].Ignored, "max_print_speed")
}

func TestInspectResolvesRecord(t *testing.T) {
	service := NewService()

	result, err := service.Inspect(context.Background(), InspectRequest{
		BundlePath: writeTestBundle(t, testBundleOld),
		RecordType: "print",
		Name:       "0.20mm SPEED @COREONE",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"*common*"}, result.Chain)
	assert.Equal(t, "print:*common*", result.Resolved["layer_height"].Source)
	assert.Equal(t, "print:0.20mm SPEED @COREONE", result.Resolved["fill_density"].Source)
	assert.Equal(t, "PrusaResearch", result.Vendor.Name)
}

func TestInspectListsNamesWithoutRecord(t *testing.T) {
	service := NewService()

	result, err := service.Inspect(context.Background(), InspectRequest{
		BundlePath: writeTestBundle(t, testBundleOld),
		RecordType: "print",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"*common*", "0.20mm SPEED @COREONE"}, result.Names)
}
