package core

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"slicer-profiles/internal/shared"
	"slicer-profiles/internal/types"
)

// machineCommonBase is the shared ancestor every high-flow machine
// profile inherits from in the target catalog.
const machineCommonBase = "fdm_machine_common"

// ConverterConfig wires a converter: one rule registry per source record
// type, explicit default tables, the fields that must be emitted as
// lists per output kind, and the machine family stamped onto generated
// model profiles.
type ConverterConfig struct {
	Registries map[types.RecordType]*Registry
	Defaults   types.DefaultSet
	ListFields map[types.OutputKind][]string
	Family     string
}

// Converter translates a resolved source store into target-schema
// profiles. The target supports only single inheritance, so every
// profile is emitted fully flattened and the source's multi-parent
// chain collapses to one designated inherits reference.
type Converter struct {
	config ConverterConfig
}

// NewConverter creates a converter from an already-validated config.
func NewConverter(config ConverterConfig) *Converter {
	return &Converter{config: config}
}

// ConvertedProfile is one output profile plus provenance.
type ConvertedProfile struct {
	Kind    types.OutputKind
	Name    string
	Source  string
	Profile types.OutputProfile
}

// ConvertOutcome aggregates a whole-store conversion: the produced
// profiles in a stable order, and the sorted set of source keys no rule
// could handle.
type ConvertOutcome struct {
	Profiles    []ConvertedProfile
	NeedsManual []string
}

// ConvertStore converts every concrete record in the store. A non-empty
// filter restricts output to profiles whose name or printer
// compatibility matches it. Template records are resolved as ancestors
// but never emitted.
func (c *Converter) ConvertStore(store *types.Store, filter string) ConvertOutcome {
	resolver := NewResolver(store)
	manual := map[string]struct{}{}

	var profiles []ConvertedProfile
	profiles = append(profiles, c.convertModels(store, filter)...)
	profiles = append(profiles, c.convertPrinters(store, resolver, filter, manual)...)
	profiles = append(profiles, c.convertGeneric(store, resolver, types.RecordTypePrint, filter, manual)...)
	profiles = append(profiles, c.convertGeneric(store, resolver, types.RecordTypeFilament, filter, manual)...)

	outcome := ConvertOutcome{Profiles: profiles}
	for key := range manual {
		outcome.NeedsManual = append(outcome.NeedsManual, key)
	}
	sort.Strings(outcome.NeedsManual)
	return outcome
}

// convertModels turns each printer_model record into one machine_model
// profile per flow class: standard nozzle variants stay under the model
// name, high-flow variants split into a separate "<name> HF" model with
// the HF marker stripped from the nozzle sizes.
func (c *Converter) convertModels(store *types.Store, filter string) []ConvertedProfile {
	var profiles []ConvertedProfile
	for _, record := range store.Records(types.RecordTypePrinterModel) {
		if filter != "" && !strings.Contains(record.Name, filter) {
			continue
		}
		name := shared.NormalizeProfileName(record.Name)

		var standard, highFlow []string
		for _, variant := range strings.Split(record.Fields["variants"], ";") {
			variant = strings.TrimSpace(variant)
			if variant == "" {
				continue
			}
			if strings.HasPrefix(variant, "HF") {
				highFlow = append(highFlow, strings.TrimPrefix(variant, "HF"))
			} else {
				standard = append(standard, variant)
			}
		}

		if len(standard) > 0 {
			profiles = append(profiles, c.machineModel(record, name, standard))
		}
		if len(highFlow) > 0 {
			profiles = append(profiles, c.machineModel(record, name+" HF", highFlow))
		}
	}
	return profiles
}

func (c *Converter) machineModel(record *types.Record, name string, nozzles []string) ConvertedProfile {
	profile := types.OutputProfile{
		"type":              string(types.OutputKindMachineModel),
		"name":              name,
		"bed_model":         record.Fields["bed_model"],
		"bed_texture":       record.Fields["bed_texture"],
		"default_materials": record.Fields["default_materials"],
		"family":            c.config.Family,
		"hotend_model":      "",
		"machine_tech":      "FFF",
		"model_id":          shared.ModelID(c.config.Family, name),
		"nozzle_diameter":   strings.Join(nozzles, ";"),
	}
	return ConvertedProfile{
		Kind:    types.OutputKindMachineModel,
		Name:    name,
		Source:  record.FullName(),
		Profile: profile,
	}
}

// convertPrinters converts printer variant records into machine
// profiles. Variants are grouped per source model so every variant of a
// model shares the base display name; high-flow variants anchor the
// inheritance chain and standard variants hang off their high-flow
// sibling of the same nozzle size.
func (c *Converter) convertPrinters(store *types.Store, resolver *Resolver, filter string, manual map[string]struct{}) []ConvertedProfile {
	registry := c.config.Registries[types.RecordTypePrinter]
	if registry == nil {
		return nil
	}

	baseNames := map[string]string{}
	for _, record := range store.Records(types.RecordTypePrinter) {
		if record.IsTemplate() {
			continue
		}
		resolved := resolver.Resolve(types.RecordTypePrinter, record.Name)
		model := resolved["printer_model"]
		if _, ok := baseNames[model]; !ok {
			baseNames[model] = shared.NormalizeProfileName(shared.ExtractPrinterBaseName(record.Name))
		}
	}

	var profiles []ConvertedProfile
	for _, record := range store.Records(types.RecordTypePrinter) {
		if record.IsTemplate() {
			continue
		}
		if filter != "" && !strings.Contains(record.Name, filter) {
			continue
		}

		resolved := resolver.Resolve(types.RecordTypePrinter, record.Name)
		name := shared.NormalizeProfileName(record.Name)
		variant := resolved["printer_variant"]
		if variant == "" {
			variant = "0.4"
		}
		baseName := baseNames[resolved["printer_model"]]
		if baseName == "" {
			baseName = shared.NormalizeProfileName(resolved["printer_model"])
		}
		highFlow := resolved["nozzle_high_flow"] == "1"

		modelName := baseName
		inherits := baseName + " HF " + variant + " nozzle"
		if highFlow {
			modelName = baseName + " HF"
			inherits = machineCommonBase
		}

		profile := types.OutputProfile{
			"type":            string(types.OutputKindMachine),
			"name":            name,
			"from":            "system",
			"instantiation":   "true",
			"inherits":        inherits,
			"printer_model":   modelName,
			"printer_variant": variant,
		}
		c.applySettings(profile, registry, resolved, types.OutputKindMachine, manual)

		log.Debug().Str("printer", record.Name).Str("machine", name).Msg("converted printer variant")
		profiles = append(profiles, ConvertedProfile{
			Kind:    types.OutputKindMachine,
			Name:    name,
			Source:  record.FullName(),
			Profile: profile,
		})
	}
	return profiles
}

// convertGeneric handles the print and filament record types, which
// share one conversion shape and differ only in registry and defaults.
func (c *Converter) convertGeneric(store *types.Store, resolver *Resolver, recordType types.RecordType, filter string, manual map[string]struct{}) []ConvertedProfile {
	registry := c.config.Registries[recordType]
	kind, ok := types.OutputKindFor(recordType)
	if registry == nil || !ok {
		return nil
	}

	var profiles []ConvertedProfile
	for _, record := range store.Records(recordType) {
		if record.IsTemplate() {
			continue
		}
		resolved := resolver.Resolve(recordType, record.Name)
		if !matchesPrinterFilter(resolved, filter) {
			continue
		}

		name := shared.NormalizeProfileName(record.Name)
		profile := types.OutputProfile{
			"type":          string(kind),
			"name":          name,
			"from":          "system",
			"instantiation": "true",
		}
		if parent := collapseParent(record.Inherits); parent != "" {
			profile["inherits"] = shared.NormalizeProfileName(parent)
		}
		c.applySettings(profile, registry, resolved, kind, manual)

		profiles = append(profiles, ConvertedProfile{
			Kind:    kind,
			Name:    name,
			Source:  record.FullName(),
			Profile: profile,
		})
	}
	return profiles
}

// applySettings converts the resolved source fields, forces configured
// fields into list form, and fills remaining gaps from the default
// table, skipping keys the registry ignores.
func (c *Converter) applySettings(profile types.OutputProfile, registry *Registry, resolved types.ResolvedProfile, kind types.OutputKind, manual map[string]struct{}) {
	settings, unconverted := registry.ConvertAll(resolved)
	for key, value := range settings {
		profile[key] = value
	}
	for _, key := range unconverted {
		manual[key] = struct{}{}
	}

	for _, field := range c.config.ListFields[kind] {
		if value, ok := profile[field].(string); ok {
			profile[field] = []string{value}
		}
	}

	for key, value := range c.config.Defaults.For(kind) {
		if _, present := profile[key]; present {
			continue
		}
		if _, ignored := registry.Ignored()[key]; ignored {
			continue
		}
		profile[key] = value
	}
}

// collapseParent picks the single inherits reference for the target
// schema: the first concrete parent, or the first parent when every
// parent is a template.
func collapseParent(inherits []string) string {
	first := ""
	for _, parent := range inherits {
		parent = strings.TrimSpace(parent)
		if parent == "" {
			continue
		}
		if first == "" {
			first = parent
		}
		if !strings.HasPrefix(parent, types.TemplateDelimiter) {
			return parent
		}
	}
	return first
}

// matchesPrinterFilter checks print/filament compatibility against a
// printer-name filter, tolerating the compacted spelling used inside
// compatibility condition expressions.
func matchesPrinterFilter(resolved types.ResolvedProfile, filter string) bool {
	if filter == "" {
		return true
	}
	if compatible := resolved["compatible_printers"]; compatible != "" {
		return strings.Contains(compatible, filter)
	}
	if condition := resolved["compatible_printers_condition"]; condition != "" {
		compact := strings.ToUpper(strings.ReplaceAll(filter, " ", ""))
		return strings.Contains(strings.ToUpper(condition), compact)
	}
	return true
}
