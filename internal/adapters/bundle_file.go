package adapters

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"slicer-profiles/internal/types"
)

// BundleFileAdapter parses line-oriented source bundles: [type:name]
// section headers, key = value lines, comment lines starting with ';'
// or '#'. A bare [vendor] header opens the singleton metadata section.
// Lines with no recognizable shape are skipped, not failed.
type BundleFileAdapter struct{}

// NewBundleFileAdapter creates the adapter.
func NewBundleFileAdapter() *BundleFileAdapter {
	return &BundleFileAdapter{}
}

// LoadBundle parses the bundle at path into a store.
func (a *BundleFileAdapter) LoadBundle(path string) (*types.Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("cannot open bundle: %s", path)).
			WithCause(err)
	}
	defer file.Close()

	store := types.NewStore()
	var current *types.Record
	inVendor := false
	vendorFields := map[string]string{}

	scanner := bufio.NewScanner(file)
	// Some bundles carry multi-kilobyte gcode values on a single line.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			store.Add(current)
			current = nil
			inVendor = false

			header := strings.TrimSpace(line[1 : len(line)-1])
			if header == types.VendorSection {
				inVendor = true
				continue
			}
			sectionType, name, ok := strings.Cut(header, ":")
			if !ok {
				log.Debug().Str("header", header).Msg("skipping unrecognized section header")
				continue
			}
			current = types.NewRecord(
				types.RecordType(strings.TrimSpace(sectionType)),
				strings.TrimSpace(name),
			)
		default:
			key, value, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
			switch {
			case inVendor:
				vendorFields[key] = value
			case current == nil:
				continue
			case key == "inherits":
				current.Inherits = splitInherits(value)
			default:
				current.Set(key, value)
			}
		}
	}
	store.Add(current)

	if err := scanner.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("reading bundle: %s", path)).
			WithCause(err)
	}

	store.Vendor = types.VendorInfo{
		Name:          vendorFields["name"],
		ConfigVersion: vendorFields["config_version"],
		Fields:        vendorFields,
	}
	return store, nil
}

func splitInherits(value string) []string {
	var parents []string
	for _, parent := range strings.Split(value, ";") {
		parent = strings.TrimSpace(parent)
		if parent != "" {
			parents = append(parents, parent)
		}
	}
	return parents
}
