package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"
)

// ConfigVersion is a parsed vendor config_version. Vendors have shipped
// both plain dotted versions and Debian-style revisions (e.g.
// "2.2.10-alpha1"), so parsing tries PEP 440 first and falls back to
// the Debian scheme.
type ConfigVersion struct {
	raw    string
	pep    pep440.Version
	deb    debversion.Version
	usePep bool
}

// ParseConfigVersion parses a vendor bundle version string.
func ParseConfigVersion(value string) (ConfigVersion, error) {
	if parsed, err := pep440.Parse(value); err == nil {
		return ConfigVersion{raw: value, pep: parsed, usePep: true}, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return ConfigVersion{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unparseable config_version: %q", value)).
			WithCause(err)
	}
	return ConfigVersion{raw: value, deb: parsed}, nil
}

// String returns the original version string.
func (v ConfigVersion) String() string {
	return v.raw
}

// Compare returns -1, 0, or 1. Versions parsed under different schemes
// fall back to a raw string comparison, which at least stays total.
func (v ConfigVersion) Compare(other ConfigVersion) int {
	switch {
	case v.usePep && other.usePep:
		return v.pep.Compare(other.pep)
	case !v.usePep && !other.usePep:
		return v.deb.Compare(other.deb)
	default:
		switch {
		case v.raw < other.raw:
			return -1
		case v.raw > other.raw:
			return 1
		default:
			return 0
		}
	}
}

// CompareGenerations orders two bundle version strings. It reports
// whether old precedes new, so callers can warn when generations appear
// swapped. Unparseable versions are an error rather than a silent pass.
func CompareGenerations(oldVersion string, newVersion string) (int, error) {
	parsedOld, err := ParseConfigVersion(oldVersion)
	if err != nil {
		return 0, err
	}
	parsedNew, err := ParseConfigVersion(newVersion)
	if err != nil {
		return 0, err
	}
	return parsedOld.Compare(parsedNew), nil
}
