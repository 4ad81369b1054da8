package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"update-vendor-files/internal/types"
)

const versionSeparator = "=="

// ParseIdentifier splits a `<family>==<version>` token on the first
// separator. A trailing separator selects the empty version.
func ParseIdentifier(input string) types.PackIdentifier {
	family, version, found := strings.Cut(input, versionSeparator)
	if !found {
		return types.PackIdentifier{Family: input}
	}
	return types.PackIdentifier{
		Family:     family,
		Version:    version,
		HasVersion: true,
	}
}

// FamilyTable is the lookup from family token to vendor pack.
type FamilyTable map[string]types.Family

func DefaultFamilies() FamilyTable {
	return FamilyTable{
		"atmega": {Name: "atmega", Vendor: "Microchip", Pack: "ATmega_DFP"},
	}
}

// With returns a copy of the table overlaid with `family: Vendor.Pack`
// entries, typically read from configuration.
func (t FamilyTable) With(extra map[string]string) (FamilyTable, error) {
	out := make(FamilyTable, len(t)+len(extra))
	for name, family := range t {
		out[name] = family
	}
	for name, downloadName := range extra {
		name = strings.TrimSpace(name)
		vendor, pack, ok := strings.Cut(strings.TrimSpace(downloadName), ".")
		if name == "" || !ok || vendor == "" || pack == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid family entry %q: download name must look like Vendor.Pack", name+"="+downloadName))
		}
		out[name] = types.Family{Name: name, Vendor: vendor, Pack: pack}
	}
	return out, nil
}

func (t FamilyTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t FamilyTable) Lookup(name string) (types.Family, error) {
	if family, ok := t[name]; ok {
		return family, nil
	}
	known := "no known families"
	if names := t.Names(); len(names) > 0 {
		known = "known families: " + strings.Join(names, ", ")
	}
	return types.Family{}, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("unsupported family %q (%s)", name, known))
}
