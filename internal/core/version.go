package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"update-vendor-files/internal/types"
)

// ParseVersionOrder maps a configuration value to a VersionOrder. The empty
// string selects numeric ordering.
func ParseVersionOrder(value string) (types.VersionOrder, error) {
	switch order := types.VersionOrder(strings.ToLower(strings.TrimSpace(value))); order {
	case "":
		return types.VersionOrderNumeric, nil
	case types.VersionOrderLexical, types.VersionOrderNumeric, types.VersionOrderPep440:
		return order, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported version order %q (expected lexical, numeric or pep440)", value))
	}
}

// versionCache memoizes parsed versions while a catalog is being ordered.
type versionCache struct {
	order types.VersionOrder
	deb   map[string]debversion.Version
	pep   map[string]pep440.Version
}

func newVersionCache(order types.VersionOrder) *versionCache {
	return &versionCache{
		order: order,
		deb:   map[string]debversion.Version{},
		pep:   map[string]pep440.Version{},
	}
}

func (c *versionCache) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, err
	}
	c.deb[value] = parsed
	return parsed, nil
}

func (c *versionCache) pepVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.pep[value] = parsed
	return parsed, nil
}

// compare returns -1, 0, or 1. Versions that fail to parse under the
// cache's ordering are compared as plain strings.
func (c *versionCache) compare(a string, b string) int {
	switch c.order {
	case types.VersionOrderNumeric:
		v1, err1 := c.debVersion(a)
		v2, err2 := c.debVersion(b)
		if err1 == nil && err2 == nil {
			return v1.Compare(v2)
		}
	case types.VersionOrderPep440:
		v1, err1 := c.pepVersion(a)
		v2, err2 := c.pepVersion(b)
		if err1 == nil && err2 == nil {
			return v1.Compare(v2)
		}
	}
	return strings.Compare(a, b)
}

// MaxVersion returns the greatest version under order, or "" for an empty
// slice.
func MaxVersion(order types.VersionOrder, versions []string) string {
	cache := newVersionCache(order)
	var best string
	for i, version := range versions {
		if i == 0 || cache.compare(version, best) > 0 {
			best = version
		}
	}
	return best
}
