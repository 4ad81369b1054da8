package core

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"update-vendor-files/internal/shared"
	"update-vendor-files/internal/types"
)

// NewResolvedPack pairs an identifier with the catalog it was resolved
// against. An explicitly selected version must be present in available.
func NewResolvedPack(id types.PackIdentifier, family types.Family, available []string) (types.ResolvedPack, error) {
	if id.HasVersion && !slices.Contains(available, id.Version) {
		return types.ResolvedPack{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("version %q of %s not available (available: %s)",
				id.Version, family.DownloadName(), shared.JoinOrNone(available)))
	}
	return types.ResolvedPack{
		Identifier: id,
		Family:     family,
		Available:  available,
	}, nil
}

// SelectVersion returns the explicitly selected version, or the greatest
// available version under order.
func SelectVersion(pack types.ResolvedPack, order types.VersionOrder) (string, error) {
	if pack.Identifier.HasVersion {
		return pack.Identifier.Version, nil
	}
	if len(pack.Available) == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no available versions for %s", pack.Family.DownloadName()))
	}
	selected := MaxVersion(order, pack.Available)
	if order != types.VersionOrderLexical {
		if lexical := MaxVersion(types.VersionOrderLexical, pack.Available); lexical != selected {
			log.Warn().
				Str("selected", selected).
				Str("lexical", lexical).
				Str("order", string(order)).
				Msg("version order differs from lexical ordering")
		}
	}
	return selected, nil
}

// BuildURL joins base and the pack filename. No escaping is applied; family
// and version tokens are URL-safe.
func BuildURL(base string, downloadName string, version string) string {
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + downloadName + "." + version + "." + packSuffix
}
