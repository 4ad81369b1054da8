package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"update-vendor-files/internal/core"
	"update-vendor-files/internal/types"
)

// Resolve fetches the index page and picks the pack version to download.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	input := strings.TrimSpace(req.Pack)
	if input == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("pack identifier is required (<family> or <family>==<version>)")
	}
	id := core.ParseIdentifier(input)
	families, err := s.Families.With(req.Families)
	if err != nil {
		return ResolveResult{}, err
	}
	family, err := families.Lookup(id.Family)
	if err != nil {
		return ResolveResult{}, err
	}
	order, err := core.ParseVersionOrder(req.VersionOrder)
	if err != nil {
		return ResolveResult{}, err
	}

	baseURL := strings.TrimSpace(req.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	indexURL := strings.TrimSpace(req.IndexURL)
	if indexURL == "" {
		indexURL = baseURL
	}
	page, err := s.Fetcher.FetchText(ctx, indexURL)
	if err != nil {
		return ResolveResult{}, err
	}
	versions := core.ExtractVersions(page, family.DownloadName())
	log.Ctx(ctx).Debug().
		Str("download_name", family.DownloadName()).
		Int("versions", len(versions)).
		Msg("index page parsed")

	pack, err := core.NewResolvedPack(id, family, versions)
	if err != nil {
		return ResolveResult{}, err
	}
	version, err := core.SelectVersion(pack, order)
	if err != nil {
		return ResolveResult{}, err
	}
	return ResolveResult{
		Pack:    pack,
		Version: version,
		URL:     core.BuildURL(baseURL, family.DownloadName(), version),
	}, nil
}

// Report summarizes a resolution and the controllers found in its archive.
func (r ResolveResult) Report(controllers []string) types.PackReport {
	return types.PackReport{
		Family:       r.Pack.Family.Name,
		DownloadName: r.Pack.Family.DownloadName(),
		Version:      r.Version,
		URL:          r.URL,
		Available:    r.Pack.Available,
		Controllers:  controllers,
	}
}
