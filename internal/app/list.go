package app

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"update-vendor-files/internal/core"
)

// List resolves the pack, downloads it and lists its device-description
// files.
func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	resolved, archive, err := s.download(ctx, req.ResolveRequest)
	if err != nil {
		return ListResult{}, err
	}
	prefix, suffix := deviceLayout(req)
	controllers, err := core.ListEntries(archive, prefix, suffix)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{
		Resolved:    resolved,
		Controllers: controllers,
	}, nil
}

func (s Service) download(ctx context.Context, req ResolveRequest) (ResolveResult, []byte, error) {
	resolved, err := s.Resolve(ctx, req)
	if err != nil {
		return ResolveResult{}, nil, err
	}
	assert.NotEmpty(ctx, resolved.Version, "resolved version must be set before download")
	assert.NotEmpty(ctx, resolved.URL, "resolved url must be set before download")
	log.Ctx(ctx).Info().
		Str("family", resolved.Pack.Family.Name).
		Str("version", resolved.Version).
		Strs("available", resolved.Pack.Available).
		Str("url", resolved.URL).
		Msg("resolved pack")

	archive, err := s.Fetcher.FetchBytes(ctx, resolved.URL)
	if err != nil {
		return ResolveResult{}, nil, err
	}
	return resolved, archive, nil
}

func deviceLayout(req ListRequest) (string, string) {
	prefix := req.DevicePrefix
	if prefix == "" {
		prefix = core.DefaultDevicePrefix
	}
	suffix := req.DeviceSuffix
	if suffix == "" {
		suffix = core.DefaultDeviceSuffix
	}
	return prefix, suffix
}
