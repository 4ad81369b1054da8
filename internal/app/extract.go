package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"update-vendor-files/internal/core"
)

// Extract downloads the pack and writes its device-description files into
// req.OutputDir.
func (s Service) Extract(ctx context.Context, req ExtractRequest) (ExtractResult, error) {
	if strings.TrimSpace(req.OutputDir) == "" {
		return ExtractResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	resolved, archive, err := s.download(ctx, req.ResolveRequest)
	if err != nil {
		return ExtractResult{}, err
	}
	prefix, suffix := deviceLayout(req.ListRequest)
	files, err := core.ReadEntries(archive, prefix, suffix)
	if err != nil {
		return ExtractResult{}, err
	}
	paths, err := s.DeviceFiles.WriteDeviceFiles(req.OutputDir, suffix, files)
	if err != nil {
		return ExtractResult{}, err
	}
	return ExtractResult{
		Resolved: resolved,
		Paths:    paths,
	}, nil
}
