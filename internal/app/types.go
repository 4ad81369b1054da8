package app

import "update-vendor-files/internal/types"

const DefaultBaseURL = "https://packs.download.microchip.com/"

type ResolveRequest struct {
	Pack         string
	BaseURL      string
	IndexURL     string
	VersionOrder string
	Families     map[string]string
}

type ResolveResult struct {
	Pack    types.ResolvedPack
	Version string
	URL     string
}

type ListRequest struct {
	ResolveRequest
	DevicePrefix string
	DeviceSuffix string
}

type ListResult struct {
	Resolved    ResolveResult
	Controllers []string
}

type ExtractRequest struct {
	ListRequest
	OutputDir string
}

type ExtractResult struct {
	Resolved ResolveResult
	Paths    []string
}

type FamiliesResult struct {
	Families []types.Family
}
