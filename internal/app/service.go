package app

import (
	"update-vendor-files/internal/adapters"
	"update-vendor-files/internal/core"
	"update-vendor-files/internal/ports"
)

type Service struct {
	Fetcher     ports.PackFetcherPort
	Reports     ports.ReportWriterPort
	DeviceFiles ports.DeviceFileWriterPort
	Families    core.FamilyTable
}

func NewService(httpCfg adapters.HTTPFetcherConfig) Service {
	return Service{
		Fetcher:     adapters.NewHTTPFetcherAdapter(httpCfg),
		Reports:     adapters.NewReportWriterAdapter(),
		DeviceFiles: adapters.NewDeviceFileWriterAdapter(),
		Families:    core.DefaultFamilies(),
	}
}
