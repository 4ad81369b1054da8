package ports

import "update-vendor-files/internal/types"

// DeviceFileWriterPort stores extracted device-description files.
type DeviceFileWriterPort interface {
	WriteDeviceFiles(dir string, suffix string, files []types.DeviceFile) ([]string, error)
}
