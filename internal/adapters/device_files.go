package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"update-vendor-files/internal/ports"
	"update-vendor-files/internal/types"
)

type DeviceFileWriterAdapter struct{}

func NewDeviceFileWriterAdapter() DeviceFileWriterAdapter {
	return DeviceFileWriterAdapter{}
}

// WriteDeviceFiles writes each file as dir/<Controller><suffix> and returns
// the written paths in input order.
func (a DeviceFileWriterAdapter) WriteDeviceFiles(dir string, suffix string, files []types.DeviceFile) ([]string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	paths := make([]string, 0, len(files))
	for _, file := range files {
		name := filepath.Base(filepath.Clean(file.Controller)) + suffix
		if name != file.Controller+suffix {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("refusing to write nested controller path " + file.Controller)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, file.Data, 0644); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write " + path).
				WithCause(err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

var _ ports.DeviceFileWriterPort = DeviceFileWriterAdapter{}
