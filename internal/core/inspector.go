package core

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/klauspost/compress/zip"

	"update-vendor-files/internal/types"
)

const (
	DefaultDevicePrefix = "atdf/"
	DefaultDeviceSuffix = ".atdf"
)

// ListEntries returns the names of archive entries under prefix with the
// given suffix, both stripped, sorted ascending.
func ListEntries(archive []byte, prefix string, suffix string) ([]string, error) {
	reader, err := openArchive(archive)
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, file := range reader.File {
		if name, ok := deviceName(file.Name, prefix, suffix); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// ReadEntries returns the same selection as ListEntries with each entry's
// contents, ordered by controller name.
func ReadEntries(archive []byte, prefix string, suffix string) ([]types.DeviceFile, error) {
	reader, err := openArchive(archive)
	if err != nil {
		return nil, err
	}
	files := []types.DeviceFile{}
	for _, file := range reader.File {
		name, ok := deviceName(file.Name, prefix, suffix)
		if !ok {
			continue
		}
		data, err := readZipFile(file)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read pack entry " + file.Name).
				WithCause(err)
		}
		files = append(files, types.DeviceFile{Controller: name, Data: data})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Controller < files[j].Controller
	})
	return files, nil
}

func openArchive(archive []byte) (*zip.Reader, error) {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to open pack archive").
			WithCause(err)
	}
	return reader, nil
}

func deviceName(entry string, prefix string, suffix string) (string, bool) {
	if !strings.HasPrefix(entry, prefix) || !strings.HasSuffix(entry, suffix) {
		return "", false
	}
	name := strings.TrimSuffix(strings.TrimPrefix(entry, prefix), suffix)
	if name == "" {
		return "", false
	}
	return name, true
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
