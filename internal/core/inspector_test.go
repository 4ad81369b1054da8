package core

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"update-vendor-files/internal/types"
)

func buildArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := writer.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

func TestListEntries(t *testing.T) {
	archive := buildArchive(t, map[string]string{
		"atdf/ATmega8.atdf":   "<avr-tools-device-file/>",
		"atdf/ATmega.atdf":    "<avr-tools-device-file/>",
		"foo/atdf/bargel.foo": "",
	})

	names, err := ListEntries(archive, DefaultDevicePrefix, DefaultDeviceSuffix)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"ATmega", "ATmega8"}, names); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}

	again, err := ListEntries(archive, DefaultDevicePrefix, DefaultDeviceSuffix)
	require.NoError(t, err)
	assert.Equal(t, names, again)
}

func TestListEntriesNoMatches(t *testing.T) {
	archive := buildArchive(t, map[string]string{
		"Microchip.ATmega_DFP.pdsc": "",
		"include/avr/io.h":          "",
		"atdf/":                     "",
	})

	names, err := ListEntries(archive, DefaultDevicePrefix, DefaultDeviceSuffix)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestListEntriesMalformedArchive(t *testing.T) {
	_, err := ListEntries([]byte("<html>not a zip</html>"), DefaultDevicePrefix, DefaultDeviceSuffix)
	require.Error(t, err)
	assert.True(t, errbuilder.CodeOf(err) == errbuilder.CodeInvalidArgument)
	assert.Contains(t, err.Error(), "failed to open pack archive")
}

func TestListEntriesCustomLayout(t *testing.T) {
	archive := buildArchive(t, map[string]string{
		"devices/PIC16F877.pic": "",
		"atdf/ATmega8.atdf":     "",
	})

	names, err := ListEntries(archive, "devices/", ".pic")
	require.NoError(t, err)
	assert.Equal(t, []string{"PIC16F877"}, names)
}

func TestReadEntries(t *testing.T) {
	archive := buildArchive(t, map[string]string{
		"atdf/ATmega8.atdf": "eight",
		"atdf/ATmega.atdf":  "plain",
		"atdf/readme.txt":   "skip",
	})

	files, err := ReadEntries(archive, DefaultDevicePrefix, DefaultDeviceSuffix)
	require.NoError(t, err)
	want := []types.DeviceFile{
		{Controller: "ATmega", Data: []byte("plain")},
		{Controller: "ATmega8", Data: []byte("eight")},
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Fatalf("unexpected files (-want +got):\n%s", diff)
	}
}
