// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// PackArchive builds an in-memory .atpack (zip) holding the given entries.
func PackArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := writer.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(entries[name]))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

// IndexPage renders a pack index page linking one archive per version.
func IndexPage(downloadName string, versions ...string) string {
	var builder strings.Builder
	builder.WriteString("<html><body><ul>\n")
	for _, version := range versions {
		file := fmt.Sprintf("%s.%s.atpack", downloadName, version)
		builder.WriteString(fmt.Sprintf("<li><a href=\"%s\">%s</a></li>\n", file, file))
	}
	builder.WriteString("</ul></body></html>\n")
	return builder.String()
}
