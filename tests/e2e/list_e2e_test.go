package e2e

import (
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"update-vendor-files/tests/testutil"
)

const downloadName = "Microchip.ATmega_DFP"

func startPackServer(t *testing.T) *httptest.Server {
	t.Helper()
	archive := testutil.PackArchive(t, map[string]string{
		"atdf/ATmega328P.atdf":  "<avr-tools-device-file/>",
		"atdf/ATmega2560.atdf":  "<avr-tools-device-file/>",
		"gcc/dev/atmega328p.h":  "",
		"Microchip.ATmega.pdsc": "",
	})
	page := testutil.IndexPage(downloadName, "1.1.2", "1.2.4", "2.0.10")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			_, _ = w.Write([]byte(page))
		case "/" + downloadName + ".2.0.10.atpack", "/" + downloadName + ".1.1.2.atpack":
			_, _ = w.Write(archive)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := testutil.RepoRoot(t)
	cmd := exec.Command("go", append([]string{"run", "./cmd/update-vendor-files"}, args...)...)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func TestListCommandE2E(t *testing.T) {
	server := startPackServer(t)

	stdout, stderr, err := runCLI(t, "list", "atmega", "--base-url", server.URL+"/")
	require.NoError(t, err, stderr)

	want := []string{"ATmega2560", "ATmega328P"}
	got := strings.Fields(stdout)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("controllers mismatch (-want +got):\n%s", diff)
	}
	require.Contains(t, stderr, "2.0.10")
}

func TestResolveCommandE2E(t *testing.T) {
	server := startPackServer(t)

	stdout, stderr, err := runCLI(t, "resolve", "atmega==1.1.2", "--base-url", server.URL)
	require.NoError(t, err, stderr)
	require.Contains(t, stdout, "url: "+server.URL+"/"+downloadName+".1.1.2.atpack")
}

func TestExtractCommandE2E(t *testing.T) {
	server := startPackServer(t)
	outDir := t.TempDir()

	_, stderr, err := runCLI(t, "extract", "atmega", "--base-url", server.URL, "--output-dir", outDir)
	require.NoError(t, err, stderr)
	require.FileExists(t, filepath.Join(outDir, "ATmega328P.atdf"))
	require.FileExists(t, filepath.Join(outDir, "ATmega2560.atdf"))
}

func TestListUnknownVersionE2E(t *testing.T) {
	server := startPackServer(t)

	_, stderr, err := runCLI(t, "list", "atmega==9.9.9", "--base-url", server.URL)
	require.Error(t, err)
	require.Contains(t, stderr, "9.9.9")
}
